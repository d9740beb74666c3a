package app

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/db"
	gw "github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/gateway"
	"github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/plan"
)

func Test_CreateCheckout_LifetimeUsesPaymentMode(t *testing.T) {
	d := newTestService(t)
	d.users.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(db.User{}, false, nil)

	var got gw.SessionParams
	d.gateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p gw.SessionParams) (gw.SessionRef, error) {
			got = p
			return gw.SessionRef{ID: "cs_123", URL: "https://checkout.stripe.com/c/pay/cs_123"}, nil
		}).Times(1)

	sess, err := d.svc.CreateCheckout(context.Background(), CheckoutRequest{CustomerEmail: "a@x.com", PriceID: "price_lifetime"})
	require.NoError(t, err)
	assert.Equal(t, "cs_123", sess.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_123", sess.URL)
	assert.Equal(t, plan.Lifetime, sess.PlanType)

	assert.Equal(t, gw.ModePayment, got.Mode)
	assert.Equal(t, "price_lifetime", got.PriceID)
	assert.Equal(t, int64(1), got.Quantity)
	assert.Equal(t, "a@x.com", got.CustomerEmail)
	assert.Equal(t, testSuccessURL, got.SuccessURL)
	assert.Equal(t, testCancelURL, got.CancelURL)
	assert.Equal(t, map[string]string{
		gw.MetadataEmail:    "a@x.com",
		gw.MetadataPriceID:  "price_lifetime",
		gw.MetadataPlanType: "lifetime",
	}, got.Metadata)
}

func Test_CreateCheckout_RecurringTiersUseSubscriptionMode(t *testing.T) {
	for price, tier := range map[string]plan.Tier{"price_starter": plan.Starter, "price_pro": plan.Pro} {
		d := newTestService(t)
		d.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(db.User{}, false, nil)
		d.gateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p gw.SessionParams) (gw.SessionRef, error) {
				assert.Equal(t, gw.ModeSubscription, p.Mode, price)
				assert.Equal(t, tier.String(), p.Metadata[gw.MetadataPlanType])
				return gw.SessionRef{ID: "cs_" + price}, nil
			})

		sess, err := d.svc.CreateCheckout(context.Background(), CheckoutRequest{CustomerEmail: "a@x.com", PriceID: price})
		require.NoError(t, err)
		assert.Equal(t, tier, sess.PlanType)
	}
}

func Test_CreateCheckout_RejectionsNeverReachGateway(t *testing.T) {
	cases := []struct {
		name    string
		req     CheckoutRequest
		user    db.User
		found   bool
		storeOK bool
		wantErr error
	}{
		{name: "missing email", req: CheckoutRequest{PriceID: "price_pro"}, wantErr: ErrMissingParameter},
		{name: "unknown price", req: CheckoutRequest{CustomerEmail: "a@x.com", PriceID: "price_x"}, wantErr: ErrUnknownPrice},
		{
			name:    "lifetime active",
			req:     CheckoutRequest{CustomerEmail: "a@x.com", PriceID: "price_pro"},
			user:    db.User{Email: "a@x.com", SubscriptionStatus: db.StatusLifetimeActive},
			found:   true,
			storeOK: true,
			wantErr: ErrAlreadySubscribed,
		},
		{
			name:    "active",
			req:     CheckoutRequest{CustomerEmail: "a@x.com", PriceID: "price_lifetime"},
			user:    db.User{Email: "a@x.com", SubscriptionStatus: db.StatusActive},
			found:   true,
			storeOK: true,
			wantErr: ErrAlreadySubscribed,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := newTestService(t)
			if c.storeOK {
				d.users.EXPECT().FindUserByEmail(gomock.Any(), c.req.CustomerEmail).Return(c.user, c.found, nil)
			}
			d.gateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Times(0)

			_, err := d.svc.CreateCheckout(context.Background(), c.req)
			assert.ErrorIs(t, err, c.wantErr)
		})
	}
}

func Test_CreateCheckout_StoreFailureNeverReachesGateway(t *testing.T) {
	d := newTestService(t)
	d.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(db.User{}, false, errors.New("timeout"))
	d.gateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Times(0)

	_, err := d.svc.CreateCheckout(context.Background(), CheckoutRequest{CustomerEmail: "a@x.com", PriceID: "price_pro"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func Test_CreateCheckout_GatewayFailure(t *testing.T) {
	d := newTestService(t)
	d.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(db.User{}, false, nil)
	d.gateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(gw.SessionRef{}, errors.New("stripe: api_error")).Times(1)

	_, err := d.svc.CreateCheckout(context.Background(), CheckoutRequest{CustomerEmail: "a@x.com", PriceID: "price_pro"})
	assert.ErrorIs(t, err, ErrGateway)
	assert.Contains(t, err.Error(), "stripe: api_error")
}
