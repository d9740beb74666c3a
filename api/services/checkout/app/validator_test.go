package app

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/db"
	"github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/mocks"
	"github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/plan"
)

func newTestValidator(t *testing.T) (*RequestValidator, *mocks.MockUserStore) {
	t.Helper()
	users := mocks.NewMockUserStore(gomock.NewController(t))
	return NewRequestValidator(testCatalog(t), users), users
}

func TestValidate_MissingParametersNeverHitStore(t *testing.T) {
	v, users := newTestValidator(t)
	users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Times(0)

	cases := []CheckoutRequest{
		{},
		{CustomerEmail: "a@x.com"},
		{PriceID: "price_pro"},
		{CustomerEmail: "   ", PriceID: "price_pro"},
		{CustomerEmail: "a@x.com", PriceID: "\t"},
	}
	for _, req := range cases {
		_, err := v.Validate(context.Background(), req)
		assert.ErrorIs(t, err, ErrMissingParameter, "%+v", req)
	}
}

func TestValidate_MissingParameterNamesFields(t *testing.T) {
	v, _ := newTestValidator(t)
	_, err := v.Validate(context.Background(), CheckoutRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customerEmail")
	assert.Contains(t, err.Error(), "priceId")
}

func TestValidate_UnknownPriceNeverHitsStore(t *testing.T) {
	v, users := newTestValidator(t)
	users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Times(0)

	for _, price := range []string{"price_enterprise", "PRICE_PRO", "pro"} {
		_, err := v.Validate(context.Background(), CheckoutRequest{CustomerEmail: "a@x.com", PriceID: price})
		assert.ErrorIs(t, err, ErrUnknownPrice, price)
	}
}

func TestValidate_StoreErrorIsDistinctFromNotFound(t *testing.T) {
	v, users := newTestValidator(t)
	users.EXPECT().FindUserByEmail(gomock.Any(), "down@x.com").Return(db.User{}, false, errors.New("connection refused"))
	users.EXPECT().FindUserByEmail(gomock.Any(), "new@x.com").Return(db.User{}, false, nil)

	_, err := v.Validate(context.Background(), CheckoutRequest{CustomerEmail: "down@x.com", PriceID: "price_pro"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	tier, err := v.Validate(context.Background(), CheckoutRequest{CustomerEmail: "new@x.com", PriceID: "price_pro"})
	require.NoError(t, err)
	assert.Equal(t, plan.Pro, tier)
}

func TestValidate_SubscriptionStatus(t *testing.T) {
	cases := []struct {
		status  db.SubscriptionStatus
		wantErr error
	}{
		{db.StatusActive, ErrAlreadySubscribed},
		{db.StatusLifetimeActive, ErrAlreadySubscribed},
		{db.StatusCancelled, nil},
		{db.StatusNone, nil},
		{db.SubscriptionStatus("past_due"), nil},
	}
	for _, c := range cases {
		v, users := newTestValidator(t)
		users.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").
			Return(db.User{Email: "a@x.com", SubscriptionStatus: c.status}, true, nil).Times(1)

		tier, err := v.Validate(context.Background(), CheckoutRequest{CustomerEmail: "a@x.com", PriceID: "price_starter"})
		if c.wantErr != nil {
			assert.ErrorIs(t, err, c.wantErr, string(c.status))
			continue
		}
		require.NoError(t, err, string(c.status))
		assert.Equal(t, plan.Starter, tier)
	}
}

func TestValidate_TrimsEmailBeforeLookup(t *testing.T) {
	v, users := newTestValidator(t)
	users.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(db.User{}, false, nil)

	tier, err := v.Validate(context.Background(), CheckoutRequest{CustomerEmail: " a@x.com ", PriceID: "price_lifetime"})
	require.NoError(t, err)
	assert.Equal(t, plan.Lifetime, tier)
}

func TestValidate_PriceIDMustMatchExactly(t *testing.T) {
	v, users := newTestValidator(t)
	users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Times(0)

	for _, id := range []string{" price_lifetime ", "price_pro\n", "\tprice_starter"} {
		_, err := v.Validate(context.Background(), CheckoutRequest{CustomerEmail: "a@x.com", PriceID: id})
		assert.ErrorIs(t, err, ErrUnknownPrice, "%q", id)
	}
}
