package stripegw

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	stripe "github.com/stripe/stripe-go/v81"
	checkoutsession "github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/client"

	gw "github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/gateway"
)

// sessionAPI is the subset of the Stripe checkout session client used here.
type sessionAPI interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// stripeGateway is the Stripe SDK-backed implementation of the gateway.
type stripeGateway struct {
	sessions sessionAPI
}

// New returns a PaymentGateway backed by the official Stripe SDK. The key is
// bound to this client only; the SDK's global key is left untouched. Network
// retries are disabled: a failed call surfaces immediately to the caller.
func New(key string) gw.PaymentGateway {
	backends := stripe.NewBackendsWithConfig(&stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
	})
	api := client.New(key, backends)
	return stripeGateway{sessions: api.CheckoutSessions}
}

func newWithSessions(s sessionAPI) gw.PaymentGateway { return stripeGateway{sessions: s} }

var _ sessionAPI = (*checkoutsession.Client)(nil)

func (c stripeGateway) CreateSession(ctx context.Context, p gw.SessionParams) (gw.SessionRef, error) {
	sess, err := c.sessions.New(buildCreateParams(ctx, p))
	if err != nil {
		return gw.SessionRef{}, err
	}
	if sess == nil {
		return gw.SessionRef{}, errors.New("stripe returned no session")
	}
	return gw.SessionRef{ID: sess.ID, URL: sess.URL}, nil
}

func (c stripeGateway) RetrieveSession(ctx context.Context, id string) (gw.Session, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("line_items")

	sess, err := c.sessions.Get(id, params)
	if err != nil {
		if isNotFound(err) {
			return gw.Session{}, fmt.Errorf("%w: %s", gw.ErrSessionNotFound, id)
		}
		return gw.Session{}, err
	}
	if sess == nil {
		return gw.Session{}, fmt.Errorf("%w: %s", gw.ErrSessionNotFound, id)
	}
	return toSession(sess), nil
}

func buildCreateParams(ctx context.Context, p gw.SessionParams) *stripe.CheckoutSessionParams {
	quantity := p.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(p.Mode)),
		PaymentMethodTypes: []*string{stripe.String("card")},
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(p.PriceID),
				Quantity: stripe.Int64(quantity),
			},
		},
		SuccessURL:    stripe.String(p.SuccessURL),
		CancelURL:     stripe.String(p.CancelURL),
		CustomerEmail: stripe.String(p.CustomerEmail),
	}
	params.Context = ctx
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}
	return params
}

func toSession(s *stripe.CheckoutSession) gw.Session {
	out := gw.Session{
		ID:            s.ID,
		Status:        string(s.Status),
		CustomerEmail: s.CustomerEmail,
		Metadata:      s.Metadata,
	}
	if out.CustomerEmail == "" && s.CustomerDetails != nil {
		out.CustomerEmail = s.CustomerDetails.Email
	}
	if s.LineItems != nil {
		for _, item := range s.LineItems.Data {
			if item != nil && item.Price != nil {
				out.LineItemPriceIDs = append(out.LineItemPriceIDs, item.Price.ID)
			}
		}
	}
	return out
}

func isNotFound(err error) bool {
	var se *stripe.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code == stripe.ErrorCodeResourceMissing || se.HTTPStatusCode == http.StatusNotFound
}
