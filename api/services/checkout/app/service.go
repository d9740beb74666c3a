package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/db"
	gw "github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/gateway"
	"github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/plan"
)

// Service defines the business operations for the checkout domain.
type Service interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (CheckoutSession, error)
	VerifySession(ctx context.Context, sessionID string) (SessionConfirmation, error)
}

// Options wires a Service. All fields are required.
type Options struct {
	Catalog    plan.Catalog
	Users      db.UserStore
	Gateway    gw.PaymentGateway
	SuccessURL string
	CancelURL  string
}

// serviceImpl is immutable after construction and safe for concurrent use.
type serviceImpl struct {
	catalog    plan.Catalog
	validator  *RequestValidator
	gw         gw.PaymentGateway
	successURL string
	cancelURL  string
}

func NewService(o Options) Service {
	return serviceImpl{
		catalog:    o.Catalog,
		validator:  NewRequestValidator(o.Catalog, o.Users),
		gw:         o.Gateway,
		successURL: o.SuccessURL,
		cancelURL:  o.CancelURL,
	}
}

// CreateCheckout validates the request and, on acceptance, creates exactly one
// hosted checkout session. Rejected requests never reach the gateway.
func (s serviceImpl) CreateCheckout(ctx context.Context, req CheckoutRequest) (CheckoutSession, error) {
	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)

	tier, err := s.validator.Validate(ctx, req)
	if err != nil {
		return CheckoutSession{}, err
	}

	mode := PaymentModeFor(tier)
	ref, err := s.gw.CreateSession(ctx, gw.SessionParams{
		Mode:          mode,
		PriceID:       req.PriceID,
		Quantity:      1,
		CustomerEmail: req.CustomerEmail,
		SuccessURL:    s.successURL,
		CancelURL:     s.cancelURL,
		Metadata: map[string]string{
			gw.MetadataEmail:    req.CustomerEmail,
			gw.MetadataPriceID:  req.PriceID,
			gw.MetadataPlanType: tier.String(),
		},
	})
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("%w: error creating checkout session: %v", ErrGateway, err)
	}
	slog.InfoContext(ctx, "checkout session created", "session_id", ref.ID, "plan_type", tier, "mode", mode)
	return CheckoutSession{ID: ref.ID, URL: ref.URL, PlanType: tier}, nil
}
