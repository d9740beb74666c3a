package app

import "github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/plan"

// CheckoutRequest is the client's intent to buy a plan. Both fields are
// required; there are no defaults.
type CheckoutRequest struct {
	CustomerEmail string `json:"customerEmail" validate:"required"`
	PriceID       string `json:"priceId" validate:"required"`
}

// CheckoutSession is the domain response of CreateCheckout.
// Keep value types to avoid pointer proliferation in domain.
type CheckoutSession struct {
	ID       string
	URL      string
	PlanType plan.Tier
}

// SessionConfirmation is only produced for a completed session whose
// metadata resolved to a known tier.
type SessionConfirmation struct {
	PlanType      plan.Tier
	CustomerEmail string
	SessionID     string
}
