package app

import (
	"github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/db"
	gw "github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/gateway"
	"github.com/tbeaudouin05/startupstack-checkout/api/services/checkout/plan"
)

// HasActiveSubscription reports whether the user holds a plan that blocks a new
// checkout. Cancelled and lapsed users may buy again.
func HasActiveSubscription(u db.User) bool {
	switch u.SubscriptionStatus {
	case db.StatusActive, db.StatusLifetimeActive:
		return true
	}
	return false
}

// PaymentModeFor returns the Stripe Checkout mode for a tier.
func PaymentModeFor(t plan.Tier) gw.Mode {
	if t.OneTime() {
		return gw.ModePayment
	}
	return gw.ModeSubscription
}
