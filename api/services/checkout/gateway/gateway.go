package gateway

import (
	"context"
	"errors"
)

// Mode is the Stripe Checkout mode of a session.
type Mode string

const (
	ModePayment      Mode = "payment"
	ModeSubscription Mode = "subscription"
)

// SessionStatusComplete is the only status that confirms a paid checkout.
const SessionStatusComplete = "complete"

// Metadata keys written on session creation and read back on verification.
const (
	MetadataEmail    = "email"
	MetadataPriceID  = "priceId"
	MetadataPlanType = "planType"
)

// ErrSessionNotFound is returned by RetrieveSession when the provider has no
// session with the given id.
var ErrSessionNotFound = errors.New("session not found")

// SessionParams describes the checkout session to create.
type SessionParams struct {
	Mode          Mode
	PriceID       string
	Quantity      int64
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

// SessionRef identifies a created session.
type SessionRef struct {
	ID string
	// URL of the hosted checkout page.
	URL string
}

// Session is the provider's view of a checkout session. Metadata is untrusted.
type Session struct {
	ID            string
	Status        string
	CustomerEmail string
	Metadata      map[string]string
	// LineItemPriceIDs lists the price of every expanded line item.
	LineItemPriceIDs []string
}

// PaymentGateway abstracts the payment provider operations needed by the app layer.
// Methods return values (not pointers) to keep provider SDK types out of the domain.
type PaymentGateway interface {
	CreateSession(ctx context.Context, params SessionParams) (SessionRef, error)
	RetrieveSession(ctx context.Context, id string) (Session, error)
}
