// Package notify sends transactional email. Delivery is at-most-once: a failed
// send is reported to the caller and never retried.
package notify

import (
	"context"

	"github.com/tbeaudouin05/startupstack-checkout/api/apierrors"
)

var (
	// ErrMissingRecipient indicates no recipient address was given.
	ErrMissingRecipient = apierrors.New(apierrors.KindClientInput, "MISSING_PARAMETER", "email is required")
	// ErrDelivery indicates the email provider rejected or failed the send.
	ErrDelivery = apierrors.New(apierrors.KindUpstream, "EMAIL_DELIVERY_FAILED", "failed to send welcome email")
)

// Message is a rendered email ready for delivery.
type Message struct {
	ToName    string
	ToAddress string
	Subject   string
	HTML      string
	PlainText string
}

// Sender delivers one message through an email provider.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Notifier sends the post-purchase welcome email.
type Notifier interface {
	Notify(ctx context.Context, email, name string) error
}
