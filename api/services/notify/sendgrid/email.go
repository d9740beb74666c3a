package sendgrid

import (
	"context"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/tbeaudouin05/startupstack-checkout/api/services/notify"
)

// Config holds the sender identity and API key.
type Config struct {
	FromName    string
	FromAddress string
	APIKey      string
}

// mailClient is the part of *sendgrid.Client used here.
type mailClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// Email delivers messages through the SendGrid v3 mail send API.
type Email struct {
	config Config
	client mailClient
}

// New returns a notify.Sender backed by SendGrid.
func New(config Config) *Email {
	return &Email{config: config, client: sendgrid.NewSendClient(config.APIKey)}
}

var _ notify.Sender = (*Email)(nil)

func (sg *Email) Send(ctx context.Context, msg notify.Message) error {
	from := mail.NewEmail(sg.config.FromName, sg.config.FromAddress)
	to := mail.NewEmail(msg.ToName, msg.ToAddress)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.PlainText, msg.HTML)

	resp, err := sg.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	// SendGrid reports rejected sends through the status code, not the error.
	if resp != nil && resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
