// Package mailer delivers notification email through the Resend API.
package mailer

import (
	"context"

	"github.com/resend/resend-go/v2"

	"naplata/internal/core/port"
)

// ResendMailer implements port.Mailer on top of the Resend client.
type ResendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer creates a mailer. from is the sender address shown to
// customers, e.g. "Naplata <obavestenja@example.rs>".
func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

// Send delivers one email.
func (m *ResendMailer) Send(ctx context.Context, msg port.EmailMessage) error {
	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	return err
}
