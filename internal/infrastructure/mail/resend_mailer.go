package mail

import (
	"context"
	"errors"
	"log"

	"webstudio_backend/internal/usecase/interfaces"

	"github.com/resend/resend-go/v2"
)

var ErrMissingResendAPIKey = errors.New("missing RESEND_API_KEY")

// ResendMailer delivers transactional email through the Resend API.
//
// Wiring note: when the API key is absent the constructor errors and the
// caller wires a nil IMailer instead, which the notification dispatcher
// treats as "sending disabled". Lead capture keeps working without mail
// configuration.
type ResendMailer struct {
	client *resend.Client
}

var _ interfaces.IMailer = (*ResendMailer)(nil)

func NewResendMailer(apiKey string) (*ResendMailer, error) {
	if apiKey == "" {
		log.Printf("[mail][resend] missing RESEND_API_KEY")
		return nil, ErrMissingResendAPIKey
	}
	log.Printf("[mail][resend] client initialized")
	return &ResendMailer{client: resend.NewClient(apiKey)}, nil
}

func (m *ResendMailer) Send(ctx context.Context, msg interfaces.EmailMessage) (string, error) {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if msg.ReplyTo != "" {
		params.ReplyTo = msg.ReplyTo
	}

	log.Printf("[mail][resend] send start to=%s subject=%q", msg.To, msg.Subject)
	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		log.Printf("[mail][resend] send failed to=%s err=%v", msg.To, err)
		return "", err
	}
	log.Printf("[mail][resend] send success to=%s delivery_id=%s", msg.To, sent.Id)
	return sent.Id, nil
}
