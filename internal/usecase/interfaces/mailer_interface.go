package interfaces

import "context"

// EmailMessage is a single rendered transactional email.
type EmailMessage struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// IMailer abstracts the outbound email provider (e.g. Resend).
//
// Send returns the provider's delivery ID. Delivery is fire-and-forget beyond
// this single synchronous call; there is no retry or confirmation polling.
type IMailer interface {
	Send(ctx context.Context, msg EmailMessage) (string, error)
}
