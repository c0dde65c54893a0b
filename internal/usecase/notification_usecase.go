package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"webstudio_backend/internal/domain/entities"
	"webstudio_backend/internal/usecase/interfaces"
)

var ErrIncompleteLead = errors.New("missing required lead fields")

// QuoteLead is the payload of a quote-confirmation request.
type QuoteLead struct {
	Name        string
	Email       string
	Phone       string
	Company     string
	ProjectType string
	Services    entities.ServiceFlags
	Timeline    string
	Budget      string
	Description string
}

// ContactLead is the payload of a contact-confirmation request.
type ContactLead struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// CallbackLead is the payload of a callback-confirmation request.
type CallbackLead struct {
	Name          string
	Email         string
	Phone         string
	PreferredTime string
	Message       string
}

// Delivery is the two-tier dispatch result. EmailID is the provider ID of the
// customer-facing send; admin-copy failures never appear here, they are only
// logged. Disabled marks the synthetic success returned when no mailer is
// configured.
type Delivery struct {
	EmailID  string
	Disabled bool
	Message  string
}

// INotificationUseCase dispatches lead-confirmation emails.
//
// Failure semantics:
//   - customer-facing send failure is fatal and propagates to the caller
//   - admin-copy failure is logged and swallowed
//   - an unconfigured mailer yields a Delivery with Disabled=true, not an
//     error, so lead capture is never blocked by absent mail configuration
type INotificationUseCase interface {
	SendQuoteConfirmation(ctx context.Context, lead QuoteLead) (Delivery, error)
	SendContactConfirmation(ctx context.Context, lead ContactLead) (Delivery, error)
	SendCallbackConfirmation(ctx context.Context, lead CallbackLead) (Delivery, error)
}

type NotificationUseCase struct {
	mailer  interfaces.IMailer
	from    string
	adminTo string
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

// NewNotificationUseCase wires the dispatcher. A nil mailer is valid and means
// sending is disabled.
func NewNotificationUseCase(mailer interfaces.IMailer, from, adminTo string) *NotificationUseCase {
	return &NotificationUseCase{mailer: mailer, from: from, adminTo: adminTo}
}

func (u *NotificationUseCase) SendQuoteConfirmation(ctx context.Context, lead QuoteLead) (Delivery, error) {
	if anyBlank(lead.Name, lead.Email, lead.ProjectType) {
		return Delivery{}, ErrIncompleteLead
	}
	if u.mailer == nil {
		log.Printf("[notify][usecase] mailer not configured, quote confirmation skipped email=%s", lead.Email)
		return disabledDelivery(), nil
	}

	customer, admin, err := renderQuoteEmails(lead)
	if err != nil {
		return Delivery{}, err
	}

	id, err := u.mailer.Send(ctx, interfaces.EmailMessage{
		From:    u.from,
		To:      lead.Email,
		ReplyTo: u.adminTo,
		Subject: "We received your quote request",
		HTML:    customer,
	})
	if err != nil {
		log.Printf("[notify][usecase] quote confirmation failed email=%s err=%v", lead.Email, err)
		return Delivery{}, err
	}
	log.Printf("[notify][usecase] quote confirmation sent email=%s delivery_id=%s", lead.Email, id)

	u.sendAdminCopy(ctx, "New quote request: "+lead.ProjectType, admin, lead.Email)

	return Delivery{EmailID: id, Message: "confirmation email sent"}, nil
}

func (u *NotificationUseCase) SendContactConfirmation(ctx context.Context, lead ContactLead) (Delivery, error) {
	if anyBlank(lead.Name, lead.Email, lead.Message) {
		return Delivery{}, ErrIncompleteLead
	}
	if u.mailer == nil {
		log.Printf("[notify][usecase] mailer not configured, contact confirmation skipped email=%s", lead.Email)
		return disabledDelivery(), nil
	}

	customer, admin, err := renderContactEmails(lead)
	if err != nil {
		return Delivery{}, err
	}

	id, err := u.mailer.Send(ctx, interfaces.EmailMessage{
		From:    u.from,
		To:      lead.Email,
		ReplyTo: u.adminTo,
		Subject: "Thanks for getting in touch",
		HTML:    customer,
	})
	if err != nil {
		log.Printf("[notify][usecase] contact confirmation failed email=%s err=%v", lead.Email, err)
		return Delivery{}, err
	}
	log.Printf("[notify][usecase] contact confirmation sent email=%s delivery_id=%s", lead.Email, id)

	u.sendAdminCopy(ctx, "New contact message from "+lead.Name, admin, lead.Email)

	return Delivery{EmailID: id, Message: "confirmation email sent"}, nil
}

func (u *NotificationUseCase) SendCallbackConfirmation(ctx context.Context, lead CallbackLead) (Delivery, error) {
	if anyBlank(lead.Name, lead.Email, lead.Phone) {
		return Delivery{}, ErrIncompleteLead
	}
	if u.mailer == nil {
		log.Printf("[notify][usecase] mailer not configured, callback confirmation skipped email=%s", lead.Email)
		return disabledDelivery(), nil
	}

	customer, err := renderCallbackEmail(lead)
	if err != nil {
		return Delivery{}, err
	}

	id, err := u.mailer.Send(ctx, interfaces.EmailMessage{
		From:    u.from,
		To:      lead.Email,
		ReplyTo: u.adminTo,
		Subject: "We'll call you back shortly",
		HTML:    customer,
	})
	if err != nil {
		log.Printf("[notify][usecase] callback confirmation failed email=%s err=%v", lead.Email, err)
		return Delivery{}, err
	}
	log.Printf("[notify][usecase] callback confirmation sent email=%s delivery_id=%s", lead.Email, id)

	return Delivery{EmailID: id, Message: "confirmation email sent"}, nil
}

// sendAdminCopy delivers the internal notification. Failures are logged and
// never propagated; the customer-facing outcome is already decided.
func (u *NotificationUseCase) sendAdminCopy(ctx context.Context, subject, html, replyTo string) {
	if u.adminTo == "" {
		return
	}
	id, err := u.mailer.Send(ctx, interfaces.EmailMessage{
		From:    u.from,
		To:      u.adminTo,
		ReplyTo: replyTo,
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		log.Printf("[notify][usecase] admin copy failed subject=%q err=%v", subject, err)
		return
	}
	log.Printf("[notify][usecase] admin copy sent delivery_id=%s", id)
}

func disabledDelivery() Delivery {
	return Delivery{Disabled: true, Message: "email sending disabled"}
}

func anyBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
