package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"webstudio_backend/internal/domain/entities"
	"webstudio_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound        = errors.New("invoice not found")
	ErrInvalidInvoiceID       = errors.New("invalid invoice id")
	ErrInvalidInvoiceStatus   = errors.New("invalid invoice status")
	ErrInvoiceNumberExhausted = errors.New("could not allocate a unique invoice number")
)

// invoiceNumberAttempts bounds the collision-checked generation loop. The
// suffix comes from the creation instant, so consecutive collisions are
// already unlikely; five perturbed retries make them negligible.
const invoiceNumberAttempts = 5

// CreateInvoiceCommand carries an administrative invoice creation. Subtotal,
// tax and total are supplied by the caller and stored verbatim; this layer
// never derives them from the line items.
type CreateInvoiceCommand struct {
	Status        entities.InvoiceStatus
	ClientName    string
	ClientEmail   string
	ClientCompany string
	ClientPhone   string
	ClientAddress string
	LineItems     []entities.LineItem
	Subtotal      float64
	Discount      entities.Discount
	Tax           float64
	Total         float64
	PaymentTerms  string
	Notes         string
	QuoteID       string
	DueDate       time.Time
}

// IInvoiceUseCase exposes the invoice management surface.
type IInvoiceUseCase interface {
	Create(ctx context.Context, cmd CreateInvoiceCommand) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	Update(ctx context.Context, id string, patch entities.InvoicePatch) (entities.Invoice, error)
	Delete(ctx context.Context, id string) error
}

type InvoiceUseCase struct {
	repo interfaces.IInvoiceRepository
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo}
}

func (u *InvoiceUseCase) Create(ctx context.Context, cmd CreateInvoiceCommand) (entities.Invoice, error) {
	// Status may be omitted at creation; when present it must be a known state.
	if cmd.Status != "" && !cmd.Status.Valid() {
		return entities.Invoice{}, ErrInvalidInvoiceStatus
	}

	now := time.Now().UTC()
	number, err := u.allocateNumber(ctx, now)
	if err != nil {
		return entities.Invoice{}, err
	}

	lineItems := cmd.LineItems
	if lineItems == nil {
		lineItems = []entities.LineItem{}
	}

	inv := entities.Invoice{
		ID:            uuid.NewString(),
		Number:        number,
		Status:        cmd.Status,
		ClientName:    cmd.ClientName,
		ClientEmail:   cmd.ClientEmail,
		ClientCompany: cmd.ClientCompany,
		ClientPhone:   cmd.ClientPhone,
		ClientAddress: cmd.ClientAddress,
		LineItems:     lineItems,
		Subtotal:      cmd.Subtotal,
		Discount:      cmd.Discount,
		Tax:           cmd.Tax,
		Total:         cmd.Total,
		PaymentTerms:  cmd.PaymentTerms,
		Notes:         cmd.Notes,
		QuoteID:       cmd.QuoteID,
		CreatedAt:     now,
		UpdatedAt:     now,
		DueDate:       cmd.DueDate,
	}

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		log.Printf("[invoice][usecase] create failed number=%s err=%v", number, err)
		return entities.Invoice{}, err
	}
	log.Printf("[invoice][usecase] create success invoice_id=%s number=%s", created.ID, created.Number)
	return created, nil
}

// allocateNumber builds an INV-YYYYMM-XXXX number whose suffix is the last
// four digits of the creation instant in milliseconds, then verifies it is
// unused. Collisions perturb the suffix and retry a bounded number of times.
func (u *InvoiceUseCase) allocateNumber(ctx context.Context, now time.Time) (string, error) {
	for attempt := 0; attempt < invoiceNumberAttempts; attempt++ {
		suffix := (now.UnixMilli() + int64(attempt)*7919) % 10000
		number := fmt.Sprintf("INV-%s-%04d", now.Format("200601"), suffix)

		exists, err := u.repo.ExistsByNumber(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
		log.Printf("[invoice][usecase] number collision number=%s attempt=%d", number, attempt)
	}
	return "", ErrInvoiceNumberExhausted
}

func (u *InvoiceUseCase) List(ctx context.Context) ([]entities.Invoice, error) {
	return u.repo.List(ctx)
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) Update(ctx context.Context, id string, patch entities.InvoicePatch) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return entities.Invoice{}, ErrInvalidInvoiceStatus
	}

	// Transitioning to paid stamps the paid date exactly once: only when the
	// caller did not supply one and the stored invoice has none yet.
	if patch.Status != nil && *patch.Status == entities.InvoiceStatusPaid && patch.PaidDate == nil {
		existing, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.Invoice{}, err
		}
		if existing.ID == "" {
			return entities.Invoice{}, ErrInvoiceNotFound
		}
		if existing.PaidDate.IsZero() {
			now := time.Now().UTC()
			patch.PaidDate = &now
			log.Printf("[invoice][usecase] stamping paid date invoice_id=%s", id)
		}
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	log.Printf("[invoice][usecase] update success invoice_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

func (u *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInvoiceID
	}
	return u.repo.Delete(ctx, id)
}
