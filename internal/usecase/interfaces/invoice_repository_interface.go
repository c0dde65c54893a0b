package interfaces

import (
	"context"
	"errors"

	"webstudio_backend/internal/domain/entities"
)

// ErrStoreNotConfigured is returned by every repository method when the
// document store was not configured at startup. It is checked before any I/O.
var ErrStoreNotConfigured = errors.New("document store not configured")

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// Conventions shared by all methods:
//   - a zero-value entity with an empty ID means "not found", not an error
//   - Update applies only the fields present in the patch
//   - List returns the full collection, newest first
type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	Update(ctx context.Context, id string, patch entities.InvoicePatch) (entities.Invoice, error)
	Delete(ctx context.Context, id string) error
	ExistsByNumber(ctx context.Context, number string) (bool, error)
}
