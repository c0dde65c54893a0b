package interfaces

import (
	"context"

	"webstudio_backend/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for QuoteRequest.
//
// The back office must be able to:
//   - persist a public quote-form submission at intake
//   - list every request, newest first, for triage
//   - advance status / attach notes and a quoted amount
//   - delete a request outright (no soft delete, no audit trail)
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	List(ctx context.Context) ([]entities.QuoteRequest, error)
	Update(ctx context.Context, id string, patch entities.QuotePatch) (entities.QuoteRequest, error)
	Delete(ctx context.Context, id string) error
}
