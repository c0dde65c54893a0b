package repository

import (
	"context"
	"testing"

	"webstudio_backend/internal/domain/entities"
	"webstudio_backend/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
)

// A nil client means the document store was never configured. Every method
// must fail fast with the sentinel instead of dereferencing the client.
func TestInvoiceDynamoRepository_NilClientGating(t *testing.T) {
	repo := NewInvoiceDynamoRepository(nil)
	ctx := context.Background()

	_, err := repo.Create(ctx, entities.Invoice{ID: "inv-1"})
	assert.ErrorIs(t, err, interfaces.ErrStoreNotConfigured)

	_, err = repo.GetByID(ctx, "inv-1")
	assert.ErrorIs(t, err, interfaces.ErrStoreNotConfigured)

	_, err = repo.List(ctx)
	assert.ErrorIs(t, err, interfaces.ErrStoreNotConfigured)

	_, err = repo.Update(ctx, "inv-1", entities.InvoicePatch{})
	assert.ErrorIs(t, err, interfaces.ErrStoreNotConfigured)

	assert.ErrorIs(t, repo.Delete(ctx, "inv-1"), interfaces.ErrStoreNotConfigured)

	_, err = repo.ExistsByNumber(ctx, "INV-202608-0001")
	assert.ErrorIs(t, err, interfaces.ErrStoreNotConfigured)
}

func TestQuoteDynamoRepository_NilClientGating(t *testing.T) {
	repo := NewQuoteDynamoRepository(nil)
	ctx := context.Background()

	_, err := repo.Create(ctx, entities.QuoteRequest{ID: "q-1"})
	assert.ErrorIs(t, err, interfaces.ErrStoreNotConfigured)

	_, err = repo.GetByID(ctx, "q-1")
	assert.ErrorIs(t, err, interfaces.ErrStoreNotConfigured)

	_, err = repo.List(ctx)
	assert.ErrorIs(t, err, interfaces.ErrStoreNotConfigured)

	_, err = repo.Update(ctx, "q-1", entities.QuotePatch{})
	assert.ErrorIs(t, err, interfaces.ErrStoreNotConfigured)

	assert.ErrorIs(t, repo.Delete(ctx, "q-1"), interfaces.ErrStoreNotConfigured)
}

func TestShowcaseDynamoRepository_NilClientGating(t *testing.T) {
	repo := NewShowcaseDynamoRepository(nil)
	ctx := context.Background()

	_, err := repo.ListProjects(ctx)
	assert.ErrorIs(t, err, interfaces.ErrStoreNotConfigured)

	_, err = repo.ListReviews(ctx)
	assert.ErrorIs(t, err, interfaces.ErrStoreNotConfigured)

	_, err = repo.AddProject(ctx, entities.Project{})
	assert.ErrorIs(t, err, interfaces.ErrStoreNotConfigured)

	_, err = repo.AddReview(ctx, entities.Review{})
	assert.ErrorIs(t, err, interfaces.ErrStoreNotConfigured)
}
