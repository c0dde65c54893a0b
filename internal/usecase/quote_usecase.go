package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"webstudio_backend/internal/domain/entities"
	"webstudio_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound      = errors.New("quote request not found")
	ErrInvalidQuoteID     = errors.New("invalid quote request id")
	ErrMissingQuoteFields = errors.New("name, email and projectType are required")
	ErrInvalidQuoteStatus = errors.New("invalid quote status")
)

// SubmitQuoteCommand carries a public quote-form submission into the domain.
// Optional fields arrive already normalized by the handler (empty string /
// false), never undefined, so the stored document always has the full shape.
type SubmitQuoteCommand struct {
	Name        string
	Email       string
	Phone       string
	Company     string
	ProjectType string
	Services    entities.ServiceFlags
	Timeline    string
	Budget      string
	HasContent  string
	Description string
}

// IQuoteUseCase exposes quote-request operations: public intake plus the
// back-office management surface.
type IQuoteUseCase interface {
	SubmitLead(ctx context.Context, cmd SubmitQuoteCommand) (entities.QuoteRequest, error)
	List(ctx context.Context) ([]entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	Update(ctx context.Context, id string, patch entities.QuotePatch) (entities.QuoteRequest, error)
	Delete(ctx context.Context, id string) error
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

func (u *QuoteUseCase) SubmitLead(ctx context.Context, cmd SubmitQuoteCommand) (entities.QuoteRequest, error) {
	name := strings.TrimSpace(cmd.Name)
	email := strings.TrimSpace(cmd.Email)
	projectType := strings.TrimSpace(cmd.ProjectType)
	if name == "" || email == "" || projectType == "" {
		return entities.QuoteRequest{}, ErrMissingQuoteFields
	}

	now := time.Now().UTC()
	q := entities.QuoteRequest{
		ID:          uuid.NewString(),
		Status:      entities.QuoteStatusNew,
		ProjectType: projectType,
		Services:    cmd.Services,
		Timeline:    cmd.Timeline,
		Budget:      cmd.Budget,
		HasContent:  cmd.HasContent,
		Name:        name,
		Email:       email,
		Phone:       cmd.Phone,
		Company:     cmd.Company,
		Description: cmd.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] submit failed email=%s err=%v", email, err)
		return entities.QuoteRequest{}, err
	}
	log.Printf("[quote][usecase] submit success quote_id=%s project_type=%s", created.ID, created.ProjectType)
	return created, nil
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.QuoteRequest, error) {
	return u.repo.List(ctx)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRequest{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if q.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) Update(ctx context.Context, id string, patch entities.QuotePatch) (entities.QuoteRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRequest{}, ErrInvalidQuoteID
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return entities.QuoteRequest{}, ErrInvalidQuoteStatus
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if updated.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] update success quote_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

func (u *QuoteUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}
	// Idempotent: deleting an already-absent request is a success.
	return u.repo.Delete(ctx, id)
}
