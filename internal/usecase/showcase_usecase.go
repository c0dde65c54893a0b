package usecase

import (
	"context"

	"webstudio_backend/internal/domain/entities"
	"webstudio_backend/internal/usecase/interfaces"
)

// IShowcaseUseCase serves the read-only marketing listings.
type IShowcaseUseCase interface {
	ListProjects(ctx context.Context) ([]entities.Project, error)
	ListReviews(ctx context.Context) ([]entities.Review, error)
}

type ShowcaseUseCase struct {
	repo interfaces.IShowcaseRepository
}

var _ IShowcaseUseCase = (*ShowcaseUseCase)(nil)

func NewShowcaseUseCase(repo interfaces.IShowcaseRepository) *ShowcaseUseCase {
	return &ShowcaseUseCase{repo: repo}
}

func (u *ShowcaseUseCase) ListProjects(ctx context.Context) ([]entities.Project, error) {
	return u.repo.ListProjects(ctx)
}

func (u *ShowcaseUseCase) ListReviews(ctx context.Context) ([]entities.Review, error) {
	return u.repo.ListReviews(ctx)
}
