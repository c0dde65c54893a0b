package interfaces

import (
	"context"

	"webstudio_backend/internal/domain/entities"
)

// IShowcaseRepository serves the read-only marketing listings (portfolio
// projects and client reviews). Two implementations exist: a mutex-guarded
// in-memory one for development/tests and a DynamoDB-backed one, selected at
// process start.
type IShowcaseRepository interface {
	ListProjects(ctx context.Context) ([]entities.Project, error)
	ListReviews(ctx context.Context) ([]entities.Review, error)
	AddProject(ctx context.Context, p entities.Project) (entities.Project, error)
	AddReview(ctx context.Context, r entities.Review) (entities.Review, error)
}
