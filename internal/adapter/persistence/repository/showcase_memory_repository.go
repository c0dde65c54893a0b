package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"webstudio_backend/internal/domain/entities"
	"webstudio_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ShowcaseMemoryRepository is the in-process showcase store used in
// development and tests. All access goes through the mutex; the slices are
// never exposed directly, callers always get copies.
type ShowcaseMemoryRepository struct {
	mu       sync.Mutex
	projects []entities.Project
	reviews  []entities.Review
}

var _ interfaces.IShowcaseRepository = (*ShowcaseMemoryRepository)(nil)

func NewShowcaseMemoryRepository() *ShowcaseMemoryRepository {
	return &ShowcaseMemoryRepository{}
}

// NewSeededShowcaseMemoryRepository returns a repository pre-filled with the
// placeholder portfolio shown before real content is loaded.
func NewSeededShowcaseMemoryRepository() *ShowcaseMemoryRepository {
	r := NewShowcaseMemoryRepository()
	now := time.Now().UTC()
	r.projects = []entities.Project{
		{
			ID:        uuid.NewString(),
			Title:     "Bakery storefront",
			Summary:   "E-commerce site with online ordering for a local bakery.",
			Tech:      []string{"next.js", "stripe"},
			Featured:  true,
			CreatedAt: now.Add(-48 * time.Hour),
		},
		{
			ID:        uuid.NewString(),
			Title:     "Clinic booking portal",
			Summary:   "Appointment booking and reminders for a physiotherapy clinic.",
			Tech:      []string{"react", "postgres"},
			CreatedAt: now.Add(-24 * time.Hour),
		},
	}
	r.reviews = []entities.Review{
		{
			ID:        uuid.NewString(),
			Author:    "M. Keller",
			Company:   "Keller & Sons",
			Rating:    5,
			Body:      "Delivered ahead of schedule and exactly to brief.",
			CreatedAt: now.Add(-72 * time.Hour),
		},
	}
	return r
}

func (r *ShowcaseMemoryRepository) ListProjects(_ context.Context) ([]entities.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entities.Project, len(r.projects))
	copy(out, r.projects)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ShowcaseMemoryRepository) ListReviews(_ context.Context) ([]entities.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entities.Review, len(r.reviews))
	copy(out, r.reviews)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ShowcaseMemoryRepository) AddProject(_ context.Context, p entities.Project) (entities.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	r.projects = append(r.projects, p)
	return p, nil
}

func (r *ShowcaseMemoryRepository) AddReview(_ context.Context, rev entities.Review) (entities.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rev.ID == "" {
		rev.ID = uuid.NewString()
	}
	if rev.CreatedAt.IsZero() {
		rev.CreatedAt = time.Now().UTC()
	}
	r.reviews = append(r.reviews, rev)
	return rev, nil
}
