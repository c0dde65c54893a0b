package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"webstudio_backend/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowcaseMemoryRepository_Seed(t *testing.T) {
	repo := NewSeededShowcaseMemoryRepository()

	projects, err := repo.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.True(t, projects[0].CreatedAt.After(projects[1].CreatedAt), "expected newest first")

	reviews, err := repo.ListReviews(context.Background())
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rating)
}

func TestShowcaseMemoryRepository_AddProject(t *testing.T) {
	repo := NewShowcaseMemoryRepository()

	created, err := repo.AddProject(context.Background(), entities.Project{Title: "Portfolio relaunch"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	projects, err := repo.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)

	// The returned slice is a copy; mutating it must not leak into the store.
	projects[0].Title = "changed"
	again, err := repo.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Portfolio relaunch", again[0].Title)
}

func TestShowcaseMemoryRepository_AddReviewKeepsSuppliedFields(t *testing.T) {
	repo := NewShowcaseMemoryRepository()

	stamp := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	created, err := repo.AddReview(context.Background(), entities.Review{ID: "r-1", Author: "M. Keller", Rating: 4, CreatedAt: stamp})
	require.NoError(t, err)
	assert.Equal(t, "r-1", created.ID)
	assert.True(t, created.CreatedAt.Equal(stamp))
}

func TestShowcaseMemoryRepository_ConcurrentAccess(t *testing.T) {
	repo := NewShowcaseMemoryRepository()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = repo.AddProject(context.Background(), entities.Project{Title: "p"})
		}()
		go func() {
			defer wg.Done()
			_, _ = repo.ListProjects(context.Background())
		}()
	}
	wg.Wait()

	projects, err := repo.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Len(t, projects, 16)
}
