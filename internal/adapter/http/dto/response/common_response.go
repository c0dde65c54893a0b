package response

import (
	"time"

	"webstudio_backend/internal/domain/entities"
	"webstudio_backend/internal/usecase"
)

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ConfirmationResponse reports the outcome of a notification dispatch.
// EmailID is empty when sending is disabled; the message says so.
type ConfirmationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	EmailID string `json:"emailId,omitempty"`
}

func FromDelivery(d usecase.Delivery) ConfirmationResponse {
	return ConfirmationResponse{
		Success: true,
		Message: d.Message,
		EmailID: d.EmailID,
	}
}

type ProjectResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Tech      []string  `json:"tech"`
	URL       string    `json:"url,omitempty"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

func FromProjects(projects []entities.Project) ProjectListResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, ProjectResponse(p))
	}
	return ProjectListResponse{Projects: out}
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Company   string    `json:"company,omitempty"`
	Rating    int       `json:"rating"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

func FromReviews(reviews []entities.Review) ReviewListResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, ReviewResponse(r))
	}
	return ReviewListResponse{Reviews: out}
}
