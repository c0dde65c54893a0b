package response

import (
	"time"

	"webstudio_backend/internal/domain/entities"
)

type ServiceFlagsResponse struct {
	Design         bool `json:"design"`
	Development    bool `json:"development"`
	Ecommerce      bool `json:"ecommerce"`
	CustomSoftware bool `json:"customSoftware"`
	SEO            bool `json:"seo"`
	Maintenance    bool `json:"maintenance"`
}

type QuoteResponse struct {
	ID           string               `json:"id"`
	Status       string               `json:"status"`
	ProjectType  string               `json:"projectType"`
	Services     ServiceFlagsResponse `json:"services"`
	Timeline     string               `json:"timeline"`
	Budget       string               `json:"budget"`
	HasContent   string               `json:"hasContent"`
	Name         string               `json:"name"`
	Email        string               `json:"email"`
	Phone        string               `json:"phone"`
	Company      string               `json:"company"`
	Description  string               `json:"description"`
	Notes        string               `json:"notes"`
	QuotedAmount string               `json:"quotedAmount"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

func FromQuote(q entities.QuoteRequest) QuoteResponse {
	return QuoteResponse{
		ID:          q.ID,
		Status:      string(q.Status),
		ProjectType: q.ProjectType,
		Services: ServiceFlagsResponse{
			Design:         q.Services.Design,
			Development:    q.Services.Development,
			Ecommerce:      q.Services.Ecommerce,
			CustomSoftware: q.Services.CustomSoftware,
			SEO:            q.Services.SEO,
			Maintenance:    q.Services.Maintenance,
		},
		Timeline:     q.Timeline,
		Budget:       q.Budget,
		HasContent:   q.HasContent,
		Name:         q.Name,
		Email:        q.Email,
		Phone:        q.Phone,
		Company:      q.Company,
		Description:  q.Description,
		Notes:        q.Notes,
		QuotedAmount: q.QuotedAmount,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.QuoteRequest) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

type QuoteListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
}

type QuoteEnvelope struct {
	Quote QuoteResponse `json:"quote"`
}

type CreateQuoteResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

type UpdateQuoteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
