package request

import (
	"strings"

	"webstudio_backend/internal/domain/entities"
	"webstudio_backend/internal/usecase"
)

// ServiceFlagsRequest mirrors the checkbox group on the quote form. Absent
// flags decode to false, so the stored document always carries all six.
type ServiceFlagsRequest struct {
	Design         bool `json:"design"`
	Development    bool `json:"development"`
	Ecommerce      bool `json:"ecommerce"`
	CustomSoftware bool `json:"customSoftware"`
	SEO            bool `json:"seo"`
	Maintenance    bool `json:"maintenance"`
}

func (r ServiceFlagsRequest) toFlags() entities.ServiceFlags {
	return entities.ServiceFlags{
		Design:         r.Design,
		Development:    r.Development,
		Ecommerce:      r.Ecommerce,
		CustomSoftware: r.CustomSoftware,
		SEO:            r.SEO,
		Maintenance:    r.Maintenance,
	}
}

// SubmitQuoteRequest is the public quote-form payload.
type SubmitQuoteRequest struct {
	Name        string              `json:"name" binding:"required"`
	Email       string              `json:"email" binding:"required,email"`
	Phone       string              `json:"phone"`
	Company     string              `json:"company"`
	ProjectType string              `json:"projectType" binding:"required"`
	Services    ServiceFlagsRequest `json:"services"`
	Timeline    string              `json:"timeline"`
	Budget      string              `json:"budget"`
	HasContent  string              `json:"hasContent"`
	Description string              `json:"description"`
}

func (r SubmitQuoteRequest) ToCommand() usecase.SubmitQuoteCommand {
	return usecase.SubmitQuoteCommand{
		Name:        strings.TrimSpace(r.Name),
		Email:       strings.TrimSpace(r.Email),
		Phone:       r.Phone,
		Company:     r.Company,
		ProjectType: strings.TrimSpace(r.ProjectType),
		Services:    r.Services.toFlags(),
		Timeline:    r.Timeline,
		Budget:      r.Budget,
		HasContent:  r.HasContent,
		Description: r.Description,
	}
}

// UpdateQuoteRequest is the back-office PATCH body. Only these three fields
// are honored; anything else in the body is rejected before it can reach the
// store.
type UpdateQuoteRequest struct {
	Status       *string `json:"status"`
	Notes        *string `json:"notes"`
	QuotedAmount *string `json:"quotedAmount"`
}

func (r UpdateQuoteRequest) ToPatch() entities.QuotePatch {
	patch := entities.QuotePatch{
		Notes:        r.Notes,
		QuotedAmount: r.QuotedAmount,
	}
	if r.Status != nil {
		status := entities.QuoteStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}
