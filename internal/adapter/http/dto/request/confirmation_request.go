package request

import "webstudio_backend/internal/usecase"

// QuoteConfirmationRequest triggers the quote-request confirmation pair
// (customer receipt + admin copy).
type QuoteConfirmationRequest struct {
	Name        string              `json:"name" binding:"required"`
	Email       string              `json:"email" binding:"required,email"`
	Phone       string              `json:"phone"`
	Company     string              `json:"company"`
	ProjectType string              `json:"projectType" binding:"required"`
	Services    ServiceFlagsRequest `json:"services"`
	Timeline    string              `json:"timeline"`
	Budget      string              `json:"budget"`
	Description string              `json:"description"`
}

func (r QuoteConfirmationRequest) ToLead() usecase.QuoteLead {
	return usecase.QuoteLead{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Company:     r.Company,
		ProjectType: r.ProjectType,
		Services:    r.Services.toFlags(),
		Timeline:    r.Timeline,
		Budget:      r.Budget,
		Description: r.Description,
	}
}

// ContactConfirmationRequest triggers the contact-message confirmation pair.
type ContactConfirmationRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

func (r ContactConfirmationRequest) ToLead() usecase.ContactLead {
	return usecase.ContactLead{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Subject: r.Subject,
		Message: r.Message,
	}
}

// CallbackConfirmationRequest triggers the customer-only callback receipt.
type CallbackConfirmationRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	PreferredTime string `json:"preferredTime"`
	Message       string `json:"message"`
}

func (r CallbackConfirmationRequest) ToLead() usecase.CallbackLead {
	return usecase.CallbackLead{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		PreferredTime: r.PreferredTime,
		Message:       r.Message,
	}
}
