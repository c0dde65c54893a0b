package handlers

import (
	"errors"
	"log"
	"net/http"

	"webstudio_backend/internal/adapter/http/dto/request"
	"webstudio_backend/internal/adapter/http/dto/response"
	"webstudio_backend/internal/usecase"
	"webstudio_backend/internal/usecase/interfaces"
	"webstudio_backend/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errMissingQuoteFields = pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", "name, email and projectType are required", http.StatusBadRequest)
)

// QuoteHandler handles public quote-request intake and the back-office
// management surface.

type QuoteHandler struct {
	usecase       usecase.IQuoteUseCase
	notifications usecase.INotificationUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, notifications usecase.INotificationUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc, notifications: notifications}
}

// Submit accepts an unauthenticated quote-form submission. The record is
// persisted first; only then is the confirmation attempted, and a failed
// confirmation never rolls the write back.
func (h *QuoteHandler) Submit(c *gin.Context) {
	var payload request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errMissingQuoteFields.HTTPStatus, errMissingQuoteFields.ToHTTPError())
		return
	}

	created, err := h.usecase.SubmitLead(c.Request.Context(), payload.ToCommand())
	if err != nil {
		log.Printf("[quote][handler] submit failed err=%v", err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	delivery, err := h.notifications.SendQuoteConfirmation(c.Request.Context(), usecase.QuoteLead{
		Name:        created.Name,
		Email:       created.Email,
		Phone:       created.Phone,
		Company:     created.Company,
		ProjectType: created.ProjectType,
		Services:    created.Services,
		Timeline:    created.Timeline,
		Budget:      created.Budget,
		Description: created.Description,
	})
	if err != nil {
		// The lead is already stored; report the email failure.
		log.Printf("[quote][handler] confirmation failed quote_id=%s err=%v", created.ID, err)
		appErr := pkg.NewDomainError("EMAIL_FAILED", "Failed to send confirmation email", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	message := "quote request received"
	if delivery.Disabled {
		message = "quote request received; email sending disabled"
	}
	c.JSON(http.StatusCreated, response.CreateQuoteResponse{
		Success: true,
		ID:      created.ID,
		Message: message,
	})
}

// List returns every quote request, newest first.
func (h *QuoteHandler) List(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[quote][handler] list failed err=%v", err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.QuoteListResponse{Quotes: response.FromQuotes(quotes)})
}

// Get fetches a single quote request by ID.
func (h *QuoteHandler) Get(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.QuoteEnvelope{Quote: response.FromQuote(q)})
}

// Update applies a partial update; only status, notes and quotedAmount are
// honored, anything else in the body is rejected.
func (h *QuoteHandler) Update(c *gin.Context) {
	var payload request.UpdateQuoteRequest
	if err := bindStrict(c, &payload); err != nil {
		appErr := pkg.NewDomainError("INVALID_QUOTE_PAYLOAD", "Invalid quote payload", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if _, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch()); err != nil {
		log.Printf("[quote][handler] update failed quote_id=%s err=%v", c.Param("id"), err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.UpdateQuoteResponse{Success: true, Message: "quote request updated"})
}

// Delete removes a quote request outright; no soft delete, no audit trail.
func (h *QuoteHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		log.Printf("[quote][handler] delete failed quote_id=%s err=%v", c.Param("id"), err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.DeleteResponse{Success: true, Message: "quote request deleted"})
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingQuoteFields):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", "name, email and projectType are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidQuoteStatus):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrStoreNotConfigured):
		return pkg.NewDomainErrorSimple("STORE_NOT_CONFIGURED", "Document store not initialized", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
