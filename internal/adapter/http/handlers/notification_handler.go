package handlers

import (
	"errors"
	"log"
	"net/http"

	"webstudio_backend/internal/adapter/http/dto/request"
	"webstudio_backend/internal/adapter/http/dto/response"
	"webstudio_backend/internal/usecase"
	"webstudio_backend/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the three lead-confirmation endpoints. Each
// validates its required fields, dispatches through the notification usecase
// and reports the customer-facing outcome; admin-copy failures never surface
// here.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// SendQuoteConfirmation emails the customer receipt and an admin copy for a
// quote request.
func (h *NotificationHandler) SendQuoteConfirmation(c *gin.Context) {
	var payload request.QuoteConfirmationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := missingLeadFields("name, email and projectType are required")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.dispatch(c, func() (usecase.Delivery, error) {
		return h.usecase.SendQuoteConfirmation(c.Request.Context(), payload.ToLead())
	})
}

// SendContactConfirmation emails the customer receipt and an admin copy for a
// contact message.
func (h *NotificationHandler) SendContactConfirmation(c *gin.Context) {
	var payload request.ContactConfirmationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := missingLeadFields("name, email and message are required")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.dispatch(c, func() (usecase.Delivery, error) {
		return h.usecase.SendContactConfirmation(c.Request.Context(), payload.ToLead())
	})
}

// SendCallbackConfirmation emails the customer-only callback receipt.
func (h *NotificationHandler) SendCallbackConfirmation(c *gin.Context) {
	var payload request.CallbackConfirmationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := missingLeadFields("name, email and phone are required")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.dispatch(c, func() (usecase.Delivery, error) {
		return h.usecase.SendCallbackConfirmation(c.Request.Context(), payload.ToLead())
	})
}

func (h *NotificationHandler) dispatch(c *gin.Context, send func() (usecase.Delivery, error)) {
	delivery, err := send()
	if err != nil {
		log.Printf("[notify][handler] dispatch failed err=%v", err)
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDelivery(delivery))
}

func missingLeadFields(message string) *pkg.AppError {
	return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", message, http.StatusBadRequest)
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrIncompleteLead):
		return pkg.NewDomainError("MISSING_REQUIRED_FIELDS", "Missing required lead fields", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("EMAIL_FAILED", "Failed to send confirmation email", err, http.StatusInternalServerError)
	}
}
