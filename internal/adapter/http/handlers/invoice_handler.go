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
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_PAYLOAD", "Invalid invoice payload", http.StatusBadRequest)
)

// InvoiceHandler handles the administrative invoice CRUD surface.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// List returns every invoice, newest first.
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[invoice][handler] list failed err=%v", err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.InvoiceListResponse{Invoices: response.FromInvoices(invoices)})
}

// Create stores a new invoice with a freshly generated invoice number.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		log.Printf("[invoice][handler] create failed err=%v", err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.CreateInvoiceResponse{
		Success: true,
		ID:      created.ID,
		Invoice: response.FromInvoice(created),
	})
}

// Get fetches a single invoice by ID.
func (h *InvoiceHandler) Get(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.InvoiceEnvelope{Invoice: response.FromInvoice(inv)})
}

// Update applies a partial update. Unknown body fields are rejected.
func (h *InvoiceHandler) Update(c *gin.Context) {
	var payload request.UpdateInvoiceRequest
	if err := bindStrict(c, &payload); err != nil {
		appErr := pkg.NewDomainError("INVALID_INVOICE_PAYLOAD", "Invalid invoice payload", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	patch, err := payload.ToPatch()
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		log.Printf("[invoice][handler] update failed invoice_id=%s err=%v", c.Param("id"), err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.UpdateInvoiceResponse{
		Success: true,
		Invoice: response.FromInvoice(updated),
	})
}

// Delete removes an invoice. There is no recovery path.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		log.Printf("[invoice][handler] delete failed invoice_id=%s err=%v", c.Param("id"), err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.DeleteResponse{Success: true, Message: "invoice deleted"})
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidInvoiceStatus), errors.Is(err, request.ErrInvalidDate):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrStoreNotConfigured):
		return pkg.NewDomainErrorSimple("STORE_NOT_CONFIGURED", "Document store not initialized", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
