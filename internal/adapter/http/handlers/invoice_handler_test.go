package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"webstudio_backend/internal/adapter/http/handlers/mocks"
	"webstudio_backend/internal/domain/entities"
	"webstudio_backend/internal/usecase"
	"webstudio_backend/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func invoiceRouter(h *InvoiceHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/invoices", h.List)
	r.POST("/v1/invoices", h.Create)
	r.GET("/v1/invoices/:id", h.Get)
	r.PATCH("/v1/invoices/:id", h.Update)
	r.DELETE("/v1/invoices/:id", h.Delete)
	return r
}

func TestInvoiceHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().List(gomock.Any()).Return([]entities.Invoice{
			{ID: "inv-1", Number: "INV-202608-0001", Total: 119},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Invoices []struct {
				ID     string `json:"id"`
				Number string `json:"invoiceNumber"`
			} `json:"invoices"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body.Invoices) != 1 || body.Invoices[0].Number != "INV-202608-0001" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("store not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().List(gomock.Any()).Return(nil, interfaces.ErrStoreNotConfigured)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body struct {
			Code  string `json:"code"`
			Error string `json:"error"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Code != "STORE_NOT_CONFIGURED" || body.Error != "Document store not initialized" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(NewInvoiceHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid due date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(NewInvoiceHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(`{"clientName":"Acme","dueDate":"next tuesday"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateInvoiceCommand{})).DoAndReturn(
			func(_ context.Context, cmd usecase.CreateInvoiceCommand) (entities.Invoice, error) {
				if cmd.ClientName != "Acme" || cmd.Total != 119 {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Invoice{
					ID:         "inv-1",
					Number:     "INV-202608-0001",
					ClientName: cmd.ClientName,
					Total:      cmd.Total,
					CreatedAt:  time.Now().UTC(),
					UpdatedAt:  time.Now().UTC(),
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(`{"clientName":"Acme","subtotal":100,"tax":19,"total":119}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Success bool   `json:"success"`
			ID      string `json:"id"`
			Invoice struct {
				Number string `json:"invoiceNumber"`
			} `json:"invoice"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !body.Success || body.ID != "inv-1" || body.Invoice.Number != "INV-202608-0001" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success hides zero dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Number: "INV-202608-0001"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Invoice map[string]any `json:"invoice"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if _, ok := body.Invoice["paidDate"]; ok {
			t.Fatalf("expected paidDate omitted: %s", w.Body.String())
		}
		if _, ok := body.Invoice["dueDate"]; ok {
			t.Fatalf("expected dueDate omitted: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown field rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(NewInvoiceHandler(uc))

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1", bytes.NewBufferString(`{"invoiceNumber":"INV-999999-0000"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("status change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().Update(gomock.Any(), "inv-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, patch entities.InvoicePatch) (entities.Invoice, error) {
				if patch.Status == nil || *patch.Status != entities.InvoiceStatusPaid {
					t.Fatalf("unexpected patch: %+v", patch)
				}
				return entities.Invoice{ID: id, Status: *patch.Status, PaidDate: time.Now().UTC()}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1", bytes.NewBufferString(`{"status":"paid"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Success bool `json:"success"`
			Invoice struct {
				Status   string `json:"status"`
				PaidDate string `json:"paidDate"`
			} `json:"invoice"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !body.Success || body.Invoice.Status != "paid" || body.Invoice.PaidDate == "" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().Update(gomock.Any(), "missing", gomock.Any()).Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/missing", bytes.NewBufferString(`{"notes":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().Delete(gomock.Any(), "inv-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/invoices/inv-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !body.Success || body.Message != "invoice deleted" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("store not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().Delete(gomock.Any(), "inv-1").Return(interfaces.ErrStoreNotConfigured)

		req := httptest.NewRequest(http.MethodDelete, "/v1/invoices/inv-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
