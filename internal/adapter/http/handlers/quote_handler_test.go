package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"webstudio_backend/internal/adapter/http/handlers/mocks"
	"webstudio_backend/internal/domain/entities"
	"webstudio_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func quoteRouter(h *QuoteHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/quotes", h.List)
	r.POST("/v1/quotes", h.Submit)
	r.GET("/v1/quotes/:id", h.Get)
	r.PATCH("/v1/quotes/:id", h.Update)
	r.DELETE("/v1/quotes/:id", h.Delete)
	return r
}

func TestQuoteHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		notify := mocks.NewMockINotificationUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc, notify))

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"name":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body struct {
			Code string `json:"code"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Code != "MISSING_REQUIRED_FIELDS" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success with confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		notify := mocks.NewMockINotificationUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc, notify))

		uc.EXPECT().SubmitLead(gomock.Any(), gomock.AssignableToTypeOf(usecase.SubmitQuoteCommand{})).DoAndReturn(
			func(_ context.Context, cmd usecase.SubmitQuoteCommand) (entities.QuoteRequest, error) {
				if !cmd.Services.Design || cmd.Services.SEO {
					t.Fatalf("unexpected service flags: %+v", cmd.Services)
				}
				return entities.QuoteRequest{
					ID:          "q-1",
					Status:      entities.QuoteStatusNew,
					Name:        cmd.Name,
					Email:       cmd.Email,
					ProjectType: cmd.ProjectType,
					Services:    cmd.Services,
				}, nil
			},
		)
		notify.EXPECT().SendQuoteConfirmation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, lead usecase.QuoteLead) (usecase.Delivery, error) {
				if lead.Email != "ana@test.com" {
					t.Fatalf("unexpected lead: %+v", lead)
				}
				return usecase.Delivery{EmailID: "email-1", Message: "confirmation email sent"}, nil
			},
		)

		payload := `{"name":"Ana","email":"ana@test.com","projectType":"landing","services":{"design":true}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Success bool   `json:"success"`
			ID      string `json:"id"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !body.Success || body.ID != "q-1" || body.Message != "quote request received" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("mailer disabled still succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		notify := mocks.NewMockINotificationUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc, notify))

		uc.EXPECT().SubmitLead(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{ID: "q-1", Name: "Ana", Email: "ana@test.com", ProjectType: "landing"}, nil)
		notify.EXPECT().SendQuoteConfirmation(gomock.Any(), gomock.Any()).Return(usecase.Delivery{Disabled: true, Message: "email sending disabled"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"name":"Ana","email":"ana@test.com","projectType":"landing"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Message != "quote request received; email sending disabled" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("confirmation failure after persisted lead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		notify := mocks.NewMockINotificationUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc, notify))

		uc.EXPECT().SubmitLead(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{ID: "q-1", Name: "Ana", Email: "ana@test.com", ProjectType: "landing"}, nil)
		notify.EXPECT().SendQuoteConfirmation(gomock.Any(), gomock.Any()).Return(usecase.Delivery{}, errors.New("provider down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"name":"Ana","email":"ana@test.com","projectType":"landing"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body struct {
			Code string `json:"code"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Code != "EMAIL_FAILED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		notify := mocks.NewMockINotificationUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc, notify))

		uc.EXPECT().List(gomock.Any()).Return([]entities.QuoteRequest{{ID: "q-1", Status: entities.QuoteStatusNew}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Quotes []struct {
				ID string `json:"id"`
			} `json:"quotes"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body.Quotes) != 1 || body.Quotes[0].ID != "q-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		notify := mocks.NewMockINotificationUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc, notify))

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.QuoteRequest{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown field rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		notify := mocks.NewMockINotificationUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc, notify))

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1", bytes.NewBufferString(`{"email":"other@test.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		notify := mocks.NewMockINotificationUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc, notify))

		uc.EXPECT().Update(gomock.Any(), "q-1", gomock.Any()).Return(entities.QuoteRequest{}, usecase.ErrInvalidQuoteStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1", bytes.NewBufferString(`{"status":"archived"}`))
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
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		notify := mocks.NewMockINotificationUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc, notify))

		uc.EXPECT().Update(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, patch entities.QuotePatch) (entities.QuoteRequest, error) {
				if patch.Status == nil || *patch.Status != entities.QuoteStatusQuoted {
					t.Fatalf("unexpected patch: %+v", patch)
				}
				if patch.QuotedAmount == nil || *patch.QuotedAmount != "2500" {
					t.Fatalf("unexpected quoted amount: %+v", patch.QuotedAmount)
				}
				return entities.QuoteRequest{ID: id, Status: *patch.Status}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1", bytes.NewBufferString(`{"status":"quoted","quotedAmount":"2500"}`))
		req.Header.Set("Content-Type", "application/json")
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
		if !body.Success || body.Message != "quote request updated" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("idempotent success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		notify := mocks.NewMockINotificationUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc, notify))

		uc.EXPECT().Delete(gomock.Any(), "q-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
