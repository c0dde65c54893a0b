package handlers

import (
	"errors"
	"log"
	"net/http"

	"webstudio_backend/internal/adapter/http/dto/response"
	"webstudio_backend/internal/usecase"
	"webstudio_backend/internal/usecase/interfaces"
	"webstudio_backend/pkg"

	"github.com/gin-gonic/gin"
)

// ShowcaseHandler serves the read-only marketing listings.

type ShowcaseHandler struct {
	usecase usecase.IShowcaseUseCase
}

func NewShowcaseHandler(uc usecase.IShowcaseUseCase) *ShowcaseHandler {
	return &ShowcaseHandler{usecase: uc}
}

func (h *ShowcaseHandler) ListProjects(c *gin.Context) {
	projects, err := h.usecase.ListProjects(c.Request.Context())
	if err != nil {
		log.Printf("[showcase][handler] list projects failed err=%v", err)
		appErr := mapShowcaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjects(projects))
}

func (h *ShowcaseHandler) ListReviews(c *gin.Context) {
	reviews, err := h.usecase.ListReviews(c.Request.Context())
	if err != nil {
		log.Printf("[showcase][handler] list reviews failed err=%v", err)
		appErr := mapShowcaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReviews(reviews))
}

func mapShowcaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrStoreNotConfigured):
		return pkg.NewDomainErrorSimple("STORE_NOT_CONFIGURED", "Document store not initialized", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
