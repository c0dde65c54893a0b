package routes

import (
	"webstudio_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoices = "/invoices"
	PathQuotes   = "/quotes"
)

func addStudioRoutes(
	rg *gin.RouterGroup,
	invoiceHandler *handlers.InvoiceHandler,
	quoteHandler *handlers.QuoteHandler,
	notificationHandler *handlers.NotificationHandler,
	showcaseHandler *handlers.ShowcaseHandler,
) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", invoiceHandler.List)
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.PATCH("/:id", invoiceHandler.Update)
		invoices.DELETE("/:id", invoiceHandler.Delete)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", quoteHandler.List)
		quotes.POST("", quoteHandler.Submit)
		quotes.GET("/:id", quoteHandler.Get)
		quotes.PATCH("/:id", quoteHandler.Update)
		quotes.DELETE("/:id", quoteHandler.Delete)
	}

	// Lead confirmation endpoints called by the marketing site after a form
	// submit.
	rg.POST("/send-quote-confirmation", notificationHandler.SendQuoteConfirmation)
	rg.POST("/send-contact-confirmation", notificationHandler.SendContactConfirmation)
	rg.POST("/send-callback-confirmation", notificationHandler.SendCallbackConfirmation)

	// Read-only listings consumed by the marketing pages.
	rg.GET("/projects", showcaseHandler.ListProjects)
	rg.GET("/reviews", showcaseHandler.ListReviews)
}
