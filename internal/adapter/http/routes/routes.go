package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"

	_ "webstudio_backend/docs" // This will be auto-generated
	"webstudio_backend/internal/adapter/http/handlers"
	repository2 "webstudio_backend/internal/adapter/persistence/repository"
	"webstudio_backend/internal/infrastructure/database"
	"webstudio_backend/internal/infrastructure/mail"
	"webstudio_backend/internal/usecase"
	"webstudio_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	// The store may legitimately be absent (e.g. local front-end work).
	// Repositories receive a nil client and answer every call with a fixed
	// configuration error instead of attempting I/O.
	ddb, err := database.ConnectDynamoDB(context.Background())
	if err != nil {
		log.Printf("[startup] document store not configured: %v", err)
		ddb = nil
	}

	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)

	var mailer interfaces.IMailer
	resendMailer, err := mail.NewResendMailer(os.Getenv("RESEND_API_KEY"))
	if err != nil {
		log.Printf("[startup] mailer not configured, email sending disabled: %v", err)
	} else {
		mailer = resendMailer
	}

	mailFrom := os.Getenv("MAIL_FROM")
	if mailFrom == "" {
		mailFrom = "Studio <no-reply@localhost>"
	}

	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo)
	notificationUseCase := usecase.NewNotificationUseCase(mailer, mailFrom, os.Getenv("ADMIN_EMAIL"))
	showcaseUseCase := usecase.NewShowcaseUseCase(pickShowcaseRepo(ddb))

	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, notificationUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	showcaseHandler := handlers.NewShowcaseHandler(showcaseUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStudioRoutes(v1, invoiceHandler, quoteHandler, notificationHandler, showcaseHandler)
}

// pickShowcaseRepo selects the showcase backend: DynamoDB when explicitly
// requested and available, otherwise the seeded in-memory repository.
func pickShowcaseRepo(ddb *dynamodb.Client) interfaces.IShowcaseRepository {
	if strings.EqualFold(os.Getenv("SHOWCASE_BACKEND"), "dynamodb") && ddb != nil {
		log.Printf("[startup] showcase backend: dynamodb")
		return repository2.NewShowcaseDynamoRepository(ddb)
	}
	log.Printf("[startup] showcase backend: memory (seeded)")
	return repository2.NewSeededShowcaseMemoryRepository()
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
