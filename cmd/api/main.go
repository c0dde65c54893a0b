package main

import (
	_ "webstudio_backend/docs"
	"webstudio_backend/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Web Studio API
// @version         1.0
// @description     Back office for a freelance web-development studio: invoices, quote requests, lead confirmations and showcase listings backed by DynamoDB.

// @contact.name   Studio
// @contact.email  hello@localhost

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
