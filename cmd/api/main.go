package main

import (
	_ "laundry_pos/docs"
	"laundry_pos/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Laundry POS API
// @version         1.0
// @description     POS service (catalog, customers, order drafts, checkout) fronting the laundry backend.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
