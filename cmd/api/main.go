package main

import (
	_ "github.com/joho/godotenv/autoload"

	_ "github.com/nails/driver-invoice-worldpay/docs"
	"github.com/nails/driver-invoice-worldpay/internal/adapter/http/routes"
)

// @title           Worldpay Invoice Driver API
// @version         1.0
// @description     Worldpay XML Direct charges, 3DS challenge sessions, refunds and stored tokens.
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
