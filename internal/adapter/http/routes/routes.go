package routes

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/nails/driver-invoice-worldpay/docs"
	"github.com/nails/driver-invoice-worldpay/internal/config"
)

const defaultPort = "8080"

// Run will start the server
func Run() {
	ctx := context.Background()
	settings, err := config.Load(config.Getenv("WORLDPAY_SETTINGS_FILE", config.DefaultSettingsFile))
	if err != nil {
		log.Fatalf("Failed to load worldpay settings: %v", err)
	}
	h, err := buildHandlers(ctx, settings)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	router := NewRouter(h)
	if err := router.Run(":" + config.Getenv("PORT", defaultPort)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter registers middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorldpayRoutes(v1, h)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
