package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups everything the router serves
type Handlers struct {
	TopUp   *handler.TopUpHandler
	Credit  *handler.CreditHandler
	Webhook *handler.WebhookHandler
	Events  *handler.EventsHandler
	Health  *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API. Webhooks authenticate through
// their provider's shared secret; every user route needs a bearer token.
func SetupRoutes(router *gin.Engine, h Handlers, verifier middleware.TokenVerifier) {
	router.GET("/health", h.Health.Ready)
	router.GET("/health/live", h.Health.Live)

	api := router.Group("/api")
	{
		api.GET("/packages", h.TopUp.ListPackages)
		api.POST("/webhooks/:provider", h.Webhook.Receive)
	}

	user := api.Group("", middleware.Authenticate(verifier))
	{
		user.POST("/topup", h.TopUp.CreateTopUp)
		user.POST("/topup/status", h.TopUp.CheckStatus)
		user.GET("/transactions", h.TopUp.ListTransactions)
		user.GET("/transactions/:externalId/webhooks", h.TopUp.ListDeliveries)

		user.GET("/credits", h.Credit.GetBalance)
		user.GET("/credits/check", h.Credit.CheckCredits)
		user.POST("/credits/deduct", h.Credit.Deduct)
		user.GET("/credits/history", h.Credit.History)
		user.GET("/credits/audit", h.Credit.Audit)

		user.GET("/events", h.Events.Stream)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(allowedOrigins))
}

// NewRouter builds a gin engine with the middleware chain and routes installed
func NewRouter(logger coreport.Logger, allowedOrigins []string, h Handlers, verifier middleware.TokenVerifier) *gin.Engine {
	router := gin.New()
	SetupMiddlewares(router, logger, allowedOrigins)
	SetupRoutes(router, h, verifier)
	return router
}
