package devserver

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// RouterDeps contains everything the router needs.
type RouterDeps struct {
	Server           *Server
	JWTService       *JWTService
	IdempotencyCache IdempotencyCache
	NewRelicApp      *newrelic.Application
}

// NewRouter creates the Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(CORSMiddleware())

	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(IdempotencyMiddleware(deps.IdempotencyCache))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	s := deps.Server
	authed := AuthMiddleware(deps.JWTService)

	api := router.Group("/api")
	{
		// Auth routes.
		auth := api.Group("/auth")
		{
			auth.POST("/login/admin", s.Login)
			auth.GET("/google", s.GoogleLogin)
			auth.POST("/logout", authed, s.Logout)
			auth.POST("/refresh", authed, s.Refresh)
			auth.GET("/profile", authed, s.Profile)
		}

		// Public tracking.
		api.GET("/tracking/:trackingNumber", s.TrackParcel)

		// Order routes.
		orders := api.Group("/orders", authed)
		{
			orders.GET("", s.ListOrders)
			orders.PUT("/:id/status", s.UpdateOrderStatus)
		}

		// Rider routes.
		riders := api.Group("/riders", authed)
		{
			riders.GET("", s.ListRiders)
			riders.GET("/active", s.ListActiveRiders)
			riders.GET("/pending", s.ListPendingRiders)
			riders.GET("/:id", s.GetRider)
			riders.DELETE("/:id", s.DeleteRider)
			riders.POST("/:id/approve", s.ApproveRider)
			riders.POST("/:id/reject", s.RejectRider)
		}

		// Customer routes.
		customers := api.Group("/customers", authed)
		{
			customers.GET("", s.ListCustomers)
			customers.PUT("/:id/status", s.UpdateCustomerStatus)
		}
	}

	return router
}
