package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Fhadshnde/Matjer-Dashborad/internal/api/handlers"
	"github.com/Fhadshnde/Matjer-Dashborad/internal/api/middleware"
	"github.com/Fhadshnde/Matjer-Dashborad/internal/catalog"
	"github.com/Fhadshnde/Matjer-Dashborad/internal/config"
	"github.com/Fhadshnde/Matjer-Dashborad/internal/service"
	"github.com/Fhadshnde/Matjer-Dashborad/internal/session"
)

// NewRouter creates and configures the Gin router
func NewRouter(
	cfg *config.Config,
	client *catalog.Client,
	agg *service.Aggregator,
	offers *service.OfferService,
	sess *session.Session,
	logger *zap.Logger,
) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		// Read routes serve from the in-memory state
		v1.GET("/offers", handlers.HandleListOffers(agg, logger))
		v1.GET("/offers/:id", handlers.HandleGetOffer(client, logger))
		v1.GET("/offers/:id/products", handlers.HandleGetOfferProducts(client, logger))
		v1.GET("/products", handlers.HandleListProducts(agg))
		v1.GET("/categories", handlers.HandleListCategories(agg))
		v1.GET("/sections", handlers.HandleListSections(agg))

		// Mutating routes require the admin API key
		adminRoutes := v1.Group("")
		adminRoutes.Use(middleware.AdminAuth(cfg.Admin.APIKeyHash, logger))
		{
			adminRoutes.POST("/session", handlers.HandleSetSession(sess, agg, logger))
			adminRoutes.DELETE("/session", handlers.HandleClearSession(sess, logger))
			adminRoutes.POST("/refresh", handlers.HandleRefresh(agg))

			adminRoutes.POST("/offers", handlers.HandleCreateOffer(offers, logger))
			adminRoutes.PATCH("/offers/:id/toggle", handlers.HandleToggleOffer(offers, logger))
			adminRoutes.PATCH("/offers/:id/deactivate", handlers.HandleDeactivateOffer(offers, logger))
			adminRoutes.DELETE("/offers/:id", handlers.HandleDeleteOffer(offers, logger))
			adminRoutes.POST("/offers/:id/products", handlers.HandleAddOfferProduct(offers, logger))
			adminRoutes.DELETE("/offers/:id/products/:productId", handlers.HandleRemoveOfferProduct(offers, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
