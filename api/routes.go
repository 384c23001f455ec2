package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/htx-labs/transcriber-api/api/health"
	"github.com/htx-labs/transcriber-api/api/search"
	"github.com/htx-labs/transcriber-api/api/transcribe"
	"github.com/htx-labs/transcriber-api/api/transcriptions"
	"github.com/htx-labs/transcriber-api/api/types"
	_ "github.com/htx-labs/transcriber-api/docs/swagger"
	"github.com/htx-labs/transcriber-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		return fmt.Errorf("handler dependencies are not configured")
	}

	// Health is public and never rate limited
	health.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// Uploads are expensive; keep a tight per-client budget and a body
	// size cap sized for audio payloads
	transcribeGroup := engine.Group("/")
	transcribeGroup.Use(RequestSizeLimitWithSize(config.GetInt64("server.max_upload_bytes")))
	transcribeGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized,
		config.GetInt("rate_limiting.transcribe_rps"), config.GetInt("rate_limiting.transcribe_burst")))
	transcribe.RegisterRoutes(transcribeGroup, deps)

	// Read-only query endpoints share a looser budget
	queryGroup := engine.Group("/")
	queryGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized,
		config.GetInt("rate_limiting.query_rps"), config.GetInt("rate_limiting.query_burst")))
	transcriptions.RegisterRoutes(queryGroup, deps)
	search.RegisterRoutes(queryGroup, deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
