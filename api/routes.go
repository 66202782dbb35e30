package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/lexivox/speech-api/api/attempts"
	"github.com/lexivox/speech-api/api/health"
	"github.com/lexivox/speech-api/api/types"
	"github.com/lexivox/speech-api/api/version"
	_ "github.com/lexivox/speech-api/docs/swagger"
	attemptsService "github.com/lexivox/speech-api/internal/services/attempts"
	"github.com/lexivox/speech-api/internal/services/scoring"
	"github.com/lexivox/speech-api/internal/services/stt"
	"github.com/lexivox/speech-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Load config for API routes
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// Initialize services if not already set
	if deps == nil {
		deps = &types.Dependencies{}
	}

	if deps.Transcriber == nil {
		deps.Transcriber = stt.NewClient(cfg.STT)
	}

	if deps.Scorer == nil {
		deps.Scorer = scoring.NewService(cfg.Scoring)
	}

	if deps.MinAudioBytes <= 0 {
		deps.MinAudioBytes = cfg.Quality.MinimumFileSizeBytes
	}

	if deps.AttemptService == nil && deps.DB != nil && deps.DB.DB != nil {
		deps.AttemptService = attemptsService.NewService(attemptsService.NewRepository(deps.DB.DB))
	}

	// Uploads run the STT pipeline, so keep the rate conservative
	// (2 req/s, burst of 5). Reads get the general limit (10 req/s,
	// burst of 20).
	attemptGroup := v1.Group("/attempts")
	uploadMiddleware := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 2, 5)
	readMiddleware := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20)
	attempts.RegisterRoutes(attemptGroup, deps, uploadMiddleware, readMiddleware)

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
