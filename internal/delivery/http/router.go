package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/minijudge/minijudge/internal/delivery/http/middleware"
	"github.com/minijudge/minijudge/internal/judge"
	"github.com/minijudge/minijudge/internal/language"
)

// RouterOptions carries the tunables the middleware chain needs.
type RouterOptions struct {
	RateLimitPerMin int
	MaxBodyBytes    int64
}

// NewRouter creates and configures the Gin router with all routes and middleware.
func NewRouter(j *judge.Judge, registry *language.Registry, logger *zap.Logger, opts RouterOptions) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(logger))

	// Metrics endpoint (no rate limiting)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		healthHandler := NewHealthHandler(logger)
		v1.GET("/health", healthHandler.Health)

		langHandler := NewLanguageHandler(registry)
		v1.GET("/languages", langHandler.List)

		analyzeHandler := NewAnalyzeHandler()
		v1.GET("/rules", analyzeHandler.Rules)

		judgeHandler := NewJudgeHandler(j, logger)
		wsHandler := NewWebSocketHandler(j, logger)

		// Mutating endpoints carry rate and body-size limits.
		limited := v1.Group("")
		limited.Use(middleware.RateLimiter(opts.RateLimitPerMin))
		limited.Use(middleware.BodySizeLimit(opts.MaxBodyBytes))
		{
			limited.POST("/analyze", analyzeHandler.Analyze)
			limited.POST("/run", judgeHandler.Run)
			limited.POST("/test", judgeHandler.Test)
		}

		// WebSocket for streaming batch verdicts
		v1.GET("/judge/stream", wsHandler.Stream)
	}

	return router
}
