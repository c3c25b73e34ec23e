package main

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/minijudge/minijudge/internal/config"
	httpdelivery "github.com/minijudge/minijudge/internal/delivery/http"
	"github.com/minijudge/minijudge/internal/judge"
	"github.com/minijudge/minijudge/internal/language"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	logger.Info("Starting minijudge API server")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	registry := language.NewRegistry()
	j := judge.New(registry, cfg.Judge.Timeout(), logger)

	router := httpdelivery.NewRouter(j, registry, logger, httpdelivery.RouterOptions{
		RateLimitPerMin: cfg.Server.RateLimitPerMin,
		MaxBodyBytes:    cfg.Server.MaxBodyBytes,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("HTTP server listening",
		zap.String("addr", addr),
		zap.Strings("languages", registry.IDs()),
		zap.Duration("judge_timeout", cfg.Judge.Timeout()),
	)

	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Fatal("HTTP server error", zap.Error(err))
	}
}
