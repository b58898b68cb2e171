package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dafibh/budgetly/internal/config"
	"github.com/dafibh/budgetly/internal/domain"
	"github.com/dafibh/budgetly/internal/handler"
	"github.com/dafibh/budgetly/internal/llm"
	"github.com/dafibh/budgetly/internal/middleware"
	"github.com/dafibh/budgetly/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title			Budgetly API
// @version		1.0.0
// @description	Retirement projection, recommended reading and advisory chat.
// @BasePath		/
func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize services
	var chatClient domain.ChatClient
	if cfg.Advisor.APIKey != "" {
		chatClient = llm.NewOpenAIClient(cfg.Advisor.BaseURL, cfg.Advisor.APIKey)
		log.Info().Str("model", cfg.Advisor.Model).Msg("Advisor live mode")
	} else {
		log.Warn().Msg("OPENAI_API_KEY not set, advisor running in fallback mode")
	}

	retirementService := service.NewRetirementService()
	articleService := service.NewArticleService()
	advisorService := service.NewAdvisorService(service.AdvisorConfig{
		APIKey: cfg.Advisor.APIKey,
		Model:  cfg.Advisor.Model,
	}, chatClient)

	// Initialize handlers
	retirementHandler := handler.NewRetirementHandler(retirementService)
	advisorHandler := handler.NewAdvisorHandler(advisorService)
	articleHandler := handler.NewArticleHandler(articleService)

	// Per-client rate limiting, off unless RATE_LIMIT_PER_MINUTE is set
	var routeMiddleware []echo.MiddlewareFunc
	if cfg.RateLimitPerMinute > 0 {
		rl := middleware.NewRateLimiterWithConfig(cfg.RateLimitPerMinute, cfg.RateLimitBurst)
		defer rl.Stop()
		routeMiddleware = append(routeMiddleware, middleware.RateLimitMiddleware(rl))
		log.Info().Int("per_minute", cfg.RateLimitPerMinute).Int("burst", cfg.RateLimitBurst).Msg("Rate limiting enabled")
	}

	e := handler.NewServer(cfg.CORSOrigins, retirementHandler, advisorHandler, articleHandler, routeMiddleware...)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
