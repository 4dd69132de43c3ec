package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/diazdennis/monica-chatbot/internal/api/router"
	"github.com/diazdennis/monica-chatbot/internal/chat"
	"github.com/diazdennis/monica-chatbot/internal/clinic"
	appconfig "github.com/diazdennis/monica-chatbot/internal/config"
	"github.com/diazdennis/monica-chatbot/internal/heygen"
	"github.com/diazdennis/monica-chatbot/internal/observability/metrics"
	"github.com/diazdennis/monica-chatbot/internal/openai"
	"github.com/diazdennis/monica-chatbot/pkg/logging"
)

func main() {
	// Load .env if present; real deployments set env vars directly
	_ = godotenv.Load()

	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting monica-chatbot API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	if cfg.OpenAIAPIKey == "" {
		logger.Error("OPENAI_API_KEY is not set")
		os.Exit(1)
	}

	// Initialize clinic profile and services
	profile := clinic.LoadProfile()
	completer := openai.New(cfg.OpenAIAPIKey, openai.Options{
		Model:       cfg.OpenAIModel,
		Temperature: float32(cfg.OpenAITemperature),
		MaxTokens:   cfg.OpenAIMaxTokens,
		Timeout:     cfg.OpenAITimeout,
	}, logger)

	chatMetrics := metrics.NewChatMetrics(nil)
	chatService := chat.NewService(completer, profile, chatMetrics, logger)

	// Initialize handlers
	chatHandler := chat.NewHandler(chatService, logger)

	var heygenHandler *heygen.Handler
	if cfg.HeyGenAPIKey != "" {
		heygenClient := heygen.New(cfg.HeyGenBaseURL, cfg.HeyGenAPIKey, cfg.HeyGenTimeout, logger)
		heygenHandler = heygen.NewHandler(heygenClient, logger)
	} else {
		logger.Warn("HEYGEN_API_KEY is not set, avatar routes disabled")
	}

	// Setup router
	routerCfg := &router.Config{
		Logger:             logger,
		ChatHandler:        chatHandler,
		HeyGenHandler:      heygenHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitPerSecond: cfg.RateLimitPerSecond,
		RateLimitBurst:     cfg.RateLimitBurst,
	}
	r := router.New(routerCfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}
