package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"olist-dashboard/internal/config"
	"olist-dashboard/internal/middleware"
	"olist-dashboard/internal/observability"
	"olist-dashboard/internal/server"
	"olist-dashboard/internal/services"
	"olist-dashboard/internal/ui/templates"
)

const (
	renderTimeout   = 10 * time.Second
	dataLoadTimeout = 60 * time.Second
	cacheMaxAge     = "public, max-age=300"
)

func handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), renderTimeout)
	defer cancel()

	w.Header().Set("Cache-Control", cacheMaxAge)
	if err := templates.Dashboard().Render(ctx, w); err != nil {
		http.Error(w, "render error", http.StatusInternalServerError)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.Logger)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"version", "1.0.0",
		"config", cfg,
	)

	// The dataset is static, so everything loads before the first request
	// and stays read-only for the life of the process.
	analytics := services.NewAnalytics()
	ctx, cancel := context.WithTimeout(context.Background(), dataLoadTimeout)
	defer cancel()

	start := time.Now()
	if err := analytics.Load(ctx, cfg.Data.Dir); err != nil {
		logger.Error("failed to load dataset", "dir", cfg.Data.Dir, "error", err)
		os.Exit(1)
	}
	logger.Info("dataset ready", "duration", time.Since(start))

	templateHandlers := &server.TemplateHandlers{
		Dashboard: handleDashboard,
	}

	srv := server.NewServer(analytics, logger, templateHandlers)

	rateLimiter := middleware.NewRateLimiter(cfg.Security)

	middlewareChain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Tracing(),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.Security),
		middleware.TrustedProxy(cfg.Security),
		middleware.RateLimit(rateLimiter, logger),
	)

	handler := middlewareChain(srv)

	httpServer := &http.Server{
		Addr:         cfg.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	gracefulServer := server.NewGracefulServer(httpServer, logger, cfg)

	gracefulServer.RegisterShutdownHook("analytics", func(ctx context.Context) error {
		logger.Info("shutting down analytics service")
		return nil
	})

	if err := gracefulServer.ListenAndServe(); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("application stopped gracefully")
}
