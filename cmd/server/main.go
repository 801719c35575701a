// Package main is the entrypoint for the careerisk API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/amoghpatel/careerisk/internal/api"
	"github.com/amoghpatel/careerisk/internal/api/handler"
	"github.com/amoghpatel/careerisk/internal/api/response"
	"github.com/amoghpatel/careerisk/internal/assess"
	"github.com/amoghpatel/careerisk/internal/cache"
	"github.com/amoghpatel/careerisk/internal/chat"
	"github.com/amoghpatel/careerisk/internal/config"
	"github.com/amoghpatel/careerisk/internal/llm"
	"github.com/amoghpatel/careerisk/internal/narrative"
	"github.com/amoghpatel/careerisk/internal/workforce"
)

const shutdownTimeout = 30 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is a local convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.Info("config loaded", "env", cfg.Server.Env,
		"workforce_key", cfg.Workforce.APIKey != "",
		"llm_key", cfg.LLM.APIKey != "")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Workforce client. Without credentials every query resolves empty and
	// the assessment degrades to neutral scores rather than failing.
	var wf workforce.Client = workforce.NewHTTPClient(
		cfg.Workforce.BaseURL, cfg.Workforce.OrgID, cfg.Workforce.APIKey, cfg.Workforce.Timeout)

	// Redis is optional. When configured, workforce report and search
	// queries are cached; person lookups always go upstream.
	var redisCache cache.Cache
	if cfg.Redis.URL != "" {
		rc, err := cache.NewRedisCache(cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("create redis cache: %w", err)
		}
		defer rc.Close()
		if err := rc.Ping(ctx); err != nil {
			slog.Warn("redis unreachable, continuing without cache", "error", err)
		} else {
			redisCache = rc
			wf = workforce.NewCachedClient(wf, rc, cfg.Redis.CacheTTL)
			slog.Info("redis connected", "ttl", cfg.Redis.CacheTTL)
		}
	}

	llmClient := llm.NewClient(cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.BaseURL, cfg.LLM.Timeout)
	slog.Info("llm client initialized", "model", llmClient.Model())

	assessSvc := assess.NewService(wf, narrative.NewGenerator(llmClient), assess.Options{
		Timeout:            cfg.Assess.Timeout,
		DemographicsMonths: cfg.Assess.DemographicsMonths,
		FlowsMonths:        cfg.Assess.FlowsMonths,
	})
	chatSvc := chat.NewService(llmClient, wf).WithTimeout(cfg.Assess.ChatTimeout)

	router := api.NewRouter(api.Dependencies{
		AssessHandler: handler.NewAssessHandler(assessSvc),
		ChatHandler:   handler.NewChatHandler(chatSvc),
		HealthHandler: healthHandler(redisCache),
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining connections...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// healthHandler reports cache connectivity. The cache is optional, so a
// missing or degraded cache never fails the health check outright.
func healthHandler(c cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cacheStatus := "disabled"
		if c != nil {
			cacheStatus = "ok"
			if err := c.Ping(r.Context()); err != nil {
				cacheStatus = "degraded"
			}
		}
		response.JSON(w, map[string]any{
			"status": "ok",
			"cache":  cacheStatus,
		})
	}
}
