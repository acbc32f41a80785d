package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"unipick/internal/backend"
	"unipick/internal/catalog"
	"unipick/internal/identity"
	"unipick/internal/platform/config"
	"unipick/internal/platform/health"
	"unipick/internal/platform/logger"
	"unipick/internal/platform/redis"
	"unipick/internal/platform/tracer"
	"unipick/internal/report"
	surveyhandler "unipick/internal/survey/handler"
	surveymetrics "unipick/internal/survey/metrics"
	surveyservice "unipick/internal/survey/service"
	surveystore "unipick/internal/survey/store"
	httptransport "unipick/internal/transport/http"
	"unipick/pkg/platform/middleware/request"
)

const maintenanceInterval = time.Minute

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing unipick",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"backend", cfg.Backend.BaseURL,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	healthHandler := health.New(cfg.Environment)
	sessions, closeStore, err := buildSessionStore(ctx, cfg, healthHandler, log)
	if err != nil {
		log.Error("failed to initialize session store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	client := backend.New(cfg.Backend.BaseURL,
		backend.WithTracer(tracer.NewOTel("unipick/backend")),
		backend.WithMetrics(backend.NewMetrics()),
	)
	surveys := surveyservice.New(sessions, client, log,
		surveyservice.WithMetrics(surveymetrics.New()),
	)
	renderer, err := report.NewRenderer()
	if err != nil {
		log.Error("failed to load result templates", "error", err)
		os.Exit(1)
	}

	router := httptransport.NewRouter(httptransport.Dependencies{
		Identity:     identity.NewCookieCodec(cfg.Identity.SigningKey, cfg.Identity.CookieMaxAge, cfg.Identity.CookieSecure),
		Health:       healthHandler,
		Metrics:      request.NewMetrics(),
		MaxBodyBytes: cfg.MaxBodyBytes,
		Routes: []httptransport.Registrar{
			surveyhandler.New(surveys, log),
			report.NewHandler(client, renderer, log),
			catalog.New(client, log),
		},
	}, log)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}

// buildSessionStore picks Redis when REDIS_URL is set and falls back to the
// in-memory store otherwise. Either way a background loop runs until ctx ends.
func buildSessionStore(ctx context.Context, cfg config.Server, h *health.Handler, log *slog.Logger) (surveyservice.Store, func(), error) {
	client, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		mem := surveystore.NewMemory(cfg.Session.TTL)
		go every(ctx, maintenanceInterval, func() {
			if n := mem.Sweep(); n > 0 {
				log.Debug("expired survey sessions removed", "count", n)
			}
		})
		log.Info("survey sessions kept in memory", "ttl", cfg.Session.TTL)
		return mem, func() {}, nil
	}

	h.RegisterCheck("redis", client.Health)
	go every(ctx, maintenanceInterval, client.RecordPoolStats)
	log.Info("survey sessions kept in redis", "ttl", cfg.Session.TTL)
	return surveystore.NewRedis(client.Client, cfg.Session.TTL), func() {
		if err := client.Close(); err != nil {
			log.Warn("failed to close redis client", "error", err)
		}
	}, nil
}

func every(ctx context.Context, interval time.Duration, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn()
		}
	}
}
