// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

// Command api is the entry point for the Anizora HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
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

	"github.com/phamduylong/anizora/internal/api"
	"github.com/phamduylong/anizora/internal/catalog/anime"
	"github.com/phamduylong/anizora/internal/catalog/director"
	"github.com/phamduylong/anizora/internal/catalog/genre"
	"github.com/phamduylong/anizora/internal/catalog/poster"
	"github.com/phamduylong/anizora/internal/catalog/rating"
	"github.com/phamduylong/anizora/internal/catalog/studio"
	"github.com/phamduylong/anizora/internal/platform/config"
	"github.com/phamduylong/anizora/internal/platform/constants"
	"github.com/phamduylong/anizora/internal/platform/migration"
	pgstore "github.com/phamduylong/anizora/internal/platform/postgres"
	redisstore "github.com/phamduylong/anizora/internal/platform/redis"
	"github.com/phamduylong/anizora/internal/platform/sec"
	"github.com/phamduylong/anizora/internal/social/comment"
	"github.com/phamduylong/anizora/internal/users/auth"
	"github.com/phamduylong/anizora/internal/users/list"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "anizora"))
	slog.SetDefault(log)

	log.Info("[Anizora] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "anizora"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for the process. The rate limiter's janitor goroutine
	// stops when this is cancelled.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// Startup gets a 30s deadline so misconfiguration is caught quickly
	// rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(appCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Session & Credential Services ──────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.SessionSecret, constants.AuthIssuer)
	must(log, err, "initialize token service")
	hasher := sec.NewPasswordHasher(cfg.SessionSecret)
	captcha := auth.NewTurnstileVerifier(cfg.TurnstileSecret, cfg.TurnstileURL, log)

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	userStore := auth.NewStore(pool)
	guard := auth.NewGuard(userStore)
	authService := auth.NewService(userStore, tokens, hasher, captcha, log)
	authHandler := auth.NewHandler(authService)

	genreService := genre.NewService(pool, log)
	genreHandler := genre.NewHandler(genreService, guard)

	directorService := director.NewService(pool, log)
	directorHandler := director.NewHandler(directorService, guard)

	studioService := studio.NewService(pool, log)
	studioHandler := studio.NewHandler(studioService, guard)

	ratingService := rating.NewService(pool, log)
	posterService := poster.NewService(pool, log)

	animeStore := anime.NewStore(pool, rdb, log)
	animeService := anime.NewService(animeStore, log)
	animeHandler := anime.NewHandler(animeService, ratingService, posterService, guard)

	commentService := comment.NewService(pool, guard, log)
	commentHandler := comment.NewHandler(commentService)

	listService := list.NewService(pool, log)
	listHandler := list.NewHandler(listService)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		List:      listHandler,
		Anime:     animeHandler,
		Genre:     genreHandler,
		Director:  directorHandler,
		Studio:    studioHandler,
		Comment:   commentHandler,
	}

	server := api.NewServer(appCtx, cfg, log, tokens, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
