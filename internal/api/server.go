// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/phamduylong/anizora/internal/catalog/anime"
	"github.com/phamduylong/anizora/internal/catalog/director"
	"github.com/phamduylong/anizora/internal/catalog/genre"
	"github.com/phamduylong/anizora/internal/catalog/studio"
	"github.com/phamduylong/anizora/internal/platform/config"
	"github.com/phamduylong/anizora/internal/platform/constants"
	"github.com/phamduylong/anizora/internal/platform/middleware"
	"github.com/phamduylong/anizora/internal/social/comment"
	"github.com/phamduylong/anizora/internal/users/auth"
	"github.com/phamduylong/anizora/internal/users/list"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles account routes (registration, login, profile).
	Auth *auth.Handler

	// List handles the caller's watch-list.
	List *list.Handler

	// Anime handles the central catalog entity, its chart, and the rating
	// and poster sub-resources.
	Anime *anime.Handler

	// Genre, Director, and Studio manage the catalog reference entities.
	Genre    *genre.Handler
	Director *director.Handler
	Studio   *studio.Handler

	// Comment handles title discussions.
	Comment *comment.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under the shared prefix.
	r.Route("/api", func(api chi.Router) {
		api.Route("/anime", h.Anime.RegisterRoutes)
		api.Route("/genre", h.Genre.RegisterRoutes)
		api.Route("/director", h.Director.RegisterRoutes)
		api.Route("/studio", h.Studio.RegisterRoutes)
		api.Route("/comment", h.Comment.RegisterRoutes)
		api.Route("/user", func(user chi.Router) {
			h.Auth.RegisterRoutes(user)
			user.Route("/list", h.List.RegisterRoutes)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
