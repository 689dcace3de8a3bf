package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/weiminglau/family-tree-be/internal/auth"
	"github.com/weiminglau/family-tree-be/internal/config"
	"github.com/weiminglau/family-tree-be/internal/http/handlers"
	"github.com/weiminglau/family-tree-be/internal/middleware"
	"github.com/weiminglau/family-tree-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.Store, logger *logrus.Logger) *Server {
	return &Server{inner: &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           Router(cfg, store, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}}
}

// Router assembles the full route tree. Exposed separately so tests can
// drive the exact production routing without binding a listener.
func Router(cfg config.Config, store storage.Store, logger *logrus.Logger) http.Handler {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	health := handlers.NewHealthHandler(time.Now())
	authHandler := handlers.NewAuthHandler(store, tokens, logger)
	memberHandler := handlers.NewMemberHandler(store, logger)

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", health.Welcome)
	r.Get("/health", health.Health)

	r.Route("/api/auth", authHandler.Routes)

	r.Route("/api/members", func(r chi.Router) {
		r.Use(middleware.RequireAuth(tokens))
		memberHandler.Routes(r)
	})

	return r
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
