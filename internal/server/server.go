package server

import (
	"context"
	"net/http"
	"time"

	"github.com/hongminglow/escola-be/internal/auth"
	"github.com/hongminglow/escola-be/internal/config"
	"github.com/hongminglow/escola-be/internal/http/handlers"
	"github.com/hongminglow/escola-be/internal/middleware"
	"github.com/hongminglow/escola-be/internal/service"
	"github.com/hongminglow/escola-be/internal/session"
	"github.com/hongminglow/escola-be/internal/storage"
	"github.com/hongminglow/escola-be/web"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server. Every
// dependency is passed in; nothing is held in package state.
func New(cfg config.Config, store storage.Store, sessionStore session.Store) *Server {
	tokens := auth.NewTokenManager(cfg.SessionSecret, cfg.SessionIssuer)
	sessions := session.NewManager(sessionStore, tokens, cfg.CookieSecure)
	gate := middleware.RequireSession(sessions)

	var classGuard func(http.Handler) http.Handler
	if cfg.ProtectClassRegistration {
		classGuard = gate
	}

	mux := http.NewServeMux()
	handlers.NewHealthHandler(time.Now(), store).Register(mux)
	handlers.NewAuthHandler(service.NewAuthService(store), sessions).Register(mux)
	handlers.NewRegistrationHandler(service.NewRegistrationService(store, store), classGuard).Register(mux)
	handlers.NewPageHandler(web.Pages(), web.Static(), gate).Register(mux)

	handler := middleware.Recover(middleware.CORS(cfg.CORSOrigins, middleware.Logging(mux)))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Handler exposes the composed handler chain.
func (s *Server) Handler() http.Handler {
	return s.inner.Handler
}

// Addr is the address the server listens on.
func (s *Server) Addr() string {
	return s.inner.Addr
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
