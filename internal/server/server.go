package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/haguru/dispatcher/internal/interfaces"
	"github.com/haguru/dispatcher/internal/middleware"
)

var (
	ReadTimeout  = 10 * time.Second
	WriteTimeout = 10 * time.Second
	IdleTimeout  = 30 * time.Second
)

// Timeouts overrides the package level defaults when non-zero.
type Timeouts struct {
	Read  time.Duration
	Write time.Duration
	Idle  time.Duration
}

type Server struct {
	Port        string
	Host        string
	server      *http.Server
	mux         *http.ServeMux
	middlewares []func(http.Handler) http.Handler
	Logger      interfaces.Logger
}

// NewServer creates a new Server instance with the specified host and port.
// Middlewares wrap every route; the first one is the outermost.
func NewServer(host, port string, timeouts Timeouts, logger interfaces.Logger,
	middlewares ...func(http.Handler) http.Handler,
) *Server {
	mux := http.NewServeMux()
	s := &Server{
		Host:        host,
		Port:        port,
		mux:         mux,
		middlewares: middlewares,
		Logger:      logger,
	}

	s.server = &http.Server{
		Addr:         host + ":" + port,
		Handler:      s.Handler(),
		ReadTimeout:  orDefault(timeouts.Read, ReadTimeout),
		WriteTimeout: orDefault(timeouts.Write, WriteTimeout),
		IdleTimeout:  orDefault(timeouts.Idle, IdleTimeout),
	}

	return s
}

// AddRoute adds a new route to the server.
// It takes a route pattern and a handler function as parameters.
// The handler function will be called when the route is accessed.
// It returns an error if the route cannot be added.
func (s *Server) AddRoute(route string, handler func(w http.ResponseWriter, r *http.Request)) (err error) {
	if route == "" || handler == nil {
		return fmt.Errorf("route and handler are required")
	}

	// ServeMux panics on malformed or conflicting patterns
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("failed to add route %q: %v", route, rec)
		}
	}()

	s.mux.HandleFunc(route, handler)
	s.Logger.Info("Route added", "route", route)
	return nil
}

// Handler returns the routes wrapped in the server middlewares.
func (s *Server) Handler() http.Handler {
	return middleware.Chain(s.mux, s.middlewares...)
}

// ListenAndServe starts the HTTP server and listens for incoming requests.
// It returns nil once the server has been shut down.
func (s *Server) ListenAndServe() error {
	s.Logger.Info("Starting server", "host", s.Host, "port", s.Port)
	err := s.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.Logger.Error("Failed to start server", "error", err)
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.Logger.Info("Shutting down server", "host", s.Host, "port", s.Port)
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func orDefault(value, fallback time.Duration) time.Duration {
	if value <= 0 {
		return fallback
	}
	return value
}
