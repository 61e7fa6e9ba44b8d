package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/haguru/signup/internal/interfaces"
)

var (
	ReadTimeout  = 10 * time.Second
	WriteTimeout = 10 * time.Second
	IdleTimeout  = 30 * time.Second
)

type Server struct {
	Port   string
	Host   string
	server *http.Server
	mux    *http.ServeMux
	Logger interfaces.Logger
}

// NewServer creates a new Server instance with the specified host and port.
func NewServer(host, port string, logger interfaces.Logger) *Server {
	mux := http.NewServeMux()
	server := &http.Server{
		Addr:         net.JoinHostPort(host, port),
		Handler:      mux,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
		IdleTimeout:  IdleTimeout,
	}

	return &Server{
		Host:   host,
		Port:   port,
		server: server,
		mux:    mux,
		Logger: logger,
	}
}

// AddRoute registers handler for route. Registering the same route twice is
// an error.
func (s *Server) AddRoute(route string, handler http.Handler) (err error) {
	if handler == nil {
		return fmt.Errorf("handler for route %s is nil", route)
	}

	// ServeMux panics on conflicting patterns
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to add route %s: %v", route, r)
		}
	}()

	s.mux.Handle(route, handler)
	s.Logger.Info("Route added", "route", route)
	return nil
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe starts the HTTP server and blocks until it stops. A server
// stopped through Shutdown returns nil.
func (s *Server) ListenAndServe() error {
	s.Logger.Info("Starting server", "host", s.Host, "port", s.Port)
	err := s.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.Logger.Error("Failed to start server", "error", err)
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully stops the server, waiting for in-flight requests until
// ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	s.Logger.Info("Shutting down server")
	return s.server.Shutdown(ctx)
}
