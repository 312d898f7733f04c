package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"solarapi/internal/config"
	"solarapi/internal/logging"
	"sync"
	"time"
)

// Server is the HTTP listener for the API, built from injected configuration.
type Server struct {
	cfg     *config.Config
	handler http.Handler

	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener
	done     chan error
}

// NewServer creates a server that will serve handler on the configured address.
func NewServer(cfg *config.Config, handler http.Handler) *Server {
	return &Server{cfg: cfg, handler: handler}
}

// Start binds the listening socket and serves in the background.
// Errors binding the port are returned immediately.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv != nil {
		return errors.New("server already started")
	}

	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr(), err)
	}

	s.listener = ln
	s.srv = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.done = make(chan error, 1)

	go func() {
		logging.Log.Infof("API running at http://%s", ln.Addr())
		err := s.srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		s.done <- err
	}()
	return nil
}

// Addr returns the bound address, or "" before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Done reports the result of the serve loop once it exits.
func (s *Server) Done() <-chan error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// Shutdown stops accepting connections and waits for in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
