// Package server serves the name-remembering form over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/thruflo/cookieserver/internal/config"
	"github.com/thruflo/cookieserver/internal/logging"
)

// Server owns the listener and the http.Server wrapped around a Greeter.
type Server struct {
	addr    string
	greeter *Greeter
	log     *logging.Logger

	mu       sync.RWMutex
	server   *http.Server
	listener net.Listener
	started  bool
}

// Config holds server configuration options.
type Config struct {
	Addr         string
	Cookie       config.CookieConfig
	MaxFormBytes int64
	Logger       *logging.Logger
}

// NewServer creates a new Server instance.
func NewServer(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if err := config.ValidateCookieConfig(&cfg.Cookie); err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = logging.Default()
	}

	return &Server{
		addr:    cfg.Addr,
		greeter: NewGreeter(cfg.Cookie, cfg.MaxFormBytes, log),
		log:     log.With("component", "server"),
	}, nil
}

// NewServerFromConfig creates a new Server from a loaded config.Config.
func NewServerFromConfig(cfg *config.Config, log *logging.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server config is required")
	}
	return NewServer(&Config{
		Addr:         cfg.Server.Addr(),
		Cookie:       cfg.Cookie,
		MaxFormBytes: cfg.Server.MaxFormBytes,
		Logger:       log,
	})
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Handler returns the request handler, for use without a listener.
func (s *Server) Handler() http.Handler {
	return s.greeter
}

// Start listens on the configured address and serves until ctx is
// cancelled or Stop is called.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return errors.New("server already started")
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.listener = listener

	// The greeter answers on every path, so no mux.
	s.server = &http.Server{
		Handler:      s.greeter,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	s.started = true
	s.mu.Unlock()

	s.log.Info("listening", "addr", listener.Addr().String())

	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		select {
		case <-ctx.Done():
			if err := s.Stop(); err != nil {
				s.log.Error("shutdown failed", "error", err)
			}
		case <-stopped:
		}
	}()

	err = s.server.Serve(listener)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started || s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	s.started = false
	s.log.Info("stopped")
	return nil
}

// ListenAddr returns the address the server is listening on, or an empty
// string if it has not started. Useful when port 0 is configured.
func (s *Server) ListenAddr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}
