// Package server exposes hand comparison over WebSocket.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
)

const (
	DefaultIdleTimeout    = 5 * time.Minute
	DefaultMaxMessageSize = 4096
)

// Server accepts WebSocket clients that submit hand pairs
type Server struct {
	upgrader       websocket.Upgrader
	logger         *log.Logger
	clock          quartz.Clock
	idleTimeout    time.Duration
	maxMessageSize int64

	mu          sync.RWMutex
	connections map[string]*Connection
	httpServer  *http.Server
	closed      bool
}

// Option configures a Server
type Option func(*Server)

// WithClock sets the clock driving idle timeouts
func WithClock(clock quartz.Clock) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

// WithIdleTimeout closes connections that send nothing for d
func WithIdleTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.idleTimeout = d
		}
	}
}

// WithMaxMessageSize limits the size of a single client frame
func WithMaxMessageSize(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxMessageSize = n
		}
	}
}

// NewServer creates a new WebSocket server
func NewServer(logger *log.Logger, opts ...Option) *Server {
	s := &Server{
		upgrader: websocket.Upgrader{
			// Clients are arbitrary tools, not browsers on a known origin.
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:         logger.WithPrefix("server"),
		clock:          quartz.NewReal(),
		idleTimeout:    DefaultIdleTimeout,
		maxMessageSize: DefaultMaxMessageSize,
		connections:    make(map[string]*Connection),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP routes served by s
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start listens on addr until Shutdown is called
func (s *Server) Start(addr string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv := s.httpServer
	s.mu.Unlock()

	s.logger.Info("Starting WebSocket server", "addr", addr, "idle_timeout", s.idleTimeout)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return nil
}

// Shutdown stops accepting clients and closes every open connection
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	srv := s.httpServer
	conns := make([]*Connection, 0, len(s.connections))
	for _, c := range s.connections {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		_ = c.Close() // Ignore close errors during shutdown
	}

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// ConnectionCount returns the number of open connections
func (s *Server) ConnectionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.connections)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	client := NewConnection(conn, s.logger, s.clock, s.idleTimeout, s.maxMessageSize)

	s.mu.Lock()
	s.connections[client.ID()] = client
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("Client connected", "id", client.ID(), "total", total)

	client.Start()

	go func() {
		<-client.Done()
		s.mu.Lock()
		delete(s.connections, client.ID())
		total := len(s.connections)
		s.mu.Unlock()
		s.logger.Info("Client disconnected", "id", client.ID(), "total", total)
	}()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK") // Ignore write errors for health check
}
