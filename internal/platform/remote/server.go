// Package remote serves the difficulty engine over WebSocket so browser game
// loops can drive it. Every connection owns its own engine instance.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/stunt-arcade/internal/storage"
)

// ServerConfig holds configuration for the WebSocket engine server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8090").
	Address string

	// DBPath is the runs database used by "submit". Empty disables it.
	DBPath string

	// GameID tags submitted runs.
	GameID string

	// IdleTimeout closes connections that send nothing for this long.
	IdleTimeout time.Duration

	// WriteTimeout bounds each reply write.
	WriteTimeout time.Duration

	// ReadLimit caps the size of one client message in bytes.
	ReadLimit int64
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:      ":8090",
		DBPath:       "~/.stunt/runs.db",
		GameID:       "survival",
		IdleTimeout:  5 * time.Minute,
		WriteTimeout: 5 * time.Second,
		ReadLimit:    4096,
	}
}

// Server exposes /ws and /healthz.
type Server struct {
	config   ServerConfig
	http     *http.Server
	store    *storage.Store
	logger   *log.Logger
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}

	closeOnce sync.Once
}

// NewServer creates a server. A database that cannot be opened only disables "submit".
func NewServer(cfg ServerConfig) *Server {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "stunt-ws",
	})

	var store *storage.Store
	if cfg.DBPath != "" {
		var err error
		store, err = storage.Open(cfg.DBPath)
		if err != nil {
			logger.Warn("could not open runs database, submit disabled", "error", err)
			store = nil
		}
	}

	return newServer(cfg, store, logger)
}

func newServer(cfg ServerConfig, store *storage.Store, logger *log.Logger) *Server {
	s := &Server{
		config: cfg,
		store:  store,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		conns: make(map[*websocket.Conn]struct{}),
	}

	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	mux.HandleFunc("/healthz", s.serveHealth)
	return mux
}

func (s *Server) serveHealth(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	n := len(s.conns)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck // Best-effort health reply
	json.NewEncoder(w).Encode(map[string]any{
		"status":      "ok",
		"connections": n,
		"storage":     s.store != nil,
	})
}

// serveWS upgrades the request and runs one engine session until the client leaves.
func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	s.track(conn)
	defer s.untrack(conn)

	player := r.URL.Query().Get("player")
	sess := newSession(s.store, s.config.GameID, player)

	s.logger.Info("client connected", "remote", r.RemoteAddr, "player", player)
	requests, err := s.readLoop(conn, sess)
	s.logger.Info("client disconnected", "remote", r.RemoteAddr, "requests", requests, "reason", err)
}

// readLoop handles requests in order; replies are written from this goroutine only.
func (s *Server) readLoop(conn *websocket.Conn, sess *session) (int, error) {
	if s.config.ReadLimit > 0 {
		conn.SetReadLimit(s.config.ReadLimit)
	}

	requests := 0
	for {
		if s.config.IdleTimeout > 0 {
			//nolint:errcheck // Deadline errors surface on the next read
			conn.SetReadDeadline(time.Now().Add(s.config.IdleTimeout))
		}

		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return requests, nil
			}
			return requests, err
		}
		requests++

		var resp Response
		if msgType != websocket.TextMessage {
			resp = errorResponse("", "expected a text message")
		} else {
			var req Request
			if err := json.Unmarshal(data, &req); err != nil {
				resp = errorResponse("", "malformed request")
			} else {
				resp = sess.handle(req)
				s.logger.Debug("request", "op", req.Op, "reply", resp.Op)
			}
		}

		if err := s.write(conn, resp); err != nil {
			return requests, fmt.Errorf("write reply: %w", err)
		}
	}
}

func (s *Server) write(conn *websocket.Conn, resp Response) error {
	if s.config.WriteTimeout > 0 {
		//nolint:errcheck // Deadline errors surface on the write
		conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	}
	return conn.WriteJSON(resp)
}

func (s *Server) track(conn *websocket.Conn) {
	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()
}

func (s *Server) untrack(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
	conn.Close()
}

// Serve accepts connections on l until Shutdown.
func (s *Server) Serve(l net.Listener) error {
	err := s.http.Serve(l)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// ListenAndServe starts the server and blocks until SIGINT/SIGTERM.
func (s *Server) ListenAndServe() error {
	l, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		s.closeStore()
		return fmt.Errorf("listen %s: %w", s.config.Address, err)
	}
	s.logger.Info("starting WebSocket server", "address", l.Addr().String(), "storage", s.store != nil)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Serve(l)
	}()

	select {
	case <-done:
	case err := <-errCh:
		s.closeStore()
		return err
	}

	s.logger.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.Shutdown(ctx)
}

// Shutdown stops accepting connections, closes live sessions with a going-away
// frame and releases storage.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.http.Shutdown(ctx)

	// Hijacked connections are not closed by http.Server.Shutdown
	s.mu.Lock()
	for conn := range s.conns {
		msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
		//nolint:errcheck // Best-effort close notification
		conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		conn.Close()
	}
	s.mu.Unlock()

	s.closeStore()
	return err
}

func (s *Server) closeStore() {
	if s.store == nil {
		return
	}
	s.closeOnce.Do(func() {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("closing runs database", "error", err)
		}
	})
}
