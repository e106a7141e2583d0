package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cursedclash/clash-server-go/internal/config"
	"github.com/cursedclash/clash-server-go/internal/game"
)

// Server relays websocket requests to the engine and pushes match events
// back to the clients watching each match.
type Server struct {
	cfg      config.ServerConfig
	engine   *game.Engine
	hub      *Hub
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// New creates a relay server over engine.
func New(cfg config.ServerConfig, engine *game.Engine, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:    cfg,
		engine: engine,
		hub:    newHub(engine.EventBus(), logger.Named("hub")),
		logger: logger,
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  cfg.WebSocket.ReadBufferSize,
		WriteBufferSize: cfg.WebSocket.WriteBufferSize,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

func (s *Server) checkOrigin(r *http.Request) bool {
	allowed := s.cfg.WebSocket.AllowedOrigins
	if len(allowed) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	for _, o := range allowed {
		if o == origin {
			return true
		}
	}
	return false
}

// Handler returns the HTTP routes: the websocket endpoint and a health probe.
func (s *Server) Handler() http.Handler {
	path := s.cfg.WebSocket.Path
	if path == "" {
		path = "/ws"
	}
	mux := http.NewServeMux()
	mux.HandleFunc(path, s.serveWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.String("remote", r.RemoteAddr), zap.Error(err))
		return
	}
	c := newClient(conn, s.cfg.WebSocket, s.logger.Named("client"))
	s.hub.register(c)

	go c.writePump()
	go func() {
		defer s.hub.unregister(c)
		c.readPump(s.handle)
	}()
}

// Run serves until ctx is cancelled, then shuts down within the configured
// timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.WebSocket.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("starting websocket server",
			zap.String("address", srv.Addr),
			zap.String("path", s.cfg.WebSocket.Path),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		timeout := s.cfg.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		s.hub.close()
		s.logger.Info("shutting down websocket server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
