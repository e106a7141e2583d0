package server

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cursedclash/clash-server-go/internal/config"
	"github.com/cursedclash/clash-server-go/internal/game"
)

const sendBuffer = 256

// Client is one websocket connection. A client watches at most one match
// and may be bound to one seat of it.
type Client struct {
	conn   *websocket.Conn
	cfg    config.WebSocketConfig
	logger *zap.Logger
	send   chan []byte
	done   chan struct{}
	once   sync.Once

	mu       sync.RWMutex
	matchID  string
	playerID string
}

func newClient(conn *websocket.Conn, cfg config.WebSocketConfig, logger *zap.Logger) *Client {
	return &Client{
		conn:   conn,
		cfg:    cfg,
		logger: logger,
		send:   make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
	}
}

// MatchID returns the match the client watches.
func (c *Client) MatchID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.matchID
}

// PlayerID returns the seat the client is bound to, if any.
func (c *Client) PlayerID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.playerID
}

func (c *Client) bind(matchID, playerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.matchID = matchID
	c.playerID = playerID
}

// actor picks the player a request acts for: the explicit player id, else
// the bound seat.
func (c *Client) actor(msg Message) string {
	if msg.PlayerID != "" {
		return msg.PlayerID
	}
	return c.PlayerID()
}

func (c *Client) close() {
	c.once.Do(func() { close(c.done) })
}

func (c *Client) enqueue(msg Message) {
	frame, err := json.Marshal(msg)
	if err != nil {
		c.logger.Error("failed to encode frame", zap.String("type", msg.Type), zap.Error(err))
		return
	}
	select {
	case <-c.done:
	case c.send <- frame:
	default:
		c.logger.Warn("client send buffer full; dropping frame",
			zap.String("player_id", c.PlayerID()),
			zap.String("type", msg.Type),
		)
	}
}

func (c *Client) sendState(view *game.MatchView, requestID string) {
	data, err := json.Marshal(stateFrom(view, c.PlayerID()))
	if err != nil {
		c.logger.Error("failed to encode match state", zap.String("match_id", view.ID), zap.Error(err))
		return
	}
	c.enqueue(Message{Type: MsgMatchState, RequestID: requestID, MatchID: view.ID, Data: data})
}

func (c *Client) sendError(requestID string, err error) {
	data, _ := json.Marshal(errorData{
		Code:    status.Code(err).String(),
		Message: errorMessage(err),
	})
	c.enqueue(Message{Type: MsgError, RequestID: requestID, Data: data})
}

func errorMessage(err error) string {
	if st, ok := status.FromError(err); ok && st.Code() != codes.Unknown {
		return st.Message()
	}
	return err.Error()
}

func (c *Client) pongWait() time.Duration {
	return 2 * c.cfg.PingInterval
}

// readPump decodes frames until the connection fails, handing each to handle.
func (c *Client) readPump(handle func(*Client, Message)) {
	if c.cfg.MaxMessageSize > 0 {
		c.conn.SetReadLimit(c.cfg.MaxMessageSize)
	}
	if c.cfg.PingInterval > 0 {
		_ = c.conn.SetReadDeadline(time.Now().Add(c.pongWait()))
		c.conn.SetPongHandler(func(string) error {
			return c.conn.SetReadDeadline(time.Now().Add(c.pongWait()))
		})
	}

	for {
		_, frame, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("websocket read failed", zap.Error(err))
			}
			return
		}
		var msg Message
		if err := json.Unmarshal(frame, &msg); err != nil {
			c.sendError("", status.Errorf(codes.InvalidArgument, "malformed message: %v", err))
			continue
		}
		handle(c, msg)
	}
}

func (c *Client) writePump() {
	var tick <-chan time.Time
	if c.cfg.PingInterval > 0 {
		ticker := time.NewTicker(c.cfg.PingInterval)
		defer ticker.Stop()
		tick = ticker.C
	}
	defer c.conn.Close()

	for {
		select {
		case <-c.done:
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			return
		case frame := <-c.send:
			c.setWriteDeadline()
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-tick:
			c.setWriteDeadline()
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) setWriteDeadline() {
	if c.cfg.WriteTimeout > 0 {
		_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
	}
}
