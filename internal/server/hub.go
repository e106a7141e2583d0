package server

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/cursedclash/clash-server-go/internal/game"
	"github.com/cursedclash/clash-server-go/internal/game/rules"
)

// Hub fans engine events and match states out to the clients watching a
// match. It listens on the engine's event bus for its whole lifetime.
type Hub struct {
	logger  *zap.Logger
	bus     *rules.EventBus
	handle  int
	mu      sync.RWMutex
	clients map[*Client]bool
}

func newHub(bus *rules.EventBus, logger *zap.Logger) *Hub {
	h := &Hub{
		logger:  logger,
		bus:     bus,
		clients: make(map[*Client]bool),
	}
	h.handle = bus.Subscribe(h.forwardEvent)
	return h
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = true
	h.logger.Debug("client registered", zap.Int("clients", len(h.clients)))
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		c.close()
		h.logger.Debug("client unregistered",
			zap.String("player_id", c.PlayerID()),
			zap.Int("clients", len(h.clients)),
		)
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) watching(matchID string) []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var out []*Client
	for c := range h.clients {
		if c.MatchID() == matchID {
			out = append(out, c)
		}
	}
	return out
}

func (h *Hub) forwardEvent(evt rules.Event) {
	data, err := json.Marshal(eventFrom(evt))
	if err != nil {
		h.logger.Error("failed to encode event", zap.String("match_id", evt.MatchID), zap.Error(err))
		return
	}
	for _, c := range h.watching(evt.MatchID) {
		c.enqueue(Message{Type: MsgMatchEvent, MatchID: evt.MatchID, Data: data})
	}
}

// broadcastState sends every watcher its own rendering of the view.
func (h *Hub) broadcastState(view *game.MatchView, requestID string, origin *Client) {
	for _, c := range h.watching(view.ID) {
		rid := ""
		if c == origin {
			rid = requestID
		}
		c.sendState(view, rid)
	}
}

func (h *Hub) close() {
	h.bus.Unsubscribe(h.handle)
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		c.close()
		delete(h.clients, c)
	}
}
