package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cursedclash/clash-server-go/internal/config"
	"github.com/cursedclash/clash-server-go/internal/game"
	"github.com/cursedclash/clash-server-go/internal/game/catalog"
	"github.com/cursedclash/clash-server-go/internal/game/rules"
)

func startServer(t *testing.T) (*Server, string) {
	t.Helper()
	logger := zaptest.NewLogger(t)
	engine, err := game.NewEngine(logger, catalog.New(), game.WithSeed(11))
	require.NoError(t, err)

	srv := New(config.ServerConfig{
		WebSocket: config.WebSocketConfig{
			Path:           "/ws",
			WriteTimeout:   time.Second,
			PingInterval:   time.Second,
			MaxMessageSize: 64 * 1024,
		},
	}, engine, logger)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		srv.hub.close()
		ts.Close()
	})
	return srv, "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, msg Message) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(msg))
}

// next reads frames until one of the wanted types arrives.
func next(t *testing.T, conn *websocket.Conn, types ...string) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		var msg Message
		require.NoError(t, conn.ReadJSON(&msg))
		for _, want := range types {
			if msg.Type == want {
				return msg
			}
		}
	}
}

func createDuel(t *testing.T, conn *websocket.Conn) matchState {
	t.Helper()
	data, err := json.Marshal(createMatchData{Players: []rosterEntry{
		{PlayerID: "alice", Name: "Alice", Character: string(catalog.CharacterGojo)},
		{PlayerID: "bob", Name: "Bob", Character: string(catalog.CharacterItadori)},
	}})
	require.NoError(t, err)
	send(t, conn, Message{Type: MsgCreateMatch, RequestID: "r1", PlayerID: "alice", Data: data})

	reply := next(t, conn, MsgMatchState, MsgError)
	require.Equal(t, MsgMatchState, reply.Type, string(reply.Data))
	assert.Equal(t, "r1", reply.RequestID)

	var state matchState
	require.NoError(t, json.Unmarshal(reply.Data, &state))
	return state
}

func TestCreateMatchOverWebSocket(t *testing.T) {
	_, url := startServer(t)
	conn := dial(t, url)

	state := createDuel(t, conn)
	assert.Equal(t, "ACTIVE", state.Lifecycle)
	assert.NotEmpty(t, state.Checksum)
	require.Len(t, state.Players, 2)

	for _, p := range state.Players {
		if p.ID == "alice" {
			assert.NotEmpty(t, p.Hand)
		} else {
			assert.Empty(t, p.Hand, "opponent hand must be hidden")
		}
	}
}

func TestWrongPlayerEndTurnIsRejected(t *testing.T) {
	_, url := startServer(t)
	conn := dial(t, url)
	state := createDuel(t, conn)

	idle := "alice"
	if state.CurrentPlayerID == "alice" {
		idle = "bob"
	}
	send(t, conn, Message{Type: MsgEndTurn, RequestID: "r2", MatchID: state.ID, PlayerID: idle})

	reply := next(t, conn, MsgMatchState, MsgError)
	require.Equal(t, MsgError, reply.Type)
	assert.Equal(t, "r2", reply.RequestID)

	var e errorData
	require.NoError(t, json.Unmarshal(reply.Data, &e))
	assert.Equal(t, "FailedPrecondition", e.Code)
	assert.NotEmpty(t, e.Message)
}

func TestWatchersReceiveEventsAndState(t *testing.T) {
	_, url := startServer(t)
	owner := dial(t, url)
	state := createDuel(t, owner)

	watcher := dial(t, url)
	send(t, watcher, Message{Type: MsgJoinMatch, RequestID: "j1", MatchID: state.ID, PlayerID: "bob"})
	joined := next(t, watcher, MsgMatchState, MsgError)
	require.Equal(t, MsgMatchState, joined.Type, string(joined.Data))

	send(t, owner, Message{Type: MsgEndTurn, RequestID: "e1", MatchID: state.ID, PlayerID: state.CurrentPlayerID})

	evt := next(t, watcher, MsgMatchEvent)
	assert.Equal(t, state.ID, evt.MatchID)

	update := next(t, watcher, MsgMatchState)
	assert.Empty(t, update.RequestID, "request id only goes back to the sender")
	var after matchState
	require.NoError(t, json.Unmarshal(update.Data, &after))
	assert.Equal(t, 2, after.TurnNumber)
	assert.NotEqual(t, state.CurrentPlayerID, after.CurrentPlayerID)
}

func TestRequestValidation(t *testing.T) {
	_, url := startServer(t)
	conn := dial(t, url)

	tests := []struct {
		name string
		msg  Message
		code string
	}{
		{"missing match id", Message{Type: MsgEndTurn, PlayerID: "alice"}, "InvalidArgument"},
		{"unknown match", Message{Type: MsgGetMatch, MatchID: "nope"}, "NotFound"},
		{"unknown type", Message{Type: "shuffle", MatchID: "m"}, "Unimplemented"},
		{"missing data", Message{Type: MsgPlayCard, MatchID: "m", PlayerID: "alice"}, "InvalidArgument"},
		{"bad roster", Message{Type: MsgCreateMatch, Data: json.RawMessage(`{"players":[]}`)}, "FailedPrecondition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			send(t, conn, tt.msg)
			reply := next(t, conn, MsgError, MsgMatchState)
			require.Equal(t, MsgError, reply.Type)
			var e errorData
			require.NoError(t, json.Unmarshal(reply.Data, &e))
			assert.Equal(t, tt.code, e.Code)
		})
	}
}

func TestMalformedFrame(t *testing.T) {
	_, url := startServer(t)
	conn := dial(t, url)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	reply := next(t, conn, MsgError)

	var e errorData
	require.NoError(t, json.Unmarshal(reply.Data, &e))
	assert.Equal(t, "InvalidArgument", e.Code)
}

func TestCheckOrigin(t *testing.T) {
	s := &Server{cfg: config.ServerConfig{WebSocket: config.WebSocketConfig{AllowedOrigins: []string{"https://clash.example"}}}}

	req := httptest.NewRequest("GET", "/ws", nil)
	req.Header.Set("Origin", "https://clash.example")
	assert.True(t, s.checkOrigin(req))

	req.Header.Set("Origin", "https://evil.example")
	assert.False(t, s.checkOrigin(req))

	s.cfg.WebSocket.AllowedOrigins = nil
	assert.True(t, s.checkOrigin(req))
}

func TestEventFromCardPlay(t *testing.T) {
	evt := rules.NewEventWithAmount(rules.EventCardPlayed, "m1", "p2", "p1", 4000)
	evt.CardID = "blue"
	evt.Data = "p2,p3"

	data := eventFrom(evt)
	assert.Equal(t, "CARD_PLAYED", data.Type)
	assert.Equal(t, []string{"p2", "p3"}, data.Targets)
	assert.Empty(t, data.Data)

	heal := eventFrom(rules.NewEventWithAmount(rules.EventHealed, "m1", "p1", "p1", 500))
	assert.Empty(t, heal.Targets)
	assert.Equal(t, 500, heal.Amount)
}
