package server

import (
	"encoding/json"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cursedclash/clash-server-go/internal/game"
	"github.com/cursedclash/clash-server-go/internal/game/catalog"
)

// handle dispatches one inbound frame. Successful actions broadcast the new
// state to every watcher of the match; failures only reach the sender.
func (s *Server) handle(c *Client, msg Message) {
	view, err := s.dispatch(c, msg)
	if err != nil {
		s.logger.Debug("request failed",
			zap.String("type", msg.Type),
			zap.String("match_id", msg.MatchID),
			zap.String("player_id", c.actor(msg)),
			zap.Error(err),
		)
		c.sendError(msg.RequestID, err)
		return
	}

	switch msg.Type {
	case MsgJoinMatch, MsgGetMatch:
		c.sendState(view, msg.RequestID)
	default:
		s.hub.broadcastState(view, msg.RequestID, c)
	}
}

func (s *Server) dispatch(c *Client, msg Message) (*game.MatchView, error) {
	if msg.Type != MsgCreateMatch && msg.MatchID == "" {
		return nil, status.Error(codes.InvalidArgument, "match_id is required")
	}

	switch msg.Type {
	case MsgCreateMatch:
		var data createMatchData
		if err := decode(msg.Data, &data); err != nil {
			return nil, err
		}
		roster := make([]game.RosterEntry, 0, len(data.Players))
		for _, p := range data.Players {
			roster = append(roster, game.RosterEntry{
				PlayerID:  p.PlayerID,
				Name:      p.Name,
				Character: catalog.CharacterID(p.Character),
			})
		}
		view, err := s.engine.CreateMatch(roster, data.Training)
		if err != nil {
			return nil, err
		}
		c.bind(view.ID, msg.PlayerID)
		return view, nil

	case MsgJoinMatch:
		view, err := s.engine.Match(msg.MatchID)
		if err != nil {
			return nil, err
		}
		if msg.PlayerID != "" && !seated(view, msg.PlayerID) {
			return nil, status.Errorf(codes.NotFound, "player %s is not seated in match %s", msg.PlayerID, msg.MatchID)
		}
		c.bind(msg.MatchID, msg.PlayerID)
		return view, nil

	case MsgGetMatch:
		return s.engine.Match(msg.MatchID)

	case MsgPlayCard:
		var data playCardData
		if err := decode(msg.Data, &data); err != nil {
			return nil, err
		}
		return s.engine.PlayCard(msg.MatchID, c.actor(msg), data.CardInstanceID, data.TargetID, data.TargetIDs)

	case MsgEndTurn:
		return s.engine.EndTurn(msg.MatchID, c.actor(msg))

	case MsgDiscardCards:
		var data discardData
		if err := decode(msg.Data, &data); err != nil {
			return nil, err
		}
		return s.engine.DiscardAndRedraw(msg.MatchID, c.actor(msg), data.CardInstanceIDs)

	case MsgAddDummy:
		return s.engine.AddTrainingDummy(msg.MatchID)

	case MsgRemoveDummy:
		var data removeDummyData
		if err := decode(msg.Data, &data); err != nil {
			return nil, err
		}
		return s.engine.RemoveTrainingDummy(msg.MatchID, data.DummyID)

	case MsgForfeitGame:
		return s.engine.Forfeit(msg.MatchID, c.actor(msg))

	default:
		return nil, status.Errorf(codes.Unimplemented, "unknown message type %q", msg.Type)
	}
}

func decode(raw json.RawMessage, into any) error {
	if len(raw) == 0 {
		return status.Error(codes.InvalidArgument, "data is required")
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return status.Errorf(codes.InvalidArgument, "invalid data: %v", err)
	}
	return nil
}

func seated(view *game.MatchView, playerID string) bool {
	for _, p := range view.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}
