package server

import (
	"encoding/json"
	"time"

	"github.com/cursedclash/clash-server-go/internal/game"
	"github.com/cursedclash/clash-server-go/internal/game/rules"
	"github.com/cursedclash/clash-server-go/internal/game/targeting"
)

// Inbound message types.
const (
	MsgCreateMatch  = "create_match"
	MsgJoinMatch    = "join_match"
	MsgGetMatch     = "get_match"
	MsgPlayCard     = "play_card"
	MsgEndTurn      = "end_turn"
	MsgDiscardCards = "discard_cards"
	MsgAddDummy     = "add_dummy"
	MsgRemoveDummy  = "remove_dummy"
	MsgForfeitGame  = "forfeit_game"
)

// Outbound message types.
const (
	MsgMatchState = "match_state"
	MsgMatchEvent = "match_event"
	MsgError      = "error"
)

// Message is the envelope for every frame in both directions.
type Message struct {
	Type      string          `json:"type"`
	RequestID string          `json:"request_id,omitempty"`
	MatchID   string          `json:"match_id,omitempty"`
	PlayerID  string          `json:"player_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

type rosterEntry struct {
	PlayerID  string `json:"player_id"`
	Name      string `json:"name"`
	Character string `json:"character"`
}

type createMatchData struct {
	Players  []rosterEntry `json:"players"`
	Training bool          `json:"training"`
}

type playCardData struct {
	CardInstanceID string   `json:"card_instance_id"`
	TargetID       string   `json:"target_id,omitempty"`
	TargetIDs      []string `json:"target_ids,omitempty"`
}

type discardData struct {
	CardInstanceIDs []string `json:"card_instance_ids"`
}

type removeDummyData struct {
	DummyID string `json:"dummy_id"`
}

type errorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type eventData struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	TargetID    string    `json:"target_id,omitempty"`
	SourceID    string    `json:"source_id,omitempty"`
	CardID      string    `json:"card_id,omitempty"`
	Amount      int       `json:"amount,omitempty"`
	Targets     []string  `json:"targets,omitempty"`
	Data        string    `json:"data,omitempty"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

func eventFrom(evt rules.Event) eventData {
	data := eventData{
		ID:          evt.ID,
		Type:        string(evt.Type),
		TargetID:    evt.TargetID,
		SourceID:    evt.SourceID,
		CardID:      evt.CardID,
		Amount:      evt.Amount,
		Data:        evt.Data,
		Description: evt.Description,
		Timestamp:   evt.Timestamp,
	}
	// card plays carry every chosen or rolled target in Data
	if evt.Type == rules.EventCardPlayed {
		data.Targets = targeting.ParseTargets(evt.Data)
		data.Data = ""
	}
	return data
}

// matchState is the JSON shape of a game.MatchView.
type matchState struct {
	ID              string        `json:"id"`
	Lifecycle       string        `json:"lifecycle"`
	Training        bool          `json:"training"`
	Round           int           `json:"round"`
	TurnNumber      int           `json:"turn_number"`
	CurrentPlayerID string        `json:"current_player_id,omitempty"`
	WinnerID        string        `json:"winner_id,omitempty"`
	Domain          *domainState  `json:"domain,omitempty"`
	Players         []playerState `json:"players"`
	Log             []string      `json:"log"`
	Checksum        string        `json:"checksum,omitempty"`
}

type domainState struct {
	CardID  string `json:"card_id"`
	OwnerID string `json:"owner_id"`
	Effect  string `json:"effect"`
}

type playerState struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Character     string         `json:"character"`
	CharacterName string         `json:"character_name"`
	Passive       string         `json:"passive"`
	HP            int            `json:"hp"`
	MaxHP         int            `json:"max_hp"`
	Energy        int            `json:"energy"`
	MaxEnergy     int            `json:"max_energy"`
	Block         int            `json:"block"`
	Status        string         `json:"status"`
	Hand          []cardState    `json:"hand"`
	DeckSize      int            `json:"deck_size"`
	DiscardSize   int            `json:"discard_size"`
	Effects       []effectState  `json:"effects"`
	Counters      map[string]int `json:"counters"`
	Dummy         bool           `json:"dummy,omitempty"`
	DamageDealt   int            `json:"damage_dealt"`
	DamageTaken   int            `json:"damage_taken"`
	CardsPlayed   int            `json:"cards_played"`
	Domains       int            `json:"domains"`
}

type cardState struct {
	InstanceID string `json:"instance_id"`
	CardID     string `json:"card_id"`
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	Rarity     string `json:"rarity"`
	Cost       int    `json:"cost"`
	SoulCost   int    `json:"soul_cost,omitempty"`
	Text       string `json:"text"`
	Target     string `json:"target"`
	Copied     bool   `json:"copied,omitempty"`
}

type effectState struct {
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Duration int    `json:"duration"`
	Value    int    `json:"value,omitempty"`
	SourceID string `json:"source_id,omitempty"`
}

// stateFrom converts a view for the wire. Hands of other players are hidden
// from a viewer bound to a player id.
func stateFrom(v *game.MatchView, viewerID string) matchState {
	s := matchState{
		ID:              v.ID,
		Lifecycle:       v.Lifecycle,
		Training:        v.Training,
		Round:           v.Round,
		TurnNumber:      v.TurnNumber,
		CurrentPlayerID: v.CurrentPlayerID,
		WinnerID:        v.WinnerID,
		Players:         make([]playerState, 0, len(v.Players)),
		Log:             v.Log,
	}
	if v.Domain != nil {
		s.Domain = &domainState{CardID: v.Domain.CardID, OwnerID: v.Domain.OwnerID, Effect: v.Domain.Effect}
	}
	if sum, err := v.ComputeChecksum(); err == nil {
		s.Checksum = sum.Hash
	}

	for _, p := range v.Players {
		ps := playerState{
			ID:            p.ID,
			Name:          p.Name,
			Character:     p.CharacterID,
			CharacterName: p.CharacterName,
			Passive:       p.PassiveName,
			HP:            p.HP,
			MaxHP:         p.MaxHP,
			Energy:        p.Energy,
			MaxEnergy:     p.MaxEnergy,
			Block:         p.Block,
			Status:        p.Status,
			Hand:          make([]cardState, 0, len(p.Hand)),
			DeckSize:      p.DeckSize,
			DiscardSize:   len(p.Discard),
			Effects:       make([]effectState, 0, len(p.Effects)),
			Counters:      make(map[string]int, len(p.Counters)),
			Dummy:         p.Dummy,
			DamageDealt:   p.Stats.DamageDealt,
			DamageTaken:   p.Stats.DamageTaken,
			CardsPlayed:   p.Stats.CardsPlayed,
			Domains:       p.Stats.Domains,
		}
		if viewerID == "" || viewerID == p.ID {
			for _, c := range p.Hand {
				ps.Hand = append(ps.Hand, cardState{
					InstanceID: c.InstanceID,
					CardID:     c.CardID,
					Name:       c.Name,
					Kind:       c.Kind,
					Rarity:     c.Rarity,
					Cost:       c.Cost,
					SoulCost:   c.SoulCost,
					Text:       c.Text,
					Target:     c.Target,
					Copied:     c.Copied,
				})
			}
		}
		for _, e := range p.Effects {
			ps.Effects = append(ps.Effects, effectState{
				Kind:     e.Kind,
				Name:     e.Name,
				Duration: e.Duration,
				Value:    e.Value,
				SourceID: e.SourceID,
			})
		}
		for _, c := range p.Counters {
			ps.Counters[c.Name] = c.Count
		}
		s.Players = append(s.Players, ps)
	}
	return s
}
