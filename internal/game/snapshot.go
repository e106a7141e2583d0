package game

import (
	"time"

	"github.com/cursedclash/clash-server-go/internal/game/counters"
	"github.com/cursedclash/clash-server-go/internal/game/watchers"
)

// MatchView is a detached copy of a match. Nothing in it aliases engine state.
type MatchView struct {
	ID              string
	Lifecycle       string
	Training        bool
	Round           int
	TurnNumber      int
	CurrentPlayerID string
	WinnerID        string
	Domain          *DomainView
	Players         []PlayerView
	Log             []string
	CreatedAt       time.Time
}

// DomainView describes the active domain.
type DomainView struct {
	CardID  string
	OwnerID string
	Effect  string
}

// PlayerView is one seat, in seating order.
type PlayerView struct {
	ID               string
	Name             string
	CharacterID      string
	CharacterName    string
	PassiveName      string
	HP               int
	MaxHP            int
	Energy           int
	MaxEnergy        int
	Block            int
	Status           string
	Hand             []CardView
	DeckSize         int
	Discard          []CardView
	Effects          []EffectView
	Counters         []counters.CounterView
	LastDiscardRound int
	Dummy            bool
	Stats            PlayerStats
}

// PlayerStats are match totals gathered by the match watchers.
type PlayerStats struct {
	DamageDealt int
	DamageTaken int
	CardsPlayed int
	Domains     int
}

// CardView is a card instance.
type CardView struct {
	InstanceID string
	CardID     string
	Name       string
	Kind       string
	Rarity     string
	Cost       int
	SoulCost   int
	Text       string
	Target     string
	Copied     bool
}

// EffectView is a held effect.
type EffectView struct {
	ID       string
	Kind     string
	Name     string
	Duration int
	Value    int
	SourceID string
	TargetID string
}

// View builds a deep copy of the match for callers outside the lock.
func (m *Match) View() *MatchView {
	v := &MatchView{
		ID:         m.ID,
		Lifecycle:  m.Lifecycle.String(),
		Training:   m.Training,
		Round:      m.turn.Round(),
		TurnNumber: m.turn.TurnNumber(),
		WinnerID:   m.WinnerID,
		Players:    make([]PlayerView, 0, len(m.Seats)),
		Log:        append([]string(nil), m.Log...),
		CreatedAt:  m.CreatedAt,
	}
	if cur := m.Current(); cur != nil && !m.finished() {
		v.CurrentPlayerID = cur.ID
	}
	if m.Domain != nil {
		v.Domain = &DomainView{
			CardID:  string(m.Domain.CardID),
			OwnerID: m.Domain.OwnerID,
			Effect:  string(m.Domain.Effect),
		}
	}

	damage, _ := m.watchers.Lookup(watchers.KeyDamage).(*watchers.DamageWatcher)
	played, _ := m.watchers.Lookup(watchers.KeyCardsPlayed).(*watchers.CardsPlayedWatcher)
	domains, _ := m.watchers.Lookup(watchers.KeyDomains).(*watchers.DomainWatcher)

	for _, p := range m.Seats {
		pv := PlayerView{
			ID:               p.ID,
			Name:             p.Name,
			CharacterID:      string(p.Character.ID),
			CharacterName:    p.Character.Name,
			PassiveName:      p.Character.PassiveName,
			HP:               p.HP,
			MaxHP:            p.MaxHP,
			Energy:           p.Energy,
			MaxEnergy:        p.MaxEnergy,
			Block:            p.Block,
			Status:           p.Status.String(),
			Hand:             cardViews(p.Hand),
			DeckSize:         len(p.Deck),
			Discard:          cardViews(p.Discard),
			Effects:          make([]EffectView, 0, p.Effects.Len()),
			Counters:         p.Flags.ToView(),
			LastDiscardRound: p.LastDiscardRound,
			Dummy:            p.Dummy,
		}
		for _, e := range p.Effects.Items {
			pv.Effects = append(pv.Effects, EffectView{
				ID:       e.ID,
				Kind:     string(e.Kind),
				Name:     e.Kind.String(),
				Duration: e.Duration,
				Value:    e.Value,
				SourceID: e.SourceID,
				TargetID: e.TargetID,
			})
		}
		if damage != nil {
			pv.Stats.DamageDealt = damage.Dealt(p.ID)
			pv.Stats.DamageTaken = damage.Taken(p.ID)
		}
		if played != nil {
			pv.Stats.CardsPlayed = played.Count(p.ID)
		}
		if domains != nil {
			pv.Stats.Domains = domains.Activations(p.ID)
		}
		v.Players = append(v.Players, pv)
	}
	return v
}

func cardViews(cards []CardInstance) []CardView {
	out := make([]CardView, 0, len(cards))
	for _, c := range cards {
		out = append(out, CardView{
			InstanceID: c.InstanceID,
			CardID:     string(c.ID),
			Name:       c.Name,
			Kind:       c.Kind.String(),
			Rarity:     c.Rarity.String(),
			Cost:       c.Cost,
			SoulCost:   c.SoulCost,
			Text:       c.Text,
			Target:     c.Target.Description,
			Copied:     c.Copied,
		})
	}
	return out
}

// Player returns the view of playerID.
func (v *MatchView) Player(playerID string) (PlayerView, bool) {
	for _, p := range v.Players {
		if p.ID == playerID {
			return p, true
		}
	}
	return PlayerView{}, false
}
