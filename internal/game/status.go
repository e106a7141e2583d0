package game

import (
	"github.com/cursedclash/clash-server-go/internal/game/effects"
	"github.com/cursedclash/clash-server-go/internal/game/rules"
)

func (m *Match) applyEffect(holder *Player, e effects.Effect) effects.ApplyResult {
	e.OwnerID = holder.ID
	res := holder.Effects.Apply(e)
	switch res {
	case effects.Added:
		evt := m.event(rules.EventEffectApplied, holder, m.byID(e.SourceID), e.Duration)
		evt.Data = string(e.Kind)
		m.record(evt, "%s gains %s", holder.Name, e.Kind)
	case effects.Refreshed:
		evt := m.event(rules.EventEffectApplied, holder, m.byID(e.SourceID), e.Duration)
		evt.Data = string(e.Kind)
		evt.Metadata["refreshed"] = "true"
		m.record(evt, "%s's %s is refreshed", holder.Name, e.Kind)
	default:
		m.logf("%s already has %s", holder.Name, e.Kind)
	}
	return res
}

func (m *Match) consumed(holder *Player, e effects.Effect) {
	evt := m.event(rules.EventEffectConsumed, holder, m.byID(e.SourceID), 0)
	evt.Data = string(e.Kind)
	m.record(evt, "%s's %s is used up", holder.Name, e.Kind)
}

// expire settles effects that just ran out on holder.
func (m *Match) expire(holder *Player, expired []effects.Effect) {
	for _, e := range expired {
		evt := m.event(rules.EventEffectExpired, holder, m.byID(e.SourceID), 0)
		evt.Data = string(e.Kind)
		m.record(evt, "%s's %s wears off", holder.Name, e.Kind)

		if e.Kind == effects.KindLastStand && holder.Alive() && holder.HP <= 0 {
			m.defeat(holder, "last stand ended")
		}
	}
	if len(expired) > 0 {
		m.settleDomain()
	}
}

func (m *Match) byID(id string) *Player {
	if id == "" {
		return nil
	}
	p, _ := m.player(id)
	return p
}
