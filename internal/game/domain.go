package game

import (
	"github.com/cursedclash/clash-server-go/internal/game/effects"
	"github.com/cursedclash/clash-server-go/internal/game/rules"
)

// expandDomain replaces whatever domain is active with the one played in p.
// Every domain-tagged effect on every player is purged before the signature
// effect goes out, so two domains never coexist.
func (m *Match) expandDomain(p *play, kind effects.Kind, onSelf bool) {
	for _, player := range m.Seats {
		for _, removed := range player.Effects.RemoveDomainTags() {
			evt := m.event(rules.EventEffectExpired, player, m.byID(removed.SourceID), 0)
			evt.Data = string(removed.Kind)
			m.record(evt, "%s's %s collapses", player.Name, removed.Kind)
		}
	}
	if prev := m.Domain; prev != nil {
		m.clearDomain(prev, "overridden")
	}

	m.Domain = &ActiveDomain{CardID: p.card.ID, OwnerID: p.actor.ID, Effect: kind}
	evt := m.event(rules.EventDomainActivated, nil, p.actor, 0)
	evt.CardID = string(p.card.ID)
	evt.Data = string(kind)
	m.record(evt, "%s expands %s", p.actor.Name, p.card.Name)

	if onSelf {
		m.applyEffect(p.actor, effects.NewBuilder(kind).From(p.actor.ID).Build())
		return
	}
	for _, opp := range m.opponentsOf(p.actor) {
		m.applyEffect(opp, effects.NewBuilder(kind).From(p.actor.ID).Build())
	}
	m.settleDomain()
}

// settleDomain clears the marker once no living player holds its signature effect.
func (m *Match) settleDomain() {
	d := m.Domain
	if d == nil {
		return
	}
	for _, player := range m.Seats {
		if !player.Alive() {
			continue
		}
		for _, e := range player.Effects.Items {
			if e.Kind == d.Effect && e.SourceID == d.OwnerID {
				return
			}
		}
	}
	m.clearDomain(d, "faded")
}

func (m *Match) clearDomain(d *ActiveDomain, why string) {
	if m.Domain == d {
		m.Domain = nil
	}
	evt := m.event(rules.EventDomainCleared, nil, m.byID(d.OwnerID), 0)
	evt.CardID = string(d.CardID)
	evt.Data = why
	m.record(evt, "the domain %s has %s", d.Effect, why)
}

// simpleDomain shields the caster: enemy domain tags on them are purged and
// sure-hit damage is nullified while the effect lasts.
func (m *Match) simpleDomain(p *play) {
	actor := p.actor
	removed := actor.Effects.RemoveWhere(func(e effects.Effect) bool {
		return e.Kind.IsDomain() && e.SourceID != actor.ID
	})
	for _, e := range removed {
		evt := m.event(rules.EventEffectExpired, actor, m.byID(e.SourceID), 0)
		evt.Data = string(e.Kind)
		m.record(evt, "%s shrugs off %s", actor.Name, e.Kind)
	}
	m.applyEffect(actor, effects.NewBuilder(effects.KindSimpleDomain).From(actor.ID).Build())
	if len(removed) > 0 {
		m.settleDomain()
	}
}
