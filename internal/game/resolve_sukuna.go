package game

import (
	"github.com/cursedclash/clash-server-go/internal/game/catalog"
	"github.com/cursedclash/clash-server-go/internal/game/effects"
	"github.com/cursedclash/clash-server-go/internal/game/rules"
)

const (
	kaminoDamage       = 1800
	kaminoShrineDamage = 1200
	kaminoKillRefund   = 10000
)

func registerSukuna(t resolverTable) {
	t[catalog.CardCleave] = resolver{resolve: func(p *play) {
		left := p.m.leftOf(p.target)
		p.strike(p.target, 600)
		p.splash([]*Player{left}, 300)
	}}
	t[catalog.CardDismantle] = resolver{resolve: func(p *play) {
		p.strike(p.target, 1600)
	}}
	t[catalog.CardSpiderweb] = resolver{resolve: func(p *play) {
		around := p.m.neighbours(p.target)
		p.strike(p.target, 1000)
		p.splash(around, 500)
	}}
	t[catalog.CardKamino] = resolver{resolve: resolveKamino}
	t[catalog.CardMalevolentShrine] = resolver{resolve: func(p *play) {
		p.m.expandDomain(p, effects.KindMalevolentShrine, false)
	}}
}

// resolveKamino rains on everyone inside Sukuna's own shrine; otherwise it is
// a single arrow that refunds energy when it kills.
func resolveKamino(p *play) {
	if d := p.m.Domain; d != nil && d.CardID == catalog.CardMalevolentShrine && d.OwnerID == p.actor.ID {
		for _, opp := range p.m.opponentsOf(p.actor) {
			p.strike(opp, kaminoShrineDamage, asArea)
		}
		return
	}
	res := p.strike(p.target, kaminoDamage)
	if !res.killed {
		return
	}
	if gained := p.actor.gainEnergy(kaminoKillRefund); gained > 0 {
		p.m.record(p.m.event(rules.EventResourceGained, p.actor, p.actor, gained),
			"%s feeds on the kill and recovers %d cursed energy", p.actor.Name, gained)
	}
}
