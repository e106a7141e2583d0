package game

import (
	"github.com/cursedclash/clash-server-go/internal/game/catalog"
	"github.com/cursedclash/clash-server-go/internal/game/effects"
	"github.com/cursedclash/clash-server-go/internal/game/rules"
)

func registerItadori(t resolverTable) {
	t[catalog.CardDivergentFist] = resolver{resolve: func(p *play) {
		res := p.strike(p.target, 400)
		if res.negated || !p.target.Alive() {
			return
		}
		residual := effects.NewBuilder(effects.KindDivergentResidual).From(p.actor.ID).Against(p.actor.ID).Build()
		p.m.applyEffect(p.target, residual)
	}}
	t[catalog.CardManjiKick] = resolver{resolve: func(p *play) {
		if res := p.strike(p.target, 600); res.negated {
			return
		}
		guard := effects.NewBuilder(effects.KindManjiGuard).From(p.actor.ID).Against(p.target.ID).Build()
		p.m.applyEffect(p.actor, guard)
	}}
	t[catalog.CardDeepConcentration] = resolver{resolve: func(p *play) {
		p.m.applyEffect(p.actor, effects.NewBuilder(effects.KindDeepConcentration).From(p.actor.ID).Build())
	}}
	t[catalog.CardUnwaveringWill] = resolver{resolve: func(p *play) {
		p.m.applyEffect(p.actor, effects.NewBuilder(effects.KindLastStand).From(p.actor.ID).Build())
	}}
	t[catalog.CardSpinAroundApproach] = resolver{resolve: func(p *play) {
		if strike, ok := p.actor.takeFromDeck(catalog.CardStrike); ok {
			p.actor.Hand = append(p.actor.Hand, strike)
			evt := p.m.event(rules.EventCardsDrawn, p.actor, p.actor, 1)
			evt.CardID = string(strike.ID)
			p.m.record(evt, "%s pulls a Strike from the deck", p.actor.Name)
		} else {
			p.m.logf("%s finds no Strike left in the deck", p.actor.Name)
		}
		p.m.applyEffect(p.actor, effects.NewBuilder(effects.KindFreeStrike).From(p.actor.ID).Build())
	}}
}
