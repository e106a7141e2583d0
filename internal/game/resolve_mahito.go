package game

import (
	"github.com/cursedclash/clash-server-go/internal/game/catalog"
	"github.com/cursedclash/clash-server-go/internal/game/counters"
	"github.com/cursedclash/clash-server-go/internal/game/effects"
	"github.com/cursedclash/clash-server-go/internal/game/rules"
)

const (
	soulTouchDamage = 250
	bodyRepelDamage = 1400
)

func registerMahito(t resolverTable) {
	t[catalog.CardSoulTouch] = resolver{resolve: func(p *play) {
		for _, n := range p.m.neighbours(p.actor) {
			if res := p.strike(n, soulTouchDamage, ignoringBlock, asArea); !res.negated {
				p.m.gainSouls(p.actor, 1)
			}
		}
	}}
	t[catalog.CardSoulDistortion] = resolver{resolve: func(p *play) {
		p.m.discardRandom(p.target, 1, p.card.Name)
	}}
	t[catalog.CardPolymorphicSoulIsomer] = resolver{resolve: func(p *play) {
		iso := effects.NewBuilder(effects.KindSoulIsomer).From(p.actor.ID).Build()
		p.gainBlock(p.actor, iso.Value)
		p.m.applyEffect(p.actor, iso)
	}}
	t[catalog.CardBodyRepel] = resolver{resolve: func(p *play) {
		amount := bodyRepelDamage
		if p.target.Block > 0 {
			amount = amount * 3 / 2
		}
		p.strike(p.target, amount)
	}}
	t[catalog.CardTrueForm] = resolver{
		requires: []counters.Requirement{
			counters.Flag(counters.CounterBlackFlashLanded, "requires a successful Black Flash"),
		},
		resolve: func(p *play) {
			p.m.applyEffect(p.actor, effects.NewBuilder(effects.KindTrueForm).From(p.actor.ID).Build())
		},
	}
	t[catalog.CardSelfEmbodimentOfPerfection] = resolver{resolve: func(p *play) {
		p.m.expandDomain(p, effects.KindSoulDistortion, false)
	}}
}

func (m *Match) gainSouls(p *Player, n int) {
	if n <= 0 {
		return
	}
	p.Flags.Add(counters.CounterDistortedSouls, n)
	evt := m.event(rules.EventResourceGained, p, p, n)
	evt.Data = string(counters.CounterDistortedSouls)
	m.record(evt, "%s gains %d Distorted Soul(s) (%d total)", p.Name, n, p.Souls())
}

// discardRandom throws away up to n random cards from p's hand.
func (m *Match) discardRandom(p *Player, n int, cause string) {
	for i := 0; i < n && len(p.Hand) > 0; i++ {
		idx := m.rng.IntN(len(p.Hand))
		card := p.Hand[idx]
		p.Hand = append(p.Hand[:idx], p.Hand[idx+1:]...)
		p.Discard = append(p.Discard, card)
		evt := m.event(rules.EventCardsDiscarded, p, nil, 1)
		evt.CardID = string(card.ID)
		evt.Data = cause
		m.record(evt, "%s discards %s (%s)", p.Name, card.Name, cause)
	}
}
