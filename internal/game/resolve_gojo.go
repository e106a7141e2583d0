package game

import (
	"github.com/cursedclash/clash-server-go/internal/game/catalog"
	"github.com/cursedclash/clash-server-go/internal/game/counters"
	"github.com/cursedclash/clash-server-go/internal/game/effects"
)

const (
	blindfoldHPPercent = 33
	blueDamage         = 1000
	blueTargets        = 2
	redDamage          = 1200
	redSplash          = 600
	purpleDamage       = 4000
)

func registerGojo(t resolverTable) {
	t[catalog.CardRemoveBlindfold] = resolver{
		check: func(p *play) error {
			if p.actor.Flags.Has(counters.CounterBlindfoldRemoved) {
				return illegal("the blindfold is already off")
			}
			if p.actor.HP*100 > p.actor.MaxHP*blindfoldHPPercent {
				return illegal("Remove Blindfold requires HP at or below %d%%", blindfoldHPPercent)
			}
			return nil
		},
		resolve: func(p *play) {
			if fold, ok := p.actor.Effects.Consume(effects.KindBlindfold); ok {
				p.m.consumed(p.actor, fold)
			}
			p.actor.Flags.Mark(counters.CounterBlindfoldRemoved)
			p.m.logf("%s removes the blindfold; the Six Eyes open", p.actor.Name)
		},
	}
	t[catalog.CardStrengthenedStrike] = resolver{resolve: func(p *play) {
		p.strike(p.target, strikeDamage, ignoringBlock)
	}}
	t[catalog.CardInfinity] = resolver{resolve: func(p *play) {
		p.m.applyEffect(p.actor, effects.NewBuilder(effects.KindInfinity).From(p.actor.ID).Build())
	}}
	t[catalog.CardBlue] = resolver{resolve: func(p *play) {
		for _, target := range p.m.randomOpponents(p.actor, blueTargets) {
			p.strike(target, blueDamage, asArea)
		}
		p.actor.Flags.Mark(counters.CounterBlueUsed)
	}}
	t[catalog.CardRed] = resolver{resolve: func(p *play) {
		right := p.m.rightOf(p.target)
		p.strike(p.target, redDamage)
		p.splash([]*Player{right}, redSplash)
		p.actor.Flags.Mark(counters.CounterRedUsed)
	}}
	t[catalog.CardPurple] = resolver{
		requires: []counters.Requirement{
			counters.Flag(counters.CounterBlueUsed, "Blue has not been used this match"),
			counters.Flag(counters.CounterRedUsed, "Red has not been used this match"),
		},
		resolve: func(p *play) {
			p.strike(p.target, purpleDamage, ignoringBlock)
		},
	}
	t[catalog.CardUnlimitedVoid] = resolver{resolve: func(p *play) {
		p.m.expandDomain(p, effects.KindInformationOverload, false)
	}}
}
