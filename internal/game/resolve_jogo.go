package game

import (
	"github.com/cursedclash/clash-server-go/internal/game/catalog"
	"github.com/cursedclash/clash-server-go/internal/game/effects"
)

const emberTargets = 3

func registerJogo(t resolverTable) {
	t[catalog.CardEmberInsects] = resolver{resolve: func(p *play) {
		targets := p.targets
		if len(targets) == 0 {
			targets = p.m.randomOpponents(p.actor, emberTargets)
		}
		for _, target := range targets {
			if len(targets) > 1 {
				p.strike(target, 300, asArea)
			} else {
				p.strike(target, 300)
			}
		}
	}}
	t[catalog.CardVolcanoEruption] = resolver{resolve: func(p *play) {
		for _, opp := range p.m.opponentsOf(p.actor) {
			p.strike(opp, 600, asArea)
		}
	}}
	t[catalog.CardMaximumMeteor] = resolver{resolve: func(p *play) {
		around := p.m.neighbours(p.target)
		p.strike(p.target, 2000)
		p.splash(around, 500)
	}}
	t[catalog.CardCoffinOfTheIronMountain] = resolver{resolve: func(p *play) {
		p.m.expandDomain(p, effects.KindIronMountainHeat, false)
	}}
}
