package game

import (
	"github.com/cursedclash/clash-server-go/internal/game/catalog"
	"github.com/cursedclash/clash-server-go/internal/game/effects"
)

func registerYuta(t resolverTable) {
	t[catalog.CardEnergyBlade] = resolver{resolve: func(p *play) {
		p.strike(p.target, 500)
	}}
	t[catalog.CardRikaManifestation] = resolver{resolve: func(p *play) {
		p.m.applyEffect(p.actor, effects.NewBuilder(effects.KindRikaManifestation).From(p.actor.ID).Build())
	}}
	t[catalog.CardPureLove] = resolver{resolve: func(p *play) {
		p.strike(p.target, 2500)
		p.m.applyEffect(p.actor, effects.NewBuilder(effects.KindRikaCooldown).From(p.actor.ID).Build())
	}}
	t[catalog.CardTrueMutualLove] = resolver{resolve: func(p *play) {
		p.m.expandDomain(p, effects.KindTrueMutualLove, true)
	}}
}
