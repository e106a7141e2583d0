package game

import (
	"github.com/cursedclash/clash-server-go/internal/game/catalog"
	"github.com/cursedclash/clash-server-go/internal/game/counters"
	"github.com/cursedclash/clash-server-go/internal/game/effects"
	"github.com/cursedclash/clash-server-go/internal/game/rules"
)

const (
	strikeDamage         = 300
	itadoriStrikeBonus   = 150
	itadoriStrikeRefund  = 1000
	trueFormStrikeFactor = 3
	defenseBlock         = 300
	blackFlashDamage     = 2500
	blackFlashMiss       = 100
	blackFlashSides      = 6
	zoneRounds           = 3
)

func registerCommon(t resolverTable) {
	t[catalog.CardStrike] = resolver{resolve: resolveStrike}
	t[catalog.CardDefense] = resolver{resolve: func(p *play) {
		p.gainBlock(p.actor, defenseBlock)
	}}
	t[catalog.CardConcentration] = resolver{resolve: func(p *play) {
		pct := p.rollPercent()
		gained := p.actor.gainEnergy(p.actor.MaxEnergy * pct / 100)
		p.m.record(p.m.event(rules.EventResourceGained, p.actor, p.actor, gained),
			"%s concentrates and recovers %d cursed energy (%d%%)", p.actor.Name, gained, pct)
	}}
	t[catalog.CardChant] = resolver{resolve: func(p *play) {
		p.actor.Flags.Mark(counters.CounterChantArmed)
		p.m.logf("%s begins a chant; the next Technique hits harder", p.actor.Name)
	}}
	t[catalog.CardSimpleDomain] = resolver{resolve: func(p *play) {
		p.m.simpleDomain(p)
	}}
	t[catalog.CardFallingBlossomEmotion] = resolver{resolve: func(p *play) {
		p.m.applyEffect(p.actor, effects.NewBuilder(effects.KindFallingBlossom).From(p.actor.ID).Build())
	}}
	t[catalog.CardReverseCursedTechnique] = resolver{resolve: func(p *play) {
		pct := p.rollPercent()
		healed := p.actor.heal(p.actor.MaxHP * pct / 100)
		p.m.record(p.m.event(rules.EventHealed, p.actor, p.actor, healed),
			"%s heals %d HP with Reverse Cursed Technique (%d%%)", p.actor.Name, healed, pct)
	}}
	t[catalog.CardBlackFlash] = resolver{resolve: resolveBlackFlash}
}

func resolveStrike(p *play) {
	amount := strikeDamage
	if p.actor.Is(catalog.CharacterItadori) {
		amount += itadoriStrikeBonus
	}
	if p.actor.Effects.Has(effects.KindTrueForm) {
		amount *= trueFormStrikeFactor
	}
	p.strike(p.target, amount)

	if p.actor.Is(catalog.CharacterItadori) {
		if gained := p.actor.gainEnergy(itadoriStrikeRefund); gained > 0 {
			p.m.record(p.m.event(rules.EventResourceGained, p.actor, p.actor, gained),
				"%s recovers %d cursed energy", p.actor.Name, gained)
		}
	}
}

// resolveBlackFlash rolls a d6 against the actor's chance. Deep Concentration
// makes the roll unnecessary and is used up either way.
func resolveBlackFlash(p *play) {
	var landed bool
	if focus, ok := p.actor.Effects.Consume(effects.KindDeepConcentration); ok {
		p.m.consumed(p.actor, focus)
		landed = true
	} else {
		landed = p.m.rng.IntN(blackFlashSides) < blackFlashChance(p.actor)
	}

	if !landed {
		p.m.logf("%s's Black Flash misses the timing", p.actor.Name)
		p.strike(p.target, blackFlashMiss)
		return
	}
	p.m.logf("BLACK FLASH!")
	p.strike(p.target, blackFlashDamage)
	p.actor.Flags.Mark(counters.CounterBlackFlashLanded)
	p.m.applyEffect(p.actor, effects.NewBuilder(effects.KindZone).From(p.actor.ID).For(zoneRounds).Build())
}

// blackFlashChance is the number of d6 faces that land a Black Flash.
func blackFlashChance(actor *Player) int {
	chance := 1
	if actor.Is(catalog.CharacterItadori) {
		chance = 2
	}
	if actor.Effects.Has(effects.KindZone) {
		chance++
	}
	return chance
}

func (p *play) rollPercent() int {
	return 5 + p.m.rng.IntN(11)
}

func (p *play) gainBlock(who *Player, amount int) {
	who.gainBlock(amount)
	p.m.record(p.m.event(rules.EventBlockGained, who, p.actor, amount),
		"%s gains %d block", who.Name, amount)
}
