package game

import (
	"github.com/cursedclash/clash-server-go/internal/game/catalog"
	"github.com/cursedclash/clash-server-go/internal/game/cost"
	"github.com/cursedclash/clash-server-go/internal/game/counters"
	"github.com/cursedclash/clash-server-go/internal/game/effects"
	"github.com/cursedclash/clash-server-go/internal/game/rules"
)

const (
	isomerBacklash    = 500
	adjacencyPercent  = 85
	chantPercent      = 150
	blossomReduction  = 33
	sukunaRefundPct   = 5
	copiedCostPercent = 125
)

// hit is one damage request. Everything that hurts a player goes through
// resolveHit, whether it comes from a card, an effect tick or a passive.
type hit struct {
	source       *Player
	target       *Player
	amount       int
	ignoresBlock bool
	// card is the triggering card, nil for periodic and passive damage.
	card *catalog.Card
	// area hits are not stopped by Infinity.
	area bool
	// passive marks a single-target character passive such as Rika's swipe.
	// Infinity stops it like a card hit; periodic effect damage is never stopped.
	passive bool
	// sureHit is domain tick damage, stopped by Simple Domain.
	sureHit bool
	domain  bool
	chanted bool
	play    *play
}

type hitResult struct {
	dealt    int
	absorbed int
	negated  bool
	killed   bool
}

func (h hit) technique() bool {
	return h.card != nil && h.card.Kind == catalog.KindTechnique
}

// resolveHit runs the damage stages in order: negation, seat adjacency,
// attacker amplification, target reductions, block, hp, reactive passives
// and finally the lethal check.
func (m *Match) resolveHit(h hit) hitResult {
	var res hitResult
	t := h.target
	if t == nil || !t.Alive() || h.amount <= 0 {
		return res
	}

	if reason, ok := m.negation(h); ok {
		res.negated = true
		evt := m.event(rules.EventDamageNegated, t, h.source, h.amount)
		evt.Data = reason
		m.record(evt, "%s negates %d damage to %s", reason, h.amount, t.Name)
		return res
	}

	amount := h.amount
	if h.source != nil && h.source != t && h.source.Is(catalog.CharacterSukuna) && m.adjacent(h.source, t) {
		amount = amount * adjacencyPercent / 100
	}

	if h.technique() {
		if h.chanted {
			amount = amount * chantPercent / 100
		}
		if h.source != nil {
			if zone, ok := h.source.Effects.Find(effects.KindZone); ok {
				amount = amount * (100 + zone.Value) / 100
			}
		}
	}

	if blossom, ok := t.Effects.Find(effects.KindFallingBlossom); ok && (h.technique() || h.domain) {
		pct := blossom.Value
		if pct <= 0 {
			pct = blossomReduction
		}
		amount -= (amount*pct + 50) / 100
	}

	if h.card != nil && h.card.ID == catalog.CardStrike && t.Effects.Has(effects.KindTrueForm) {
		amount /= 2
	}

	// block
	if t.Block > 0 && t.Effects.Has(effects.KindSoulDistortion) {
		m.logf("%s's block is torn away by Self-Embodiment of Perfection", t.Name)
		t.Block = 0
	}
	isomerBroken := false
	if !h.ignoresBlock {
		absorbed := min(t.Block, amount)
		if absorbed > 0 {
			t.Block -= absorbed
			amount -= absorbed
			res.absorbed = absorbed
			m.logf("%s's block absorbs %d damage", t.Name, absorbed)
			if t.Block == 0 {
				if iso, ok := t.Effects.Consume(effects.KindSoulIsomer); ok {
					m.consumed(t, iso)
					isomerBroken = true
				}
			}
		}
	} else if h.source != nil && h.source != t {
		h.source.Flags.Add(counters.CounterIgnoredBlockHits, 1)
	}

	wasAlive := t.Alive()
	if amount > 0 {
		t.HP -= amount
		evt := m.event(rules.EventDamageDealt, t, h.source, amount)
		if h.card != nil {
			evt.CardID = string(h.card.ID)
		}
		m.record(evt, "%s takes %d damage%s", t.Name, amount, damageSuffix(h))
	}
	res.dealt = amount

	if isomerBroken && h.source != nil && h.source != t && h.source.Alive() {
		m.logf("the broken soul isomer lashes back at %s", h.source.Name)
		m.resolveHit(hit{source: t, target: h.source, amount: isomerBacklash, ignoresBlock: true})
	}

	if amount > 0 {
		m.reactToHit(h)
	}

	if t.Alive() && t.HP <= 0 {
		if ls, ok := t.Effects.Find(effects.KindLastStand); ok && t.HP >= ls.Value {
			m.logf("%s holds on with Last Stand at %d HP", t.Name, t.HP)
		} else {
			m.defeat(t, "hp reached zero")
		}
	}
	res.killed = wasAlive && !t.Alive()
	return res
}

func damageSuffix(h hit) string {
	switch {
	case h.card != nil && h.source != nil:
		return " from " + h.source.Name + "'s " + h.card.Name
	case h.source != nil:
		return " from " + h.source.Name
	default:
		return ""
	}
}

// negation reports whether the hit is cancelled outright, and by what.
func (m *Match) negation(h hit) (string, bool) {
	t := h.target
	if h.card != nil && h.source != nil {
		if guard, ok := t.Effects.ConsumeFor(effects.KindManjiGuard, h.source.ID); ok {
			m.consumed(t, guard)
			return "Manji Kick", true
		}
	}
	if (h.card != nil || h.passive) && !h.area && h.source != t && t.Effects.Has(effects.KindInfinity) {
		return "Infinity", true
	}
	if h.sureHit && t.Effects.Has(effects.KindSimpleDomain) {
		return "Simple Domain", true
	}
	return "", false
}

// reactToHit runs the passives that answer a landed card hit, in fixed order:
// Yuta's copy, Sukuna's refund, Jogo's burn.
func (m *Match) reactToHit(h hit) {
	t, src := h.target, h.source
	if src == nil || src == t || h.card == nil {
		return
	}

	if t.Is(catalog.CharacterYuta) && h.technique() && !t.Effects.Has(effects.KindRikaCooldown) {
		if h.play == nil || h.play.copy(t.ID) {
			clone := newCardInstance(*h.card)
			clone.Cost = cost.ScalePercent(h.card.Cost, copiedCostPercent, cost.RoundCeil)
			clone.Copied = true
			t.Discard = append(t.Discard, clone)
			evt := m.event(rules.EventCardCopied, t, src, clone.Cost)
			evt.CardID = string(clone.ID)
			m.record(evt, "%s copies %s (cost %d)", t.Name, clone.Name, clone.Cost)
		}
	}

	if t.Is(catalog.CharacterSukuna) && src.hpPercent() > t.hpPercent() {
		if gained := t.gainEnergy(t.MaxEnergy * sukunaRefundPct / 100); gained > 0 {
			m.record(m.event(rules.EventResourceGained, t, t, gained),
				"%s is entertained and recovers %d cursed energy", t.Name, gained)
		}
	}

	if src.Is(catalog.CharacterJogo) && h.technique() && t.Alive() {
		m.applyEffect(t, effects.NewBuilder(effects.KindBurn).From(src.ID).Build())
	}
}
