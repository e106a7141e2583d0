package game

import (
	"github.com/cursedclash/clash-server-go/internal/game/catalog"
	"github.com/cursedclash/clash-server-go/internal/game/counters"
	"github.com/cursedclash/clash-server-go/internal/game/effects"
	"github.com/cursedclash/clash-server-go/internal/game/rules"
)

const (
	blindfoldStepPct = 5
	blindfoldMaxPct  = 90
	rikaPassiveHit   = 250
	soulTouchEvery   = 2
)

func (m *Match) endTurn(playerID string) error {
	if m.finished() {
		return illegal("match %s is finished", m.ID)
	}
	p, _ := m.player(playerID)
	if p == nil {
		return notFound("player %s is not in match %s", playerID, m.ID)
	}
	if m.Current() != p {
		return illegal("it is not %s's turn", p.Name)
	}
	m.finishTurn(p)
	if m.checkWinner() {
		return nil
	}
	m.advance()
	return nil
}

// finishTurn runs the end-of-turn hooks of the departing player: passives
// first, then timed effects.
func (m *Match) finishTurn(p *Player) {
	m.endOfTurnPassives(p)
	expired := p.Effects.Tick(effects.TickEndOfTurn, func(e effects.Effect) { m.fireEndOfTurn(p, e) })
	m.expire(p, expired)
	m.record(m.event(rules.EventTurnEnded, nil, p, 0), "%s ends the turn", p.Name)
}

// advance hands the turn to the next living seat. Dummies pass straight
// through, so the loop is bounded by the seat count.
func (m *Match) advance() {
	for guard := 0; guard <= len(m.Seats); guard++ {
		adv, ok := m.turn.Next(m)
		if !ok {
			m.checkWinner()
			return
		}
		if adv.NewRound {
			m.startRound()
			m.turn.Settle()
		}

		p := m.Current()
		m.startTurn(p)
		if m.checkWinner() {
			return
		}
		if !p.Alive() {
			continue
		}
		if !p.Dummy {
			return
		}
		m.logf("%s stands still", p.Name)
		m.finishTurn(p)
		if m.checkWinner() {
			return
		}
	}
}

// startRound resets block, refills hands and regenerates energy for every
// living player, then ticks the per-round passives.
func (m *Match) startRound() {
	round := m.turn.Round()
	m.record(m.event(rules.EventRoundStarted, nil, nil, round), "--- Round %d ---", round)

	for _, p := range m.Seats {
		if !p.Alive() {
			continue
		}
		p.Block = 0
		m.drawToCap(p)

		if gained := p.gainEnergy(p.MaxEnergy * m.cfg.RegenPercent / 100); gained > 0 {
			m.record(m.event(rules.EventResourceGained, p, nil, gained),
				"%s regenerates %d cursed energy", p.Name, gained)
		}

		if p.Flags.Has(counters.CounterBlindfoldRemoved) {
			if pct := p.Flags.Get(counters.CounterCostReductionPct); pct < blindfoldMaxPct {
				p.Flags.Add(counters.CounterCostReductionPct, min(blindfoldStepPct, blindfoldMaxPct-pct))
				m.logf("%s's costs are now reduced by %d%%", p.Name, p.Flags.Get(counters.CounterCostReductionPct))
			}
		}

		if tf, ok := p.Effects.Find(effects.KindTrueForm); ok {
			p.gainBlock(tf.Value)
			m.record(m.event(rules.EventBlockGained, p, p, tf.Value),
				"%s's true form hardens into %d block", p.Name, tf.Value)
		}
	}
}

func (m *Match) startTurn(p *Player) {
	p.Flags.Add(counters.CounterTurnsTaken, 1)
	m.record(m.event(rules.EventTurnStarted, nil, p, m.turn.TurnNumber()),
		"%s's turn (round %d)", p.Name, m.turn.Round())

	m.startOfTurnPassives(p)
	expired := p.Effects.Tick(effects.TickStartOfTurn, func(e effects.Effect) { m.fireStartOfTurn(p, e) })
	m.expire(p, expired)
}

func (m *Match) startOfTurnPassives(p *Player) {
	if !p.Alive() || !p.Is(catalog.CharacterMahito) {
		return
	}
	if p.Flags.Get(counters.CounterTurnsTaken)%soulTouchEvery == 0 {
		if card, ok := m.catalog.Card(catalog.CardSoulTouch); ok {
			created := newCardInstance(card)
			p.Hand = append(p.Hand, created)
			evt := m.event(rules.EventCardCreated, p, p, 1)
			evt.CardID = string(card.ID)
			m.record(evt, "Idle Transfiguration shapes a %s in %s's hand", card.Name, p.Name)
		}
	}
	afflicted := 0
	for _, opp := range m.opponentsOf(p) {
		for _, e := range opp.Effects.Items {
			if e.Kind == effects.KindSoulDistortion && e.SourceID == p.ID {
				afflicted++
				break
			}
		}
	}
	m.gainSouls(p, afflicted)
}

func (m *Match) endOfTurnPassives(p *Player) {
	if !p.Alive() || !p.Is(catalog.CharacterYuta) {
		return
	}
	// Manifestation replaces the passive swipe while it lasts.
	if p.Effects.Has(effects.KindRikaCooldown) || p.Effects.Has(effects.KindRikaManifestation) {
		return
	}
	for _, target := range m.randomOpponents(p, 1) {
		m.logf("Rika lashes out at %s", target.Name)
		m.resolveHit(hit{source: p, target: target, amount: rikaPassiveHit, ignoresBlock: true, passive: true})
	}
}

func (m *Match) fireStartOfTurn(holder *Player, e effects.Effect) {
	if !holder.Alive() {
		return
	}
	source := m.byID(e.SourceID)
	switch e.Kind {
	case effects.KindBurn:
		m.resolveHit(hit{source: source, target: holder, amount: e.Value, ignoresBlock: true})
	case effects.KindDivergentResidual:
		m.resolveHit(hit{source: source, target: holder, amount: e.Value})
	case effects.KindIronMountainHeat:
		m.resolveHit(hit{source: source, target: holder, amount: e.Value, sureHit: true, domain: true})
	case effects.KindSoulDistortion:
		if holder.Block > 0 {
			m.logf("%s's block is torn away by Self-Embodiment of Perfection", holder.Name)
			holder.Block = 0
		}
		m.discardRandom(holder, e.Value, e.Kind.String())
	case effects.KindSimpleDomain:
		holder.gainBlock(e.Value)
		m.record(m.event(rules.EventBlockGained, holder, holder, e.Value),
			"%s's simple domain grants %d block", holder.Name, e.Value)
	}
}

func (m *Match) fireEndOfTurn(holder *Player, e effects.Effect) {
	if !holder.Alive() {
		return
	}
	source := m.byID(e.SourceID)
	switch e.Kind {
	case effects.KindMalevolentShrine:
		m.resolveHit(hit{source: source, target: holder, amount: e.Value, ignoresBlock: true, sureHit: true, domain: true})
	case effects.KindRikaManifestation:
		for _, n := range m.neighbours(holder) {
			m.logf("Rika tears into %s", n.Name)
			m.resolveHit(hit{source: holder, target: n, amount: e.Value, ignoresBlock: true, area: true})
		}
	}
}
