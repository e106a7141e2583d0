package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cursedclash/clash-server-go/internal/game/catalog"
	"github.com/cursedclash/clash-server-go/internal/game/cost"
	"github.com/cursedclash/clash-server-go/internal/game/counters"
	"github.com/cursedclash/clash-server-go/internal/game/effects"
	"github.com/cursedclash/clash-server-go/internal/game/rules"
	"github.com/cursedclash/clash-server-go/internal/game/targeting"
)

// PlayRequest is one play-card action.
type PlayRequest struct {
	PlayerID       string
	CardInstanceID string
	// TargetID is used by single-target cards, TargetIDs by "up to n" cards.
	TargetID  string
	TargetIDs []string
}

// play is the card currently being resolved.
type play struct {
	m       *Match
	actor   *Player
	card    CardInstance
	target  *Player
	targets []*Player
	// chanted is set when a Technique consumed an armed Chant; every hit of
	// the card is boosted.
	chanted bool
	copies  map[string]bool
}

// copy reports whether holderID may still copy this card; each holder copies
// a play at most once no matter how many times it is hit.
func (p *play) copy(holderID string) bool {
	if p.copies[holderID] {
		return false
	}
	p.copies[holderID] = true
	return true
}

type hitOption func(*hit)

func ignoringBlock(h *hit) { h.ignoresBlock = true }

func asArea(h *hit) { h.area = true }

// strike sends a hit from the actor's card to target.
func (p *play) strike(target *Player, amount int, opts ...hitOption) hitResult {
	if target == nil {
		return hitResult{}
	}
	h := hit{
		source:  p.actor,
		target:  target,
		amount:  amount,
		card:    &p.card.Card,
		chanted: p.chanted,
		play:    p,
	}
	for _, opt := range opts {
		opt(&h)
	}
	return p.m.resolveHit(h)
}

// splash hits every listed player except the actor and the primary target.
func (p *play) splash(victims []*Player, amount int, opts ...hitOption) {
	opts = append(opts, asArea)
	seen := make(map[string]bool, len(victims))
	for _, v := range victims {
		if v == nil || v == p.actor || v == p.target || seen[v.ID] {
			continue
		}
		seen[v.ID] = true
		p.strike(v, amount, opts...)
	}
}

// resolver is the behavior bound to one card id.
type resolver struct {
	// requires are prerequisite flags checked before anything else.
	requires []counters.Requirement
	// check runs extra prerequisites that are not plain flags.
	check   func(p *play) error
	resolve func(p *play)
}

type resolverTable map[catalog.CardID]resolver

// newResolverTable builds the closed card table once per engine.
func newResolverTable() resolverTable {
	t := make(resolverTable)
	registerCommon(t)
	registerGojo(t)
	registerSukuna(t)
	registerMahito(t)
	registerItadori(t)
	registerJogo(t)
	registerYuta(t)
	return t
}

// verify fails when a catalog card has no resolver or a resolver has no card.
func (t resolverTable) verify(cat *catalog.Catalog) error {
	ids := cat.CardIDs()
	known := make(map[catalog.CardID]bool, len(ids))
	var missing []string
	for _, id := range ids {
		known[id] = true
		if _, ok := t[id]; !ok {
			missing = append(missing, string(id))
		}
	}
	for id := range t {
		if !known[id] {
			missing = append(missing, "orphan "+string(id))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("resolver table mismatch: %s", strings.Join(missing, ", "))
	}
	return nil
}

// playCard validates the whole request before touching any state, then pays,
// moves the card to the discard pile and runs its resolver.
func (m *Match) playCard(table resolverTable, req PlayRequest) error {
	if m.finished() {
		return illegal("match %s is finished", m.ID)
	}
	actor, _ := m.player(req.PlayerID)
	if actor == nil {
		return notFound("player %s is not in match %s", req.PlayerID, m.ID)
	}
	if !actor.Alive() {
		return illegal("%s is defeated", actor.Name)
	}
	if m.Current() != actor {
		return illegal("it is not %s's turn", actor.Name)
	}
	idx := actor.handIndex(req.CardInstanceID)
	if idx < 0 {
		return illegal("card %s is not in %s's hand", req.CardInstanceID, actor.Name)
	}
	card := actor.Hand[idx]
	r, ok := table[card.ID]
	if !ok {
		return notFound("card %s has no resolver", card.ID)
	}

	p := &play{m: m, actor: actor, card: card, copies: make(map[string]bool)}
	if unmet, ok := actor.Flags.Satisfies(r.requires...); !ok {
		return illegal("%s: %s", card.Name, unmet.Reason)
	}
	if r.check != nil {
		if err := r.check(p); err != nil {
			return err
		}
	}
	if err := lockout(actor, card.Card); err != nil {
		return err
	}
	if err := m.bindTargets(p, req); err != nil {
		return err
	}
	quote := m.quote(actor, card)
	if !quote.Affordable(actor.Energy, actor.Souls()) {
		return insufficient("%s: %s", card.Name, quote.ShortBy(actor.Energy, actor.Souls()))
	}

	// Everything below mutates.
	actor.Energy -= quote.Energy
	if quote.Souls > 0 {
		actor.Flags.Remove(counters.CounterDistortedSouls, quote.Souls)
	}
	if quote.Free {
		if marker, ok := actor.Effects.Consume(effects.KindFreeStrike); ok {
			m.consumed(actor, marker)
		}
	}
	actor.takeFromHand(card.InstanceID)
	actor.Discard = append(actor.Discard, card)

	evt := m.event(rules.EventCardPlayed, p.target, actor, quote.Energy)
	evt.CardID = string(card.ID)
	evt.Data = targeting.FormatTargets(playerIDs(p.targets))
	if p.target != nil {
		m.record(evt, "%s plays %s on %s", actor.Name, card.Name, p.target.Name)
	} else {
		m.record(evt, "%s plays %s", actor.Name, card.Name)
	}

	if card.Kind == catalog.KindTechnique && actor.Flags.Has(counters.CounterChantArmed) {
		actor.Flags.Clear(counters.CounterChantArmed)
		p.chanted = true
		m.logf("the chant empowers %s", card.Name)
	}

	r.resolve(p)
	if m.checkWinner() {
		return nil
	}
	// A backlash can defeat the actor mid-play; the turn moves on without
	// running their end-of-turn hooks, as with a forfeit.
	if !actor.Alive() {
		m.advance()
	}
	return nil
}

// lockout applies the effects that forbid whole classes of cards.
func lockout(actor *Player, card catalog.Card) error {
	if actor.Effects.Has(effects.KindInformationOverload) &&
		(card.Kind == catalog.KindTechnique || card.Rarity >= catalog.RarityEpic) {
		return illegal("%s is overloaded by Unlimited Void and cannot play %s", actor.Name, card.Name)
	}
	if actor.Effects.Has(effects.KindRikaCooldown) &&
		(card.ID == catalog.CardPureLove || card.ID == catalog.CardRikaManifestation) {
		return illegal("Rika is resting; %s cannot be played", card.Name)
	}
	return nil
}

func (m *Match) bindTargets(p *play, req PlayRequest) error {
	need := p.card.Target
	if need.Type == targeting.TargetTypeNone {
		return nil
	}
	sel := &targeting.TargetSelection{Requirement: need, Targets: req.TargetIDs}
	if req.TargetID != "" {
		sel.Targets = append([]string{req.TargetID}, req.TargetIDs...)
	}
	if len(sel.Targets) == 0 && need.Optional {
		return nil
	}
	if err := targeting.NewTargetValidator(m).ValidateTargetSelection(p.actor.ID, sel); err != nil {
		if errors.Is(err, targeting.ErrTargetNotFound) {
			return notFound("%s: %v", p.card.Name, err)
		}
		return illegal("%s: %v", p.card.Name, err)
	}
	for _, id := range sel.Targets {
		target, _ := m.player(id)
		p.targets = append(p.targets, target)
	}
	if len(p.targets) > 0 {
		p.target = p.targets[0]
	}
	return nil
}

// quote prices card for actor with every reduction currently held.
func (m *Match) quote(actor *Player, card CardInstance) cost.Quote {
	rm := cost.NewReductionManager()
	if pct := actor.Flags.Get(counters.CounterCostReductionPct); pct > 0 {
		rm.AddReduction(&cost.Reduction{ID: "six_eyes", Percent: pct, Rounding: cost.RoundFloor})
	}
	if love, ok := actor.Effects.Find(effects.KindTrueMutualLove); ok {
		rm.AddReduction(&cost.Reduction{
			ID:        "authentic_mutual_love",
			Divisor:   love.Value,
			Rounding:  cost.RoundCeil,
			AppliesTo: func(it cost.Item) bool { return it.Copied && it.Technique },
		})
	}
	if actor.Effects.Has(effects.KindFreeStrike) {
		rm.AddReduction(&cost.Reduction{
			ID:        "spin_around_approach",
			Free:      true,
			AppliesTo: func(it cost.Item) bool { return it.CardID == string(catalog.CardStrike) },
		})
	}
	return rm.Quote(cost.Item{
		CardID:    string(card.ID),
		BaseCost:  card.Cost,
		SoulCost:  card.SoulCost,
		Technique: card.Kind == catalog.KindTechnique,
		Copied:    card.Copied,
	})
}

func playerIDs(players []*Player) []string {
	out := make([]string, 0, len(players))
	for _, p := range players {
		out = append(out, p.ID)
	}
	return out
}
