package game

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cursedclash/clash-server-go/internal/game/catalog"
	"github.com/cursedclash/clash-server-go/internal/game/counters"
	"github.com/cursedclash/clash-server-go/internal/game/effects"
	"github.com/cursedclash/clash-server-go/internal/game/rules"
)

// testMatch seats the characters in the given order with full stats, empty
// hands and unshuffled decks. p1 holds the turn.
func testMatch(t *testing.T, training bool, chars ...catalog.CharacterID) *Match {
	t.Helper()
	cat := catalog.New()
	m := newMatch("test-match", cat, DefaultRules(), 7, training)
	for i, id := range chars {
		ch, ok := cat.Character(id)
		require.True(t, ok, "character %s", id)
		deck, err := cat.DeckFor(id)
		require.NoError(t, err)
		p := newPlayer(fmt.Sprintf("p%d", i+1), ch.Name, ch)
		for _, card := range deck {
			p.Deck = append(p.Deck, newCardInstance(card))
		}
		m.Seats = append(m.Seats, p)
	}
	return m
}

// give puts a fresh copy of a catalog card into the player's hand.
func give(t *testing.T, m *Match, p *Player, id catalog.CardID) CardInstance {
	t.Helper()
	card, ok := m.catalog.Card(id)
	require.True(t, ok, "card %s", id)
	ci := newCardInstance(card)
	p.Hand = append(p.Hand, ci)
	return ci
}

func playOn(m *Match, p *Player, ci CardInstance, targetIDs ...string) error {
	req := PlayRequest{PlayerID: p.ID, CardInstanceID: ci.InstanceID}
	if len(targetIDs) == 1 {
		req.TargetID = targetIDs[0]
	} else {
		req.TargetIDs = targetIDs
	}
	return m.playCard(newResolverTable(), req)
}

func countEvents(events []rules.Event, typ rules.EventType) int {
	n := 0
	for _, evt := range events {
		if evt.Type == typ {
			n++
		}
	}
	return n
}

func TestFreeStrikeDealsExactDamage(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterGojo, catalog.CharacterItadori)
	attacker, target := m.Seats[0], m.Seats[1]
	strike := give(t, m, attacker, catalog.CardStrike)
	logBefore := len(m.Log)

	require.NoError(t, playOn(m, attacker, strike, target.ID))

	assert.Equal(t, target.MaxHP-300, target.HP)
	assert.Equal(t, attacker.MaxEnergy, attacker.Energy)

	events := m.drainEvents()
	assert.Equal(t, 1, countEvents(events, rules.EventDamageDealt))
	damageLines := 0
	for _, line := range m.Log[logBefore:] {
		if strings.Contains(line, "takes 300 damage") {
			damageLines++
		}
	}
	assert.Equal(t, 1, damageLines)
}

func TestIgnoreBlockHitLeavesBlock(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterGojo, catalog.CharacterItadori)
	attacker, target := m.Seats[0], m.Seats[1]
	target.Block = 300

	res := m.resolveHit(hit{source: attacker, target: target, amount: 1200, ignoresBlock: true})

	assert.Equal(t, 1200, res.dealt)
	assert.Equal(t, target.MaxHP-1200, target.HP)
	assert.Equal(t, 300, target.Block)
	assert.Equal(t, 1, attacker.Flags.Get(counters.CounterIgnoredBlockHits))
}

func TestHollowPurpleIgnoresBlock(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterGojo, catalog.CharacterItadori)
	gojo, target := m.Seats[0], m.Seats[1]
	target.Block = 300
	gojo.Flags.Mark(counters.CounterBlueUsed)
	gojo.Flags.Mark(counters.CounterRedUsed)
	purple := give(t, m, gojo, catalog.CardPurple)

	require.NoError(t, playOn(m, gojo, purple, target.ID))

	assert.Equal(t, target.MaxHP-4000, target.HP)
	assert.Equal(t, 300, target.Block)
	assert.Equal(t, gojo.MaxEnergy-30000, gojo.Energy)
}

func TestHollowPurpleRequiresBlueAndRed(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterGojo, catalog.CharacterItadori)
	gojo, target := m.Seats[0], m.Seats[1]
	gojo.Flags.Mark(counters.CounterBlueUsed)
	purple := give(t, m, gojo, catalog.CardPurple)

	err := playOn(m, gojo, purple, target.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIllegalAction))
	assert.Contains(t, err.Error(), "Red")
	assert.Equal(t, gojo.MaxEnergy, gojo.Energy)
	assert.Len(t, gojo.Hand, 1)
	assert.Equal(t, target.MaxHP, target.HP)
}

func TestInsufficientEnergyChangesNothing(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterSukuna, catalog.CharacterItadori)
	sukuna := m.Seats[0]
	sukuna.Energy = 9999
	rct := give(t, m, sukuna, catalog.CardReverseCursedTechnique)
	logBefore := len(m.Log)

	err := playOn(m, sukuna, rct)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientResource))
	assert.Equal(t, 9999, sukuna.Energy)
	assert.Len(t, sukuna.Hand, 1)
	assert.Empty(t, sukuna.Discard)
	assert.Len(t, m.Log, logBefore)
	assert.Empty(t, m.drainEvents())
}

func TestPlayValidation(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterGojo, catalog.CharacterItadori, catalog.CharacterJogo)
	gojo, itadori := m.Seats[0], m.Seats[1]
	strike := give(t, m, gojo, catalog.CardStrike)
	offTurn := give(t, m, itadori, catalog.CardStrike)

	tests := []struct {
		name string
		err  error
		play func() error
	}{
		{"unknown player", ErrNotFound, func() error {
			return m.playCard(newResolverTable(), PlayRequest{PlayerID: "ghost", CardInstanceID: strike.InstanceID})
		}},
		{"not your turn", ErrIllegalAction, func() error { return playOn(m, itadori, offTurn, gojo.ID) }},
		{"card not in hand", ErrIllegalAction, func() error {
			return m.playCard(newResolverTable(), PlayRequest{PlayerID: gojo.ID, CardInstanceID: "missing"})
		}},
		{"unknown target", ErrNotFound, func() error { return playOn(m, gojo, strike, "ghost") }},
		{"self target", ErrIllegalAction, func() error { return playOn(m, gojo, strike, gojo.ID) }},
		{"missing target", ErrIllegalAction, func() error { return playOn(m, gojo, strike) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.play()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.err), "got %v", err)
		})
	}
	assert.Len(t, gojo.Hand, 1)
}

func TestDefeatedTargetRejected(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterGojo, catalog.CharacterItadori, catalog.CharacterJogo)
	gojo, itadori := m.Seats[0], m.Seats[1]
	m.defeat(itadori, "test")
	strike := give(t, m, gojo, catalog.CardStrike)

	err := playOn(m, gojo, strike, itadori.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIllegalAction))
}

func TestDomainReplacesActiveDomain(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterSukuna, catalog.CharacterJogo, catalog.CharacterGojo)
	sukuna, jogo, gojo := m.Seats[0], m.Seats[1], m.Seats[2]

	shrine := give(t, m, sukuna, catalog.CardMalevolentShrine)
	require.NoError(t, playOn(m, sukuna, shrine))
	require.NotNil(t, m.Domain)
	assert.Equal(t, catalog.CardMalevolentShrine, m.Domain.CardID)
	assert.True(t, jogo.Effects.Has(effects.KindMalevolentShrine))
	assert.True(t, gojo.Effects.Has(effects.KindMalevolentShrine))

	m.turn.SetSeat(1)
	coffin := give(t, m, jogo, catalog.CardCoffinOfTheIronMountain)
	require.NoError(t, playOn(m, jogo, coffin))

	for _, p := range m.Seats {
		assert.False(t, p.Effects.Has(effects.KindMalevolentShrine), "%s still holds the shrine", p.Name)
	}
	assert.True(t, sukuna.Effects.Has(effects.KindIronMountainHeat))
	assert.True(t, gojo.Effects.Has(effects.KindIronMountainHeat))
	assert.False(t, jogo.Effects.Has(effects.KindIronMountainHeat))
	require.NotNil(t, m.Domain)
	assert.Equal(t, catalog.CardCoffinOfTheIronMountain, m.Domain.CardID)
	assert.Equal(t, jogo.ID, m.Domain.OwnerID)

	events := m.drainEvents()
	assert.Equal(t, 2, countEvents(events, rules.EventDomainActivated))
	assert.Equal(t, 1, countEvents(events, rules.EventDomainCleared))
}

func TestSimpleDomainStopsSureHit(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterSukuna, catalog.CharacterGojo)
	sukuna, gojo := m.Seats[0], m.Seats[1]
	m.applyEffect(gojo, effects.NewBuilder(effects.KindSimpleDomain).From(gojo.ID).Build())

	res := m.resolveHit(hit{source: sukuna, target: gojo, amount: 1500, ignoresBlock: true, sureHit: true, domain: true})

	assert.True(t, res.negated)
	assert.Equal(t, gojo.MaxHP, gojo.HP)
}

func TestManjiKickCancelsNextAttack(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterItadori, catalog.CharacterGojo)
	itadori, gojo := m.Seats[0], m.Seats[1]

	kick := give(t, m, itadori, catalog.CardManjiKick)
	require.NoError(t, playOn(m, itadori, kick, gojo.ID))
	assert.Equal(t, gojo.MaxHP-600, gojo.HP)
	_, guarded := itadori.Effects.FindFor(effects.KindManjiGuard, gojo.ID)
	require.True(t, guarded)
	m.drainEvents()

	m.turn.SetSeat(1)
	strike := give(t, m, gojo, catalog.CardStrike)
	require.NoError(t, playOn(m, gojo, strike, itadori.ID))

	assert.Equal(t, itadori.MaxHP, itadori.HP)
	assert.False(t, itadori.Effects.Has(effects.KindManjiGuard))
	events := m.drainEvents()
	assert.Equal(t, 1, countEvents(events, rules.EventDamageNegated))
	assert.Equal(t, 0, countEvents(events, rules.EventDamageDealt))
}

func TestInfinityStopsOnlySingleTargetHits(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterJogo, catalog.CharacterGojo)
	jogo, gojo := m.Seats[0], m.Seats[1]
	m.applyEffect(gojo, effects.NewBuilder(effects.KindInfinity).From(gojo.ID).Build())

	strike := give(t, m, jogo, catalog.CardStrike)
	require.NoError(t, playOn(m, jogo, strike, gojo.ID))
	assert.Equal(t, gojo.MaxHP, gojo.HP)

	volcano := give(t, m, jogo, catalog.CardVolcanoEruption)
	require.NoError(t, playOn(m, jogo, volcano))
	assert.Equal(t, gojo.MaxHP-600, gojo.HP)
	assert.True(t, gojo.Effects.Has(effects.KindBurn))
}

func TestSukunaAdjacencyReduction(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterSukuna, catalog.CharacterGojo)
	sukuna, gojo := m.Seats[0], m.Seats[1]
	strike := give(t, m, sukuna, catalog.CardStrike)

	require.NoError(t, playOn(m, sukuna, strike, gojo.ID))
	assert.Equal(t, gojo.MaxHP-255, gojo.HP)
}

func TestChantEmpowersTechnique(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterItadori, catalog.CharacterGojo)
	itadori, gojo := m.Seats[0], m.Seats[1]

	chant := give(t, m, itadori, catalog.CardChant)
	require.NoError(t, playOn(m, itadori, chant))
	require.True(t, itadori.Flags.Has(counters.CounterChantArmed))

	fist := give(t, m, itadori, catalog.CardDivergentFist)
	require.NoError(t, playOn(m, itadori, fist, gojo.ID))

	assert.Equal(t, gojo.MaxHP-600, gojo.HP)
	assert.False(t, itadori.Flags.Has(counters.CounterChantArmed))
	_, residual := gojo.Effects.FindFor(effects.KindDivergentResidual, itadori.ID)
	assert.True(t, residual)
}

func TestBurnRefreshesDuration(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterJogo, catalog.CharacterGojo)
	jogo, gojo := m.Seats[0], m.Seats[1]
	spec, _ := effects.SpecFor(effects.KindBurn)

	ember := give(t, m, jogo, catalog.CardEmberInsects)
	require.NoError(t, playOn(m, jogo, ember, gojo.ID))
	burn, ok := gojo.Effects.Find(effects.KindBurn)
	require.True(t, ok)
	assert.Equal(t, spec.Duration, burn.Duration)

	gojo.Effects.Tick(effects.TickStartOfTurn, nil)
	burn, _ = gojo.Effects.Find(effects.KindBurn)
	require.Equal(t, spec.Duration-1, burn.Duration)

	again := give(t, m, jogo, catalog.CardEmberInsects)
	require.NoError(t, playOn(m, jogo, again, gojo.ID))
	burns := 0
	for _, e := range gojo.Effects.Items {
		if e.Kind == effects.KindBurn {
			burns++
			assert.Equal(t, spec.Duration, e.Duration)
		}
	}
	assert.Equal(t, 1, burns)
}

func TestYutaCopiesTechniqueOnce(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterJogo, catalog.CharacterYuta)
	jogo, yuta := m.Seats[0], m.Seats[1]

	meteor := give(t, m, jogo, catalog.CardMaximumMeteor)
	require.NoError(t, playOn(m, jogo, meteor, yuta.ID))

	var copies []CardInstance
	for _, c := range yuta.Discard {
		if c.Copied {
			copies = append(copies, c)
		}
	}
	require.Len(t, copies, 1)
	assert.Equal(t, catalog.CardMaximumMeteor, copies[0].ID)
	assert.Equal(t, 25000, copies[0].Cost)
}

func TestLastStandKeepsPlayerAlive(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterGojo, catalog.CharacterItadori)
	gojo, itadori := m.Seats[0], m.Seats[1]
	m.applyEffect(itadori, effects.NewBuilder(effects.KindLastStand).From(itadori.ID).Build())
	itadori.HP = 100

	m.resolveHit(hit{source: gojo, target: itadori, amount: 1000, ignoresBlock: true})
	assert.True(t, itadori.Alive())
	assert.Equal(t, -900, itadori.HP)

	res := m.resolveHit(hit{source: gojo, target: itadori, amount: 3000, ignoresBlock: true})
	assert.True(t, res.killed)
	assert.False(t, itadori.Alive())
}

func TestKillingBlowFinishesMatch(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterGojo, catalog.CharacterMahito)
	gojo, mahito := m.Seats[0], m.Seats[1]
	mahito.HP = 200
	strike := give(t, m, gojo, catalog.CardStrike)

	require.NoError(t, playOn(m, gojo, strike, mahito.ID))

	assert.Equal(t, StatusDefeated, mahito.Status)
	assert.Equal(t, LifecycleFinished, m.Lifecycle)
	assert.Equal(t, gojo.ID, m.WinnerID)

	late := give(t, m, gojo, catalog.CardStrike)
	err := playOn(m, gojo, late, mahito.ID)
	assert.True(t, errors.Is(err, ErrIllegalAction))
}

func TestBacklashDefeatPassesTheTurn(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterGojo, catalog.CharacterMahito, catalog.CharacterJogo)
	gojo, mahito, jogo := m.Seats[0], m.Seats[1], m.Seats[2]
	gojo.HP = 300
	mahito.Block = 300
	m.applyEffect(mahito, effects.NewBuilder(effects.KindSoulIsomer).From(mahito.ID).Build())
	strike := give(t, m, gojo, catalog.CardStrike)

	require.NoError(t, playOn(m, gojo, strike, mahito.ID))

	assert.False(t, gojo.Alive())
	assert.Equal(t, LifecycleActive, m.Lifecycle)
	assert.Same(t, mahito, m.Current())
	assert.True(t, errors.Is(m.endTurn(gojo.ID), ErrIllegalAction))

	require.NoError(t, m.endTurn(mahito.ID))
	assert.Same(t, jogo, m.Current())
	require.NoError(t, m.endTurn(jogo.ID))
	assert.Same(t, mahito, m.Current())
	assert.Equal(t, 2, m.Round())
}

func TestRoundStartResetsBlockAndRegenerates(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterGojo, catalog.CharacterItadori)
	gojo, itadori := m.Seats[0], m.Seats[1]
	gojo.Block = 500
	gojo.Energy = 0

	require.NoError(t, m.endTurn(gojo.ID))
	assert.Equal(t, 1, m.Round())
	assert.Same(t, itadori, m.Current())
	assert.Equal(t, 500, gojo.Block)

	require.NoError(t, m.endTurn(itadori.ID))
	assert.Equal(t, 2, m.Round())
	assert.Same(t, gojo, m.Current())
	assert.Equal(t, 0, gojo.Block)
	assert.Equal(t, gojo.MaxEnergy*20/100, gojo.Energy)
	assert.Len(t, gojo.Hand, gojo.Character.HandSize)

	events := m.drainEvents()
	assert.Equal(t, 1, countEvents(events, rules.EventRoundStarted))
}

func TestEndTurnValidation(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterGojo, catalog.CharacterItadori)
	err := m.endTurn(m.Seats[1].ID)
	assert.True(t, errors.Is(err, ErrIllegalAction))
	err = m.endTurn("ghost")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTurnSkipsDefeatedSeats(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterGojo, catalog.CharacterItadori, catalog.CharacterJogo)
	gojo, itadori, jogo := m.Seats[0], m.Seats[1], m.Seats[2]
	m.defeat(itadori, "test")

	require.NoError(t, m.endTurn(gojo.ID))
	assert.Same(t, jogo, m.Current())
	assert.Equal(t, 1, m.Round())

	require.NoError(t, m.endTurn(jogo.ID))
	assert.Same(t, gojo, m.Current())
	assert.Equal(t, 2, m.Round())
}

func TestBurnTicksAtStartOfTurn(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterJogo, catalog.CharacterGojo)
	jogo, gojo := m.Seats[0], m.Seats[1]
	gojo.Block = 1000
	m.applyEffect(gojo, effects.NewBuilder(effects.KindBurn).From(jogo.ID).Build())

	require.NoError(t, m.endTurn(jogo.ID))
	assert.Equal(t, gojo.MaxHP-100, gojo.HP)
	assert.Equal(t, 1000, gojo.Block)
}

func TestDiscardAndRedrawOncePerRound(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterGojo, catalog.CharacterItadori)
	gojo := m.Seats[0]
	a := give(t, m, gojo, catalog.CardStrike)
	b := give(t, m, gojo, catalog.CardDefense)
	c := give(t, m, gojo, catalog.CardDefense)
	deckBefore := len(gojo.Deck)

	err := m.discardAndRedraw(gojo.ID, []string{a.InstanceID, a.InstanceID})
	assert.True(t, errors.Is(err, ErrIllegalAction))
	err = m.discardAndRedraw(gojo.ID, []string{a.InstanceID, b.InstanceID, c.InstanceID})
	assert.True(t, errors.Is(err, ErrIllegalAction))

	require.NoError(t, m.discardAndRedraw(gojo.ID, []string{a.InstanceID, b.InstanceID}))
	assert.Len(t, gojo.Hand, 3)
	assert.Len(t, gojo.Discard, 2)
	assert.Equal(t, deckBefore-2, len(gojo.Deck))
	assert.Equal(t, 1, gojo.LastDiscardRound)

	err = m.discardAndRedraw(gojo.ID, []string{c.InstanceID})
	assert.True(t, errors.Is(err, ErrIllegalAction))
}

func TestDrawReshufflesDiscard(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterGojo, catalog.CharacterItadori)
	gojo := m.Seats[0]
	gojo.Discard = append(gojo.Discard, gojo.Deck...)
	gojo.Deck = nil

	drawn := m.draw(gojo, 2)
	assert.Equal(t, 2, drawn)
	assert.Len(t, gojo.Hand, 2)
	assert.Empty(t, gojo.Discard)
}

func TestDummiesPassTheirTurns(t *testing.T) {
	m := testMatch(t, true, catalog.CharacterGojo)
	gojo := m.Seats[0]
	_, err := m.addDummy("d1")
	require.NoError(t, err)
	_, err = m.addDummy("d2")
	require.NoError(t, err)

	require.NoError(t, m.endTurn(gojo.ID))
	assert.Same(t, gojo, m.Current())
	assert.Equal(t, 2, m.Round())
	assert.Equal(t, LifecycleActive, m.Lifecycle)
	for _, p := range m.Seats[1:] {
		assert.True(t, p.Dummy)
		assert.Equal(t, 1, p.Flags.Get(counters.CounterTurnsTaken))
	}
}

func TestTrainingDummyRules(t *testing.T) {
	m := testMatch(t, true, catalog.CharacterGojo)
	gojo := m.Seats[0]
	d, err := m.addDummy("d1")
	require.NoError(t, err)
	assert.Equal(t, "Training Dummy 1", d.Name)

	assert.True(t, errors.Is(m.forfeit(d.ID), ErrIllegalAction))
	assert.True(t, errors.Is(m.removeDummy(gojo.ID), ErrIllegalAction))
	assert.True(t, errors.Is(m.removeDummy("ghost"), ErrNotFound))

	d.HP = 100
	strike := give(t, m, gojo, catalog.CardStrike)
	require.NoError(t, playOn(m, gojo, strike, d.ID))
	assert.False(t, d.Alive())
	assert.Equal(t, LifecycleActive, m.Lifecycle)

	require.NoError(t, m.removeDummy(d.ID))
	assert.Len(t, m.Seats, 1)

	versus := testMatch(t, false, catalog.CharacterGojo, catalog.CharacterItadori)
	_, err = versus.addDummy("d1")
	assert.True(t, errors.Is(err, ErrIllegalAction))
}

func TestRemoveDummyBeforeCurrentSeat(t *testing.T) {
	m := testMatch(t, true, catalog.CharacterGojo)
	_, err := m.addDummy("d1")
	require.NoError(t, err)
	m.Seats = []*Player{m.Seats[1], m.Seats[0]}
	m.turn.SetSeat(1)

	require.NoError(t, m.removeDummy("d1"))
	assert.Equal(t, "p1", m.Current().ID)
}

func TestForfeitPassesTheTurn(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterGojo, catalog.CharacterItadori, catalog.CharacterJogo)
	gojo, itadori := m.Seats[0], m.Seats[1]

	require.NoError(t, m.forfeit(gojo.ID))
	assert.Equal(t, StatusDefeated, gojo.Status)
	assert.Same(t, itadori, m.Current())
	assert.Equal(t, LifecycleActive, m.Lifecycle)

	require.NoError(t, m.forfeit(itadori.ID))
	assert.Equal(t, LifecycleFinished, m.Lifecycle)
	assert.Equal(t, "p3", m.WinnerID)

	assert.True(t, errors.Is(m.forfeit("p3"), ErrIllegalAction))
}

func TestRikaCooldownLocksOutPureLove(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterYuta, catalog.CharacterGojo)
	yuta, gojo := m.Seats[0], m.Seats[1]

	love := give(t, m, yuta, catalog.CardPureLove)
	require.NoError(t, playOn(m, yuta, love, gojo.ID))
	assert.Equal(t, gojo.MaxHP-2500, gojo.HP)
	require.True(t, yuta.Effects.Has(effects.KindRikaCooldown))

	again := give(t, m, yuta, catalog.CardPureLove)
	err := playOn(m, yuta, again, gojo.ID)
	assert.True(t, errors.Is(err, ErrIllegalAction))
}

func TestUnlimitedVoidLocksOutTechniques(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterGojo, catalog.CharacterJogo)
	gojo, jogo := m.Seats[0], m.Seats[1]

	void := give(t, m, gojo, catalog.CardUnlimitedVoid)
	require.NoError(t, playOn(m, gojo, void))
	require.True(t, jogo.Effects.Has(effects.KindInformationOverload))

	m.turn.SetSeat(1)
	ember := give(t, m, jogo, catalog.CardEmberInsects)
	err := playOn(m, jogo, ember, gojo.ID)
	assert.True(t, errors.Is(err, ErrIllegalAction))

	strike := give(t, m, jogo, catalog.CardStrike)
	assert.NoError(t, playOn(m, jogo, strike, gojo.ID))
}

func TestSpinAroundMakesStrikeFree(t *testing.T) {
	m := testMatch(t, false, catalog.CharacterItadori, catalog.CharacterGojo)
	itadori, gojo := m.Seats[0], m.Seats[1]

	spin := give(t, m, itadori, catalog.CardSpinAroundApproach)
	require.NoError(t, playOn(m, itadori, spin))
	require.True(t, itadori.Effects.Has(effects.KindFreeStrike))

	var strike CardInstance
	for _, c := range itadori.Hand {
		if c.ID == catalog.CardStrike {
			strike = c
		}
	}
	require.NotEmpty(t, strike.InstanceID)
	energy := itadori.Energy

	require.NoError(t, playOn(m, itadori, strike, gojo.ID))
	assert.False(t, itadori.Effects.Has(effects.KindFreeStrike))
	assert.Equal(t, gojo.MaxHP-450, gojo.HP)
	assert.GreaterOrEqual(t, itadori.Energy, energy)
}

func TestResolverTableCoversCatalog(t *testing.T) {
	table := newResolverTable()
	require.NoError(t, table.verify(catalog.New()))

	delete(table, catalog.CardStrike)
	err := table.verify(catalog.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), string(catalog.CardStrike))
}
