package game

import (
	"math/rand/v2"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cursedclash/clash-server-go/internal/game/catalog"
	"github.com/cursedclash/clash-server-go/internal/game/effects"
	"github.com/cursedclash/clash-server-go/internal/game/rules"
)

// RosterEntry is one committed seat of a new match.
type RosterEntry struct {
	PlayerID  string
	Name      string
	Character catalog.CharacterID
}

// Engine is the entry point for every match operation. It owns the match
// store and publishes every state change on its event bus after the match
// lock is released.
type Engine struct {
	logger    *zap.Logger
	catalog   *catalog.Catalog
	cfg       Rules
	store     *Store
	bus       *rules.EventBus
	resolvers resolverTable
	replays   *ReplayRecorder

	seeded   bool
	seedBase uint64
	seq      atomic.Uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithRules overrides the global numbers.
func WithRules(r Rules) Option {
	return func(e *Engine) {
		if r.HandSize > 0 {
			e.cfg.HandSize = r.HandSize
		}
		if r.RegenPercent > 0 {
			e.cfg.RegenPercent = r.RegenPercent
		}
	}
}

// WithSeed makes every match draw from a deterministic source. The n-th
// match created uses seed+n.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.seeded = true
		e.seedBase = seed
	}
}

// WithEventBus publishes to an existing bus.
func WithEventBus(bus *rules.EventBus) Option {
	return func(e *Engine) {
		if bus != nil {
			e.bus = bus
		}
	}
}

// WithReplayRecorder records a view after every successful operation.
func WithReplayRecorder(rr *ReplayRecorder) Option {
	return func(e *Engine) {
		e.replays = rr
	}
}

// NewEngine builds an engine over cat. It fails when the card table and the
// catalog disagree.
func NewEngine(logger *zap.Logger, cat *catalog.Catalog, opts ...Option) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cat == nil {
		cat = catalog.New()
	}
	e := &Engine{
		logger:    logger,
		catalog:   cat,
		cfg:       DefaultRules(),
		store:     NewStore(logger.Named("store")),
		bus:       rules.NewEventBus(),
		resolvers: newResolverTable(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.resolvers.verify(cat); err != nil {
		return nil, err
	}
	return e, nil
}

// EventBus returns the bus every match event is published on.
func (e *Engine) EventBus() *rules.EventBus {
	return e.bus
}

// Catalog returns the card and character definitions.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Store returns the match store.
func (e *Engine) Store() *Store {
	return e.store
}

func (e *Engine) nextSeed() uint64 {
	if e.seeded {
		return e.seedBase + e.seq.Add(1)
	}
	return rand.Uint64()
}

// CreateMatch seats the roster in random order, deals opening hands and
// starts the first turn.
func (e *Engine) CreateMatch(roster []RosterEntry, training bool) (*MatchView, error) {
	m, err := e.buildMatch(roster, training)
	if err != nil {
		e.logger.Debug("match rejected", zap.Error(err))
		return nil, err
	}
	if err := e.store.put(m); err != nil {
		return nil, err
	}
	if e.replays != nil {
		e.replays.Begin(m.ID)
	}

	var view *MatchView
	var events []rules.Event
	_ = e.store.with(m.ID, func(m *Match) error {
		events = m.drainEvents()
		view = m.View()
		return nil
	})
	e.publish(view, events)

	e.logger.Info("match created",
		zap.String("match_id", m.ID),
		zap.Int("players", len(roster)),
		zap.Bool("training", training),
	)
	return view, nil
}

func (e *Engine) buildMatch(roster []RosterEntry, training bool) (*Match, error) {
	minPlayers := 2
	if training {
		minPlayers = 1
	}
	if len(roster) < minPlayers {
		return nil, illegal("a match needs at least %d players, got %d", minPlayers, len(roster))
	}

	m := newMatch(uuid.NewString(), e.catalog, e.cfg, e.nextSeed(), training)
	seen := make(map[string]bool, len(roster))
	for _, entry := range roster {
		if entry.PlayerID == "" {
			return nil, illegal("player id is required")
		}
		if seen[entry.PlayerID] {
			return nil, illegal("player %s is seated twice", entry.PlayerID)
		}
		seen[entry.PlayerID] = true

		ch, ok := e.catalog.Character(entry.Character)
		if !ok {
			return nil, notFound("unknown character %q", entry.Character)
		}
		deck, err := e.catalog.DeckFor(ch.ID)
		if err != nil {
			return nil, notFound("%v", err)
		}
		name := entry.Name
		if name == "" {
			name = entry.PlayerID
		}
		p := newPlayer(entry.PlayerID, name, ch)
		for _, card := range deck {
			p.Deck = append(p.Deck, newCardInstance(card))
		}
		m.shuffle(p.Deck)
		m.Seats = append(m.Seats, p)
	}
	m.rng.Shuffle(len(m.Seats), func(i, j int) { m.Seats[i], m.Seats[j] = m.Seats[j], m.Seats[i] })

	m.record(m.event(rules.EventMatchCreated, nil, nil, len(m.Seats)), "match created with %d players", len(m.Seats))
	for _, p := range m.Seats {
		if p.Is(catalog.CharacterGojo) {
			m.applyEffect(p, effects.NewBuilder(effects.KindBlindfold).From(p.ID).Build())
		}
		m.drawToCap(p)
	}
	m.startTurn(m.Current())
	return m, nil
}

// mutate runs fn under the match lock. Events raised by fn are published
// once the lock is released, together with a fresh view.
func (e *Engine) mutate(matchID, action string, fn func(*Match) error) (*MatchView, error) {
	var view *MatchView
	var events []rules.Event
	err := e.store.with(matchID, func(m *Match) error {
		if err := fn(m); err != nil {
			m.drainEvents()
			return err
		}
		events = m.drainEvents()
		view = m.View()
		return nil
	})
	if err != nil {
		e.logger.Debug("action rejected",
			zap.String("match_id", matchID),
			zap.String("action", action),
			zap.Error(err),
		)
		return nil, err
	}

	e.publish(view, events)
	e.logger.Debug("action applied",
		zap.String("match_id", matchID),
		zap.String("action", action),
		zap.Int("events", len(events)),
	)
	if view.Lifecycle == LifecycleFinished.String() && finishedNow(events) {
		e.logger.Info("match finished",
			zap.String("match_id", matchID),
			zap.String("winner_id", view.WinnerID),
			zap.Int("round", view.Round),
		)
	}
	return view, nil
}

func finishedNow(events []rules.Event) bool {
	for _, evt := range events {
		if evt.Type == rules.EventMatchFinished {
			return true
		}
	}
	return false
}

func (e *Engine) publish(view *MatchView, events []rules.Event) {
	e.bus.PublishBatch(events)
	if e.replays != nil {
		e.replays.Record(view)
	}
}

// PlayCard plays a card from the player's hand. targetID names the opponent
// of single-target cards; targetIDs the picks of "up to n" cards.
func (e *Engine) PlayCard(matchID, playerID, cardInstanceID, targetID string, targetIDs []string) (*MatchView, error) {
	req := PlayRequest{PlayerID: playerID, CardInstanceID: cardInstanceID, TargetID: targetID, TargetIDs: targetIDs}
	return e.mutate(matchID, "play_card", func(m *Match) error {
		return m.playCard(e.resolvers, req)
	})
}

// EndTurn ends the player's turn and hands it to the next living seat.
func (e *Engine) EndTurn(matchID, playerID string) (*MatchView, error) {
	return e.mutate(matchID, "end_turn", func(m *Match) error {
		return m.endTurn(playerID)
	})
}

// DiscardAndRedraw swaps one or two cards, once per round.
func (e *Engine) DiscardAndRedraw(matchID, playerID string, cardInstanceIDs []string) (*MatchView, error) {
	return e.mutate(matchID, "discard_cards", func(m *Match) error {
		return m.discardAndRedraw(playerID, cardInstanceIDs)
	})
}

// AddTrainingDummy seats a new dummy at the end of a training match.
func (e *Engine) AddTrainingDummy(matchID string) (*MatchView, error) {
	return e.mutate(matchID, "add_dummy", func(m *Match) error {
		_, err := m.addDummy(uuid.NewString())
		return err
	})
}

// RemoveTrainingDummy removes a dummy from a training match.
func (e *Engine) RemoveTrainingDummy(matchID, dummyID string) (*MatchView, error) {
	return e.mutate(matchID, "remove_dummy", func(m *Match) error {
		return m.removeDummy(dummyID)
	})
}

// Forfeit defeats the player immediately.
func (e *Engine) Forfeit(matchID, playerID string) (*MatchView, error) {
	return e.mutate(matchID, "forfeit", func(m *Match) error {
		return m.forfeit(playerID)
	})
}

// Match returns the current view of a match.
func (e *Engine) Match(matchID string) (*MatchView, error) {
	var view *MatchView
	err := e.store.with(matchID, func(m *Match) error {
		view = m.View()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// DeleteMatch drops a match and its replay.
func (e *Engine) DeleteMatch(matchID string) error {
	if !e.store.Delete(matchID) {
		return notFound("match %s not found", matchID)
	}
	if e.replays != nil {
		e.replays.Forget(matchID)
	}
	e.logger.Info("match deleted", zap.String("match_id", matchID))
	return nil
}
