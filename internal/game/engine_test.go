package game_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cursedclash/clash-server-go/internal/game"
	"github.com/cursedclash/clash-server-go/internal/game/catalog"
	"github.com/cursedclash/clash-server-go/internal/game/rules"
)

func newEngine(t *testing.T, opts ...game.Option) *game.Engine {
	t.Helper()
	opts = append([]game.Option{game.WithSeed(42)}, opts...)
	engine, err := game.NewEngine(zaptest.NewLogger(t), catalog.New(), opts...)
	require.NoError(t, err)
	return engine
}

func duel() []game.RosterEntry {
	return []game.RosterEntry{
		{PlayerID: "alice", Name: "Alice", Character: catalog.CharacterGojo},
		{PlayerID: "bob", Name: "Bob", Character: catalog.CharacterSukuna},
	}
}

func TestCreateMatchDealsOpeningHands(t *testing.T) {
	engine := newEngine(t)

	view, err := engine.CreateMatch(duel(), false)
	require.NoError(t, err)

	assert.Equal(t, "ACTIVE", view.Lifecycle)
	assert.Equal(t, 1, view.Round)
	require.Len(t, view.Players, 2)
	assert.Contains(t, []string{"alice", "bob"}, view.CurrentPlayerID)

	alice, ok := view.Player("alice")
	require.True(t, ok)
	assert.Equal(t, 5500, alice.HP)
	assert.Equal(t, 75000, alice.Energy)
	assert.Len(t, alice.Hand, 6)
	assert.Equal(t, 15-6, alice.DeckSize)
	require.NotEmpty(t, alice.Effects)
	assert.Equal(t, "Blindfold", alice.Effects[0].Name)

	bob, ok := view.Player("bob")
	require.True(t, ok)
	assert.Len(t, bob.Hand, 5)
	for _, c := range bob.Hand {
		if c.CardID == string(catalog.CardSimpleDomain) {
			assert.Equal(t, "Hollow Wicker Basket", c.Name)
		}
	}

	seen := make(map[string]bool)
	for _, p := range view.Players {
		for _, c := range p.Hand {
			assert.False(t, seen[c.InstanceID], "instance id %s reused", c.InstanceID)
			seen[c.InstanceID] = true
		}
	}
}

// cycleToStrike discards and passes until the current player holds a Strike.
func cycleToStrike(t *testing.T, engine *game.Engine, view *game.MatchView) (*game.MatchView, string) {
	t.Helper()
	for i := 0; i < 40; i++ {
		actor, _ := view.Player(view.CurrentPlayerID)
		for _, c := range actor.Hand {
			if c.CardID == string(catalog.CardStrike) {
				return view, c.InstanceID
			}
		}
		var err error
		if actor.LastDiscardRound != view.Round {
			view, err = engine.DiscardAndRedraw(view.ID, actor.ID, []string{actor.Hand[0].InstanceID, actor.Hand[1].InstanceID})
			require.NoError(t, err)
			continue
		}
		view, err = engine.EndTurn(view.ID, actor.ID)
		require.NoError(t, err)
	}
	t.Fatalf("no Strike reached a hand")
	return nil, ""
}

func TestCreateMatchValidation(t *testing.T) {
	engine := newEngine(t)

	tests := []struct {
		name     string
		roster   []game.RosterEntry
		training bool
		err      error
	}{
		{"single player", duel()[:1], false, game.ErrIllegalAction},
		{"empty training", nil, true, game.ErrIllegalAction},
		{"duplicate player", []game.RosterEntry{
			{PlayerID: "alice", Character: catalog.CharacterGojo},
			{PlayerID: "alice", Character: catalog.CharacterJogo},
		}, false, game.ErrIllegalAction},
		{"missing id", []game.RosterEntry{
			{PlayerID: "alice", Character: catalog.CharacterGojo},
			{Character: catalog.CharacterJogo},
		}, false, game.ErrIllegalAction},
		{"unknown character", []game.RosterEntry{
			{PlayerID: "alice", Character: catalog.CharacterGojo},
			{PlayerID: "bob", Character: "nobara"},
		}, false, game.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.CreateMatch(tt.roster, tt.training)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.err), "got %v", err)
		})
	}
	assert.Equal(t, 0, engine.Store().Len())

	view, err := engine.CreateMatch(duel()[:1], true)
	require.NoError(t, err)
	assert.True(t, view.Training)
}

func TestEngineEndTurnRotates(t *testing.T) {
	engine := newEngine(t)
	view, err := engine.CreateMatch(duel(), false)
	require.NoError(t, err)

	first := view.CurrentPlayerID
	view, err = engine.EndTurn(view.ID, first)
	require.NoError(t, err)
	second := view.CurrentPlayerID
	assert.NotEqual(t, first, second)
	assert.Equal(t, 1, view.Round)

	_, err = engine.EndTurn(view.ID, first)
	assert.True(t, errors.Is(err, game.ErrIllegalAction))

	view, err = engine.EndTurn(view.ID, second)
	require.NoError(t, err)
	assert.Equal(t, first, view.CurrentPlayerID)
	assert.Equal(t, 2, view.Round)
	assert.Equal(t, 3, view.TurnNumber)
}

func TestEnginePlayCardAndEvents(t *testing.T) {
	bus := rules.NewEventBus()
	var mu sync.Mutex
	var damage []rules.Event
	bus.SubscribeTyped(rules.EventDamageDealt, func(evt rules.Event) {
		mu.Lock()
		defer mu.Unlock()
		damage = append(damage, evt)
	})
	engine := newEngine(t, game.WithEventBus(bus))

	view, err := engine.CreateMatch(duel(), false)
	require.NoError(t, err)
	view, strike := cycleToStrike(t, engine, view)
	actor, _ := view.Player(view.CurrentPlayerID)
	var target game.PlayerView
	for _, p := range view.Players {
		if p.ID != actor.ID {
			target = p
		}
	}

	after, err := engine.PlayCard(view.ID, actor.ID, strike, target.ID, nil)
	require.NoError(t, err)
	hurt, _ := after.Player(target.ID)
	assert.Less(t, hurt.HP, target.HP)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, damage, 1)
	assert.Equal(t, view.ID, damage[0].MatchID)
	assert.Equal(t, target.ID, damage[0].TargetID)
	assert.Equal(t, string(catalog.CardStrike), damage[0].CardID)
	assert.Equal(t, target.HP-hurt.HP, damage[0].Amount)

	stats, _ := after.Player(actor.ID)
	assert.Equal(t, 1, stats.Stats.CardsPlayed)
	assert.Equal(t, damage[0].Amount, stats.Stats.DamageDealt)
}

func TestEngineUnknownMatch(t *testing.T) {
	engine := newEngine(t)

	_, err := engine.Match("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, game.ErrNotFound))
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = engine.EndTurn("missing", "alice")
	assert.True(t, errors.Is(err, game.ErrNotFound))
	assert.True(t, errors.Is(engine.DeleteMatch("missing"), game.ErrNotFound))
}

func TestEngineForfeitEndsDuel(t *testing.T) {
	engine := newEngine(t)
	view, err := engine.CreateMatch(duel(), false)
	require.NoError(t, err)

	view, err = engine.Forfeit(view.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, "FINISHED", view.Lifecycle)
	assert.Equal(t, "bob", view.WinnerID)
	assert.Empty(t, view.CurrentPlayerID)

	_, err = engine.EndTurn(view.ID, "bob")
	assert.True(t, errors.Is(err, game.ErrIllegalAction))
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestEngineTrainingDummies(t *testing.T) {
	engine := newEngine(t)
	view, err := engine.CreateMatch([]game.RosterEntry{{PlayerID: "alice", Character: catalog.CharacterItadori}}, true)
	require.NoError(t, err)

	view, err = engine.AddTrainingDummy(view.ID)
	require.NoError(t, err)
	require.Len(t, view.Players, 2)
	dummy := view.Players[1]
	assert.True(t, dummy.Dummy)
	assert.Equal(t, catalog.DefaultDummyHP, dummy.HP)

	view, err = engine.EndTurn(view.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", view.CurrentPlayerID)
	assert.Equal(t, 2, view.Round)

	view, err = engine.RemoveTrainingDummy(view.ID, dummy.ID)
	require.NoError(t, err)
	assert.Len(t, view.Players, 1)

	duelView, err := engine.CreateMatch(duel(), false)
	require.NoError(t, err)
	_, err = engine.AddTrainingDummy(duelView.ID)
	assert.True(t, errors.Is(err, game.ErrIllegalAction))
}

func TestEngineDiscardAndRedraw(t *testing.T) {
	engine := newEngine(t)
	view, err := engine.CreateMatch(duel(), false)
	require.NoError(t, err)
	actor, _ := view.Player(view.CurrentPlayerID)
	pick := []string{actor.Hand[0].InstanceID, actor.Hand[1].InstanceID}

	after, err := engine.DiscardAndRedraw(view.ID, actor.ID, pick)
	require.NoError(t, err)
	p, _ := after.Player(actor.ID)
	assert.Len(t, p.Hand, len(actor.Hand))
	assert.Len(t, p.Discard, 2)
	assert.Equal(t, 1, p.LastDiscardRound)

	_, err = engine.DiscardAndRedraw(view.ID, actor.ID, []string{p.Hand[0].InstanceID})
	assert.True(t, errors.Is(err, game.ErrIllegalAction))
}

func TestSameSeedSameChecksum(t *testing.T) {
	a, err := newEngine(t).CreateMatch(duel(), false)
	require.NoError(t, err)
	b, err := newEngine(t).CreateMatch(duel(), false)
	require.NoError(t, err)

	sumA, err := a.ComputeChecksum()
	require.NoError(t, err)
	sumB, err := b.ComputeChecksum()
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, sumA.Hash, sumB.Hash)
}

func TestReplayFollowsMatch(t *testing.T) {
	recorder := game.NewReplayRecorder(zaptest.NewLogger(t))
	engine := newEngine(t, game.WithReplayRecorder(recorder))

	view, err := engine.CreateMatch(duel(), false)
	require.NoError(t, err)
	assert.True(t, recorder.Recording(view.ID))

	current := view.CurrentPlayerID
	_, err = engine.EndTurn(view.ID, current)
	require.NoError(t, err)

	replay, ok := recorder.Replay(view.ID)
	require.True(t, ok)
	require.Equal(t, 2, replay.Len())
	assert.Equal(t, current, replay.Frame(0).CurrentPlayerID)
	assert.NotEqual(t, current, replay.Frame(1).CurrentPlayerID)

	require.NoError(t, engine.DeleteMatch(view.ID))
	_, ok = recorder.Replay(view.ID)
	assert.False(t, ok)
}

func TestConcurrentMatchesAreIsolated(t *testing.T) {
	engine := newEngine(t)

	const matches = 8
	ids := make([]string, matches)
	var g errgroup.Group
	for i := 0; i < matches; i++ {
		g.Go(func() error {
			view, err := engine.CreateMatch(duel(), false)
			if err != nil {
				return err
			}
			ids[i] = view.ID
			for turn := 0; turn < 6; turn++ {
				view, err = engine.EndTurn(view.ID, view.CurrentPlayerID)
				if err != nil {
					return fmt.Errorf("match %d turn %d: %w", i, turn, err)
				}
			}
			if view.Round != 4 {
				return fmt.Errorf("match %d: round %d", i, view.Round)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, matches, engine.Store().Len())
	assert.Len(t, engine.Store().IDs(), matches)
}
