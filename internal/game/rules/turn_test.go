package rules

import "testing"

type seats []bool

func (s seats) Len() int            { return len(s) }
func (s seats) Alive(seat int) bool { return s[seat] }

func TestTurnManagerRoundWraps(t *testing.T) {
	tm := NewTurnManager(0)
	table := seats{true, true, true}

	for i, want := range []int{1, 2} {
		adv, ok := tm.Next(table)
		if !ok {
			t.Fatalf("step %d: expected a living seat", i)
		}
		if adv.To != want || adv.NewRound {
			t.Fatalf("step %d: expected seat %d without round change, got %+v", i, want, adv)
		}
		if tm.Round() != 1 {
			t.Fatalf("step %d: expected round 1, got %d", i, tm.Round())
		}
	}

	adv, ok := tm.Next(table)
	if !ok || adv.To != 0 || !adv.NewRound {
		t.Fatalf("expected wrap to seat 0 with new round, got %+v ok=%v", adv, ok)
	}
	if tm.Round() != 2 || adv.Round != 2 {
		t.Fatalf("expected round 2, got %d", tm.Round())
	}
	if tm.Phase() != PhaseRoundTransition {
		t.Fatalf("expected round transition phase, got %s", tm.Phase())
	}
	tm.Settle()
	if tm.Phase() != PhaseAwaitingAction {
		t.Fatalf("expected awaiting action after settle, got %s", tm.Phase())
	}
	if tm.TurnNumber() != 4 {
		t.Fatalf("expected turn 4, got %d", tm.TurnNumber())
	}
}

func TestTurnManagerSkipsDefeatedSeats(t *testing.T) {
	tm := NewTurnManager(0)
	table := seats{true, false, true, false}

	adv, _ := tm.Next(table)
	if adv.To != 2 {
		t.Fatalf("expected seat 2, got %d", adv.To)
	}
	adv, _ = tm.Next(table)
	if adv.To != 0 || !adv.NewRound {
		t.Fatalf("expected wrap to seat 0, got %+v", adv)
	}
}

func TestTurnManagerWrapWhenLastSeatDefeated(t *testing.T) {
	// Seat 2 is dead, so leaving seat 1 crosses the round boundary.
	tm := NewTurnManager(1)
	adv, _ := tm.Next(seats{true, true, false})
	if adv.To != 0 || !adv.NewRound || tm.Round() != 2 {
		t.Fatalf("expected round change to seat 0, got %+v round=%d", adv, tm.Round())
	}
}

func TestTurnManagerSoleSurvivorKeepsTurn(t *testing.T) {
	tm := NewTurnManager(1)
	adv, ok := tm.Next(seats{false, true, false})
	if !ok || adv.To != 1 || !adv.NewRound {
		t.Fatalf("expected the sole survivor to keep the turn, got %+v ok=%v", adv, ok)
	}
}

func TestTurnManagerNoLivingSeats(t *testing.T) {
	tm := NewTurnManager(0)
	if _, ok := tm.Next(seats{false, false}); ok {
		t.Fatalf("expected no seat to be found")
	}
	tm.Finish()
	if _, ok := tm.Next(seats{true, true}); ok {
		t.Fatalf("finished manager must not advance")
	}
	if tm.Phase().String() != "FINISHED" {
		t.Fatalf("unexpected phase name %s", tm.Phase())
	}
}
