package rules

import (
	"fmt"

	"github.com/cursedclash/clash-server-go/internal/game/targeting"
)

// Phase represents where a match is in its turn cycle.
type Phase int

const (
	PhaseAwaitingAction Phase = iota
	PhaseRoundTransition
	PhaseFinished
)

var phaseNames = map[Phase]string{
	PhaseAwaitingAction:  "AWAITING_ACTION",
	PhaseRoundTransition: "ROUND_TRANSITION",
	PhaseFinished:        "FINISHED",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}

// Advance describes one hand-over of the turn.
type Advance struct {
	From int
	To   int
	// NewRound is set when the pointer wrapped past the last living seat.
	NewRound bool
	// Round is the round number after the hand-over.
	Round int
}

// TurnManager tracks the active seat, the round counter and the phase.
// It knows nothing about players beyond which seats are alive.
type TurnManager struct {
	seat       int
	round      int
	turnNumber int
	phase      Phase
}

// NewTurnManager creates a turn manager at round 1 with seat holding the turn.
func NewTurnManager(seat int) *TurnManager {
	return &TurnManager{
		seat:       seat,
		round:      1,
		turnNumber: 1,
		phase:      PhaseAwaitingAction,
	}
}

// Restore rebuilds a turn manager from persisted match fields.
func Restore(seat, round, turnNumber int, finished bool) *TurnManager {
	tm := &TurnManager{seat: seat, round: round, turnNumber: turnNumber, phase: PhaseAwaitingAction}
	if finished {
		tm.phase = PhaseFinished
	}
	return tm
}

// Seat returns the seat currently holding the turn.
func (tm *TurnManager) Seat() int {
	return tm.seat
}

// Round returns the current round number (1-based).
func (tm *TurnManager) Round() int {
	return tm.round
}

// TurnNumber returns the number of turns handed over so far (1-based).
func (tm *TurnManager) TurnNumber() int {
	return tm.turnNumber
}

// Phase returns the current phase.
func (tm *TurnManager) Phase() Phase {
	return tm.phase
}

// Finish moves the manager into its terminal phase.
func (tm *TurnManager) Finish() {
	tm.phase = PhaseFinished
}

// Finished reports whether the match is over.
func (tm *TurnManager) Finished() bool {
	return tm.phase == PhaseFinished
}

// SetSeat moves the turn pointer without counting a turn. Used when the seat
// order changes under the pointer (a seat is removed).
func (tm *TurnManager) SetSeat(seat int) {
	tm.seat = seat
}

// Next hands the turn to the next living seat in seating order, wrapping.
// The search is bounded by the seat count and may land back on the current
// seat when it is the only one alive. A round boundary is crossed when the
// new index is not greater than the old one. ok is false when no seat is alive.
func (tm *TurnManager) Next(s targeting.Seating) (Advance, bool) {
	if tm.phase == PhaseFinished {
		return Advance{}, false
	}
	n := s.Len()
	for i := 1; i <= n; i++ {
		idx := (tm.seat + i) % n
		if !s.Alive(idx) {
			continue
		}
		adv := Advance{From: tm.seat, To: idx, NewRound: idx <= tm.seat}
		if adv.NewRound {
			tm.phase = PhaseRoundTransition
			tm.round++
		}
		tm.seat = idx
		tm.turnNumber++
		adv.Round = tm.round
		return adv, true
	}
	return Advance{}, false
}

// Settle returns the manager to AwaitingAction after round-start hooks ran.
func (tm *TurnManager) Settle() {
	if tm.phase == PhaseRoundTransition {
		tm.phase = PhaseAwaitingAction
	}
}
