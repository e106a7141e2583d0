package counters

// CounterType names a per-player condition. Boolean prerequisite flags are
// counters that are either 0 or 1; everything else is a plain tally.
type CounterType string

const (
	// One-shot prerequisite flags
	CounterBlueUsed         CounterType = "blue_used"
	CounterRedUsed          CounterType = "red_used"
	CounterBlackFlashLanded CounterType = "black_flash_landed"
	CounterChantArmed       CounterType = "chant_armed"
	CounterBlindfoldRemoved CounterType = "blindfold_removed"

	// Tallies
	CounterDistortedSouls   CounterType = "distorted_souls"
	CounterIgnoredBlockHits CounterType = "ignored_block_hits"
	CounterCostReductionPct CounterType = "cost_reduction_pct"
	CounterTurnsTaken       CounterType = "turns_taken"
)

// String returns the string representation of the counter type.
func (ct CounterType) String() string {
	return string(ct)
}

// IsFlag reports whether the counter is used as a boolean prerequisite.
func (ct CounterType) IsFlag() bool {
	switch ct {
	case CounterBlueUsed, CounterRedUsed, CounterBlackFlashLanded, CounterChantArmed, CounterBlindfoldRemoved:
		return true
	default:
		return false
	}
}

// Requirement is a generic prerequisite checked by the card dispatcher.
type Requirement struct {
	Counter CounterType
	AtLeast int
	// Reason is shown to the player when the requirement is not met.
	Reason string
}

// Flag builds a requirement that a boolean flag has been set.
func Flag(ct CounterType, reason string) Requirement {
	return Requirement{Counter: ct, AtLeast: 1, Reason: reason}
}

// AtLeast builds a requirement on a tally.
func AtLeast(ct CounterType, n int, reason string) Requirement {
	return Requirement{Counter: ct, AtLeast: n, Reason: reason}
}
