package targeting

import (
	"fmt"
	"strings"
)

// TargetType says what a card may be aimed at.
type TargetType string

const (
	TargetTypeNone      TargetType = "NONE"      // the card picks its own targets
	TargetTypeOpponent  TargetType = "OPPONENT"  // exactly one living opponent
	TargetTypeOpponents TargetType = "OPPONENTS" // up to MaxTargets living opponents
)

// TargetRequirement is a card's targeting rule. Optional requirements may be
// left empty by the player and are then filled at random by the engine.
type TargetRequirement struct {
	Type        TargetType
	MinTargets  int
	MaxTargets  int
	Optional    bool
	Description string
}

func NoTarget() TargetRequirement {
	return TargetRequirement{Type: TargetTypeNone, Description: "no target"}
}

func SingleOpponent() TargetRequirement {
	return TargetRequirement{Type: TargetTypeOpponent, MinTargets: 1, MaxTargets: 1, Description: "target opponent"}
}

// UpToOpponents is the "up to n targets" rule.
func UpToOpponents(n int) TargetRequirement {
	return TargetRequirement{
		Type:        TargetTypeOpponents,
		MaxTargets:  n,
		Optional:    true,
		Description: fmt.Sprintf("up to %d opponents", n),
	}
}

// TargetSelection pairs the player ids a request named with the rule they
// must satisfy.
type TargetSelection struct {
	Targets     []string
	Requirement TargetRequirement
}

// Validate checks only the size of the selection; NewTargetValidator checks
// who was picked.
func (ts *TargetSelection) Validate() error {
	if ts == nil {
		return fmt.Errorf("target selection is nil")
	}
	need := ts.Requirement
	if need.Type == TargetTypeNone {
		return nil
	}
	switch n := len(ts.Targets); {
	case n < need.MinTargets:
		return fmt.Errorf("%s needs at least %d target(s), got %d", need.Description, need.MinTargets, n)
	case n > need.MaxTargets:
		return fmt.Errorf("%s allows at most %d target(s), got %d", need.Description, need.MaxTargets, n)
	}
	return nil
}

// FormatTargets joins ids for Event.Data.
func FormatTargets(targets []string) string {
	if len(targets) == 0 {
		return ""
	}
	return strings.Join(targets, ",")
}

// ParseTargets is the inverse of FormatTargets.
func ParseTargets(formatted string) []string {
	if formatted == "" {
		return []string{}
	}
	return strings.Split(formatted, ",")
}
