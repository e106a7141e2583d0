package targeting

import (
	"errors"
	"fmt"
)

// ErrTargetNotFound is returned when a selected target id does not name a seated player.
var ErrTargetNotFound = errors.New("target not found")

// TargetValidator validates that selected targets are legal.
type TargetValidator struct {
	players TargetPlayerAccessor
}

// TargetPlayerAccessor provides access to the seated players.
type TargetPlayerAccessor interface {
	// FindPlayerForTarget finds player info by ID
	FindPlayerForTarget(playerID string) (TargetPlayerInfo, bool)
}

// TargetPlayerInfo provides information about a player for target validation.
type TargetPlayerInfo struct {
	PlayerID string
	Name     string
	Defeated bool
}

// NewTargetValidator creates a new target validator.
func NewTargetValidator(players TargetPlayerAccessor) *TargetValidator {
	return &TargetValidator{players: players}
}

// ValidateTarget checks if a single target ID is a living opponent of actorID.
func (tv *TargetValidator) ValidateTarget(actorID, targetID string) error {
	if tv == nil || tv.players == nil {
		return fmt.Errorf("target validator not initialized")
	}
	player, ok := tv.players.FindPlayerForTarget(targetID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrTargetNotFound, targetID)
	}
	if player.PlayerID == actorID {
		return fmt.Errorf("cannot target yourself")
	}
	if player.Defeated {
		return fmt.Errorf("target player %s is defeated", player.Name)
	}
	return nil
}

// ValidateTargetSelection validates an entire target selection against its requirement.
func (tv *TargetValidator) ValidateTargetSelection(actorID string, selection *TargetSelection) error {
	if tv == nil {
		return fmt.Errorf("target validator not initialized")
	}
	if selection == nil {
		return fmt.Errorf("target selection is nil")
	}
	if err := selection.Validate(); err != nil {
		return err
	}
	if selection.Requirement.Type == TargetTypeNone {
		return nil
	}

	seen := make(map[string]bool, len(selection.Targets))
	for _, targetID := range selection.Targets {
		if seen[targetID] {
			return fmt.Errorf("duplicate target: %s", targetID)
		}
		seen[targetID] = true
		if err := tv.ValidateTarget(actorID, targetID); err != nil {
			return fmt.Errorf("invalid target %s: %w", targetID, err)
		}
	}
	return nil
}
