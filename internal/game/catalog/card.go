package catalog

import "github.com/cursedclash/clash-server-go/internal/game/targeting"

// Card is an immutable card definition. Runtime instances copy it by value.
type Card struct {
	ID     CardID
	Name   string
	Kind   Kind
	Rarity Rarity
	// Cost is paid in cursed energy.
	Cost int
	// SoulCost is paid from the distorted soul counter (Mahito only).
	SoulCost int
	Text     string
	Target   targeting.TargetRequirement
}

// IsDomain reports whether the card activates a domain expansion.
func (c Card) IsDomain() bool {
	return c.Kind == KindDomainExpansion
}

// Character is an immutable character definition.
type Character struct {
	ID          CharacterID
	Name        string
	MaxHP       int
	MaxEnergy   int
	Passive     PassiveID
	PassiveName string
	PassiveText string
	// HandSize overrides the default hand cap when non-zero.
	HandSize    int
	UniqueCards []Card
}
