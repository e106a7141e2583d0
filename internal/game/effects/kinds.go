package effects

import "fmt"

// Kind identifies a status effect. The set is closed; behavior for each kind
// is looked up in the game package when the effect ticks or is consumed.
type Kind string

const (
	// Periodic damage
	KindBurn              Kind = "burn"
	KindDivergentResidual Kind = "divergent_residual"

	// Domain signatures
	KindInformationOverload Kind = "information_overload"
	KindMalevolentShrine    Kind = "malevolent_shrine"
	KindSoulDistortion      Kind = "soul_distortion"
	KindIronMountainHeat    Kind = "iron_mountain_heat"
	KindTrueMutualLove      Kind = "true_mutual_love"

	// Anti-domain
	KindSimpleDomain   Kind = "simple_domain"
	KindFallingBlossom Kind = "falling_blossom_emotion"

	// Buffs and guards
	KindBlindfold         Kind = "blindfold"
	KindInfinity          Kind = "infinity"
	KindZone              Kind = "zone"
	KindDeepConcentration Kind = "deep_concentration"
	KindLastStand         Kind = "last_stand"
	KindManjiGuard        Kind = "manji_guard"
	KindSoulIsomer        Kind = "polymorphic_soul_isomer"
	KindTrueForm          Kind = "true_form"
	KindRikaManifestation Kind = "rika_manifestation"
	KindRikaCooldown      Kind = "rika_cooldown"
	KindFreeStrike        Kind = "free_strike"
)

// TickPhase says when an effect's periodic action fires and its duration drops.
type TickPhase int

const (
	// TickNever effects only leave by explicit consumption.
	TickNever TickPhase = iota
	// TickStartOfTurn fires when the holder's turn begins.
	TickStartOfTurn
	// TickEndOfTurn fires when the holder ends their turn.
	TickEndOfTurn
)

var tickPhaseNames = map[TickPhase]string{
	TickNever:       "NEVER",
	TickStartOfTurn: "START_OF_TURN",
	TickEndOfTurn:   "END_OF_TURN",
}

func (p TickPhase) String() string {
	if name, ok := tickPhaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("TICK_PHASE_%d", int(p))
}

// Forever is the duration given to effects that last until consumed.
const Forever = 1 << 30

// Spec is the static description of a kind.
type Spec struct {
	Kind Kind
	Name string
	Tick TickPhase
	// Duration is the base duration, in ticks of the holder.
	Duration int
	// Value is the default periodic payload (damage, block, percent).
	Value int
	// Domain effects are purged match-wide when any domain activates.
	Domain bool
	// BurnLike effects reset their duration when reapplied instead of being ignored.
	BurnLike bool
	// PerTarget effects are distinguished by TargetID, so one holder can carry
	// several of them.
	PerTarget bool
}

var specs = map[Kind]Spec{
	KindBurn:                {Kind: KindBurn, Name: "Burn", Tick: TickStartOfTurn, Duration: 2, Value: 100, BurnLike: true},
	KindDivergentResidual:   {Kind: KindDivergentResidual, Name: "Divergent Fist", Tick: TickStartOfTurn, Duration: 1, Value: 200, PerTarget: true},
	KindInformationOverload: {Kind: KindInformationOverload, Name: "Information Overload", Tick: TickEndOfTurn, Duration: 3, Domain: true},
	KindMalevolentShrine:    {Kind: KindMalevolentShrine, Name: "Malevolent Shrine", Tick: TickEndOfTurn, Duration: 3, Value: 1500, Domain: true},
	KindSoulDistortion:      {Kind: KindSoulDistortion, Name: "Self-Embodiment of Perfection", Tick: TickStartOfTurn, Duration: 3, Value: 1, Domain: true},
	KindIronMountainHeat:    {Kind: KindIronMountainHeat, Name: "Coffin of the Iron Mountain", Tick: TickStartOfTurn, Duration: 3, Value: 800, Domain: true},
	KindTrueMutualLove:      {Kind: KindTrueMutualLove, Name: "Authentic Mutual Love", Tick: TickStartOfTurn, Duration: 3, Value: 4, Domain: true},
	KindSimpleDomain:        {Kind: KindSimpleDomain, Name: "Simple Domain", Tick: TickStartOfTurn, Duration: 2, Value: 200},
	KindFallingBlossom:      {Kind: KindFallingBlossom, Name: "Falling Blossom Emotion", Tick: TickStartOfTurn, Duration: 3, Value: 33},
	KindBlindfold:           {Kind: KindBlindfold, Name: "Blindfold", Tick: TickNever, Duration: Forever},
	KindInfinity:            {Kind: KindInfinity, Name: "Infinity", Tick: TickStartOfTurn, Duration: 1},
	KindZone:                {Kind: KindZone, Name: "Zone", Tick: TickStartOfTurn, Duration: 3, Value: 25},
	KindDeepConcentration:   {Kind: KindDeepConcentration, Name: "Deep Concentration", Tick: TickStartOfTurn, Duration: 2},
	KindLastStand:           {Kind: KindLastStand, Name: "Last Stand", Tick: TickStartOfTurn, Duration: 5, Value: -3500},
	KindManjiGuard:          {Kind: KindManjiGuard, Name: "Manji Kick", Tick: TickNever, Duration: Forever, PerTarget: true},
	KindSoulIsomer:          {Kind: KindSoulIsomer, Name: "Polymorphic Soul Isomer", Tick: TickStartOfTurn, Duration: 1, Value: 500},
	KindTrueForm:            {Kind: KindTrueForm, Name: "Instant Spirit Body of Distorted Killing", Tick: TickNever, Duration: Forever, Value: 500},
	KindRikaManifestation:   {Kind: KindRikaManifestation, Name: "Manifestation: Rika", Tick: TickEndOfTurn, Duration: 3, Value: 1000},
	KindRikaCooldown:        {Kind: KindRikaCooldown, Name: "Rika Cooldown", Tick: TickEndOfTurn, Duration: 2},
	KindFreeStrike:          {Kind: KindFreeStrike, Name: "Free Strike", Tick: TickEndOfTurn, Duration: 1},
}

// SpecFor returns the static description of k.
func SpecFor(k Kind) (Spec, bool) {
	s, ok := specs[k]
	return s, ok
}

// Kinds returns every known kind.
func Kinds() []Kind {
	out := make([]Kind, 0, len(specs))
	for k := range specs {
		out = append(out, k)
	}
	return out
}

// String returns the display name of the kind.
func (k Kind) String() string {
	if s, ok := specs[k]; ok {
		return s.Name
	}
	return string(k)
}

// IsDomain reports whether the kind is purged by domain activation.
func (k Kind) IsDomain() bool {
	return specs[k].Domain
}
