package cost

import "fmt"

// Rounding selects how fractional costs are resolved. Each reduction carries
// its own rounding because the cards that produce them disagree.
type Rounding int

const (
	RoundFloor Rounding = iota
	RoundCeil
)

func (r Rounding) String() string {
	switch r {
	case RoundFloor:
		return "FLOOR"
	case RoundCeil:
		return "CEIL"
	default:
		return fmt.Sprintf("ROUNDING_%d", int(r))
	}
}

// ScalePercent returns value*pct/100 rounded as requested.
func ScalePercent(value, pct int, r Rounding) int {
	if value <= 0 || pct <= 0 {
		return 0
	}
	num := value * pct
	if r == RoundCeil {
		return (num + 99) / 100
	}
	return num / 100
}

// Divide returns value/divisor rounded as requested.
func Divide(value, divisor int, r Rounding) int {
	if divisor <= 1 {
		return value
	}
	if value <= 0 {
		return 0
	}
	if r == RoundCeil {
		return (value + divisor - 1) / divisor
	}
	return value / divisor
}

// Item is the card being priced.
type Item struct {
	CardID    string
	BaseCost  int
	SoulCost  int
	Technique bool
	Copied    bool
}

// Quote is the price of playing an item after every applicable reduction.
type Quote struct {
	Base    int
	Energy  int
	Souls   int
	Free    bool
	Applied []string
}

// Affordable reports whether the given balances cover the quote.
func (q Quote) Affordable(energy, souls int) bool {
	if q.Free {
		return souls >= q.Souls
	}
	return energy >= q.Energy && souls >= q.Souls
}

// ShortBy describes what is missing, for error messages.
func (q Quote) ShortBy(energy, souls int) string {
	if !q.Free && energy < q.Energy {
		return fmt.Sprintf("need %d cursed energy, have %d", q.Energy, energy)
	}
	if souls < q.Souls {
		return fmt.Sprintf("need %d distorted souls, have %d", q.Souls, souls)
	}
	return ""
}
