package cost

import "sort"

// Reduction is one cost-changing effect held by the paying player.
//
// Percent removes that share of the running cost, Divisor splits it. A Free
// reduction waives the cursed energy cost entirely; soul costs still apply.
type Reduction struct {
	ID        string
	Percent   int
	Divisor   int
	Free      bool
	Rounding  Rounding
	AppliesTo func(Item) bool
}

func (r *Reduction) applies(item Item) bool {
	return r.AppliesTo == nil || r.AppliesTo(item)
}

// ReductionManager collects the reductions active for one quote.
type ReductionManager struct {
	reductions []*Reduction
}

// NewReductionManager creates an empty manager.
func NewReductionManager() *ReductionManager {
	return &ReductionManager{reductions: make([]*Reduction, 0)}
}

// AddReduction registers a reduction. Nil reductions are ignored.
func (rm *ReductionManager) AddReduction(reduction *Reduction) {
	if reduction == nil {
		return
	}
	rm.reductions = append(rm.reductions, reduction)
}

// Quote prices an item. Percentage reductions apply first, then divisors;
// each uses its own rounding. The result never goes below zero.
func (rm *ReductionManager) Quote(item Item) Quote {
	q := Quote{Base: item.BaseCost, Energy: item.BaseCost, Souls: item.SoulCost}
	if q.Energy < 0 {
		q.Energy = 0
	}

	// Stable order: percent before divisor, then by id.
	ordered := make([]*Reduction, 0, len(rm.reductions))
	for _, red := range rm.reductions {
		if red.applies(item) {
			ordered = append(ordered, red)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		ri, rj := ordered[i], ordered[j]
		if (ri.Divisor > 1) != (rj.Divisor > 1) {
			return rj.Divisor > 1
		}
		return ri.ID < rj.ID
	})

	for _, red := range ordered {
		switch {
		case red.Free:
			q.Free = true
		case red.Percent > 0:
			pct := red.Percent
			if pct > 100 {
				pct = 100
			}
			q.Energy = ScalePercent(q.Energy, 100-pct, red.Rounding)
		case red.Divisor > 1:
			q.Energy = Divide(q.Energy, red.Divisor, red.Rounding)
		default:
			continue
		}
		q.Applied = append(q.Applied, red.ID)
	}

	if q.Free {
		q.Energy = 0
	}
	return q
}
