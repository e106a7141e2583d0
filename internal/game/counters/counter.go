package counters

import "sort"

// Counter is a named tally held by a player.
type Counter struct {
	Name  CounterType
	Count int
}

// Copy creates a copy of the counter.
func (c *Counter) Copy() *Counter {
	return &Counter{Name: c.Name, Count: c.Count}
}

// Counters is the per-player condition flag set. It replaces one-off boolean
// fields: prerequisites are checked generically through Requirement.
type Counters struct {
	Counters map[CounterType]*Counter
}

// NewCounters creates an empty collection.
func NewCounters() *Counters {
	return &Counters{Counters: make(map[CounterType]*Counter)}
}

// Add adds amount to the named counter.
func (cs *Counters) Add(name CounterType, amount int) {
	if amount <= 0 {
		return
	}
	if counter, ok := cs.Counters[name]; ok {
		counter.Count += amount
		return
	}
	cs.Counters[name] = &Counter{Name: name, Count: amount}
}

// Remove removes up to amount from the named counter and reports whether
// anything was removed. The count never goes below 0.
func (cs *Counters) Remove(name CounterType, amount int) bool {
	if amount <= 0 {
		return false
	}
	counter, ok := cs.Counters[name]
	if !ok {
		return false
	}
	if counter.Count > amount {
		counter.Count -= amount
	} else {
		delete(cs.Counters, name)
	}
	return true
}

// Set overwrites the named counter; a value of 0 or less clears it.
func (cs *Counters) Set(name CounterType, value int) {
	if value <= 0 {
		delete(cs.Counters, name)
		return
	}
	cs.Counters[name] = &Counter{Name: name, Count: value}
}

// Mark sets a boolean flag.
func (cs *Counters) Mark(name CounterType) {
	cs.Set(name, 1)
}

// Clear removes the named counter.
func (cs *Counters) Clear(name CounterType) {
	delete(cs.Counters, name)
}

// Get returns the count of the named counter.
func (cs *Counters) Get(name CounterType) int {
	if counter, ok := cs.Counters[name]; ok {
		return counter.Count
	}
	return 0
}

// Has returns true if the named counter is above zero.
func (cs *Counters) Has(name CounterType) bool {
	return cs.Get(name) > 0
}

// Satisfies reports whether every requirement holds, returning the first unmet one.
func (cs *Counters) Satisfies(reqs ...Requirement) (Requirement, bool) {
	for _, req := range reqs {
		if cs.Get(req.Counter) < req.AtLeast {
			return req, false
		}
	}
	return Requirement{}, true
}

// Copy creates a deep copy of the collection.
func (cs *Counters) Copy() *Counters {
	out := NewCounters()
	for name, counter := range cs.Counters {
		out.Counters[name] = counter.Copy()
	}
	return out
}

// ToView converts counters to the view format, sorted by name.
func (cs *Counters) ToView() []CounterView {
	views := make([]CounterView, 0, len(cs.Counters))
	for name, counter := range cs.Counters {
		views = append(views, CounterView{Name: string(name), Count: counter.Count})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views
}

// CounterView represents a counter in the view format.
type CounterView struct {
	Name  string
	Count int
}
