package effects

import "github.com/google/uuid"

// Effect is a timed modifier attached to a player.
type Effect struct {
	ID   string
	Kind Kind
	// Duration is the number of remaining ticks. It never goes below zero.
	Duration int
	Value    int
	// OwnerID is the holder, SourceID the player who applied it.
	OwnerID  string
	SourceID string
	// TargetID is an optional secondary reference (the kicked attacker for a
	// Manji guard, the victim of a Divergent Fist residual).
	TargetID string
}

// Tick returns the phase the effect ticks in.
func (e Effect) Tick() TickPhase {
	return specs[e.Kind].Tick
}

// Builder provides a fluent API for creating effects with the kind's defaults.
type Builder struct {
	effect Effect
}

// NewBuilder starts an effect of kind k with its base duration and value.
func NewBuilder(k Kind) *Builder {
	spec := specs[k]
	return &Builder{effect: Effect{
		Kind:     k,
		Duration: spec.Duration,
		Value:    spec.Value,
	}}
}

// From sets the player who applied the effect.
func (b *Builder) From(sourceID string) *Builder {
	b.effect.SourceID = sourceID
	return b
}

// On sets the holder.
func (b *Builder) On(ownerID string) *Builder {
	b.effect.OwnerID = ownerID
	return b
}

// Against sets the secondary target reference.
func (b *Builder) Against(targetID string) *Builder {
	b.effect.TargetID = targetID
	return b
}

// For overrides the base duration.
func (b *Builder) For(ticks int) *Builder {
	if ticks < 0 {
		ticks = 0
	}
	b.effect.Duration = ticks
	return b
}

// WithValue overrides the default payload.
func (b *Builder) WithValue(v int) *Builder {
	b.effect.Value = v
	return b
}

// Build returns the effect with a fresh id.
func (b *Builder) Build() Effect {
	e := b.effect
	e.ID = uuid.NewString()
	return e
}

// ApplyResult reports what Apply did.
type ApplyResult int

const (
	// Ignored means an effect of the same kind was already present.
	Ignored ApplyResult = iota
	Added
	// Refreshed means a burn-like effect had its duration reset.
	Refreshed
)

func (r ApplyResult) String() string {
	switch r {
	case Added:
		return "ADDED"
	case Refreshed:
		return "REFRESHED"
	default:
		return "IGNORED"
	}
}

// List is the ordered set of effects held by one player.
type List struct {
	Items []Effect
}

// NewList creates an empty list.
func NewList() *List {
	return &List{Items: make([]Effect, 0)}
}

func sameSlot(a, b Effect) bool {
	if a.Kind != b.Kind {
		return false
	}
	if specs[a.Kind].PerTarget {
		return a.TargetID == b.TargetID
	}
	return true
}

// Apply adds e. Reapplying a kind that is already present is a no-op, except
// for burn-like kinds whose remaining duration is reset to e's duration.
func (l *List) Apply(e Effect) ApplyResult {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	for i := range l.Items {
		if !sameSlot(l.Items[i], e) {
			continue
		}
		if specs[e.Kind].BurnLike {
			l.Items[i].Duration = e.Duration
			l.Items[i].SourceID = e.SourceID
			return Refreshed
		}
		return Ignored
	}
	l.Items = append(l.Items, e)
	return Added
}

// Has reports whether an effect of kind k is held.
func (l *List) Has(k Kind) bool {
	_, ok := l.Find(k)
	return ok
}

// Find returns the first effect of kind k.
func (l *List) Find(k Kind) (Effect, bool) {
	for _, e := range l.Items {
		if e.Kind == k {
			return e, true
		}
	}
	return Effect{}, false
}

// FindFor returns the effect of kind k tied to targetID.
func (l *List) FindFor(k Kind, targetID string) (Effect, bool) {
	for _, e := range l.Items {
		if e.Kind == k && e.TargetID == targetID {
			return e, true
		}
	}
	return Effect{}, false
}

// Consume removes and returns the first effect of kind k.
func (l *List) Consume(k Kind) (Effect, bool) {
	return l.take(func(e Effect) bool { return e.Kind == k })
}

// ConsumeFor removes and returns the effect of kind k tied to targetID.
func (l *List) ConsumeFor(k Kind, targetID string) (Effect, bool) {
	return l.take(func(e Effect) bool { return e.Kind == k && e.TargetID == targetID })
}

func (l *List) take(match func(Effect) bool) (Effect, bool) {
	for i, e := range l.Items {
		if match(e) {
			l.Items = append(l.Items[:i], l.Items[i+1:]...)
			return e, true
		}
	}
	return Effect{}, false
}

// RemoveWhere drops every effect matching pred and returns the removed ones.
func (l *List) RemoveWhere(pred func(Effect) bool) []Effect {
	var removed []Effect
	kept := l.Items[:0]
	for _, e := range l.Items {
		if pred(e) {
			removed = append(removed, e)
			continue
		}
		kept = append(kept, e)
	}
	l.Items = kept
	return removed
}

// RemoveDomainTags drops every domain-tagged effect.
func (l *List) RemoveDomainTags() []Effect {
	return l.RemoveWhere(func(e Effect) bool { return e.Kind.IsDomain() })
}

// Count returns the number of effects of kind k.
func (l *List) Count(k Kind) int {
	n := 0
	for _, e := range l.Items {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Len returns the number of effects held.
func (l *List) Len() int {
	return len(l.Items)
}

// Tick runs one tick of every effect in phase. fire is called with the
// current value of each effect before its duration drops; it may mutate other
// state, including this list. Effects reaching zero are removed and returned.
func (l *List) Tick(phase TickPhase, fire func(Effect)) []Effect {
	if phase == TickNever {
		return nil
	}
	ids := make([]string, 0, len(l.Items))
	for _, e := range l.Items {
		if e.Tick() == phase {
			ids = append(ids, e.ID)
		}
	}

	var expired []Effect
	for _, id := range ids {
		idx := l.index(id)
		if idx < 0 {
			continue
		}
		if fire != nil {
			fire(l.Items[idx])
		}
		// fire may have consumed it
		if idx = l.index(id); idx < 0 {
			continue
		}
		l.Items[idx].Duration--
		if l.Items[idx].Duration <= 0 {
			l.Items[idx].Duration = 0
			expired = append(expired, l.Items[idx])
			l.Items = append(l.Items[:idx], l.Items[idx+1:]...)
		}
	}
	return expired
}

func (l *List) index(id string) int {
	for i, e := range l.Items {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Copy creates a deep copy of the list.
func (l *List) Copy() *List {
	out := &List{Items: make([]Effect, len(l.Items))}
	copy(out.Items, l.Items)
	return out
}
