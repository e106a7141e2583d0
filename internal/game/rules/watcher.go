package rules

// WatcherKey identifies a watcher inside a match.
type WatcherKey string

// Watcher folds match events into running totals. Watchers see every event a
// match records, in order, before bus listeners do.
type Watcher interface {
	Key() WatcherKey
	Watch(evt Event)
	Reset()
	Clone() Watcher
}

// Watchers is the per-match set of watchers, kept in registration order.
// It has no lock of its own; the owning match serialises access.
type Watchers struct {
	order []WatcherKey
	byKey map[WatcherKey]Watcher
}

// NewWatchers returns an empty set.
func NewWatchers() *Watchers {
	return &Watchers{byKey: make(map[WatcherKey]Watcher)}
}

// Register adds w, replacing any watcher with the same key. Watchers with an
// empty key are refused.
func (ws *Watchers) Register(w Watcher) bool {
	if w == nil || w.Key() == "" {
		return false
	}
	if _, ok := ws.byKey[w.Key()]; !ok {
		ws.order = append(ws.order, w.Key())
	}
	ws.byKey[w.Key()] = w
	return true
}

// Lookup returns the watcher registered under key, or nil.
func (ws *Watchers) Lookup(key WatcherKey) Watcher {
	return ws.byKey[key]
}

// Unregister drops the watcher registered under key.
func (ws *Watchers) Unregister(key WatcherKey) {
	if _, ok := ws.byKey[key]; !ok {
		return
	}
	delete(ws.byKey, key)
	for i, k := range ws.order {
		if k == key {
			ws.order = append(ws.order[:i], ws.order[i+1:]...)
			break
		}
	}
}

// Keys lists registered keys in registration order.
func (ws *Watchers) Keys() []WatcherKey {
	return append([]WatcherKey(nil), ws.order...)
}

// Observe feeds evt to every watcher.
func (ws *Watchers) Observe(evt Event) {
	for _, k := range ws.order {
		ws.byKey[k].Watch(evt)
	}
}

// ResetAll clears every watcher's totals.
func (ws *Watchers) ResetAll() {
	for _, w := range ws.byKey {
		w.Reset()
	}
}

// Clone deep-copies the set so the copy stops seeing later events.
func (ws *Watchers) Clone() *Watchers {
	out := NewWatchers()
	for _, k := range ws.order {
		out.Register(ws.byKey[k].Clone())
	}
	return out
}
