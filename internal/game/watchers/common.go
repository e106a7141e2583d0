package watchers

import (
	"maps"

	"github.com/cursedclash/clash-server-go/internal/game/rules"
)

// Keys under which the stock watchers register.
const (
	KeyDamage      rules.WatcherKey = "damage"
	KeyCardsPlayed rules.WatcherKey = "cards_played"
	KeyDomains     rules.WatcherKey = "domains"
)

// Install registers the stock watchers on ws.
func Install(ws *rules.Watchers) {
	ws.Register(NewDamageWatcher())
	ws.Register(NewCardsPlayedWatcher())
	ws.Register(NewDomainWatcher())
}

// DamageWatcher totals HP damage per dealer and per victim. Damage soaked
// by block never reaches it.
type DamageWatcher struct {
	dealt map[string]int
	taken map[string]int
}

func NewDamageWatcher() *DamageWatcher {
	return &DamageWatcher{dealt: map[string]int{}, taken: map[string]int{}}
}

func (w *DamageWatcher) Key() rules.WatcherKey { return KeyDamage }

func (w *DamageWatcher) Watch(evt rules.Event) {
	if evt.Type != rules.EventDamageDealt || evt.Amount <= 0 {
		return
	}
	if evt.SourceID != "" {
		w.dealt[evt.SourceID] += evt.Amount
	}
	if evt.TargetID != "" {
		w.taken[evt.TargetID] += evt.Amount
	}
}

func (w *DamageWatcher) Reset() {
	clear(w.dealt)
	clear(w.taken)
}

func (w *DamageWatcher) Clone() rules.Watcher {
	return &DamageWatcher{dealt: maps.Clone(w.dealt), taken: maps.Clone(w.taken)}
}

// Dealt is the damage playerID has inflicted so far.
func (w *DamageWatcher) Dealt(playerID string) int { return w.dealt[playerID] }

// Taken is the damage playerID has suffered so far.
func (w *DamageWatcher) Taken(playerID string) int { return w.taken[playerID] }

// CardsPlayedWatcher remembers each player's card ids in play order.
type CardsPlayedWatcher struct {
	played map[string][]string
}

func NewCardsPlayedWatcher() *CardsPlayedWatcher {
	return &CardsPlayedWatcher{played: map[string][]string{}}
}

func (w *CardsPlayedWatcher) Key() rules.WatcherKey { return KeyCardsPlayed }

func (w *CardsPlayedWatcher) Watch(evt rules.Event) {
	if evt.Type != rules.EventCardPlayed || evt.PlayerID == "" || evt.CardID == "" {
		return
	}
	w.played[evt.PlayerID] = append(w.played[evt.PlayerID], evt.CardID)
}

func (w *CardsPlayedWatcher) Reset() { clear(w.played) }

func (w *CardsPlayedWatcher) Clone() rules.Watcher {
	c := NewCardsPlayedWatcher()
	for id, cards := range w.played {
		c.played[id] = append([]string(nil), cards...)
	}
	return c
}

// Played returns a copy of playerID's card ids, oldest first.
func (w *CardsPlayedWatcher) Played(playerID string) []string {
	return append([]string(nil), w.played[playerID]...)
}

func (w *CardsPlayedWatcher) Count(playerID string) int { return len(w.played[playerID]) }

// DomainWatcher counts domain expansions per player and keeps the latest one.
type DomainWatcher struct {
	expansions map[string]int
	last       string
}

func NewDomainWatcher() *DomainWatcher {
	return &DomainWatcher{expansions: map[string]int{}}
}

func (w *DomainWatcher) Key() rules.WatcherKey { return KeyDomains }

func (w *DomainWatcher) Watch(evt rules.Event) {
	if evt.Type != rules.EventDomainActivated || evt.PlayerID == "" {
		return
	}
	w.expansions[evt.PlayerID]++
	w.last = evt.CardID
}

func (w *DomainWatcher) Reset() {
	clear(w.expansions)
	w.last = ""
}

func (w *DomainWatcher) Clone() rules.Watcher {
	return &DomainWatcher{expansions: maps.Clone(w.expansions), last: w.last}
}

func (w *DomainWatcher) Activations(playerID string) int { return w.expansions[playerID] }

// Last is the card id of the most recent domain, or "".
func (w *DomainWatcher) Last() string { return w.last }
