package rules

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType names what happened in a match. The string is also the wire value.
type EventType string

const (
	// Match lifecycle
	EventMatchCreated  EventType = "MATCH_CREATED"
	EventMatchFinished EventType = "MATCH_FINISHED"
	EventForfeit       EventType = "FORFEIT"
	EventDummyAdded    EventType = "DUMMY_ADDED"
	EventDummyRemoved  EventType = "DUMMY_REMOVED"

	// Turn events
	EventTurnStarted  EventType = "TURN_STARTED"
	EventTurnEnded    EventType = "TURN_ENDED"
	EventRoundStarted EventType = "ROUND_STARTED"

	// Card events
	EventCardPlayed     EventType = "CARD_PLAYED"
	EventCardsDiscarded EventType = "CARDS_DISCARDED"
	EventCardsDrawn     EventType = "CARDS_DRAWN"
	EventCardCopied     EventType = "CARD_COPIED"
	EventCardCreated    EventType = "CARD_CREATED"

	// Damage and resources
	EventDamageDealt    EventType = "DAMAGE_DEALT"
	EventDamageNegated  EventType = "DAMAGE_NEGATED"
	EventBlockGained    EventType = "BLOCK_GAINED"
	EventHealed         EventType = "HEALED"
	EventResourceGained EventType = "RESOURCE_GAINED"
	EventPlayerDefeated EventType = "PLAYER_DEFEATED"

	// Effects and domains
	EventEffectApplied   EventType = "EFFECT_APPLIED"
	EventEffectExpired   EventType = "EFFECT_EXPIRED"
	EventEffectConsumed  EventType = "EFFECT_CONSUMED"
	EventDomainActivated EventType = "DOMAIN_ACTIVATED"
	EventDomainCleared   EventType = "DOMAIN_CLEARED"
)

// Event is one recorded change to a match. The same value is appended to the
// match log, fed to the match watchers and published on the bus.
type Event struct {
	Type        EventType
	ID          string
	MatchID     string
	TargetID    string // player on the receiving end
	SourceID    string // player who caused it
	PlayerID    string // acting player; defaults to SourceID
	CardID      string
	Amount      int
	Data        string // effect kind, defeat reason, or comma separated targets for CARD_PLAYED
	Timestamp   time.Time
	Metadata    map[string]string
	Description string // mirrors the match log line
}

// NewEvent stamps a fresh id and time on an event of type t.
func NewEvent(t EventType, matchID, targetID, sourceID string) Event {
	return Event{
		Type:      t,
		ID:        uuid.NewString(),
		MatchID:   matchID,
		TargetID:  targetID,
		SourceID:  sourceID,
		PlayerID:  sourceID,
		Timestamp: time.Now(),
		Metadata:  map[string]string{},
	}
}

// NewEventWithAmount is NewEvent with Amount set.
func NewEventWithAmount(t EventType, matchID, targetID, sourceID string, amount int) Event {
	evt := NewEvent(t, matchID, targetID, sourceID)
	evt.Amount = amount
	return evt
}

// Listener receives published events.
type Listener func(Event)

type subscription struct {
	handle int
	only   EventType // empty means every type
	fn     Listener
}

// EventBus delivers events synchronously to its subscribers in the order
// they subscribed.
type EventBus struct {
	mu   sync.RWMutex
	subs []subscription
	next int
}

func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe registers fn for every event. It returns -1 for a nil fn.
func (bus *EventBus) Subscribe(fn Listener) int {
	return bus.add("", fn)
}

// SubscribeTyped registers fn for events of type t only.
func (bus *EventBus) SubscribeTyped(t EventType, fn Listener) int {
	if t == "" {
		return -1
	}
	return bus.add(t, fn)
}

func (bus *EventBus) add(only EventType, fn Listener) int {
	if fn == nil {
		return -1
	}
	bus.mu.Lock()
	defer bus.mu.Unlock()
	h := bus.next
	bus.next++
	bus.subs = append(bus.subs, subscription{handle: h, only: only, fn: fn})
	return h
}

// Unsubscribe removes the subscription behind handle.
func (bus *EventBus) Unsubscribe(handle int) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.subs = slices.DeleteFunc(bus.subs, func(s subscription) bool { return s.handle == handle })
}

// Publish calls every matching subscriber. Subscribers must not subscribe or
// unsubscribe from inside the callback.
func (bus *EventBus) Publish(evt Event) {
	bus.mu.RLock()
	defer bus.mu.RUnlock()
	for _, s := range bus.subs {
		if s.only == "" || s.only == evt.Type {
			s.fn(evt)
		}
	}
}

// PublishBatch publishes events in order.
func (bus *EventBus) PublishBatch(events []Event) {
	for _, evt := range events {
		bus.Publish(evt)
	}
}
