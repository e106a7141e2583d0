package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/cursedclash/clash-server-go/internal/game/catalog"
	"github.com/cursedclash/clash-server-go/internal/game/effects"
	"github.com/cursedclash/clash-server-go/internal/game/rules"
	"github.com/cursedclash/clash-server-go/internal/game/targeting"
	"github.com/cursedclash/clash-server-go/internal/game/watchers"
)

// Lifecycle of a match.
type Lifecycle int

const (
	LifecycleActive Lifecycle = iota
	LifecycleFinished
)

var lifecycleNames = map[Lifecycle]string{
	LifecycleActive:   "ACTIVE",
	LifecycleFinished: "FINISHED",
}

func (l Lifecycle) String() string {
	if name, ok := lifecycleNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LIFECYCLE_%d", int(l))
}

// Rules are the global numbers shared by every match of an engine.
type Rules struct {
	HandSize     int
	RegenPercent int
}

// DefaultRules returns hand cap 5 and 20% regeneration per round.
func DefaultRules() Rules {
	return Rules{HandSize: 5, RegenPercent: 20}
}

// ActiveDomain marks the single domain expansion in effect.
type ActiveDomain struct {
	CardID  catalog.CardID
	OwnerID string
	// Effect is the signature effect the domain applied.
	Effect effects.Kind
}

// Match is the complete state of one game. It is only touched while its
// store entry is locked.
type Match struct {
	ID        string
	Seats     []*Player
	Training  bool
	Lifecycle Lifecycle
	WinnerID  string
	Domain    *ActiveDomain
	Log       []string
	CreatedAt time.Time

	turn     *rules.TurnManager
	cfg      Rules
	catalog  *catalog.Catalog
	rng      *rand.Rand
	watchers *rules.Watchers
	pending  []rules.Event
	dummies  int
}

func newMatch(id string, cat *catalog.Catalog, cfg Rules, seed uint64, training bool) *Match {
	m := &Match{
		ID:        id,
		Seats:     make([]*Player, 0),
		Training:  training,
		Lifecycle: LifecycleActive,
		Log:       make([]string, 0),
		CreatedAt: time.Now(),
		turn:      rules.NewTurnManager(0),
		cfg:       cfg,
		catalog:   cat,
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		watchers:  rules.NewWatchers(),
	}
	watchers.Install(m.watchers)
	return m
}

// Len implements targeting.Seating.
func (m *Match) Len() int {
	return len(m.Seats)
}

// Alive implements targeting.Seating.
func (m *Match) Alive(seat int) bool {
	return seat >= 0 && seat < len(m.Seats) && m.Seats[seat].Alive()
}

// FindPlayerForTarget implements targeting.TargetPlayerAccessor.
func (m *Match) FindPlayerForTarget(playerID string) (targeting.TargetPlayerInfo, bool) {
	p, _ := m.player(playerID)
	if p == nil {
		return targeting.TargetPlayerInfo{}, false
	}
	return targeting.TargetPlayerInfo{PlayerID: p.ID, Name: p.Name, Defeated: !p.Alive()}, true
}

func (m *Match) player(id string) (*Player, int) {
	for i, p := range m.Seats {
		if p.ID == id {
			return p, i
		}
	}
	return nil, -1
}

func (m *Match) seatOf(p *Player) int {
	_, idx := m.player(p.ID)
	return idx
}

// Current returns the player holding the turn.
func (m *Match) Current() *Player {
	seat := m.turn.Seat()
	if seat < 0 || seat >= len(m.Seats) {
		return nil
	}
	return m.Seats[seat]
}

// Round returns the current round number, starting at 1.
func (m *Match) Round() int {
	return m.turn.Round()
}

func (m *Match) finished() bool {
	return m.Lifecycle == LifecycleFinished
}

func (m *Match) opponentsOf(p *Player) []*Player {
	out := make([]*Player, 0, len(m.Seats))
	for _, other := range m.Seats {
		if other.ID != p.ID && other.Alive() {
			out = append(out, other)
		}
	}
	return out
}

func (m *Match) leftOf(p *Player) *Player {
	if idx := targeting.LeftOf(m, m.seatOf(p)); idx >= 0 {
		return m.Seats[idx]
	}
	return nil
}

func (m *Match) rightOf(p *Player) *Player {
	if idx := targeting.RightOf(m, m.seatOf(p)); idx >= 0 {
		return m.Seats[idx]
	}
	return nil
}

func (m *Match) neighbours(p *Player) []*Player {
	idxs := targeting.Neighbours(m, m.seatOf(p))
	out := make([]*Player, 0, len(idxs))
	for _, idx := range idxs {
		out = append(out, m.Seats[idx])
	}
	return out
}

func (m *Match) adjacent(a, b *Player) bool {
	return targeting.Adjacent(m, m.seatOf(a), m.seatOf(b))
}

func (m *Match) randomOpponents(p *Player, k int) []*Player {
	opps := m.opponentsOf(p)
	ids := make([]string, 0, len(opps))
	for _, o := range opps {
		ids = append(ids, o.ID)
	}
	picked := targeting.RandomSubset(m.rng, ids, k)
	out := make([]*Player, 0, len(picked))
	for _, id := range picked {
		target, _ := m.player(id)
		out = append(out, target)
	}
	return out
}

func (m *Match) logf(format string, args ...interface{}) string {
	line := fmt.Sprintf(format, args...)
	m.Log = append(m.Log, line)
	return line
}

// record appends a log line and queues evt with the same description.
// Watchers see the event immediately; bus listeners after the lock is released.
func (m *Match) record(evt rules.Event, format string, args ...interface{}) {
	evt.MatchID = m.ID
	evt.Description = m.logf(format, args...)
	m.watchers.Observe(evt)
	m.pending = append(m.pending, evt)
}

func (m *Match) event(t rules.EventType, target, source *Player, amount int) rules.Event {
	var targetID, sourceID string
	if target != nil {
		targetID = target.ID
	}
	if source != nil {
		sourceID = source.ID
	}
	return rules.NewEventWithAmount(t, m.ID, targetID, sourceID, amount)
}

func (m *Match) drainEvents() []rules.Event {
	out := m.pending
	m.pending = nil
	return out
}

func (m *Match) handCap(p *Player) int {
	limit := m.cfg.HandSize
	if p.Character.HandSize > 0 {
		limit = p.Character.HandSize
	}
	if p.Effects.Has(effects.KindTrueMutualLove) {
		limit = 8
	}
	return limit
}

func (m *Match) shuffle(cards []CardInstance) {
	m.rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

// draw moves up to n cards from deck to hand, reshuffling the discard pile
// into the deck when it runs out. It returns the number drawn.
func (m *Match) draw(p *Player, n int) int {
	drawn := 0
	for drawn < n {
		if len(p.Deck) == 0 {
			if len(p.Discard) == 0 {
				break
			}
			p.Deck = append(p.Deck, p.Discard...)
			p.Discard = p.Discard[:0]
			m.shuffle(p.Deck)
			m.logf("%s shuffles the discard pile into the deck", p.Name)
		}
		last := len(p.Deck) - 1
		p.Hand = append(p.Hand, p.Deck[last])
		p.Deck = p.Deck[:last]
		drawn++
	}
	return drawn
}

func (m *Match) drawToCap(p *Player) {
	missing := m.handCap(p) - len(p.Hand)
	if missing <= 0 {
		return
	}
	if n := m.draw(p, missing); n > 0 {
		m.record(m.event(rules.EventCardsDrawn, p, p, n), "%s draws %d card(s)", p.Name, n)
	}
}

func (m *Match) defeat(p *Player, reason string) {
	if !p.Alive() {
		return
	}
	p.Status = StatusDefeated
	if p.HP > 0 {
		p.HP = 0
	}
	evt := m.event(rules.EventPlayerDefeated, p, nil, 0)
	evt.Data = reason
	m.record(evt, "%s is defeated (%s)", p.Name, reason)
	m.settleDomain()
}

// checkWinner finishes the match when the end condition holds. Training
// matches only end once no real player is left.
func (m *Match) checkWinner() bool {
	if m.finished() {
		return true
	}
	var alive []*Player
	realAlive := 0
	for _, p := range m.Seats {
		if !p.Alive() {
			continue
		}
		alive = append(alive, p)
		if !p.Dummy {
			realAlive++
		}
	}

	if m.Training {
		if realAlive > 0 {
			return false
		}
	} else if len(alive) > 1 {
		return false
	}

	m.Lifecycle = LifecycleFinished
	m.turn.Finish()
	if !m.Training && len(alive) == 1 {
		m.WinnerID = alive[0].ID
		m.record(m.event(rules.EventMatchFinished, alive[0], nil, 0), "%s wins the match", alive[0].Name)
	} else {
		m.record(m.event(rules.EventMatchFinished, nil, nil, 0), "the match ends without a winner")
	}
	return true
}
