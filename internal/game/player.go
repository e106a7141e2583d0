package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cursedclash/clash-server-go/internal/game/catalog"
	"github.com/cursedclash/clash-server-go/internal/game/counters"
	"github.com/cursedclash/clash-server-go/internal/game/effects"
)

// PlayerStatus is ALIVE or DEFEATED.
type PlayerStatus int

const (
	StatusAlive PlayerStatus = iota
	StatusDefeated
)

var playerStatusNames = map[PlayerStatus]string{
	StatusAlive:    "ALIVE",
	StatusDefeated: "DEFEATED",
}

func (s PlayerStatus) String() string {
	if name, ok := playerStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("STATUS_%d", int(s))
}

// CardInstance is one physical card owned by a player. The embedded Card is a
// private copy of the catalog definition, so its cost can differ (copies).
type CardInstance struct {
	InstanceID string
	catalog.Card
	// Copied marks cards cloned by Yuta's passive.
	Copied bool
}

func newCardInstance(card catalog.Card) CardInstance {
	return CardInstance{InstanceID: uuid.NewString(), Card: card}
}

// Player is the runtime state of one seat.
type Player struct {
	ID        string
	Name      string
	Character catalog.Character

	HP        int
	MaxHP     int
	Energy    int
	MaxEnergy int
	Block     int

	Hand    []CardInstance
	Deck    []CardInstance
	Discard []CardInstance

	Effects *effects.List
	Status  PlayerStatus
	Flags   *counters.Counters

	// LastDiscardRound is the round of the last discard-and-redraw, 0 if never.
	LastDiscardRound int
	Dummy            bool
}

func newPlayer(id, name string, ch catalog.Character) *Player {
	return &Player{
		ID:        id,
		Name:      name,
		Character: ch,
		HP:        ch.MaxHP,
		MaxHP:     ch.MaxHP,
		Energy:    ch.MaxEnergy,
		MaxEnergy: ch.MaxEnergy,
		Hand:      make([]CardInstance, 0),
		Deck:      make([]CardInstance, 0),
		Discard:   make([]CardInstance, 0),
		Effects:   effects.NewList(),
		Flags:     counters.NewCounters(),
	}
}

// Alive reports whether the player can still act and be targeted.
func (p *Player) Alive() bool {
	return p.Status == StatusAlive
}

// Is reports whether the player plays the given character.
func (p *Player) Is(id catalog.CharacterID) bool {
	return p.Character.ID == id
}

// Souls returns the Distorted Soul count.
func (p *Player) Souls() int {
	return p.Flags.Get(counters.CounterDistortedSouls)
}

func (p *Player) handIndex(instanceID string) int {
	for i, c := range p.Hand {
		if c.InstanceID == instanceID {
			return i
		}
	}
	return -1
}

func (p *Player) takeFromHand(instanceID string) (CardInstance, bool) {
	idx := p.handIndex(instanceID)
	if idx < 0 {
		return CardInstance{}, false
	}
	card := p.Hand[idx]
	p.Hand = append(p.Hand[:idx], p.Hand[idx+1:]...)
	return card, true
}

func (p *Player) takeFromDeck(id catalog.CardID) (CardInstance, bool) {
	for i, c := range p.Deck {
		if c.ID == id {
			p.Deck = append(p.Deck[:i], p.Deck[i+1:]...)
			return c, true
		}
	}
	return CardInstance{}, false
}

func (p *Player) gainEnergy(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := p.Energy
	p.Energy += amount
	if p.Energy > p.MaxEnergy {
		p.Energy = p.MaxEnergy
	}
	return p.Energy - before
}

func (p *Player) heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := p.HP
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	return p.HP - before
}

func (p *Player) gainBlock(amount int) {
	if amount > 0 {
		p.Block += amount
	}
}

// hpPercent compares health across characters with different maxima.
func (p *Player) hpPercent() float64 {
	if p.MaxHP <= 0 {
		return 0
	}
	return float64(p.HP) / float64(p.MaxHP)
}
