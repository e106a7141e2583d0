package catalog

import (
	"fmt"
	"sort"
)

// DefaultDummyHP is the HP of a training dummy when no override is configured.
const DefaultDummyHP = 10000

// CardOverride adjusts the balance numbers of one card. Zero fields are ignored.
type CardOverride struct {
	Cost     int `mapstructure:"cost"`
	SoulCost int `mapstructure:"soul_cost"`
}

// CharacterOverride adjusts the base stats of one character. Zero fields are ignored.
type CharacterOverride struct {
	MaxHP     int `mapstructure:"max_hp"`
	MaxEnergy int `mapstructure:"max_energy"`
	HandSize  int `mapstructure:"hand_size"`
}

// Overrides are balance tweaks loaded from configuration at startup.
type Overrides struct {
	Cards      map[string]CardOverride      `mapstructure:"cards"`
	Characters map[string]CharacterOverride `mapstructure:"characters"`
	DummyHP    int                          `mapstructure:"dummy_hp"`
}

// Catalog holds every card and character definition. It is built once at
// startup and never mutated afterwards, so it is safe to share between matches.
type Catalog struct {
	commons    []Card
	cards      map[CardID]Card
	characters map[CharacterID]Character
	order      []CharacterID
	dummy      Character
}

// New builds the default catalog.
func New() *Catalog {
	c, err := NewWithOverrides(Overrides{})
	if err != nil {
		// the built-in tables are static; an error here is a programming mistake
		panic(err)
	}
	return c
}

// NewWithOverrides builds the catalog and applies balance overrides.
func NewWithOverrides(o Overrides) (*Catalog, error) {
	c := &Catalog{
		cards:      make(map[CardID]Card),
		characters: make(map[CharacterID]Character),
	}

	for _, card := range commonCards() {
		if err := c.addCard(card); err != nil {
			return nil, err
		}
	}
	for _, ch := range characters() {
		for _, card := range ch.UniqueCards {
			if err := c.addCard(card); err != nil {
				return nil, err
			}
		}
		c.characters[ch.ID] = ch
		c.order = append(c.order, ch.ID)
	}

	for rawID, override := range o.Cards {
		id := CardID(rawID)
		card, ok := c.cards[id]
		if !ok {
			return nil, fmt.Errorf("override for unknown card %q", rawID)
		}
		if override.Cost > 0 {
			card.Cost = override.Cost
		}
		if override.SoulCost > 0 {
			card.SoulCost = override.SoulCost
		}
		c.cards[id] = card
	}
	for rawID, override := range o.Characters {
		id := CharacterID(rawID)
		ch, ok := c.characters[id]
		if !ok {
			return nil, fmt.Errorf("override for unknown character %q", rawID)
		}
		if override.MaxHP > 0 {
			ch.MaxHP = override.MaxHP
		}
		if override.MaxEnergy > 0 {
			ch.MaxEnergy = override.MaxEnergy
		}
		if override.HandSize > 0 {
			ch.HandSize = override.HandSize
		}
		c.characters[id] = ch
	}

	// Rebuild nested card lists so overridden costs flow into decks.
	c.commons = c.commons[:0]
	for _, card := range commonCards() {
		c.commons = append(c.commons, c.cards[card.ID])
	}
	for id, ch := range c.characters {
		unique := make([]Card, 0, len(ch.UniqueCards))
		for _, card := range ch.UniqueCards {
			unique = append(unique, c.cards[card.ID])
		}
		ch.UniqueCards = unique
		c.characters[id] = ch
	}

	dummyHP := o.DummyHP
	if dummyHP <= 0 {
		dummyHP = DefaultDummyHP
	}
	c.dummy = trainingDummy(dummyHP)
	return c, nil
}

func (c *Catalog) addCard(card Card) error {
	if _, dup := c.cards[card.ID]; dup {
		return fmt.Errorf("duplicate card id %q", card.ID)
	}
	c.cards[card.ID] = card
	return nil
}

// Card returns the definition for id.
func (c *Catalog) Card(id CardID) (Card, bool) {
	card, ok := c.cards[id]
	return card, ok
}

// Character returns the definition for id. The training dummy is not pickable.
func (c *Catalog) Character(id CharacterID) (Character, bool) {
	ch, ok := c.characters[id]
	return ch, ok
}

// Characters returns the pickable characters in roster order.
func (c *Catalog) Characters() []Character {
	out := make([]Character, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.characters[id])
	}
	return out
}

// CommonCards returns the cards every deck starts with.
func (c *Catalog) CommonCards() []Card {
	return append([]Card(nil), c.commons...)
}

// CardIDs returns every card id, sorted.
func (c *Catalog) CardIDs() []CardID {
	ids := make([]CardID, 0, len(c.cards))
	for id := range c.cards {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// DeckFor returns the unshuffled deck list for a character: commons then uniques.
func (c *Catalog) DeckFor(id CharacterID) ([]Card, error) {
	ch, ok := c.characters[id]
	if !ok {
		return nil, fmt.Errorf("unknown character %q", id)
	}
	deck := c.CommonCards()
	deck = append(deck, ch.UniqueCards...)
	if id == CharacterSukuna {
		for i := range deck {
			if deck[i].ID == CardSimpleDomain {
				deck[i].Name = "Hollow Wicker Basket"
			}
		}
	}
	return deck, nil
}

// TrainingDummy returns the dummy character used by training matches.
func (c *Catalog) TrainingDummy() Character {
	return c.dummy
}
