package game

import (
	"strings"

	"github.com/cursedclash/clash-server-go/internal/game/rules"
)

const maxDiscard = 2

// discardAndRedraw swaps one or two hand cards for fresh draws, once per
// round and only on the player's own turn.
func (m *Match) discardAndRedraw(playerID string, instanceIDs []string) error {
	if m.finished() {
		return illegal("match %s is finished", m.ID)
	}
	p, _ := m.player(playerID)
	if p == nil {
		return notFound("player %s is not in match %s", playerID, m.ID)
	}
	if !p.Alive() {
		return illegal("%s is defeated", p.Name)
	}
	if m.Current() != p {
		return illegal("it is not %s's turn", p.Name)
	}
	if p.LastDiscardRound == m.Round() {
		return illegal("%s already discarded this round", p.Name)
	}
	if len(instanceIDs) < 1 || len(instanceIDs) > maxDiscard {
		return illegal("discard 1 to %d cards, not %d", maxDiscard, len(instanceIDs))
	}
	seen := make(map[string]bool, len(instanceIDs))
	for _, id := range instanceIDs {
		if seen[id] {
			return illegal("card %s listed twice", id)
		}
		seen[id] = true
		if p.handIndex(id) < 0 {
			return illegal("card %s is not in %s's hand", id, p.Name)
		}
	}

	names := make([]string, 0, len(instanceIDs))
	for _, id := range instanceIDs {
		card, _ := p.takeFromHand(id)
		p.Discard = append(p.Discard, card)
		names = append(names, card.Name)
	}
	p.LastDiscardRound = m.Round()
	m.record(m.event(rules.EventCardsDiscarded, p, p, len(names)),
		"%s discards %s", p.Name, strings.Join(names, ", "))

	if n := m.draw(p, len(names)); n > 0 {
		m.record(m.event(rules.EventCardsDrawn, p, p, n), "%s draws %d card(s)", p.Name, n)
	}
	return nil
}
