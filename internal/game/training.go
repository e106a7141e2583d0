package game

import (
	"fmt"

	"github.com/cursedclash/clash-server-go/internal/game/rules"
)

func (m *Match) addDummy(id string) (*Player, error) {
	if !m.Training {
		return nil, illegal("match %s is not a training match", m.ID)
	}
	if m.finished() {
		return nil, illegal("match %s is finished", m.ID)
	}
	m.dummies++
	d := newPlayer(id, fmt.Sprintf("Training Dummy %d", m.dummies), m.catalog.TrainingDummy())
	d.Dummy = true
	m.Seats = append(m.Seats, d)
	m.record(m.event(rules.EventDummyAdded, d, nil, d.MaxHP), "%s joins the match with %d HP", d.Name, d.MaxHP)
	return d, nil
}

func (m *Match) removeDummy(id string) error {
	if !m.Training {
		return illegal("match %s is not a training match", m.ID)
	}
	d, idx := m.player(id)
	if d == nil {
		return notFound("player %s is not in match %s", id, m.ID)
	}
	if !d.Dummy {
		return illegal("%s is not a training dummy", d.Name)
	}
	seat := m.turn.Seat()
	if idx == seat && !m.finished() {
		return illegal("%s holds the turn", d.Name)
	}

	m.Seats = append(m.Seats[:idx], m.Seats[idx+1:]...)
	if idx < seat {
		m.turn.SetSeat(seat - 1)
	}
	m.record(m.event(rules.EventDummyRemoved, d, nil, 0), "%s is removed from the match", d.Name)
	m.settleDomain()
	return nil
}

// forfeit defeats the player at once. If they held the turn it passes on.
func (m *Match) forfeit(playerID string) error {
	if m.finished() {
		return illegal("match %s is finished", m.ID)
	}
	p, _ := m.player(playerID)
	if p == nil {
		return notFound("player %s is not in match %s", playerID, m.ID)
	}
	if !p.Alive() {
		return illegal("%s is already defeated", p.Name)
	}
	if p.Dummy {
		return illegal("%s cannot forfeit", p.Name)
	}
	holdsTurn := m.Current() == p
	m.record(m.event(rules.EventForfeit, p, p, 0), "%s forfeits", p.Name)
	m.defeat(p, "forfeit")
	if m.checkWinner() {
		return nil
	}
	if holdsTurn {
		m.advance()
	}
	return nil
}
