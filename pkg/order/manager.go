// Package order tracks who sits where and whose turn it is.
//
// A Manager listens to the game lifecycle: every PostTurn hands the turn to
// the next seat and every PostRound moves the round opener one seat further,
// so the player who opens a round rotates around the table.
package order

import (
	"fmt"

	"github.com/ianw11/gamebase/pkg/domain"
)

// Manager keeps the seating and the current seat. Its seating never changes
// once built; rearranging seats happens before construction (see Shuffle and
// RotateFrom).
type Manager struct {
	domain.NopListener

	seats   []domain.Player
	starter int
	current int
}

// NewManager seats players in the given order. The first player opens round one.
func NewManager(players []domain.Player) (*Manager, error) {
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: no players to seat", domain.ErrInvalidPlayerCount)
	}
	return &Manager{seats: append([]domain.Player(nil), players...)}, nil
}

// CurrentPlayer returns the player whose turn it is.
func (m *Manager) CurrentPlayer() domain.Player { return m.seats[m.current] }

// NumPlayers returns the number of seats.
func (m *Manager) NumPlayers() int { return len(m.seats) }

// Starter returns the seat index of the player who opened the current round.
func (m *Manager) Starter() int { return m.starter }

// CurrentIndex returns the seat index of the current player.
func (m *Manager) CurrentIndex() int { return m.current }

// Seating returns a copy of the seating order.
func (m *Manager) Seating() []domain.Player {
	return append([]domain.Player(nil), m.seats...)
}

// OnPostRound moves the round opener to the next seat and gives it the turn.
func (m *Manager) OnPostRound() {
	m.starter = (m.starter + 1) % len(m.seats)
	m.current = m.starter
}

// OnPostTurn hands the turn to the next seat.
func (m *Manager) OnPostTurn() {
	m.current = (m.current + 1) % len(m.seats)
}
