// Package nim is a small sample game built on the engine: players take
// turns removing stones from a single pile and whoever takes the last stone
// wins.
package nim

import (
	"fmt"

	"github.com/ianw11/gamebase"
	"github.com/ianw11/gamebase/pkg/domain"
	"github.com/ianw11/gamebase/pkg/turn"
)

const (
	DefaultPile    = 21
	DefaultMaxTake = 3
	MinPlayers     = 2
	MaxPlayers     = 6
)

// Move is one accepted take.
type Move struct {
	Round     int
	Player    string
	Take      int
	PileAfter int
}

// Rules holds the pile and implements gamebase.Rules. It subscribes itself
// to the lifecycle to count the turns of each round.
type Rules struct {
	gamebase.PlayerBounds
	domain.NopListener

	pile    int
	maxTake int
	seats   int

	turnsThisRound int
	moves          []Move
	winner         domain.Player
}

// NewRules creates the rules for seats players around a pile of pile
// stones, taking between 1 and maxTake stones per turn.
func NewRules(seats, pile, maxTake int) (*Rules, error) {
	if pile < 1 {
		return nil, fmt.Errorf("pile must hold at least one stone, got %d", pile)
	}
	if maxTake < 1 {
		return nil, fmt.Errorf("max take must be at least 1, got %d", maxTake)
	}
	return &Rules{
		PlayerBounds: gamebase.PlayerBounds{Min: MinPlayers, Max: MaxPlayers},
		pile:         pile,
		maxTake:      maxTake,
		seats:        seats,
	}, nil
}

// Legal reports whether taking n stones is allowed right now.
func (r *Rules) Legal(n int) bool {
	return n >= 1 && n <= r.maxTake && n <= r.pile
}

func (r *Rules) ProcessTurn(t *turn.Turn) bool {
	take, err := turn.DataAs[int](t, TagTake)
	if err != nil || !r.Legal(take) {
		return false
	}

	r.pile -= take
	r.turnsThisRound++
	r.moves = append(r.moves, Move{
		Round:     t.Round(),
		Player:    t.Player().Name(),
		Take:      take,
		PileAfter: r.pile,
	})
	if r.pile == 0 {
		r.winner = t.Player()
	}
	return true
}

func (r *Rules) IsRoundOver() bool { return r.turnsThisRound >= r.seats }
func (r *Rules) IsGameOver() bool  { return r.pile == 0 }

func (r *Rules) OnPreRound() { r.turnsThisRound = 0 }

// Pile returns the stones left.
func (r *Rules) Pile() int { return r.pile }

// MaxTake returns the most stones a turn may take.
func (r *Rules) MaxTake() int { return r.maxTake }

// Limit returns the most stones the next turn can take.
func (r *Rules) Limit() int { return min(r.maxTake, r.pile) }

// Winner returns the player who took the last stone, or nil while the game runs.
func (r *Rules) Winner() domain.Player { return r.winner }

// Moves returns the accepted moves in play order.
func (r *Rules) Moves() []Move {
	return append([]Move(nil), r.moves...)
}
