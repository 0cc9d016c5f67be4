package order

import (
	"github.com/ianw11/gamebase/pkg/domain"
)

// Source is the randomness Shuffle needs. *dice.Random satisfies it.
type Source interface {
	IntN(n int) int
}

// Shuffle returns a uniformly shuffled copy of players (Fisher-Yates).
func Shuffle(players []domain.Player, rng Source) []domain.Player {
	out := append([]domain.Player(nil), players...)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// RotateFrom returns a copy of players that starts at index starter and
// keeps the original order after it, wrapping around.
func RotateFrom(players []domain.Player, starter int) ([]domain.Player, error) {
	if starter < 0 || starter >= len(players) {
		return nil, &domain.IndexError{Index: starter, Len: len(players)}
	}
	out := make([]domain.Player, 0, len(players))
	out = append(out, players[starter:]...)
	out = append(out, players[:starter]...)
	return out, nil
}
