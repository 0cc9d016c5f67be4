package nim

import (
	"fmt"

	"github.com/ianw11/gamebase/pkg/dice"
)

// Level selects how well a bot plays.
type Level int

const (
	LevelRandom Level = iota
	LevelPerfect
)

// ParseLevel maps "random" and "perfect" to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "", "random":
		return LevelRandom, nil
	case "perfect":
		return LevelPerfect, nil
	default:
		return 0, fmt.Errorf("unknown bot level: %q", s)
	}
}

// Bot is a Strategy rolling dice for its moves. A perfect bot leaves a
// multiple of maxTake+1 stones whenever it can.
type Bot struct {
	level   Level
	maxTake int
	rng     *dice.Random
}

// NewBot creates a bot drawing from rng.
func NewBot(level Level, maxTake int, rng *dice.Random) *Bot {
	return &Bot{level: level, maxTake: maxTake, rng: rng}
}

func (b *Bot) Take(pile, limit int) int {
	if b.level == LevelPerfect {
		if n := pile % (b.maxTake + 1); n != 0 && n <= limit {
			return n
		}
	}
	die, err := dice.NewDie(limit, b.rng)
	if err != nil {
		return 1
	}
	return die.Roll()
}
