package dice

import "fmt"

// Die is an n-sided die. Its value is 0 until the first roll.
type Die struct {
	sides int
	rng   *Random
	value int
}

// NewDie creates a die with the given number of sides drawing from rng.
func NewDie(sides int, rng *Random) (*Die, error) {
	if sides < 1 {
		return nil, fmt.Errorf("die needs at least one side, got %d", sides)
	}
	if rng == nil {
		return nil, fmt.Errorf("die needs a random source")
	}
	return &Die{sides: sides, rng: rng}, nil
}

// Roll rolls the die, stores and returns the face value in [1, sides].
func (d *Die) Roll() int {
	d.value = d.rng.IntN(d.sides) + 1
	return d.value
}

// Value returns the face shown since the last roll.
func (d *Die) Value() int { return d.value }

// Sides returns the number of faces.
func (d *Die) Sides() int { return d.sides }
