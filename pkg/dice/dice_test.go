package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom_ResetReplaysSequence(t *testing.T) {
	r := NewRandom(42)
	first := []int{r.IntN(100), r.IntN(100), r.IntN(100)}

	r.Reset()
	second := []int{r.IntN(100), r.IntN(100), r.IntN(100)}
	assert.Equal(t, first, second)
	assert.Equal(t, uint64(42), r.Seed())
}

func TestRandom_SameSeedSameSequence(t *testing.T) {
	a, b := NewRandom(7), NewRandom(7)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Int(), b.Int())
	}
}

func TestDie_RollStaysInRange(t *testing.T) {
	d, err := NewDie(6, NewRandom(1))
	require.NoError(t, err)
	assert.Equal(t, 0, d.Value())
	assert.Equal(t, 6, d.Sides())

	seen := map[int]bool{}
	for i := 0; i < 600; i++ {
		v := d.Roll()
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 6)
		assert.Equal(t, v, d.Value())
		seen[v] = true
	}
	assert.Len(t, seen, 6)
}

func TestNewDie_Invalid(t *testing.T) {
	_, err := NewDie(0, NewRandom(1))
	assert.Error(t, err)
	_, err = NewDie(6, nil)
	assert.Error(t, err)
}
