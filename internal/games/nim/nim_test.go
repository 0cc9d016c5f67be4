package nim

import (
	"context"
	"testing"

	"github.com/ianw11/gamebase"
	"github.com/ianw11/gamebase/pkg/dice"
	"github.com/ianw11/gamebase/pkg/domain"
	"github.com/ianw11/gamebase/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, pile, maxTake int, inputs ...domain.InputMethod) (*Rules, []domain.Player) {
	t.Helper()
	rules, err := NewRules(len(inputs), pile, maxTake)
	require.NoError(t, err)
	chain, err := NewChain(rules)
	require.NoError(t, err)

	names := []string{"Alice", "Bob", "Carol", "Dave"}
	players := make([]domain.Player, len(inputs))
	for i, in := range inputs {
		players[i] = NewPlayer(names[i], names[i], in, chain)
	}
	return rules, players
}

func TestNim_ScriptedGame(t *testing.T) {
	alice := runner.NewScriptedPrompter("3", "y")
	bob := runner.NewScriptedPrompter(
		"5", "y", // more than the pile holds, rejected by the rules
		"2", "n", // changes his mind
		"1", "y",
		"1", "y", // opens round two and takes the last stone
	)
	rules, players := setup(t, 5, 3, alice, bob)

	eng, err := gamebase.New(players, rules)
	require.NoError(t, err)
	require.NoError(t, eng.RunGame(context.Background()))

	assert.Equal(t, 0, rules.Pile())
	require.NotNil(t, rules.Winner())
	assert.Equal(t, "Bob", rules.Winner().Name())
	assert.Zero(t, alice.Remaining())
	assert.Zero(t, bob.Remaining())

	assert.Equal(t, []Move{
		{Round: 1, Player: "Alice", Take: 3, PileAfter: 2},
		{Round: 1, Player: "Bob", Take: 1, PileAfter: 1},
		{Round: 2, Player: "Bob", Take: 1, PileAfter: 0},
	}, rules.Moves())
	assert.Len(t, eng.Turns(), 3)
}

func TestNim_RetryOnGarbage(t *testing.T) {
	alice := runner.NewScriptedPrompter("lots", "0", "2", "maybe", "y")
	bob := runner.NewScriptedPrompter()
	rules, players := setup(t, 2, 3, alice, bob)

	eng, err := gamebase.New(players, rules)
	require.NoError(t, err)
	require.NoError(t, eng.RunGame(context.Background()))

	assert.Equal(t, "Alice", rules.Winner().Name())
	assert.Zero(t, alice.Remaining())
}

func TestNim_ConcedingIsAnIllegalAttempt(t *testing.T) {
	alice := runner.NewScriptedPrompter("q", "1", "q")
	bob := runner.NewScriptedPrompter()
	rules, players := setup(t, 3, 3, alice, bob)

	eng, err := gamebase.New(players, rules, gamebase.WithMaxIllegalTurns(2))
	require.NoError(t, err)

	err = eng.RunGame(context.Background())
	assert.ErrorIs(t, err, domain.ErrTooManyIllegalTurns)
	assert.Equal(t, 3, rules.Pile())
}

func TestNim_MissingInputIsBounded(t *testing.T) {
	rules, players := setup(t, 3, 3, nil, nil)

	eng, err := gamebase.New(players, rules, gamebase.WithMaxIllegalTurns(1))
	require.NoError(t, err)
	assert.ErrorIs(t, eng.RunGame(context.Background()), domain.ErrTooManyIllegalTurns)
}

func TestNim_BotsPlayToTheEnd(t *testing.T) {
	rng := dice.NewRandom(7)
	rules, players := setup(t, DefaultPile, DefaultMaxTake,
		NewBot(LevelRandom, DefaultMaxTake, rng),
		NewBot(LevelPerfect, DefaultMaxTake, rng),
		NewBot(LevelRandom, DefaultMaxTake, rng),
	)

	eng, err := gamebase.New(players, rules, gamebase.WithMaxIllegalTurns(1))
	require.NoError(t, err)
	require.NoError(t, eng.RunGame(context.Background()))

	total := 0
	for _, m := range rules.Moves() {
		assert.True(t, m.Take >= 1 && m.Take <= DefaultMaxTake, "take %d", m.Take)
		total += m.Take
	}
	assert.Equal(t, DefaultPile, total)
	assert.NotNil(t, rules.Winner())
}

func TestNim_PlayerCount(t *testing.T) {
	rules, players := setup(t, 5, 3, runner.NewScriptedPrompter())
	_, err := gamebase.New(players, rules)
	assert.ErrorIs(t, err, domain.ErrInvalidPlayerCount)
}

func TestRules_Legal(t *testing.T) {
	rules, err := NewRules(2, 2, 3)
	require.NoError(t, err)

	assert.False(t, rules.Legal(0))
	assert.True(t, rules.Legal(1))
	assert.True(t, rules.Legal(2))
	assert.False(t, rules.Legal(3), "more than the pile")
	assert.Equal(t, 2, rules.Limit())
}

func TestNewRules_Invalid(t *testing.T) {
	_, err := NewRules(2, 0, 3)
	assert.Error(t, err)
	_, err = NewRules(2, 10, 0)
	assert.Error(t, err)
}

func TestBot_Perfect(t *testing.T) {
	b := NewBot(LevelPerfect, 3, dice.NewRandom(1))
	assert.Equal(t, 1, b.Take(9, 3))
	assert.Equal(t, 3, b.Take(7, 3))

	n := b.Take(8, 3)
	assert.True(t, n >= 1 && n <= 3)
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("perfect")
	require.NoError(t, err)
	assert.Equal(t, LevelPerfect, l)

	l, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, LevelRandom, l)

	_, err = ParseLevel("god")
	assert.Error(t, err)
}
