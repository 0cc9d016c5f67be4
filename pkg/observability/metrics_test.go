package observability

import (
	"testing"

	"github.com/ianw11/gamebase/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountsEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg, prometheus.Labels{"game": "test"})
	require.NoError(t, err)

	var l domain.GameStateListener = m
	for _, ev := range []domain.EventType{
		domain.EventPreGameInit,
		domain.EventPreRound,
		domain.EventPreTurn, domain.EventPostTurn,
		domain.EventPreTurn,
		domain.EventPreTurn, domain.EventPostTurn,
		domain.EventPostRound,
		domain.EventPreRound,
		domain.EventPreTurn, domain.EventPostTurn,
	} {
		domain.Notify(l, ev)
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(m.games))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.roundsStarted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.roundsFinished))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.turnAttempts))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.turns))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.round))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestMetrics_DoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg, nil)
	require.NoError(t, err)

	_, err = NewMetrics(reg, nil)
	assert.Error(t, err)
}

func TestMetrics_FailedRegistrationLeavesNothingBehind(t *testing.T) {
	reg := prometheus.NewRegistry()
	labels := prometheus.Labels{"game": "test"}
	blocker := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   namespace,
		Name:        "turns_total",
		Help:        "Turns recorded in the history.",
		ConstLabels: labels,
	})
	require.NoError(t, reg.Register(blocker))

	_, err := NewMetrics(reg, labels)
	require.Error(t, err)

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "only the blocking counter may remain")

	reg.Unregister(blocker)
	_, err = NewMetrics(reg, labels)
	assert.NoError(t, err)
}

func TestMetrics_DeferredRegistration(t *testing.T) {
	m, err := NewMetrics(nil, nil)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))
	assert.Error(t, m.Register(reg))

	m.Unregister(reg)
	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Zero(t, n)
}
