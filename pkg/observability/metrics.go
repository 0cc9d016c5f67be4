package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gamebase"

// Metrics is a GameStateListener that exports lifecycle counters.
type Metrics struct {
	games          prometheus.Counter
	roundsStarted  prometheus.Counter
	roundsFinished prometheus.Counter
	turnAttempts   prometheus.Counter
	turns          prometheus.Counter
	round          prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves registration to a later call to Register.
// labels are attached to every series, e.g. {"game": "nim"}.
func NewMetrics(reg prometheus.Registerer, labels prometheus.Labels) (*Metrics, error) {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
	}

	m := &Metrics{
		games:          counter("games_started_total", "Games that passed pre-game initialisation."),
		roundsStarted:  counter("rounds_started_total", "Rounds started."),
		roundsFinished: counter("rounds_finished_total", "Rounds followed by another round."),
		turnAttempts:   counter("turn_attempts_total", "Turn attempts, legal or not."),
		turns:          counter("turns_total", "Turns recorded in the history."),
		round: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "round",
			Help:        "Rounds started in the current game.",
			ConstLabels: labels,
		}),
	}

	if reg != nil {
		if err := m.Register(reg); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Register adds the collectors to reg. Either all of them are registered or,
// on error, none is left behind.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := m.collectors()
	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			for _, done := range collectors[:i] {
				reg.Unregister(done)
			}
			return err
		}
	}
	return nil
}

// Unregister removes the collectors from reg.
func (m *Metrics) Unregister(reg prometheus.Registerer) {
	for _, c := range m.collectors() {
		reg.Unregister(c)
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.games, m.roundsStarted, m.roundsFinished, m.turnAttempts, m.turns, m.round}
}

func (m *Metrics) OnPreGameInit() {
	m.games.Inc()
	m.round.Set(0)
}

func (m *Metrics) OnPreRound() {
	m.roundsStarted.Inc()
	m.round.Inc()
}

func (m *Metrics) OnPostRound() { m.roundsFinished.Inc() }
func (m *Metrics) OnPreTurn()   { m.turnAttempts.Inc() }
func (m *Metrics) OnPostTurn()  { m.turns.Inc() }
