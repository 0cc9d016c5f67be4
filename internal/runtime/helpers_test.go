package runtime_test

import (
	"github.com/ianw11/gamebase/pkg/domain"
	"github.com/ianw11/gamebase/pkg/turn"
)

// moveAction is a one-step chain that records the player's name.
type moveAction struct {
	name   string
	result domain.ActionResult
}

func (a *moveAction) Tag() string                               { return "move" }
func (a *moveAction) Do(domain.InputMethod) domain.ActionResult { return a.result }
func (a *moveAction) Next() domain.TurnAction                   { return nil }
func (a *moveAction) Data() any                                 { return a.name }

func player(name string) *domain.BasicPlayer {
	return playerWithResult(name, domain.Success)
}

func playerWithResult(name string, result domain.ActionResult) *domain.BasicPlayer {
	return &domain.BasicPlayer{
		PlayerID:   name,
		PlayerName: name,
		Initial: func() domain.TurnAction {
			return &moveAction{name: name, result: result}
		},
	}
}

func players(names ...string) []domain.Player {
	out := make([]domain.Player, len(names))
	for i, n := range names {
		out[i] = player(n)
	}
	return out
}

// tableRules ends a round after every seat moved once and the game after
// a fixed number of rounds (or accepted turns).
type tableRules struct {
	domain.NopListener

	min, max   int
	seats      int
	rounds     int
	stopAfter  int
	accept     func(t *turn.Turn) bool
	processed  []*turn.Turn
	rejected   int
	roundMoves int
	preRounds  int
}

func newTableRules(seats, rounds int) *tableRules {
	return &tableRules{min: 2, max: 4, seats: seats, rounds: rounds}
}

func (r *tableRules) MinPlayers() int { return r.min }
func (r *tableRules) MaxPlayers() int { return r.max }

func (r *tableRules) ProcessTurn(t *turn.Turn) bool {
	if r.accept != nil && !r.accept(t) {
		r.rejected++
		return false
	}
	r.processed = append(r.processed, t)
	r.roundMoves++
	return true
}

func (r *tableRules) IsRoundOver() bool { return r.roundMoves >= r.seats }

func (r *tableRules) IsGameOver() bool {
	limit := r.rounds * r.seats
	if r.stopAfter > 0 {
		limit = r.stopAfter
	}
	return len(r.processed) >= limit
}

func (r *tableRules) OnPreRound() {
	r.preRounds++
	r.roundMoves = 0
}

func (r *tableRules) movers() []string {
	out := make([]string, len(r.processed))
	for i, t := range r.processed {
		out[i] = t.Player().Name()
	}
	return out
}

// recorder logs every lifecycle event it sees.
type recorder struct {
	events []domain.EventType
}

func (r *recorder) OnPreGameInit() { r.events = append(r.events, domain.EventPreGameInit) }
func (r *recorder) OnPreRound()    { r.events = append(r.events, domain.EventPreRound) }
func (r *recorder) OnPostRound()   { r.events = append(r.events, domain.EventPostRound) }
func (r *recorder) OnPreTurn()     { r.events = append(r.events, domain.EventPreTurn) }
func (r *recorder) OnPostTurn()    { r.events = append(r.events, domain.EventPostTurn) }
