package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/ianw11/gamebase/internal/logging"
	"github.com/ianw11/gamebase/pkg/domain"
	"github.com/ianw11/gamebase/pkg/history"
	"github.com/ianw11/gamebase/pkg/order"
	"github.com/ianw11/gamebase/pkg/turn"
)

// Rules is the game-specific half of the engine. The engine owns the loop;
// Rules decides what a turn means and when rounds and games end.
// If a Rules value also implements domain.GameStateListener it is subscribed
// to the lifecycle right after the player order manager.
type Rules interface {
	MinPlayers() int
	MaxPlayers() int

	// ProcessTurn applies a resolved turn to the game state and reports
	// whether it was legal. Illegal turns are not recorded and the same
	// player is asked again.
	ProcessTurn(t *turn.Turn) bool

	IsRoundOver() bool
	IsGameOver() bool
}

// PlayerBounds implements the player count half of Rules with fixed values.
// Embed it in a rules type.
type PlayerBounds struct {
	Min, Max int
}

func (b PlayerBounds) MinPlayers() int { return b.Min }
func (b PlayerBounds) MaxPlayers() int { return b.Max }

// Phase is the engine's position in the game lifecycle.
type Phase string

const (
	PhasePreGame   Phase = "pre_game"
	PhasePreRound  Phase = "pre_round"
	PhaseTurnLoop  Phase = "turn_loop"
	PhasePostRound Phase = "post_round"
	PhaseGameOver  Phase = "game_over"
)

// Engine runs the game/round/turn loop. It is single threaded: RunGame,
// turn resolution and listener dispatch all happen on the calling goroutine.
type Engine struct {
	rules     Rules
	order     *order.Manager
	history   *history.Tree
	listeners []domain.GameStateListener

	logger          *slog.Logger
	gameID          string
	maxIllegalTurns int

	round   int
	phase   Phase
	started bool
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithGameID sets the identifier attached to every log record.
func WithGameID(id string) EngineOption {
	return func(e *Engine) {
		e.gameID = id
	}
}

// WithMaxIllegalTurns bounds the consecutive illegal attempts of a seat.
// Zero, the default, retries forever.
func WithMaxIllegalTurns(n int) EngineOption {
	return func(e *Engine) {
		e.maxIllegalTurns = n
	}
}

// WithListeners subscribes listeners after the built-in ones.
func WithListeners(listeners ...domain.GameStateListener) EngineOption {
	return func(e *Engine) {
		e.listeners = append(e.listeners, listeners...)
	}
}

// NewEngine seats players and prepares a game governed by rules.
func NewEngine(players []domain.Player, rules Rules, opts ...EngineOption) (*Engine, error) {
	if rules == nil {
		return nil, fmt.Errorf("rules are required")
	}
	if n := len(players); n < rules.MinPlayers() || n > rules.MaxPlayers() {
		return nil, &domain.PlayerCountError{Got: n, Min: rules.MinPlayers(), Max: rules.MaxPlayers()}
	}

	om, err := order.NewManager(players)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		rules:   rules,
		order:   om,
		history: history.New(),
		round:   1,
		phase:   PhasePreGame,
	}

	e.listeners = append(e.listeners, om)
	if l, ok := rules.(domain.GameStateListener); ok {
		e.listeners = append(e.listeners, l)
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = logging.NewNop()
	}
	e.logger = e.logger.With("game_id", e.gameID)

	return e, nil
}

// RunGame drives the game to completion. It returns nil once the rules
// declare the game over. A transition error from an action chain, an
// exhausted illegal turn budget or a cancelled ctx stops the game early.
// ctx is only checked between turn attempts.
func (e *Engine) RunGame(ctx context.Context) error {
	if e.started {
		return domain.ErrGameStarted
	}
	e.started = true

	e.logger.InfoContext(ctx, "game started", "players", e.order.NumPlayers())

	e.phase = PhasePreGame
	e.notify(ctx, domain.EventPreGameInit)

	for !e.rules.IsGameOver() {
		e.phase = PhasePreRound
		e.notify(ctx, domain.EventPreRound)

		e.phase = PhaseTurnLoop
		if err := e.runRound(ctx); err != nil {
			e.logger.ErrorContext(ctx, "game aborted", "round", e.round, "err", err)
			return err
		}

		e.round++

		if e.rules.IsGameOver() {
			break
		}
		e.phase = PhasePostRound
		e.notify(ctx, domain.EventPostRound)
	}

	e.phase = PhaseGameOver
	e.logger.InfoContext(ctx, "game over", "rounds", e.round-1, "turns", e.history.Len())
	return nil
}

func (e *Engine) runRound(ctx context.Context) error {
	illegal := 0
	for !e.rules.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return err
		}

		e.notify(ctx, domain.EventPreTurn)

		player := e.order.CurrentPlayer()
		t := turn.New(e.round, player)
		ok, err := t.Execute()
		if err != nil {
			return fmt.Errorf("turn of %s in round %d: %w", player.Name(), e.round, err)
		}

		if !ok || !e.rules.ProcessTurn(t) {
			illegal++
			e.logger.DebugContext(ctx, "illegal turn", "round", e.round, "player", player.ID(), "attempt", illegal, "resolved", ok)
			if e.maxIllegalTurns > 0 && illegal >= e.maxIllegalTurns {
				return fmt.Errorf("%w: %s made %d illegal attempts in round %d",
					domain.ErrTooManyIllegalTurns, player.Name(), illegal, e.round)
			}
			continue
		}

		illegal = 0
		e.history.AddTurn(t)
		e.logger.DebugContext(ctx, "turn recorded", "round", e.round, "player", player.ID(), "turn", t.String())
		e.notify(ctx, domain.EventPostTurn)

		if e.rules.IsRoundOver() {
			return nil
		}
	}
	return nil
}

func (e *Engine) notify(ctx context.Context, event domain.EventType) {
	e.logger.DebugContext(ctx, "lifecycle event", "event", string(event), "round", e.round)
	for _, l := range e.listeners {
		domain.Notify(l, event)
	}
}

// AddListener subscribes l. Listeners are notified in the order they were
// added; adding the same listener twice notifies it twice.
func (e *Engine) AddListener(l domain.GameStateListener) {
	e.listeners = append(e.listeners, l)
}

// RemoveListener drops the earliest registration of l and reports whether
// one was found. Listeners whose dynamic type is not comparable can not be
// removed.
func (e *Engine) RemoveListener(l domain.GameStateListener) bool {
	for i, registered := range e.listeners {
		if sameListener(registered, l) {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func sameListener(a, b domain.GameStateListener) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta == nil || ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// Listeners returns a copy of the subscription list.
func (e *Engine) Listeners() []domain.GameStateListener {
	return append([]domain.GameStateListener(nil), e.listeners...)
}

// CurrentPlayer returns the player whose turn it is.
func (e *Engine) CurrentPlayer() domain.Player { return e.order.CurrentPlayer() }

// NumPlayers returns the number of seated players.
func (e *Engine) NumPlayers() int { return e.order.NumPlayers() }

// Order exposes the player order manager.
func (e *Engine) Order() *order.Manager { return e.order }

// History returns the tree of recorded turns.
func (e *Engine) History() *history.Tree { return e.history }

// Turns returns the recorded turns from the first one to the history cursor.
func (e *Engine) Turns() []*turn.Turn { return e.history.Path() }

// Round returns the current round number, starting at 1. After the game it
// is one past the last round played.
func (e *Engine) Round() int { return e.round }

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase { return e.phase }

// GameID returns the identifier used in log records.
func (e *Engine) GameID() string { return e.gameID }
