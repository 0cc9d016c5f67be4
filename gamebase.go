package gamebase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/ianw11/gamebase/internal/runtime"
	"github.com/ianw11/gamebase/pkg/domain"
	"github.com/ianw11/gamebase/pkg/history"
	"github.com/ianw11/gamebase/pkg/observability"
	"github.com/ianw11/gamebase/pkg/order"
	"github.com/ianw11/gamebase/pkg/turn"
	"github.com/prometheus/client_golang/prometheus"
)

// Rules is the contract a concrete game implements. See runtime.Rules.
type Rules = runtime.Rules

// PlayerBounds fixes the player count bounds of a Rules implementation.
type PlayerBounds = runtime.PlayerBounds

// Phase is the engine's position in the game lifecycle.
type Phase = runtime.Phase

// Engine is the high-level entry point of the library.
// It wraps the internal runtime and wires the optional collaborators.
type Engine struct {
	runtime *runtime.Engine
	metrics *observability.Metrics
}

type config struct {
	logger          *slog.Logger
	listeners       []domain.GameStateListener
	maxIllegalTurns int
	gameID          string
	registerer      prometheus.Registerer
	metricLabels    prometheus.Labels
	shuffle         order.Source
	firstPlayer     int
	auditLogger     *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*config)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithListeners subscribes listeners after the player order manager and the rules.
func WithListeners(listeners ...domain.GameStateListener) Option {
	return func(c *config) {
		c.listeners = append(c.listeners, listeners...)
	}
}

// WithMaxIllegalTurns makes RunGame fail once a seat has made n illegal
// attempts in a row. The default (0) retries forever.
func WithMaxIllegalTurns(n int) Option {
	return func(c *config) {
		c.maxIllegalTurns = n
	}
}

// WithGameID overrides the generated game identifier used in logs.
func WithGameID(id string) Option {
	return func(c *config) {
		c.gameID = id
	}
}

// WithMetrics registers lifecycle counters with reg and subscribes them.
func WithMetrics(reg prometheus.Registerer, labels prometheus.Labels) Option {
	return func(c *config) {
		c.registerer = reg
		c.metricLabels = labels
	}
}

// WithAuditLog writes one record per lifecycle event to logger.
// The audit listener is subscribed after every other listener.
func WithAuditLog(logger *slog.Logger) Option {
	return func(c *config) {
		c.auditLogger = logger
	}
}

// WithShuffledSeating shuffles the seating with rng before play begins.
func WithShuffledSeating(rng order.Source) Option {
	return func(c *config) {
		c.shuffle = rng
	}
}

// WithFirstPlayer rotates the seating so that the player at index opens the
// first round. It is applied after WithShuffledSeating.
func WithFirstPlayer(index int) Option {
	return func(c *config) {
		c.firstPlayer = index
	}
}

// New builds an engine for players governed by rules. It fails with
// domain.ErrInvalidPlayerCount when the number of players is outside the
// bounds declared by rules.
func New(players []domain.Player, rules Rules, opts ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.gameID == "" {
		cfg.gameID = uuid.NewString()
	}

	seats := players
	if cfg.shuffle != nil {
		seats = order.Shuffle(seats, cfg.shuffle)
	}
	if cfg.firstPlayer != 0 {
		rotated, err := order.RotateFrom(seats, cfg.firstPlayer)
		if err != nil {
			return nil, fmt.Errorf("invalid first player: %w", err)
		}
		seats = rotated
	}

	eng := &Engine{}

	listeners := cfg.listeners
	if cfg.registerer != nil {
		m, err := observability.NewMetrics(nil, cfg.metricLabels)
		if err != nil {
			return nil, err
		}
		eng.metrics = m
		listeners = append([]domain.GameStateListener{m}, listeners...)
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithGameID(cfg.gameID),
		runtime.WithMaxIllegalTurns(cfg.maxIllegalTurns),
		runtime.WithListeners(listeners...),
	}
	if cfg.logger != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithLogger(cfg.logger))
	}

	rt, err := runtime.NewEngine(seats, rules, runtimeOpts...)
	if err != nil {
		return nil, err
	}
	eng.runtime = rt

	// Registration waits until construction can no longer fail.
	if eng.metrics != nil {
		if err := eng.metrics.Register(cfg.registerer); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}

	if cfg.auditLogger != nil {
		rt.AddListener(observability.NewAudit(cfg.auditLogger.With("game_id", cfg.gameID), rt))
	}

	return eng, nil
}

// RunGame drives the game to completion on the calling goroutine.
func (e *Engine) RunGame(ctx context.Context) error {
	return e.runtime.RunGame(ctx)
}

// AddListener subscribes l; insertion order is preserved and duplicates are allowed.
func (e *Engine) AddListener(l domain.GameStateListener) {
	e.runtime.AddListener(l)
}

// RemoveListener drops the earliest registration of l.
func (e *Engine) RemoveListener(l domain.GameStateListener) bool {
	return e.runtime.RemoveListener(l)
}

// CurrentPlayer returns the player whose turn it is.
func (e *Engine) CurrentPlayer() domain.Player { return e.runtime.CurrentPlayer() }

// NumPlayers returns the number of seated players.
func (e *Engine) NumPlayers() int { return e.runtime.NumPlayers() }

// Seating returns the seating order the game is played in.
func (e *Engine) Seating() []domain.Player { return e.runtime.Order().Seating() }

// History returns the branching record of recorded turns.
func (e *Engine) History() *history.Tree { return e.runtime.History() }

// Turns returns the recorded turns along the current history line.
func (e *Engine) Turns() []*turn.Turn { return e.runtime.Turns() }

// Round returns the current round number.
func (e *Engine) Round() int { return e.runtime.Round() }

// Phase returns the lifecycle phase.
func (e *Engine) Phase() Phase { return e.runtime.Phase() }

// GameID returns the game identifier.
func (e *Engine) GameID() string { return e.runtime.GameID() }

// Metrics returns the registered metrics listener, or nil.
func (e *Engine) Metrics() *observability.Metrics { return e.metrics }
