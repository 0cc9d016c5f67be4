package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ianw11/gamebase"
	"github.com/ianw11/gamebase/internal/config"
	"github.com/ianw11/gamebase/internal/games/nim"
	"github.com/ianw11/gamebase/internal/logging"
	"github.com/ianw11/gamebase/internal/presentation/graph"
	"github.com/ianw11/gamebase/internal/presentation/tui"
	"github.com/ianw11/gamebase/pkg/dice"
	"github.com/ianw11/gamebase/pkg/domain"
	"github.com/ianw11/gamebase/pkg/dsl"
	"github.com/ianw11/gamebase/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// PlayOptions contains all the configuration for the play command.
type PlayOptions struct {
	Config config.Config

	// Interactive seats humans at the terminal. Without it every human seat
	// is played by a random bot.
	Interactive bool
	// Rich renders the summary with glamour instead of plain markdown.
	Rich bool
	// Quiet suppresses the banner, round headers and the summary.
	Quiet   bool
	Graph   bool
	Metrics bool

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Outcome is what is left after a game.
type Outcome struct {
	Engine   *gamebase.Engine
	Rules    *nim.Rules
	Registry *prometheus.Registry
	Seed     uint64
}

// Play runs one game of Nim. An interrupted game is not an error; the
// outcome then has no winner.
func Play(ctx context.Context, opts PlayOptions) (*Outcome, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := createLogger(cfg, opts.Err)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := dice.NewRandom(seed)

	rules, err := nim.NewRules(len(cfg.Players), cfg.Pile, cfg.MaxTake)
	if err != nil {
		return nil, err
	}
	chain, err := nim.NewChain(rules)
	if err != nil {
		return nil, err
	}

	players, err := seatPlayers(cfg, opts, rng, chain, logger)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	engineOpts := []gamebase.Option{
		gamebase.WithLogger(logger),
		gamebase.WithMetrics(reg, prometheus.Labels{"game": "nim"}),
		gamebase.WithMaxIllegalTurns(cfg.MaxIllegalTurns),
		gamebase.WithFirstPlayer(cfg.FirstPlayer),
	}
	if cfg.Shuffle {
		engineOpts = append(engineOpts, gamebase.WithShuffledSeating(rng))
	}
	if cfg.Debug {
		engineOpts = append(engineOpts, gamebase.WithAuditLog(logger))
	}

	eng, err := gamebase.New(players, rules, engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing game: %w", err)
	}
	out := &Outcome{Engine: eng, Rules: rules, Registry: reg, Seed: seed}

	if !opts.Quiet {
		tui.PrintBanner(opts.Out)
		eng.AddListener(&domain.ListenerFuncs{
			PreRound: func() {
				fmt.Fprintln(opts.Out, tui.Status("Round %d, %d stones left", eng.Round(), rules.Pile()))
			},
		})
	}

	logger.Info("game started", "game_id", eng.GameID(), "seed", seed, "players", eng.NumPlayers())
	if err := eng.RunGame(ctx); err != nil {
		if isInterrupted(err) || errors.Is(err, context.DeadlineExceeded) {
			logger.Info("game interrupted", "game_id", eng.GameID(), "round", eng.Round())
			return out, nil
		}
		return out, err
	}
	logger.Info("game finished", "game_id", eng.GameID(), "winner", rules.Winner().Name())

	if !opts.Quiet {
		if err := printSummary(opts, out); err != nil {
			return out, err
		}
	}
	if opts.Graph {
		fmt.Fprint(opts.Out, graph.GenerateMermaid(eng.History(), nil))
	}
	if opts.Metrics {
		if err := writeMetrics(opts.Out, reg); err != nil {
			return out, err
		}
	}
	return out, nil
}

func seatPlayers(cfg config.Config, opts PlayOptions, rng *dice.Random, chain *dsl.Chain, logger *slog.Logger) ([]domain.Player, error) {
	var terminal *runner.TextPrompter
	if opts.Interactive && cfg.Humans() > 0 {
		var promptOpts []runner.TextPrompterOption
		if opts.Rich {
			promptOpts = append(promptOpts, runner.WithRenderer(tui.NewRenderer()))
		}
		// Humans share one reader so that buffered input is never lost between seats.
		terminal = runner.NewTextPrompter(opts.In, opts.Out, promptOpts...)
	}

	players := make([]domain.Player, 0, len(cfg.Players))
	for i, pc := range cfg.Players {
		var input domain.InputMethod
		switch {
		case pc.Bot != "":
			level, err := nim.ParseLevel(pc.Bot)
			if err != nil {
				return nil, fmt.Errorf("player %q: %w", pc.Name, err)
			}
			input = nim.NewBot(level, cfg.MaxTake, rng)
		case terminal != nil:
			input = &seatPrompter{name: pc.Name, p: terminal, logger: logger}
		default:
			logger.Warn("no terminal, seat is played by a bot", "player", pc.Name)
			input = nim.NewBot(nim.LevelRandom, cfg.MaxTake, rng)
		}
		players = append(players, &domain.BasicPlayer{
			PlayerID:    fmt.Sprintf("seat-%d", i),
			PlayerName:  pc.Name,
			InputHandle: input,
			Initial:     chain.Start,
		})
	}
	return players, nil
}

// seatPrompter addresses questions to one player of a shared terminal.
type seatPrompter struct {
	name   string
	p      runner.Prompter
	logger *slog.Logger
}

func (s *seatPrompter) Prompt(question string) (string, error) {
	answer, err := s.p.Prompt(fmt.Sprintf("[%s] %s", s.name, question))
	if err != nil && isInterrupted(err) {
		err = &SeatInterruptedError{Seat: s.name, Err: err}
		s.logger.Info("question left unanswered", "seat", s.name, "error", err)
	}
	return answer, err
}

func printSummary(opts PlayOptions, out *Outcome) error {
	eng := out.Engine
	s := tui.Summary{
		Title:  "Nim",
		GameID: eng.GameID(),
		Rounds: eng.Round() - 1,
	}
	if w := out.Rules.Winner(); w != nil {
		s.Winner = w.Name()
	}
	for _, p := range eng.Seating() {
		s.Seating = append(s.Seating, p.Name())
	}
	for _, m := range out.Rules.Moves() {
		s.Rows = append(s.Rows, tui.Row{
			Round:  m.Round,
			Player: m.Player,
			Move:   fmt.Sprintf("took %d, %d left", m.Take, m.PileAfter),
		})
	}

	md := s.Markdown()
	if opts.Rich {
		rendered, err := tui.NewRenderer()(md)
		if err == nil {
			md = rendered
		}
	}
	_, err := fmt.Fprintln(opts.Out, md)
	return err
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

// createLogger configures the application logger. Records go to w, kept
// apart from the game output, at the configured level; debug lowers it to
// Debug.
func createLogger(cfg config.Config, w io.Writer) *slog.Logger {
	if w == nil {
		return logging.NewNop()
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}
	if cfg.Debug {
		level = slog.LevelDebug
	}
	if cfg.LogFormat == "json" {
		return logging.NewJSON(w, level)
	}
	return logging.NewText(w, level)
}
