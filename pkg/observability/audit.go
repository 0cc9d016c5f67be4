package observability

import (
	"log/slog"

	"github.com/ianw11/gamebase/pkg/domain"
)

// GameView is the read-only engine state the audit listener reports.
type GameView interface {
	Round() int
	CurrentPlayer() domain.Player
}

// Audit is a GameStateListener that writes one structured record per
// lifecycle event.
type Audit struct {
	logger *slog.Logger
	view   GameView
}

// NewAudit creates an audit listener. view may be nil, in which case the
// records carry only the event name.
func NewAudit(logger *slog.Logger, view GameView) *Audit {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Audit{logger: logger, view: view}
}

func (a *Audit) OnPreGameInit() { a.record(domain.EventPreGameInit, false) }
func (a *Audit) OnPreRound()    { a.record(domain.EventPreRound, false) }
func (a *Audit) OnPostRound()   { a.record(domain.EventPostRound, false) }
func (a *Audit) OnPreTurn()     { a.record(domain.EventPreTurn, true) }
func (a *Audit) OnPostTurn()    { a.record(domain.EventPostTurn, true) }

func (a *Audit) record(event domain.EventType, withPlayer bool) {
	attrs := []any{slog.String("event", string(event))}
	if a.view != nil {
		attrs = append(attrs, slog.Int("round", a.view.Round()))
		if withPlayer {
			if p := a.view.CurrentPlayer(); p != nil {
				attrs = append(attrs, slog.String("player", p.Name()))
			}
		}
	}
	a.logger.Info("game_event", attrs...)
}
