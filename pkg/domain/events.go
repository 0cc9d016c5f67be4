package domain

// EventType names a lifecycle notification. It is used for logging and metrics labels.
type EventType string

const (
	EventPreGameInit EventType = "pre_game_init"
	EventPreRound    EventType = "pre_round"
	EventPostRound   EventType = "post_round"
	EventPreTurn     EventType = "pre_turn"
	EventPostTurn    EventType = "post_turn"
)

// GameStateListener observes the game lifecycle. Every method is invoked
// synchronously on the goroutine running the game, in registration order.
// A listener must not add or remove listeners while it is being notified.
type GameStateListener interface {
	OnPreGameInit()
	OnPreRound()
	OnPostRound()
	OnPreTurn()
	OnPostTurn()
}

// NopListener implements GameStateListener with empty methods.
// Embed it to react to a subset of events.
type NopListener struct{}

func (NopListener) OnPreGameInit() {}
func (NopListener) OnPreRound()    {}
func (NopListener) OnPostRound()   {}
func (NopListener) OnPreTurn()     {}
func (NopListener) OnPostTurn()    {}

// ListenerFuncs adapts plain functions to a GameStateListener.
// Nil fields are skipped. Use it through a pointer so that it can be removed
// from an engine again.
type ListenerFuncs struct {
	PreGameInit func()
	PreRound    func()
	PostRound   func()
	PreTurn     func()
	PostTurn    func()
}

func (l *ListenerFuncs) OnPreGameInit() { call(l.PreGameInit) }
func (l *ListenerFuncs) OnPreRound()    { call(l.PreRound) }
func (l *ListenerFuncs) OnPostRound()   { call(l.PostRound) }
func (l *ListenerFuncs) OnPreTurn()     { call(l.PreTurn) }
func (l *ListenerFuncs) OnPostTurn()    { call(l.PostTurn) }

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

// Notify delivers a single event to a listener.
func Notify(l GameStateListener, event EventType) {
	switch event {
	case EventPreGameInit:
		l.OnPreGameInit()
	case EventPreRound:
		l.OnPreRound()
	case EventPostRound:
		l.OnPostRound()
	case EventPreTurn:
		l.OnPreTurn()
	case EventPostTurn:
		l.OnPostTurn()
	}
}
