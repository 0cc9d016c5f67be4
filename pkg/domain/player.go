package domain

// Player is the engine's view of a participant. The host owns the value;
// the engine only keeps a reference.
type Player interface {
	ID() string
	Name() string

	// InitialAction returns the first action of a fresh turn. It is called
	// once per turn attempt, so implementations usually build a new chain.
	InitialAction() TurnAction

	// Input returns the handle passed to every action of this player's turns.
	Input() InputMethod
}

// BasicPlayer is a Player assembled from plain values.
type BasicPlayer struct {
	PlayerID    string
	PlayerName  string
	InputHandle InputMethod
	Initial     func() TurnAction
}

func (p *BasicPlayer) ID() string         { return p.PlayerID }
func (p *BasicPlayer) Name() string       { return p.PlayerName }
func (p *BasicPlayer) Input() InputMethod { return p.InputHandle }

// InitialAction calls Initial, or returns nil (an empty chain) when it is unset.
func (p *BasicPlayer) InitialAction() TurnAction {
	if p.Initial == nil {
		return nil
	}
	return p.Initial()
}
