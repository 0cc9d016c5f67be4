package domain

import "fmt"

// InputMethod is the opaque handle a Player exposes for collecting choices.
// The engine never inspects it; it is handed unchanged to every TurnAction.
type InputMethod interface{}

// ActionResult is the outcome of a single TurnAction invocation.
// The zero value is not a valid result.
type ActionResult uint8

const (
	// Success records the action's data and advances to its next action.
	Success ActionResult = iota + 1
	// Retry invokes the same action again.
	Retry
	// Back discards the action's data and returns to the previous action.
	Back
	// Failure aborts the whole turn.
	Failure
)

var resultNames = map[ActionResult]string{
	Success: "SUCCESS",
	Retry:   "RETRY",
	Back:    "BACK",
	Failure: "FAILURE",
}

func (r ActionResult) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("RESULT_%d", uint8(r))
}

// Valid reports whether r is one of the four known results.
func (r ActionResult) Valid() bool {
	_, ok := resultNames[r]
	return ok
}

// TurnAction is a single step of a turn's action chain.
// Implementations are supplied by game-specific code.
type TurnAction interface {
	// Tag identifies the action within a turn. Tags must be unique per turn.
	Tag() string

	// Do collects whatever the action needs through the input handle.
	// It may block while waiting on the player.
	Do(input InputMethod) ActionResult

	// Next returns the action that follows a successful Do.
	// A nil return marks the end of the chain.
	Next() TurnAction

	// Data returns the value collected by the last call to Do.
	Data() any
}
