package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidPlayerCount is returned when an engine is built with too few or too many players.
var ErrInvalidPlayerCount = errors.New("invalid player count")

// ErrIllegalTransition is returned when an action chain reports an unknown result
// or goes Back past its first action. It indicates a defect in the chain.
var ErrIllegalTransition = errors.New("illegal turn transition")

// ErrUnknownTag is returned when turn data is requested for a tag that was never recorded.
var ErrUnknownTag = errors.New("unknown tag")

// ErrNotFound is returned when a turn is not present in the history tree.
var ErrNotFound = errors.New("turn not found")

// ErrAtRoot is returned when rewinding a history tree that is already at its root.
var ErrAtRoot = errors.New("history is at root")

// ErrIndexOutOfRange is returned when navigating to a branch or node that does not exist.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrGameStarted is returned when RunGame is called on an engine that already ran.
var ErrGameStarted = errors.New("game already started")

// ErrTooManyIllegalTurns is returned when a seat exceeds the configured illegal turn budget.
var ErrTooManyIllegalTurns = errors.New("too many illegal turns")

// PlayerCountError reports a player count outside the accepted bounds.
type PlayerCountError struct {
	Got, Min, Max int
}

func (e *PlayerCountError) Error() string {
	return fmt.Sprintf("%s: got %d, want between %d and %d", ErrInvalidPlayerCount, e.Got, e.Min, e.Max)
}

func (e *PlayerCountError) Unwrap() error { return ErrInvalidPlayerCount }

// TransitionError reports an illegal action chain transition.
type TransitionError struct {
	Tag    string
	Result ActionResult
	Reason string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: action %q returned %s: %s", ErrIllegalTransition, e.Tag, e.Result, e.Reason)
}

func (e *TransitionError) Unwrap() error { return ErrIllegalTransition }

// UnknownTagError reports a data query for a tag that holds no data.
type UnknownTagError struct {
	Tag string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("%s: %q does not exist in turn", ErrUnknownTag, e.Tag)
}

func (e *UnknownTagError) Unwrap() error { return ErrUnknownTag }

// IndexError reports an out of range branch or node index.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d, length %d", ErrIndexOutOfRange, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }
