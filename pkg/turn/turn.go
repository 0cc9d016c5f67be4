package turn

import (
	"fmt"
	"strings"

	"github.com/ianw11/gamebase/pkg/domain"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Turn is one player's resolution of a game turn.
// A Turn is not safe for concurrent use.
type Turn struct {
	round  int
	player domain.Player

	current   domain.TurnAction
	completed []domain.TurnAction
	saved     *orderedmap.OrderedMap[string, domain.TurnAction]

	successful  bool
	done        bool
	err         error
	invocations int
}

// New creates a turn for player, positioned at the player's initial action.
// round is the game round the turn belongs to.
func New(round int, player domain.Player) *Turn {
	return &Turn{
		round:      round,
		player:     player,
		current:    player.InitialAction(),
		saved:      orderedmap.New[string, domain.TurnAction](),
		successful: true,
	}
}

// Execute runs the action chain until it reaches its terminal state and
// reports whether the turn succeeded. An illegal transition aborts the turn
// and is returned as a *domain.TransitionError. Calls after the turn is done
// return the stored outcome without invoking any action.
func (t *Turn) Execute() (bool, error) {
	for !t.done {
		if t.current == nil {
			t.done = true
			break
		}
		t.invocations++
		result := t.current.Do(t.player.Input())
		if err := t.apply(result); err != nil {
			t.abort(err)
		}
	}
	return t.successful, t.err
}

func (t *Turn) apply(result domain.ActionResult) error {
	action := t.current

	switch result {
	case domain.Success:
		t.saved.Set(action.Tag(), action)
		t.completed = append(t.completed, action)
		t.current = action.Next()
	case domain.Failure:
		t.successful = false
		t.current = nil
	case domain.Back:
		if len(t.completed) == 0 {
			return &domain.TransitionError{Tag: action.Tag(), Result: result, Reason: "no previous action"}
		}
		t.saved.Delete(action.Tag())
		last := len(t.completed) - 1
		t.current = t.completed[last]
		t.completed = t.completed[:last]
	case domain.Retry:
	default:
		return &domain.TransitionError{Tag: action.Tag(), Result: result, Reason: "unknown result"}
	}
	return nil
}

func (t *Turn) abort(err error) {
	t.err = err
	t.successful = false
	t.current = nil
	t.done = true
}

// Data returns the data recorded by the completed action with the given tag.
func (t *Turn) Data(tag string) (any, error) {
	action, ok := t.saved.Get(tag)
	if !ok {
		return nil, &domain.UnknownTagError{Tag: tag}
	}
	return action.Data(), nil
}

// DataAs returns the data recorded under tag converted to T.
func DataAs[T any](t *Turn, tag string) (T, error) {
	var zero T
	raw, err := t.Data(tag)
	if err != nil {
		return zero, err
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("tag %q holds %T, not %T", tag, raw, zero)
	}
	return v, nil
}

// Tags lists the recorded tags in the order they were first recorded.
func (t *Turn) Tags() []string {
	tags := make([]string, 0, t.saved.Len())
	for pair := t.saved.Oldest(); pair != nil; pair = pair.Next() {
		tags = append(tags, pair.Key)
	}
	return tags
}

// Round returns the game round the turn was taken in.
func (t *Turn) Round() int { return t.round }

// Player returns the player owning the turn.
func (t *Turn) Player() domain.Player { return t.player }

// Successful reports the current success flag. It is only final once Done is true.
func (t *Turn) Successful() bool { return t.successful }

// Done reports whether the chain reached its terminal state.
func (t *Turn) Done() bool { return t.done }

// Err returns the transition error that aborted the turn, if any.
func (t *Turn) Err() error { return t.err }

// Invocations counts the calls made to TurnAction.Do so far.
func (t *Turn) Invocations() int { return t.invocations }

// Current returns the action the cursor points at, or nil when terminal.
func (t *Turn) Current() domain.TurnAction { return t.current }

// Depth returns the number of actions on the completed stack.
func (t *Turn) Depth() int { return len(t.completed) }

func (t *Turn) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Player %s's turn %d", t.player.Name(), t.round)
	for pair := t.saved.Oldest(); pair != nil; pair = pair.Next() {
		fmt.Fprintf(&sb, " || %s -> %v", pair.Key, pair.Value.Data())
	}
	return sb.String()
}
