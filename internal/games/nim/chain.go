package nim

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ianw11/gamebase/pkg/domain"
	"github.com/ianw11/gamebase/pkg/dsl"
	"github.com/ianw11/gamebase/pkg/runner"
)

// Tags of the turn steps.
const (
	TagTake    = "take"
	TagConfirm = "confirm"
)

// ErrNoInput is recorded as step data when a player has no usable input.
var ErrNoInput = errors.New("player input is neither a prompter nor a strategy")

// Strategy picks moves without asking anyone. Bots implement it.
type Strategy interface {
	Take(pile, limit int) int
}

// NewChain builds the turn of a Nim player: choose how many stones to take,
// then confirm. Answering "n" to the confirmation goes back to the choice
// and "q" concedes the attempt.
func NewChain(r *Rules) (*dsl.Chain, error) {
	b := dsl.New()

	b.Add(TagTake).
		Do(func(input domain.InputMethod) (domain.ActionResult, any) {
			return askTake(r, input)
		}).
		Go(TagConfirm)

	b.Add(TagConfirm).
		Do(askConfirm).
		Terminal()

	return b.Build(TagTake)
}

func askTake(r *Rules, input domain.InputMethod) (domain.ActionResult, any) {
	switch in := input.(type) {
	case Strategy:
		return domain.Success, in.Take(r.Pile(), r.Limit())
	case runner.Prompter:
		answer, err := in.Prompt(fmt.Sprintf("%d stones left. Take how many (1-%d)? [q to concede]", r.Pile(), r.Limit()))
		if err != nil {
			return domain.Failure, err
		}
		answer = strings.ToLower(answer)
		if answer == "q" {
			return domain.Failure, nil
		}
		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 {
			return domain.Retry, nil
		}
		return domain.Success, n
	default:
		return domain.Failure, ErrNoInput
	}
}

func askConfirm(input domain.InputMethod) (domain.ActionResult, any) {
	p, ok := input.(runner.Prompter)
	if !ok {
		return domain.Success, true
	}
	answer, err := p.Prompt("Confirm? [y/n/q]")
	if err != nil {
		return domain.Failure, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return domain.Success, true
	case "n", "no":
		return domain.Back, false
	case "q":
		return domain.Failure, false
	default:
		return domain.Retry, nil
	}
}

// NewPlayer seats a Nim player whose turns run chain with input, a
// runner.Prompter or a Strategy.
func NewPlayer(id, name string, input domain.InputMethod, chain *dsl.Chain) domain.Player {
	return &domain.BasicPlayer{
		PlayerID:    id,
		PlayerName:  name,
		InputHandle: input,
		Initial:     chain.Start,
	}
}
