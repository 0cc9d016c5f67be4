package dsl

import (
	"github.com/ianw11/gamebase/pkg/domain"
)

type step struct {
	do     StepFunc
	next   string
	branch BranchFunc
}

// Chain is a compiled, immutable set of steps.
type Chain struct {
	start string
	steps map[string]step
	tags  []string
}

// Start returns the first action of a fresh run of the chain.
// Runs never share data, so one Chain can serve every turn of a game.
func (c *Chain) Start() domain.TurnAction {
	r := &run{chain: c, actions: make(map[string]*action, len(c.steps))}
	return r.action(c.start)
}

// Tags lists the step tags in definition order.
func (c *Chain) Tags() []string {
	return append([]string(nil), c.tags...)
}

type run struct {
	chain   *Chain
	actions map[string]*action
}

func (r *run) action(tag string) domain.TurnAction {
	if a, ok := r.actions[tag]; ok {
		return a
	}
	s, ok := r.chain.steps[tag]
	if !ok {
		return undefined(tag)
	}
	a := &action{tag: tag, step: s, run: r}
	r.actions[tag] = a
	return a
}

type action struct {
	tag  string
	step step
	run  *run
	data any
}

func (a *action) Tag() string { return a.tag }
func (a *action) Data() any   { return a.data }

func (a *action) Do(input domain.InputMethod) domain.ActionResult {
	result, data := a.step.do(input)
	a.data = data
	return result
}

func (a *action) Next() domain.TurnAction {
	tag := a.step.next
	if a.step.branch != nil {
		tag = a.step.branch(a.data)
	}
	if tag == "" {
		return nil
	}
	return a.run.action(tag)
}

// undefined stands in for a branch target that does not exist.
// Its zero result is rejected by the turn as an illegal transition.
type undefined string

func (u undefined) Tag() string                               { return string(u) }
func (u undefined) Do(domain.InputMethod) domain.ActionResult { return 0 }
func (u undefined) Next() domain.TurnAction                   { return nil }
func (u undefined) Data() any                                 { return nil }
