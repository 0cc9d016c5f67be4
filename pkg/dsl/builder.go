package dsl

import (
	"fmt"

	"github.com/ianw11/gamebase/pkg/domain"
)

// StepFunc runs one step. It returns the step result and the data the step
// collected; the data is kept whatever the result.
type StepFunc func(input domain.InputMethod) (domain.ActionResult, any)

// BranchFunc picks the tag of the next step from the data of a successful
// step. An empty tag ends the chain.
type BranchFunc func(data any) string

// Builder manages the chain construction.
type Builder struct {
	steps map[string]*StepBuilder
	order []string
}

// New creates a new chain builder.
func New() *Builder {
	return &Builder{
		steps: make(map[string]*StepBuilder),
	}
}

// Add creates a new step in the chain.
// If the step already exists, it returns the existing builder.
func (b *Builder) Add(tag string) *StepBuilder {
	if sb, ok := b.steps[tag]; ok {
		return sb
	}
	sb := &StepBuilder{tag: tag}
	b.steps[tag] = sb
	b.order = append(b.order, tag)
	return sb
}

// Build validates the steps and compiles them into a Chain starting at start.
func (b *Builder) Build(start string) (*Chain, error) {
	if _, ok := b.steps[start]; !ok {
		return nil, fmt.Errorf("start step %q is not defined", start)
	}

	c := &Chain{
		start: start,
		steps: make(map[string]step, len(b.steps)),
		tags:  append([]string(nil), b.order...),
	}
	for _, tag := range b.order {
		sb := b.steps[tag]
		if sb.do == nil {
			return nil, fmt.Errorf("step %q has no Do function", tag)
		}
		if sb.next != "" {
			if _, ok := b.steps[sb.next]; !ok {
				return nil, fmt.Errorf("step %q goes to undefined step %q", tag, sb.next)
			}
		}
		c.steps[tag] = step{do: sb.do, next: sb.next, branch: sb.branch}
	}
	return c, nil
}

// StepBuilder provides a fluent API for configuring a step.
type StepBuilder struct {
	tag    string
	do     StepFunc
	next   string
	branch BranchFunc
}

// Do sets the function run when the step is invoked.
func (s *StepBuilder) Do(fn StepFunc) *StepBuilder {
	s.do = fn
	return s
}

// Go sets the step that follows a successful invocation.
func (s *StepBuilder) Go(target string) *StepBuilder {
	s.next = target
	s.branch = nil
	return s
}

// Branch picks the following step from the collected data.
// Tags returned by fn are resolved when the chain runs; an unknown tag
// makes the turn fail with an illegal transition.
func (s *StepBuilder) Branch(fn BranchFunc) *StepBuilder {
	s.branch = fn
	s.next = ""
	return s
}

// Terminal marks the step as the last one of the chain.
func (s *StepBuilder) Terminal() *StepBuilder {
	s.next = ""
	s.branch = nil
	return s
}
