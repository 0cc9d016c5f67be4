package runner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrScriptExhausted is returned by a ScriptedPrompter with no answers left.
var ErrScriptExhausted = errors.New("no scripted answers left")

// Prompter asks a player a question and returns the answer.
type Prompter interface {
	Prompt(question string) (string, error)
}

// ContentRenderer formats a question before it is written, e.g. as markdown.
type ContentRenderer func(string) (string, error)

// TextPrompter asks questions on a writer and reads one answer per line.
// Answers that fail CleanAnswer are rejected and asked again.
type TextPrompter struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer
	// MaxAnswerLength bounds an answer in bytes; zero disables the check.
	MaxAnswerLength int
}

// TextPrompterOption defines configuration for TextPrompter.
type TextPrompterOption func(*TextPrompter)

// WithRenderer configures the question renderer.
func WithRenderer(renderer ContentRenderer) TextPrompterOption {
	return func(p *TextPrompter) {
		p.Renderer = renderer
	}
}

// WithMaxAnswerLength overrides DefaultMaxAnswerLength.
func WithMaxAnswerLength(n int) TextPrompterOption {
	return func(p *TextPrompter) {
		p.MaxAnswerLength = n
	}
}

// NewTextPrompter creates a prompter over r and w. Nil values default to
// stdin and stdout.
func NewTextPrompter(r io.Reader, w io.Writer, opts ...TextPrompterOption) *TextPrompter {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	p := &TextPrompter{
		Reader:          bufio.NewReader(r),
		Writer:          w,
		MaxAnswerLength: DefaultMaxAnswerLength,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *TextPrompter) Prompt(question string) (string, error) {
	if question != "" {
		out := question
		if p.Renderer != nil {
			if rendered, err := p.Renderer(question); err == nil {
				out = rendered
			}
		}
		fmt.Fprintln(p.Writer, strings.TrimSpace(out))
	}

	for {
		fmt.Fprint(p.Writer, "> ")
		line, err := p.Reader.ReadString('\n')
		if line == "" && err != nil {
			return "", err
		}

		answer, aerr := CleanAnswer(line, p.MaxAnswerLength)
		if aerr != nil {
			fmt.Fprintf(p.Writer, "Error: %v. Please try again.\n", aerr)
			if err != nil {
				return "", err
			}
			continue
		}
		return answer, nil
	}
}

// ScriptedPrompter replays a fixed list of answers and remembers the
// questions it was asked.
type ScriptedPrompter struct {
	answers   []string
	questions []string
}

// NewScriptedPrompter creates a prompter answering with answers, in order.
func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{answers: answers}
}

func (p *ScriptedPrompter) Prompt(question string) (string, error) {
	p.questions = append(p.questions, question)
	if len(p.answers) == 0 {
		return "", ErrScriptExhausted
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

// Push appends answers to the script.
func (p *ScriptedPrompter) Push(answers ...string) {
	p.answers = append(p.answers, answers...)
}

// Remaining returns the number of unused answers.
func (p *ScriptedPrompter) Remaining() int { return len(p.answers) }

// Questions returns every question asked so far.
func (p *ScriptedPrompter) Questions() []string {
	return append([]string(nil), p.questions...)
}
