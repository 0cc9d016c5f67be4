package runner

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxAnswerLength bounds a single answer, in bytes.
const DefaultMaxAnswerLength = 256

var (
	ErrAnswerTooLong = errors.New("answer too long")
	ErrAnswerNotText = errors.New("answer is not valid UTF-8")
)

// CleanAnswer trims an answer read from a terminal and drops control
// characters such as escape sequences. Answers longer than limit bytes or
// that are not UTF-8 text are rejected. A limit of zero or less disables
// the length check.
func CleanAnswer(answer string, limit int) (string, error) {
	answer = strings.TrimSpace(answer)
	if limit > 0 && len(answer) > limit {
		return "", fmt.Errorf("%w: %d bytes, at most %d", ErrAnswerTooLong, len(answer), limit)
	}
	if !utf8.ValidString(answer) {
		return "", ErrAnswerNotText
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, answer), nil
}
