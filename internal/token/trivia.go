package token

import (
	"strings"

	"trygap/internal/source"
)

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// IsComment reports whether the trivia is a line or block comment.
func (t Trivia) IsComment() bool {
	return t.Kind == TriviaLineComment || t.Kind == TriviaBlockComment
}

// HasNewline reports whether the trivia text spans more than one line.
func (t Trivia) HasNewline() bool {
	return strings.IndexByte(t.Text, '\n') >= 0
}

// Newlines counts line breaks inside a TriviaNewline run.
func (t Trivia) Newlines() int {
	if t.Kind != TriviaNewline {
		return 0
	}
	return strings.Count(t.Text, "\n")
}
