package token

import (
	"trygap/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, string, template, or keyword literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, TemplateLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwVar && t.Kind <= KwFalse
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsIdentName reports whether the token can be used as a property name
// after '.' or as an object key: identifiers and every reserved word.
func (t Token) IsIdentName() bool {
	return t.Kind == Ident || t.IsKeyword()
}

// HasNewlineBefore reports whether a line break separates the token from
// the previous significant token.
func (t Token) HasNewlineBefore() bool {
	for _, tr := range t.Leading {
		if tr.Kind == TriviaNewline {
			return true
		}
		if tr.Kind == TriviaBlockComment && tr.HasNewline() {
			return true
		}
	}
	return false
}

// Comments returns the comment trivia attached to the token, in source order.
func (t Token) Comments() []Trivia {
	var out []Trivia
	for _, tr := range t.Leading {
		if tr.IsComment() {
			out = append(out, tr)
		}
	}
	return out
}
