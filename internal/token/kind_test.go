package token

import "testing"

func TestKindStringSpelling(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KwTry, "try"},
		{KwCatch, "catch"},
		{EqEqEq, "==="},
		{FatArrow, "=>"},
		{DotDotDot, "..."},
		{RBrace, "}"},
		{Ident, "Ident"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestEveryKindHasName(t *testing.T) {
	for k := Invalid; k <= RBracket; k++ {
		if k.String() == "Kind(?)" {
			t.Errorf("kind %d has no name", k)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	for word, kind := range keywords {
		got, ok := LookupKeyword(word)
		if !ok || got != kind {
			t.Errorf("LookupKeyword(%q) = %v, %v", word, got, ok)
		}
		if kind.String() != word {
			t.Errorf("keyword %q spelled %q", word, kind.String())
		}
	}
	if _, ok := LookupKeyword("Try"); ok {
		t.Error("keywords must be case-sensitive")
	}
	if _, ok := LookupKeyword("undefined"); ok {
		t.Error("undefined is an identifier")
	}
}

func TestTokenPredicates(t *testing.T) {
	tok := Token{Kind: KwCatch}
	if !tok.IsKeyword() || !tok.IsIdentName() || tok.IsIdent() {
		t.Error("catch should be a keyword usable as a property name")
	}
	if (Token{Kind: StringLit}).IsKeyword() {
		t.Error("string literal is not a keyword")
	}
	if !(Token{Kind: KwNull}).IsLiteral() {
		t.Error("null is a literal")
	}
}

func TestHasNewlineBefore(t *testing.T) {
	tok := Token{Leading: []Trivia{{Kind: TriviaSpace, Text: " "}, {Kind: TriviaLineComment, Text: "// x"}}}
	if tok.HasNewlineBefore() {
		t.Error("no newline expected")
	}
	tok.Leading = append(tok.Leading, Trivia{Kind: TriviaNewline, Text: "\n\n"})
	if !tok.HasNewlineBefore() {
		t.Error("newline expected")
	}
	if n := tok.Leading[2].Newlines(); n != 2 {
		t.Errorf("Newlines() = %d", n)
	}
	if got := len(tok.Comments()); got != 1 {
		t.Errorf("Comments() = %d entries", got)
	}
}
