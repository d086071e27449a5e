package lexer_test

import (
	"strings"
	"testing"

	"trygap/internal/diag"
	"trygap/internal/lexer"
	"trygap/internal/source"
	"trygap/internal/token"
)

// testReporter collects every diagnostic emitted by the lexer.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.js", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	return lexer.New(file, lexer.Options{Reporter: reporter}), reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func kindsOf(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func expectKinds(t *testing.T, input string, want ...token.Kind) []token.Token {
	t.Helper()
	lx, rep := makeTestLexer(input)
	toks := collectAllTokens(lx)
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics for %q: %+v", input, rep.diagnostics)
	}
	want = append(want, token.EOF)
	got := kindsOf(toks)
	if len(got) != len(want) {
		t.Fatalf("token count mismatch for %q:\nwant %v\ngot  %v", input, want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d mismatch for %q:\nwant %v\ngot  %v", i, input, want, got)
		}
	}
	return toks
}

func TestTryCatchTokens(t *testing.T) {
	expectKinds(t, "try { a(); } catch (e) {} finally {}",
		token.KwTry, token.LBrace, token.Ident, token.LParen, token.RParen, token.Semicolon, token.RBrace,
		token.KwCatch, token.LParen, token.Ident, token.RParen, token.LBrace, token.RBrace,
		token.KwFinally, token.LBrace, token.RBrace,
	)
}

func TestOperatorsAreGreedy(t *testing.T) {
	tests := []struct {
		input string
		want  []token.Kind
	}{
		{"a === b", []token.Kind{token.Ident, token.EqEqEq, token.Ident}},
		{"a !== b", []token.Kind{token.Ident, token.BangEqEq, token.Ident}},
		{"a >>> b", []token.Kind{token.Ident, token.UShr, token.Ident}},
		{"a ** b", []token.Kind{token.Ident, token.StarStar, token.Ident}},
		{"a ?? b", []token.Kind{token.Ident, token.QuestionQuestion, token.Ident}},
		{"x => x", []token.Kind{token.Ident, token.FatArrow, token.Ident}},
		{"i++", []token.Kind{token.Ident, token.PlusPlus}},
		{"i += 1", []token.Kind{token.Ident, token.PlusAssign, token.NumberLit}},
		{"[...xs]", []token.Kind{token.LBracket, token.DotDotDot, token.Ident, token.RBracket}},
		{"a.b", []token.Kind{token.Ident, token.Dot, token.Ident}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectKinds(t, tt.input, tt.want...)
		})
	}
}

func TestLiterals(t *testing.T) {
	toks := expectKinds(t, `"a\"b" 'c' 0x1F 1_000 .5 1e-3 10n`+" `t ${x + `in${y}`} s`",
		token.StringLit, token.StringLit, token.NumberLit, token.NumberLit, token.NumberLit,
		token.NumberLit, token.NumberLit, token.TemplateLit,
	)
	if toks[0].Text != `"a\"b"` {
		t.Errorf("string text = %q", toks[0].Text)
	}
	if toks[7].Text != "`t ${x + `in${y}`} s`" {
		t.Errorf("template text = %q", toks[7].Text)
	}
}

func TestIdentifiersAndKeywords(t *testing.T) {
	toks := expectKinds(t, "$el _x const constant catchy typeof",
		token.Ident, token.Ident, token.KwConst, token.Ident, token.Ident, token.KwTypeof)
	if toks[3].Text != "constant" {
		t.Errorf("ident text = %q", toks[3].Text)
	}
}

func TestLeadingTrivia(t *testing.T) {
	lx, _ := makeTestLexer("a;\n\n  // note\n  /* block */ b")
	collect := collectAllTokens(lx)
	b := collect[2]
	if b.Text != "b" {
		t.Fatalf("expected b, got %q", b.Text)
	}
	if !b.HasNewlineBefore() {
		t.Error("b should have newline before")
	}
	comments := b.Comments()
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].Text != "// note" || comments[0].Kind != token.TriviaLineComment {
		t.Errorf("line comment = %+v", comments[0])
	}
	if comments[1].Text != "/* block */" || comments[1].Kind != token.TriviaBlockComment {
		t.Errorf("block comment = %+v", comments[1])
	}
	if nl := b.Leading[0]; nl.Kind != token.TriviaNewline || nl.Newlines() != 2 {
		t.Errorf("first trivia should be a double newline, got %+v", nl)
	}
}

func TestTrailingCommentsAttachToEOF(t *testing.T) {
	lx, _ := makeTestLexer("a; // tail")
	toks := collectAllTokens(lx)
	eof := toks[len(toks)-1]
	if eof.Kind != token.EOF {
		t.Fatalf("last token = %v", eof.Kind)
	}
	if c := eof.Comments(); len(c) != 1 || c[0].Text != "// tail" {
		t.Fatalf("EOF comments = %+v", c)
	}
	if again := lx.Next(); again.Kind != token.EOF || len(again.Leading) != 0 {
		t.Fatalf("repeated EOF must be bare, got %+v", again)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	if p := lx.Peek(); p.Text != "a" {
		t.Fatalf("peek = %q", p.Text)
	}
	if p := lx.Peek(); p.Text != "a" {
		t.Fatalf("second peek = %q", p.Text)
	}
	if n := lx.Next(); n.Text != "a" {
		t.Fatalf("next = %q", n.Text)
	}
	if n := lx.Next(); n.Text != "b" {
		t.Fatalf("next = %q", n.Text)
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"unterminated string", `"abc`, diag.LexUnterminatedString},
		{"newline in string", "'ab\ncd'", diag.LexUnterminatedString},
		{"unterminated comment", "a /* never", diag.LexUnterminatedBlockComment},
		{"unterminated template", "`abc ${x", diag.LexUnterminatedTemplate},
		{"bad exponent", "1e+", diag.LexBadNumber},
		{"ident after number", "3in", diag.LexBadNumber},
		{"unknown char", "a # b", diag.LexUnknownChar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, rep := makeTestLexer(tt.input)
			collectAllTokens(lx)
			if len(rep.diagnostics) == 0 {
				t.Fatalf("expected a diagnostic for %q", tt.input)
			}
			if got := rep.diagnostics[0].Code; got != tt.code {
				t.Fatalf("code = %s, want %s", got.ID(), tt.code.ID())
			}
		})
	}
}

func TestTokenTooLong(t *testing.T) {
	content := `"` + strings.Repeat("a", 1<<20) + `"`
	lx, rep := makeTestLexer(content)
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected invalid token, got %v", tok.Kind)
	}
	if len(rep.diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(rep.diagnostics))
	}
	if next := lx.Next(); next.Kind != token.EOF {
		t.Fatalf("expected EOF after long token, got %v", next.Kind)
	}
}
