package lexer

import (
	"trygap/internal/diag"
	"trygap/internal/token"
)

// scanString scans a '...' or "..." literal. Escapes are skipped, not validated.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanTemplate scans a backtick literal as a single token, substitutions
// included. The printer emits it verbatim.
func (lx *Lexer) scanTemplate() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '`'
	if !lx.skipTemplateBody() {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedTemplate, sp, "unterminated template literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.TemplateLit, Span: sp, Text: lx.text(sp)}
}

// skipTemplateBody consumes up to and including the closing backtick.
func (lx *Lexer) skipTemplateBody() bool {
	for !lx.cursor.EOF() {
		switch b := lx.cursor.Bump(); b {
		case '\\':
			lx.cursor.Bump()
		case '`':
			return true
		case '$':
			if lx.cursor.Eat('{') && !lx.skipSubstitution() {
				return false
			}
		}
	}
	return false
}

// skipSubstitution consumes a ${...} body up to its matching '}'.
func (lx *Lexer) skipSubstitution() bool {
	depth := 1
	for !lx.cursor.EOF() {
		switch b := lx.cursor.Peek(); b {
		case '{':
			depth++
			lx.cursor.Bump()
		case '}':
			lx.cursor.Bump()
			depth--
			if depth == 0 {
				return true
			}
		case '`':
			lx.cursor.Bump()
			if !lx.skipTemplateBody() {
				return false
			}
		case '"', '\'':
			if tok := lx.scanString(); tok.Kind == token.Invalid {
				return false
			}
		default:
			lx.cursor.Bump()
		}
	}
	return false
}
