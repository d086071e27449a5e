package lexer

import (
	"trygap/internal/diag"
	"trygap/internal/token"
)

// Accepted forms: 0, 123, 1_000, 0b..., 0o..., 0x..., 1.5, .5, 1., 1e-3, 10n.
// The text is kept verbatim; the printer only normalises letter case.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	digits := func(ok func(byte) bool) {
		for ok(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
	}

	if lx.cursor.Peek() == '0' {
		if b1 := lx.cursor.PeekAt(1); b1 != 0 {
			switch b1 {
			case 'b', 'B':
				lx.cursor.Bump()
				lx.cursor.Bump()
				digits(func(b byte) bool { return b == '0' || b == '1' })
				return lx.finishNumber(start)
			case 'o', 'O':
				lx.cursor.Bump()
				lx.cursor.Bump()
				digits(func(b byte) bool { return b >= '0' && b <= '7' })
				return lx.finishNumber(start)
			case 'x', 'X':
				lx.cursor.Bump()
				lx.cursor.Bump()
				digits(isHex)
				return lx.finishNumber(start)
			}
		}
	}

	digits(isDec)
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		digits(isDec)
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected digit after exponent")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		digits(isDec)
	}
	return lx.finishNumber(start)
}

func (lx *Lexer) finishNumber(start Mark) token.Token {
	lx.cursor.Eat('n')
	if isIdentStartByte(lx.cursor.Peek()) {
		for isIdentContinueByte(lx.cursor.Peek()) && !lx.cursor.EOF() {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, "identifier starts immediately after numeric literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.NumberLit, Span: sp, Text: lx.text(sp)}
}
