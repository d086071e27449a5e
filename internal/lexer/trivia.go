package lexer

import (
	"trygap/internal/diag"
	"trygap/internal/token"
)

// collectLeadingTrivia gathers the trivia preceding the next significant token.
//   - runs of ' ', '\t', '\r', '\v', '\f' become one TriviaSpace
//   - a run of '\n' (with blanks between them) becomes one TriviaNewline
//   - //... up to '\n' is a TriviaLineComment
//   - /* ... */ is a TriviaBlockComment; an unterminated one is reported and cut at EOF
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if isBlank(b) {
			for isBlank(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)
			continue
		}

		if b == '\n' {
			for {
				p := lx.cursor.Peek()
				if p != '\n' && !isBlank(p) {
					break
				}
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)
			continue
		}

		if b == '/' && lx.scanCommentIntoHold() {
			continue
		}

		break
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: lx.text(sp)})
}

func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return false
	}
	switch lx.cursor.Peek() {
	case '/':
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		// a line comment never owns its line's trailing blanks
		for sp.End > sp.Start && isBlank(lx.file.Content[sp.End-1]) {
			sp.End--
		}
		lx.hold = append(lx.hold, token.Trivia{Kind: token.TriviaLineComment, Span: sp, Text: lx.text(sp)})
		lx.cursor.Off = sp.End
		return true

	case '*':
		lx.cursor.Bump()
		closed := false
		for !lx.cursor.EOF() {
			if lx.cursor.Match("*/") {
				closed = true
				break
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if !closed {
			lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		}
		lx.hold = append(lx.hold, token.Trivia{Kind: token.TriviaBlockComment, Span: sp, Text: lx.text(sp)})
		return true

	default:
		lx.cursor.Reset(start)
		return false
	}
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\v' || b == '\f'
}
