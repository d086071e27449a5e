package parser

import (
	"trygap/internal/diag"
	"trygap/internal/source"
	"trygap/internal/token"
)

// advance consumes the next token and updates lastSpan. Comments in its
// leading trivia that nobody claimed yet are queued as pending.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	p.pending = append(p.pending, p.takeComments(tok)...)
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
		p.started = true
	}
	return tok
}

// getDiagnosticSpan returns the best span to blame: the next token, or the
// point right after the last consumed one when the input ended.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.started {
		return p.lastSpan.ZeroideToEnd()
	}
	return peek.Span
}

// expect consumes a token of kind k or reports code and returns false.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diag.SevError, diagSpan, msg)
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.lx.Peek().Text}, false
}

// err reports an error at the current position.
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if sev == diag.SevError {
		p.opts.CurrentErrors++
		if p.opts.MaxErrors != 0 && p.opts.CurrentErrors > p.opts.MaxErrors {
			return false
		}
	}
	if p.opts.Reporter == nil {
		return false
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
	return true
}

// consumeSemicolon implements automatic semicolon insertion: an explicit ';'
// is consumed, otherwise '}', EOF or a preceding line break end the statement.
func (p *Parser) consumeSemicolon(what string) bool {
	next := p.lx.Peek()
	switch {
	case next.Kind == token.Semicolon:
		p.advance()
		return true
	case next.Kind == token.RBrace, next.Kind == token.EOF, next.HasNewlineBefore():
		return true
	}
	p.err(diag.SynExpectSemicolon, "expected ';' after "+what)
	return false
}

// resyncStatement skips tokens after a syntax error until something that
// can plausibly start or end a statement. The token at from is always skipped
// when nothing was consumed, so the caller makes progress.
func (p *Parser) resyncStatement(from source.Span) {
	for !p.at(token.EOF) {
		next := p.lx.Peek()
		if next.Kind == token.Semicolon {
			p.advance()
			return
		}
		if next.Kind == token.RBrace {
			return
		}
		if next.Span.Start > from.Start && next.HasNewlineBefore() {
			return
		}
		p.advance()
	}
}

func (p *Parser) spanFrom(start source.Span) source.Span {
	return start.Cover(p.lastSpan)
}
