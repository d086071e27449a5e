package parser

import (
	"trygap/internal/ast"
	"trygap/internal/diag"
	"trygap/internal/token"
)

// parseExpression parses a comma-separated sequence.
func (p *Parser) parseExpression() (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	first, ok := p.parseAssign()
	if !ok || !p.at(token.Comma) {
		return first, ok
	}
	items := []ast.NodeID{first}
	for p.at(token.Comma) {
		p.advance()
		next, ok := p.parseAssign()
		if !ok {
			return ast.NoNodeID, false
		}
		items = append(items, next)
	}
	return p.tree.NewList(ast.SequenceExpression, p.spanFrom(start), items, false), true
}

func (p *Parser) parseAssign() (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	left, ok := p.parseConditional()
	if !ok {
		return ast.NoNodeID, false
	}
	op := p.lx.Peek().Kind
	if !op.IsAssignOp() {
		return left, true
	}
	if op == token.Assign {
		if k := p.tree.Kind(left); (k == ast.ArrayExpression || k == ast.ObjectExpression) && !p.toPattern(left) {
			return ast.NoNodeID, false
		}
	}
	switch p.tree.Kind(left) {
	case ast.Identifier, ast.MemberExpression:
	case ast.ObjectPattern, ast.ArrayPattern:
		if op != token.Assign {
			p.report(diag.SynInvalidAssignTarget, diag.SevError, p.tree.Node(left).Span, "invalid compound assignment target")
			return ast.NoNodeID, false
		}
	default:
		p.report(diag.SynInvalidAssignTarget, diag.SevError, p.tree.Node(left).Span, "invalid assignment target")
		return ast.NoNodeID, false
	}
	p.advance()
	right, ok := p.parseAssign()
	if !ok {
		return ast.NoNodeID, false
	}
	return p.tree.NewOp(ast.AssignmentExpression, p.spanFrom(start), op, left, right, false), true
}

func (p *Parser) parseConditional() (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	test, ok := p.parseBinary(1)
	if !ok || !p.at(token.Question) {
		return test, ok
	}
	p.advance()
	cons, ok := p.parseAssign()
	if !ok {
		return ast.NoNodeID, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' in conditional expression"); !ok {
		return ast.NoNodeID, false
	}
	alt, ok := p.parseAssign()
	if !ok {
		return ast.NoNodeID, false
	}
	return p.tree.NewCond(ast.ConditionalExpression, p.spanFrom(start), test, cons, alt), true
}

// parseBinary is a precedence climber over ast.Precedence. Only "**" is
// right-associative.
func (p *Parser) parseBinary(minPrec int) (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	left, ok := p.parseUnary()
	if !ok {
		return ast.NoNodeID, false
	}
	for {
		op := p.lx.Peek().Kind
		prec := ast.Precedence(op)
		if prec == 0 || prec < minPrec {
			return left, true
		}
		p.advance()
		nextMin := prec + 1
		if op == token.StarStar {
			nextMin = prec
		}
		right, ok := p.parseBinary(nextMin)
		if !ok {
			return ast.NoNodeID, false
		}
		kind := ast.BinaryExpression
		if ast.IsLogicalOp(op) {
			kind = ast.LogicalExpression
		}
		left = p.tree.NewOp(kind, p.spanFrom(start), op, left, right, false)
	}
}

func (p *Parser) parseUnary() (ast.NodeID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Bang, token.Tilde, token.Plus, token.Minus, token.KwTypeof, token.KwVoid, token.KwDelete:
		leading := p.peekComments()
		p.advance()
		arg, ok := p.parseUnary()
		if !ok {
			return ast.NoNodeID, false
		}
		id := p.tree.NewOp(ast.UnaryExpression, p.spanFrom(tok.Span), tok.Kind, ast.NoNodeID, arg, true)
		p.attachAll(id, leading, ast.CommentLeading)
		return id, true
	case token.PlusPlus, token.MinusMinus:
		leading := p.peekComments()
		p.advance()
		arg, ok := p.parseUnary()
		if !ok {
			return ast.NoNodeID, false
		}
		if !p.checkSimpleTarget(arg) {
			return ast.NoNodeID, false
		}
		id := p.tree.NewOp(ast.UpdateExpression, p.spanFrom(tok.Span), tok.Kind, arg, ast.NoNodeID, true)
		p.attachAll(id, leading, ast.CommentLeading)
		return id, true
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	expr, ok := p.parseLeftHandSide()
	if !ok {
		return ast.NoNodeID, false
	}
	next := p.lx.Peek()
	if (next.Kind == token.PlusPlus || next.Kind == token.MinusMinus) && !next.HasNewlineBefore() {
		if !p.checkSimpleTarget(expr) {
			return ast.NoNodeID, false
		}
		p.advance()
		return p.tree.NewOp(ast.UpdateExpression, p.spanFrom(start), next.Kind, expr, ast.NoNodeID, false), true
	}
	return expr, true
}

func (p *Parser) checkSimpleTarget(id ast.NodeID) bool {
	if k := p.tree.Kind(id); k == ast.Identifier || k == ast.MemberExpression {
		return true
	}
	p.report(diag.SynInvalidAssignTarget, diag.SevError, p.tree.Node(id).Span, "invalid update target")
	return false
}

func (p *Parser) parseLeftHandSide() (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	var expr ast.NodeID
	var ok bool
	if p.at(token.KwNew) {
		expr, ok = p.parseNew()
	} else {
		expr, ok = p.parsePrimary()
	}
	if !ok {
		return ast.NoNodeID, false
	}
	if p.tree.Kind(expr) == ast.ArrowFunctionExpression {
		return expr, true
	}
	for {
		switch {
		case p.atAny(token.Dot, token.LBracket):
			if expr, ok = p.parseMemberSuffix(expr); !ok {
				return ast.NoNodeID, false
			}
		case p.at(token.LParen):
			args, dangling, ok := p.parseArguments()
			if !ok {
				return ast.NoNodeID, false
			}
			expr = p.tree.NewCall(ast.CallExpression, p.spanFrom(start), expr, args)
			p.attachAll(expr, dangling, ast.CommentDangling)
		default:
			return expr, true
		}
	}
}

func (p *Parser) parseMemberSuffix(object ast.NodeID) (ast.NodeID, bool) {
	startSpan := p.tree.Node(object).Span
	if p.at(token.Dot) {
		p.advance()
		name := p.lx.Peek()
		if !name.IsIdentName() {
			p.err(diag.SynExpectIdentifier, "expected property name after '.'")
			return ast.NoNodeID, false
		}
		p.advance()
		prop := p.tree.NewLeaf(ast.Identifier, name.Span, name.Text)
		return p.tree.NewMember(p.spanFrom(startSpan), object, prop, false), true
	}
	p.advance() // '['
	prop, ok := p.parseExpression()
	if !ok {
		return ast.NoNodeID, false
	}
	if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']'"); !ok {
		return ast.NoNodeID, false
	}
	return p.tree.NewMember(p.spanFrom(startSpan), object, prop, true), true
}

// parseNew parses "new Callee(args)"; the argument list is optional.
func (p *Parser) parseNew() (ast.NodeID, bool) {
	leading := p.peekComments()
	kwTok := p.advance()
	var callee ast.NodeID
	var ok bool
	if p.at(token.KwNew) {
		callee, ok = p.parseNew()
	} else {
		callee, ok = p.parsePrimary()
	}
	if !ok {
		return ast.NoNodeID, false
	}
	for p.atAny(token.Dot, token.LBracket) {
		if callee, ok = p.parseMemberSuffix(callee); !ok {
			return ast.NoNodeID, false
		}
	}
	var args []ast.NodeID
	var dangling []ast.Comment
	if p.at(token.LParen) {
		if args, dangling, ok = p.parseArguments(); !ok {
			return ast.NoNodeID, false
		}
	}
	id := p.tree.NewCall(ast.NewExpression, p.spanFrom(kwTok.Span), callee, args)
	p.attachAll(id, leading, ast.CommentLeading)
	p.attachAll(id, dangling, ast.CommentDangling)
	return id, true
}

func (p *Parser) parseArguments() ([]ast.NodeID, []ast.Comment, bool) {
	p.advance() // '('
	args := make([]ast.NodeID, 0, 2)
	for !p.atAny(token.RParen, token.EOF) {
		arg, ok := p.parseSpreadOrAssign(ast.SpreadElement)
		if !ok {
			return nil, nil, false
		}
		args = append(args, arg)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	dangling := p.closeList(lastOf(args))
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after arguments"); !ok {
		return nil, nil, false
	}
	return args, dangling, true
}

func (p *Parser) parseSpreadOrAssign(spreadKind ast.Kind) (ast.NodeID, bool) {
	if !p.at(token.DotDotDot) {
		return p.parseAssign()
	}
	leading := p.peekComments()
	tok := p.advance()
	arg, ok := p.parseAssign()
	if !ok {
		return ast.NoNodeID, false
	}
	id := p.tree.NewSingle(spreadKind, p.spanFrom(tok.Span), arg)
	p.attachAll(id, leading, ast.CommentLeading)
	return id, true
}

func lastOf(items []ast.NodeID) ast.NodeID {
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].IsValid() {
			return items[i]
		}
	}
	return ast.NoNodeID
}

// toPattern reinterprets an already parsed expression as a binding pattern
// and reports why when it cannot.
func (p *Parser) toPattern(id ast.NodeID) bool {
	bad, issue := p.tree.ToPattern(id)
	switch issue {
	case ast.PatternOK:
		return true
	case ast.PatternRestNotLast:
		p.report(diag.SynRestMustBeLast, diag.SevError, p.tree.Node(bad).Span, "rest element must be last")
	default:
		sp := p.getDiagnosticSpan()
		if n := p.tree.Node(bad); n != nil {
			sp = n.Span
		}
		p.report(diag.SynInvalidAssignTarget, diag.SevError, sp, "invalid destructuring target")
	}
	return false
}
