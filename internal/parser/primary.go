package parser

import (
	"trygap/internal/ast"
	"trygap/internal/diag"
	"trygap/internal/source"
	"trygap/internal/token"
)

func (p *Parser) parsePrimary() (ast.NodeID, bool) {
	leading := p.peekComments()
	id, ok := p.parsePrimaryBody()
	if ok {
		p.attachAll(id, leading, ast.CommentLeading)
	} else {
		p.pending = append(p.pending, leading...)
	}
	return id, ok
}

func (p *Parser) parsePrimaryBody() (ast.NodeID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		id := p.tree.NewLeaf(ast.Identifier, tok.Span, tok.Text)
		if next := p.lx.Peek(); next.Kind == token.FatArrow && !next.HasNewlineBefore() {
			return p.parseArrowBody(tok.Span, []ast.NodeID{id})
		}
		return id, true
	case token.NumberLit:
		p.advance()
		return p.tree.NewLeaf(ast.NumericLiteral, tok.Span, tok.Text), true
	case token.StringLit:
		p.advance()
		return p.tree.NewLeaf(ast.StringLiteral, tok.Span, tok.Text), true
	case token.TemplateLit:
		p.advance()
		return p.tree.NewLeaf(ast.TemplateLiteral, tok.Span, tok.Text), true
	case token.KwTrue, token.KwFalse:
		p.advance()
		return p.tree.NewLeaf(ast.BooleanLiteral, tok.Span, tok.Text), true
	case token.KwNull:
		p.advance()
		return p.tree.NewLeaf(ast.NullLiteral, tok.Span, tok.Text), true
	case token.KwThis:
		p.advance()
		return p.tree.NewBare(ast.ThisExpression, tok.Span), true
	case token.LBracket:
		return p.parseArrayLiteral()
	case token.LBrace:
		return p.parseObjectLiteral()
	case token.KwFunction:
		return p.parseFunction(ast.FunctionExpression)
	case token.LParen:
		return p.parseParenOrArrow()
	case token.EOF:
		p.err(diag.SynExpectExpression, "expected expression, got end of input")
		return ast.NoNodeID, false
	default:
		p.err(diag.SynExpectExpression, "expected expression, got '"+tok.Text+"'")
		return ast.NoNodeID, false
	}
}

// parseParenOrArrow parses "(...)" as a cover grammar: a parenthesised
// expression, or the parameter list of an arrow function when "=>" follows.
func (p *Parser) parseParenOrArrow() (ast.NodeID, bool) {
	open := p.advance()
	if p.at(token.RParen) {
		p.advance()
		if next := p.lx.Peek(); next.Kind != token.FatArrow || next.HasNewlineBefore() {
			p.err(diag.SynExpectExpression, "expected '=>' after '()'")
			return ast.NoNodeID, false
		}
		return p.parseArrowBody(open.Span, nil)
	}

	var items []ast.NodeID
	restSeen, trailingComma := false, false
	for {
		if p.at(token.DotDotDot) {
			restTok := p.advance()
			arg, ok := p.parseBindingAtom()
			if !ok {
				return ast.NoNodeID, false
			}
			items = append(items, p.tree.NewSingle(ast.RestElement, p.spanFrom(restTok.Span), arg))
			restSeen = true
			break
		}
		item, ok := p.parseAssign()
		if !ok {
			return ast.NoNodeID, false
		}
		items = append(items, item)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
		if p.at(token.RParen) {
			trailingComma = true
			break
		}
	}
	p.closeList(lastOf(items))
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
		return ast.NoNodeID, false
	}

	if next := p.lx.Peek(); next.Kind == token.FatArrow && !next.HasNewlineBefore() {
		for _, item := range items {
			if !p.toPattern(item) {
				return ast.NoNodeID, false
			}
		}
		return p.parseArrowBody(open.Span, items)
	}
	if restSeen || trailingComma {
		p.err(diag.SynExpectExpression, "expected '=>' after parameter list")
		return ast.NoNodeID, false
	}
	if len(items) == 1 {
		p.tree.Node(items[0]).Parens = true
		return items[0], true
	}
	seqSpan := p.tree.Node(items[0]).Span.Cover(p.tree.Node(items[len(items)-1]).Span)
	seq := p.tree.NewList(ast.SequenceExpression, seqSpan, items, false)
	p.tree.Node(seq).Parens = true
	return seq, true
}

func (p *Parser) parseArrowBody(start source.Span, params []ast.NodeID) (ast.NodeID, bool) {
	p.advance() // '=>'
	var body ast.NodeID
	var ok bool
	if p.at(token.LBrace) {
		body, ok = p.parseFunctionBody()
	} else {
		body, ok = p.parseAssign()
	}
	if !ok {
		return ast.NoNodeID, false
	}
	return p.tree.NewFunc(ast.ArrowFunctionExpression, p.spanFrom(start), ast.NoNodeID, params, body), true
}

func (p *Parser) parseArrayLiteral() (ast.NodeID, bool) {
	open := p.advance()
	var items []ast.NodeID
	for !p.atAny(token.RBracket, token.EOF) {
		if p.at(token.Comma) {
			p.advance()
			items = append(items, ast.NoNodeID)
			continue
		}
		item, ok := p.parseSpreadOrAssign(ast.SpreadElement)
		if !ok {
			return ast.NoNodeID, false
		}
		items = append(items, item)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	dangling := p.closeList(lastOf(items))
	if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close array"); !ok {
		return ast.NoNodeID, false
	}
	id := p.tree.NewList(ast.ArrayExpression, p.spanFrom(open.Span), items, false)
	p.attachAll(id, dangling, ast.CommentDangling)
	return id, true
}

func (p *Parser) parseObjectLiteral() (ast.NodeID, bool) {
	open := p.advance()
	broken := p.lx.Peek().HasNewlineBefore()
	var items []ast.NodeID
	for !p.atAny(token.RBrace, token.EOF) {
		leading := p.peekComments()
		item, ok := p.parseObjectMember()
		if !ok {
			return ast.NoNodeID, false
		}
		p.attachAll(item, leading, ast.CommentLeading)
		items = append(items, item)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	dangling := p.closeList(lastOf(items))
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close object"); !ok {
		return ast.NoNodeID, false
	}
	id := p.tree.NewList(ast.ObjectExpression, p.spanFrom(open.Span), items, broken)
	p.attachAll(id, dangling, ast.CommentDangling)
	return id, true
}

func (p *Parser) parseObjectMember() (ast.NodeID, bool) {
	if p.at(token.DotDotDot) {
		return p.parseSpreadOrAssign(ast.SpreadElement)
	}
	start := p.lx.Peek().Span
	key, computed, ok := p.parsePropertyKey()
	if !ok {
		return ast.NoNodeID, false
	}
	isName := !computed && p.tree.Kind(key) == ast.Identifier

	switch {
	case p.at(token.Colon):
		p.advance()
		value, ok := p.parseAssign()
		if !ok {
			return ast.NoNodeID, false
		}
		return p.tree.NewProp(p.spanFrom(start), key, value, computed, false, false), true

	case p.at(token.LParen):
		fnStart := p.lx.Peek().Span
		params, dangling, ok := p.parseParams()
		if !ok {
			return ast.NoNodeID, false
		}
		body, ok := p.parseFunctionBody()
		if !ok {
			return ast.NoNodeID, false
		}
		fn := p.tree.NewFunc(ast.FunctionExpression, p.spanFrom(fnStart), ast.NoNodeID, params, body)
		p.attachAll(fn, dangling, ast.CommentDangling)
		return p.tree.NewProp(p.spanFrom(start), key, fn, computed, false, true), true

	case isName && p.at(token.Assign):
		// only valid once the object is reinterpreted as a pattern
		p.advance()
		def, ok := p.parseAssign()
		if !ok {
			return ast.NoNodeID, false
		}
		value := p.tree.NewOp(ast.AssignmentExpression, p.spanFrom(start), token.Assign, key, def, false)
		return p.tree.NewProp(p.spanFrom(start), key, value, false, true, false), true

	case isName:
		return p.tree.NewProp(p.spanFrom(start), key, key, false, true, false), true

	default:
		p.err(diag.SynExpectColon, "expected ':' after property key")
		return ast.NoNodeID, false
	}
}

func (p *Parser) parsePropertyKey() (ast.NodeID, bool, bool) {
	tok := p.lx.Peek()
	switch {
	case tok.Kind == token.LBracket:
		p.advance()
		key, ok := p.parseAssign()
		if !ok {
			return ast.NoNodeID, false, false
		}
		if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after computed key"); !ok {
			return ast.NoNodeID, false, false
		}
		return key, true, true
	case tok.IsIdentName():
		p.advance()
		return p.tree.NewLeaf(ast.Identifier, tok.Span, tok.Text), false, true
	case tok.Kind == token.StringLit:
		p.advance()
		return p.tree.NewLeaf(ast.StringLiteral, tok.Span, tok.Text), false, true
	case tok.Kind == token.NumberLit:
		p.advance()
		return p.tree.NewLeaf(ast.NumericLiteral, tok.Span, tok.Text), false, true
	default:
		p.err(diag.SynExpectIdentifier, "expected property name")
		return ast.NoNodeID, false, false
	}
}

// parseFunction parses "function name(params) { body }". The name is
// required for declarations.
func (p *Parser) parseFunction(kind ast.Kind) (ast.NodeID, bool) {
	kwTok := p.advance()
	name := ast.NoNodeID
	if tok := p.lx.Peek(); tok.Kind == token.Ident {
		p.advance()
		name = p.tree.NewLeaf(ast.Identifier, tok.Span, tok.Text)
	} else if kind == ast.FunctionDeclaration {
		p.err(diag.SynExpectIdentifier, "expected function name")
		return ast.NoNodeID, false
	}
	params, dangling, ok := p.parseParams()
	if !ok {
		return ast.NoNodeID, false
	}
	body, ok := p.parseFunctionBody()
	if !ok {
		return ast.NoNodeID, false
	}
	id := p.tree.NewFunc(kind, p.spanFrom(kwTok.Span), name, params, body)
	p.attachAll(id, dangling, ast.CommentDangling)
	return id, true
}

func (p *Parser) parseParams() ([]ast.NodeID, []ast.Comment, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' before parameters"); !ok {
		return nil, nil, false
	}
	var params []ast.NodeID
	for !p.atAny(token.RParen, token.EOF) {
		start := p.lx.Peek().Span
		if p.at(token.DotDotDot) {
			p.advance()
			arg, ok := p.parseBindingAtom()
			if !ok {
				return nil, nil, false
			}
			params = append(params, p.tree.NewSingle(ast.RestElement, p.spanFrom(start), arg))
			if p.at(token.Comma) {
				p.err(diag.SynRestMustBeLast, "rest parameter must be last")
				return nil, nil, false
			}
			break
		}
		param, ok := p.parseBindingAtom()
		if !ok {
			return nil, nil, false
		}
		if p.at(token.Assign) {
			p.advance()
			def, ok := p.parseAssign()
			if !ok {
				return nil, nil, false
			}
			param = p.tree.NewOp(ast.AssignmentPattern, p.spanFrom(start), token.Assign, param, def, false)
		}
		params = append(params, param)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	dangling := p.closeList(lastOf(params))
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters"); !ok {
		return nil, nil, false
	}
	return params, dangling, true
}

// parseBindingAtom parses an identifier or a destructuring pattern.
func (p *Parser) parseBindingAtom() (ast.NodeID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		leading := p.peekComments()
		p.advance()
		id := p.tree.NewLeaf(ast.Identifier, tok.Span, tok.Text)
		p.attachAll(id, leading, ast.CommentLeading)
		return id, true
	case token.LBrace, token.LBracket:
		var id ast.NodeID
		var ok bool
		if tok.Kind == token.LBrace {
			id, ok = p.parseObjectLiteral()
		} else {
			id, ok = p.parseArrayLiteral()
		}
		if !ok || !p.toPattern(id) {
			return ast.NoNodeID, false
		}
		return id, true
	default:
		p.err(diag.SynExpectIdentifier, "expected identifier or pattern")
		return ast.NoNodeID, false
	}
}
