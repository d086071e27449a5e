package parser

import (
	"context"

	"trygap/internal/ast"
	"trygap/internal/diag"
	"trygap/internal/token"
)

// parseStatementList parses statements until end (RBrace or EOF) without
// consuming it. Comments in front of the closing token trail the last
// statement; in an empty list they are returned as dangling.
//
// Empty statements are kept in body but never hold comments, since printers
// drop them from a list. Their comments trail the statement before them, or
// lead the next one when no statement came before.
func (p *Parser) parseStatementList(ctx context.Context, end token.Kind, allowDirectives bool) (directives, body []ast.NodeID, dangling []ast.Comment) {
	prologue := allowDirectives
	prev := ast.NoNodeID
	var carry []ast.Comment
	for {
		if ctx != nil && ctx.Err() != nil {
			return directives, body, dangling
		}
		next := p.lx.Peek()
		closing := next.Kind == end || next.Kind == token.EOF || p.opts.Enough()
		comments := p.peekComments()
		leading := comments
		if prev.IsValid() {
			var trailing []ast.Comment
			trailing, leading = splitTrailing(comments, closing)
			p.attachAll(prev, trailing, ast.CommentTrailing)
		}
		if closing {
			if prev.IsValid() {
				p.attachAll(prev, leading, ast.CommentTrailing)
			} else {
				dangling = append(carry, leading...)
			}
			return directives, body, dangling
		}
		if next.Kind == token.RBrace {
			p.err(diag.SynUnexpectedToken, "unexpected '}'")
			p.pending = append(p.pending, leading...)
			p.advance()
			continue
		}

		mark := p.pendingMark()
		stmt, ok := p.parseStatementBody()
		if !ok {
			p.resyncStatement(next.Span)
			p.flushPending(prev, mark)
			prologue = false
			continue
		}
		if prologue {
			if dir, isDirective := p.asDirective(stmt); isDirective {
				stmt = dir
				directives = append(directives, stmt)
			} else {
				prologue = false
			}
		}
		if !prologue {
			body = append(body, stmt)
		}
		if p.tree.Kind(stmt) == ast.EmptyStatement {
			if prev.IsValid() {
				p.attachAll(prev, leading, ast.CommentTrailing)
			} else {
				carry = append(carry, leading...)
			}
			p.flushPending(prev, mark)
			continue
		}
		p.attachAll(stmt, carry, ast.CommentLeading)
		carry = nil
		p.attachAll(stmt, leading, ast.CommentLeading)
		p.flushPending(stmt, mark)
		prev = stmt
	}
}

// parseStatement parses one statement outside of a statement list, such as
// the body of an if or a loop.
func (p *Parser) parseStatement() (ast.NodeID, bool) {
	leading := p.peekComments()
	mark := p.pendingMark()
	stmt, ok := p.parseStatementBody()
	if !ok {
		p.pending = append(p.pending[:mark], append(leading, p.pending[mark:]...)...)
		return ast.NoNodeID, false
	}
	p.attachAll(stmt, leading, ast.CommentLeading)
	p.flushPending(stmt, mark)
	return stmt, true
}

func (p *Parser) parseStatementBody() (ast.NodeID, bool) {
	switch p.lx.Peek().Kind {
	case token.LBrace:
		return p.parseBlock(false)
	case token.Semicolon:
		tok := p.advance()
		return p.tree.NewBare(ast.EmptyStatement, tok.Span), true
	case token.KwVar, token.KwLet, token.KwConst:
		start := p.lx.Peek().Span
		decl, ok := p.parseVarDecl(true)
		if !ok {
			return ast.NoNodeID, false
		}
		if !p.consumeSemicolon("variable declaration") {
			return ast.NoNodeID, false
		}
		p.tree.SetSpan(decl, p.spanFrom(start))
		return decl, true
	case token.KwFunction:
		return p.parseFunction(ast.FunctionDeclaration)
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwThrow:
		return p.parseThrowStmt()
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwFor:
		return p.parseForStmt()
	case token.KwBreak, token.KwContinue:
		return p.parseJumpStmt()
	case token.KwTry:
		return p.parseTryStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseBlock(allowDirectives bool) (ast.NodeID, bool) {
	open, ok := p.expect(token.LBrace, diag.SynExpectBlock, "expected '{'")
	if !ok {
		return ast.NoNodeID, false
	}
	directives, body, dangling := p.parseStatementList(nil, token.RBrace, allowDirectives)
	_, closed := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close block")
	id := p.tree.NewBlock(p.spanFrom(open.Span), directives, body)
	p.attachAll(id, dangling, ast.CommentDangling)
	return id, closed
}

// parseFunctionBody parses a block that may start with directives and
// where break/continue cannot reach an enclosing loop.
func (p *Parser) parseFunctionBody() (ast.NodeID, bool) {
	saved := p.loopDepth
	p.loopDepth = 0
	defer func() { p.loopDepth = saved }()
	return p.parseBlock(true)
}

// asDirective turns a prologue statement made of a bare string literal into
// a Directive node. Comments move along with it.
func (p *Parser) asDirective(stmt ast.NodeID) (ast.NodeID, bool) {
	if p.tree.Kind(stmt) != ast.ExpressionStatement {
		return stmt, false
	}
	arg := p.tree.Single(stmt).Arg
	argNode := p.tree.Node(arg)
	if argNode == nil || argNode.Kind != ast.StringLiteral || argNode.Parens {
		return stmt, false
	}
	stmtNode := p.tree.Node(stmt)
	dir := p.tree.NewLeaf(ast.Directive, stmtNode.Span, p.tree.Raw(arg))
	p.tree.Node(dir).Comments = append(argNode.Comments, stmtNode.Comments...)
	return dir, true
}

func (p *Parser) parseExprStmt() (ast.NodeID, bool) {
	start := p.lx.Peek().Span
	expr, ok := p.parseExpression()
	if !ok {
		return ast.NoNodeID, false
	}
	if !p.consumeSemicolon("expression") {
		return ast.NoNodeID, false
	}
	return p.tree.NewSingle(ast.ExpressionStatement, p.spanFrom(start), expr), true
}

// parseVarDecl parses "var|let|const a = 1, {b} = c" without the
// terminating semicolon.
func (p *Parser) parseVarDecl(requireInit bool) (ast.NodeID, bool) {
	kwTok := p.advance()
	var decls []ast.NodeID
	for {
		start := p.lx.Peek().Span
		target, ok := p.parseBindingAtom()
		if !ok {
			return ast.NoNodeID, false
		}
		init := ast.NoNodeID
		if p.at(token.Assign) {
			p.advance()
			if init, ok = p.parseAssign(); !ok {
				return ast.NoNodeID, false
			}
		} else if requireInit && (kwTok.Kind == token.KwConst || p.tree.Kind(target) != ast.Identifier) {
			p.report(diag.SynMissingInitializer, diag.SevError, p.spanFrom(start), "missing initializer in declaration")
		}
		decls = append(decls, p.tree.NewDeclarator(p.spanFrom(start), target, init))
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	return p.tree.NewVarDecl(p.spanFrom(kwTok.Span), kwTok.Kind, decls), true
}

func (p *Parser) parseReturnStmt() (ast.NodeID, bool) {
	kwTok := p.advance()
	arg := ast.NoNodeID
	if next := p.lx.Peek(); !next.HasNewlineBefore() && !p.atAny(token.Semicolon, token.RBrace, token.EOF) {
		var ok bool
		if arg, ok = p.parseExpression(); !ok {
			return ast.NoNodeID, false
		}
	}
	if !p.consumeSemicolon("return statement") {
		return ast.NoNodeID, false
	}
	return p.tree.NewSingle(ast.ReturnStatement, p.spanFrom(kwTok.Span), arg), true
}

func (p *Parser) parseThrowStmt() (ast.NodeID, bool) {
	kwTok := p.advance()
	if p.lx.Peek().HasNewlineBefore() {
		p.err(diag.SynExpectExpression, "illegal newline after throw")
		return ast.NoNodeID, false
	}
	arg, ok := p.parseExpression()
	if !ok {
		return ast.NoNodeID, false
	}
	if !p.consumeSemicolon("throw statement") {
		return ast.NoNodeID, false
	}
	return p.tree.NewSingle(ast.ThrowStatement, p.spanFrom(kwTok.Span), arg), true
}

func (p *Parser) parseJumpStmt() (ast.NodeID, bool) {
	kwTok := p.advance()
	kind := ast.BreakStatement
	if kwTok.Kind == token.KwContinue {
		kind = ast.ContinueStatement
	}
	if p.loopDepth == 0 {
		p.report(diag.SynIllegalBreak, diag.SevError, kwTok.Span, "'"+kwTok.Text+"' outside of a loop")
	}
	if !p.consumeSemicolon(kwTok.Text + " statement") {
		return ast.NoNodeID, false
	}
	return p.tree.NewBare(kind, p.spanFrom(kwTok.Span)), true
}

func (p *Parser) parseParenExpr(what string) (ast.NodeID, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after "+what); !ok {
		return ast.NoNodeID, false
	}
	expr, ok := p.parseExpression()
	if !ok {
		return ast.NoNodeID, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
		return ast.NoNodeID, false
	}
	return expr, true
}

func (p *Parser) parseIfStmt() (ast.NodeID, bool) {
	kwTok := p.advance()
	test, ok := p.parseParenExpr("if")
	if !ok {
		return ast.NoNodeID, false
	}
	cons, ok := p.parseStatement()
	if !ok {
		return ast.NoNodeID, false
	}
	alt := ast.NoNodeID
	var beforeElse []ast.Comment
	if p.at(token.KwElse) {
		// comments between the consequent and else dangle on the if
		beforeElse = p.peekComments()
		p.advance()
		if alt, ok = p.parseStatement(); !ok {
			return ast.NoNodeID, false
		}
	}
	id := p.tree.NewCond(ast.IfStatement, p.spanFrom(kwTok.Span), test, cons, alt)
	p.attachAll(id, beforeElse, ast.CommentDangling)
	return id, true
}

func (p *Parser) parseLoopBody() (ast.NodeID, bool) {
	p.loopDepth++
	defer func() { p.loopDepth-- }()
	return p.parseStatement()
}

func (p *Parser) parseWhileStmt() (ast.NodeID, bool) {
	kwTok := p.advance()
	test, ok := p.parseParenExpr("while")
	if !ok {
		return ast.NoNodeID, false
	}
	body, ok := p.parseLoopBody()
	if !ok {
		return ast.NoNodeID, false
	}
	return p.tree.NewLoop(ast.WhileStatement, p.spanFrom(kwTok.Span), ast.NoNodeID, test, ast.NoNodeID, body), true
}

func (p *Parser) parseForStmt() (ast.NodeID, bool) {
	kwTok := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after for"); !ok {
		return ast.NoNodeID, false
	}
	var init, test, update ast.NodeID
	var ok bool
	switch {
	case p.atAny(token.KwVar, token.KwLet, token.KwConst):
		init, ok = p.parseVarDecl(false)
	case !p.at(token.Semicolon):
		init, ok = p.parseExpression()
	default:
		ok = true
	}
	if !ok {
		return ast.NoNodeID, false
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after for initializer"); !ok {
		return ast.NoNodeID, false
	}
	if !p.at(token.Semicolon) {
		if test, ok = p.parseExpression(); !ok {
			return ast.NoNodeID, false
		}
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after for condition"); !ok {
		return ast.NoNodeID, false
	}
	if !p.at(token.RParen) {
		if update, ok = p.parseExpression(); !ok {
			return ast.NoNodeID, false
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after for clauses"); !ok {
		return ast.NoNodeID, false
	}
	body, ok := p.parseLoopBody()
	if !ok {
		return ast.NoNodeID, false
	}
	return p.tree.NewLoop(ast.ForStatement, p.spanFrom(kwTok.Span), init, test, update, body), true
}

func (p *Parser) parseTryStmt() (ast.NodeID, bool) {
	kwTok := p.advance()
	block, ok := p.parseBlock(false)
	if !ok {
		return ast.NoNodeID, false
	}

	handler := ast.NoNodeID
	if p.at(token.KwCatch) {
		catchTok := p.advance()
		param := ast.NoNodeID
		if p.at(token.LParen) {
			p.advance()
			if param, ok = p.parseBindingAtom(); !ok {
				return ast.NoNodeID, false
			}
			if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after catch parameter"); !ok {
				return ast.NoNodeID, false
			}
		}
		body, ok := p.parseBlock(false)
		if !ok {
			return ast.NoNodeID, false
		}
		handler = p.tree.NewCatch(p.spanFrom(catchTok.Span), param, body)
	}

	finalizer := ast.NoNodeID
	if p.at(token.KwFinally) {
		p.advance()
		if finalizer, ok = p.parseBlock(false); !ok {
			return ast.NoNodeID, false
		}
	}

	if !handler.IsValid() && !finalizer.IsValid() {
		diag.ReportError(p.opts.Reporter, diag.SynTryWithoutHandler, kwTok.Span, "missing catch or finally after try").
			WithNote(p.tree.Node(block).Span, "try block ends here").
			Emit()
		p.opts.CurrentErrors++
		return ast.NoNodeID, false
	}
	return p.tree.NewTry(p.spanFrom(kwTok.Span), block, handler, finalizer), true
}
