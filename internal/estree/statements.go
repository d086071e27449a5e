package estree

import (
	"trygap/internal/ast"
	"trygap/internal/doc"
)

func (p *printer) program(id ast.NodeID) doc.Doc {
	body := p.blockBody(id)
	if body == nil {
		return doc.Empty
	}
	return doc.Concat{body, doc.Hardline}
}

// block prints "{", the indented body and "}". The closing brace is always
// the last element of the returned sequence.
func (p *printer) block(id ast.NodeID) doc.Doc {
	if body := p.blockBody(id); body != nil {
		return doc.Concat{doc.Text("{"), doc.IndentOf(doc.Hardline, body), doc.Hardline, doc.Text("}")}
	}
	if p.emptyBlockStaysFlat(id) {
		return doc.Text("{}")
	}
	return doc.Concat{doc.Text("{"), doc.Hardline, doc.Text("}")}
}

func (p *printer) emptyBlockStaysFlat(id ast.NodeID) bool {
	t := p.tree
	parent := t.Parent(id)
	switch t.Kind(parent) {
	case ast.FunctionDeclaration, ast.FunctionExpression, ast.ArrowFunctionExpression,
		ast.ForStatement, ast.WhileStatement:
		return true
	case ast.CatchClause:
		try := t.Try(t.Parent(parent))
		return try == nil || !try.Finalizer.IsValid()
	}
	return false
}

// BlockBody prints the statements of a Program or BlockStatement without
// braces, or returns nil when there is nothing to print.
func (p *printer) blockBody(id ast.NodeID) doc.Doc {
	t := p.tree
	b := t.Block(id)
	if b == nil {
		return nil
	}
	hasBody := false
	for _, s := range b.Body {
		if t.Kind(s) != ast.EmptyStatement {
			hasBody = true
			break
		}
	}
	dangling := danglingComments(t, id, false)
	hasDirectives := len(b.Directives) > 0
	if !hasDirectives && !hasBody && dangling == nil {
		return nil
	}

	var parts doc.Concat
	if hasDirectives {
		parts = append(parts, p.statementSequence(b.Directives))
		if hasBody || dangling != nil {
			parts = append(parts, doc.Hardline)
			if p.nextLineEmpty(b.Directives[len(b.Directives)-1]) {
				parts = append(parts, doc.Hardline)
			}
		}
	}
	if hasBody {
		parts = append(parts, p.statementSequence(b.Body))
	}
	if dangling != nil {
		if hasBody {
			parts = append(parts, doc.Hardline)
		}
		parts = append(parts, dangling)
	}
	return parts
}

// statementSequence joins statements with line breaks, keeping at most one
// blank line where the source had one. Empty statements are dropped.
func (p *printer) statementSequence(ids []ast.NodeID) doc.Doc {
	t := p.tree
	last := -1
	for i, s := range ids {
		if t.Kind(s) != ast.EmptyStatement {
			last = i
		}
	}
	var parts doc.Concat
	for i, s := range ids {
		if t.Kind(s) == ast.EmptyStatement {
			continue
		}
		parts = append(parts, p.print(s))
		if i != last {
			parts = append(parts, doc.Hardline)
			if p.nextLineEmpty(s) {
				parts = append(parts, doc.Hardline)
			}
		}
	}
	return parts
}

func (p *printer) nextLineEmpty(id ast.NodeID) bool {
	n := p.tree.Node(id)
	if n == nil {
		return false
	}
	return isNextLineEmpty(p.src, int(n.Span.End))
}

func (p *printer) variableDeclaration(id ast.NodeID) doc.Doc {
	t := p.tree
	v := t.VarDecl(id)
	parent := t.Parent(id)
	inForHead := t.Kind(parent) == ast.ForStatement && t.Loop(parent).Body != id

	hasValue := false
	printed := make([]doc.Doc, len(v.Decls))
	for i, d := range v.Decls {
		printed[i] = p.print(d)
		if decl := t.Declarator(d); decl != nil && decl.Init.IsValid() {
			hasValue = true
		}
	}

	parts := doc.Concat{doc.Text(v.Keyword.String())}
	if len(printed) > 0 {
		parts = append(parts, doc.Text(" "), printed[0])
	}
	var rest doc.Concat
	for _, d := range printed[min(1, len(printed)):] {
		sep := doc.Line
		if hasValue && !inForHead {
			sep = doc.Hardline
		}
		rest = append(rest, doc.Text(","), sep, d)
	}
	if len(rest) > 0 {
		parts = append(parts, doc.Indent{Contents: rest})
	}
	if !inForHead {
		parts = append(parts, doc.Text(";"))
	}
	return doc.Group{Contents: parts}
}

func (p *printer) returnArgument(id ast.NodeID) doc.Doc {
	t := p.tree
	arg := t.Single(id).Arg
	var parts doc.Concat
	switch {
	case !arg.IsValid():
	case hasLeadingOwnLineComment(t, arg):
		parts = append(parts, doc.Text(" ("), doc.IndentOf(doc.Hardline, p.print(arg)), doc.Hardline, doc.Text(")"))
	case isBinaryish(t.Kind(arg)) || t.Kind(arg) == ast.SequenceExpression:
		parts = append(parts, doc.Text(" "), doc.GroupOf(
			doc.IfBreakOf(doc.Text("("), doc.Empty),
			doc.IndentOf(doc.Softline, p.print(arg)),
			doc.Softline,
			doc.IfBreakOf(doc.Text(")"), doc.Empty),
		))
	default:
		parts = append(parts, doc.Text(" "), p.print(arg))
	}
	if dangling := danglingComments(t, id, false); dangling != nil {
		parts = append(parts, doc.Text(" "), dangling)
	}
	return append(parts, doc.Text(";"))
}

// clause prints the body of if/while/for after its header.
func (p *printer) clause(id ast.NodeID, forceSpace bool) doc.Doc {
	switch kind := p.tree.Kind(id); {
	case kind == ast.EmptyStatement:
		return doc.Text(";")
	case kind == ast.BlockStatement || forceSpace:
		return doc.Concat{doc.Text(" "), p.print(id)}
	}
	return doc.IndentOf(doc.Line, p.print(id))
}

// head prints a parenthesised statement head that breaks inside the parens.
func (p *printer) head(keyword string, test ast.NodeID) doc.Doc {
	return doc.Concat{
		doc.Text(keyword + " ("),
		doc.GroupOf(doc.IndentOf(doc.Softline, p.child(test)), doc.Softline),
		doc.Text(")"),
	}
}

func (p *printer) ifStatement(id ast.NodeID) doc.Doc {
	t := p.tree
	c := t.Cond(id)
	opening := doc.GroupOf(p.head("if", c.Test), doc.GroupOf(p.clause(c.Consequent, false)))
	parts := doc.Concat{opening}
	if c.Alternate.IsValid() {
		ownLine := hasTrailingLineComment(t, c.Consequent) || lastDanglingIsLine(t, id)
		if t.Kind(c.Consequent) == ast.BlockStatement && !ownLine {
			parts = append(parts, doc.Text(" "))
		} else {
			parts = append(parts, doc.Hardline)
		}
		if dangling := danglingComments(t, id, false); dangling != nil {
			var sep doc.Doc = doc.Text(" ")
			if ownLine {
				sep = doc.Hardline
			}
			parts = append(parts, dangling, sep)
		}
		elseIf := t.Kind(c.Alternate) == ast.IfStatement
		parts = append(parts, doc.Text("else"), doc.GroupOf(p.clause(c.Alternate, elseIf)))
	}
	return doc.Group{Contents: parts}
}

func (p *printer) whileStatement(id ast.NodeID) doc.Doc {
	l := p.tree.Loop(id)
	return doc.GroupOf(p.head("while", l.Test), p.clause(l.Body, false))
}

func (p *printer) forStatement(id ast.NodeID) doc.Doc {
	l := p.tree.Loop(id)
	body := p.clause(l.Body, false)
	var comments doc.Doc = doc.Empty
	if dangling := danglingComments(p.tree, id, false); dangling != nil {
		comments = doc.Concat{dangling, doc.Softline}
	}
	if !l.Init.IsValid() && !l.Test.IsValid() && !l.Update.IsValid() {
		return doc.Concat{comments, doc.GroupOf(doc.Text("for (;;)"), body)}
	}
	return doc.Concat{comments, doc.GroupOf(
		doc.Text("for ("),
		doc.GroupOf(
			doc.IndentOf(
				doc.Softline, p.child(l.Init), doc.Text(";"),
				doc.Line, p.child(l.Test), doc.Text(";"),
				doc.Line, p.child(l.Update),
			),
			doc.Softline,
		),
		doc.Text(")"),
		body,
	)}
}

func (p *printer) tryStatement(id ast.NodeID) doc.Doc {
	tr := p.tree.Try(id)
	parts := doc.Concat{doc.Text("try "), p.print(tr.Block)}
	if tr.Handler.IsValid() {
		parts = append(parts, doc.Text(" "), p.print(tr.Handler))
	}
	if tr.Finalizer.IsValid() {
		parts = append(parts, doc.Text(" finally "), p.print(tr.Finalizer))
	}
	return parts
}

func (p *printer) catchClause(id ast.NodeID) doc.Doc {
	t := p.tree
	c := t.Catch(id)
	if !c.Param.IsValid() {
		return doc.Concat{doc.Text("catch "), p.print(c.Body)}
	}
	param := p.print(c.Param)
	for _, cm := range t.Node(c.Param).Comments {
		if cm.IsLine() || cm.NewlineBefore || cm.NewlineAfter {
			param = doc.Concat{doc.IndentOf(doc.Softline, param), doc.Softline}
			break
		}
	}
	return doc.Concat{doc.Text("catch ("), param, doc.Text(") "), p.print(c.Body)}
}

func isBinaryish(k ast.Kind) bool {
	return k == ast.BinaryExpression || k == ast.LogicalExpression
}
