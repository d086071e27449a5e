package estree

import (
	"trygap/internal/ast"
	"trygap/internal/doc"
	"trygap/internal/token"
)

func (p *printer) unary(id ast.NodeID) doc.Doc {
	o := p.tree.Op(id)
	parts := doc.Concat{doc.Text(o.Op.String())}
	switch o.Op {
	case token.KwTypeof, token.KwVoid, token.KwDelete:
		parts = append(parts, doc.Text(" "))
	}
	if p.tree.HasComments(o.Right) {
		return append(parts, doc.GroupOf(doc.Text("("), doc.IndentOf(doc.Softline, p.print(o.Right)), doc.Softline, doc.Text(")")))
	}
	return append(parts, p.print(o.Right))
}

func (p *printer) binaryish(id ast.NodeID) doc.Doc {
	t := p.tree
	o := t.Op(id)
	parent := t.Parent(id)
	pkind := t.Kind(parent)

	insideParens := false
	switch pkind {
	case ast.IfStatement, ast.WhileStatement:
		insideParens = true
	}
	parts := p.binaryParts(id, false, insideParens)
	if insideParens {
		return parts
	}

	switch {
	case pkind == ast.UnaryExpression,
		(pkind == ast.CallExpression || pkind == ast.NewExpression) && t.Call(parent).Callee == id,
		pkind == ast.MemberExpression && t.Member(parent).Object == id:
		return doc.GroupOf(doc.IndentOf(doc.Softline, parts), doc.Softline)
	}

	shouldNotIndent := false
	switch pkind {
	case ast.ReturnStatement, ast.ThrowStatement:
		shouldNotIndent = true
	case ast.ArrowFunctionExpression:
		shouldNotIndent = t.Func(parent).Body == id
	case ast.ForStatement:
		shouldNotIndent = t.Loop(parent).Body != id
	case ast.ConditionalExpression:
		switch t.Kind(t.Parent(parent)) {
		case ast.ReturnStatement, ast.ThrowStatement, ast.CallExpression, ast.NewExpression:
		default:
			shouldNotIndent = true
		}
	}
	indentIfInlining := pkind == ast.AssignmentExpression || pkind == ast.VariableDeclarator || pkind == ast.ObjectProperty
	inline := p.shouldInlineLogical(id)
	samePrecedenceLeft := isBinaryish(t.Kind(o.Left)) && shouldFlatten(o.Op, t.Op(o.Left).Op)
	if shouldNotIndent || (inline && !samePrecedenceLeft) || (!inline && indentIfInlining) {
		return doc.Group{Contents: parts}
	}
	if len(parts) == 0 {
		return doc.Empty
	}

	head := 1
	for i, part := range parts {
		if _, ok := part.(doc.Group); ok {
			head = i + 1
			break
		}
	}
	rest := parts[head:]
	out := append(doc.Concat{}, parts[:head]...)
	out = append(out, doc.Indent{Contents: rest})
	return doc.Group{Contents: out}
}

// binaryParts flattens a chain of operators of equal precedence into one
// list: the left operand, then " op right" pieces.
func (p *printer) binaryParts(id ast.NodeID, nested, insideParens bool) doc.Concat {
	t := p.tree
	o := t.Op(id)
	kind := t.Kind(id)

	var parts doc.Concat
	if left := o.Left; isBinaryish(t.Kind(left)) && shouldFlatten(o.Op, t.Op(left).Op) {
		p.descend(left, func() {
			parts = p.binaryParts(left, true, insideParens)
		})
	} else {
		parts = append(parts, doc.GroupOf(p.print(left)))
	}

	var right doc.Doc
	if p.shouldInlineLogical(id) {
		right = doc.Concat{doc.Text(o.Op.String()), doc.Text(" "), p.print(o.Right)}
	} else {
		right = doc.Concat{doc.Text(o.Op.String()), doc.Line, p.print(o.Right)}
	}

	parent := t.Parent(id)
	forceBreak := hasTrailingLineComment(t, o.Left)
	grouped := forceBreak ||
		!(insideParens && kind == ast.LogicalExpression) &&
			t.Kind(parent) != kind && t.Kind(o.Left) != kind && t.Kind(o.Right) != kind

	parts = append(parts, doc.Text(" "))
	if grouped {
		parts = append(parts, doc.Group{Contents: right, Break: forceBreak})
	} else {
		parts = append(parts, right)
	}

	if nested && t.HasComments(id) {
		return doc.Concat{PrintComments(t, id, parts)}
	}
	return parts
}

// shouldInlineLogical keeps a non-empty object or array on the operator's line.
func (p *printer) shouldInlineLogical(id ast.NodeID) bool {
	t := p.tree
	if t.Kind(id) != ast.LogicalExpression {
		return false
	}
	right := t.Op(id).Right
	switch t.Kind(right) {
	case ast.ObjectExpression, ast.ArrayExpression:
		return len(t.List(right).Items) > 0
	}
	return false
}

func (p *printer) conditional(id ast.NodeID) doc.Doc {
	c := p.tree.Cond(id)
	return doc.GroupOf(
		p.print(c.Test),
		doc.IndentOf(
			doc.Line, doc.Text("? "), p.print(c.Consequent),
			doc.Line, doc.Text(": "), p.print(c.Alternate),
		),
	)
}

func (p *printer) sequence(id ast.NodeID) doc.Doc {
	t := p.tree
	items := t.List(id).Items
	printed := make([]doc.Doc, len(items))
	for i, item := range items {
		printed[i] = p.print(item)
	}
	switch t.Kind(t.Parent(id)) {
	case ast.ExpressionStatement, ast.ForStatement:
		if len(printed) == 0 {
			return doc.Empty
		}
		parts := doc.Concat{printed[0]}
		for _, d := range printed[1:] {
			parts = append(parts, doc.Text(","), doc.IndentOf(doc.Line, d))
		}
		return doc.Group{Contents: parts}
	}
	return doc.Group{Contents: doc.Join(doc.Concat{doc.Text(","), doc.Line}, printed)}
}

// member prints a property access outside of a call chain.
func (p *printer) member(id ast.NodeID) doc.Doc {
	t := p.tree
	m := t.Member(id)
	lookup := p.memberLookup(id)
	inline := m.Computed ||
		t.Kind(m.Object) == ast.Identifier && t.Kind(t.Parent(id)) != ast.MemberExpression
	if !inline {
		switch parent := p.firstNonMemberParent(id); t.Kind(parent) {
		case ast.NewExpression:
			inline = true
		case ast.AssignmentExpression:
			inline = t.Kind(t.Op(parent).Left) != ast.Identifier
		}
	}
	if inline {
		return doc.Concat{p.print(m.Object), lookup}
	}
	return doc.Concat{p.print(m.Object), doc.GroupOf(doc.IndentOf(doc.Softline, lookup))}
}

func (p *printer) firstNonMemberParent(id ast.NodeID) ast.NodeID {
	t := p.tree
	parent := t.Parent(id)
	for t.Kind(parent) == ast.MemberExpression {
		parent = t.Parent(parent)
	}
	return parent
}

func (p *printer) memberLookup(id ast.NodeID) doc.Doc {
	t := p.tree
	m := t.Member(id)
	if !m.Computed {
		return doc.Concat{doc.Text("."), p.print(m.Property)}
	}
	switch t.Kind(m.Property) {
	case ast.NumericLiteral, ast.StringLiteral:
		return doc.Concat{doc.Text("["), p.print(m.Property), doc.Text("]")}
	}
	return doc.GroupOf(doc.Text("["), doc.IndentOf(doc.Softline, p.print(m.Property)), doc.Softline, doc.Text("]"))
}
