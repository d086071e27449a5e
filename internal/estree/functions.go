package estree

import (
	"trygap/internal/ast"
	"trygap/internal/doc"
)

func (p *printer) function(id ast.NodeID) doc.Doc {
	f := p.tree.Func(id)
	return doc.Concat{doc.Text("function "), p.child(f.ID), p.functionTail(id)}
}

// functionTail prints the parameter list and body shared by functions
// and methods.
func (p *printer) functionTail(id ast.NodeID) doc.Doc {
	f := p.tree.Func(id)
	return doc.Concat{doc.GroupOf(p.params(id)), doc.Text(" "), p.print(f.Body)}
}

func (p *printer) params(fn ast.NodeID) doc.Doc {
	t := p.tree
	f := t.Func(fn)
	if len(f.Params) == 0 {
		if dangling := danglingComments(t, fn, false); dangling != nil {
			return doc.Concat{doc.Text("("), dangling, doc.Text(")")}
		}
		return doc.Text("()")
	}
	printed := make([]doc.Doc, len(f.Params))
	for i, param := range f.Params {
		printed[i] = p.print(param)
	}
	if p.hugsOnlyParam(fn) {
		return doc.Concat{doc.Text("("), printed[0], doc.Text(")")}
	}
	var trailing doc.Doc = doc.IfBreakOf(doc.Text(","), doc.Empty)
	if t.Kind(f.Params[len(f.Params)-1]) == ast.RestElement {
		trailing = doc.Empty
	}
	return doc.Concat{
		doc.Text("("),
		doc.IndentOf(doc.Softline, doc.Join(doc.Concat{doc.Text(","), doc.Line}, printed), trailing),
		doc.Softline,
		doc.Text(")"),
	}
}

// hugsOnlyParam reports a function whose single parameter is a
// destructuring pattern printed directly against the parentheses.
func (p *printer) hugsOnlyParam(fn ast.NodeID) bool {
	t := p.tree
	if !t.Kind(fn).IsFunction() {
		return false
	}
	params := t.Func(fn).Params
	if len(params) != 1 || t.HasComments(params[0]) {
		return false
	}
	param := params[0]
	switch t.Kind(param) {
	case ast.ObjectPattern, ast.ArrayPattern:
		return true
	case ast.AssignmentPattern:
		o := t.Op(param)
		switch t.Kind(o.Left) {
		case ast.ObjectPattern, ast.ArrayPattern:
		default:
			return false
		}
		switch t.Kind(o.Right) {
		case ast.Identifier:
			return true
		case ast.ObjectExpression, ast.ArrayExpression:
			return len(t.List(o.Right).Items) == 0
		}
	}
	return false
}

func (p *printer) arrow(id ast.NodeID) doc.Doc {
	return p.arrowDoc(id, false)
}

// arrowDoc prints an arrow function. expandLast is set when the arrow is
// the hugged last argument of a call, where a broken body gets a trailing
// comma and the closing paren on its own line.
func (p *printer) arrowDoc(id ast.NodeID, expandLast bool) doc.Doc {
	t := p.tree
	f := t.Func(id)
	parts := doc.Concat{doc.GroupOf(p.params(id)), doc.Text(" =>")}
	if dangling := danglingComments(t, id, false); dangling != nil && len(f.Params) > 0 {
		parts = append(parts, doc.Text(" "), dangling)
	}

	body := p.print(f.Body)
	if !hasLeadingOwnLineComment(t, f.Body) {
		switch t.Kind(f.Body) {
		case ast.BlockStatement, ast.ObjectExpression, ast.ArrayExpression, ast.ArrowFunctionExpression:
			return doc.GroupOf(parts, doc.Text(" "), body)
		}
	}

	parenIfFlat := t.Kind(f.Body) == ast.ConditionalExpression &&
		!startsWith(t, f.Body, func(k ast.Kind) bool { return k == ast.ObjectExpression })
	inner := doc.Concat{doc.Line}
	if parenIfFlat {
		inner = append(inner, doc.IfBreakOf(doc.Empty, doc.Text("(")), body, doc.IfBreakOf(doc.Empty, doc.Text(")")))
	} else {
		inner = append(inner, body)
	}
	tail := doc.Concat{doc.Indent{Contents: inner}}
	if expandLast && !t.HasComments(id) {
		tail = append(tail, doc.IfBreakOf(doc.Text(","), doc.Empty), doc.Softline)
	}
	return doc.GroupOf(parts, doc.Group{Contents: tail})
}
