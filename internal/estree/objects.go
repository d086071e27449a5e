package estree

import (
	"trygap/internal/ast"
	"trygap/internal/doc"
)

func (p *printer) object(id ast.NodeID) doc.Doc {
	t := p.tree
	kind := t.Kind(id)
	l := t.List(id)
	if len(l.Items) == 0 {
		if dangling := danglingComments(t, id, true); dangling != nil {
			return doc.GroupOf(doc.Text("{"), dangling, doc.Softline, doc.Text("}"))
		}
		return doc.Text("{}")
	}

	var props doc.Concat
	var sep doc.Concat
	for _, item := range l.Items {
		props = append(props, sep...)
		props = append(props, doc.GroupOf(p.print(item)))
		sep = doc.Concat{doc.Text(","), doc.Line}
		if p.nextLineEmpty(item) {
			sep = append(sep, doc.Hardline)
		}
	}
	var trailing doc.Doc = doc.IfBreakOf(doc.Text(","), doc.Empty)
	if t.Kind(l.Items[len(l.Items)-1]) == ast.RestElement {
		trailing = doc.Empty
	}
	content := doc.Concat{
		doc.Text("{"),
		doc.IndentOf(doc.Line, props),
		trailing,
		doc.Line,
		doc.Text("}"),
	}

	if kind == ast.ObjectPattern && p.hugsOnlyParam(t.Parent(id)) {
		return content
	}
	shouldBreak := kind == ast.ObjectExpression && l.Broken ||
		kind == ast.ObjectPattern && !t.Kind(t.Parent(id)).IsFunction() && p.hasNestedPattern(id)
	return doc.Group{Contents: content, Break: shouldBreak}
}

// hasNestedPattern reports a destructuring pattern with a property that
// itself destructures an object.
func (p *printer) hasNestedPattern(id ast.NodeID) bool {
	t := p.tree
	for _, item := range t.List(id).Items {
		if t.Kind(item) != ast.ObjectProperty {
			continue
		}
		value := t.Prop(item).Value
		if t.Kind(value) == ast.AssignmentPattern {
			value = t.Op(value).Left
		}
		if t.Kind(value) == ast.ObjectPattern && len(t.List(value).Items) > 0 {
			return true
		}
	}
	return false
}

func (p *printer) property(id ast.NodeID) doc.Doc {
	t := p.tree
	pd := t.Prop(id)
	if pd.Shorthand {
		return p.print(pd.Value)
	}
	key := p.propertyKey(id)
	if pd.Method {
		return doc.Concat{key, p.inner(pd.Value, func() doc.Doc { return p.functionTail(pd.Value) })}
	}
	return p.assignment(id, key, doc.Text(":"), pd.Value)
}

func (p *printer) propertyKey(id ast.NodeID) doc.Doc {
	t := p.tree
	pd := t.Prop(id)
	if pd.Computed {
		return doc.Concat{doc.Text("["), p.print(pd.Key), doc.Text("]")}
	}
	if t.Kind(pd.Key) == ast.StringLiteral && p.canUnquoteKeys(t.Parent(id)) {
		return p.inner(pd.Key, func() doc.Doc {
			return doc.Text(unquote(t.Raw(pd.Key)))
		})
	}
	return p.print(pd.Key)
}

// canUnquoteKeys reports whether every quoted key of the object can be
// written as a bare identifier.
func (p *printer) canUnquoteKeys(obj ast.NodeID) bool {
	t := p.tree
	for _, item := range t.List(obj).Items {
		if t.Kind(item) != ast.ObjectProperty {
			continue
		}
		pd := t.Prop(item)
		if pd.Computed || t.Kind(pd.Key) != ast.StringLiteral {
			continue
		}
		if !isSimpleKey(unquote(t.Raw(pd.Key))) {
			return false
		}
	}
	return true
}

func unquote(raw string) string {
	if len(raw) >= 2 {
		return raw[1 : len(raw)-1]
	}
	return raw
}

func (p *printer) array(id ast.NodeID) doc.Doc {
	t := p.tree
	items := t.List(id).Items
	if len(items) == 0 {
		if dangling := danglingComments(t, id, true); dangling != nil {
			return doc.GroupOf(doc.Text("["), dangling, doc.Softline, doc.Text("]"))
		}
		return doc.Text("[]")
	}

	var parts doc.Concat
	for i, item := range items {
		if item.IsValid() {
			parts = append(parts, doc.GroupOf(p.print(item)))
		}
		if i == len(items)-1 {
			break
		}
		parts = append(parts, doc.Text(","), doc.Line)
		if item.IsValid() && p.nextLineEmpty(item) {
			parts = append(parts, doc.Softline)
		}
	}

	last := items[len(items)-1]
	var trailing doc.Doc
	switch {
	case !last.IsValid():
		trailing = doc.Text(",")
	case t.Kind(last) == ast.RestElement:
		trailing = doc.Empty
	default:
		trailing = doc.IfBreakOf(doc.Text(","), doc.Empty)
	}
	return doc.Group{
		Contents: doc.Concat{
			doc.Text("["),
			doc.IndentOf(doc.Softline, parts, trailing),
			doc.Softline,
			doc.Text("]"),
		},
		Break: p.isMatrix(items),
	}
}

// isMatrix matches arrays of two or more objects or arrays of the same
// kind, each with more than one entry. Those always print one per line.
func (p *printer) isMatrix(items []ast.NodeID) bool {
	t := p.tree
	if len(items) <= 1 {
		return false
	}
	first := t.Kind(items[0])
	for _, item := range items {
		kind := t.Kind(item)
		if kind != first || kind != ast.ObjectExpression && kind != ast.ArrayExpression {
			return false
		}
		if len(t.List(item).Items) <= 1 {
			return false
		}
	}
	return true
}

// isObjectOrArrayWithItems matches a non-empty object or array literal.
func (p *printer) isObjectOrArrayWithItems(id ast.NodeID) bool {
	switch p.tree.Kind(id) {
	case ast.ObjectExpression, ast.ArrayExpression:
		return len(p.tree.List(id).Items) > 0
	}
	return false
}
