package estree

import (
	"github.com/mattn/go-runewidth"

	"trygap/internal/ast"
	"trygap/internal/doc"
)

type assignmentLayout uint8

const (
	layoutOnlyLeft assignmentLayout = iota
	layoutBreakAfterOperator
	layoutNeverBreakAfterOperator
	layoutBreakLHS
	layoutFluid
)

// minOverlapForBreak is how much wider than the tab width a property key
// must be before its value may move to the next line.
const minOverlapForBreak = 3

// assignment lays out "left op right" for assignments, declarators and
// object properties.
func (p *printer) assignment(id ast.NodeID, left, op doc.Doc, right ast.NodeID) doc.Doc {
	layout := p.chooseLayout(id, left, right)
	if layout == layoutOnlyLeft {
		return doc.GroupOf(left)
	}
	rightDoc := p.print(right)

	switch layout {
	case layoutBreakAfterOperator:
		return doc.GroupOf(doc.GroupOf(left), op, doc.GroupOf(doc.IndentOf(doc.Line, rightDoc)))
	case layoutNeverBreakAfterOperator:
		return doc.GroupOf(doc.GroupOf(left), op, doc.Text(" "), rightDoc)
	case layoutBreakLHS:
		return doc.GroupOf(left, op, doc.Text(" "), doc.GroupOf(rightDoc))
	}
	gid := doc.NewGroupID()
	return doc.GroupOf(
		doc.GroupOf(left),
		op,
		doc.Group{Contents: doc.IndentOf(doc.Line), ID: gid},
		doc.IndentIfBreak(gid, rightDoc),
	)
}

func (p *printer) chooseLayout(id ast.NodeID, left doc.Doc, right ast.NodeID) assignmentLayout {
	if !right.IsValid() {
		return layoutOnlyLeft
	}
	shortKey := p.hasShortKey(id, left)
	switch {
	case p.shouldBreakAfterOperator(right, shortKey):
		return layoutBreakAfterOperator
	case p.shouldNeverBreakAfterOperator(right, shortKey):
		return layoutNeverBreakAfterOperator
	case p.isComplexDestructuring(id):
		return layoutBreakLHS
	}
	return layoutFluid
}

func (p *printer) shouldBreakAfterOperator(right ast.NodeID, shortKey bool) bool {
	t := p.tree
	kind := t.Kind(right)
	if isBinaryish(kind) && !p.shouldInlineLogical(right) {
		return true
	}
	switch kind {
	case ast.SequenceExpression:
		return true
	case ast.ConditionalExpression:
		test := t.Cond(right).Test
		return isBinaryish(t.Kind(test)) && !p.shouldInlineLogical(test)
	}
	if shortKey {
		return false
	}
	node := right
	for t.Kind(node) == ast.UnaryExpression {
		node = t.Op(node).Right
	}
	return t.Kind(node) == ast.StringLiteral || p.isMemberChain(node)
}

// isMemberChain matches a.b.c where the chain starts at an identifier.
func (p *printer) isMemberChain(id ast.NodeID) bool {
	t := p.tree
	if t.Kind(id) != ast.MemberExpression {
		return false
	}
	obj := t.Member(id).Object
	if t.Kind(obj) == ast.Identifier {
		return true
	}
	return p.isMemberChain(obj)
}

func (p *printer) shouldNeverBreakAfterOperator(right ast.NodeID, shortKey bool) bool {
	t := p.tree
	switch t.Kind(right) {
	case ast.TemplateLiteral, ast.BooleanLiteral, ast.NumericLiteral:
		return true
	case ast.ArrowFunctionExpression:
		if t.Kind(t.Func(right).Body) == ast.ArrowFunctionExpression {
			return true
		}
	case ast.CallExpression:
		c := t.Call(right)
		if t.Kind(c.Callee) == ast.Identifier && t.Raw(c.Callee) == "require" &&
			len(c.Args) == 1 && t.Kind(c.Args[0]) == ast.StringLiteral {
			return true
		}
	}
	return shortKey
}

// hasShortKey reports an object property whose key is too short for a
// break after the colon to gain anything.
func (p *printer) hasShortKey(id ast.NodeID, key doc.Doc) bool {
	if p.tree.Kind(id) != ast.ObjectProperty {
		return false
	}
	text, ok := key.(doc.Text)
	if !ok {
		return false
	}
	return runewidth.StringWidth(string(text)) < p.opts.TabWidth+minOverlapForBreak
}

// isComplexDestructuring matches an object pattern target with more than
// two properties where some property renames or defaults its binding.
func (p *printer) isComplexDestructuring(id ast.NodeID) bool {
	t := p.tree
	var target ast.NodeID
	switch t.Kind(id) {
	case ast.VariableDeclarator:
		target = t.Declarator(id).ID
	case ast.AssignmentExpression:
		target = t.Op(id).Left
	default:
		return false
	}
	if t.Kind(target) != ast.ObjectPattern {
		return false
	}
	props := t.List(target).Items
	if len(props) <= 2 {
		return false
	}
	for _, prop := range props {
		if t.Kind(prop) != ast.ObjectProperty {
			continue
		}
		pd := t.Prop(prop)
		if pd.Computed || t.Kind(pd.Value) != ast.Identifier || t.Raw(pd.Key) != t.Raw(pd.Value) {
			return true
		}
	}
	return false
}
