// Package estree is the built-in printer for the estree tree format. It is
// the base printer every extension ultimately delegates to.
package estree

import (
	"trygap/internal/ast"
	"trygap/internal/doc"
	"trygap/internal/plugin"
)

// Format is the tree format name printers register under.
const Format = "estree"

// Printer prints every node kind of the tree. It keeps no state between
// calls and is safe for concurrent use.
type Printer struct{}

func New() *Printer { return &Printer{} }

// Extension returns the registry entry of the built-in printer.
func Extension() *plugin.Extension {
	return &plugin.Extension{
		Name:     Format,
		Printers: map[string]plugin.Printer{Format: New()},
	}
}

func (*Printer) Print(path *plugin.Path, opts *plugin.Options, print plugin.PrintFunc) doc.Doc {
	p := newPrinter(path, opts, print)
	return p.printNode(path.Node())
}

// printer carries one Print call.
type printer struct {
	tree  *ast.Tree
	path  *plugin.Path
	opts  *plugin.Options
	print plugin.PrintFunc
	src   []byte
}

func newPrinter(path *plugin.Path, opts *plugin.Options, print plugin.PrintFunc) *printer {
	if opts == nil {
		opts = plugin.NewOptions(nil)
	}
	p := &printer{tree: path.Tree(), path: path, opts: opts, print: print}
	if p.tree.File != nil {
		p.src = p.tree.File.Content
	}
	return p
}

// printNode prints id with parentheses when its position needs them.
func (p *printer) printNode(id ast.NodeID) doc.Doc {
	d := p.dispatch(id)
	if !needsParens(p.tree, id) {
		return d
	}
	return doc.Concat{doc.Text("("), d, doc.Text(")")}
}

// inner prints a descendant that the caller lays out itself instead of
// going through the print callback, so its comments are kept.
func (p *printer) inner(id ast.NodeID, fn func() doc.Doc) doc.Doc {
	return p.path.Call(id, func(*plugin.Path) doc.Doc {
		return PrintComments(p.tree, id, fn())
	})
}

// child prints id through the callback; an absent node prints nothing.
func (p *printer) child(id ast.NodeID) doc.Doc {
	if !id.IsValid() {
		return doc.Empty
	}
	return p.print(id)
}

func (p *printer) dispatch(id ast.NodeID) doc.Doc {
	t := p.tree
	switch t.Kind(id) {
	case ast.Program:
		return p.program(id)
	case ast.BlockStatement:
		return p.block(id)
	case ast.EmptyStatement:
		return doc.Empty
	case ast.Directive:
		return doc.Text(printDirective(t.Raw(id)) + ";")
	case ast.ExpressionStatement:
		return doc.Concat{p.child(t.Single(id).Arg), doc.Text(";")}
	case ast.VariableDeclaration:
		return p.variableDeclaration(id)
	case ast.VariableDeclarator:
		d := t.Declarator(id)
		return p.assignment(id, p.child(d.ID), doc.Text(" ="), d.Init)
	case ast.FunctionDeclaration, ast.FunctionExpression:
		return p.function(id)
	case ast.ArrowFunctionExpression:
		return p.arrow(id)
	case ast.ReturnStatement:
		return doc.Concat{doc.Text("return"), p.returnArgument(id)}
	case ast.ThrowStatement:
		return doc.Concat{doc.Text("throw"), p.returnArgument(id)}
	case ast.IfStatement:
		return p.ifStatement(id)
	case ast.WhileStatement:
		return p.whileStatement(id)
	case ast.ForStatement:
		return p.forStatement(id)
	case ast.BreakStatement:
		return doc.Text("break;")
	case ast.ContinueStatement:
		return doc.Text("continue;")
	case ast.TryStatement:
		return p.tryStatement(id)
	case ast.CatchClause:
		return p.catchClause(id)

	case ast.Identifier, ast.BooleanLiteral, ast.NullLiteral:
		return doc.Text(t.Raw(id))
	case ast.ThisExpression:
		return doc.Text("this")
	case ast.NumericLiteral:
		return doc.Text(printNumber(t.Raw(id)))
	case ast.StringLiteral:
		return doc.Text(printString(t.Raw(id)))
	case ast.TemplateLiteral:
		return doc.Lines(t.Raw(id), false)

	case ast.ArrayExpression, ast.ArrayPattern:
		return p.array(id)
	case ast.ObjectExpression, ast.ObjectPattern:
		return p.object(id)
	case ast.ObjectProperty:
		return p.property(id)
	case ast.SpreadElement, ast.RestElement:
		return doc.Concat{doc.Text("..."), p.child(t.Single(id).Arg)}
	case ast.AssignmentPattern:
		o := t.Op(id)
		return doc.Concat{p.child(o.Left), doc.Text(" = "), p.child(o.Right)}

	case ast.UnaryExpression:
		return p.unary(id)
	case ast.UpdateExpression:
		o := t.Op(id)
		if o.Prefix {
			return doc.Concat{doc.Text(o.Op.String()), p.child(o.Left)}
		}
		return doc.Concat{p.child(o.Left), doc.Text(o.Op.String())}
	case ast.BinaryExpression, ast.LogicalExpression:
		return p.binaryish(id)
	case ast.AssignmentExpression:
		o := t.Op(id)
		return p.assignment(id, p.child(o.Left), doc.Text(" "+o.Op.String()), o.Right)
	case ast.ConditionalExpression:
		return p.conditional(id)
	case ast.SequenceExpression:
		return p.sequence(id)
	case ast.CallExpression, ast.NewExpression:
		return p.call(id)
	case ast.MemberExpression:
		return p.member(id)
	}

	// unknown kinds keep their source text
	if n := t.Node(id); n != nil && t.File != nil {
		return doc.Lines(t.File.Text(n.Span), false)
	}
	return doc.Empty
}
