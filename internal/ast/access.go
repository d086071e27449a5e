package ast

// Typed payload accessors. Each returns nil when id is not of a matching kind.

func (t *Tree) payload(id NodeID, kinds ...Kind) uint32 {
	n := t.Node(id)
	if n == nil {
		return 0
	}
	for _, k := range kinds {
		if n.Kind == k {
			return uint32(n.Payload)
		}
	}
	return 0
}

func (t *Tree) Block(id NodeID) *BlockData {
	return t.Blocks.Get(t.payload(id, Program, BlockStatement))
}

func (t *Tree) List(id NodeID) *ListData {
	return t.Lists.Get(t.payload(id, ArrayExpression, ArrayPattern, ObjectExpression, ObjectPattern, SequenceExpression))
}

func (t *Tree) Single(id NodeID) *SingleData {
	return t.Singles.Get(t.payload(id, ExpressionStatement, ReturnStatement, ThrowStatement, SpreadElement, RestElement))
}

func (t *Tree) VarDecl(id NodeID) *VarDeclData {
	return t.VarDecls.Get(t.payload(id, VariableDeclaration))
}

func (t *Tree) Declarator(id NodeID) *DeclaratorData {
	return t.Declarators.Get(t.payload(id, VariableDeclarator))
}

func (t *Tree) Cond(id NodeID) *CondData {
	return t.Conds.Get(t.payload(id, IfStatement, ConditionalExpression))
}

func (t *Tree) Loop(id NodeID) *LoopData {
	return t.Loops.Get(t.payload(id, WhileStatement, ForStatement))
}

func (t *Tree) Try(id NodeID) *TryData {
	return t.Tries.Get(t.payload(id, TryStatement))
}

func (t *Tree) Catch(id NodeID) *CatchData {
	return t.Catches.Get(t.payload(id, CatchClause))
}

func (t *Tree) Func(id NodeID) *FuncData {
	return t.Funcs.Get(t.payload(id, FunctionDeclaration, FunctionExpression, ArrowFunctionExpression))
}

func (t *Tree) Leaf(id NodeID) *LeafData {
	return t.Leaves.Get(t.payload(id, Identifier, NumericLiteral, StringLiteral, BooleanLiteral, NullLiteral, TemplateLiteral, Directive))
}

func (t *Tree) Op(id NodeID) *OpData {
	return t.Ops.Get(t.payload(id, UnaryExpression, UpdateExpression, BinaryExpression, LogicalExpression, AssignmentExpression, AssignmentPattern))
}

func (t *Tree) Prop(id NodeID) *PropData {
	return t.Props.Get(t.payload(id, ObjectProperty))
}

func (t *Tree) Call(id NodeID) *CallData {
	return t.Calls.Get(t.payload(id, CallExpression, NewExpression))
}

func (t *Tree) Member(id NodeID) *MemberData {
	return t.Members.Get(t.payload(id, MemberExpression))
}

// Raw returns the verbatim text of a leaf node, or "".
func (t *Tree) Raw(id NodeID) string {
	if l := t.Leaf(id); l != nil {
		return l.Raw
	}
	return ""
}

// Children returns the direct children of id in source order.
func (t *Tree) Children(id NodeID) []NodeID {
	n := t.Node(id)
	if n == nil {
		return nil
	}
	var out []NodeID
	add := func(ids ...NodeID) {
		for _, c := range ids {
			if c.IsValid() {
				out = append(out, c)
			}
		}
	}
	switch n.Kind {
	case Program, BlockStatement:
		b := t.Block(id)
		add(b.Directives...)
		add(b.Body...)
	case ArrayExpression, ArrayPattern, ObjectExpression, ObjectPattern, SequenceExpression:
		add(t.List(id).Items...)
	case ExpressionStatement, ReturnStatement, ThrowStatement, SpreadElement, RestElement:
		add(t.Single(id).Arg)
	case VariableDeclaration:
		add(t.VarDecl(id).Decls...)
	case VariableDeclarator:
		d := t.Declarator(id)
		add(d.ID, d.Init)
	case IfStatement, ConditionalExpression:
		c := t.Cond(id)
		add(c.Test, c.Consequent, c.Alternate)
	case WhileStatement, ForStatement:
		l := t.Loop(id)
		add(l.Init, l.Test, l.Update, l.Body)
	case TryStatement:
		tr := t.Try(id)
		add(tr.Block, tr.Handler, tr.Finalizer)
	case CatchClause:
		c := t.Catch(id)
		add(c.Param, c.Body)
	case FunctionDeclaration, FunctionExpression, ArrowFunctionExpression:
		f := t.Func(id)
		add(f.ID)
		add(f.Params...)
		add(f.Body)
	case UnaryExpression, UpdateExpression, BinaryExpression, LogicalExpression, AssignmentExpression, AssignmentPattern:
		o := t.Op(id)
		add(o.Left, o.Right)
	case ObjectProperty:
		p := t.Prop(id)
		if p.Shorthand {
			add(p.Value)
		} else {
			add(p.Key, p.Value)
		}
	case CallExpression, NewExpression:
		c := t.Call(id)
		add(c.Callee)
		add(c.Args...)
	case MemberExpression:
		m := t.Member(id)
		add(m.Object, m.Property)
	}
	return out
}

// Walk visits id and its descendants depth-first, pre-order.
// Returning false from fn skips the node's children.
func (t *Tree) Walk(id NodeID, fn func(NodeID) bool) {
	if !id.IsValid() || !fn(id) {
		return
	}
	for _, c := range t.Children(id) {
		t.Walk(c, fn)
	}
}
