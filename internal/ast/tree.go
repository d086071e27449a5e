package ast

import (
	"trygap/internal/source"
	"trygap/internal/token"
)

type Hints struct{ Nodes uint }

// Tree owns every node of one parsed file.
type Tree struct {
	File *source.File
	Root NodeID

	Nodes       *Arena[Node]
	Blocks      *Arena[BlockData]
	Lists       *Arena[ListData]
	Singles     *Arena[SingleData]
	VarDecls    *Arena[VarDeclData]
	Declarators *Arena[DeclaratorData]
	Conds       *Arena[CondData]
	Loops       *Arena[LoopData]
	Tries       *Arena[TryData]
	Catches     *Arena[CatchData]
	Funcs       *Arena[FuncData]
	Leaves      *Arena[LeafData]
	Ops         *Arena[OpData]
	Props       *Arena[PropData]
	Calls       *Arena[CallData]
	Members     *Arena[MemberData]
}

func NewTree(file *source.File, hints Hints) *Tree {
	if hints.Nodes == 0 {
		hints.Nodes = 1 << 8
	}
	small := hints.Nodes/8 + 1
	return &Tree{
		File:        file,
		Nodes:       NewArena[Node](hints.Nodes),
		Blocks:      NewArena[BlockData](small),
		Lists:       NewArena[ListData](small),
		Singles:     NewArena[SingleData](small),
		VarDecls:    NewArena[VarDeclData](small),
		Declarators: NewArena[DeclaratorData](small),
		Conds:       NewArena[CondData](small),
		Loops:       NewArena[LoopData](small),
		Tries:       NewArena[TryData](small),
		Catches:     NewArena[CatchData](small),
		Funcs:       NewArena[FuncData](small),
		Leaves:      NewArena[LeafData](hints.Nodes / 2),
		Ops:         NewArena[OpData](small),
		Props:       NewArena[PropData](small),
		Calls:       NewArena[CallData](small),
		Members:     NewArena[MemberData](small),
	}
}

func (t *Tree) Node(id NodeID) *Node {
	return t.Nodes.Get(uint32(id))
}

// Kind returns the node kind, or Invalid for NoNodeID.
func (t *Tree) Kind(id NodeID) Kind {
	if n := t.Node(id); n != nil {
		return n.Kind
	}
	return Invalid
}

// Parent returns the parent of id, or NoNodeID.
func (t *Tree) Parent(id NodeID) NodeID {
	if n := t.Node(id); n != nil {
		return n.Parent
	}
	return NoNodeID
}

func (t *Tree) newNode(kind Kind, sp source.Span, payload PayloadID, children ...NodeID) NodeID {
	id := NodeID(t.Nodes.Allocate(Node{Kind: kind, Span: sp, Payload: payload}))
	t.adopt(id, children...)
	return id
}

func (t *Tree) adopt(parent NodeID, children ...NodeID) {
	for _, c := range children {
		if n := t.Node(c); n != nil {
			n.Parent = parent
		}
	}
}

// SetSpan widens or replaces the node's span after construction.
func (t *Tree) SetSpan(id NodeID, sp source.Span) {
	if n := t.Node(id); n != nil {
		n.Span = sp
	}
}

// ===== constructors =====

func (t *Tree) NewProgram(sp source.Span, directives, body []NodeID) NodeID {
	p := PayloadID(t.Blocks.Allocate(BlockData{Directives: directives, Body: body}))
	id := t.newNode(Program, sp, p, directives...)
	t.adopt(id, body...)
	t.Root = id
	return id
}

func (t *Tree) NewBlock(sp source.Span, directives, body []NodeID) NodeID {
	p := PayloadID(t.Blocks.Allocate(BlockData{Directives: directives, Body: body}))
	id := t.newNode(BlockStatement, sp, p, directives...)
	t.adopt(id, body...)
	return id
}

func (t *Tree) NewLeaf(kind Kind, sp source.Span, raw string) NodeID {
	p := PayloadID(t.Leaves.Allocate(LeafData{Raw: raw}))
	return t.newNode(kind, sp, p)
}

// NewBare allocates a node without payload (EmptyStatement, BreakStatement,
// ContinueStatement, ThisExpression).
func (t *Tree) NewBare(kind Kind, sp source.Span) NodeID {
	return t.newNode(kind, sp, NoPayloadID)
}

func (t *Tree) NewSingle(kind Kind, sp source.Span, arg NodeID) NodeID {
	p := PayloadID(t.Singles.Allocate(SingleData{Arg: arg}))
	return t.newNode(kind, sp, p, arg)
}

func (t *Tree) NewList(kind Kind, sp source.Span, items []NodeID, broken bool) NodeID {
	p := PayloadID(t.Lists.Allocate(ListData{Items: items, Broken: broken}))
	return t.newNode(kind, sp, p, items...)
}

func (t *Tree) NewVarDecl(sp source.Span, keyword token.Kind, decls []NodeID) NodeID {
	p := PayloadID(t.VarDecls.Allocate(VarDeclData{Keyword: keyword, Decls: decls}))
	return t.newNode(VariableDeclaration, sp, p, decls...)
}

func (t *Tree) NewDeclarator(sp source.Span, target, init NodeID) NodeID {
	p := PayloadID(t.Declarators.Allocate(DeclaratorData{ID: target, Init: init}))
	return t.newNode(VariableDeclarator, sp, p, target, init)
}

func (t *Tree) NewCond(kind Kind, sp source.Span, test, cons, alt NodeID) NodeID {
	p := PayloadID(t.Conds.Allocate(CondData{Test: test, Consequent: cons, Alternate: alt}))
	return t.newNode(kind, sp, p, test, cons, alt)
}

func (t *Tree) NewLoop(kind Kind, sp source.Span, init, test, update, body NodeID) NodeID {
	p := PayloadID(t.Loops.Allocate(LoopData{Init: init, Test: test, Update: update, Body: body}))
	return t.newNode(kind, sp, p, init, test, update, body)
}

func (t *Tree) NewTry(sp source.Span, block, handler, finalizer NodeID) NodeID {
	p := PayloadID(t.Tries.Allocate(TryData{Block: block, Handler: handler, Finalizer: finalizer}))
	return t.newNode(TryStatement, sp, p, block, handler, finalizer)
}

func (t *Tree) NewCatch(sp source.Span, param, body NodeID) NodeID {
	p := PayloadID(t.Catches.Allocate(CatchData{Param: param, Body: body}))
	return t.newNode(CatchClause, sp, p, param, body)
}

func (t *Tree) NewFunc(kind Kind, sp source.Span, name NodeID, params []NodeID, body NodeID) NodeID {
	p := PayloadID(t.Funcs.Allocate(FuncData{ID: name, Params: params, Body: body}))
	id := t.newNode(kind, sp, p, name, body)
	t.adopt(id, params...)
	return id
}

func (t *Tree) NewOp(kind Kind, sp source.Span, op token.Kind, left, right NodeID, prefix bool) NodeID {
	p := PayloadID(t.Ops.Allocate(OpData{Op: op, Left: left, Right: right, Prefix: prefix}))
	return t.newNode(kind, sp, p, left, right)
}

func (t *Tree) NewProp(sp source.Span, key, value NodeID, computed, shorthand, method bool) NodeID {
	p := PayloadID(t.Props.Allocate(PropData{Key: key, Value: value, Computed: computed, Shorthand: shorthand, Method: method}))
	if shorthand {
		// the key is the value itself, or the left side of its default
		return t.newNode(ObjectProperty, sp, p, value)
	}
	return t.newNode(ObjectProperty, sp, p, key, value)
}

func (t *Tree) NewCall(kind Kind, sp source.Span, callee NodeID, args []NodeID) NodeID {
	p := PayloadID(t.Calls.Allocate(CallData{Callee: callee, Args: args}))
	id := t.newNode(kind, sp, p, callee)
	t.adopt(id, args...)
	return id
}

func (t *Tree) NewMember(sp source.Span, object, property NodeID, computed bool) NodeID {
	p := PayloadID(t.Members.Allocate(MemberData{Object: object, Property: property, Computed: computed}))
	return t.newNode(MemberExpression, sp, p, object, property)
}
