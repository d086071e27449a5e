package ast

import (
	"trygap/internal/source"
	"trygap/internal/token"
)

// Node is the header shared by every tree node. Kind-specific data lives in
// the payload arena selected by Kind.
type Node struct {
	Kind    Kind
	Span    source.Span
	Parent  NodeID // non-owning back reference; NoNodeID for the root
	Payload PayloadID
	// Parens records that the source wrapped the node in parentheses.
	Parens   bool
	Comments []Comment
}

type BlockData struct {
	Directives []NodeID
	Body       []NodeID
}

// ListData backs arrays, objects, their patterns and sequences.
// Array holes are NoNodeID.
type ListData struct {
	Items []NodeID
	// Broken is set when the source had a line break right after the
	// opening bracket of an object literal.
	Broken bool
}

// SingleData backs nodes with one child: expression statements,
// return, throw, spread and rest elements.
type SingleData struct {
	Arg NodeID
}

type VarDeclData struct {
	Keyword token.Kind // KwVar, KwLet or KwConst
	Decls   []NodeID
}

type DeclaratorData struct {
	ID   NodeID
	Init NodeID
}

// CondData backs IfStatement and ConditionalExpression.
type CondData struct {
	Test       NodeID
	Consequent NodeID
	Alternate  NodeID
}

// LoopData backs WhileStatement (Test and Body only) and ForStatement.
type LoopData struct {
	Init   NodeID
	Test   NodeID
	Update NodeID
	Body   NodeID
}

type TryData struct {
	Block     NodeID
	Handler   NodeID
	Finalizer NodeID
}

type CatchData struct {
	Param NodeID
	Body  NodeID
}

// FuncData backs function declarations, function expressions and arrows.
// For an arrow with an expression body, Body is that expression.
type FuncData struct {
	ID     NodeID
	Params []NodeID
	Body   NodeID
}

// LeafData carries the verbatim source text of identifiers, literals,
// directives and templates.
type LeafData struct {
	Raw string
}

// OpData backs unary, update, binary, logical, assignment nodes and
// AssignmentPattern. Unary keeps its operand in Right; update keeps it in Left.
type OpData struct {
	Op     token.Kind
	Left   NodeID
	Right  NodeID
	Prefix bool
}

type PropData struct {
	Key       NodeID
	Value     NodeID
	Computed  bool
	Shorthand bool
	Method    bool
}

// CallData backs CallExpression and NewExpression.
type CallData struct {
	Callee NodeID
	Args   []NodeID
}

type MemberData struct {
	Object   NodeID
	Property NodeID
	Computed bool
}
