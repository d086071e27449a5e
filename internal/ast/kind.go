package ast

// Kind is the estree node type.
type Kind uint8

const (
	Invalid Kind = iota

	Program
	Directive
	BlockStatement
	EmptyStatement
	ExpressionStatement
	VariableDeclaration
	VariableDeclarator
	FunctionDeclaration
	ReturnStatement
	IfStatement
	WhileStatement
	ForStatement
	BreakStatement
	ContinueStatement
	ThrowStatement
	TryStatement
	CatchClause

	Identifier
	NumericLiteral
	StringLiteral
	BooleanLiteral
	NullLiteral
	TemplateLiteral
	ThisExpression
	ArrayExpression
	ObjectExpression
	ObjectProperty
	SpreadElement
	FunctionExpression
	ArrowFunctionExpression
	UnaryExpression
	UpdateExpression
	BinaryExpression
	LogicalExpression
	AssignmentExpression
	ConditionalExpression
	SequenceExpression
	CallExpression
	NewExpression
	MemberExpression

	ObjectPattern
	ArrayPattern
	AssignmentPattern
	RestElement
)

var kindNames = [...]string{
	Invalid:                 "Invalid",
	Program:                 "Program",
	Directive:               "Directive",
	BlockStatement:          "BlockStatement",
	EmptyStatement:          "EmptyStatement",
	ExpressionStatement:     "ExpressionStatement",
	VariableDeclaration:     "VariableDeclaration",
	VariableDeclarator:      "VariableDeclarator",
	FunctionDeclaration:     "FunctionDeclaration",
	ReturnStatement:         "ReturnStatement",
	IfStatement:             "IfStatement",
	WhileStatement:          "WhileStatement",
	ForStatement:            "ForStatement",
	BreakStatement:          "BreakStatement",
	ContinueStatement:       "ContinueStatement",
	ThrowStatement:          "ThrowStatement",
	TryStatement:            "TryStatement",
	CatchClause:             "CatchClause",
	Identifier:              "Identifier",
	NumericLiteral:          "NumericLiteral",
	StringLiteral:           "StringLiteral",
	BooleanLiteral:          "BooleanLiteral",
	NullLiteral:             "NullLiteral",
	TemplateLiteral:         "TemplateLiteral",
	ThisExpression:          "ThisExpression",
	ArrayExpression:         "ArrayExpression",
	ObjectExpression:        "ObjectExpression",
	ObjectProperty:          "ObjectProperty",
	SpreadElement:           "SpreadElement",
	FunctionExpression:      "FunctionExpression",
	ArrowFunctionExpression: "ArrowFunctionExpression",
	UnaryExpression:         "UnaryExpression",
	UpdateExpression:        "UpdateExpression",
	BinaryExpression:        "BinaryExpression",
	LogicalExpression:       "LogicalExpression",
	AssignmentExpression:    "AssignmentExpression",
	ConditionalExpression:   "ConditionalExpression",
	SequenceExpression:      "SequenceExpression",
	CallExpression:          "CallExpression",
	NewExpression:           "NewExpression",
	MemberExpression:        "MemberExpression",
	ObjectPattern:           "ObjectPattern",
	ArrayPattern:            "ArrayPattern",
	AssignmentPattern:       "AssignmentPattern",
	RestElement:             "RestElement",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsStatement reports whether k may appear in a statement list.
func (k Kind) IsStatement() bool {
	return k >= BlockStatement && k <= TryStatement && k != VariableDeclarator
}

// IsFunction reports whether k is any kind of function node.
func (k Kind) IsFunction() bool {
	return k == FunctionDeclaration || k == FunctionExpression || k == ArrowFunctionExpression
}
