package estree

import (
	"trygap/internal/ast"
	"trygap/internal/token"
)

// needsParens decides from the tree alone whether id must be wrapped in
// parentheses where it appears. Source parentheses are not kept.
func needsParens(t *ast.Tree, id ast.NodeID) bool {
	parent := t.Parent(id)
	if !parent.IsValid() {
		return false
	}
	kind := t.Kind(id)
	pkind := t.Kind(parent)

	if pkind == ast.ExpressionStatement {
		// a string statement would turn into a directive
		if kind == ast.StringLiteral {
			return true
		}
		return startsWith(t, id, func(k ast.Kind) bool {
			return k == ast.ObjectExpression || k == ast.ObjectPattern || k == ast.FunctionExpression
		})
	}
	if pkind == ast.ArrowFunctionExpression && t.Func(parent).Body == id && kind != ast.BlockStatement {
		if kind == ast.SequenceExpression || kind == ast.AssignmentExpression {
			return true
		}
		return startsWith(t, id, func(k ast.Kind) bool { return k == ast.ObjectExpression })
	}

	switch kind {
	case ast.SequenceExpression:
		switch pkind {
		case ast.ReturnStatement, ast.ForStatement, ast.SequenceExpression:
			return false
		}
		return true

	case ast.AssignmentExpression:
		switch pkind {
		case ast.UnaryExpression, ast.UpdateExpression, ast.BinaryExpression, ast.LogicalExpression,
			ast.ConditionalExpression, ast.SpreadElement:
			return true
		case ast.MemberExpression:
			return t.Member(parent).Object == id
		case ast.CallExpression, ast.NewExpression:
			return t.Call(parent).Callee == id
		}
		return false

	case ast.ArrowFunctionExpression, ast.ConditionalExpression:
		switch pkind {
		case ast.UnaryExpression, ast.UpdateExpression, ast.BinaryExpression, ast.LogicalExpression, ast.SpreadElement:
			return true
		case ast.ConditionalExpression:
			return t.Cond(parent).Test == id
		case ast.MemberExpression:
			return t.Member(parent).Object == id
		case ast.CallExpression, ast.NewExpression:
			return t.Call(parent).Callee == id
		}
		return false

	case ast.FunctionExpression:
		switch pkind {
		case ast.CallExpression, ast.NewExpression:
			return t.Call(parent).Callee == id
		}
		return false

	case ast.UnaryExpression, ast.UpdateExpression:
		switch pkind {
		case ast.UnaryExpression:
			op := t.Op(id)
			pop := t.Op(parent).Op
			if kind == ast.UnaryExpression {
				return op.Op == pop && (pop == token.Plus || pop == token.Minus)
			}
			return op.Prefix && (op.Op == token.PlusPlus && pop == token.Plus || op.Op == token.MinusMinus && pop == token.Minus)
		case ast.BinaryExpression:
			o := t.Op(parent)
			return o.Op == token.StarStar && o.Left == id
		case ast.MemberExpression:
			return t.Member(parent).Object == id
		case ast.CallExpression, ast.NewExpression:
			return t.Call(parent).Callee == id
		}
		return false

	case ast.BinaryExpression, ast.LogicalExpression:
		switch pkind {
		case ast.UnaryExpression, ast.UpdateExpression:
			return true
		case ast.MemberExpression:
			return t.Member(parent).Object == id
		case ast.CallExpression, ast.NewExpression:
			return t.Call(parent).Callee == id
		case ast.BinaryExpression, ast.LogicalExpression:
			return binaryNeedsParens(t, id, parent)
		}
		return false

	case ast.NumericLiteral:
		return pkind == ast.MemberExpression && t.Member(parent).Object == id && !t.Member(parent).Computed

	case ast.CallExpression, ast.MemberExpression:
		if pkind == ast.NewExpression && t.Call(parent).Callee == id {
			return hasCallInChain(t, id)
		}
		return false
	}
	return false
}

func binaryNeedsParens(t *ast.Tree, id, parent ast.NodeID) bool {
	no := t.Op(id).Op
	po := t.Op(parent)
	if mixesNullish(no, po.Op) {
		return true
	}
	np, pp := ast.Precedence(no), ast.Precedence(po.Op)
	switch {
	case pp > np:
		return true
	case pp == np && po.Right == id:
		return true
	case pp == np && !shouldFlatten(po.Op, no):
		return true
	case pp < np && no == token.Percent:
		return po.Op == token.Plus || po.Op == token.Minus
	case isBitwiseOp(po.Op):
		return true
	}
	return false
}

func mixesNullish(a, b token.Kind) bool {
	logical := func(k token.Kind) bool { return k == token.AndAnd || k == token.OrOr }
	return a == token.QuestionQuestion && logical(b) || b == token.QuestionQuestion && logical(a)
}

// shouldFlatten reports whether a child operation with nodeOp can be
// printed in the same chain as its parent's parentOp.
func shouldFlatten(parentOp, nodeOp token.Kind) bool {
	if ast.Precedence(nodeOp) != ast.Precedence(parentOp) {
		return false
	}
	switch {
	case parentOp == token.StarStar:
		return false
	case isEqualityOp(parentOp) && isEqualityOp(nodeOp):
		return false
	case nodeOp == token.Percent && isMultiplicativeOp(parentOp),
		parentOp == token.Percent && isMultiplicativeOp(nodeOp):
		return false
	case nodeOp != parentOp && isMultiplicativeOp(nodeOp) && isMultiplicativeOp(parentOp):
		return false
	case isShiftOp(parentOp) && isShiftOp(nodeOp):
		return false
	}
	return true
}

func isEqualityOp(k token.Kind) bool {
	return k == token.EqEq || k == token.BangEq || k == token.EqEqEq || k == token.BangEqEq
}

func isMultiplicativeOp(k token.Kind) bool {
	return k == token.Star || k == token.Slash || k == token.Percent
}

func isShiftOp(k token.Kind) bool {
	return k == token.Shl || k == token.Shr || k == token.UShr
}

func isBitwiseOp(k token.Kind) bool {
	return k == token.Pipe || k == token.Caret || k == token.Amp || isShiftOp(k)
}

func hasCallInChain(t *ast.Tree, id ast.NodeID) bool {
	for id.IsValid() {
		switch t.Kind(id) {
		case ast.CallExpression:
			return true
		case ast.MemberExpression:
			id = t.Member(id).Object
		default:
			return false
		}
	}
	return false
}

// startsWith reports whether the leftmost token of id's printed form
// belongs to a node matching pred. Nodes that get their own parentheses
// end the search.
func startsWith(t *ast.Tree, id ast.NodeID, pred func(ast.Kind) bool) bool {
	for id.IsValid() {
		kind := t.Kind(id)
		if pred(kind) {
			return true
		}
		var next ast.NodeID
		switch kind {
		case ast.MemberExpression:
			next = t.Member(id).Object
		case ast.CallExpression:
			next = t.Call(id).Callee
		case ast.BinaryExpression, ast.LogicalExpression, ast.AssignmentExpression:
			next = t.Op(id).Left
		case ast.UpdateExpression:
			if t.Op(id).Prefix {
				return false
			}
			next = t.Op(id).Left
		case ast.ConditionalExpression:
			next = t.Cond(id).Test
		case ast.SequenceExpression:
			items := t.List(id).Items
			if len(items) == 0 {
				return false
			}
			next = items[0]
		default:
			return false
		}
		if needsParens(t, next) {
			return false
		}
		id = next
	}
	return false
}
