package ast

import "trygap/internal/token"

// Binary operator precedence, higher binds tighter. Zero means op is not binary.
const (
	PrecNullish        = 1  // ??
	PrecLogicalOr      = 2  // ||
	PrecLogicalAnd     = 3  // &&
	PrecBitwiseOr      = 4  // |
	PrecBitwiseXor     = 5  // ^
	PrecBitwiseAnd     = 6  // &
	PrecEquality       = 7  // == != === !==
	PrecRelational     = 8  // < <= > >= instanceof in
	PrecShift          = 9  // << >> >>>
	PrecAdditive       = 10 // + -
	PrecMultiplicative = 11 // * / %
	PrecExponent       = 12 // **
)

// Precedence returns the binding power of a binary or logical operator.
func Precedence(op token.Kind) int {
	switch op {
	case token.QuestionQuestion:
		return PrecNullish
	case token.OrOr:
		return PrecLogicalOr
	case token.AndAnd:
		return PrecLogicalAnd
	case token.Pipe:
		return PrecBitwiseOr
	case token.Caret:
		return PrecBitwiseXor
	case token.Amp:
		return PrecBitwiseAnd
	case token.EqEq, token.BangEq, token.EqEqEq, token.BangEqEq:
		return PrecEquality
	case token.Lt, token.LtEq, token.Gt, token.GtEq, token.KwInstanceof, token.KwIn:
		return PrecRelational
	case token.Shl, token.Shr, token.UShr:
		return PrecShift
	case token.Plus, token.Minus:
		return PrecAdditive
	case token.Star, token.Slash, token.Percent:
		return PrecMultiplicative
	case token.StarStar:
		return PrecExponent
	default:
		return 0
	}
}

// IsLogicalOp reports whether op builds a LogicalExpression.
func IsLogicalOp(op token.Kind) bool {
	return op == token.AndAnd || op == token.OrOr || op == token.QuestionQuestion
}
