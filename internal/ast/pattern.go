package ast

import "trygap/internal/token"

// PatternIssue explains why an expression cannot be reinterpreted as a pattern.
type PatternIssue uint8

const (
	PatternOK PatternIssue = iota
	PatternInvalidTarget
	PatternRestNotLast
)

// ToPattern rewrites an expression parsed ahead of "=" or "=>" into its
// binding form in place: arrays become ArrayPattern, objects ObjectPattern,
// spreads RestElement and "a = b" AssignmentPattern. On failure it returns
// the offending node.
func (t *Tree) ToPattern(id NodeID) (NodeID, PatternIssue) {
	n := t.Node(id)
	if n == nil {
		return id, PatternInvalidTarget
	}
	switch n.Kind {
	case Identifier, MemberExpression, ObjectPattern, ArrayPattern, AssignmentPattern, RestElement:
		return NoNodeID, PatternOK

	case ArrayExpression:
		items := t.List(id).Items
		for i, item := range items {
			if !item.IsValid() {
				continue
			}
			if bad, issue := t.toElementPattern(item, i == len(items)-1); issue != PatternOK {
				return bad, issue
			}
		}
		n.Kind = ArrayPattern

	case ObjectExpression:
		items := t.List(id).Items
		for i, item := range items {
			if t.Kind(item) == ObjectProperty {
				p := t.Prop(item)
				if p.Method {
					return item, PatternInvalidTarget
				}
				if bad, issue := t.ToPattern(p.Value); issue != PatternOK {
					return bad, issue
				}
				continue
			}
			if bad, issue := t.toElementPattern(item, i == len(items)-1); issue != PatternOK {
				return bad, issue
			}
		}
		n.Kind = ObjectPattern

	case AssignmentExpression:
		op := t.Op(id)
		if op.Op != token.Assign {
			return id, PatternInvalidTarget
		}
		if bad, issue := t.ToPattern(op.Left); issue != PatternOK {
			return bad, issue
		}
		n.Kind = AssignmentPattern

	default:
		return id, PatternInvalidTarget
	}
	return NoNodeID, PatternOK
}

func (t *Tree) toElementPattern(id NodeID, last bool) (NodeID, PatternIssue) {
	if t.Kind(id) != SpreadElement {
		return t.ToPattern(id)
	}
	if !last {
		return id, PatternRestNotLast
	}
	arg := t.Single(id).Arg
	if k := t.Kind(arg); k == AssignmentExpression {
		return arg, PatternInvalidTarget
	}
	if bad, issue := t.ToPattern(arg); issue != PatternOK {
		return bad, issue
	}
	t.Node(id).Kind = RestElement
	return NoNodeID, PatternOK
}
