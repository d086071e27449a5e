package doc

import (
	"strings"
	"sync/atomic"
)

// GroupOf wraps parts in a group.
func GroupOf(parts ...Doc) Group {
	return Group{Contents: concatOrSingle(parts)}
}

// BrokenGroup wraps parts in a group that always breaks.
func BrokenGroup(parts ...Doc) Group {
	return Group{Contents: concatOrSingle(parts), Break: true}
}

// ConditionalGroup tries states in order: the first one that fits flat
// wins, otherwise the last state prints broken.
func ConditionalGroup(states ...Doc) Group {
	if len(states) == 0 {
		return Group{Contents: Empty}
	}
	return Group{Contents: states[0], Expanded: states}
}

// IndentOf indents parts.
func IndentOf(parts ...Doc) Indent {
	return Indent{Contents: concatOrSingle(parts)}
}

// Join places sep between docs.
func Join(sep Doc, docs []Doc) Concat {
	out := make(Concat, 0, 2*len(docs))
	for i, d := range docs {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, d)
	}
	return out
}

// IfBreakOf prints breakDoc when the enclosing group breaks, flatDoc otherwise.
func IfBreakOf(breakDoc, flatDoc Doc) IfBreak {
	return IfBreak{Break: breakDoc, Flat: flatDoc}
}

// IndentIfBreak indents contents only when the group named id is broken.
func IndentIfBreak(id GroupID, contents Doc) IfBreak {
	return IfBreak{Break: Indent{Contents: contents}, Flat: contents, GroupID: id}
}

// Lines turns multi-line text into Text pieces joined by literal lines, or
// by hard lines when keepIndent is set.
func Lines(s string, keepIndent bool) Doc {
	if !strings.Contains(s, "\n") {
		return Text(s)
	}
	sep := LiteralLine
	if keepIndent {
		sep = Hardline
	}
	parts := strings.Split(s, "\n")
	docs := make([]Doc, len(parts))
	for i, p := range parts {
		docs[i] = Text(p)
	}
	return Join(sep, docs)
}

func concatOrSingle(parts []Doc) Doc {
	if len(parts) == 1 {
		return parts[0]
	}
	return Concat(parts)
}

var lastGroupID atomic.Uint32

// NewGroupID returns a group ID that is unique for the life of the process.
func NewGroupID() GroupID {
	return GroupID(lastGroupID.Add(1))
}
