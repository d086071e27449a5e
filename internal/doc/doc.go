// Package doc is the layout vocabulary printers produce and the renderer
// that turns it into text. A Doc is a closed set of variants; every rewrite
// builds new values and never mutates a Doc it was given.
package doc

// Doc is a node of the layout tree. Only the variants of this package
// implement it.
type Doc interface {
	isDoc()
}

// Text is emitted verbatim. It must not contain line breaks.
type Text string

// Concat is a sequence of docs printed one after another.
type Concat []Doc

// GroupID names a group so IfBreak can test its mode from elsewhere.
type GroupID uint32

// Group prints Contents flat when it fits the remaining width, broken
// otherwise. Break forces the broken mode. When Expanded is set the
// renderer tries each state in order and falls back to the last one broken.
type Group struct {
	Contents Doc
	Break    bool
	ID       GroupID
	Expanded []Doc
}

// Indent increases the indentation of line breaks inside Contents.
type Indent struct {
	Contents Doc
}

type LineMode uint8

const (
	// LineNormal is a space when flat, a newline when broken.
	LineNormal LineMode = iota
	// LineSoft is nothing when flat, a newline when broken.
	LineSoft
	// LineHard always breaks.
	LineHard
	// LineLiteral always breaks and resets indentation.
	LineLiteral
)

type LineBreak struct {
	Mode LineMode
}

// BreakParent forces every enclosing group to break.
type BreakParent struct{}

// IfBreak picks Break or Flat depending on the enclosing group's mode, or
// on the mode of the group named by GroupID when it is set.
type IfBreak struct {
	Break   Doc
	Flat    Doc
	GroupID GroupID
}

// LineSuffix defers Contents until the next line break. Trailing line
// comments use it.
type LineSuffix struct {
	Contents Doc
}

// Label tags Contents without changing how it prints.
type Label struct {
	Name     string
	Contents Doc
}

func (Text) isDoc()        {}
func (Concat) isDoc()      {}
func (Group) isDoc()       {}
func (Indent) isDoc()      {}
func (LineBreak) isDoc()   {}
func (BreakParent) isDoc() {}
func (IfBreak) isDoc()     {}
func (LineSuffix) isDoc()  {}
func (Label) isDoc()       {}

var (
	Line     Doc = LineBreak{Mode: LineNormal}
	Softline Doc = LineBreak{Mode: LineSoft}
	// Hardline breaks and propagates the break to enclosing groups.
	Hardline Doc = Concat{LineBreak{Mode: LineHard}, BreakParent{}}
	// LiteralLine breaks without indentation, for verbatim multi-line text.
	LiteralLine Doc = Concat{LineBreak{Mode: LineLiteral}, BreakParent{}}
	// Empty prints nothing.
	Empty Doc = Text("")
)
