package ast

import (
	"strings"

	"trygap/internal/source"
)

type CommentPlacement uint8

const (
	// CommentLeading is printed before the node it is attached to.
	CommentLeading CommentPlacement = iota
	// CommentTrailing is printed after the node.
	CommentTrailing
	// CommentDangling sits inside an otherwise empty node, such as {}.
	CommentDangling
)

type Comment struct {
	Text      string
	Span      source.Span
	Block     bool
	Placement CommentPlacement
	// NewlineBefore is set when a line break separates the comment from
	// the previous token.
	NewlineBefore bool
	// BlankBefore is set when an empty line precedes the comment.
	BlankBefore bool
	// NewlineAfter is set when a line break follows the comment.
	NewlineAfter bool
	// BlankAfter is set when at least one empty line follows the comment.
	BlankAfter bool
}

// IsLine reports whether the comment is a // comment.
func (c Comment) IsLine() bool { return !c.Block }

// Multiline reports whether a block comment spans several lines.
func (c Comment) Multiline() bool {
	return c.Block && strings.IndexByte(c.Text, '\n') >= 0
}

// Attach adds c to the node's comment list with the given placement.
func (t *Tree) Attach(id NodeID, c Comment, placement CommentPlacement) {
	n := t.Node(id)
	if n == nil {
		return
	}
	c.Placement = placement
	n.Comments = append(n.Comments, c)
}

// CommentsOf returns the node's comments with the given placement, in source order.
func (t *Tree) CommentsOf(id NodeID, placement CommentPlacement) []Comment {
	n := t.Node(id)
	if n == nil {
		return nil
	}
	var out []Comment
	for _, c := range n.Comments {
		if c.Placement == placement {
			out = append(out, c)
		}
	}
	return out
}

// HasComments reports whether the node carries comments of any placement.
func (t *Tree) HasComments(id NodeID) bool {
	n := t.Node(id)
	return n != nil && len(n.Comments) > 0
}
