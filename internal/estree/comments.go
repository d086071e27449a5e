package estree

import (
	"strings"

	"trygap/internal/ast"
	"trygap/internal/doc"
)

// CommentDoc prints a comment's text. Line comments lose trailing blanks;
// JSDoc-style block comments are re-indented; other block comments keep
// their lines verbatim.
func CommentDoc(c ast.Comment) doc.Doc {
	if c.IsLine() {
		return doc.Text(strings.TrimRight(c.Text, " \t"))
	}
	if c.Multiline() && isIndentableBlockComment(c.Text) {
		return printIndentableBlockComment(c.Text)
	}
	return doc.Lines(c.Text, false)
}

func isIndentableBlockComment(text string) bool {
	body := strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
	lines := strings.Split("*"+body+"*", "\n")
	if len(lines) < 2 {
		return false
	}
	for _, line := range lines {
		if !strings.HasPrefix(strings.TrimLeft(line, " \t"), "*") {
			return false
		}
	}
	return true
}

func printIndentableBlockComment(text string) doc.Doc {
	body := strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
	lines := strings.Split(body, "\n")
	parts := make([]doc.Doc, len(lines))
	for i, line := range lines {
		switch {
		case i == 0:
			parts[i] = doc.Text(strings.TrimRight(line, " \t"))
		case i < len(lines)-1:
			parts[i] = doc.Text(" " + strings.TrimSpace(line))
		default:
			parts[i] = doc.Text(" " + strings.TrimLeft(line, " \t"))
		}
	}
	return doc.Concat{doc.Text("/*"), doc.Join(doc.Hardline, parts), doc.Text("*/")}
}

// PrintComments decorates printed, the doc of node id, with the node's
// leading and trailing comments. A Label on printed stays outermost.
func PrintComments(tree *ast.Tree, id ast.NodeID, printed doc.Doc) doc.Doc {
	n := tree.Node(id)
	if n == nil || len(n.Comments) == 0 {
		return printed
	}
	var leading, trailing doc.Concat
	suffixed, lastBlock := false, false
	for _, c := range n.Comments {
		switch c.Placement {
		case ast.CommentLeading:
			leading = append(leading, leadingComment(c))
		case ast.CommentTrailing:
			trailing = append(trailing, trailingComment(c, suffixed, lastBlock))
			suffixed = suffixed || c.NewlineBefore || c.IsLine()
			lastBlock = c.Block
		}
	}
	if len(leading) == 0 && len(trailing) == 0 {
		return printed
	}
	wrap := func(d doc.Doc) doc.Doc {
		return doc.Concat{leading, d, trailing}
	}
	if l, ok := printed.(doc.Label); ok {
		return doc.Label{Name: l.Name, Contents: wrap(l.Contents)}
	}
	return wrap(printed)
}

func leadingComment(c ast.Comment) doc.Doc {
	parts := doc.Concat{CommentDoc(c)}
	switch {
	case c.IsLine():
		parts = append(parts, doc.Hardline)
	case c.NewlineAfter && c.NewlineBefore:
		parts = append(parts, doc.Hardline)
	case c.NewlineAfter:
		parts = append(parts, doc.Line)
	default:
		parts = append(parts, doc.Text(" "))
	}
	if c.NewlineAfter && c.BlankAfter {
		parts = append(parts, doc.Hardline)
	}
	return parts
}

// trailingComment prints c after its node. suffixed tells whether an
// earlier trailing comment of the same node was deferred to the line end.
func trailingComment(c ast.Comment, suffixed, prevBlock bool) doc.Doc {
	printed := CommentDoc(c)
	if c.NewlineBefore || (suffixed && !prevBlock) {
		blank := doc.Empty
		if c.BlankBefore {
			blank = doc.Hardline
		}
		return doc.LineSuffix{Contents: doc.Concat{doc.Hardline, blank, printed}}
	}
	if c.IsLine() || suffixed {
		parts := doc.Concat{doc.LineSuffix{Contents: doc.Concat{doc.Text(" "), printed}}}
		if c.IsLine() {
			parts = append(parts, doc.BreakParent{})
		}
		return parts
	}
	return doc.Concat{doc.Text(" "), printed}
}

// danglingComments joins the comments placed inside an empty node. With
// indent set they start on a fresh indented line.
func danglingComments(tree *ast.Tree, id ast.NodeID, indent bool) doc.Doc {
	comments := tree.CommentsOf(id, ast.CommentDangling)
	if len(comments) == 0 {
		return nil
	}
	parts := make([]doc.Doc, len(comments))
	for i, c := range comments {
		parts[i] = CommentDoc(c)
	}
	var d doc.Doc = doc.Join(doc.Hardline, parts)
	if comments[len(comments)-1].IsLine() {
		d = doc.Concat{d, doc.BreakParent{}}
	}
	if indent {
		return doc.IndentOf(doc.Hardline, d)
	}
	return d
}

func lastDanglingIsLine(tree *ast.Tree, id ast.NodeID) bool {
	comments := tree.CommentsOf(id, ast.CommentDangling)
	return len(comments) > 0 && comments[len(comments)-1].IsLine()
}

func hasLeadingOwnLineComment(tree *ast.Tree, id ast.NodeID) bool {
	for _, c := range tree.CommentsOf(id, ast.CommentLeading) {
		if c.NewlineAfter {
			return true
		}
	}
	return false
}

func hasTrailingLineComment(tree *ast.Tree, id ast.NodeID) bool {
	for _, c := range tree.CommentsOf(id, ast.CommentTrailing) {
		if c.IsLine() {
			return true
		}
	}
	return false
}
