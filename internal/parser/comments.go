package parser

import (
	"trygap/internal/ast"
	"trygap/internal/token"
)

// takeComments converts the unclaimed comments in tok's leading trivia and
// marks them claimed.
func (p *Parser) takeComments(tok token.Token) []ast.Comment {
	var out []ast.Comment
	newline := !p.started
	blank := false
	for i, tr := range tok.Leading {
		if tr.Kind == token.TriviaNewline {
			newline = true
			blank = tr.Newlines() >= 2
			continue
		}
		if !tr.IsComment() {
			continue
		}
		if tr.Span.Start < p.claimed {
			newline, blank = false, false
			continue
		}
		c := ast.Comment{
			Text:          tr.Text,
			Span:          tr.Span,
			Block:         tr.Kind == token.TriviaBlockComment,
			NewlineBefore: newline,
			BlankBefore:   blank,
		}
		for _, next := range tok.Leading[i+1:] {
			if next.Kind == token.TriviaNewline {
				c.NewlineAfter = true
				c.BlankAfter = next.Newlines() >= 2
				break
			}
			if next.IsComment() {
				break
			}
		}
		if !c.Block && !c.NewlineAfter && tok.Kind == token.EOF {
			// a line comment always ends its line, even at end of input
			c.NewlineAfter = true
		}
		out = append(out, c)
		p.claimed = tr.Span.End
		newline, blank = false, false
	}
	return out
}

// peekComments claims the comments in front of the next token.
func (p *Parser) peekComments() []ast.Comment {
	return p.takeComments(p.lx.Peek())
}

// splitTrailing separates the comments that stay on the previous
// statement's line from those that lead the next statement. At a closing
// token every same-line comment trails.
func splitTrailing(comments []ast.Comment, closing bool) (trailing, leading []ast.Comment) {
	for i, c := range comments {
		if c.NewlineBefore {
			return comments[:i], comments[i:]
		}
		if !closing && c.Block && !c.NewlineAfter {
			return comments[:i], comments[i:]
		}
	}
	return comments, nil
}

func (p *Parser) attachAll(id ast.NodeID, comments []ast.Comment, placement ast.CommentPlacement) {
	for _, c := range comments {
		p.tree.Attach(id, c, placement)
	}
}

// pendingMark and flushPending bracket a statement: comments queued while
// parsing it become its trailing comments.
func (p *Parser) pendingMark() int {
	return len(p.pending)
}

func (p *Parser) flushPending(id ast.NodeID, mark int) {
	if mark > len(p.pending) {
		return
	}
	if id.IsValid() {
		p.attachAll(id, p.pending[mark:], ast.CommentTrailing)
	}
	p.pending = p.pending[:mark]
}

// closeList claims the comments sitting before a closing bracket. With a
// last item they become its trailing comments; otherwise they are returned
// for the caller to attach as dangling once the container exists.
func (p *Parser) closeList(last ast.NodeID) []ast.Comment {
	comments := p.peekComments()
	if len(comments) == 0 {
		return nil
	}
	if last.IsValid() {
		p.attachAll(last, comments, ast.CommentTrailing)
		return nil
	}
	return comments
}
