package plugin

import (
	"trygap/internal/ast"
	"trygap/internal/doc"
)

// Path is the chain of nodes from the root to the node being printed.
type Path struct {
	tree  *ast.Tree
	stack []ast.NodeID
}

func NewPath(tree *ast.Tree, root ast.NodeID) *Path {
	return &Path{tree: tree, stack: []ast.NodeID{root}}
}

func (p *Path) Tree() *ast.Tree { return p.tree }

// Node returns the node being printed.
func (p *Path) Node() ast.NodeID {
	if len(p.stack) == 0 {
		return ast.NoNodeID
	}
	return p.stack[len(p.stack)-1]
}

func (p *Path) Kind() ast.Kind {
	return p.tree.Kind(p.Node())
}

// Parent returns the node printed just above the current one, or NoNodeID
// at the root.
func (p *Path) Parent() ast.NodeID {
	return p.Ancestor(1)
}

func (p *Path) GrandParent() ast.NodeID {
	return p.Ancestor(2)
}

// Ancestor returns the n-th node above the current one; Ancestor(0) is the
// current node.
func (p *Path) Ancestor(n int) ast.NodeID {
	i := len(p.stack) - 1 - n
	if n < 0 || i < 0 {
		return ast.NoNodeID
	}
	return p.stack[i]
}

// ParentKind returns the kind of Parent, or ast.Invalid at the root.
func (p *Path) ParentKind() ast.Kind {
	parent := p.Parent()
	if !parent.IsValid() {
		return ast.Invalid
	}
	return p.tree.Kind(parent)
}

func (p *Path) Depth() int { return len(p.stack) }

// Call pushes child, runs fn, and pops it again.
func (p *Path) Call(child ast.NodeID, fn func(*Path) doc.Doc) doc.Doc {
	p.stack = append(p.stack, child)
	defer func() { p.stack = p.stack[:len(p.stack)-1] }()
	return fn(p)
}
