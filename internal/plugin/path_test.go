package plugin_test

import (
	"testing"

	"trygap/internal/ast"
	"trygap/internal/doc"
	"trygap/internal/plugin"
	"trygap/internal/source"
)

func TestPathCall(t *testing.T) {
	tree := ast.NewTree(nil, ast.Hints{})
	sp := source.Span{}
	block := tree.NewBlock(sp, nil, nil)
	body := tree.NewBlock(sp, nil, nil)
	handler := tree.NewCatch(sp, ast.NoNodeID, body)
	try := tree.NewTry(sp, block, handler, ast.NoNodeID)

	p := plugin.NewPath(tree, try)
	if p.Parent().IsValid() || p.ParentKind() != ast.Invalid {
		t.Fatal("root must have no parent")
	}

	p.Call(block, func(p *plugin.Path) doc.Doc {
		if p.Node() != block || p.Kind() != ast.BlockStatement {
			t.Errorf("node = %v (%v)", p.Node(), p.Kind())
		}
		if p.Parent() != try || p.ParentKind() != ast.TryStatement {
			t.Errorf("parent = %v", p.Parent())
		}
		if p.Depth() != 2 || p.Ancestor(0) != block || p.GrandParent().IsValid() {
			t.Errorf("depth = %d", p.Depth())
		}
		return nil
	})

	if p.Node() != try || p.Depth() != 1 {
		t.Errorf("Call must restore the path, node = %v", p.Node())
	}
}
