package parser

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"trygap/internal/ast"
	"trygap/internal/diag"
	"trygap/internal/lexer"
	"trygap/internal/source"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func parseSource(t *testing.T, input string) (*ast.Tree, ast.NodeID, *diag.Bag) {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.js", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	reporter := &diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	tree := ast.NewTree(file, ast.Hints{})
	result := ParseFile(context.Background(), lx, tree, Options{MaxErrors: 100, Reporter: reporter})
	return result.Tree, result.Root, result.Bag
}

func mustParse(t *testing.T, input string) (*ast.Tree, ast.NodeID) {
	t.Helper()
	tree, root, bag := parseSource(t, input)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics for %q: %s", input, diagnosticsSummary(bag))
	}
	return tree, root
}

// body returns the statements of a Program or BlockStatement.
func body(t *testing.T, tree *ast.Tree, id ast.NodeID) []ast.NodeID {
	t.Helper()
	b := tree.Block(id)
	if b == nil {
		t.Fatalf("node %d (%s) is not a block", id, tree.Kind(id))
	}
	return b.Body
}

func kinds(tree *ast.Tree, ids []ast.NodeID) []ast.Kind {
	out := make([]ast.Kind, len(ids))
	for i, id := range ids {
		out[i] = tree.Kind(id)
	}
	return out
}

func expectKinds(t *testing.T, tree *ast.Tree, ids []ast.NodeID, want ...ast.Kind) {
	t.Helper()
	got := kinds(tree, ids)
	if len(got) != len(want) {
		t.Fatalf("kinds mismatch:\nwant %v\ngot  %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kinds mismatch:\nwant %v\ngot  %v", want, got)
		}
	}
}
