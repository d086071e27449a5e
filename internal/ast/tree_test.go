package ast

import (
	"testing"

	"trygap/internal/source"
	"trygap/internal/token"
)

func sp(a, b uint32) source.Span { return source.Span{Start: a, End: b} }

func TestArenaIsOneBased(t *testing.T) {
	a := NewArena[int](0)
	if a.Get(0) != nil {
		t.Fatal("index 0 must be nil")
	}
	id := a.Allocate(42)
	if id != 1 || *a.Get(id) != 42 {
		t.Fatalf("Allocate/Get mismatch: id=%d", id)
	}
	if a.Get(2) != nil {
		t.Fatal("out of range index must be nil")
	}
}

func TestTryParentLinks(t *testing.T) {
	tr := NewTree(nil, Hints{})
	call := tr.NewCall(CallExpression, sp(6, 9), tr.NewLeaf(Identifier, sp(6, 7), "a"), nil)
	stmt := tr.NewSingle(ExpressionStatement, sp(6, 10), call)
	block := tr.NewBlock(sp(4, 12), nil, []NodeID{stmt})
	handler := tr.NewCatch(sp(13, 26), tr.NewLeaf(Identifier, sp(20, 21), "e"), tr.NewBlock(sp(23, 25), nil, nil))
	try := tr.NewTry(sp(0, 26), block, handler, NoNodeID)
	prog := tr.NewProgram(sp(0, 26), nil, []NodeID{try})

	if tr.Root != prog {
		t.Fatal("program must become the root")
	}
	if tr.Parent(block) != try || tr.Parent(handler) != try || tr.Parent(try) != prog {
		t.Fatal("parent links not set by constructors")
	}
	if tr.Parent(stmt) != block || tr.Parent(call) != stmt {
		t.Fatal("nested parent links not set")
	}
	if got := tr.Try(try); got.Block != block || got.Handler != handler || got.Finalizer.IsValid() {
		t.Fatalf("try payload = %+v", got)
	}
	if tr.Try(block) != nil {
		t.Fatal("typed accessor must reject other kinds")
	}

	var kinds []Kind
	tr.Walk(prog, func(id NodeID) bool {
		kinds = append(kinds, tr.Kind(id))
		return true
	})
	want := []Kind{Program, TryStatement, BlockStatement, ExpressionStatement, CallExpression, Identifier, CatchClause, Identifier, BlockStatement}
	if len(kinds) != len(want) {
		t.Fatalf("walk order mismatch:\nwant %v\ngot  %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("walk order mismatch:\nwant %v\ngot  %v", want, kinds)
		}
	}
}

func TestToPattern(t *testing.T) {
	tr := NewTree(nil, Hints{})
	a := tr.NewLeaf(Identifier, sp(1, 2), "a")
	one := tr.NewLeaf(NumericLiteral, sp(5, 6), "1")
	def := tr.NewOp(AssignmentExpression, sp(1, 6), token.Assign, a, one, false)
	rest := tr.NewSingle(SpreadElement, sp(8, 12), tr.NewLeaf(Identifier, sp(11, 12), "r"))
	arr := tr.NewList(ArrayExpression, sp(0, 13), []NodeID{def, rest}, false)

	if bad, issue := tr.ToPattern(arr); issue != PatternOK {
		t.Fatalf("ToPattern failed at %d: %v", bad, issue)
	}
	if tr.Kind(arr) != ArrayPattern || tr.Kind(def) != AssignmentPattern || tr.Kind(rest) != RestElement {
		t.Fatalf("kinds not rewritten: %v %v %v", tr.Kind(arr), tr.Kind(def), tr.Kind(rest))
	}

	rest2 := tr.NewSingle(SpreadElement, sp(1, 5), tr.NewLeaf(Identifier, sp(4, 5), "x"))
	b := tr.NewLeaf(Identifier, sp(7, 8), "b")
	bad := tr.NewList(ArrayExpression, sp(0, 9), []NodeID{rest2, b}, false)
	if got, issue := tr.ToPattern(bad); issue != PatternRestNotLast || got != rest2 {
		t.Fatalf("expected rest-not-last at %d, got %d %v", rest2, got, issue)
	}

	lit := tr.NewLeaf(NumericLiteral, sp(0, 1), "3")
	if _, issue := tr.ToPattern(lit); issue != PatternInvalidTarget {
		t.Fatalf("literal must not convert, got %v", issue)
	}
}

func TestCommentsByPlacement(t *testing.T) {
	tr := NewTree(nil, Hints{})
	id := tr.NewBare(EmptyStatement, sp(0, 1))
	tr.Attach(id, Comment{Text: "// a"}, CommentLeading)
	tr.Attach(id, Comment{Text: "/* b */", Block: true}, CommentTrailing)
	if got := tr.CommentsOf(id, CommentLeading); len(got) != 1 || got[0].Text != "// a" {
		t.Fatalf("leading = %+v", got)
	}
	if got := tr.CommentsOf(id, CommentTrailing); len(got) != 1 || !got[0].Block {
		t.Fatalf("trailing = %+v", got)
	}
	if !tr.HasComments(id) || tr.HasComments(NoNodeID) {
		t.Fatal("HasComments mismatch")
	}
}
