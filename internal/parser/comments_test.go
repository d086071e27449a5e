package parser

import (
	"testing"

	"trygap/internal/ast"
)

func commentTexts(cs []ast.Comment) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Text
	}
	return out
}

func expectComments(t *testing.T, tree *ast.Tree, id ast.NodeID, placement ast.CommentPlacement, want ...string) []ast.Comment {
	t.Helper()
	got := tree.CommentsOf(id, placement)
	texts := commentTexts(got)
	if len(texts) != len(want) {
		t.Fatalf("%s comments on %s mismatch:\nwant %q\ngot  %q", placementName(placement), tree.Kind(id), want, texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Fatalf("%s comments on %s mismatch:\nwant %q\ngot  %q", placementName(placement), tree.Kind(id), want, texts)
		}
	}
	return got
}

func placementName(p ast.CommentPlacement) string {
	switch p {
	case ast.CommentLeading:
		return "leading"
	case ast.CommentTrailing:
		return "trailing"
	default:
		return "dangling"
	}
}

func TestLeadingCommentInTryBlock(t *testing.T) {
	tree, root := mustParse(t, "try {\n  // start work\n  const a = 1;\n} catch (e) {}")
	block := tree.Try(body(t, tree, root)[0]).Block
	stmt := body(t, tree, block)[0]
	cs := expectComments(t, tree, stmt, ast.CommentLeading, "// start work")
	if !cs[0].NewlineBefore || !cs[0].NewlineAfter {
		t.Fatalf("own-line comment flags = %+v", cs[0])
	}
}

func TestTrailingSameLineAndOwnLine(t *testing.T) {
	tree, root := mustParse(t, "{\n  a(); // after a\n  b(); /* after b */\n  // before close\n}")
	block := body(t, tree, root)[0]
	stmts := body(t, tree, block)
	expectComments(t, tree, stmts[0], ast.CommentTrailing, "// after a")
	cs := expectComments(t, tree, stmts[1], ast.CommentTrailing, "/* after b */", "// before close")
	if cs[0].NewlineBefore || !cs[1].NewlineBefore {
		t.Fatalf("newline flags = %+v", cs)
	}
	expectComments(t, tree, stmts[1], ast.CommentLeading)
}

func TestDanglingComments(t *testing.T) {
	tree, root := mustParse(t, "try { /* dangling comment */ } catch (e) {}\nf(/* none */);\nconst o = { /* empty */ };")
	stmts := body(t, tree, root)
	block := tree.Try(stmts[0]).Block
	if len(body(t, tree, block)) != 0 {
		t.Fatal("block should be empty")
	}
	expectComments(t, tree, block, ast.CommentDangling, "/* dangling comment */")

	call := tree.Single(stmts[1]).Arg
	expectComments(t, tree, call, ast.CommentDangling, "/* none */")

	obj := tree.Declarator(tree.VarDecl(stmts[2]).Decls[0]).Init
	expectComments(t, tree, obj, ast.CommentDangling, "/* empty */")
}

func TestProgramComments(t *testing.T) {
	tree, root := mustParse(t, "// only a comment\n")
	expectComments(t, tree, root, ast.CommentDangling, "// only a comment")

	tree, root = mustParse(t, "a();\n\n// tail\n")
	stmt := body(t, tree, root)[0]
	cs := expectComments(t, tree, stmt, ast.CommentTrailing, "// tail")
	if !cs[0].BlankBefore {
		t.Fatal("expected BlankBefore on the tail comment")
	}
}

func TestExpressionComments(t *testing.T) {
	tree, root := mustParse(t, "const x = /* one */ 1;\nfoo(a /* after a */, b);")
	stmts := body(t, tree, root)
	init := tree.Declarator(tree.VarDecl(stmts[0]).Decls[0]).Init
	expectComments(t, tree, init, ast.CommentLeading, "/* one */")

	// comments in front of punctuation fall back to the enclosing statement
	expectComments(t, tree, stmts[1], ast.CommentTrailing, "/* after a */")
}

func TestCommentsAreNotDuplicated(t *testing.T) {
	tree, root := mustParse(t, "// a\nif (x) {\n  // b\n  y(); // c\n} // d\n// e\nz();")
	seen := map[string]int{}
	tree.Walk(root, func(id ast.NodeID) bool {
		if n := tree.Node(id); n != nil {
			for _, c := range n.Comments {
				seen[c.Text]++
			}
		}
		return true
	})
	for _, text := range []string{"// a", "// b", "// c", "// d", "// e"} {
		if seen[text] != 1 {
			t.Errorf("comment %q attached %d times", text, seen[text])
		}
	}
}

func TestObjectBrokenInSource(t *testing.T) {
	tree, root := mustParse(t, "a = {\n  b: 1 };\nc = { d: 1 };")
	stmts := body(t, tree, root)
	first := tree.Op(tree.Single(stmts[0]).Arg).Right
	second := tree.Op(tree.Single(stmts[1]).Arg).Right
	if !tree.List(first).Broken || tree.List(second).Broken {
		t.Fatal("Broken must reflect a newline after '{'")
	}
}

func TestEmptyStatementComments(t *testing.T) {
	tree, root := mustParse(t, "try { a(); ; // keep me\n} catch (e) {}")
	block := tree.Try(body(t, tree, root)[0]).Block
	stmts := body(t, tree, block)
	expectComments(t, tree, stmts[0], ast.CommentTrailing, "// keep me")
	expectComments(t, tree, stmts[1], ast.CommentTrailing)

	tree, root = mustParse(t, "a(); /* keep me */ ;")
	stmts = body(t, tree, root)
	expectComments(t, tree, stmts[0], ast.CommentTrailing, "/* keep me */")
	expectComments(t, tree, stmts[1], ast.CommentLeading)

	tree, root = mustParse(t, "{ ; // lead\n  c();\n}")
	stmts = body(t, tree, body(t, tree, root)[0])
	expectComments(t, tree, stmts[0], ast.CommentTrailing)
	expectComments(t, tree, stmts[1], ast.CommentLeading, "// lead")

	tree, root = mustParse(t, "{ ; // alone\n}")
	block = body(t, tree, root)[0]
	expectComments(t, tree, block, ast.CommentDangling, "// alone")
}

func TestCommentBeforeElse(t *testing.T) {
	tree, root := mustParse(t, "if (a) { b(); } /* c */ else { d(); }")
	stmt := body(t, tree, root)[0]
	expectComments(t, tree, stmt, ast.CommentDangling, "/* c */")
	expectComments(t, tree, stmt, ast.CommentTrailing)
}
