package parser

import (
	"testing"

	"trygap/internal/ast"
	"trygap/internal/diag"
	"trygap/internal/token"
)

func TestParseTryShapes(t *testing.T) {
	tree, root := mustParse(t, "try { return true; } catch (e) {} finally { c(); }\ntry {} catch {}")
	stmts := body(t, tree, root)
	expectKinds(t, tree, stmts, ast.TryStatement, ast.TryStatement)

	full := tree.Try(stmts[0])
	if !full.Handler.IsValid() || !full.Finalizer.IsValid() {
		t.Fatalf("expected handler and finalizer: %+v", full)
	}
	if tree.Parent(full.Block) != stmts[0] {
		t.Fatal("try block must point back to its try statement")
	}
	expectKinds(t, tree, body(t, tree, full.Block), ast.ReturnStatement)
	if param := tree.Catch(full.Handler).Param; tree.Raw(param) != "e" {
		t.Fatalf("catch param = %q", tree.Raw(param))
	}

	bare := tree.Try(stmts[1])
	if tree.Catch(bare.Handler).Param.IsValid() {
		t.Fatal("optional catch binding should leave Param empty")
	}
}

func TestTryWithoutHandler(t *testing.T) {
	_, _, bag := parseSource(t, "try { a(); }\nb();")
	d, ok := bag.First()
	if !ok || d.Code != diag.SynTryWithoutHandler {
		t.Fatalf("expected SynTryWithoutHandler, got %s", diagnosticsSummary(bag))
	}
	if len(d.Notes) != 1 {
		t.Fatalf("expected a note on the try block, got %+v", d.Notes)
	}
}

func TestDirectivesOnlyInPrologue(t *testing.T) {
	tree, root := mustParse(t, `"use strict"; 'b'; work(); "late";
function f() { "use asm"; return 1; }
try { "use strict"; work(); } catch (e) {}`)
	prog := tree.Block(root)
	expectKinds(t, tree, prog.Directives, ast.Directive, ast.Directive)
	if tree.Raw(prog.Directives[1]) != "'b'" {
		t.Fatalf("directive raw = %q", tree.Raw(prog.Directives[1]))
	}
	expectKinds(t, tree, prog.Body, ast.ExpressionStatement, ast.ExpressionStatement, ast.FunctionDeclaration, ast.TryStatement)

	fn := tree.Func(prog.Body[2])
	expectKinds(t, tree, tree.Block(fn.Body).Directives, ast.Directive)

	tryBlock := tree.Try(prog.Body[3]).Block
	inner := tree.Block(tryBlock)
	if len(inner.Directives) != 0 {
		t.Fatal("a try block has no directive prologue")
	}
	expectKinds(t, tree, inner.Body, ast.ExpressionStatement, ast.ExpressionStatement)
}

func TestAutomaticSemicolons(t *testing.T) {
	tree, root := mustParse(t, "a()\nb()\nfunction f() {\n  return\n  x\n}\ni\n++j")
	stmts := body(t, tree, root)
	expectKinds(t, tree, stmts, ast.ExpressionStatement, ast.ExpressionStatement, ast.FunctionDeclaration, ast.ExpressionStatement, ast.ExpressionStatement)

	fnBody := body(t, tree, tree.Func(stmts[2]).Body)
	expectKinds(t, tree, fnBody, ast.ReturnStatement, ast.ExpressionStatement)
	if tree.Single(fnBody[0]).Arg.IsValid() {
		t.Fatal("return followed by a newline has no argument")
	}
	if upd := tree.Single(stmts[4]).Arg; tree.Kind(upd) != ast.UpdateExpression || !tree.Op(upd).Prefix {
		t.Fatal("'++j' on its own line must be a prefix update")
	}

	_, _, bag := parseSource(t, "a() b()")
	if d, ok := bag.First(); !ok || d.Code != diag.SynExpectSemicolon {
		t.Fatalf("expected SynExpectSemicolon, got %s", diagnosticsSummary(bag))
	}
}

func TestVariableDeclarations(t *testing.T) {
	tree, root := mustParse(t, "const { a, b: [c, ...d], e = 1, ...f } = obj, g = 2; let h;")
	stmts := body(t, tree, root)
	decl := tree.VarDecl(stmts[0])
	if decl.Keyword != token.KwConst || len(decl.Decls) != 2 {
		t.Fatalf("decl = %+v", decl)
	}
	pattern := tree.Declarator(decl.Decls[0]).ID
	if tree.Kind(pattern) != ast.ObjectPattern {
		t.Fatalf("target kind = %s", tree.Kind(pattern))
	}
	props := tree.List(pattern).Items
	expectKinds(t, tree, props, ast.ObjectProperty, ast.ObjectProperty, ast.ObjectProperty, ast.RestElement)
	if v := tree.Prop(props[1]).Value; tree.Kind(v) != ast.ArrayPattern {
		t.Fatalf("nested value kind = %s", tree.Kind(v))
	}
	if v := tree.Prop(props[2]).Value; tree.Kind(v) != ast.AssignmentPattern {
		t.Fatalf("default value kind = %s", tree.Kind(v))
	}
	if tree.Declarator(tree.VarDecl(stmts[1]).Decls[0]).Init.IsValid() {
		t.Fatal("let h has no initializer")
	}
}

func TestLoopsAndJumps(t *testing.T) {
	tree, root := mustParse(t, "for (let i = 0; i < n; i++) { if (i) continue; else break; }\nwhile (x) x--;\nfor (;;) {}")
	stmts := body(t, tree, root)
	expectKinds(t, tree, stmts, ast.ForStatement, ast.WhileStatement, ast.ForStatement)
	loop := tree.Loop(stmts[0])
	if tree.Kind(loop.Init) != ast.VariableDeclaration || tree.Kind(loop.Update) != ast.UpdateExpression {
		t.Fatalf("for clauses = %+v", loop)
	}
	empty := tree.Loop(stmts[2])
	if empty.Init.IsValid() || empty.Test.IsValid() || empty.Update.IsValid() {
		t.Fatal("for(;;) has no clauses")
	}

	_, _, bag := parseSource(t, "break;")
	if d, ok := bag.First(); !ok || d.Code != diag.SynIllegalBreak {
		t.Fatalf("expected SynIllegalBreak, got %s", diagnosticsSummary(bag))
	}
	_, _, bag = parseSource(t, "while (a) { const f = () => { break; }; }")
	if d, ok := bag.First(); !ok || d.Code != diag.SynIllegalBreak {
		t.Fatalf("break inside a nested function must be rejected, got %s", diagnosticsSummary(bag))
	}
}

func TestParentLinksEverywhere(t *testing.T) {
	tree, root := mustParse(t, `function outer(a, { b = 2 }) {
  try {
    const inner = (x, ...rest) => { try { innerWork(x[0].y); } catch (e) {} };
  } catch (e) { log(e ? 1 : -2, ...rest); }
}`)
	tree.Walk(root, func(id ast.NodeID) bool {
		for _, child := range tree.Children(id) {
			if tree.Parent(child) != id {
				t.Errorf("%s child %s has parent %s", tree.Kind(id), tree.Kind(child), tree.Kind(tree.Parent(child)))
			}
		}
		return true
	})
}

func TestRecoveryContinues(t *testing.T) {
	tree, root, bag := parseSource(t, "a(;\nb();\n}\nc();")
	if !bag.HasErrors() {
		t.Fatal("expected errors")
	}
	stmts := body(t, tree, root)
	if len(stmts) != 2 {
		t.Fatalf("expected b() and c() to survive recovery, got %v", kinds(tree, stmts))
	}
}
