package estree_test

import (
	"context"
	"testing"

	"trygap/internal/format"
)

type formatCase struct {
	name string
	src  string
	want string
}

func runCases(t *testing.T, width int, cases []formatCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := format.Source(context.Background(), []byte(tc.src), format.Options{PrintWidth: width})
			if err != nil {
				t.Fatalf("format failed: %v", err)
			}
			if got := string(res.Output); got != tc.want {
				t.Fatalf("format mismatch:\nwant %q\ngot  %q", tc.want, got)
			}
		})
	}
}

func TestStatements(t *testing.T) {
	runCases(t, 0, []formatCase{
		{name: "expression", src: "a ;", want: "a;\n"},
		{name: "var list", src: "var a = 1, b = 2", want: "var a = 1,\n  b = 2;\n"},
		{name: "var list no values", src: "let a, b", want: "let a, b;\n"},
		{name: "while", src: "while(x){x--}", want: "while (x) {\n  x--;\n}\n"},
		{name: "empty while", src: "while (x) {}", want: "while (x) {}\n"},
		{name: "for forever", src: "for(;;){}", want: "for (;;) {}\n"},
		{name: "for", src: "for (let i=0;i<n;i++) { f(i) }", want: "for (let i = 0; i < n; i++) {\n  f(i);\n}\n"},
		{name: "else if", src: "if (a) b(); else if (c) d(); else e();", want: "if (a) b();\nelse if (c) d();\nelse e();\n"},
		{name: "empty if", src: "if (a) {}", want: "if (a) {\n}\n"},
		{name: "return nothing", src: "function f(){return}", want: "function f() {\n  return;\n}\n"},
		{name: "empty statements dropped", src: ";;a();;", want: "a();\n"},
		{name: "directive", src: "'use strict'; a()", want: "\"use strict\";\na();\n"},
		{name: "catch without param", src: "try{a()}catch{b()}", want: "try {\n  a();\n} catch {\n  b();\n}\n"},
		{name: "empty catch with finally", src: "try{a()}catch(e){}finally{}", want: "try {\n  a();\n} catch (e) {\n} finally {\n}\n"},
	})
}

func TestExpressions(t *testing.T) {
	runCases(t, 0, []formatCase{
		{name: "binary", src: "x=a+b*c", want: "x = a + b * c;\n"},
		{name: "typeof", src: "typeof  x", want: "typeof x;\n"},
		{name: "negation", src: "!a", want: "!a;\n"},
		{name: "conditional", src: "a?b:c", want: "a ? b : c;\n"},
		{name: "member", src: "a . b [ c ]", want: "a.b[c];\n"},
		{name: "new", src: "new Foo", want: "new Foo();\n"},
		{name: "arrow", src: "f = x=>x+1", want: "f = (x) => x + 1;\n"},
		{name: "string quotes", src: "a = 'it'", want: "a = \"it\";\n"},
		{name: "string with double quote", src: `a = 'say "hi"'`, want: "a = 'say \"hi\"';\n"},
		{name: "sequence", src: "a, b", want: "a, b;\n"},
		{name: "parenthesized sum", src: "(a + b) * c", want: "(a + b) * c;\n"},
	})
}

func TestObjectsAndArrays(t *testing.T) {
	runCases(t, 0, []formatCase{
		{name: "empty object", src: "x = {}", want: "x = {};\n"},
		{name: "flat object", src: "x = {a:1,'b':2}", want: "x = { a: 1, b: 2 };\n"},
		{name: "kept break", src: "x = {\na: 1 }", want: "x = {\n  a: 1,\n};\n"},
		{name: "shorthand", src: "x = {a, b}", want: "x = { a, b };\n"},
		{name: "array", src: "x = [1,2,3]", want: "x = [1, 2, 3];\n"},
		{name: "holes", src: "x = [,a,]", want: "x = [, a];\n"},
		{name: "empty array", src: "x = [ ]", want: "x = [];\n"},
	})
}

func TestCallsAndFunctions(t *testing.T) {
	runCases(t, 0, []formatCase{
		{name: "function", src: "function f(a,b){return a}", want: "function f(a, b) {\n  return a;\n}\n"},
		{name: "empty function", src: "function f(){}", want: "function f() {}\n"},
		{name: "last arrow hugged", src: "items.forEach(item => { use(item) })", want: "items.forEach((item) => {\n  use(item);\n});\n"},
		{name: "chain stays flat", src: "a.b().c()", want: "a.b().c();\n"},
	})
}

func TestBreaking(t *testing.T) {
	runCases(t, 20, []formatCase{
		{
			name: "arguments break",
			src:  "callSomething(argumentOne, argumentTwo)",
			want: "callSomething(\n  argumentOne,\n  argumentTwo,\n);\n",
		},
		{
			name: "array breaks",
			src:  "x = [aaaaaa, bbbbbb, cccccc]",
			want: "x = [\n  aaaaaa,\n  bbbbbb,\n  cccccc,\n];\n",
		},
	})
}

func TestComments(t *testing.T) {
	runCases(t, 0, []formatCase{
		{name: "leading line", src: "// hi\na()", want: "// hi\na();\n"},
		{name: "trailing line", src: "a() // hi", want: "a(); // hi\n"},
		{name: "block before", src: "/* hi */ a()", want: "/* hi */ a();\n"},
		{name: "dangling in block", src: "if (x) { // nothing\n}", want: "if (x) {\n  // nothing\n}\n"},
		{name: "block before else", src: "if (a) { b(); } /* c */ else { d(); }", want: "if (a) {\n  b();\n} /* c */ else {\n  d();\n}\n"},
		{name: "line before else", src: "if (a) { b(); } // c\nelse { d(); }", want: "if (a) {\n  b();\n}\n// c\nelse {\n  d();\n}\n"},
	})
}
