package format_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"trygap/internal/format"
	"trygap/internal/observ"
	"trygap/internal/trygap"
)

func formatString(t *testing.T, src string, opts format.Options) string {
	t.Helper()
	res, err := format.Source(context.Background(), []byte(src), opts)
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	return string(res.Output)
}

func TestSourceFormatsStatements(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{name: "empty", src: "", want: ""},
		{name: "call", src: "work( )", want: "work();\n"},
		{name: "declarations", src: "const a=1;let b", want: "const a = 1;\nlet b;\n"},
		{name: "try catch", src: "try{a()}catch(e){}", want: "try {\n  a();\n} catch (e) {}\n"},
		{name: "if else", src: "if(x){a()}else{b()}", want: "if (x) {\n  a();\n} else {\n  b();\n}\n"},
		{name: "blank line kept", src: "a();\n\n\nb();", want: "a();\n\nb();\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := formatString(t, tc.src, format.Options{})
			if got != tc.want {
				t.Fatalf("format mismatch:\nwant %q\ngot  %q", tc.want, got)
			}
		})
	}
}

func TestSourceReportsChanged(t *testing.T) {
	res, err := format.Source(context.Background(), []byte("a();\n"), format.Options{})
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if res.Changed {
		t.Fatalf("formatted input reported as changed")
	}
	res, err = format.Source(context.Background(), []byte("a( );"), format.Options{})
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if !res.Changed {
		t.Fatalf("unformatted input reported as unchanged")
	}
}

func TestSourceLineEndingsAndBOM(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		want    string
		changed bool
	}{
		{name: "crlf folded", src: "a();\r\nb();\r\n", want: "a();\nb();\n", changed: true},
		{name: "bom kept", src: "\uFEFFa();\n", want: "\uFEFFa();\n", changed: false},
		{name: "bom with crlf", src: "\uFEFFa( );\r\n", want: "\uFEFFa();\n", changed: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := format.Source(context.Background(), []byte(tc.src), format.Options{})
			if err != nil {
				t.Fatalf("format failed: %v", err)
			}
			if string(res.Output) != tc.want {
				t.Fatalf("format mismatch:\nwant %q\ngot  %q", tc.want, res.Output)
			}
			if res.Changed != tc.changed {
				t.Fatalf("Changed = %v, want %v", res.Changed, tc.changed)
			}
		})
	}
}

func TestSourceNil(t *testing.T) {
	res, err := format.Source(context.Background(), nil, format.Options{})
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if len(res.Output) != 0 || res.Changed {
		t.Fatalf("nil source gave %q, changed %v", res.Output, res.Changed)
	}
	if err := format.Check(context.Background(), nil, format.Options{}); err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if _, err := format.Doc(context.Background(), nil, format.Options{}); err != nil {
		t.Fatalf("doc failed: %v", err)
	}
}

func TestSourceSyntaxError(t *testing.T) {
	_, err := format.Source(context.Background(), []byte("try {"), format.Options{Path: "broken.js"})
	if !errors.Is(err, format.ErrSyntax) {
		t.Fatalf("expected ErrSyntax, got %v", err)
	}
	var perr *format.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if len(perr.Diagnostics) == 0 {
		t.Fatalf("parse error carries no diagnostics")
	}
	if !strings.Contains(perr.Error(), "broken.js") {
		t.Fatalf("error does not name the file: %q", perr.Error())
	}
}

func TestSourceUnknownOption(t *testing.T) {
	_, err := format.Source(context.Background(), []byte("a();"), format.Options{
		Values: map[string]any{"noSuchOption": true},
	})
	if err == nil {
		t.Fatalf("expected an error for an unknown option")
	}
}

func TestSourceRecordsPhases(t *testing.T) {
	timer := observ.NewTimer()
	formatString(t, "a();", format.Options{Timer: timer})
	rep := timer.Report()
	var names []string
	for _, ph := range rep.Phases {
		names = append(names, ph.Name)
	}
	if got := strings.Join(names, ","); got != "parse,print,render" {
		t.Fatalf("phase mismatch:\nwant %q\ngot  %q", "parse,print,render", got)
	}
}

func TestDocHasGapLabel(t *testing.T) {
	d, err := format.Doc(context.Background(), []byte("try { a(); } catch (e) {}"), format.Options{
		Extensions: trygap.Registry(),
		Values:     map[string]any{trygap.OptionName: true},
	})
	if err != nil {
		t.Fatalf("doc failed: %v", err)
	}
	if !hasGap(d) {
		t.Fatalf("doc has no %s label", trygap.GapLabel)
	}
}

func TestCheckStable(t *testing.T) {
	srcs := []string{
		"try { a(); } catch (e) { b(); } finally { c(); }",
		"function f(a, b) { return a + b; }",
		"const o = { a: 1, b: [1, 2, 3] };",
	}
	for _, src := range srcs {
		if err := format.Check(context.Background(), []byte(src), format.Options{}); err != nil {
			t.Fatalf("check %q: %v", src, err)
		}
	}
}

var statements = []string{
	"a();",
	"const x = 1;",
	"let y = x + 2;",
	"if (x) { a(); }",
	"while (y) { y = y - 1; }",
	"return;",
	"obj.method(1, 2);",
	"// note\nb();",
	"try { c(); } catch (e) { d(); }",
	"try { c(); } catch (e) {} finally { done(); }",
}

func drawProgram(rt *rapid.T) string {
	n := rapid.IntRange(0, 6).Draw(rt, "statements")
	var b strings.Builder
	b.WriteString("function f() {\n")
	for i := 0; i < n; i++ {
		b.WriteString(rapid.SampledFrom(statements).Draw(rt, "statement"))
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return b.String()
}

func TestPropertyIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		src := drawProgram(rt)
		on := rapid.Bool().Draw(rt, "gap")
		opts := format.Options{
			Extensions: trygap.Registry(),
			Values:     map[string]any{trygap.OptionName: on},
		}
		if err := format.Check(context.Background(), []byte(src), opts); err != nil {
			rt.Fatalf("check %q: %v", src, err)
		}
	})
}

func TestPropertyFlagOffMatchesBase(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		src := []byte(drawProgram(rt))
		base, err := format.Source(context.Background(), src, format.Options{})
		if err != nil {
			rt.Fatalf("format: %v", err)
		}
		wrapped, err := format.Source(context.Background(), src, format.Options{Extensions: trygap.Registry()})
		if err != nil {
			rt.Fatalf("format: %v", err)
		}
		if string(base.Output) != string(wrapped.Output) {
			rt.Fatalf("output mismatch:\nwant %q\ngot  %q", base.Output, wrapped.Output)
		}
	})
}
