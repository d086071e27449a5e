package trygap

import (
	"testing"

	"trygap/internal/doc"
)

func block(body ...doc.Doc) doc.Concat {
	return doc.Concat{doc.Text("{"), doc.IndentOf(doc.Hardline, doc.Concat(body)), doc.Hardline, doc.Text("}")}
}

func TestInsertGap(t *testing.T) {
	tests := []struct {
		name string
		in   doc.Doc
		want string
	}{
		{
			name: "block",
			in:   block(doc.Text("a();")),
			want: "{\n  a();\n\n}",
		},
		{
			name: "group around block",
			in:   doc.GroupOf(block(doc.Text("a();"))),
			want: "{\n  a();\n\n}",
		},
		{
			name: "indent around block",
			in:   doc.Concat{doc.Text("x"), doc.Indent{Contents: block(doc.Text("a();"))}},
			want: "x{\n    a();\n  }",
		},
		{
			name: "text brace",
			in:   doc.Text("{}"),
			want: "{}",
		},
		{
			name: "not ending in brace",
			in:   doc.Concat{doc.Text("{"), doc.Text("a")},
			want: "{a",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := doc.Print(InsertGap(tt.in), doc.DefaultOptions())
			if got != tt.want {
				t.Fatalf("render mismatch:\nwant %q\ngot  %q", tt.want, got)
			}
		})
	}
}

func TestInsertGapIndentRecurses(t *testing.T) {
	in := doc.Indent{Contents: block(doc.Text("a();"))}
	out, ok := InsertGap(in).(doc.Indent)
	if !ok {
		t.Fatalf("expected Indent, got %T", InsertGap(in))
	}
	if !doc.HasLabel(out, GapLabel) {
		t.Fatalf("gap not inserted inside indent")
	}
}

func TestInsertGapIdempotent(t *testing.T) {
	once := InsertGap(block(doc.Text("a();")))
	twice := InsertGap(once)
	want := doc.Print(once, doc.DefaultOptions())
	if got := doc.Print(twice, doc.DefaultOptions()); got != want {
		t.Fatalf("second insert changed output:\nwant %q\ngot  %q", want, got)
	}
}

func TestInsertGapKeepsInput(t *testing.T) {
	in := block(doc.Text("a();"))
	before := doc.Dump(in)
	_ = InsertGap(in)
	_ = InsertGap(doc.GroupOf(in))
	if after := doc.Dump(in); after != before {
		t.Fatalf("input modified:\nwant %q\ngot  %q", before, after)
	}
	if len(in) != 4 {
		t.Fatalf("input length changed to %d", len(in))
	}
}

func TestInsertGapSkipsConditionalGroup(t *testing.T) {
	in := doc.ConditionalGroup(block(doc.Text("a();")), block(doc.Text("b();")))
	if doc.HasLabel(InsertGap(in), GapLabel) {
		t.Fatalf("gap inserted into conditional group")
	}
}

func TestInsertGapNestedGap(t *testing.T) {
	inner := InsertGap(block(doc.Text("b();")))
	outer := block(doc.Text("a();"), doc.Hardline, inner)
	got := doc.Print(InsertGap(outer), doc.DefaultOptions())
	want := "{\n  a();\n  {\n    b();\n\n  }\n\n}"
	if got != want {
		t.Fatalf("render mismatch:\nwant %q\ngot  %q", want, got)
	}
	again := doc.Print(InsertGap(InsertGap(outer)), doc.DefaultOptions())
	if again != want {
		t.Fatalf("second insert changed output:\nwant %q\ngot  %q", want, again)
	}
}
