package diag

import (
	"testing"

	"trygap/internal/source"
)

func TestBagLimitAndErrors(t *testing.T) {
	bag := NewBag(2)
	r := BagReporter{Bag: bag}

	r.Report(SynExpectSemicolon, SevWarning, source.Span{Start: 1, End: 2}, "w", nil)
	if bag.HasErrors() {
		t.Fatal("warning must not count as error")
	}
	if !bag.HasWarnings() {
		t.Fatal("expected warnings")
	}
	ReportError(r, SynUnexpectedToken, source.Span{Start: 0, End: 1}, "e").Emit()
	ReportError(r, SynUnexpectedToken, source.Span{Start: 5, End: 6}, "dropped").Emit()

	if bag.Len() != 2 {
		t.Fatalf("bag should be capped at 2, got %d", bag.Len())
	}
	if !bag.HasErrors() {
		t.Fatal("expected errors")
	}
	first, ok := bag.First()
	if !ok || first.Message != "e" {
		t.Fatalf("First() = %+v, %v", first, ok)
	}

	bag.Sort()
	if bag.Items()[0].Message != "e" {
		t.Errorf("sort by start failed: %+v", bag.Items())
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: bag})
	sp := source.Span{Start: 3, End: 4}
	for range 3 {
		r.Report(SynUnclosedBrace, SevError, sp, "expected '}'", nil)
	}
	r.Report(SynUnclosedBrace, SevError, sp, "another message", nil)
	r.Report(SynUnclosedBrace, SevError, source.Span{Start: 5, End: 6}, "expected '}'", nil)
	if bag.Len() != 2 {
		t.Fatalf("expected 2 unique diagnostics, got %d", bag.Len())
	}
	if r.Dropped != 3 {
		t.Fatalf("expected 3 dropped reports, got %d", r.Dropped)
	}
}

func TestCodeStrings(t *testing.T) {
	if got := LexUnterminatedString.ID(); got != "LEX1002" {
		t.Errorf("ID = %q", got)
	}
	if got := SynTryWithoutHandler.String(); got != "[SYN2010]: Try statement without catch or finally" {
		t.Errorf("String = %q", got)
	}
	if got := Code(9999).Title(); got != "Unknown error" {
		t.Errorf("Title = %q", got)
	}
}

func TestFormatShort(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("bad.js", []byte("a();\ntry {}\n"))
	d := NewError(SynTryWithoutHandler, source.Span{File: id, Start: 5, End: 8}, "missing catch or finally clause").
		WithNote(source.Span{File: id, Start: 9, End: 11}, "block ends here")

	got := FormatShort([]Diagnostic{d}, fs)
	want := "bad.js:2:1: error [SYN2010] missing catch or finally clause\n  note: block ends here\n"
	if got != want {
		t.Fatalf("FormatShort mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestResolveEntries(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x.js", []byte("a(;\n"))
	entries := Resolve([]Diagnostic{
		NewError(SynTryWithoutHandler, source.Span{File: id, Start: 2, End: 3}, "boom"),
		New(SevWarning, SynTryWithoutHandler, source.Span{File: 42}, "elsewhere"),
	}, fs)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if e := entries[0]; e.Path != "x.js" || e.Line != 1 || e.Col != 3 || e.Severity != SevError {
		t.Fatalf("unexpected first entry: %+v", e)
	}
	if e := entries[1]; e.Path != "<unknown>" || e.Line != 0 {
		t.Fatalf("unexpected second entry: %+v", e)
	}
	text, err := entries[1].Severity.MarshalText()
	if err != nil || string(text) != "warning" {
		t.Fatalf("MarshalText = %q, %v", text, err)
	}
	if got := Severity(7).String(); got != "unknown" {
		t.Fatalf("String = %q", got)
	}
	if Resolve(nil, fs) != nil {
		t.Fatalf("expected nil entries for no diagnostics")
	}
}

func TestBagOf(t *testing.T) {
	bag := NewBag(1)
	for _, r := range []Reporter{BagReporter{Bag: bag}, &BagReporter{Bag: bag}, NewDedupReporter(&BagReporter{Bag: bag})} {
		if got := BagOf(r); got != bag {
			t.Fatalf("BagOf(%T) = %p, want %p", r, got, bag)
		}
	}
	if BagOf(nil) != nil {
		t.Fatalf("BagOf(nil) should be nil")
	}
}

func TestFormatSnippet(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.js", []byte("ok();\n\tcall(a;\n"))
	d := NewError(SynTryWithoutHandler, source.Span{File: id, Start: 12, End: 13}, "expected ')'")

	got := FormatSnippet([]Diagnostic{d}, fs)
	want := "a.js:2:7: error [SYN2010] expected ')'\n" +
		"  | \tcall(a;\n" +
		"  | \t     ^\n"
	if got != want {
		t.Fatalf("FormatSnippet mismatch:\nwant %q\ngot  %q", want, got)
	}
}
