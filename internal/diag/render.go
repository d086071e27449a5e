package diag

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"trygap/internal/source"
)

// Entry is a diagnostic with its position resolved against a FileSet.
type Entry struct {
	Path     string   `json:"path"`
	Line     uint32   `json:"line"`
	Col      uint32   `json:"col"`
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Notes    []string `json:"notes,omitempty"`
}

// Resolve maps diags to entries, in bag order. Spans of files outside fs
// resolve to "<unknown>" at 0:0.
func Resolve(diags []Diagnostic, fs *source.FileSet) []Entry {
	if len(diags) == 0 {
		return nil
	}
	out := make([]Entry, len(diags))
	for i, d := range diags {
		e := Entry{Path: "<unknown>", Severity: d.Severity, Code: d.Code.ID(), Message: d.Message}
		if fs != nil && int(d.Primary.File) < fs.Len() {
			e.Path = fs.Get(d.Primary.File).Path
			pos, _ := fs.Resolve(d.Primary)
			e.Line, e.Col = pos.Line, pos.Col
		}
		for _, n := range d.Notes {
			e.Notes = append(e.Notes, n.Msg)
		}
		out[i] = e
	}
	return out
}

// FormatShort renders diagnostics one per line as
// "path:line:col: severity [CODE] message".
func FormatShort(diags []Diagnostic, fs *source.FileSet) string {
	var b strings.Builder
	for _, e := range Resolve(diags, fs) {
		fmt.Fprintf(&b, "%s:%d:%d: %s [%s] %s\n", e.Path, e.Line, e.Col, e.Severity, e.Code, e.Message)
		for _, n := range e.Notes {
			fmt.Fprintf(&b, "  note: %s\n", n)
		}
	}
	return b.String()
}

// FormatSnippet is FormatShort with the offending source line and a caret
// underline after every diagnostic:
//
//	main.js:1:7: error [SYN2001] expected ')'
//	  | call(a;
//	  |       ^
func FormatSnippet(diags []Diagnostic, fs *source.FileSet) string {
	var b strings.Builder
	for i, e := range Resolve(diags, fs) {
		fmt.Fprintf(&b, "%s:%d:%d: %s [%s] %s\n", e.Path, e.Line, e.Col, e.Severity, e.Code, e.Message)
		if e.Line > 0 {
			writeSnippet(&b, fs, diags[i].Primary, e)
		}
		for _, n := range e.Notes {
			fmt.Fprintf(&b, "  note: %s\n", n)
		}
	}
	return b.String()
}

func writeSnippet(b *strings.Builder, fs *source.FileSet, sp source.Span, e Entry) {
	line := fs.Get(sp.File).GetLine(e.Line)
	col := min(int(e.Col)-1, len(line))
	prefix := line[:col]

	// tabs stay tabs so the caret lines up in any terminal
	var pad strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	width := 1
	if end := col + int(sp.Len()); sp.Len() > 0 && end <= len(line) {
		width = max(runewidth.StringWidth(line[col:end]), 1)
	}
	fmt.Fprintf(b, "  | %s\n  | %s%s\n", line, pad.String(), strings.Repeat("^", width))
}
