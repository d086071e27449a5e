package format

import (
	"errors"
	"fmt"
	"strings"

	"trygap/internal/diag"
	"trygap/internal/source"
)

var (
	// ErrSyntax is wrapped by every ParseError.
	ErrSyntax = errors.New("syntax error")
	// ErrNoPrinter is returned when no extension prints estree.
	ErrNoPrinter = errors.New("format: no printer for estree")
	// ErrUnstable is returned by Check when formatting the output again
	// changes it.
	ErrUnstable = errors.New("format: output is not stable")
)

// ParseError reports the diagnostics of a source that failed to parse.
type ParseError struct {
	Path        string
	Diagnostics []diag.Diagnostic

	fs *source.FileSet
}

func (e *ParseError) Error() string {
	if len(e.Diagnostics) == 0 {
		return fmt.Sprintf("%s: syntax error", e.Path)
	}
	first := strings.TrimSuffix(diag.FormatShort(e.Diagnostics[:1], e.fs), "\n")
	if n := len(e.Diagnostics) - 1; n > 0 {
		return fmt.Sprintf("%s (and %d more)", first, n)
	}
	return first
}

func (e *ParseError) Unwrap() error { return ErrSyntax }

// Report renders every diagnostic with its source line.
func (e *ParseError) Report() string {
	return diag.FormatSnippet(e.Diagnostics, e.fs)
}

// Entries resolves the diagnostics to positions, for machine-readable output.
func (e *ParseError) Entries() []diag.Entry {
	return diag.Resolve(e.Diagnostics, e.fs)
}
