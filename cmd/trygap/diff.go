package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"trygap/internal/driver"
)

var (
	diffHeaderColor = color.New(color.Bold)
	diffAddColor    = color.New(color.FgGreen)
	diffDelColor    = color.New(color.FgRed)
)

func renderFmtDiff(out, errOut io.Writer, results []driver.FormatResult) (hasErrors, hasChanges bool) {
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			reportError(errOut, res)
			continue
		}
		if !res.Changed {
			continue
		}
		hasChanges = true
		before, err := os.ReadFile(res.Path)
		if err != nil {
			hasErrors = true
			fmt.Fprintf(errOut, "fmt: %s: %v\n", res.Path, err)
			continue
		}
		writeDiff(out, res.Path, string(before), string(res.Formatted))
	}
	return hasErrors, hasChanges
}

// writeDiff prints a line diff of before and after. Unchanged lines are
// left out; each run of changes is preceded by its starting line numbers.
func writeDiff(out io.Writer, path, before, after string) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	diffHeaderColor.Fprintf(out, "--- %s\n+++ %s (formatted)\n", path, path)
	oldLine, newLine := 1, 1
	inHunk := false
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		n := strings.Count(d.Text, "\n")
		if !strings.HasSuffix(d.Text, "\n") {
			n++
		}
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			oldLine += n
			newLine += n
			inHunk = false
			continue
		}
		if !inHunk {
			diffHeaderColor.Fprintf(out, "@@ -%d +%d @@\n", oldLine, newLine)
			inHunk = true
		}
		for _, line := range strings.Split(text, "\n") {
			if d.Type == diffmatchpatch.DiffDelete {
				diffDelColor.Fprintf(out, "-%s\n", line)
			} else {
				diffAddColor.Fprintf(out, "+%s\n", line)
			}
		}
		if d.Type == diffmatchpatch.DiffDelete {
			oldLine += n
		} else {
			newLine += n
		}
	}
}
