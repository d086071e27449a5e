package diag

import "trygap/internal/source"

// position is where recovery tends to pile up reports: one code at one offset.
type position struct {
	code  Code
	file  source.FileID
	start uint32
}

// DedupReporter forwards only the first report of a code at a given start
// offset. Parser recovery re-reports a missing token at the same place with
// slightly different wording; those later reports are counted in Dropped.
type DedupReporter struct {
	next    Reporter
	seen    map[position]struct{}
	Dropped int
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: make(map[position]struct{})}
}

func (r *DedupReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r == nil {
		return
	}
	key := position{code: code, file: primary.File, start: primary.Start}
	if _, ok := r.seen[key]; ok {
		r.Dropped++
		return
	}
	r.seen[key] = struct{}{}
	if r.next != nil {
		r.next.Report(code, sev, primary, msg, notes)
	}
}
