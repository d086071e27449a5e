package observ

import (
	"strings"
	"sync"
	"testing"
)

func TestTimerNilIsNoop(t *testing.T) {
	var tm *Timer
	idx := tm.Begin("parse")
	tm.End(idx, "")
	if got := tm.Report(); len(got.Phases) != 0 || got.TotalMS != 0 {
		t.Fatalf("nil timer report = %+v, want empty", got)
	}
}

func TestTimerMergesPhases(t *testing.T) {
	tm := NewTimer()
	for range 3 {
		tm.End(tm.Begin("parse"), "")
	}
	tm.End(tm.Begin("print"), "a.js")

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(report.Phases))
	}
	if report.Phases[0].Name != "parse" || report.Phases[1].Name != "print" {
		t.Fatalf("phase order = %q, %q", report.Phases[0].Name, report.Phases[1].Name)
	}
	if report.Phases[1].Note != "a.js" {
		t.Fatalf("note = %q", report.Phases[1].Note)
	}
	if !strings.Contains(tm.Summary(), "total") {
		t.Fatalf("summary missing total:\n%s", tm.Summary())
	}
}

func TestTimerConcurrent(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.End(tm.Begin("render"), "")
		}()
	}
	wg.Wait()
	if got := tm.Report().Phases; len(got) != 1 {
		t.Fatalf("phases = %d, want 1", len(got))
	}
}

func TestEndIgnoresBadIndex(t *testing.T) {
	tm := NewTimer()
	tm.End(5, "x")
	tm.End(-1, "x")
	if len(tm.Report().Phases) != 0 {
		t.Fatal("unexpected phases")
	}
}
