package ui

import (
	"strings"
	"testing"

	"trygap/internal/driver"
)

func TestProgressModelAppliesEvents(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("formatting", []string{"a.js", "b.js"}, events).(*progressModel)

	m.Update(eventMsg(driver.Event{File: "a.js", Stage: driver.StageFormat, Status: driver.StatusWorking}))
	if got := m.items[0].status; got != "formatting" {
		t.Fatalf("status mismatch: want %q, got %q", "formatting", got)
	}
	m.Update(eventMsg(driver.Event{File: "a.js", Stage: driver.StageFormat, Status: driver.StatusDone}))
	m.Update(eventMsg(driver.Event{File: "b.js", Stage: driver.StageFormat, Status: driver.StatusCached}))
	m.Update(eventMsg(driver.Event{File: "unknown.js", Status: driver.StatusError}))
	if got := m.finished(); got != 2 {
		t.Fatalf("expected 2 finished files, got %d", got)
	}

	view := m.View()
	for _, want := range []string{"(2/2)", "a.js", "b.js", "cached"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view lacks %q:\n%s", want, view)
		}
	}
}

func TestProgressModelDone(t *testing.T) {
	events := make(chan driver.Event)
	close(events)
	m := NewProgressModel("formatting", []string{"a.js"}, events).(*progressModel)
	msg := m.listenForEvent()()
	if _, ok := msg.(doneMsg); !ok {
		t.Fatalf("expected doneMsg from a closed channel, got %T", msg)
	}
	_, cmd := m.Update(msg)
	if cmd == nil || !m.done {
		t.Fatalf("model did not finish")
	}
	if !strings.HasPrefix(stripANSI(m.View()), "done: ") {
		t.Fatalf("unexpected header: %q", m.View())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		value string
		width int
		want  string
	}{
		{value: "short.js", width: 20, want: "short.js"},
		{value: "a/very/long/path.js", width: 10, want: "a/very/..."},
		{value: "日本語のファイル.js", width: 9, want: "日本語..."},
		{value: "abcdef", width: 3, want: "abc"},
		{value: "abc", width: 0, want: "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.value, tt.width); got != tt.want {
			t.Fatalf("truncate(%q, %d) mismatch:\nwant %q\ngot  %q", tt.value, tt.width, tt.want, got)
		}
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == 0x1b:
			inEscape = true
		case inEscape:
			if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' {
				inEscape = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
