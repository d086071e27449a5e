package lexer

import (
	"testing"

	"trygap/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte(content))
	return fs.Get(id)
}

func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))
	for _, want := range []byte("a\nb") {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("bump = %q, want %q", got, want)
		}
	}
	if !cursor.EOF() {
		t.Fatal("expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Fatal("reads past EOF must return 0")
	}
}

func TestMarkResetAndSpan(t *testing.T) {
	cursor := NewCursor(createFile("abcdef"))
	cursor.Bump()
	m := cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	sp := cursor.SpanFrom(m)
	if sp.Start != 1 || sp.End != 3 {
		t.Fatalf("span = %v", sp)
	}
	cursor.Reset(m)
	if cursor.Peek() != 'b' {
		t.Fatalf("after reset peek = %q", cursor.Peek())
	}
}

func TestPeekAhead(t *testing.T) {
	cursor := NewCursor(createFile("ab"))
	if cursor.PeekAt(1) != 'b' {
		t.Fatal("PeekAt(1) should see the second byte")
	}
	if cursor.PeekAt(2) != 0 {
		t.Fatal("PeekAt past the end should be 0")
	}
	if !cursor.Eat('a') || cursor.Eat('a') {
		t.Fatal("Eat should consume a matching byte exactly once")
	}
}

func TestMatch(t *testing.T) {
	cursor := NewCursor(createFile("=>x"))
	if cursor.Match("=>x!") {
		t.Fatal("Match must not read past the end")
	}
	if cursor.Match("==") || cursor.Off != 0 {
		t.Fatal("failed Match must not consume")
	}
	if !cursor.Match("=>") || cursor.Peek() != 'x' {
		t.Fatalf("Match should consume the arrow, at %d", cursor.Off)
	}
}

func TestRunes(t *testing.T) {
	cursor := NewCursor(createFile("é$"))
	r, size := cursor.PeekRune()
	if r != 'é' || size != 2 {
		t.Fatalf("PeekRune = %q/%d", r, size)
	}
	cursor.BumpRune()
	if r, _ := cursor.PeekRune(); r != '$' {
		t.Fatalf("after BumpRune got %q", r)
	}
	cursor.BumpRune()
	if _, size := cursor.PeekRune(); size != 0 || !cursor.EOF() {
		t.Fatal("expected EOF after the last rune")
	}
}
