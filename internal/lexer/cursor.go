package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"trygap/internal/source"
)

// Cursor walks the bytes of one file. Reads past the end yield 0, so scanners
// can look ahead without bounds checks.
type Cursor struct {
	File *source.File
	Off  uint32
	end  uint32
}

func NewCursor(f *source.File) Cursor {
	end, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{File: f, end: end}
}

func (c *Cursor) limit() uint32 { return c.end }

func (c *Cursor) EOF() bool { return c.Off >= c.end }

// Peek returns the current byte.
func (c *Cursor) Peek() byte { return c.PeekAt(0) }

// PeekAt returns the byte n positions ahead of the cursor.
func (c *Cursor) PeekAt(n uint32) byte {
	if c.Off+n >= c.end {
		return 0
	}
	return c.File.Content[c.Off+n]
}

// Bump consumes one byte and returns it.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Eat consumes b if it is next.
func (c *Cursor) Eat(b byte) bool {
	if c.EOF() || c.File.Content[c.Off] != b {
		return false
	}
	c.Off++
	return true
}

// Match consumes s if the input continues with it.
func (c *Cursor) Match(s string) bool {
	n := uint32(len(s))
	if c.Off+n > c.end || string(c.File.Content[c.Off:c.Off+n]) != s {
		return false
	}
	c.Off += n
	return true
}

// PeekRune decodes the rune at the cursor; size is 0 at EOF.
func (c *Cursor) PeekRune() (r rune, size int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	if b := c.File.Content[c.Off]; b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(c.File.Content[c.Off:c.end])
}

// BumpRune consumes the rune at the cursor.
func (c *Cursor) BumpRune() {
	_, size := c.PeekRune()
	c.Off += uint32(size) // size <= utf8.UTFMax
}

// Mark is a saved offset used to build spans.
type Mark uint32

func (c *Cursor) Mark() Mark { return Mark(c.Off) }

// SpanFrom returns the span from m to the current offset.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}

// Reset moves the cursor back to m.
func (c *Cursor) Reset(m Mark) { c.Off = uint32(m) }
