package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"exprc/internal/source"
)

// EOFChar is returned by the cursor once the input is exhausted.
const EOFChar rune = 0

// Cursor is a forward-only scanner over a string with up to two characters of lookahead.
// It tracks the byte offset next to the character position, so every
// operation decodes at most two runes and stays O(1).
type Cursor struct {
	src string
	off int    // bytes consumed
	pos uint32 // characters consumed
}

// NewCursor creates a cursor positioned at the start of src.
func NewCursor(src string) Cursor {
	if _, err := safecast.Conv[uint32](len(src)); err != nil {
		panic(fmt.Errorf("len source overflow: %w", err))
	}
	return Cursor{src: src}
}

// IsEOF reports whether every character has been consumed.
func (c *Cursor) IsEOF() bool {
	return c.off >= len(c.src)
}

// First returns the current character without consuming it.
func (c *Cursor) First() rune {
	r, _ := c.decode(c.off)
	return r
}

// Second returns the character after First without consuming anything.
func (c *Cursor) Second() rune {
	_, sz := c.decode(c.off)
	if sz == 0 {
		return EOFChar
	}
	r, _ := c.decode(c.off + sz)
	return r
}

// Bump consumes and returns the current character.
// At the end of input it returns EOFChar and leaves the position unchanged.
func (c *Cursor) Bump() rune {
	r, sz := c.decode(c.off)
	if sz == 0 {
		return EOFChar
	}
	c.off += sz
	c.pos++
	return r
}

// Pos returns the number of characters consumed so far.
func (c *Cursor) Pos() uint32 {
	return c.pos
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.off
}

func (c *Cursor) decode(off int) (rune, int) {
	if off >= len(c.src) {
		return EOFChar, 0
	}
	if b := c.src[off]; b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	return utf8.DecodeRuneInString(c.src[off:])
}

// Mark это метка, чтобы быстро получать Span читаемого фрагмента.
type Mark int

// Mark saves the current byte offset.
func (c *Cursor) Mark() Mark {
	return Mark(c.off)
}

// Slice returns the source text consumed since m.
func (c *Cursor) Slice(m Mark) string {
	return c.src[int(m):c.off]
}

// SpanFrom returns the byte span consumed since m.
func (c *Cursor) SpanFrom(file source.FileID, m Mark) source.Span {
	start, err := safecast.Conv[uint32](int(m))
	if err != nil {
		panic(fmt.Errorf("span start overflow: %w", err))
	}
	end, err := safecast.Conv[uint32](c.off)
	if err != nil {
		panic(fmt.Errorf("span end overflow: %w", err))
	}
	return source.Span{File: file, Start: start, End: end}
}

// EatWhile consumes characters while pred holds and reports how many were taken.
func (c *Cursor) EatWhile(pred func(rune) bool) int {
	n := 0
	for !c.IsEOF() && pred(c.First()) {
		c.Bump()
		n++
	}
	return n
}
