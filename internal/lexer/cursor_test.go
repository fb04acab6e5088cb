package lexer

import (
	"testing"
)

// TestSequentialReading: "a\nb" → a, \n, b, затем EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor("a\nb")

	for i, want := range []rune{'a', '\n', 'b'} {
		if cursor.IsEOF() {
			t.Fatalf("step %d: unexpected EOF", i)
		}
		if got := cursor.First(); got != want {
			t.Errorf("step %d: First() = %q, want %q", i, got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Errorf("step %d: Bump() = %q, want %q", i, got, want)
		}
	}

	if !cursor.IsEOF() {
		t.Fatal("expected EOF at end")
	}
	if cursor.First() != EOFChar || cursor.Second() != EOFChar {
		t.Errorf("peek at EOF must return the sentinel")
	}
	if got := cursor.Bump(); got != EOFChar {
		t.Errorf("Bump at EOF = %q, want sentinel", got)
	}
	if cursor.Pos() != 3 {
		t.Errorf("Pos() = %d, want 3", cursor.Pos())
	}
}

func TestPeekDoesNotAdvance(t *testing.T) {
	cursor := NewCursor("abc")
	if cursor.First() != 'a' || cursor.Second() != 'b' {
		t.Fatalf("First/Second = %q/%q", cursor.First(), cursor.Second())
	}
	if cursor.Pos() != 0 || cursor.Offset() != 0 {
		t.Fatalf("peeking advanced the cursor")
	}

	cursor.Bump()
	cursor.Bump()
	if cursor.First() != 'c' || cursor.Second() != EOFChar {
		t.Errorf("near end: First/Second = %q/%q", cursor.First(), cursor.Second())
	}
}

func TestEmptyInputIsEOF(t *testing.T) {
	cursor := NewCursor("")
	if !cursor.IsEOF() {
		t.Fatal("empty input must be EOF")
	}
	if cursor.Bump() != EOFChar {
		t.Fatal("Bump on empty input must return the sentinel")
	}
}

// TestUnicodeCountsCharacters: позиция считает символы, смещение считает байты.
func TestUnicodeCountsCharacters(t *testing.T) {
	cursor := NewCursor("αβc")
	if cursor.Second() != 'β' {
		t.Fatalf("Second() = %q, want 'β'", cursor.Second())
	}
	cursor.Bump()
	cursor.Bump()
	if cursor.Pos() != 2 {
		t.Errorf("Pos() = %d, want 2", cursor.Pos())
	}
	if cursor.Offset() != 4 {
		t.Errorf("Offset() = %d, want 4", cursor.Offset())
	}
	if cursor.First() != 'c' {
		t.Errorf("First() = %q, want 'c'", cursor.First())
	}
}

func TestMarkSliceSpan(t *testing.T) {
	cursor := NewCursor("foo bar")
	cursor.EatWhile(func(r rune) bool { return r != ' ' })
	cursor.Bump()

	m := cursor.Mark()
	if n := cursor.EatWhile(func(r rune) bool { return r != ' ' }); n != 3 {
		t.Fatalf("EatWhile consumed %d", n)
	}
	if got := cursor.Slice(m); got != "bar" {
		t.Errorf("Slice = %q", got)
	}
	sp := cursor.SpanFrom(7, m)
	if sp.File != 7 || sp.Start != 4 || sp.End != 7 {
		t.Errorf("SpanFrom = %+v", sp)
	}
}
