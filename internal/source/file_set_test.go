package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.expr", []byte("a + b"), 0)
	id2 := fs.Add("test.expr", []byte("c - d"), 0)
	if id1 != 0 || id2 != 1 {
		t.Fatalf("unexpected ids: %d, %d", id1, id2)
	}

	latest, ok := fs.GetLatest("test.expr")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d, %v; want %d, true", latest, ok, id2)
	}
	if got := fs.Get(id1).Text(); got != "a + b" {
		t.Errorf("old version content = %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Len = %d, want 2", fs.Len())
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.expr")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("x\r\ny\r\n")...)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if f.Text() != "x\ny\n" {
		t.Fatalf("content = %q", f.Text())
	}
	if !f.Flags.Has(FileHadBOM | FileNormalizedCRLF) {
		t.Errorf("flags = %b, want BOM and CRLF bits", f.Flags)
	}
	if f.Flags.Has(FileVirtual) {
		t.Errorf("loaded file must not be virtual")
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.expr")); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestAddVirtualNFC(t *testing.T) {
	fs := NewFileSet()
	// "e" + combining acute accent composes to U+00E9.
	id := fs.AddVirtual("nfc.expr", []byte("cafe\u0301"))
	f := fs.Get(id)
	if f.Text() != "caf\u00e9" {
		t.Fatalf("content = %q", f.Text())
	}
	if f.Flags&FileNormalizedNFC == 0 || f.Flags&FileVirtual == 0 {
		t.Errorf("flags = %b", f.Flags)
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("pos.expr", []byte("ab\ncd\n\nef"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 3}}, // the '\n' itself belongs to line 1
		{3, LineCol{2, 1}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
		{9, LineCol{4, 3}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("lines.expr", []byte("first\nsecond\nthird")))

	cases := map[uint32]string{0: "", 1: "first", 2: "second", 3: "third", 4: ""}
	for n, want := range cases {
		if got := f.GetLine(n); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 6}
	b := Span{File: 1, Start: 2, End: 5}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 6}) {
		t.Errorf("Cover = %v", got)
	}
	if got := a.Cover(Span{File: 2, Start: 0, End: 10}); got != a {
		t.Errorf("cross-file Cover must keep receiver, got %v", got)
	}
	if !(Span{Start: 3, End: 3}).Empty() || a.Len() != 2 {
		t.Errorf("Empty/Len mismatch")
	}
}

func TestSpanValidAndEncloses(t *testing.T) {
	outer := Span{File: 1, Start: 2, End: 8}
	if !outer.Valid(8) || outer.Valid(7) || (Span{Start: 5, End: 4}).Valid(10) {
		t.Errorf("Valid mismatch")
	}
	if !outer.Encloses(Span{File: 1, Start: 2, End: 8}) || !outer.Encloses(Span{File: 1, Start: 3, End: 4}) {
		t.Errorf("Encloses should accept inner spans")
	}
	if outer.Encloses(Span{File: 1, Start: 1, End: 4}) || outer.Encloses(Span{File: 2, Start: 3, End: 4}) {
		t.Errorf("Encloses should reject escaping or foreign spans")
	}
}
