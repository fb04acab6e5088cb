package source

type (
	// FileID indexes FileSet; IDs are never reused within one set.
	FileID uint32
	// FileFlags records what loading did to the bytes.
	FileFlags uint8
)

const (
	FileVirtual        FileFlags = 1 << iota // added from memory: REPL entry, test, stdin
	FileHadBOM                               // leading UTF-8 BOM dropped
	FileNormalizedCRLF                       // \r\n rewritten to \n
	FileNormalizedNFC                        // rewritten to NFC
)

// Has reports whether every bit of f2 is set.
func (f FileFlags) Has(f2 FileFlags) bool { return f&f2 == f2 }

// File is one loaded source. Content is already normalized, so spans index
// into exactly the bytes the lexer saw.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // byte offset of every '\n'
	Hash    [32]byte // sha256 of Content, keys the IR cache
	Flags   FileFlags
}

// LineCol is a 1-based position for humans.
type LineCol struct {
	Line uint32
	Col  uint32
}
