package source

import "fmt"

// Span addresses source bytes [Start, End) of File. Tokens, AST nodes, IR
// nodes and diagnostics all carry one.
type Span struct {
	File  FileID `json:"file" yaml:"file" msgpack:"file"`
	Start uint32 `json:"start" yaml:"start" msgpack:"start"`
	End   uint32 `json:"end" yaml:"end" msgpack:"end"`
}

func (s Span) Empty() bool { return s.End <= s.Start }

func (s Span) Len() uint32 {
	if s.Empty() {
		return 0
	}
	return s.End - s.Start
}

// Valid reports whether s is well formed for a file of size bytes.
func (s Span) Valid(size uint32) bool {
	return s.Start <= s.End && s.End <= size
}

// Encloses reports whether inner lies within s in the same file.
func (s Span) Encloses(inner Span) bool {
	return s.File == inner.File && s.Start <= inner.Start && inner.End <= s.End
}

// Cover grows s to include other. A span of another file is ignored.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	s.Start = min(s.Start, other.Start)
	s.End = max(s.End, other.End)
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}
