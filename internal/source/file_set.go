package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet owns every file of a run, whether read from disk or typed into
// the REPL, and turns spans back into line/column positions.
type FileSet struct {
	files   []File
	byPath  map[string]FileID // newest ID per path
	baseDir string
}

func NewFileSet() *FileSet {
	return NewFileSetWithBase("")
}

// NewFileSetWithBase задаёт каталог, относительно которого печатаются пути.
func NewFileSetWithBase(baseDir string) *FileSet {
	return &FileSet{byPath: map[string]FileID{}, baseDir: baseDir}
}

// BaseDir is the configured base, or the working directory when unset.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir != "" {
		return fileSet.baseDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

func (fileSet *FileSet) Len() int { return len(fileSet.files) }

// Add registers content under path and returns a fresh ID, even when the
// path was added before; GetLatest then resolves to the new one.
// content must already be normalized.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("file %s too large: %w", path, err))
	}
	n, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("too many files: %w", err))
	}
	id := FileID(n)
	path = normalizePath(path)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    path,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	fileSet.byPath[path] = id
	return id
}

// Load reads path and normalizes it like AddVirtual does.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- reading user-named sources is the point
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	content, flags := normalize(raw)
	return fileSet.Add(path, content, flags), nil
}

// AddVirtual registers in-memory text under name.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	content, flags := normalize(content)
	return fileSet.Add(name, content, flags|FileVirtual)
}

// normalize drops a BOM, then folds CRLF and applies NFC, in that order.
func normalize(content []byte) ([]byte, FileFlags) {
	var flags FileFlags
	steps := []struct {
		apply func([]byte) ([]byte, bool)
		flag  FileFlags
	}{
		{removeBOM, FileHadBOM},
		{normalizeCRLF, FileNormalizedCRLF},
		{normalizeNFC, FileNormalizedNFC},
	}
	for _, step := range steps {
		var changed bool
		if content, changed = step.apply(content); changed {
			flags |= step.flag
		}
	}
	return content, flags
}

// Get panics on an ID from another set.
func (fileSet *FileSet) Get(id FileID) *File {
	return &fileSet.files[id]
}

func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fileSet.byPath[normalizePath(path)]
	return id, ok
}

// Resolve maps both ends of span to line and column.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	idx := fileSet.files[span.File].LineIdx
	return toLineCol(idx, span.Start), toLineCol(idx, span.End)
}
