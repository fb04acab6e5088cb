package source

import (
	"os"
	"path/filepath"
)

func (f *File) Text() string { return string(f.Content) }

// GetLine returns line n (1-based) without its newline, or "" when the
// file has no such line.
func (f *File) GetLine(n uint32) string {
	if n == 0 || uint64(n)-1 > uint64(len(f.LineIdx)) {
		return ""
	}
	i := int(n - 1)
	start, end := 0, len(f.Content)
	if i > 0 {
		start = int(f.LineIdx[i-1]) + 1
	}
	if i < len(f.LineIdx) {
		end = int(f.LineIdx[i])
	}
	if start > end {
		return ""
	}
	return string(f.Content[start:end])
}

// autoPathLimit is how long an absolute path may get before "auto" mode
// falls back to the base name.
const autoPathLimit = 40

// FormatPath renders Path for diagnostics. mode is one of
// absolute, relative (to baseDir, or the working directory), basename
// or auto; anything else prints Path unchanged.
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		abs, err := filepath.Abs(f.Path)
		if err != nil {
			return f.Path
		}
		return filepath.ToSlash(abs)
	case "relative":
		if baseDir == "" {
			baseDir, _ = os.Getwd()
		}
		rel, err := filepath.Rel(baseDir, f.Path)
		if err != nil {
			return f.Path
		}
		return filepath.ToSlash(rel)
	case "basename":
		return filepath.Base(f.Path)
	case "auto":
		if filepath.IsAbs(f.Path) && len(f.Path) >= autoPathLimit {
			return filepath.Base(f.Path)
		}
	}
	return f.Path
}
