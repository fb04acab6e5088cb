package diagfmt

import (
	"fmt"
	"slices"
	"strings"

	"exprc/internal/diag"
	"exprc/internal/source"
)

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps short or relative paths, shortens long absolute ones.
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	Context   int8 // lines of source shown around the primary line
	PathMode  PathMode
	ShowNotes bool
	// MinSeverity hides less severe diagnostics; Summary still counts them.
	MinSeverity diag.Severity
}

// JSONOpts configures structured (json/yaml) output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	PathMode         PathMode
	Max              int // обрезка вывода, не Bag
	IncludeNotes     bool
}

// Format selects how tokens, trees and IR are written.
type Format string

const (
	FormatPretty  Format = "pretty"
	FormatTree    Format = "tree"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat validates s against the formats a command accepts.
func ParseFormat(s string, allowed ...Format) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		f = FormatPretty
	}
	if slices.Contains(allowed, f) {
		return f, nil
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return "", fmt.Errorf("unsupported format %q (expected: %s)", s, strings.Join(names, "|"))
}

func displayPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	if fs == nil || int(id) >= fs.Len() {
		return "<unknown>"
	}
	f := fs.Get(id)
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
