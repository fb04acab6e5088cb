package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"exprc/internal/diag"
	"exprc/internal/source"
)

type palette struct {
	err, warn, info, code, path, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		path:   color.New(color.FgWhite, color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.path, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		if !d.Severity.AtLeast(opts.MinSeverity) {
			continue
		}
		prettyOne(w, d, fs, opts, pal)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	path := displayPath(fs, d.Primary.File, opts.PathMode)
	known := fs != nil && int(d.Primary.File) < fs.Len()

	loc := path
	if known && d.Code != diag.IOLoadFileError {
		start, _ := fs.Resolve(d.Primary)
		loc = fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col)
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		pal.path.Sprint(loc),
		pal.severity(d.Severity).Sprint(d.Severity.String()),
		pal.code.Sprint(d.Code.ID()),
		d.Message,
	)

	if known && d.Code != diag.IOLoadFileError {
		writeSnippet(w, fs, d.Primary, int(opts.Context), pal)
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  %s %s\n", pal.note.Sprint("note:"), n.Msg)
		}
	}
}

// writeSnippet prints the primary line with context above it and a caret
// line under the span. Columns are measured in display cells.
func writeSnippet(w io.Writer, fs *source.FileSet, sp source.Span, context int, pal palette) {
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)

	first := uint32(1)
	if context > 0 && start.Line > uint32(context) {
		first = start.Line - uint32(context)
	} else if context <= 0 {
		first = start.Line
	}
	gutter := len(fmt.Sprint(start.Line))
	for ln := first; ln <= start.Line; ln++ {
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", gutter, ln), expandTabs(f.GetLine(ln)))
	}

	raw := f.GetLine(start.Line)
	from := min(int(start.Col)-1, len(raw))
	to := len(raw)
	if end.Line == start.Line {
		to = min(int(end.Col)-1, len(raw))
	}
	pad := runewidth.StringWidth(expandTabs(raw[:from]))
	width := max(runewidth.StringWidth(expandTabs(raw[from:max(from, to)])), 1)

	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "%s %s%s\n", pal.gutter.Sprintf("%*s |", gutter, ""), strings.Repeat(" ", pad), pal.caret.Sprint(marker))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

// Summary prints "N error(s), M warning(s)" or nothing for an empty bag.
func Summary(w io.Writer, errors, warnings int, useColor bool) {
	if errors == 0 && warnings == 0 {
		return
	}
	pal := newPalette(useColor)
	var parts []string
	if errors > 0 {
		parts = append(parts, pal.err.Sprint(plural(errors, "error")))
	}
	if warnings > 0 {
		parts = append(parts, pal.warn.Sprint(plural(warnings, "warning")))
	}
	fmt.Fprintln(w, strings.Join(parts, ", "))
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
