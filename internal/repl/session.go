package repl

import (
	"context"
	"fmt"
	"io"
	"strings"

	"exprc/internal/diagfmt"
	"exprc/internal/driver"
	"exprc/internal/pipeline"
)

// View selects what is printed for an entry.
type View uint8

const (
	ViewAll View = iota
	ViewTokens
	ViewAST
	ViewIR
)

func (v View) String() string {
	switch v {
	case ViewTokens:
		return "tokens"
	case ViewAST:
		return "ast"
	case ViewIR:
		return "ir"
	default:
		return "all"
	}
}

// Session evaluates entries and keeps the current view between them.
type Session struct {
	out   io.Writer
	opts  driver.Options
	view  View
	color bool
	n     int
}

// NewSession creates a session writing to out.
func NewSession(out io.Writer, opts driver.Options, color bool) *Session {
	return &Session{out: out, opts: opts, color: color}
}

// View returns the current view.
func (s *Session) View() View { return s.view }

// Eval handles one entry: a ":command" or source text.
// It reports quit=true for ":quit".
func (s *Session) Eval(ctx context.Context, entry string) (quit bool) {
	trimmed := strings.TrimSpace(entry)
	switch {
	case trimmed == "":
		return false
	case strings.HasPrefix(trimmed, ":"):
		return s.command(strings.ToLower(trimmed))
	}

	s.n++
	res := driver.RunSource(ctx, fmt.Sprintf("<repl:%d>", s.n), entry, pipeline.StageLower, s.opts)

	if s.view == ViewAll || s.view == ViewTokens {
		s.section("tokens")
		_ = diagfmt.FormatTokensPretty(s.out, res.Tokens, res.FileSet)
	}
	if s.view == ViewAll || s.view == ViewAST {
		s.section("ast")
		_ = diagfmt.FormatASTPretty(s.out, res.Nodes, res.FileSet)
	}
	if s.view == ViewAll || s.view == ViewIR {
		s.section("ir")
		_ = diagfmt.FormatIR(s.out, res.IR, diagfmt.FormatPretty, false)
	}

	if res.Bag.Len() > 0 {
		res.Bag.Sort()
		diagfmt.Pretty(s.out, res.Bag, res.FileSet, diagfmt.PrettyOpts{Color: s.color, ShowNotes: true})
	}
	return false
}

func (s *Session) section(name string) {
	if s.view == ViewAll {
		fmt.Fprintf(s.out, "-- %s\n", name)
	}
}

func (s *Session) command(cmd string) bool {
	switch cmd {
	case ":quit", ":q":
		return true
	case ":tokens":
		s.view = ViewTokens
	case ":ast":
		s.view = ViewAST
	case ":ir":
		s.view = ViewIR
	case ":all":
		s.view = ViewAll
	case ":help":
		fmt.Fprintln(s.out, "commands: :tokens :ast :ir :all :quit")
		return false
	default:
		fmt.Fprintf(s.out, "unknown command %s. Type :help for a list.\n", cmd)
		return false
	}
	fmt.Fprintf(s.out, "view: %s\n", s.view)
	return false
}
