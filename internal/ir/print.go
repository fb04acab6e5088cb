package ir

import (
	"fmt"
	"io"
	"strings"
)

// DumpOptions configures IR dumping.
type DumpOptions struct {
	EmitSpans bool
}

// Printer is used to dump IR to text format.
type Printer struct {
	w      io.Writer
	indent int
	opts   DumpOptions
	err    error
}

// NewPrinter creates a new IR printer.
func NewPrinter(w io.Writer, opts DumpOptions) *Printer {
	return &Printer{w: w, opts: opts}
}

// Dump writes the lowered expressions to w.
func Dump(w io.Writer, nodes []Node) error {
	return DumpWithOptions(w, nodes, DumpOptions{})
}

// DumpWithOptions writes the lowered expressions to w with options.
func DumpWithOptions(w io.Writer, nodes []Node, opts DumpOptions) error {
	p := NewPrinter(w, opts)
	for i, n := range nodes {
		p.printf("expr #%d\n", i)
		p.indent++
		p.PrintNode(n)
		p.indent--
	}
	return p.err
}

// PrintNode prints one tree, one node per line.
func (p *Printer) PrintNode(n Node) {
	p.writeIndent()
	switch n := n.(type) {
	case Constant:
		p.printf("const %d", n.Value)
		p.span(SpanOf(n))
	case Variable:
		p.printf("var %s", n.Name)
		p.span(SpanOf(n))
	case *BinaryExpression:
		p.printf("binary %s", n.Op.Text)
		p.span(n.Span)
		p.indent++
		p.PrintNode(n.Left)
		p.PrintNode(n.Right)
		p.indent--
	default:
		p.printf("<nil>\n")
	}
}

func (p *Printer) span(sp fmt.Stringer) {
	if p.opts.EmitSpans {
		p.printf(" @%s", sp)
	}
	p.printf("\n")
}

func (p *Printer) writeIndent() {
	p.printf("%s", strings.Repeat("  ", p.indent))
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
