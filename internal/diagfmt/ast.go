package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"exprc/internal/ast"
	"exprc/internal/source"
)

// ASTNodeOutput is the structured form of one syntax tree node.
type ASTNodeOutput struct {
	Kind  string         `json:"kind" yaml:"kind" msgpack:"kind"`
	Value *int64         `json:"value,omitempty" yaml:"value,omitempty" msgpack:"value,omitempty"`
	Name  string         `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	Op    string         `json:"op,omitempty" yaml:"op,omitempty" msgpack:"op,omitempty"`
	Left  *ASTNodeOutput `json:"left,omitempty" yaml:"left,omitempty" msgpack:"left,omitempty"`
	Right *ASTNodeOutput `json:"right,omitempty" yaml:"right,omitempty" msgpack:"right,omitempty"`
	Span  source.Span    `json:"span" yaml:"span" msgpack:"span"`
}

// BuildASTOutput converts a syntax tree to its structured form.
func BuildASTOutput(n ast.Node) *ASTNodeOutput {
	switch n := n.(type) {
	case ast.Number:
		v := n.Value
		return &ASTNodeOutput{Kind: n.Kind().String(), Value: &v, Span: n.Span}
	case ast.Ident:
		return &ASTNodeOutput{Kind: n.Kind().String(), Name: n.Name, Span: n.Span}
	case *ast.BinaryOp:
		return &ASTNodeOutput{
			Kind:  n.Kind().String(),
			Op:    n.Op.Text,
			Left:  BuildASTOutput(n.Left),
			Right: BuildASTOutput(n.Right),
			Span:  n.Span,
		}
	default:
		return nil
	}
}

func astLabel(n ast.Node) string {
	switch n := n.(type) {
	case ast.Number:
		return fmt.Sprintf("Number %d", n.Value)
	case ast.Ident:
		return "Ident " + n.Name
	case *ast.BinaryOp:
		return "BinaryOp " + n.Op.Text
	default:
		return "<nil>"
	}
}

func buildASTTreeNode(n ast.Node) *treeNode {
	node := &treeNode{label: astLabel(n)}
	if bin, ok := n.(*ast.BinaryOp); ok {
		node.children = []*treeNode{buildASTTreeNode(bin.Left), buildASTTreeNode(bin.Right)}
	}
	return node
}

// FormatASTPretty prints one node per line, children indented under parents.
func FormatASTPretty(w io.Writer, nodes []ast.Node, fs *source.FileSet) error {
	var sb strings.Builder
	for i, n := range nodes {
		fmt.Fprintf(&sb, "expr #%d\n", i)
		writeASTPretty(&sb, n, fs, 1)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeASTPretty(sb *strings.Builder, n ast.Node, fs *source.FileSet, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	if n == nil {
		sb.WriteString("<nil>\n")
		return
	}
	fmt.Fprintf(sb, "%s (%s)\n", astLabel(n), formatSpan(ast.SpanOf(n), fs))
	if bin, ok := n.(*ast.BinaryOp); ok {
		writeASTPretty(sb, bin.Left, fs, depth+1)
		writeASTPretty(sb, bin.Right, fs, depth+1)
	}
}

// FormatAST writes the parsed expressions in the requested format.
func FormatAST(w io.Writer, nodes []ast.Node, fs *source.FileSet, format Format) error {
	switch format {
	case FormatPretty, "":
		return FormatASTPretty(w, nodes, fs)
	case FormatTree:
		roots := make([]*treeNode, len(nodes))
		for i, n := range nodes {
			roots[i] = buildASTTreeNode(n)
		}
		return writeTree(w, roots)
	default:
		return Encode(w, format, BuildASTOutputs(nodes))
	}
}

// BuildASTOutputs converts every expression of a file.
func BuildASTOutputs(nodes []ast.Node) []*ASTNodeOutput {
	out := make([]*ASTNodeOutput, len(nodes))
	for i, n := range nodes {
		out[i] = BuildASTOutput(n)
	}
	return out
}
