package diagfmt

import (
	"fmt"
	"io"

	"exprc/internal/ir"
)

func irLabel(n ir.Node) string {
	switch n := n.(type) {
	case ir.Constant:
		return fmt.Sprintf("const %d", n.Value)
	case ir.Variable:
		return "var " + n.Name
	case *ir.BinaryExpression:
		return n.Op.Text
	default:
		return "<nil>"
	}
}

func buildIRTreeNode(n ir.Node) *treeNode {
	node := &treeNode{label: irLabel(n)}
	if bin, ok := n.(*ir.BinaryExpression); ok {
		node.children = []*treeNode{buildIRTreeNode(bin.Left), buildIRTreeNode(bin.Right)}
	}
	return node
}

// FormatIR writes lowered expressions. Pretty output is the ir dump;
// structured formats serialise ir.Record trees.
func FormatIR(w io.Writer, nodes []ir.Node, format Format, spans bool) error {
	switch format {
	case FormatPretty, "":
		return ir.DumpWithOptions(w, nodes, ir.DumpOptions{EmitSpans: spans})
	case FormatTree:
		roots := make([]*treeNode, len(nodes))
		for i, n := range nodes {
			roots[i] = buildIRTreeNode(n)
		}
		return writeTree(w, roots)
	default:
		return Encode(w, format, ir.ToRecords(nodes))
	}
}
