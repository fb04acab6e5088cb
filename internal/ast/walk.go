package ast

import (
	"strconv"
	"strings"
)

// Walk visits n and its operands in pre-order.
// Returning false from fn skips the children of the current node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	if b, ok := n.(*BinaryOp); ok {
		Walk(b.Left, fn)
		Walk(b.Right, fn)
	}
}

// Depth returns the height of the tree rooted at n; leaves have depth 1.
func Depth(n Node) int {
	b, ok := n.(*BinaryOp)
	if !ok {
		if n == nil {
			return 0
		}
		return 1
	}
	return 1 + max(Depth(b.Left), Depth(b.Right))
}

// Shape renders n as an s-expression: "(- (* x 5) 3)".
// Spans are not part of the shape.
func Shape(n Node) string {
	var sb strings.Builder
	writeShape(&sb, n)
	return sb.String()
}

// Shapes renders a node list, one shape per element, separated by spaces.
func Shapes(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = Shape(n)
	}
	return strings.Join(parts, " ")
}

func writeShape(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case Number:
		sb.WriteString(strconv.FormatInt(n.Value, 10))
	case Ident:
		sb.WriteString(n.Name)
	case *BinaryOp:
		sb.WriteByte('(')
		sb.WriteString(n.Op.Text)
		sb.WriteByte(' ')
		writeShape(sb, n.Left)
		sb.WriteByte(' ')
		writeShape(sb, n.Right)
		sb.WriteByte(')')
	default:
		sb.WriteString("<nil>")
	}
}
