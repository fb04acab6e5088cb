package ir

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
	if b, ok := n.(*BinaryExpression); ok {
		Walk(b.Left, fn)
		Walk(b.Right, fn)
	}
}

// Shape renders n as an s-expression in the same notation as ast.Shape,
// so a tree and its lowering can be compared directly.
func Shape(n Node) string {
	var sb strings.Builder
	writeShape(&sb, n)
	return sb.String()
}

// Shapes renders a node list separated by spaces.
func Shapes(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = Shape(n)
	}
	return strings.Join(parts, " ")
}

func writeShape(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case Constant:
		sb.WriteString(strconv.FormatInt(n.Value, 10))
	case Variable:
		sb.WriteString(n.Name)
	case *BinaryExpression:
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
