package ir

import (
	"exprc/internal/ast"
)

// ConvertToIR lowers every node, preserving order and count.
func ConvertToIR(nodes []ast.Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Lower(n))
	}
	return out
}

// Lower converts a single tree. A nil node lowers to nil.
func Lower(n ast.Node) Node {
	switch n := n.(type) {
	case ast.Number:
		return Constant{Value: n.Value, Span: n.Span}
	case ast.Ident:
		return Variable{Name: n.Name, Span: n.Span}
	case *ast.BinaryOp:
		return &BinaryExpression{
			Left:  Lower(n.Left),
			Op:    n.Op,
			Right: Lower(n.Right),
			Span:  n.Span,
		}
	default:
		return nil
	}
}
