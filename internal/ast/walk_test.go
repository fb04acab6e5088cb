package ast_test

import (
	"testing"

	"exprc/internal/ast"
	"exprc/internal/source"
	"exprc/internal/token"
)

func sample() ast.Node {
	// (- (* x 5) 3)
	return &ast.BinaryOp{
		Left: &ast.BinaryOp{
			Left:  ast.Ident{Name: "x"},
			Op:    token.New(token.Star, "*"),
			Right: ast.Number{Value: 5},
		},
		Op:    token.New(token.Minus, "-"),
		Right: ast.Number{Value: 3},
		Span:  source.Span{Start: 0, End: 5},
	}
}

func TestKinds(t *testing.T) {
	tests := []struct {
		node ast.Node
		want string
	}{
		{ast.Number{Value: 1}, "Number"},
		{ast.Ident{Name: "a"}, "Ident"},
		{sample(), "BinaryOp"},
	}
	for _, tt := range tests {
		if got := tt.node.Kind().String(); got != tt.want {
			t.Errorf("Kind() = %q, want %q", got, tt.want)
		}
	}
	if ast.Kind(42).String() != "Invalid" {
		t.Errorf("unknown kind must print as Invalid")
	}
}

func TestShape(t *testing.T) {
	if got := ast.Shape(sample()); got != "(- (* x 5) 3)" {
		t.Fatalf("Shape = %q", got)
	}
	if got := ast.Shapes([]ast.Node{ast.Number{Value: -7}, ast.Ident{Name: "y"}}); got != "-7 y" {
		t.Fatalf("Shapes = %q", got)
	}
	if got := ast.Shape(nil); got != "<nil>" {
		t.Fatalf("Shape(nil) = %q", got)
	}
}

func TestWalkPreOrder(t *testing.T) {
	var kinds []ast.Kind
	ast.Walk(sample(), func(n ast.Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})
	want := []ast.Kind{ast.KindBinaryOp, ast.KindBinaryOp, ast.KindIdent, ast.KindNumber, ast.KindNumber}
	if len(kinds) != len(want) {
		t.Fatalf("visited %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("visited %v, want %v", kinds, want)
		}
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	count := 0
	ast.Walk(sample(), func(n ast.Node) bool {
		count++
		return n.Kind() != ast.KindBinaryOp
	})
	if count != 1 {
		t.Fatalf("expected only the root to be visited, got %d", count)
	}
}

func TestDepthAndSpan(t *testing.T) {
	if d := ast.Depth(sample()); d != 3 {
		t.Errorf("Depth = %d, want 3", d)
	}
	if d := ast.Depth(nil); d != 0 {
		t.Errorf("Depth(nil) = %d", d)
	}
	if sp := ast.SpanOf(sample()); sp.End != 5 {
		t.Errorf("SpanOf = %v", sp)
	}
}
