package parser_test

import (
	"testing"

	"exprc/internal/ast"
	"exprc/internal/diag"
	"exprc/internal/lexer"
	"exprc/internal/parser"
	"exprc/internal/token"
)

func parseSource(src string) []ast.Node {
	return parser.Parse(parser.Significant(lexer.Tokenize(src)))
}

func expectShape(t *testing.T, nodes []ast.Node, want string) {
	t.Helper()
	if got := ast.Shapes(nodes); got != want {
		t.Fatalf("shape = %q, want %q", got, want)
	}
}

func TestParseNumber(t *testing.T) {
	nodes := parser.Parse([]token.Token{
		token.New(token.Literal, "123"),
		token.New(token.EOF, ""),
	})
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	num, ok := nodes[0].(ast.Number)
	if !ok || num.Value != 123 {
		t.Fatalf("got %#v", nodes[0])
	}
}

func TestParseIdent(t *testing.T) {
	nodes := parser.Parse([]token.Token{token.New(token.Ident, "x"), token.New(token.EOF, "")})
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	if id, ok := nodes[0].(ast.Ident); !ok || id.Name != "x" {
		t.Fatalf("got %#v", nodes[0])
	}
}

func TestParseBinaryOp(t *testing.T) {
	nodes := parser.Parse([]token.Token{
		token.New(token.Literal, "2"),
		token.New(token.Plus, "+"),
		token.New(token.Literal, "3"),
		token.New(token.EOF, ""),
	})
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	bin, ok := nodes[0].(*ast.BinaryOp)
	if !ok {
		t.Fatalf("expected *ast.BinaryOp, got %T", nodes[0])
	}
	if !bin.Op.Equal(token.New(token.Plus, "+")) {
		t.Errorf("op = %+v", bin.Op)
	}
	if l, ok := bin.Left.(ast.Number); !ok || l.Value != 2 {
		t.Errorf("left = %#v", bin.Left)
	}
	if r, ok := bin.Right.(ast.Number); !ok || r.Value != 3 {
		t.Errorf("right = %#v", bin.Right)
	}
}

func TestLeftToRightFold(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"2 + 3", "(+ 2 3)"},
		{"x * 5 - 3", "(- (* x 5) 3)"},
		{"1 + 2 * 3", "(* (+ 1 2) 3)"},
		{"a / b / c", "(/ (/ a b) c)"},
		{"a b", "a b"},
		{"1 2 + 3", "1 (+ 2 3)"},
		{"// comment\nx /* c */ + 1", "(+ x 1)"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			expectShape(t, parseSource(tt.src), tt.want)
		})
	}
}

func TestTriviaIsAnOperandWhenNotFiltered(t *testing.T) {
	// The space after each operator is taken as the right operand.
	expectShape(t, parser.Parse(lexer.Tokenize("x * 5 - 3")), "(* x 0) (- 5 0) 3")
	expectShape(t, parser.Parse(lexer.Tokenize("x*5-3")), "(- (* x 5) 3)")
}

func TestMissingOperands(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"+", ""},
		{"+ 3", ""},      // the 3 is consumed even though there is no left operand
		{"2 +", ""},      // the 2 is popped and lost
		{"2 + 3 -", ""},  // the whole fold is popped and lost
		{"1 + + 2", "(+ 1 0) 2"},
		{"2 + (", "(+ 2 0)"},
		{"- - 1", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			expectShape(t, parseSource(tt.src), tt.want)
		})
	}
}

func TestIgnoredTokens(t *testing.T) {
	expectShape(t, parseSource("; , ( ) { } 'c' \"s\" = ! < > ^ %"), "")
	expectShape(t, parseSource("(x)"), "x")
}

func TestBadNumbers(t *testing.T) {
	expectShape(t, parseSource("99999999999999999999"), "")
	expectShape(t, parseSource("1 + 99999999999999999999"), "(+ 1 0)")
	expectShape(t, parseSource("9223372036854775807"), "9223372036854775807")
}

func TestParseWithReporter(t *testing.T) {
	tests := []struct {
		src   string
		codes []diag.Code
	}{
		{"2 + 3", nil},
		{"+ 3", []diag.Code{diag.SynMissingOperand}},
		{"2 +", []diag.Code{diag.SynMissingOperand}},
		{"+", []diag.Code{diag.SynMissingOperand}},
		{"2 + ;", []diag.Code{diag.SynMissingOperand}},
		{"99999999999999999999", []diag.Code{diag.SynBadNumber}},
		{"1 * 99999999999999999999", []diag.Code{diag.SynBadNumber}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			bag := diag.NewBag(10)
			toks := parser.Significant(lexer.Tokenize(tt.src))
			nodes := parser.ParseWithReporter(toks, diag.BagReporter{Bag: bag})
			if ast.Shapes(nodes) != ast.Shapes(parser.Parse(toks)) {
				t.Fatalf("reporter changed the result")
			}
			items := bag.Items()
			if len(items) != len(tt.codes) {
				t.Fatalf("got %d diagnostics, want %d", len(items), len(tt.codes))
			}
			for i, d := range items {
				if d.Code != tt.codes[i] || d.Severity != diag.SevWarning {
					t.Errorf("diagnostic %d: %s/%v", i, d.Code.ID(), d.Severity)
				}
			}
		})
	}
}

func TestBinarySpanCoversOperands(t *testing.T) {
	nodes := parseSource("ab + 12")
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	sp := ast.SpanOf(nodes[0])
	if sp.Start != 0 || sp.End != 7 {
		t.Fatalf("span = %v", sp)
	}
}

func TestSignificant(t *testing.T) {
	toks := parser.Significant(lexer.Tokenize(" a /* b */ // c\n+\t1 "))
	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{token.Ident, token.Plus, token.Literal}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v", kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds = %v", kinds)
		}
	}
}

func TestEmpty(t *testing.T) {
	if nodes := parser.Parse(nil); len(nodes) != 0 {
		t.Fatalf("expected no nodes")
	}
}
