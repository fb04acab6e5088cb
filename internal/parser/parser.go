package parser

import (
	"strconv"

	"exprc/internal/ast"
	"exprc/internal/diag"
	"exprc/internal/token"
)

// Parse reduces tokens into a list of top-level nodes.
func Parse(tokens []token.Token) []ast.Node {
	return ParseWithReporter(tokens, nil)
}

// ParseWithReporter is Parse with warnings for dropped operators and
// unparsable numbers. The resulting nodes are the same as Parse's.
func ParseWithReporter(tokens []token.Token, rep diag.Reporter) []ast.Node {
	p := parser{
		tokens: tokens,
		rep:    rep,
		nodes:  make([]ast.Node, 0, len(tokens)/2+1),
	}
	p.run()
	return p.nodes
}

type parser struct {
	tokens []token.Token
	pos    int
	rep    diag.Reporter
	nodes  []ast.Node
}

func (p *parser) run() {
	for {
		tok, ok := p.next()
		if !ok {
			return
		}
		switch {
		case tok.Kind == token.Literal:
			if v, err := strconv.ParseInt(tok.Text, 10, 64); err == nil {
				p.push(ast.Number{Value: v, Span: tok.Span})
			} else {
				p.warn(diag.SynBadNumber, tok, "integer literal "+strconv.Quote(tok.Text)+" is not a valid int64, dropped")
			}
		case tok.Kind == token.Ident:
			p.push(ast.Ident{Name: tok.Text, Span: tok.Span})
		case tok.IsBinaryOp():
			p.binary(tok)
		}
	}
}

// binary pops the left operand and consumes the next token in one step:
// either lookup failing still costs the other its value.
func (p *parser) binary(op token.Token) {
	left, hasLeft := p.pop()
	right, hasRight := p.next()
	switch {
	case !hasLeft && !hasRight:
		p.warn(diag.SynMissingOperand, op, "operator "+strconv.Quote(op.Text)+" has no operands")
		return
	case !hasLeft:
		p.warn(diag.SynMissingOperand, op, "operator "+strconv.Quote(op.Text)+" has no left operand, "+
			right.Kind.String()+" "+strconv.Quote(right.Text)+" discarded")
		return
	case !hasRight:
		p.warn(diag.SynMissingOperand, op, "operator "+strconv.Quote(op.Text)+" has no right operand, left operand discarded")
		return
	}

	p.push(&ast.BinaryOp{
		Left:  left,
		Op:    op,
		Right: p.operand(right),
		Span:  ast.SpanOf(left).Cover(op.Span).Cover(right.Span),
	})
}

// operand converts the raw token after an operator.
// Anything that is not a literal or identifier becomes Number(0).
func (p *parser) operand(tok token.Token) ast.Node {
	switch tok.Kind {
	case token.Literal:
		v, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			p.warn(diag.SynBadNumber, tok, "integer literal "+strconv.Quote(tok.Text)+" is not a valid int64, using 0")
			v = 0
		}
		return ast.Number{Value: v, Span: tok.Span}
	case token.Ident:
		return ast.Ident{Name: tok.Text, Span: tok.Span}
	default:
		p.warn(diag.SynMissingOperand, tok, "expected operand, found "+tok.Kind.String()+", using 0")
		return ast.Number{Value: 0, Span: tok.Span}
	}
}

func (p *parser) next() (token.Token, bool) {
	if p.pos >= len(p.tokens) {
		return token.Token{}, false
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, true
}

func (p *parser) push(n ast.Node) {
	p.nodes = append(p.nodes, n)
}

func (p *parser) pop() (ast.Node, bool) {
	if len(p.nodes) == 0 {
		return nil, false
	}
	n := p.nodes[len(p.nodes)-1]
	p.nodes = p.nodes[:len(p.nodes)-1]
	return n, true
}

func (p *parser) warn(code diag.Code, at token.Token, msg string) {
	if p.rep == nil {
		return
	}
	diag.ReportWarning(p.rep, code, at.Span, msg).Emit()
}
