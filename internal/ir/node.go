package ir

import (
	"exprc/internal/source"
	"exprc/internal/token"
)

// Kind distinguishes IR node shapes.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindConstant
	KindVariable
	KindBinaryExpression
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "Constant"
	case KindVariable:
		return "Variable"
	case KindBinaryExpression:
		return "BinaryExpression"
	default:
		return "Invalid"
	}
}

// Node is implemented by Constant, Variable and *BinaryExpression.
type Node interface {
	Kind() Kind
	irNode()
}

type Constant struct {
	Value int64
	Span  source.Span
}

type Variable struct {
	Name string
	Span source.Span
}

// BinaryExpression owns both operands.
type BinaryExpression struct {
	Left  Node
	Op    token.Token
	Right Node
	Span  source.Span
}

func (Constant) Kind() Kind          { return KindConstant }
func (Variable) Kind() Kind          { return KindVariable }
func (*BinaryExpression) Kind() Kind { return KindBinaryExpression }

func (Constant) irNode()          {}
func (Variable) irNode()          {}
func (*BinaryExpression) irNode() {}

// SpanOf returns the source range of n.
func SpanOf(n Node) source.Span {
	switch n := n.(type) {
	case Constant:
		return n.Span
	case Variable:
		return n.Span
	case *BinaryExpression:
		return n.Span
	default:
		return source.Span{}
	}
}
