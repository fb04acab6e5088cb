package ast

import (
	"exprc/internal/source"
	"exprc/internal/token"
)

// Kind distinguishes the three node shapes.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNumber
	KindIdent
	KindBinaryOp
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindIdent:
		return "Ident"
	case KindBinaryOp:
		return "BinaryOp"
	default:
		return "Invalid"
	}
}

// Node is implemented by Number, Ident and *BinaryOp only.
type Node interface {
	Kind() Kind
	aNode() // marker method to restrict implementations to this package
}

// Number is an integer literal.
type Number struct {
	Value int64
	Span  source.Span
}

// Ident is a bare identifier.
type Ident struct {
	Name string
	Span source.Span
}

// BinaryOp owns both operands. Op keeps the whole operator token.
type BinaryOp struct {
	Left  Node
	Op    token.Token
	Right Node
	Span  source.Span
}

func (Number) Kind() Kind    { return KindNumber }
func (Ident) Kind() Kind     { return KindIdent }
func (*BinaryOp) Kind() Kind { return KindBinaryOp }

func (Number) aNode()    {}
func (Ident) aNode()     {}
func (*BinaryOp) aNode() {}

// SpanOf returns the source range a node was built from.
func SpanOf(n Node) source.Span {
	switch n := n.(type) {
	case Number:
		return n.Span
	case Ident:
		return n.Span
	case *BinaryOp:
		return n.Span
	default:
		return source.Span{}
	}
}
