package ir

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"exprc/internal/source"
	"exprc/internal/token"
)

// Record is the serialisable form of a Node, used for json/yaml/msgpack
// output and for the on-disk cache.
type Record struct {
	Kind   string      `json:"kind" yaml:"kind" msgpack:"kind"`
	Value  *int64      `json:"value,omitempty" yaml:"value,omitempty" msgpack:"value,omitempty"`
	Name   string      `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	Op     string      `json:"op,omitempty" yaml:"op,omitempty" msgpack:"op,omitempty"`
	OpSpan source.Span `json:"-" yaml:"-" msgpack:"op_span"`
	Left   *Record     `json:"left,omitempty" yaml:"left,omitempty" msgpack:"left,omitempty"`
	Right  *Record     `json:"right,omitempty" yaml:"right,omitempty" msgpack:"right,omitempty"`
	Span   source.Span `json:"span" yaml:"span" msgpack:"span"`
}

var errNilNode = errors.New("nil IR node")

// ToRecord converts n into its serialisable form.
func ToRecord(n Node) *Record {
	switch n := n.(type) {
	case Constant:
		v := n.Value
		return &Record{Kind: KindConstant.String(), Value: &v, Span: n.Span}
	case Variable:
		return &Record{Kind: KindVariable.String(), Name: n.Name, Span: n.Span}
	case *BinaryExpression:
		return &Record{
			Kind:   KindBinaryExpression.String(),
			Op:     n.Op.Text,
			OpSpan: n.Op.Span,
			Left:   ToRecord(n.Left),
			Right:  ToRecord(n.Right),
			Span:   n.Span,
		}
	default:
		return nil
	}
}

// ToRecords converts a node list.
func ToRecords(nodes []Node) []*Record {
	out := make([]*Record, len(nodes))
	for i, n := range nodes {
		out[i] = ToRecord(n)
	}
	return out
}

// FromRecord rebuilds a Node. It fails on unknown kinds, missing fields and
// operators other than + - * /.
func FromRecord(r *Record) (Node, error) {
	if r == nil {
		return nil, errNilNode
	}
	switch r.Kind {
	case KindConstant.String():
		if r.Value == nil {
			return nil, fmt.Errorf("constant without value at %s", r.Span)
		}
		return Constant{Value: *r.Value, Span: r.Span}, nil
	case KindVariable.String():
		return Variable{Name: r.Name, Span: r.Span}, nil
	case KindBinaryExpression.String():
		op, err := opToken(r.Op, r.OpSpan)
		if err != nil {
			return nil, err
		}
		left, err := FromRecord(r.Left)
		if err != nil {
			return nil, fmt.Errorf("left operand of %q: %w", r.Op, err)
		}
		right, err := FromRecord(r.Right)
		if err != nil {
			return nil, fmt.Errorf("right operand of %q: %w", r.Op, err)
		}
		return &BinaryExpression{Left: left, Op: op, Right: right, Span: r.Span}, nil
	default:
		return nil, fmt.Errorf("unknown IR node kind %q", r.Kind)
	}
}

// FromRecords rebuilds a node list.
func FromRecords(records []*Record) ([]Node, error) {
	out := make([]Node, len(records))
	for i, r := range records {
		n, err := FromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("expr #%d: %w", i, err)
		}
		out[i] = n
	}
	return out, nil
}

func opToken(text string, sp source.Span) (token.Token, error) {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 || size != len(text) {
		return token.Token{}, fmt.Errorf("invalid operator %q", text)
	}
	k, ok := token.LookupPunct(r)
	if r == '/' {
		k, ok = token.Slash, true
	}
	tok := token.Token{Kind: k, Text: text, Span: sp}
	if !ok || !tok.IsBinaryOp() {
		return token.Token{}, fmt.Errorf("invalid operator %q", text)
	}
	return tok, nil
}
