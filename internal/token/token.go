package token

import (
	"exprc/internal/source"
)

// DocStyle classifies a comment as documentation.
// DocNone is the zero value: a plain comment.
type DocStyle uint8

const (
	DocNone DocStyle = iota
	// DocOuter documents the following item: "///" and "/**".
	DocOuter
	// DocInner documents the enclosing item: "//!" and "/*!".
	DocInner
)

func (d DocStyle) String() string {
	switch d {
	case DocOuter:
		return "Outer"
	case DocInner:
		return "Inner"
	default:
		return "None"
	}
}

// Token is a classified, textually exact span of source input.
type Token struct {
	Kind       Kind
	Text       string
	Doc        DocStyle // LineComment, BlockComment
	Terminated bool     // BlockComment only
	Span       source.Span
}

// New builds a token with no span, mostly for tests and hand-built streams.
func New(kind Kind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// IsTrivia reports whether the token carries no meaning for the parser.
func (t Token) IsTrivia() bool {
	switch t.Kind {
	case Whitespace, LineComment, BlockComment:
		return true
	default:
		return false
	}
}

// IsComment reports whether the token is a line or block comment.
func (t Token) IsComment() bool {
	return t.Kind == LineComment || t.Kind == BlockComment
}

// IsDoc reports whether the token is a doc comment of either style.
func (t Token) IsDoc() bool {
	return t.IsComment() && t.Doc != DocNone
}

// IsPunct reports whether the token is one of the one-character punctuation kinds.
func (t Token) IsPunct() bool {
	return t.Kind >= Semi && t.Kind <= Percent
}

// IsBinaryOp reports whether the parser folds this token as an operator.
func (t Token) IsBinaryOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash:
		return true
	default:
		return false
	}
}

// Equal compares kind, text and comment flags. Spans are ignored so that
// hand-built tokens compare equal to lexed ones.
func (t Token) Equal(o Token) bool {
	return t.Kind == o.Kind && t.Text == o.Text && t.Doc == o.Doc && t.Terminated == o.Terminated
}
