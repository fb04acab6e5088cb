package token_test

import (
	"testing"

	"exprc/internal/source"
	"exprc/internal/token"
)

func TestKindString(t *testing.T) {
	cases := map[token.Kind]string{
		token.Error:         "Error",
		token.EOF:           "EOF",
		token.BlockComment:  "BlockComment",
		token.StringLiteral: "StringLiteral",
		token.CloseBracket:  "CloseBracket",
		token.Percent:       "Percent",
		token.Kind(250):     "Kind(?)",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestLookupPunct(t *testing.T) {
	const all = ";,.(){}[]@#~?:$=!<>-&|+*^%"
	seen := make(map[token.Kind]bool)
	for _, r := range all {
		k, ok := token.LookupPunct(r)
		if !ok {
			t.Fatalf("LookupPunct(%q) = !ok", r)
		}
		if seen[k] {
			t.Fatalf("LookupPunct(%q) = %v assigned twice", r, k)
		}
		seen[k] = true
		if !token.New(k, string(r)).IsPunct() {
			t.Errorf("%v should be punct", k)
		}
	}
	for _, r := range "/'\"a1 _\\" {
		if _, ok := token.LookupPunct(r); ok {
			t.Errorf("LookupPunct(%q) must fail", r)
		}
	}
}

func TestTrivia(t *testing.T) {
	trivia := []token.Kind{token.Whitespace, token.LineComment, token.BlockComment}
	for _, k := range trivia {
		if !token.New(k, "").IsTrivia() {
			t.Errorf("%v should be trivia", k)
		}
	}
	non := []token.Kind{token.Ident, token.Literal, token.Plus, token.Error, token.StringLiteral}
	for _, k := range non {
		if token.New(k, "").IsTrivia() {
			t.Errorf("%v must NOT be trivia", k)
		}
	}
}

func TestIsBinaryOp(t *testing.T) {
	for _, k := range []token.Kind{token.Plus, token.Minus, token.Star, token.Slash} {
		if !token.New(k, "").IsBinaryOp() {
			t.Errorf("%v should fold as operator", k)
		}
	}
	for _, k := range []token.Kind{token.Percent, token.Caret, token.Eq} {
		if token.New(k, "").IsBinaryOp() {
			t.Errorf("%v must not fold as operator", k)
		}
	}
}

func TestDocFlags(t *testing.T) {
	doc := token.Token{Kind: token.LineComment, Text: "/// x", Doc: token.DocOuter}
	if !doc.IsDoc() || !doc.IsComment() {
		t.Fatalf("outer line comment must be doc")
	}
	plain := token.Token{Kind: token.BlockComment, Text: "/* */", Terminated: true}
	if plain.IsDoc() {
		t.Fatalf("plain block comment must not be doc")
	}
	if token.DocInner.String() != "Inner" || token.DocNone.String() != "None" {
		t.Errorf("DocStyle strings mismatch")
	}
}

func TestEqualIgnoresSpan(t *testing.T) {
	a := token.Token{Kind: token.Plus, Text: "+", Span: source.Span{Start: 3, End: 4}}
	if !a.Equal(token.New(token.Plus, "+")) {
		t.Fatalf("span must not affect Equal")
	}
	if a.Equal(token.New(token.Minus, "+")) {
		t.Fatalf("kind must affect Equal")
	}
}
