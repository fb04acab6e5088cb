package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"exprc/internal/diag"
	"exprc/internal/lexer"
	"exprc/internal/source"
	"exprc/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) codes() []diag.Code {
	out := make([]diag.Code, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, d.Code)
	}
	return out
}

func tokenizeWithReporter(input string, opts lexer.Options) ([]token.Token, *testReporter) {
	rep := &testReporter{}
	opts.Reporter = rep
	return lexer.New(input, opts).Tokenize(), rep
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

type kt struct {
	kind token.Kind
	text string
}

// expectTokens проверяет последовательность (kind, text)
func expectTokens(t *testing.T, input string, expected []kt) []token.Token {
	t.Helper()
	tokens := lexer.Tokenize(input)
	if len(tokens) != len(expected) {
		t.Fatalf("input %q: expected %d tokens, got %d: %s", input, len(expected), len(tokens), tokensToString(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i].kind || tok.Text != expected[i].text {
			t.Errorf("input %q token %d: got %v(%q), want %v(%q)",
				input, i, tok.Kind, tok.Text, expected[i].kind, expected[i].text)
		}
	}
	return tokens
}

func expectSingleToken(t *testing.T, input string, kind token.Kind, text string) token.Token {
	t.Helper()
	return expectTokens(t, input, []kt{{kind, text}})[0]
}

func TestEmptyInput(t *testing.T) {
	if tokens := lexer.Tokenize(""); len(tokens) != 0 {
		t.Fatalf("expected no tokens, got %s", tokensToString(tokens))
	}
}

func TestWhitespaceOnlyIsOneToken(t *testing.T) {
	inputs := []string{" ", "\t", "\n", "\r\n", "  \t\t\n\r  ", "\n\n\n", "   "}
	for _, in := range inputs {
		expectSingleToken(t, in, token.Whitespace, in)
	}
}

func TestWhitespaceRunMustStartWithASCII(t *testing.T) {
	// U+00A0 continues a run but does not open one.
	expectSingleToken(t, " \u00a0", token.Whitespace, " \u00a0")
	tokens := lexer.Tokenize("\u00a0")
	if len(tokens) != 1 || tokens[0].Kind != token.Error {
		t.Fatalf("got %s", tokensToString(tokens))
	}
}

func TestDigitRuns(t *testing.T) {
	for _, in := range []string{"0", "7", "42", "007", "12345678901234567890123"} {
		expectSingleToken(t, in, token.Literal, in)
	}
	expectTokens(t, "12.5", []kt{{token.Literal, "12"}, {token.Dot, "."}, {token.Literal, "5"}})
	expectTokens(t, "0x1f", []kt{{token.Literal, "0"}, {token.Ident, "x"}, {token.Literal, "1"}, {token.Ident, "f"}})
}

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		input    string
		expected []kt
	}{
		{"foo", []kt{{token.Ident, "foo"}}},
		{"camelCase", []kt{{token.Ident, "camelCase"}}},
		{"αβγ", []kt{{token.Error, "Err"}, {token.Error, "Err"}, {token.Error, "Err"}}},
		{"é", []kt{{token.Error, "Err"}}},
		{"aⅫ", []kt{{token.Ident, "aⅫ"}}},
		{"xαβ", []kt{{token.Ident, "xαβ"}}},
		{"abc123", []kt{{token.Ident, "abc"}, {token.Literal, "123"}}},
		{"a_b", []kt{{token.Ident, "a"}, {token.Error, "Err"}, {token.Ident, "b"}}},
		{"x y", []kt{{token.Ident, "x"}, {token.Whitespace, " "}, {token.Ident, "y"}}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, tt.expected)
		})
	}
}

func TestPunctuation(t *testing.T) {
	tests := map[string]token.Kind{
		";": token.Semi, ",": token.Comma, ".": token.Dot,
		"(": token.OpenParen, ")": token.CloseParen,
		"{": token.OpenBrace, "}": token.CloseBrace,
		"[": token.OpenBracket, "]": token.CloseBracket,
		"@": token.At, "#": token.Pound, "~": token.Tilde, "?": token.Question,
		":": token.Colon, "$": token.Dollar, "=": token.Eq, "!": token.Bang,
		"<": token.Lt, ">": token.Gt, "-": token.Minus, "&": token.And,
		"|": token.Or, "+": token.Plus, "*": token.Star, "/": token.Slash,
		"^": token.Caret, "%": token.Percent,
	}
	for in, kind := range tests {
		expectSingleToken(t, in, kind, in)
	}
}

func TestOperatorsHaveNoLookahead(t *testing.T) {
	expectTokens(t, "==", []kt{{token.Eq, "="}, {token.Eq, "="}})
	expectTokens(t, "->", []kt{{token.Minus, "-"}, {token.Gt, ">"}})
	expectTokens(t, "**", []kt{{token.Star, "*"}, {token.Star, "*"}})
	expectTokens(t, "a/b", []kt{{token.Ident, "a"}, {token.Slash, "/"}, {token.Ident, "b"}})
}

func TestLineComments(t *testing.T) {
	tests := []struct {
		input string
		text  string
		doc   token.DocStyle
	}{
		{"// plain", "// plain", token.DocNone},
		{"//", "//", token.DocNone},
		{"/// outer", "/// outer", token.DocOuter},
		{"//! inner", "//! inner", token.DocInner},
		{"////", "////", token.DocOuter},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := expectSingleToken(t, tt.input, token.LineComment, tt.text)
			if tok.Doc != tt.doc {
				t.Errorf("doc style = %v, want %v", tok.Doc, tt.doc)
			}
		})
	}
}

func TestLineCommentStopsBeforeNewline(t *testing.T) {
	expectTokens(t, "// a\nb", []kt{
		{token.LineComment, "// a"},
		{token.Whitespace, "\n"},
		{token.Ident, "b"},
	})
}

func TestBlockComments(t *testing.T) {
	tests := []struct {
		input      string
		doc        token.DocStyle
		terminated bool
	}{
		{"/* plain */", token.DocNone, true},
		{"/** outer */", token.DocOuter, true},
		{"/*! inner */", token.DocInner, true},
		{"/**/", token.DocOuter, true},
		{"/* /* */ */", token.DocNone, true},
		{"/* a /* b /* c */ d */ e */", token.DocNone, true},
		{"/* open", token.DocNone, false},
		{"/* /* */", token.DocNone, false},
		{"/*! never closed /*", token.DocInner, false},
		{"/*", token.DocNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := expectSingleToken(t, tt.input, token.BlockComment, tt.input)
			if tok.Doc != tt.doc {
				t.Errorf("doc style = %v, want %v", tok.Doc, tt.doc)
			}
			if tok.Terminated != tt.terminated {
				t.Errorf("terminated = %v, want %v", tok.Terminated, tt.terminated)
			}
		})
	}
}

func TestBlockCommentFollowedByCode(t *testing.T) {
	expectTokens(t, "/* x */y", []kt{{token.BlockComment, "/* x */"}, {token.Ident, "y"}})
}

func TestCharLiterals(t *testing.T) {
	expectSingleToken(t, "'a'", token.CharLiteral, "'a'")
	expectSingleToken(t, "''", token.CharLiteral, "''")
	expectSingleToken(t, "'abc", token.CharLiteral, "'abc")
	// Без escape: "\'" закрывает литерал.
	expectTokens(t, `'\''`, []kt{{token.CharLiteral, `'\'`}, {token.CharLiteral, "'"}})
}

func TestStringLiterals(t *testing.T) {
	expectSingleToken(t, `"hello world"`, token.StringLiteral, `"hello world"`)
	expectSingleToken(t, `""`, token.StringLiteral, `""`)
	expectSingleToken(t, "\"multi\nline\"", token.StringLiteral, "\"multi\nline\"")
	expectSingleToken(t, "\"abc", token.Error, "\"abc")
	expectTokens(t, `"a\"b"`, []kt{
		{token.StringLiteral, `"a\"`},
		{token.Ident, "b"},
		{token.Error, `"`},
	})
}

func TestUnknownCharacter(t *testing.T) {
	expectTokens(t, "a`b", []kt{{token.Ident, "a"}, {token.Error, "Err"}, {token.Ident, "b"}})
	expectSingleToken(t, "\\", token.Error, "Err")
	expectSingleToken(t, "€", token.Error, "Err")
}

func TestKeepErrorText(t *testing.T) {
	tokens := lexer.New("a`€", lexer.Options{KeepErrorText: true}).Tokenize()
	if len(tokens) != 3 || tokens[1].Text != "`" || tokens[2].Text != "€" {
		t.Fatalf("got %s", tokensToString(tokens))
	}
}

func TestEmbeddedNULYieldsEOFKind(t *testing.T) {
	tokens := expectTokens(t, "a\x00b", []kt{{token.Ident, "a"}, {token.EOF, "\x00"}, {token.Ident, "b"}})
	if tokens[1].Span.Start != 1 || tokens[1].Span.End != 2 {
		t.Errorf("NUL span = %v", tokens[1].Span)
	}
}

func TestNoTrailingEOFByDefault(t *testing.T) {
	tokens := lexer.Tokenize("x + 1")
	if last := tokens[len(tokens)-1]; last.Kind == token.EOF {
		t.Fatalf("unexpected trailing EOF")
	}
}

func TestTrailingEOFOption(t *testing.T) {
	tokens := lexer.New("x", lexer.Options{TrailingEOF: true}).Tokenize()
	if len(tokens) != 2 {
		t.Fatalf("got %s", tokensToString(tokens))
	}
	eof := tokens[1]
	if eof.Kind != token.EOF || eof.Text != "" || !eof.Span.Empty() || eof.Span.Start != 1 {
		t.Errorf("trailing token = %+v", eof)
	}
	if tokens := lexer.New("", lexer.Options{TrailingEOF: true}).Tokenize(); len(tokens) != 1 {
		t.Errorf("empty input with TrailingEOF: got %s", tokensToString(tokens))
	}
}

func TestNextIterator(t *testing.T) {
	lx := lexer.New("a 1", lexer.Options{})
	var kinds []token.Kind
	for {
		tok := lx.Next()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			break
		}
	}
	want := []token.Kind{token.Ident, token.Whitespace, token.Literal, token.EOF}
	if fmt.Sprint(kinds) != fmt.Sprint(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	if lx.Next().Kind != token.EOF {
		t.Fatalf("Next after EOF must keep returning EOF")
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"x * 5 - 3",
		"let a = b; // trailing\n/* block /* nested */ */ 'c' \"str\"",
		"/// doc\n//! inner\n/** outer */ /*! inner */",
		"(a+b)*[c-d]{e/f}@#~?:$=!<>&|^%,.",
		"aβ 12 \"unterminated",
		"/* unterminated /* nested",
		"'unterminated char",
	}
	for _, in := range inputs {
		var b strings.Builder
		for _, tok := range lexer.Tokenize(in) {
			b.WriteString(tok.Text)
		}
		if b.String() != in {
			t.Errorf("round trip mismatch:\n got %q\nwant %q", b.String(), in)
		}
	}
}

func TestSpansCoverText(t *testing.T) {
	src := "ab  aβ /* c */ 12`"
	for _, tok := range lexer.New(src, lexer.Options{File: 3}).Tokenize() {
		if tok.Span.File != 3 {
			t.Fatalf("span file = %d", tok.Span.File)
		}
		got := src[tok.Span.Start:tok.Span.End]
		want := tok.Text
		if tok.Kind == token.Error {
			want = "`"
		}
		if got != want {
			t.Errorf("%v: span text %q, token text %q", tok.Kind, got, want)
		}
	}
}

func TestReporterCodes(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
		sev   diag.Severity
	}{
		{"`", diag.LexUnknownChar, diag.SevError},
		{"\"abc", diag.LexUnterminatedString, diag.SevError},
		{"/* abc", diag.LexUnterminatedBlockComment, diag.SevWarning},
		{"'abc", diag.LexUnterminatedChar, diag.SevWarning},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, rep := tokenizeWithReporter(tt.input, lexer.Options{})
			if len(rep.diagnostics) != 1 {
				t.Fatalf("expected 1 diagnostic, got %v", rep.codes())
			}
			d := rep.diagnostics[0]
			if d.Code != tt.code || d.Severity != tt.sev {
				t.Errorf("got %v/%v, want %v/%v", d.Code.ID(), d.Severity, tt.code.ID(), tt.sev)
			}
		})
	}
}

func TestReporterDoesNotChangeStream(t *testing.T) {
	in := "a ` \"b"
	plain := lexer.Tokenize(in)
	reported, rep := tokenizeWithReporter(in, lexer.Options{})
	if tokensToString(plain) != tokensToString(reported) {
		t.Fatalf("streams differ:\n%s\n%s", tokensToString(plain), tokensToString(reported))
	}
	if len(rep.diagnostics) != 2 {
		t.Errorf("expected 2 diagnostics, got %v", rep.codes())
	}
}

func TestBagReporterCollectsLexErrors(t *testing.T) {
	bag := diag.NewBag(10)
	lexer.New("`", lexer.Options{Reporter: diag.BagReporter{Bag: bag}}).Tokenize()
	if !bag.HasErrors() || bag.Items()[0].Code != diag.LexUnknownChar {
		t.Fatalf("bag = %+v", bag.Items())
	}
}

func TestIncomplete(t *testing.T) {
	tests := map[string]bool{
		"":                 false,
		"a + b":            false,
		"/* open":          true,
		"/* closed */":     false,
		"\"open":           true,
		"\"closed\"":       false,
		"'open":            false,
		"a `":              false,
		"x /* a /* b */":   true,
		"// line comments": false,
	}
	for in, want := range tests {
		if got := lexer.Incomplete(lexer.Tokenize(in)); got != want {
			t.Errorf("Incomplete(%q) = %v, want %v", in, got, want)
		}
	}
	withEOF := lexer.New("/* open", lexer.Options{TrailingEOF: true}).Tokenize()
	if !lexer.Incomplete(withEOF) {
		t.Errorf("Incomplete must look through a trailing EOF")
	}
}
