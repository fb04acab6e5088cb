package lexer

import (
	"strconv"
	"strings"
	"unicode"

	"exprc/internal/token"
)

// ===== Классификаторы =====

// isWhitespaceStart is the set that opens a Whitespace token.
func isWhitespaceStart(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// isWhitespace extends a Whitespace token once it has started.
func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

func isDec(r rune) bool { return r >= '0' && r <= '9' }

// isIdentStart: only ASCII letters open an identifier; any other letter
// is an unknown character.
func isIdentStart(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

// isAlpha continues an identifier: the Unicode Alphabetic property
// (letters, letter numbers, Other_Alphabetic marks). No digits, no '_'.
func isAlpha(r rune) bool {
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_Alphabetic)
}

func quoteRune(s string) string {
	if s == "" {
		return "''"
	}
	return strconv.QuoteRune([]rune(s)[0])
}

// Incomplete reports whether the stream ends inside a block comment or a
// string literal, i.e. more input could still close it.
func Incomplete(tokens []token.Token) bool {
	if len(tokens) == 0 {
		return false
	}
	last := tokens[len(tokens)-1]
	if last.Kind == token.EOF && len(tokens) > 1 && last.Text == "" {
		last = tokens[len(tokens)-2]
	}
	switch last.Kind {
	case token.BlockComment:
		return !last.Terminated
	case token.Error:
		return strings.HasPrefix(last.Text, `"`)
	default:
		return false
	}
}
