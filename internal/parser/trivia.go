package parser

import "exprc/internal/token"

// Significant returns tokens without whitespace and comments.
// Parse itself does not skip trivia: a space after an operator becomes its
// right operand. Callers that want "x * 5 - 3" to fold as written filter first.
func Significant(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.IsTrivia() {
			continue
		}
		out = append(out, tok)
	}
	return out
}
