package lexer

import (
	"exprc/internal/diag"
	"exprc/internal/token"
)

// Кавычки без escape-последовательностей: `\'` закрывает литерал раньше времени.

// scanCharLiteral is entered after the opening '\''.
// A missing closing quote still yields a CharLiteral with the partial text.
func (lx *Lexer) scanCharLiteral(start Mark) token.Token {
	closed := lx.scanQuoted('\'')
	tok := lx.emit(token.CharLiteral, start)
	if !closed {
		lx.report(diag.LexUnterminatedChar, diag.SevWarning, tok.Span, "unterminated character literal")
	}
	return tok
}

// scanStringLiteral is entered after the opening '"'.
// Without a closing quote the partial text becomes an Error token.
func (lx *Lexer) scanStringLiteral(start Mark) token.Token {
	if lx.scanQuoted('"') {
		return lx.emit(token.StringLiteral, start)
	}
	tok := lx.emit(token.Error, start)
	lx.report(diag.LexUnterminatedString, diag.SevError, tok.Span, "unterminated string literal")
	return tok
}

// scanQuoted consumes up to and including the next quote and reports whether it was found.
func (lx *Lexer) scanQuoted(quote rune) bool {
	lx.cursor.EatWhile(func(r rune) bool { return r != quote })
	if lx.cursor.IsEOF() {
		return false
	}
	lx.cursor.Bump()
	return true
}
