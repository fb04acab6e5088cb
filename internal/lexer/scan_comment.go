package lexer

import (
	"strings"

	"exprc/internal/diag"
	"exprc/internal/token"
)

// scanSlash is entered after consuming '/'.
// "//" и "/*" открывают комментарии, иначе это просто Slash.
func (lx *Lexer) scanSlash(start Mark) token.Token {
	switch lx.cursor.First() {
	case '/':
		return lx.scanLineComment(start)
	case '*':
		return lx.scanBlockComment(start)
	default:
		return lx.emit(token.Slash, start)
	}
}

// scanLineComment consumes "//", an optional doc marker and the body up to,
// but not including, the next newline.
func (lx *Lexer) scanLineComment(start Mark) token.Token {
	lx.cursor.Bump() // second '/'

	doc := token.DocNone
	switch lx.cursor.First() {
	case '!':
		lx.cursor.Bump()
		doc = token.DocInner
	case '/':
		lx.cursor.Bump()
		doc = token.DocOuter
	}

	lx.cursor.EatWhile(func(r rune) bool { return r != '\n' })

	tok := lx.emit(token.LineComment, start)
	tok.Doc = doc
	return tok
}

// scanBlockComment consumes a block comment with nesting.
// Running out of input is not an error: the token is returned with Terminated=false.
func (lx *Lexer) scanBlockComment(start Mark) token.Token {
	lx.cursor.Bump() // '*'

	depth := 1
	for depth > 0 && !lx.cursor.IsEOF() {
		switch b0, b1 := lx.cursor.First(), lx.cursor.Second(); {
		case b0 == '*' && b1 == '/':
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth--
		case b0 == '/' && b1 == '*':
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth++
		default:
			lx.cursor.Bump()
		}
	}

	tok := lx.emit(token.BlockComment, start)
	tok.Terminated = depth == 0
	tok.Doc = blockDocStyle(tok.Text)
	if !tok.Terminated {
		lx.report(diag.LexUnterminatedBlockComment, diag.SevWarning, tok.Span, "unterminated block comment")
	}
	return tok
}

func blockDocStyle(text string) token.DocStyle {
	switch {
	case strings.HasPrefix(text, "/*!"):
		return token.DocInner
	case strings.HasPrefix(text, "/**"):
		return token.DocOuter
	default:
		return token.DocNone
	}
}
