package lexer

import (
	"exprc/internal/diag"
	"exprc/internal/token"
)

// Lexer turns source text into tokens. It holds no state besides its cursor,
// so independent lexers may run in parallel.
type Lexer struct {
	cursor Cursor
	opts   Options
}

// New creates a lexer over src.
func New(src string, opts Options) *Lexer {
	return &Lexer{
		cursor: NewCursor(src),
		opts:   opts,
	}
}

// Tokenize scans input to completion with default options.
// The result has no trailing EOF token.
func Tokenize(input string) []token.Token {
	return New(input, Options{}).Tokenize()
}

// Tokenize scans the remaining input in one pass.
// Unrecognized input yields a local Error token and scanning continues.
func (lx *Lexer) Tokenize() []token.Token {
	tokens := make([]token.Token, 0, len(lx.cursor.src)/2+1)
	for !lx.cursor.IsEOF() {
		tokens = append(tokens, lx.scan())
	}
	if lx.opts.TrailingEOF {
		tokens = append(tokens, lx.eof())
	}
	return tokens
}

// Next возвращает следующий токен.
// После конца ввода всегда возвращает EOF с пустым текстом.
func (lx *Lexer) Next() token.Token {
	if lx.cursor.IsEOF() {
		return lx.eof()
	}
	return lx.scan()
}

func (lx *Lexer) eof() token.Token {
	m := lx.cursor.Mark()
	return token.Token{Kind: token.EOF, Span: lx.cursor.SpanFrom(lx.opts.File, m)}
}

// scan classifies on the next consumed character.
func (lx *Lexer) scan() token.Token {
	start := lx.cursor.Mark()
	c := lx.cursor.Bump()

	switch {
	case isWhitespaceStart(c):
		lx.cursor.EatWhile(isWhitespace)
		return lx.emit(token.Whitespace, start)
	case c == '/':
		return lx.scanSlash(start)
	case c == '\'':
		return lx.scanCharLiteral(start)
	case c == '"':
		return lx.scanStringLiteral(start)
	case isDec(c):
		lx.cursor.EatWhile(isDec)
		return lx.emit(token.Literal, start)
	case isIdentStart(c):
		lx.cursor.EatWhile(isAlpha)
		return lx.emit(token.Ident, start)
	case c == EOFChar:
		// Only an embedded NUL gets here: the loop checks IsEOF before bumping.
		return lx.emit(token.EOF, start)
	}

	if k, ok := token.LookupPunct(c); ok {
		return lx.emit(k, start)
	}
	return lx.unknown(start)
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	return token.Token{
		Kind: kind,
		Text: lx.cursor.Slice(start),
		Span: lx.cursor.SpanFrom(lx.opts.File, start),
	}
}

// unknown discards the offending character unless KeepErrorText is set.
func (lx *Lexer) unknown(start Mark) token.Token {
	tok := lx.emit(token.Error, start)
	lx.report(diag.LexUnknownChar, diag.SevError, tok.Span, "unknown character "+quoteRune(tok.Text))
	if !lx.opts.KeepErrorText {
		tok.Text = "Err"
	}
	return tok
}
