package diagfmt

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"

	"exprc/internal/source"
	"exprc/internal/token"
)

// TokenOutput is the structured form of one token.
type TokenOutput struct {
	Kind       string      `json:"kind" yaml:"kind" msgpack:"kind"`
	Text       string      `json:"text" yaml:"text" msgpack:"text"`
	Doc        string      `json:"doc,omitempty" yaml:"doc,omitempty" msgpack:"doc,omitempty"`
	Terminated *bool       `json:"terminated,omitempty" yaml:"terminated,omitempty" msgpack:"terminated,omitempty"`
	Span       source.Span `json:"span" yaml:"span" msgpack:"span"`
}

// maxTokenText limits the display width of token text in pretty output.
const maxTokenText = 48

// BuildTokensOutput converts tokens to their structured form.
func BuildTokensOutput(tokens []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		o := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: tok.Span,
		}
		if tok.IsComment() {
			o.Doc = tok.Doc.String()
		}
		if tok.Kind == token.BlockComment {
			terminated := tok.Terminated
			o.Terminated = &terminated
		}
		out = append(out, o)
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате.
// fs может быть nil, тогда печатаются байтовые смещения вместо line:col.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		pos := fmt.Sprintf("%d-%d", tok.Span.Start, tok.Span.End)
		if fs != nil && int(tok.Span.File) < fs.Len() {
			start, end := fs.Resolve(tok.Span)
			pos = fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
		}

		text := runewidth.Truncate(strconv.Quote(tok.Text), maxTokenText, "...")
		if _, err := fmt.Fprintf(w, "%3d: %-14s %-13s %s", i+1, tok.Kind.String(), pos, text); err != nil {
			return err
		}
		switch {
		case tok.Kind == token.BlockComment && !tok.Terminated:
			fmt.Fprintf(w, " (doc: %s, unterminated)", tok.Doc)
		case tok.IsDoc():
			fmt.Fprintf(w, " (doc: %s)", tok.Doc)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokens writes tokens in the requested format.
func FormatTokens(w io.Writer, tokens []token.Token, fs *source.FileSet, format Format) error {
	if format == FormatPretty || format == "" {
		return FormatTokensPretty(w, tokens, fs)
	}
	return Encode(w, format, BuildTokensOutput(tokens))
}
