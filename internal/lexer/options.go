package lexer

import (
	"exprc/internal/diag"
	"exprc/internal/source"
)

type Options struct {
	// Reporter may be nil; anomalies are then visible only in the token stream.
	Reporter diag.Reporter
	// File is stamped into every token span.
	File source.FileID
	// TrailingEOF appends an EOF token to the result of Tokenize, for
	// consumers that expect a terminated stream.
	TrailingEOF bool
	// KeepErrorText makes Error tokens for unknown characters carry the
	// character itself instead of the fixed "Err".
	KeepErrorText bool
}

func (lx *Lexer) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	diag.NewReportBuilder(lx.opts.Reporter, sev, code, sp, msg).Emit()
}
