package driver

import (
	"exprc/internal/observ"
	"exprc/internal/pipeline"
)

// Options controls a pipeline run. The zero value tokenizes without
// stripping trivia and keeps at most 0 diagnostics, so callers normally start
// from DefaultOptions.
type Options struct {
	// StripTrivia drops whitespace and comments between tokenizing and parsing.
	StripTrivia bool
	// TrailingEOF and KeepErrorText are passed to the lexer.
	TrailingEOF   bool
	KeepErrorText bool

	MaxDiagnostics int
	// Jobs bounds parallel files in RunDir; <= 0 means GOMAXPROCS.
	Jobs int

	Cache    *DiskCache
	Progress pipeline.ProgressSink
	Timer    *observ.Timer
}

// DefaultOptions mirrors the defaults of exprc.toml.
func DefaultOptions() Options {
	return Options{
		StripTrivia:    true,
		MaxDiagnostics: 100,
	}
}

// fingerprint folds the options that change lowering output into the cache key.
func (o Options) fingerprint() []byte {
	b := []byte{0, 0, 0}
	if o.StripTrivia {
		b[0] = 1
	}
	if o.TrailingEOF {
		b[1] = 1
	}
	if o.KeepErrorText {
		b[2] = 1
	}
	return b
}
