// Package diag defines the diagnostic model shared by the lexer, parser and driver.
//
// # Purpose
//
//   - Provide deterministic, serialisable records for findings produced while
//     tokenizing and parsing. The pipeline itself never aborts: the in-band
//     signals (Error tokens, Terminated=false, default 0, dropped nodes) stay
//     authoritative, diagnostics only mirror them for humans and tooling.
//   - Offer light-weight utilities (Reporter, Bag) so producers can emit
//     diagnostics without coupling to storage or formatting.
//
// # Scope
//
// Package diag does not format or print anything. Rendering lives in
// internal/diagfmt; collection per file lives in internal/driver.
//
// # Data model
//
//   - Severity – Info, Warning, Error.
//   - Code – numeric identifier with a stable string form (LEX1001, SYN2001...).
//   - Message – short, human oriented.
//   - Primary – the source.Span the finding points at.
//   - Notes – optional secondary spans with extra context.
package diag
