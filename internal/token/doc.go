// Package token defines lexical token kinds for the exprc front end.
// Invariants:
//   - Token.Text is the exact source substring consumed, delimiters included.
//     The only exception is the Error token for an unrecognized character,
//     whose text is the fixed "Err" unless the lexer keeps error text.
//   - Token.Span covers the consumed bytes even when Text is "Err".
//   - Doc is set only for LineComment and BlockComment; Terminated only for BlockComment.
//   - EOF with empty text is the iterator sentinel. Inside a stream it only
//     appears for an embedded NUL (text "\x00") or as an opt-in trailer.
package token
