// Package testkit holds invariant checks shared by unit, driver and fuzz tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"exprc/internal/ast"
	"exprc/internal/source"
	"exprc/internal/token"
)

// CheckTokenInvariants verifies a token stream against the file it was lexed from:
// 1) spans are contiguous, start at 0 and stop at the end of content
// 2) every span points at sf
// 3) each token's text is the content under its span, except Error tokens
// carrying the fixed "Err" text
//
// A trailing EOF with empty text is allowed and must sit at the end.
func CheckTokenInvariants(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var next uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d points to different file id: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.Start != next {
			return fmt.Errorf("token %d (%s) starts at %d, expected %d", i, tok.Kind, sp.Start, next)
		}
		if !sp.Valid(lenContent) {
			return fmt.Errorf("token %d has bad span %v (content %d bytes)", i, sp, lenContent)
		}
		if tok.Kind == token.EOF && tok.Text == "" {
			if i != len(tokens)-1 || sp.Start != lenContent {
				return fmt.Errorf("sentinel EOF at %d is not the last token", i)
			}
			continue
		}
		if sp.Empty() {
			return fmt.Errorf("token %d (%s) is empty", i, tok.Kind)
		}
		raw := string(sf.Content[sp.Start:sp.End])
		if tok.Text != raw && (tok.Kind != token.Error || tok.Text != "Err") {
			return fmt.Errorf("token %d (%s) text %q does not match source %q", i, tok.Kind, tok.Text, raw)
		}
		next = sp.End
	}
	if next != lenContent {
		return fmt.Errorf("tokens stop at %d, content has %d bytes", next, lenContent)
	}
	return nil
}

// CheckNodeInvariants verifies parsed or lowered spans:
// 1) every node span lies within sf
// 2) a BinaryOp span covers both operand spans
func CheckNodeInvariants(nodes []ast.Node, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var failure error
	for i, root := range nodes {
		ast.Walk(root, func(n ast.Node) bool {
			if failure != nil {
				return false
			}
			sp := ast.SpanOf(n)
			if sp.File != sf.ID || !sp.Valid(lenContent) {
				failure = fmt.Errorf("expr %d: %s has span %v outside file %d (%d bytes)", i, n.Kind(), sp, sf.ID, lenContent)
				return false
			}
			if bin, ok := n.(*ast.BinaryOp); ok {
				for _, child := range []ast.Node{bin.Left, bin.Right} {
					cs := ast.SpanOf(child)
					if !sp.Encloses(cs) {
						failure = fmt.Errorf("expr %d: operand span %v escapes %v", i, cs, sp)
						return false
					}
				}
			}
			return true
		})
		if failure != nil {
			return failure
		}
	}
	return nil
}
