// Package parser folds a token stream into AST nodes.
//
// There is no grammar in the usual sense: operands are pushed onto an output
// stack and every arithmetic operator pops the previous node as its left
// operand and takes the very next token as its right one. The fold is strictly
// left to right, so "x * 5 - 3" becomes (- (* x 5) 3) and "1 + 2 * 3"
// becomes (* (+ 1 2) 3).
//
// Parse never fails. Tokens that do not fit are skipped, and structural gaps
// are visible only through ParseWithReporter.
package parser
