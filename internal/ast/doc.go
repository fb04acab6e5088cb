// Package ast holds the parse tree produced by the parser.
//
// The tree is deliberately tiny: integer literals, identifiers and binary
// operations. Nodes are plain values except *BinaryOp, which owns its
// operands; nothing is shared between trees.
package ast
