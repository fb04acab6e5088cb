// Package ir is the lowered form of the parse tree.
//
// Lowering is a one-to-one structural copy: Number becomes Constant, Ident
// becomes Variable and BinaryOp becomes BinaryExpression. Later phases would
// work on this representation; for now it is printed, serialised and cached.
package ir
