// Package repl is the interactive loop behind "exprc repl". Each entry runs
// through the whole pipeline and the selected views are printed. An entry
// that ends inside a block comment or a string literal continues on the
// next line.
package repl
