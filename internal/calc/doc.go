// Package calc implements the two-register natural number calculator.
//
// An Engine owns a "top" and a "bottom" register and applies one user
// operation per method call. After every call it pushes both register values
// and four legality flags to its domain.Display:
//
//	subtract  bottom <= top
//	divide    bottom != 0
//	power     bottom <= math.MaxInt32
//	root      2 <= bottom <= math.MaxInt32
//
// The gated methods (Subtract, Divide, Power, Root) do not re-check their
// flag. Calling one while its flag is clear is a contract breach and panics
// from inside package natural.
//
// An Engine is not safe for concurrent use. Give each session its own.
package calc
