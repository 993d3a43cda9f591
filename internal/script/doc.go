// Package script drives a calculator from keystroke scripts.
//
// # Syntax
//
// A script is a sequence of whitespace-separated tokens. A '#' starts a
// comment that runs to the end of the line.
//
//	clear  c          bottom := 0
//	swap   s          exchange top and bottom
//	enter  e  =       top := bottom
//	add    +          bottom := top + bottom
//	sub    -          bottom := top - bottom
//	mul    *  x       bottom := top * bottom
//	div    /          bottom := top / bottom, top := remainder
//	pow    ^          bottom := top ** bottom
//	root   r  √       bottom := bottom-th root of top
//	123               append the digits 1, 2, 3 to bottom
//
// # Running
//
// A Runner applies parsed steps to a domain.Calculator and reads the
// legality flags back from a domain.StateView after every step. A gated
// step whose flag is clear fails with ErrIllegalOperation and the
// calculator is not called, the way a disabled button cannot be pressed.
//
// # Files
//
// Load reads scripts through an afero.Fs. WriteTranscript stores a JSON
// record of a run via a temp file and rename. Watch re-runs a script when
// its content changes on disk.
package script
