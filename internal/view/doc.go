// Package view provides domain.Display implementations for the calculator.
//
//   - Recorder keeps the most recent state pushed by an engine and answers
//     legality queries for callers that must honor the flags.
//   - Terminal renders that state as text. On a TTY it can repaint in place
//     using uilive; elsewhere it appends one block per render.
//
// Values longer than the configured digit budget are shown as a head and a
// tail joined by an ellipsis, followed by the digit count and a short BLAKE2b
// fingerprint so two huge values can still be told apart.
package view
