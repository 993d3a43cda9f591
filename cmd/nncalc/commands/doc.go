// Package commands defines the nncalc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - repl   Interactive calculator (default when no command is given)
//   - eval   Apply keystroke tokens given as arguments and print the result
//   - run    Apply a keystroke script file, optionally re-running on change
//
// # Implementation
//
// The root command builds an app.Wire (logger, filesystem, terminal view and
// a calculator session) before any subcommand runs, so handlers share one
// configuration. Gated keys whose legality flag is clear are refused with an
// error and leave the registers untouched.
package commands
