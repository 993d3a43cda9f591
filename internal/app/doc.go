// Package app wires application dependencies for the CLI.
//
// It builds the logger, filesystem and calculator sessions (engine, terminal
// view and script runner) from Config, exposing them via the Wire struct for
// commands to use.
package app
