package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"nncalc/internal/view"
)

// Wire bundles the shared services and the current session for the CLI.
type Wire struct {
	Config  Config
	Logger  *slog.Logger
	Fs      afero.Fs
	Session *Session

	terminal *view.Terminal
	live     bool
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Err == nil {
		cfg.Err = io.Discard
	}
	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}
	if cfg.MaxDigits < 0 {
		return nil, fmt.Errorf("max digits must not be negative, got %d", cfg.MaxDigits)
	}

	var live bool
	switch cfg.Live {
	case LiveAuto, "":
		live = view.IsTTY(cfg.Out)
	case LiveOn:
		live = true
	case LiveOff:
		live = false
	default:
		return nil, fmt.Errorf("live mode %q: want %s, %s or %s", cfg.Live, LiveAuto, LiveOn, LiveOff)
	}

	logger := NewLogger(cfg.Err, cfg.Verbose)

	term := view.NewTerminal(cfg.Out,
		view.WithMaxDigits(cfg.MaxDigits),
		view.WithLive(live),
	)

	w := &Wire{
		Config:   cfg,
		Logger:   logger,
		Fs:       cfg.Fs,
		terminal: term,
		live:     live,
	}
	w.Reset()
	return w, nil
}

// Reset replaces the current session with a fresh one in state (0, 0). The
// new engine pushes to the same terminal, so a live view keeps repainting
// the same region.
func (w *Wire) Reset() *Session {
	w.Session = newSession(w.terminal, w.Logger)
	return w.Session
}

// Live reports whether sessions repaint in place.
func (w *Wire) Live() bool { return w.live }

// NewLogger returns a text logger on out at info level, or debug when verbose.
func NewLogger(out io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}
