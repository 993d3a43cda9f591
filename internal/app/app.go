package app

import (
	"log/slog"

	"nncalc/internal/calc"
	"nncalc/internal/script"
	"nncalc/internal/view"
)

// Session is one calculator: an engine, the terminal it pushes to and a
// runner that feeds it steps. Each session owns its registers.
type Session struct {
	Engine   *calc.Engine
	Terminal *view.Terminal
	Runner   *script.Runner
}

func newSession(term *view.Terminal, log *slog.Logger) *Session {
	engine := calc.New(term)
	return &Session{
		Engine:   engine,
		Terminal: term,
		Runner:   script.NewRunner(engine, term, log),
	}
}
