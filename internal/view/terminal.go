package view

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"

	"nncalc/internal/domain"
)

// Terminal is a Recorder that can render its state as text.
type Terminal struct {
	*Recorder

	out       io.Writer
	live      *uilive.Writer
	maxDigits int
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithMaxDigits elides values longer than n digits. Zero disables eliding.
func WithMaxDigits(n int) TerminalOption {
	return func(t *Terminal) { t.maxDigits = n }
}

// WithLive repaints in place instead of appending when enabled.
func WithLive(enabled bool) TerminalOption {
	return func(t *Terminal) {
		if !enabled {
			t.live = nil
			return
		}
		w := uilive.New()
		w.Out = t.out
		t.live = w
	}
}

// NewTerminal returns a Terminal writing to out.
func NewTerminal(out io.Writer, opts ...TerminalOption) *Terminal {
	t := &Terminal{Recorder: NewRecorder(), out: out}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Render writes the current state.
func (t *Terminal) Render() error {
	text := t.render()
	if t.live == nil {
		_, err := io.WriteString(t.out, text)
		return err
	}
	if _, err := io.WriteString(t.live, text); err != nil {
		return err
	}
	return t.live.Flush()
}

// Message writes a line outside the live region.
func (t *Terminal) Message(format string, args ...any) {
	if t.live != nil {
		fmt.Fprintf(t.live.Bypass(), format+"\n", args...)
		return
	}
	fmt.Fprintf(t.out, format+"\n", args...)
}

func (t *Terminal) render() string {
	top, bottom := t.Registers()
	l := t.Legality()

	var b strings.Builder
	fmt.Fprintf(&b, "top:    %s\n", Format(top, t.maxDigits))
	fmt.Fprintf(&b, "bottom: %s\n", Format(bottom, t.maxDigits))
	b.WriteString("keys:   clear swap enter + *")
	for _, k := range []struct {
		op    domain.Operation
		label string
	}{
		{domain.OpSubtract, "-"},
		{domain.OpDivide, "/"},
		{domain.OpPower, "^"},
		{domain.OpRoot, "root"},
	} {
		if l.Allows(k.op) {
			b.WriteString(" " + k.label)
		} else {
			b.WriteString(" (" + k.label + ")")
		}
	}
	b.WriteString("\n")
	return b.String()
}

// Compile-time assertion that Terminal implements domain.Display.
var _ domain.Display = (*Terminal)(nil)
