package script

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"nncalc/internal/domain"
)

// ErrIllegalOperation is returned when a step's legality flag is clear.
var ErrIllegalOperation = errors.New("operation not allowed")

// Runner applies steps to a calculator, honoring its legality flags.
type Runner struct {
	calc  domain.Calculator
	state domain.StateView
	log   *slog.Logger
}

// NewRunner returns a Runner driving calc. state must be the display calc
// pushes to, so that its flags reflect calc's registers.
func NewRunner(calc domain.Calculator, state domain.StateView, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Runner{calc: calc, state: state, log: log}
}

// Apply runs a single step.
func (r *Runner) Apply(step domain.Step) error {
	if step.Op == domain.OpAppendDigit && (step.Digit < 0 || step.Digit > 9) {
		return fmt.Errorf("digit %d: %w", step.Digit, ErrUnknownToken)
	}
	if !r.state.Legality().Allows(step.Op) {
		return fmt.Errorf("%s: %w", step.Op, ErrIllegalOperation)
	}
	switch step.Op {
	case domain.OpClear:
		r.calc.Clear()
	case domain.OpSwap:
		r.calc.Swap()
	case domain.OpEnter:
		r.calc.Enter()
	case domain.OpAdd:
		r.calc.Add()
	case domain.OpSubtract:
		r.calc.Subtract()
	case domain.OpMultiply:
		r.calc.Multiply()
	case domain.OpDivide:
		r.calc.Divide()
	case domain.OpPower:
		r.calc.Power()
	case domain.OpRoot:
		r.calc.Root()
	case domain.OpAppendDigit:
		r.calc.AddDigit(step.Digit)
	default:
		return fmt.Errorf("unimplemented operation: %s", step.Op)
	}
	if r.log.Enabled(context.Background(), slog.LevelDebug) {
		snap := r.state.Snapshot()
		r.log.Debug("step",
			"op", step.Op.String(),
			"digit", step.Digit,
			"top_digits", len(snap.Top),
			"bottom_digits", len(snap.Bottom),
		)
	}
	return nil
}

// Run applies steps in order and records a transcript entry for each one
// that ran. It stops at the first failing step or when ctx is done; the
// transcript up to that point is returned along with the error.
func (r *Runner) Run(ctx context.Context, steps []domain.Step) (Transcript, error) {
	tr := Transcript{Entries: make([]Entry, 0, len(steps))}
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return tr, err
		}
		if err := r.Apply(step); err != nil {
			return tr, fmt.Errorf("step %d: %w", i+1, err)
		}
		tr.Entries = append(tr.Entries, Entry{Step: step, State: r.state.Snapshot()})
	}
	return tr, nil
}
