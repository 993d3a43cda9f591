package view

import (
	"sync"

	"nncalc/internal/domain"
	"nncalc/internal/natural"
)

// Recorder is a domain.Display that remembers the last pushed state.
type Recorder struct {
	mu       sync.Mutex
	top      *natural.Natural
	bottom   *natural.Natural
	legality domain.Legality
}

// NewRecorder returns a Recorder showing (0, 0) with every flag clear.
func NewRecorder() *Recorder {
	return &Recorder{top: new(natural.Natural), bottom: new(natural.Natural)}
}

// UpdateTopDisplay records the top register.
func (r *Recorder) UpdateTopDisplay(n *natural.Natural) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.top = n
}

// UpdateBottomDisplay records the bottom register.
func (r *Recorder) UpdateBottomDisplay(n *natural.Natural) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bottom = n
}

// UpdateSubtractAllowed records whether subtract is legal.
func (r *Recorder) UpdateSubtractAllowed(allowed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.legality.Subtract = allowed
}

// UpdateDivideAllowed records whether divide is legal.
func (r *Recorder) UpdateDivideAllowed(allowed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.legality.Divide = allowed
}

// UpdatePowerAllowed records whether power is legal.
func (r *Recorder) UpdatePowerAllowed(allowed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.legality.Power = allowed
}

// UpdateRootAllowed records whether root is legal.
func (r *Recorder) UpdateRootAllowed(allowed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.legality.Root = allowed
}

// Legality returns the last pushed flags.
func (r *Recorder) Legality() domain.Legality {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.legality
}

// Snapshot returns the last pushed state with full decimal values.
func (r *Recorder) Snapshot() domain.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return domain.Snapshot{
		Top:      r.top.String(),
		Bottom:   r.bottom.String(),
		Legality: r.legality,
	}
}

// Registers returns copies of the last pushed top and bottom values.
func (r *Recorder) Registers() (top, bottom *natural.Natural) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.top.Clone(), r.bottom.Clone()
}

// Compile-time assertions that Recorder implements the view contracts.
var (
	_ domain.Display   = (*Recorder)(nil)
	_ domain.StateView = (*Recorder)(nil)
)
