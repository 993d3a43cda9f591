package calc

import (
	"math"

	"nncalc/internal/domain"
	"nncalc/internal/natural"
)

var (
	two      = natural.New(2)
	intLimit = natural.New(math.MaxInt32)
)

// Engine applies calculator operations to its top and bottom registers.
type Engine struct {
	top    natural.Natural
	bottom natural.Natural
	view   domain.Display
}

// New returns an engine in state (0, 0) and pushes that state to view.
func New(view domain.Display) *Engine {
	e := &Engine{view: view}
	e.refresh()
	return e
}

// Top returns a copy of the top register.
func (e *Engine) Top() *natural.Natural { return e.top.Clone() }

// Bottom returns a copy of the bottom register.
func (e *Engine) Bottom() *natural.Natural { return e.bottom.Clone() }

// Legality returns the flags for the current registers.
func (e *Engine) Legality() domain.Legality { return LegalityOf(&e.top, &e.bottom) }

// LegalityOf computes the four legality flags for registers (top, bottom).
func LegalityOf(top, bottom *natural.Natural) domain.Legality {
	return domain.Legality{
		Subtract: bottom.Compare(top) <= 0,
		Divide:   !bottom.IsZero(),
		Power:    bottom.Compare(intLimit) <= 0,
		Root:     bottom.Compare(two) >= 0 && bottom.Compare(intLimit) <= 0,
	}
}

// Clear sets bottom to 0.
func (e *Engine) Clear() {
	e.bottom.Clear()
	e.refresh()
}

// Swap exchanges top and bottom.
func (e *Engine) Swap() {
	temp := e.top.NewInstance()
	temp.TransferFrom(&e.top)
	e.top.TransferFrom(&e.bottom)
	e.bottom.TransferFrom(temp)
	e.refresh()
}

// Enter copies bottom into top.
func (e *Engine) Enter() {
	e.top.CopyFrom(&e.bottom)
	e.refresh()
}

// Add sets bottom to bottom+top and top to 0.
func (e *Engine) Add() {
	e.bottom.Add(&e.top)
	e.top.Clear()
	e.refresh()
}

// Subtract sets bottom to top-bottom and top to 0. Requires bottom <= top.
func (e *Engine) Subtract() {
	e.top.Subtract(&e.bottom)
	e.bottom.TransferFrom(&e.top)
	e.refresh()
}

// Multiply sets bottom to top*bottom and top to 0.
func (e *Engine) Multiply() {
	e.top.Multiply(&e.bottom)
	e.bottom.TransferFrom(&e.top)
	e.refresh()
}

// Divide sets bottom to top/bottom and top to the remainder. Requires
// bottom != 0.
func (e *Engine) Divide() {
	r := e.top.Divide(&e.bottom)
	e.bottom.TransferFrom(&e.top)
	e.top.TransferFrom(r)
	e.refresh()
}

// Power sets bottom to top**bottom and top to 0. Requires bottom to fit in
// an int32.
func (e *Engine) Power() {
	p := e.bottom.ToInt()
	e.top.Power(int(p))
	e.bottom.TransferFrom(&e.top)
	e.refresh()
}

// Root sets bottom to the bottom-th integer root of top and top to 0.
// Requires 2 <= bottom <= math.MaxInt32.
func (e *Engine) Root() {
	r := e.bottom.ToInt()
	e.top.Root(int(r))
	e.bottom.TransferFrom(&e.top)
	e.refresh()
}

// AddDigit appends a decimal digit to bottom.
func (e *Engine) AddDigit(digit int) {
	e.bottom.MultiplyBy10(digit)
	e.refresh()
}

// refresh pushes the registers and legality flags to the view.
func (e *Engine) refresh() {
	l := e.Legality()
	e.view.UpdateTopDisplay(e.top.Clone())
	e.view.UpdateBottomDisplay(e.bottom.Clone())
	e.view.UpdateSubtractAllowed(l.Subtract)
	e.view.UpdateDivideAllowed(l.Divide)
	e.view.UpdatePowerAllowed(l.Power)
	e.view.UpdateRootAllowed(l.Root)
}

// Compile-time assertion that Engine implements domain.Calculator.
var _ domain.Calculator = (*Engine)(nil)
