package interfaces

import domaintypes "nncalc/internal/domain/types"

// Calculator is the inbound contract: one method per user action. Gated
// methods must only be called while the matching legality flag is set.
type Calculator interface {
	Clear()
	Swap()
	Enter()
	Add()
	Subtract()
	Multiply()
	Divide()
	Power()
	Root()
	AddDigit(digit int)
}

// StateView exposes what a display has most recently been told.
type StateView interface {
	Legality() domaintypes.Legality
	Snapshot() domaintypes.Snapshot
}
