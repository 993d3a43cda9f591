package domain

import (
	interfaces "nncalc/internal/domain/interfaces"
	types "nncalc/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Operation = types.Operation
	Step      = types.Step
	Legality  = types.Legality
	Snapshot  = types.Snapshot
)

// Operation values.
const (
	OpClear       = types.OpClear
	OpSwap        = types.OpSwap
	OpEnter       = types.OpEnter
	OpAdd         = types.OpAdd
	OpSubtract    = types.OpSubtract
	OpMultiply    = types.OpMultiply
	OpDivide      = types.OpDivide
	OpPower       = types.OpPower
	OpRoot        = types.OpRoot
	OpAppendDigit = types.OpAppendDigit
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Display    = interfaces.Display
	Calculator = interfaces.Calculator
	StateView  = interfaces.StateView
)
