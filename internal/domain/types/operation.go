package types

import "fmt"

// Operation identifies one user action on the calculator.
type Operation int

const (
	OpClear Operation = iota
	OpSwap
	OpEnter
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpPower
	OpRoot
	OpAppendDigit
)

var operationNames = [...]string{
	OpClear:       "clear",
	OpSwap:        "swap",
	OpEnter:       "enter",
	OpAdd:         "add",
	OpSubtract:    "subtract",
	OpMultiply:    "multiply",
	OpDivide:      "divide",
	OpPower:       "power",
	OpRoot:        "root",
	OpAppendDigit: "digit",
}

// String returns the lower-case name of the operation.
func (op Operation) String() string {
	if op < 0 || int(op) >= len(operationNames) {
		return fmt.Sprintf("Operation(%d)", int(op))
	}
	return operationNames[op]
}

// MarshalText implements encoding.TextMarshaler.
func (op Operation) MarshalText() ([]byte, error) {
	if op < 0 || int(op) >= len(operationNames) {
		return nil, fmt.Errorf("unknown operation %d", int(op))
	}
	return []byte(operationNames[op]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (op *Operation) UnmarshalText(text []byte) error {
	for i, name := range operationNames {
		if name == string(text) {
			*op = Operation(i)
			return nil
		}
	}
	return fmt.Errorf("unknown operation %q", text)
}

// Gated reports whether op may only run while its legality flag is set.
func (op Operation) Gated() bool {
	switch op {
	case OpSubtract, OpDivide, OpPower, OpRoot:
		return true
	}
	return false
}

// Step is one inbound call: an operation plus, for OpAppendDigit, its digit.
type Step struct {
	Op    Operation `json:"op"`
	Digit int       `json:"digit,omitempty"`
}

// String renders the step the way a script would spell it.
func (s Step) String() string {
	if s.Op == OpAppendDigit {
		return fmt.Sprintf("%d", s.Digit)
	}
	return s.Op.String()
}
