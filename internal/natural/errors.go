package natural

import (
	"errors"
	"fmt"
)

// Sentinels carried by a *ContractError panic.
var (
	ErrUnderflow        = errors.New("subtraction underflow")
	ErrDivideByZero     = errors.New("division by zero")
	ErrRootIndex        = errors.New("root index below 2")
	ErrNegativeExponent = errors.New("negative exponent")
	ErrOverflow         = errors.New("value exceeds int32")
	ErrDigit            = errors.New("digit outside 0-9")
	ErrSyntax           = errors.New("invalid decimal")
)

// ContractError is the panic value raised when a caller breaks a method
// precondition.
type ContractError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	return fmt.Sprintf("natural: %s: %v", e.Op, e.Err)
}

// Unwrap returns the sentinel for use with errors.Is.
func (e *ContractError) Unwrap() error { return e.Err }

func breach(op string, err error) {
	panic(&ContractError{Op: op, Err: err})
}
