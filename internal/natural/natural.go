package natural

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Natural is a non-negative integer of arbitrary size. The zero value is 0.
type Natural struct {
	limbs []uint32
}

// New returns a Natural holding n.
func New(n uint64) *Natural {
	x := new(Natural)
	for n != 0 {
		x.limbs = append(x.limbs, uint32(n%base))
		n /= base
	}
	return x
}

// Parse reads a decimal string. Leading zeros are accepted.
func Parse(s string) (*Natural, error) {
	if s == "" {
		return nil, fmt.Errorf("parse %q: %w", s, ErrSyntax)
	}
	x := new(Natural)
	for end := len(s); end > 0; end -= limbWidth {
		start := max(end-limbWidth, 0)
		chunk := s[start:end]
		for _, c := range chunk {
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("parse %q: %w", s, ErrSyntax)
			}
		}
		v, err := strconv.ParseUint(chunk, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", s, err)
		}
		x.limbs = append(x.limbs, uint32(v))
	}
	x.limbs = trim(x.limbs)
	return x, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) *Natural {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// Clear sets x to 0.
func (x *Natural) Clear() { x.limbs = x.limbs[:0] }

// IsZero reports whether x is 0.
func (x *Natural) IsZero() bool { return len(x.limbs) == 0 }

// Compare returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x *Natural) Compare(y *Natural) int { return cmpLimbs(x.limbs, y.limbs) }

// CopyFrom sets x to the value of y. y is unchanged and shares no storage
// with x afterwards.
func (x *Natural) CopyFrom(y *Natural) {
	if x == y {
		return
	}
	x.limbs = append(x.limbs[:0], y.limbs...)
}

// TransferFrom moves y's value into x and leaves y at 0.
func (x *Natural) TransferFrom(y *Natural) {
	if x == y {
		return
	}
	x.limbs, y.limbs = y.limbs, nil
}

// NewInstance returns a fresh 0, independent of x.
func (x *Natural) NewInstance() *Natural { return new(Natural) }

// Clone returns a deep copy of x.
func (x *Natural) Clone() *Natural {
	c := new(Natural)
	c.CopyFrom(x)
	return c
}

// Add sets x to x+y.
func (x *Natural) Add(y *Natural) {
	if x == y {
		y = y.Clone()
	}
	x.limbs = addLimbs(x.limbs, y.limbs)
}

// Subtract sets x to x-y. It panics with ErrUnderflow if y > x.
func (x *Natural) Subtract(y *Natural) {
	if x.Compare(y) < 0 {
		breach("subtract", ErrUnderflow)
	}
	if x == y {
		x.Clear()
		return
	}
	x.limbs = subLimbs(x.limbs, y.limbs)
}

// Multiply sets x to x*y.
func (x *Natural) Multiply(y *Natural) {
	x.limbs = mulLimbs(x.limbs, y.limbs)
}

// Divide sets x to floor(x/y) and returns x mod y as a new value. It panics
// with ErrDivideByZero if y is 0.
func (x *Natural) Divide(y *Natural) *Natural {
	if y.IsZero() {
		breach("divide", ErrDivideByZero)
	}
	rem := new(Natural)
	switch {
	case x.Compare(y) < 0:
		rem.TransferFrom(x)
	case len(y.limbs) == 1:
		var r uint32
		x.limbs, r = divSmall(x.limbs, y.limbs[0])
		if r != 0 {
			rem.limbs = []uint32{r}
		}
	default:
		x.limbs, rem.limbs = divLimbs(x.limbs, y.limbs)
	}
	return rem
}

// MultiplyBy10 appends digit to the decimal representation of x, that is it
// sets x to x*10 + digit.
func (x *Natural) MultiplyBy10(digit int) {
	if digit < 0 || digit > 9 {
		breach("multiply by 10", fmt.Errorf("%w: %d", ErrDigit, digit))
	}
	x.limbs = mulAddSmall(x.limbs, 10, uint32(digit))
}

// ToInt returns x as an int32. It panics with ErrOverflow if x exceeds
// math.MaxInt32.
func (x *Natural) ToInt() int32 {
	if x.Compare(maxInt32) > 0 {
		breach("to int", ErrOverflow)
	}
	var v int64
	for i := len(x.limbs) - 1; i >= 0; i-- {
		v = v*base + int64(x.limbs[i])
	}
	return int32(v)
}

// DigitCount returns the number of decimal digits in x. Zero has one digit.
func (x *Natural) DigitCount() int {
	if x.IsZero() {
		return 1
	}
	top := x.limbs[len(x.limbs)-1]
	return (len(x.limbs)-1)*limbWidth + len(strconv.FormatUint(uint64(top), 10))
}

// String returns the decimal representation of x.
func (x *Natural) String() string {
	if x == nil || x.IsZero() {
		return "0"
	}
	var b strings.Builder
	b.Grow(len(x.limbs) * limbWidth)
	b.WriteString(strconv.FormatUint(uint64(x.limbs[len(x.limbs)-1]), 10))
	for i := len(x.limbs) - 2; i >= 0; i-- {
		fmt.Fprintf(&b, "%09d", x.limbs[i])
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (x *Natural) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Natural) UnmarshalText(text []byte) error {
	y, err := Parse(string(text))
	if err != nil {
		return err
	}
	x.TransferFrom(y)
	return nil
}

var maxInt32 = New(math.MaxInt32)
