package natural

// Power sets x to x**p. x**0 is 1 for every x, including 0.
// The result is not bounded: time and memory grow with the digit count of
// x**p, roughly p times that of x, and the computation cannot be cancelled.
func (x *Natural) Power(p int) {
	if p < 0 {
		breach("power", ErrNegativeExponent)
	}
	if p == 0 {
		x.limbs = append(x.limbs[:0], 1)
		return
	}
	if x.IsZero() || x.isOne() {
		return
	}
	// Right-to-left binary exponentiation.
	sq := x.Clone()
	x.limbs = append(x.limbs[:0], 1)
	for {
		if p&1 == 1 {
			x.Multiply(sq)
		}
		p >>= 1
		if p == 0 {
			return
		}
		sq.limbs = mulLimbs(sq.limbs, sq.limbs)
	}
}

// Root sets x to the greatest r with r**index <= x. It panics with
// ErrRootIndex if index < 2.
func (x *Natural) Root(index int) {
	if index < 2 {
		breach("root", ErrRootIndex)
	}
	if x.IsZero() || x.isOne() {
		return
	}
	d := x.DigitCount()
	// 2**index >= 16**d > x, so the root is 1.
	if index >= 4*d {
		x.limbs = append(x.limbs[:0], 1)
		return
	}

	// Invariant: lo**index <= x < hi**index.
	lo := New(1)
	hi := New(1)
	for range (d + index - 1) / index {
		hi.MultiplyBy10(0)
	}
	one := New(1)
	mid := new(Natural)
	gap := new(Natural)
	probe := new(Natural)
	for {
		gap.CopyFrom(hi)
		gap.Subtract(lo)
		if gap.Compare(one) <= 0 {
			break
		}
		mid.CopyFrom(lo)
		mid.Add(hi)
		mid.limbs, _ = divSmall(mid.limbs, 2)

		probe.CopyFrom(mid)
		probe.Power(index)
		if probe.Compare(x) <= 0 {
			lo.CopyFrom(mid)
		} else {
			hi.CopyFrom(mid)
		}
	}
	x.TransferFrom(lo)
}

func (x *Natural) isOne() bool { return len(x.limbs) == 1 && x.limbs[0] == 1 }
