package natural

// Limb-level helpers. All slices are little-endian base 10^9.

const (
	base      = 1_000_000_000
	limbWidth = 9
)

// trim drops high zero limbs.
func trim(z []uint32) []uint32 {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

func cmpLimbs(x, y []uint32) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// addLimbs returns x+y, reusing x's backing array when it has room.
func addLimbs(x, y []uint32) []uint32 {
	if len(x) < len(y) {
		x = append(x, make([]uint32, len(y)-len(x))...)
	}
	var carry uint32
	for i := range x {
		s := x[i] + carry
		if i < len(y) {
			s += y[i]
		}
		if s >= base {
			s -= base
			carry = 1
		} else {
			carry = 0
		}
		x[i] = s
		if carry == 0 && i >= len(y) {
			break
		}
	}
	if carry != 0 {
		x = append(x, carry)
	}
	return x
}

// subLimbs computes x-y in place. x must not be smaller than y.
func subLimbs(x, y []uint32) []uint32 {
	var borrow uint32
	for i := range x {
		sub := borrow
		if i < len(y) {
			sub += y[i]
		} else if borrow == 0 {
			break
		}
		if x[i] < sub {
			x[i] = x[i] + base - sub
			borrow = 1
		} else {
			x[i] -= sub
			borrow = 0
		}
	}
	return trim(x)
}

func mulLimbs(x, y []uint32) []uint32 {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	z := make([]uint32, len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var carry uint64
		for j, yj := range y {
			t := uint64(xi)*uint64(yj) + uint64(z[i+j]) + carry
			z[i+j] = uint32(t % base)
			carry = t / base
		}
		k := i + len(y)
		for carry != 0 {
			t := uint64(z[k]) + carry
			z[k] = uint32(t % base)
			carry = t / base
			k++
		}
	}
	return trim(z)
}

// mulAddSmall returns x*m + a written over x's backing array when possible.
func mulAddSmall(x []uint32, m, a uint32) []uint32 {
	carry := uint64(a)
	for i := range x {
		t := uint64(x[i])*uint64(m) + carry
		x[i] = uint32(t % base)
		carry = t / base
	}
	for carry != 0 {
		x = append(x, uint32(carry%base))
		carry /= base
	}
	return trim(x)
}

// divSmall divides x by d in place and returns the remainder.
func divSmall(x []uint32, d uint32) ([]uint32, uint32) {
	var r uint64
	for i := len(x) - 1; i >= 0; i-- {
		t := r*base + uint64(x[i])
		x[i] = uint32(t / uint64(d))
		r = t % uint64(d)
	}
	return trim(x), uint32(r)
}

// divLimbs returns floor(x/y) and x mod y for len(y) >= 2. Each quotient limb
// is found by binary search against the running remainder.
func divLimbs(x, y []uint32) (q, r []uint32) {
	q = make([]uint32, len(x))
	prod := make([]uint32, 0, len(y)+1)
	for i := len(x) - 1; i >= 0; i-- {
		// r = r*base + x[i]
		r = append(r, 0)
		copy(r[1:], r[:len(r)-1])
		r[0] = x[i]
		r = trim(r)
		if cmpLimbs(r, y) < 0 {
			continue
		}
		lo, hi := uint32(1), uint32(base-1)
		for lo < hi {
			mid := lo + (hi-lo+1)/2
			prod = mulAddSmall(append(prod[:0], y...), mid, 0)
			if cmpLimbs(prod, r) <= 0 {
				lo = mid
			} else {
				hi = mid - 1
			}
		}
		prod = mulAddSmall(append(prod[:0], y...), lo, 0)
		r = subLimbs(r, prod)
		q[i] = lo
	}
	return trim(q), r
}
