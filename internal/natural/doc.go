// Package natural implements arbitrary-precision natural numbers.
//
// A Natural holds a non-negative integer of unbounded magnitude. Values are
// mutated in place by the arithmetic methods, the way a calculator register
// is: x.Add(y) sets x to x+y and leaves y alone.
//
// # Representation
//
// Digits are stored least-significant first as base 10^9 limbs in a single
// growable []uint32. Zero is the empty slice, so the zero value of Natural is
// ready to use and represents 0. Every mutating method trims high zero limbs
// before returning, which keeps the representation of each value unique and
// lets Compare work on limb counts first.
//
// # Ownership
//
//   - CopyFrom makes a deep copy; the source is untouched.
//   - TransferFrom moves the source's limbs into the receiver and leaves the
//     source at 0. No copy is made.
//   - Clone and NewInstance return values the caller owns outright.
//
// # Contract breaches
//
// Some methods have preconditions the caller is expected to check first:
// Subtract needs the receiver to be at least the operand, Divide needs a
// non-zero divisor, Root needs an index of at least 2, ToInt needs the value
// to fit in an int32, MultiplyBy10 needs a decimal digit. Violating one panics
// with a *ContractError; recover it and use errors.Is against the Err*
// sentinels to tell them apart.
package natural
