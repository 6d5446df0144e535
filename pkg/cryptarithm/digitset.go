package cryptarithm

// digitset.go: a bitset over the decimal digits 0..9. The ten digits fit in
// one machine word, so set operations are single instructions and candidate
// enumeration is branch-cheap.

import "math/bits"

// DigitSet is an immutable set of decimal digits. The zero value is the
// empty set; operations return new sets rather than mutating in place.
type DigitSet uint16

const allDigitsMask DigitSet = 0x3FF

// AllDigits returns the full set {0..9}.
func AllDigits() DigitSet { return allDigitsMask }

// Has reports whether d is in the set. Digits outside [0,9] are never
// members.
func (s DigitSet) Has(d int) bool {
	if d < 0 || d > 9 {
		return false
	}
	return s&(1<<uint(d)) != 0
}

// Add returns a new set with d included. Out-of-range digits are ignored.
func (s DigitSet) Add(d int) DigitSet {
	if d < 0 || d > 9 {
		return s
	}
	return s | 1<<uint(d)
}

// Remove returns a new set with d excluded.
func (s DigitSet) Remove(d int) DigitSet {
	if d < 0 || d > 9 {
		return s
	}
	return s &^ (1 << uint(d))
}

// Without returns the set difference s \ other.
func (s DigitSet) Without(other DigitSet) DigitSet {
	return s &^ other
}

// Count returns the number of digits in the set.
func (s DigitSet) Count() int {
	return bits.OnesCount16(uint16(s))
}

// IsEmpty reports whether the set has no members.
func (s DigitSet) IsEmpty() bool { return s == 0 }

// IterateValues calls f for each digit in the set in ascending order,
// matching the solver's required branch order.
func (s DigitSet) IterateValues(f func(d int)) {
	for v := uint16(s); v != 0; v &= v - 1 {
		f(bits.TrailingZeros16(v))
	}
}

// Values returns the digits in ascending order.
func (s DigitSet) Values() []int {
	out := make([]int, 0, s.Count())
	s.IterateValues(func(d int) { out = append(out, d) })
	return out
}
