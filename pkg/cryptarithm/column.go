package cryptarithm

// column.go: windowed arithmetic validation. A window of width w checks the
// equation over the low-order w digits only, i.e. modulo 10^w. Intermediate
// search columns use w equal to the current column depth, which is cheap and
// prunes early; the final acceptance check uses the puzzle's extended window,
// wide enough that the modular reduction cannot hide a real inequality, so
// it is an exact equality test.
//
// Windows up to 18 digits fit 64-bit arithmetic (with a 128-bit intermediate
// product for multiplication) and take the fast path; wider windows fall
// back to math/big. The corpus of solvers this follows reaches for wide
// arithmetic in the same place.

import (
	"fmt"
	"math/big"
	"math/bits"
)

// uint64Window is the widest window whose modulus 10^w fits uint64.
const uint64Window = 18

var pow10 = [uint64Window + 1]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000,
	1000000000, 10000000000, 100000000000, 1000000000000, 10000000000000,
	100000000000000, 1000000000000000, 10000000000000000, 100000000000000000,
	1000000000000000000,
}

// checkWindow reports whether a satisfies the puzzle's arithmetic relation
// over the low-order window digits. Letters that fall inside the window are
// bound by the time the engine calls this; unexpected unbound letters are
// treated as digit zero, which only ever happens through direct misuse.
func (p *Puzzle) checkWindow(a *Assignment, window int) (bool, error) {
	if !p.Operator.valid() {
		return false, fmt.Errorf("%w: %q", ErrUnsupportedOperator, string(rune(p.Operator)))
	}
	if window <= uint64Window {
		return p.checkWindow64(a, window), nil
	}
	return p.checkWindowBig(a, window), nil
}

func (p *Puzzle) checkWindow64(a *Assignment, window int) bool {
	mod := pow10[window]
	var acc uint64
	if p.Operator == OpAdd {
		for _, w := range p.Operands() {
			// Both terms stay below 10^18, so the sum cannot wrap.
			acc = (acc + windowValue64(w, a, window)) % mod
		}
	} else {
		acc = 1 % mod
		for _, w := range p.Operands() {
			acc = mulmod(acc, windowValue64(w, a, window)%mod, mod)
		}
	}
	return acc == windowValue64(p.Result(), a, window)%mod
}

// windowValue64 returns the numeric value of the trailing window characters
// of word (the whole word when shorter - words are conceptually zero-padded
// on the left).
func windowValue64(word string, a *Assignment, window int) uint64 {
	start := 0
	if len(word) > window {
		start = len(word) - window
	}
	var v uint64
	for _, r := range word[start:] {
		d, _ := a.Digit(r)
		v = v*10 + uint64(d)
	}
	return v
}

// mulmod computes x*y mod m through a 128-bit intermediate product.
func mulmod(x, y, m uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	return bits.Rem64(hi, lo, m)
}

func (p *Puzzle) checkWindowBig(a *Assignment, window int) bool {
	mod := p.modPow10(window)

	acc := new(big.Int)
	tmp := new(big.Int)
	if p.Operator == OpAdd {
		for _, w := range p.Operands() {
			acc.Add(acc, windowValueBig(tmp, w, a, window))
		}
	} else {
		acc.SetInt64(1)
		for _, w := range p.Operands() {
			acc.Mul(acc, windowValueBig(tmp, w, a, window))
			acc.Mod(acc, mod)
		}
	}
	acc.Mod(acc, mod)

	want := windowValueBig(tmp, p.Result(), a, window)
	want.Mod(want, mod)
	return acc.Cmp(want) == 0
}

// windowValueBig is windowValue64 for windows beyond 64-bit range; it writes
// the value into dst and returns dst.
func windowValueBig(dst *big.Int, word string, a *Assignment, window int) *big.Int {
	start := 0
	if len(word) > window {
		start = len(word) - window
	}
	dst.SetInt64(0)
	for _, r := range word[start:] {
		d, _ := a.Digit(r)
		dst.Mul(dst, bigTen)
		dst.Add(dst, bigDigits[d])
	}
	return dst
}

// modPow10 returns 10^k, from the puzzle's precomputed table when k is
// within the extended window.
func (p *Puzzle) modPow10(k int) *big.Int {
	if k >= 0 && k < len(p.pow10) {
		return p.pow10[k]
	}
	return new(big.Int).Exp(bigTen, big.NewInt(int64(k)), nil)
}

var (
	bigTen    = big.NewInt(10)
	bigDigits = [10]*big.Int{
		big.NewInt(0), big.NewInt(1), big.NewInt(2), big.NewInt(3),
		big.NewInt(4), big.NewInt(5), big.NewInt(6), big.NewInt(7),
		big.NewInt(8), big.NewInt(9),
	}
)

// CheckEqual reports whether a makes the equation exactly true, with no
// modular truncation. It is the public round-trip check used by callers that
// want to verify a reported solution independently of the search.
func (p *Puzzle) CheckEqual(a *Assignment) (bool, error) {
	return p.checkWindow(a, p.window)
}
