// Package cryptarithm solves cryptarithm (alphametic) puzzles: equations in
// which every distinct letter stands for a unique decimal digit and the goal
// is to enumerate the digit assignments that make the equation true, e.g.
// SEND + MORE = MONEY.
//
// # Architecture Overview
//
// The solver exploits the structure of positional arithmetic instead of
// enumerating raw digit permutations:
//
//	Puzzle (immutable during solving):
//	  - Operand words, result word, operator
//	  - Derived letter metadata (leading letters, distinct letter count)
//	  - Validation windows
//
//	Search (mutable, strictly scoped):
//	  - A single Assignment mutated with bind/unbind pairs
//	  - Column-by-column advance from the units column upward
//	  - Truncated arithmetic checks prune a branch at the lowest
//	    inconsistent column
//
// Processing least-significant column first means a wrong digit choice is
// rejected as soon as the lowest column it breaks is reached, long before a
// full assignment exists. The final acceptance check widens the validation
// window beyond any word so it degenerates into an exact, untruncated
// equality test.
//
// A permutation-based fallback for free-form equation strings lives in
// brute.go; it is dramatically slower and exists as a universal oracle, not
// as the primary engine.
package cryptarithm

import (
	"fmt"
	"math/big"
	"strings"
)

// Operator selects how operand words are combined.
type Operator rune

const (
	// OpAdd sums the operand words.
	OpAdd Operator = '+'
	// OpMultiply multiplies the operand words.
	OpMultiply Operator = '*'
)

// ParseOperator converts an operator token ("+" or "*") to an Operator.
// Anything else fails with ErrUnsupportedOperator.
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "+":
		return OpAdd, nil
	case "*":
		return OpMultiply, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedOperator, s)
	}
}

func (op Operator) String() string { return string(rune(op)) }

func (op Operator) valid() bool { return op == OpAdd || op == OpMultiply }

// Puzzle is an immutable cryptarithm equation: two or more operand words
// combined by a single operator and compared against one result word. The
// last entry of Words is the result; every entry before it is an operand.
//
// A Puzzle is fixed for the lifetime of a search. All per-search state lives
// in the Assignment, never in the Puzzle, so a single Puzzle may back any
// number of concurrent solver runs.
type Puzzle struct {
	// Words holds the uppercase operand words followed by the result word.
	Words []string
	// Operator combines the operands.
	Operator Operator

	letters []rune     // distinct letters in discovery order
	leading letterSet  // letters that begin any word
	maxLen  int        // length of the longest word, in digits
	window  int        // default extended validation window
	pow10   []*big.Int // memoized 10^k moduli, index k
}

// letterSet is a bitset over 'A'..'Z'.
type letterSet uint32

func (s letterSet) has(r rune) bool { return s&(1<<uint(r-'A')) != 0 }
func (s *letterSet) add(r rune)     { *s |= 1 << uint(r-'A') }

// NewPuzzle validates the word list and builds a Puzzle. The words are
// case-normalized to uppercase. Validation failures return an error wrapping
// ErrInvalidPuzzle (or ErrUnsupportedOperator for a bad operator); the checks
// are:
//   - at least three words (two operands plus a result)
//   - a non-empty result word
//   - only letters A-Z in every word
//   - at most ten distinct letters overall, else no injective mapping
//     onto the decimal digits can exist
func NewPuzzle(words []string, op Operator) (*Puzzle, error) {
	if !op.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedOperator, string(rune(op)))
	}
	if len(words) < 3 {
		return nil, fmt.Errorf("%w: need at least 2 operands and a result, got %d words", ErrInvalidPuzzle, len(words))
	}

	p := &Puzzle{
		Words:    make([]string, len(words)),
		Operator: op,
	}
	for i, w := range words {
		p.Words[i] = strings.ToUpper(w)
	}
	if p.Result() == "" {
		return nil, fmt.Errorf("%w: result word is empty", ErrInvalidPuzzle)
	}

	var seen letterSet
	for _, w := range p.Words {
		if w == "" {
			return nil, fmt.Errorf("%w: empty word in %q", ErrInvalidPuzzle, p.Words)
		}
		for _, r := range w {
			if r < 'A' || r > 'Z' {
				return nil, fmt.Errorf("%w: word %q contains non-letter %q", ErrInvalidPuzzle, w, r)
			}
			if !seen.has(r) {
				seen.add(r)
				p.letters = append(p.letters, r)
			}
		}
		if len(w) > p.maxLen {
			p.maxLen = len(w)
		}
		// The rule is per first character, so a one-letter word's sole
		// letter is still barred from zero.
		p.leading.add(rune(w[0]))
	}
	if len(p.letters) > 10 {
		return nil, fmt.Errorf("%w: %d distinct letters, at most 10 can map to digits", ErrInvalidPuzzle, len(p.letters))
	}

	// The extended window is wide enough that reducing modulo 10^window can
	// never mask a real inequality, even for products of maximal operands,
	// turning the top-level check into exact equality.
	p.window = p.maxLen * len(p.Words)

	// Precompute the 10^k moduli up front; the Puzzle stays read-only during
	// search, so one Puzzle can back concurrent solver runs.
	ten := big.NewInt(10)
	p.pow10 = make([]*big.Int, p.window+1)
	p.pow10[0] = big.NewInt(1)
	for k := 1; k <= p.window; k++ {
		p.pow10[k] = new(big.Int).Mul(p.pow10[k-1], ten)
	}
	return p, nil
}

// Operands returns the operand words, excluding the result.
func (p *Puzzle) Operands() []string { return p.Words[:len(p.Words)-1] }

// Result returns the result word.
func (p *Puzzle) Result() string { return p.Words[len(p.Words)-1] }

// Letters returns the distinct letters of the puzzle in the order they first
// appear reading the word list left to right.
func (p *Puzzle) Letters() []rune {
	out := make([]rune, len(p.letters))
	copy(out, p.letters)
	return out
}

// Columns returns the number of digit columns the search walks, which is the
// length of the longest word.
func (p *Puzzle) Columns() int { return p.maxLen }

// Window returns the default extended validation window used by the final
// acceptance check: max word length times the number of words.
func (p *Puzzle) Window() int { return p.window }

// Expression renders the unsolved equation, e.g. "SEND+MORE=MONEY".
func (p *Puzzle) Expression() string {
	var b strings.Builder
	for i, w := range p.Operands() {
		if i > 0 {
			b.WriteRune(rune(p.Operator))
		}
		b.WriteString(w)
	}
	b.WriteByte('=')
	b.WriteString(p.Result())
	return b.String()
}
