package cryptarithm

// errors.go: sentinel errors for the two failure modes the solver has.
// Finding zero solutions is not an error; it is a successful run that
// returns a zero count.

import "errors"

var (
	// ErrInvalidPuzzle reports a structurally invalid word list: fewer than
	// three words, an empty result word, non-letter characters, or more than
	// ten distinct letters. The search never starts on an invalid puzzle.
	ErrInvalidPuzzle = errors.New("invalid puzzle")

	// ErrUnsupportedOperator reports an operator other than addition or
	// multiplication.
	ErrUnsupportedOperator = errors.New("unsupported operator")
)
