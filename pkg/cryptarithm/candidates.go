package cryptarithm

// candidates.go: candidate digit generation for a letter under a partial
// assignment. Pure with respect to its inputs; the search engine calls this
// every time it introduces a letter at a column.

// Candidates returns the digits still usable for letter r under a: the full
// digit set minus every digit already bound to another letter, minus zero
// when r opens any word in the puzzle (a number has no leading zero). The
// rule is applied uniformly to first characters, so the sole letter of a
// one-letter word is also barred from zero.
func (p *Puzzle) Candidates(r rune, a *Assignment) DigitSet {
	s := AllDigits().Without(a.Used())
	if p.leading.has(r) {
		s = s.Remove(0)
	}
	return s
}
