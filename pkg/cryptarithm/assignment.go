package cryptarithm

// assignment.go: the partial injective letter-to-digit mapping mutated during
// search. There is exactly one Assignment per search; branches isolate
// themselves through strict bind/unbind scoping (bind, recurse, unbind), so
// sibling branches never observe each other's in-flight bindings. That
// discipline is the whole concurrency story for the sequential engine and
// must be preserved by anything that drives an Assignment.

// Assignment maps letters 'A'..'Z' to decimal digits, injectively: no two
// letters ever share a digit. A zero-value Assignment is not usable; create
// one with NewAssignment.
type Assignment struct {
	digits [26]int8 // digit per letter, -1 when unbound
	used   DigitSet // digits currently bound to some letter
	bound  int
}

// NewAssignment returns an empty assignment with every letter unbound.
func NewAssignment() *Assignment {
	a := &Assignment{}
	for i := range a.digits {
		a.digits[i] = -1
	}
	return a
}

// FromMap builds an assignment from a letter-digit map, e.g. a solution
// previously reported through a sink. Mappings that break injectivity or
// fall outside 'A'..'Z' / 0..9 are silently dropped.
func FromMap(m map[rune]int) *Assignment {
	a := NewAssignment()
	for r, d := range m {
		if r < 'A' || r > 'Z' || d < 0 || d > 9 || a.used.Has(d) {
			continue
		}
		a.Bind(r, d)
	}
	return a
}

// Digit returns the digit bound to r and whether r is bound at all.
func (a *Assignment) Digit(r rune) (int, bool) {
	if r < 'A' || r > 'Z' {
		return 0, false
	}
	d := a.digits[r-'A']
	if d < 0 {
		return 0, false
	}
	return int(d), true
}

// Bound reports whether r currently has a digit.
func (a *Assignment) Bound(r rune) bool {
	_, ok := a.Digit(r)
	return ok
}

// Used returns the set of digits currently taken by some letter.
func (a *Assignment) Used() DigitSet { return a.used }

// Len returns the number of bound letters.
func (a *Assignment) Len() int { return a.bound }

// Bind records r -> d. The caller guarantees r is unbound and d is free;
// the candidate generator enforces both before a bind is attempted.
func (a *Assignment) Bind(r rune, d int) {
	a.digits[r-'A'] = int8(d)
	a.used = a.used.Add(d)
	a.bound++
}

// Unbind removes the binding for r, releasing its digit. Must mirror a
// prior Bind of the same letter.
func (a *Assignment) Unbind(r rune) {
	d := a.digits[r-'A']
	if d < 0 {
		return
	}
	a.digits[r-'A'] = -1
	a.used = a.used.Remove(int(d))
	a.bound--
}

// Map returns a snapshot of the current bindings. The snapshot does not
// alias the assignment and stays valid across later bind/unbind activity,
// which is what makes it safe to hand to a sink.
func (a *Assignment) Map() map[rune]int {
	m := make(map[rune]int, a.bound)
	for i, d := range a.digits {
		if d >= 0 {
			m[rune('A'+i)] = int(d)
		}
	}
	return m
}
