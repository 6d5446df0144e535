package cryptarithm

// format.go: rendering of assignments back onto the puzzle text.

import "strings"

// Substitute replaces every occurrence of a bound letter in s with its
// digit. Unbound letters are left untouched, which makes partial renderings
// useful while debugging a search. Applying Substitute to an already fully
// substituted string is a no-op.
func Substitute(s string, a *Assignment) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if d, ok := a.Digit(r); ok {
			b.WriteByte(byte('0' + d))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PrettyPrint renders the substituted equation as a right-aligned column
// addition/multiplication block:
//
//	   9567
//	+  1085
//	-------
//	  10652
//
// Operands are stacked, the last operand line carries the operator symbol,
// the separator is a run of dashes, and every line is padded with leading
// spaces to the width of the widest rendered word plus two.
func PrettyPrint(words []string, op Operator, a *Assignment) string {
	rendered := make([]string, len(words))
	width := 0
	for i, w := range words {
		rendered[i] = Substitute(strings.ToUpper(w), a)
		if len(rendered[i]) > width {
			width = len(rendered[i])
		}
	}
	width += 2

	var b strings.Builder
	last := len(rendered) - 1
	for i, r := range rendered[:last] {
		if i == last-1 {
			// Final operand: operator on the left, value right-aligned.
			b.WriteString(op.String())
			b.WriteString(strings.Repeat(" ", width-1-len(r)))
		} else {
			b.WriteString(strings.Repeat(" ", width-len(r)))
		}
		b.WriteString(r)
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat("-", width))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", width-len(rendered[last])))
	b.WriteString(rendered[last])
	return b.String()
}
