package cryptarithm

// brute.go: the exhaustive fallback solver. It accepts a free-form equation
// string, parses it into the fixed "operand op operand ... = result" shape,
// and tries every injective digit assignment, testing each with exact
// arithmetic. No generic expression evaluator is involved anywhere; the
// equation becomes a typed Puzzle and is evaluated directly.
//
// This is combinatorially far slower than the column-wise engine (10 P n
// assignments for n letters versus early column pruning) and exists as a
// universal cross-check oracle. For puzzles the column engine handles, both
// enumerate exactly the same assignment set.

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/gitrdm/cryptarithm/internal/parallel"
)

// ParseEquation parses a free-form equation string such as
// "SEND+MORE=MONEY" or "AB*CD*EF=GHIJ" into a Puzzle. The string must
// contain exactly one '=', and the left side must join two or more operands
// with a single repeated operator. Structural validation is the same as
// NewPuzzle's.
func ParseEquation(s string) (*Puzzle, error) {
	s = strings.ToUpper(strings.ReplaceAll(s, " ", ""))
	lhs, rhs, found := strings.Cut(s, "=")
	if !found || strings.Contains(rhs, "=") {
		return nil, fmt.Errorf("%w: equation needs exactly one '='", ErrInvalidPuzzle)
	}

	var op Operator
	switch {
	case strings.ContainsRune(lhs, '+') && strings.ContainsRune(lhs, '*'):
		return nil, fmt.Errorf("%w: mixed operators in %q", ErrInvalidPuzzle, lhs)
	case strings.ContainsRune(lhs, '+'):
		op = OpAdd
	case strings.ContainsRune(lhs, '*'):
		op = OpMultiply
	default:
		return nil, fmt.Errorf("%w: no operator in %q", ErrInvalidPuzzle, lhs)
	}

	operands := strings.Split(lhs, op.String())
	for _, w := range operands {
		if w == "" {
			return nil, fmt.Errorf("%w: empty operand in %q", ErrInvalidPuzzle, lhs)
		}
	}
	return NewPuzzle(append(operands, rhs), op)
}

// SolveEquation parses the equation string and runs the exhaustive
// permutation search, invoking sink for every assignment that makes the
// equation exactly true. It returns the total the sinks reported.
func SolveEquation(ctx context.Context, equation string, sink Sink) (int, error) {
	p, err := ParseEquation(equation)
	if err != nil {
		return 0, err
	}
	return p.BruteForce(ctx, sink)
}

// BruteForce enumerates every injective digit assignment over the puzzle's
// letters (respecting the no-leading-zero rule) and reports each one that
// satisfies the equation exactly. Assignments are tried in lexicographic
// digit order over the letters in discovery order, so the enumeration is
// deterministic.
func (p *Puzzle) BruteForce(ctx context.Context, sink Sink) (int, error) {
	b := &brute{puzzle: p, assign: NewAssignment(), sink: sink}
	if err := b.permute(ctx, 0); err != nil {
		return b.found, err
	}
	return b.found, nil
}

// BruteForceParallel is BruteForce with the permutation space partitioned by
// the first letter's digit across a worker pool. Solutions are funneled to a
// single collector goroutine, so the sink is still invoked serially - but in
// no particular order across partitions. workers <= 0 uses one worker per
// CPU.
func (p *Puzzle) BruteForceParallel(ctx context.Context, workers int, sink Sink) (int, error) {
	if len(p.letters) == 0 {
		return p.BruteForce(ctx, sink)
	}
	first := p.letters[0]
	a := NewAssignment()
	digits := p.Candidates(first, a).Values()

	pool := parallel.NewWorkerPool(workers)
	defer pool.Shutdown()

	results := make(chan Solution, len(digits))
	errs := make(chan error, len(digits))
	go func() {
		for _, d := range digits {
			d := d
			task := func() {
				pa := NewAssignment()
				pa.Bind(first, d)
				b := &brute{puzzle: p, assign: pa, sink: func(s Solution) int {
					results <- s
					return 1
				}}
				errs <- b.permute(ctx, 1)
			}
			if err := pool.Submit(ctx, task); err != nil {
				errs <- err
			}
		}
	}()

	// Collect until every partition has reported in. The sink runs only
	// here, one solution at a time.
	total := 0
	var firstErr error
	for pending := len(digits); pending > 0; {
		select {
		case s := <-results:
			total += sink(s)
		case err := <-errs:
			pending--
			if err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	// Drain solutions that raced with the last partition report.
	for {
		select {
		case s := <-results:
			total += sink(s)
		default:
			return total, firstErr
		}
	}
}

// brute is the state of one exhaustive enumeration.
type brute struct {
	puzzle *Puzzle
	assign *Assignment
	sink   Sink
	found  int
}

// permute binds the letters from index onward, in discovery order, to every
// combination of free digits, testing complete assignments exactly.
func (b *brute) permute(ctx context.Context, index int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p := b.puzzle
	if index == len(p.letters) {
		ok, err := p.CheckEqual(b.assign)
		if err != nil || !ok {
			return err
		}
		b.found += b.sink(Solution{
			Assignment: b.assign.Map(),
			Expression: Substitute(p.Expression(), b.assign),
			Layout:     PrettyPrint(p.Words, p.Operator, b.assign),
		})
		return nil
	}

	r := p.letters[index]
	var err error
	p.Candidates(r, b.assign).IterateValues(func(d int) {
		if err != nil {
			return
		}
		b.assign.Bind(r, d)
		err = b.permute(ctx, index+1)
		b.assign.Unbind(r)
	})
	return err
}

// SolutionKey returns a stable identity for a solution's assignment, useful
// for comparing solution sets from different engines.
func SolutionKey(s Solution) string {
	letters := make([]rune, 0, len(s.Assignment))
	for r := range s.Assignment {
		letters = append(letters, r)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	var bld strings.Builder
	for _, r := range letters {
		fmt.Fprintf(&bld, "%c=%d;", r, s.Assignment[r])
	}
	return bld.String()
}
