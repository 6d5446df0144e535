// Package cryptarithm provides the column-wise cryptarithm search engine.
// This file implements the engine itself, the core of the package.
//
// # How the search works
//
// Columns are numbered from the least-significant digit of the longest word
// (units = 1). To extend a consistent assignment into column d the engine:
//
//  1. Introduce: scans the words left to right for a letter at column d that
//     is still unbound. Words too short to reach column d contribute nothing
//     there; they are conceptually zero-padded on the left.
//  2. Branch: for the first such letter, tries every candidate digit in
//     ascending order. Each try binds the letter, recurses on the same
//     column to pick up the remaining letters introduced there, then
//     unbinds. The binding's lifetime is exactly the recursive call.
//  3. Validate: once no unbound letters remain at column d, checks the
//     equation over the low-order d digits. A failed check prunes the whole
//     branch; nothing below this column could repair it.
//  4. Accept or advance: intermediate columns advance to column d+1 on a
//     passing check; the last column is checked at the extended window
//     instead, which is exact, and the sink is invoked on success.
//
// Pruning at the narrowest inconsistent column - rather than generating full
// assignments and testing them - is the engine's entire performance story.
// SEND+MORE=MONEY falls out of a few hundred nodes instead of 10!/2
// permutations.
//
// The engine is single-threaded and recursive; recursion depth is bounded by
// the longest word. The one mutable structure, the Assignment, is shared
// across branches only under bind/unbind scoping, so no branch ever sees a
// sibling's bindings. Cancellation is cooperative and checked between branch
// attempts; cancelling cannot corrupt state, only stop enumeration early.
package cryptarithm

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Solution is one accepted assignment, delivered to the sink together with
// its renderings.
type Solution struct {
	// Assignment maps each letter of the puzzle to its digit. The map is a
	// snapshot owned by the receiver.
	Assignment map[rune]int
	// Expression is the flat substituted equation, e.g. "9567+1085=10652".
	Expression string
	// Layout is the right-aligned multi-line rendering of the equation.
	Layout string
}

// Sink receives each accepted solution, synchronously and in enumeration
// order. Its return value is added to the running total the solve returns;
// a sink that wants every solution counted once returns 1. Returning 0
// accepts the solution without counting it.
type Sink func(Solution) int

// CountOnly is a sink that does nothing but count.
func CountOnly(Solution) int { return 1 }

// Collect returns a sink that appends every solution to dst and counts each
// once.
func Collect(dst *[]Solution) Sink {
	return func(s Solution) int {
		*dst = append(*dst, s)
		return 1
	}
}

// Solver runs the column-wise search over one Puzzle. A Solver is cheap to
// create; configuration is applied through options.
//
// Thread safety: a Solver may be used for one solve at a time. For parallel
// experiments create one Solver per goroutine over the same Puzzle.
type Solver struct {
	puzzle  *Puzzle
	window  int
	logger  *zap.Logger
	monitor *Monitor
}

// SolverOption configures a Solver.
type SolverOption func(*Solver)

// WithLogger attaches a zap logger; the engine traces prunes and accepted
// solutions at Debug level.
func WithLogger(l *zap.Logger) SolverOption {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMonitor attaches a statistics monitor.
func WithMonitor(m *Monitor) SolverOption {
	return func(s *Solver) { s.monitor = m }
}

// WithWindow overrides the extended validation window used by the final
// acceptance check. Widths below the puzzle's default are clamped up to it;
// a narrower final window could let a truncated false equality through.
func WithWindow(w int) SolverOption {
	return func(s *Solver) {
		if w > s.window {
			s.window = w
		}
	}
}

// NewSolver creates a solver for the given puzzle.
func NewSolver(p *Puzzle, opts ...SolverOption) *Solver {
	s := &Solver{
		puzzle: p,
		window: p.Window(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats returns the attached monitor's statistics, or zero stats when no
// monitor is attached.
func (s *Solver) Stats() SearchStats {
	if s.monitor == nil {
		return SearchStats{}
	}
	return s.monitor.Stats()
}

// errStop unwinds the recursion once a solution limit is reached. Never
// escapes the package.
var errStop = errors.New("solution limit reached")

// Solve enumerates every valid assignment, invoking sink once per solution,
// and returns the total the sinks reported. The enumeration order is fixed:
// columns ascend from units, words are scanned left to right, candidate
// digits ascend 0..9. A zero return with a nil error means the puzzle has no
// solutions, which is a normal outcome, not a failure.
func (s *Solver) Solve(ctx context.Context, sink Sink) (int, error) {
	return s.SolveN(ctx, sink, 0)
}

// SolveN is Solve with a cap: enumeration stops after maxSolutions accepted
// assignments. maxSolutions <= 0 means unlimited.
func (s *Solver) SolveN(ctx context.Context, sink Sink, maxSolutions int) (int, error) {
	if s.monitor != nil {
		s.monitor.startSearch()
		defer s.monitor.finishSearch()
	}
	e := &search{
		solver: s,
		assign: NewAssignment(),
		sink:   sink,
		max:    maxSolutions,
	}
	err := e.column(ctx, 1)
	if errors.Is(err, errStop) {
		err = nil
	}
	return e.found, err
}

// Solve is the package-level convenience entry point: it validates the word
// list (all but the last entry are operands, the last is the result), runs
// the column-wise engine with the default extended window, and returns the
// total count of accepted assignments.
func Solve(words []string, operator string, sink Sink) (int, error) {
	op, err := ParseOperator(operator)
	if err != nil {
		return 0, err
	}
	p, err := NewPuzzle(words, op)
	if err != nil {
		return 0, err
	}
	return NewSolver(p).Solve(context.Background(), sink)
}

// search is the per-run state of one solve: the single scoped-mutation
// assignment plus accounting.
type search struct {
	solver *Solver
	assign *Assignment
	sink   Sink
	found  int
	max    int
}

// column extends the assignment at column depth and everything above it.
// Returns nil when the subtree is exhausted normally; errStop propagates a
// solution-limit stop and context errors propagate cancellation.
func (e *search) column(ctx context.Context, depth int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p := e.solver.puzzle

	for _, w := range p.Words {
		if len(w) < depth {
			continue
		}
		r := rune(w[len(w)-depth])
		if e.assign.Bound(r) {
			continue
		}
		// r is newly introduced at this column. Branch over its candidates;
		// the recursive call at the same depth picks up any further letters
		// this column reveals.
		var err error
		p.Candidates(r, e.assign).IterateValues(func(d int) {
			if err != nil {
				return
			}
			e.assign.Bind(r, d)
			if m := e.solver.monitor; m != nil {
				m.recordNode(depth)
			}
			err = e.column(ctx, depth)
			e.assign.Unbind(r)
		})
		if err == nil {
			if m := e.solver.monitor; m != nil {
				m.recordBacktrack()
			}
		}
		return err
	}

	// Every letter visible at this column is bound. Intermediate columns are
	// checked over their own width; the last column is checked over the
	// extended window, making the acceptance test exact.
	window := depth
	final := depth == p.Columns()
	if final {
		window = e.solver.window
	}
	ok, err := p.checkWindow(e.assign, window)
	if err != nil {
		return err
	}
	if !ok {
		if m := e.solver.monitor; m != nil {
			m.recordPrune()
		}
		if ce := e.solver.logger.Check(zap.DebugLevel, "column check failed"); ce != nil {
			ce.Write(zap.Int("column", depth), zap.Int("window", window),
				zap.String("partial", Substitute(p.Expression(), e.assign)))
		}
		return nil
	}
	if !final {
		return e.column(ctx, depth+1)
	}
	return e.accept()
}

// accept reports a complete, exact assignment to the sink.
func (e *search) accept() error {
	p := e.solver.puzzle
	sol := Solution{
		Assignment: e.assign.Map(),
		Expression: Substitute(p.Expression(), e.assign),
		Layout:     PrettyPrint(p.Words, p.Operator, e.assign),
	}
	if m := e.solver.monitor; m != nil {
		m.recordSolution()
	}
	if ce := e.solver.logger.Check(zap.DebugLevel, "solution accepted"); ce != nil {
		ce.Write(zap.String("expression", sol.Expression))
	}
	e.found += e.sink(sol)
	if e.max > 0 && e.found >= e.max {
		return errStop
	}
	return nil
}
