package cryptarithm

// monitor.go: monitoring and statistics for the column-wise search.

import (
	"fmt"
	"sync"
	"time"
)

// SearchStats holds statistics about one solving run.
type SearchStats struct {
	NodesExplored  int           // digit bindings attempted
	Backtracks     int           // bindings undone after exhausting a branch
	ColumnPrunes   int           // branches rejected by a truncated column check
	SolutionsFound int           // assignments accepted by the final check
	MaxDepth       int           // deepest column reached (1 = units)
	SearchTime     time.Duration // wall time from first node to FinishSearch
}

// Monitor collects SearchStats during a solve. A Monitor is optional; the
// engine runs without one. Safe for use from a single search at a time and
// for concurrent reads via Stats.
type Monitor struct {
	mu        sync.Mutex
	stats     SearchStats
	startTime time.Time
}

// NewMonitor creates a monitor ready to attach to a Solver. The SearchTime
// clock starts when a solve begins, not here, so a monitor may be built well
// ahead of its run.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// Stats returns a copy of the current statistics.
func (m *Monitor) Stats() SearchStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

func (m *Monitor) recordNode(depth int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.NodesExplored++
	if depth > m.stats.MaxDepth {
		m.stats.MaxDepth = depth
	}
}

func (m *Monitor) recordBacktrack() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.Backtracks++
}

func (m *Monitor) recordPrune() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.ColumnPrunes++
}

func (m *Monitor) recordSolution() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.SolutionsFound++
}

func (m *Monitor) startSearch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startTime = time.Now()
}

func (m *Monitor) finishSearch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.startTime.IsZero() {
		m.stats.SearchTime = time.Since(m.startTime)
	}
}

// String renders a compact one-line summary.
func (s SearchStats) String() string {
	return fmt.Sprintf("nodes=%d backtracks=%d prunes=%d solutions=%d maxDepth=%d time=%s",
		s.NodesExplored, s.Backtracks, s.ColumnPrunes, s.SolutionsFound, s.MaxDepth, s.SearchTime)
}
