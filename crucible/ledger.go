package crucible

// ledgerKey identifies a dominance class. run is 0 for states that may
// already turn (Run >= MinRun); states still short of MinRun cannot be
// dominated by a smaller run, so each of those runs gets its own class.
type ledgerKey struct {
	cell int
	dir  Direction
	run  int
}

// ledger maps (cell, direction) to the smallest run length settled so far.
// Because states are settled in non-decreasing cost order, an entry with a
// run <= r means a state at least as flexible as r was reached no later and
// no dearer, so r can be dropped.
type ledger struct {
	minRun int
	runs   map[ledgerKey]int
}

func newLedger(minRun, sizeHint int) *ledger {
	return &ledger{
		minRun: minRun,
		runs:   make(map[ledgerKey]int, sizeHint),
	}
}

// settle records s at cell index idx and reports true, or reports false
// without touching the ledger when s is dominated.
func (l *ledger) settle(idx int, s State) bool {
	key := ledgerKey{cell: idx, dir: s.Dir}
	if s.Run < l.minRun {
		key.run = s.Run
	}
	if prev, ok := l.runs[key]; ok && prev <= s.Run {
		return false
	}
	l.runs[key] = s.Run

	return true
}

// len returns the number of dominance classes recorded.
func (l *ledger) len() int {
	return len(l.runs)
}
