// Package crucible implements the run-length constrained Dijkstra search.
//
// Notes on implementation choices:
//
//   - The goal test happens when a state is popped, not when it is pushed, so
//     the first goal state out of the heap carries the minimal cost.
//   - We use a “lazy” decrease-key strategy: duplicates are pushed freely and
//     the ledger discards the ones that are dominated when popped.
//   - The witness trail is only kept when WithReturnPath is given.
package crucible

import (
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// ShortestConstrainedPath returns the minimal total weight of a route from
// the top-left to the bottom-right cell of g that obeys mode.
//
// It is Search with WithMode(mode) and every other option at its default.
// Errors: ErrNilGrid, ErrOptionViolation (wrapping ErrInvalidMode), ErrNoPath.
func ShortestConstrainedPath(g *gridgraph.GridGraph, mode Mode) (int64, error) {
	res, err := Search(g, WithMode(mode))
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// Search runs the constrained Dijkstra search on g from g.Start() to g.Goal().
//
// Preconditions and validation (in order):
//  1. Every Option must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//
// Algorithm:
//  1. Push the start state ((0,0), None, 0) at cost 0.
//  2. Pop the cheapest state; if it is an accepted goal state, stop.
//  3. If the ledger says it is dominated, drop it.
//  4. Otherwise settle it and push every successor at popped cost + step cost.
//  5. If the frontier empties, fail with ErrNoPath.
//
// Complexity:
//
//   - Time:  O(S log S), S = R·C·4·MaxRun.
//   - Space: O(S).
func Search(g *gridgraph.GridGraph, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate grid is non-nil
	if g == nil {
		return nil, ErrNilGrid
	}

	// 3) Run the search with per-call state
	r := newRunner(g, cfg)

	return r.run()
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g       *gridgraph.GridGraph // The input grid; read-only.
	options Options              // Configuration for this call.
	space   *stateSpace          // Successor generator.
	visited *ledger              // Dominance table.
	pq      frontier             // Min-heap of pending states.
	goal    gridgraph.Position   // Bottom-right cell.
	trail   []trailNode          // Settled states, kept only with ReturnPath.
	res     Result               // Counters filled while running.
}

// trailNode links a settled state to the trail index of its predecessor.
type trailNode struct {
	state  State
	parent int
}

func newRunner(g *gridgraph.GridGraph, cfg Options) *runner {
	return &runner{
		g:       g,
		options: cfg,
		space:   newStateSpace(g, cfg.Mode, cfg.Model),
		visited: newLedger(cfg.Mode.MinRun, g.Len()*4),
		pq:      make(frontier, 0, g.Len()),
		goal:    g.Goal(),
	}
}

// run is the core loop. It returns as soon as an accepted goal state is
// popped, or ErrNoPath once the frontier is exhausted.
func (r *runner) run() (*Result, error) {
	start := State{Pos: r.g.Start()}
	r.pq.push(start, 0, -1)

	for {
		// 1) Pop the cheapest pending state.
		item, ok := r.pq.popMin()
		if !ok {
			rows, cols := r.g.Dimensions()
			return nil, fmt.Errorf("%w: %s on %d×%d grid after %d settled states",
				ErrNoPath, r.options.Mode, rows, cols, r.res.Settled)
		}
		r.res.Popped++
		r.options.OnPop(item.state, item.cost)

		// 2) First accepted goal state out of the heap is optimal.
		if r.isGoal(item.state) {
			return r.finish(item), nil
		}

		// 3) Drop dominated states.
		if !r.visited.settle(r.g.Index(item.state.Pos), item.state) {
			continue
		}
		r.res.Settled++
		r.options.OnSettle(item.state, item.cost)

		// 4) Expand and push successors.
		parent := r.record(item)
		for _, t := range r.space.expand(item.state) {
			r.pq.push(t.next, item.cost+t.cost, parent)
			r.res.Pushed++
		}
	}
}

// isGoal reports whether s ends the search.
func (r *runner) isGoal(s State) bool {
	if s.Pos != r.goal {
		return false
	}
	if !r.options.GoalRunCheck || s.IsStart() {
		return true
	}

	return s.Run >= r.options.Mode.MinRun
}

// record appends a settled state to the trail and returns its index,
// or -1 when no path was requested.
func (r *runner) record(item frontierItem) int {
	if !r.options.ReturnPath {
		return -1
	}
	r.trail = append(r.trail, trailNode{state: item.state, parent: item.parent})

	return len(r.trail) - 1
}

// finish assembles the Result for the goal item.
func (r *runner) finish(item frontierItem) *Result {
	res := r.res
	res.Cost = item.cost
	if !r.options.ReturnPath {
		return &res
	}

	// walk parents back to the start, then reverse
	states := []State{item.state}
	for at := item.parent; at >= 0; at = r.trail[at].parent {
		states = append(states, r.trail[at].state)
	}
	for i, j := 0, len(states)-1; i < j; i, j = i+1, j-1 {
		states[i], states[j] = states[j], states[i]
	}
	res.States = states
	res.Path = expandPath(states)

	return &res
}

// expandPath lists every cell visited by consecutive states, filling in the
// cells skipped by compressed turns.
func expandPath(states []State) []gridgraph.Position {
	path := []gridgraph.Position{states[0].Pos}
	for _, s := range states[1:] {
		dr, dc := s.Dir.Delta()
		p := path[len(path)-1]
		for p != s.Pos {
			p = p.Add(dr, dc)
			path = append(path, p)
		}
	}

	return path
}
