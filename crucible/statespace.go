package crucible

import (
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// transition is one legal move out of a state together with the weight it
// adds to the accumulated cost.
type transition struct {
	next State
	cost int64
}

// stateSpace generates successors for a fixed grid, mode and model.
// It holds no search state; buf is scratch space reused between calls.
type stateSpace struct {
	g     *gridgraph.GridGraph
	mode  Mode
	model Model
	buf   []transition
}

func newStateSpace(g *gridgraph.GridGraph, mode Mode, model Model) *stateSpace {
	return &stateSpace{
		g:     g,
		mode:  mode,
		model: model,
		buf:   make([]transition, 0, 4),
	}
}

// expand returns the legal successors of s. The returned slice is only valid
// until the next call.
//
// Rules:
//  1. Straight: allowed while s.Run < MaxRun; one cell, Run+1.
//  2. Turn: to either perpendicular heading once s.Run >= MinRun, or in any of
//     the four headings from the start state. Per-cell turns move one cell;
//     compressed turns move MinRun cells at once and land with Run = MinRun.
//  3. Moves that would leave the grid are dropped.
//
// Reversal is never generated: it is neither straight nor perpendicular.
func (sp *stateSpace) expand(s State) []transition {
	out := sp.buf[:0]

	if s.IsStart() {
		for _, d := range directions {
			out = sp.turn(out, s.Pos, d)
		}
		sp.buf = out

		return out
	}

	if s.Run < sp.mode.MaxRun {
		out = sp.advance(out, s.Pos, s.Dir, 1, s.Run+1)
	}
	if s.Run >= sp.mode.MinRun {
		for _, d := range s.Dir.Perpendicular() {
			out = sp.turn(out, s.Pos, d)
		}
	}
	sp.buf = out

	return out
}

// turn starts a fresh run in heading d from p.
func (sp *stateSpace) turn(out []transition, p gridgraph.Position, d Direction) []transition {
	steps := 1
	if sp.model == ModelCompressed {
		steps = sp.mode.MinRun
	}

	return sp.advance(out, p, d, steps, steps)
}

// advance moves steps cells from p in heading d, summing every entered cell,
// and appends the landing state with the given run length.
func (sp *stateSpace) advance(out []transition, p gridgraph.Position, d Direction, steps, run int) []transition {
	dr, dc := d.Delta()
	if !sp.g.InBounds(p.Add(dr*steps, dc*steps)) {
		return out
	}

	var cost int64
	for i := 0; i < steps; i++ {
		p = p.Add(dr, dc)
		cost += int64(sp.weight(p))
	}

	return append(out, transition{
		next: State{Pos: p, Dir: d, Run: run},
		cost: cost,
	})
}

// weight reads a cell already known to be in bounds. A failure here means the
// bounds check above is wrong, so it panics rather than returning.
func (sp *stateSpace) weight(p gridgraph.Position) int {
	w, err := sp.g.Weight(p)
	if err != nil {
		panic(fmt.Sprintf("crucible: transition generated an unreachable cell: %v", err))
	}

	return w
}
