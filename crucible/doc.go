// Package crucible finds the cheapest route across a weighted grid for a mover
// whose legal moves depend on how long it has been travelling straight.
//
// Overview:
//
//   - The mover starts in the top-left cell and must reach the bottom-right one.
//   - Entering a cell costs its weight (a digit 1..9); the start cell is free.
//   - It may never reverse. After MinRun straight cells it may turn left or
//     right, and it may never travel more than MaxRun cells without turning.
//   - The search is Dijkstra over the augmented state (cell, direction, run
//     length), with a dominance ledger that discards states which are no more
//     flexible than one already settled at a lower or equal cost.
//
// Modes:
//
//   - Basic: MinRun=1, MaxRun=3.
//   - Ultra: MinRun=4, MaxRun=10.
//   - Any Mode with 1 <= MinRun <= MaxRun is accepted.
//
// Transition models:
//
//   - ModelCompressed (default): a turn advances MinRun cells in one atomic
//     step, so states that could neither turn nor stop are never materialised.
//   - ModelPerCell: every step is a single cell and turns are gated on the run
//     length. Slower, but a direct reading of the rules.
//
// Both models return identical costs while the goal run check is enabled
// (the default). With WithGoalRunCheck(false) a per-cell search may finish at
// the goal in the middle of a run shorter than MinRun.
//
// Complexity:
//
//   - Time:  O(S log S) where S = R·C·4·MaxRun bounds the state space.
//   - Space: O(S) for the frontier and the ledger.
//
// Errors (sentinel):
//
//   - ErrNilGrid          if the grid is nil.
//   - ErrInvalidMode      if MinRun < 1 or MaxRun < MinRun.
//   - ErrOptionViolation  if an Option was given an invalid argument.
//   - ErrNoPath           if the frontier empties before the goal is reached.
//
// Example usage:
//
//	gg, _ := gridgraph.ParseDigits(os.Stdin)
//	cost, err := crucible.ShortestConstrainedPath(gg, crucible.Ultra)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cost)
//
// Thread safety:
//
//   - Every call owns its frontier and ledger. Concurrent calls on one shared
//     *gridgraph.GridGraph are safe because the grid is immutable.
package crucible
