// Package gridgraph treats a rectangular grid of digit weights as a graph,
// giving search algorithms bounds and weight queries over it.
//
// What:
//
//   - GridGraph wraps a rectangular grid of cell weights in the range 1..9.
//   - Cells are addressed by Position{Row, Col}, 0-indexed from the top-left.
//   - Entering a cell costs its weight; the grid itself never changes after
//     construction, so one GridGraph can back any number of concurrent searches.
//   - ParseDigits / FromLines turn puzzle text ("2413432311323\n...") into a grid.
//
// Why:
//
//   - Heat-loss style routing puzzles: a crucible moves over city blocks and
//     each block it enters adds its digit to the total.
//   - Terrain costs: a cheap, compact representation for dense per-cell costs.
//
// Complexity:
//
//   - NewGridGraph / ParseDigits: O(R×C) time and memory.
//   - Weight, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrInvalidGrid: umbrella for every construction failure below.
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidWeight: a cell is not a digit in 1..9.
//   - ErrOutOfBounds: Weight was asked for a position outside the grid.
package gridgraph
