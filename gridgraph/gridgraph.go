package gridgraph

import "fmt"

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// of weights. It copies the input so later edits to values are not observed.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and
// ErrInvalidWeight if any cell lies outside [MinWeight, MaxWeight].
// Algorithmic complexity: O(R×C) time and memory.
func NewGridGraph(values [][]int) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	cells := make([]int, 0, rows*cols)
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
		for c, w := range row {
			if w < MinWeight || w > MaxWeight {
				return nil, fmt.Errorf("%w: got %d at (%d,%d)", ErrInvalidWeight, w, r, c)
			}
			cells = append(cells, w)
		}
	}

	return &GridGraph{rows: rows, cols: cols, cells: cells}, nil
}

// Dimensions returns the number of rows and columns.
// Complexity: O(1).
func (gg *GridGraph) Dimensions() (rows, cols int) {
	return gg.rows, gg.cols
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < gg.rows && p.Col >= 0 && p.Col < gg.cols
}

// Weight returns the cost of entering p.
// Returns ErrOutOfBounds if p is outside the grid.
// Complexity: O(1).
func (gg *GridGraph) Weight(p Position) (int, error) {
	if !gg.InBounds(p) {
		return 0, fmt.Errorf("%w: %s in %d×%d grid", ErrOutOfBounds, p, gg.rows, gg.cols)
	}

	return gg.cells[gg.Index(p)], nil
}

// Start returns the top-left cell.
func (gg *GridGraph) Start() Position {
	return Position{}
}

// Goal returns the bottom-right cell.
func (gg *GridGraph) Goal() Position {
	return Position{Row: gg.rows - 1, Col: gg.cols - 1}
}

// Index maps p to a row-major index: Row*Cols + Col.
// The result is only meaningful when InBounds(p).
// Complexity: O(1).
func (gg *GridGraph) Index(p Position) int {
	return p.Row*gg.cols + p.Col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Position {
	return Position{Row: idx / gg.cols, Col: idx % gg.cols}
}

// Len returns the number of cells, Rows×Cols.
func (gg *GridGraph) Len() int {
	return len(gg.cells)
}

// Values returns a fresh copy of the weights as a [][]int.
// Complexity: O(R×C).
func (gg *GridGraph) Values() [][]int {
	out := make([][]int, gg.rows)
	for r := range out {
		out[r] = make([]int, gg.cols)
		copy(out[r], gg.cells[r*gg.cols:(r+1)*gg.cols])
	}

	return out
}
