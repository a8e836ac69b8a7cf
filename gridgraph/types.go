// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/crucible.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrInvalidGrid is wrapped by every grid construction failure.
	ErrInvalidGrid = errors.New("gridgraph: invalid grid")
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: input grid must have at least one row and one column", ErrInvalidGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidGrid)
	// ErrInvalidWeight indicates a cell that is not a digit in [MinWeight, MaxWeight].
	ErrInvalidWeight = fmt.Errorf("%w: cell weight must be a digit 1..9", ErrInvalidGrid)
	// ErrOutOfBounds indicates a position outside [0,Rows)×[0,Cols).
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
)

const (
	// MinWeight is the smallest admissible cell weight.
	MinWeight = 1
	// MaxWeight is the largest admissible cell weight.
	MaxWeight = 9
)

// Position addresses a single cell: Row grows downwards, Col grows rightwards.
type Position struct {
	Row, Col int
}

// Add returns p shifted by (dr, dc).
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// GridGraph treats a 2D weight grid as a graph. It is immutable once built:
// all fields are unexported and cells holds the weights in row-major order.
type GridGraph struct {
	rows, cols int
	cells      []int
}
