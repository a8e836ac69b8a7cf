package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseDigits reads a grid of single-digit weights, one row per line.
// Line terminators (\n or \r\n) are stripped and trailing blank lines are
// ignored; a blank line in the middle of the grid is a ragged row.
// Returns the same errors as NewGridGraph; non-digit characters are reported
// as ErrInvalidWeight with their row and column.
func ParseDigits(r io.Reader) (*GridGraph, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read input: %w", err)
	}

	return FromLines(lines)
}

// FromLines builds a GridGraph from rows of digit characters.
func FromLines(lines []string) (*GridGraph, error) {
	// drop trailing blank lines left by a final newline
	end := len(lines)
	for end > 0 && strings.TrimRight(lines[end-1], "\r") == "" {
		end--
	}
	if end == 0 {
		return nil, ErrEmptyGrid
	}

	values := make([][]int, end)
	for r := 0; r < end; r++ {
		line := strings.TrimRight(lines[r], "\r")
		row := make([]int, len(line))
		for c := 0; c < len(line); c++ {
			ch := line[c]
			if ch < '0'+MinWeight || ch > '0'+MaxWeight {
				return nil, fmt.Errorf("%w: got %q at (%d,%d)", ErrInvalidWeight, ch, r, c)
			}
			row[c] = int(ch - '0')
		}
		values[r] = row
	}

	return NewGridGraph(values)
}

// String renders the grid back in the textual form accepted by ParseDigits,
// without a trailing newline.
func (gg *GridGraph) String() string {
	var b strings.Builder
	b.Grow(gg.rows * (gg.cols + 1))
	for i, w := range gg.cells {
		if i > 0 && i%gg.cols == 0 {
			b.WriteByte('\n')
		}
		b.WriteByte(byte('0' + w))
	}

	return b.String()
}
