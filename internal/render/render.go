// Package render draws a grid with a witness route overlaid, in the style of
// the puzzle's worked examples: route cells show the arrow of the heading they
// were entered with, every other cell shows its weight.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/gridgraph"
)

// Renderer holds the styles used for grid output.
type Renderer struct {
	plain bool
	cell  lipgloss.Style
	route lipgloss.Style
	start lipgloss.Style
	title lipgloss.Style
	box   lipgloss.Style
}

// New returns a Renderer. When plain is true no styling is applied, which
// keeps output byte-exact for pipes and tests.
func New(plain bool) *Renderer {
	return &Renderer{
		plain: plain,
		cell:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		route: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		start: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	}
}

// Route returns the grid with path drawn over it. path must start at the
// start cell and move one orthogonal step at a time, as crucible.Result.Path
// does; cells off the path keep their digit.
func (r *Renderer) Route(gg *gridgraph.GridGraph, path []gridgraph.Position) string {
	rows, cols := gg.Dimensions()
	glyphs := make([]rune, gg.Len())
	for i := range glyphs {
		w, _ := gg.Weight(gg.Coordinate(i))
		glyphs[i] = rune('0' + w)
	}

	onRoute := make([]bool, gg.Len())
	for i, p := range path {
		if !gg.InBounds(p) {
			continue
		}
		idx := gg.Index(p)
		onRoute[idx] = true
		if i > 0 {
			glyphs[idx] = heading(path[i-1], p).Arrow()
		}
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < cols; col++ {
			idx := row*cols + col
			s := string(glyphs[idx])
			switch {
			case r.plain:
			case len(path) > 0 && path[0] == (gridgraph.Position{Row: row, Col: col}):
				s = r.start.Render(s)
			case onRoute[idx]:
				s = r.route.Render(s)
			default:
				s = r.cell.Render(s)
			}
			b.WriteString(s)
		}
	}

	return b.String()
}

// Title styles a heading line.
func (r *Renderer) Title(s string) string {
	if r.plain {
		return s
	}

	return r.title.Render(s)
}

// Box frames a block of text; plain renderers return it unchanged.
func (r *Renderer) Box(s string) string {
	if r.plain {
		return s
	}

	return r.box.Render(s)
}

// heading returns the direction of the unit step from a to b, or None when
// the cells are not orthogonal neighbours.
func heading(a, b gridgraph.Position) crucible.Direction {
	for _, d := range crucible.Directions() {
		dr, dc := d.Delta()
		if a.Add(dr, dc) == b {
			return d
		}
	}

	return crucible.None
}
