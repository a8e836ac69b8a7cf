package crucible

// Direction is a heading on the grid. The zero value None belongs only to the
// start state, which has not moved yet.
type Direction uint8

const (
	None Direction = iota
	North
	East
	South
	West
)

// directions lists the four real headings in a fixed order.
var directions = [4]Direction{North, East, South, West}

var opposite = [...]Direction{
	None:  None,
	North: South,
	East:  West,
	South: North,
	West:  East,
}

// perpendicular holds the two legal turns for each heading.
var perpendicular = [...][2]Direction{
	None:  {},
	North: {East, West},
	East:  {North, South},
	South: {East, West},
	West:  {North, South},
}

var delta = [...][2]int{
	None:  {0, 0},
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

var directionNames = [...]string{
	None:  "none",
	North: "north",
	East:  "east",
	South: "south",
	West:  "west",
}

var arrows = [...]rune{
	None:  '·',
	North: '^',
	East:  '>',
	South: 'v',
	West:  '<',
}

// Directions returns North, East, South and West.
func Directions() [4]Direction {
	return directions
}

// Opposite returns the reverse heading; None is its own opposite.
func (d Direction) Opposite() Direction {
	return opposite[d]
}

// Perpendicular returns the two headings reachable by a single turn.
func (d Direction) Perpendicular() [2]Direction {
	return perpendicular[d]
}

// Delta returns the (row, col) offset of one step in d.
func (d Direction) Delta() (dr, dc int) {
	return delta[d][0], delta[d][1]
}

// Arrow returns a one-character glyph for d, as used in rendered paths.
func (d Direction) Arrow() rune {
	return arrows[d]
}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "invalid"
	}

	return directionNames[d]
}
