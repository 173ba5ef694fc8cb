package world

import "strings"

// Direction is a set of cardinal directions stored as bit flags.
// North points toward increasing y, East toward increasing x.
type Direction uint8

// Direction constants
const (
	North Direction = 1 << iota
	East
	South
	West

	None Direction = 0
	All            = North | East | South | West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction set, e.g. "N|E"
func (d Direction) String() string {
	if d == None {
		return "None"
	}
	if !d.IsValid() {
		return "Unknown"
	}
	var parts []string
	for _, dir := range AllDirections() {
		if d&dir == 0 {
			continue
		}
		switch dir {
		case North:
			parts = append(parts, "N")
		case East:
			parts = append(parts, "E")
		case South:
			parts = append(parts, "S")
		case West:
			parts = append(parts, "W")
		}
	}
	return strings.Join(parts, "|")
}

// IsValid returns true if only cardinal direction bits are set
func (d Direction) IsValid() bool {
	return d&^All == 0
}

// IsSingle returns true if exactly one direction bit is set
func (d Direction) IsSingle() bool {
	return d != None && d.IsValid() && d&(d-1) == 0
}

// Has returns true if every direction in other is also in d
func (d Direction) Has(other Direction) bool {
	return d&other == other
}

// Count returns the number of open directions
func (d Direction) Count() int {
	n := 0
	for _, dir := range AllDirections() {
		if d&dir != 0 {
			n++
		}
	}
	return n
}

// Opposite returns the opposite direction of every bit in d
func (d Direction) Opposite() Direction {
	var o Direction
	if d&North != 0 {
		o |= South
	}
	if d&South != 0 {
		o |= North
	}
	if d&East != 0 {
		o |= West
	}
	if d&West != 0 {
		o |= East
	}
	return o
}

// Delta returns the x and y offsets for a single direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// DirectionBetween returns the single direction that leads from (x1, y1) to
// the adjacent cell (x2, y2), or None if the cells are not 4-adjacent.
func DirectionBetween(x1, y1, x2, y2 int) Direction {
	for _, dir := range AllDirections() {
		dx, dy := dir.Delta()
		if x1+dx == x2 && y1+dy == y2 {
			return dir
		}
	}
	return None
}
