// Package world provides generic 2D grid-based maze primitives.
// These are engine-level constructs usable by any tile-based generator.
package world

// Cell represents a single cell/tile in the grid.
type Cell struct {
	// Grid position
	X int
	Y int

	// Dirs holds the directions in which this cell is open
	Dirs Direction

	// Carved is set once the cell's connectivity has been explicitly defined.
	// A carved cell with Dirs == None is a deliberately closed cell.
	Carved bool

	// Room is set for cells belonging to a room interior (as opposed to corridors)
	Room bool

	// Name is an optional label, e.g. the owning room
	Name string
}

// IsOpen returns true if the cell is open toward dir
func (c *Cell) IsOpen(dir Direction) bool {
	if c == nil {
		return false
	}
	return c.Dirs&dir != 0
}

// Open adds dirs to the cell's open directions and marks it carved
func (c *Cell) Open(dirs Direction) {
	if c == nil {
		return
	}
	c.Dirs |= dirs & All
	c.Carved = true
}

// NumberOfExits returns how many directions the cell is open toward
func (c *Cell) NumberOfExits() int {
	if c == nil {
		return 0
	}
	return c.Dirs.Count()
}

// IsDeadEnd returns true if the cell is carved with exactly one exit
func (c *Cell) IsDeadEnd() bool {
	return c != nil && c.Carved && c.NumberOfExits() == 1
}
