package world

import (
	"fmt"
	"math/rand"
	"time"

	"dungeonforge/pkg/engine/pathfind"
)

// Grid is a maze of cells with per-cell directional connectivity.
// Cells are stored row-major and addressed either by (x, y) or by the
// flattened index x + y*width.
type Grid struct {
	cells  []Cell
	width  int
	height int

	rng *rand.Rand
}

// NewGrid creates a new grid with the given dimensions. A nil rng is replaced
// with a time-seeded source.
func NewGrid(width, height int, rng *rand.Rand) *Grid {
	g := &Grid{rng: rng}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.Build(width, height)
	return g
}

// Build initializes the grid with the given dimensions, discarding any carving
func (g *Grid) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.cells = make([]Cell, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[g.Index(x, y)] = Cell{X: x, Y: y}
		}
	}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// Index flattens (x, y) into a cell index
func (g *Grid) Index(x, y int) int {
	return x + y*g.width
}

// Coordinate expands a cell index into (x, y)
func (g *Grid) Coordinate(index int) (x, y int) {
	return index % g.width, index / g.width
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsValidIndex checks if a flattened index is within grid bounds
func (g *Grid) IsValidIndex(index int) bool {
	return index >= 0 && index < len(g.cells)
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(x, y int) *Cell {
	if !g.IsValidPosition(x, y) {
		return nil
	}
	return &g.cells[g.Index(x, y)]
}

// GetCellByIndex returns the cell at the flattened index, or nil if out of bounds
func (g *Grid) GetCellByIndex(index int) *Cell {
	if !g.IsValidIndex(index) {
		return nil
	}
	return &g.cells[index]
}

// GetCellRelative returns the cell adjacent to c in the given single direction
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil || !dir.IsSingle() {
		return nil
	}
	dx, dy := dir.Delta()
	return g.GetCell(c.X+dx, c.Y+dy)
}

// Directions returns the open directions of the cell at (x, y).
// Out-of-bounds positions report None.
func (g *Grid) Directions(x, y int) Direction {
	cell := g.GetCell(x, y)
	if cell == nil {
		return None
	}
	return cell.Dirs
}

// IsCarved reports whether the connectivity of the cell at (x, y) has been
// defined, including a cell carved with no open direction.
func (g *Grid) IsCarved(x, y int) bool {
	cell := g.GetCell(x, y)
	return cell != nil && cell.Carved
}

// AddDirections forces dirs open on the cell at (x, y). Re-opening an already
// open direction is a no-op. Returns false if out of bounds.
func (g *Grid) AddDirections(x, y int, dirs Direction) bool {
	cell := g.GetCell(x, y)
	if cell == nil {
		return false
	}
	cell.Open(dirs)
	return true
}

// CarvePassage opens the wall between two adjacent cells. With preserveExisting
// set, a cell whose connectivity is already defined is left untouched.
// Returns false if the indices are out of bounds or not adjacent.
func (g *Grid) CarvePassage(from, to int, preserveExisting bool) bool {
	a := g.GetCellByIndex(from)
	b := g.GetCellByIndex(to)
	if a == nil || b == nil {
		return false
	}
	dir := DirectionBetween(a.X, a.Y, b.X, b.Y)
	if dir == None {
		return false
	}
	if !preserveExisting || !a.Carved {
		a.Open(dir)
	}
	if !preserveExisting || !b.Carved {
		b.Open(dir.Opposite())
	}
	return true
}

// CarveHorizontalSpan carves a straight run along row y between x1 and x2 inclusive
func (g *Grid) CarveHorizontalSpan(y, x1, x2 int, preserveExisting bool) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x < x2; x++ {
		if g.IsValidPosition(x, y) && g.IsValidPosition(x+1, y) {
			g.CarvePassage(g.Index(x, y), g.Index(x+1, y), preserveExisting)
		}
	}
}

// CarveVerticalSpan carves a straight run along column x between y1 and y2 inclusive
func (g *Grid) CarveVerticalSpan(x, y1, y2 int, preserveExisting bool) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y < y2; y++ {
		if g.IsValidPosition(x, y) && g.IsValidPosition(x, y+1) {
			g.CarvePassage(g.Index(x, y), g.Index(x, y+1), preserveExisting)
		}
	}
}

// MarkAsRoom marks the cell at the given position as part of a named room.
// Returns false if out of bounds.
func (g *Grid) MarkAsRoom(x, y int, name string) bool {
	cell := g.GetCell(x, y)
	if cell == nil {
		return false
	}
	cell.Room = true
	cell.Name = name
	return true
}

// Intn returns a uniform random integer in [0, n) from the grid's source
func (g *Grid) Intn(n int) int {
	return g.rng.Intn(n)
}

// Topology returns the grid's 4-neighbour lattice for path searches
func (g *Grid) Topology() pathfind.Topology {
	return GridTopology{Width: g.width, Height: g.height}
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(x, y int, cell *Cell)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, &g.cells[g.Index(x, y)])
		}
	}
}

// CarvedCells returns the number of cells whose connectivity has been defined
func (g *Grid) CarvedCells() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Carved {
			n++
		}
	}
	return n
}

// Validate checks the grid for common issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.width <= 0 || g.height <= 0 {
		return "Grid has invalid dimensions"
	}

	for i := range g.cells {
		c := &g.cells[i]
		for _, dir := range AllDirections() {
			if !c.IsOpen(dir) {
				continue
			}
			adj := g.GetCellRelative(c, dir)
			if adj == nil {
				return fmt.Sprintf("Cell %d:%d opens %v off the grid", c.X, c.Y, dir)
			}
			if !adj.IsOpen(dir.Opposite()) {
				return fmt.Sprintf("Cell %d:%d opens %v but %d:%d is closed", c.X, c.Y, dir, adj.X, adj.Y)
			}
		}
	}

	return ""
}

// GridTopology is the full 4-neighbour lattice of a width x height grid
type GridTopology struct {
	Width  int
	Height int
}

// NumberOfNodes returns the number of cells in the lattice
func (t GridTopology) NumberOfNodes() int {
	return t.Width * t.Height
}

// Neighbors returns the in-bounds 4-neighbours of index
func (t GridTopology) Neighbors(index int) []int {
	if index < 0 || index >= t.NumberOfNodes() {
		return nil
	}
	x, y := index%t.Width, index/t.Width
	neighbors := make([]int, 0, 4)
	for _, dir := range AllDirections() {
		dx, dy := dir.Delta()
		nx, ny := x+dx, y+dy
		if nx >= 0 && nx < t.Width && ny >= 0 && ny < t.Height {
			neighbors = append(neighbors, nx+ny*t.Width)
		}
	}
	return neighbors
}
