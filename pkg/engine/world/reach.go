package world

import (
	"github.com/zyedidia/generic/mapset"
)

// Reachable returns the indices of every cell reachable from (x, y) by
// following open passages, including the start cell itself. An uncarved or
// out-of-bounds start yields an empty set.
func (g *Grid) Reachable(x, y int) mapset.Set[int] {
	visited := mapset.New[int]()
	start := g.GetCell(x, y)
	if start == nil || !start.Carved {
		return visited
	}

	queue := []*Cell{start}
	visited.Put(g.Index(start.X, start.Y))

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range AllDirections() {
			if !current.IsOpen(dir) {
				continue
			}
			next := g.GetCellRelative(current, dir)
			if next == nil || !next.IsOpen(dir.Opposite()) {
				continue
			}
			idx := g.Index(next.X, next.Y)
			if visited.Has(idx) {
				continue
			}
			visited.Put(idx)
			queue = append(queue, next)
		}
	}

	return visited
}

// IsConnected returns true if every carved cell with at least one exit is
// reachable from every other one.
func (g *Grid) IsConnected() bool {
	var start *Cell
	open := 0
	g.ForEachCell(func(x, y int, cell *Cell) {
		if cell.Carved && cell.Dirs != None {
			open++
			if start == nil {
				start = cell
			}
		}
	})
	if start == nil {
		return true
	}
	return g.Reachable(start.X, start.Y).Size() == open
}
