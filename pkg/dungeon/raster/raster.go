// Package raster carves a graph of placed rooms into a grid maze: every room
// becomes an open rectangle and every connection a corridor.
package raster

import (
	"errors"
	"fmt"

	"dungeonforge/pkg/dungeon"
	"dungeonforge/pkg/engine/pathfind"
	"dungeonforge/pkg/engine/world"
)

var (
	// ErrUnresolvedRasterizer is returned when a connection reaches the carving
	// dispatch with a strategy that cannot be carved (Unspecified or reserved).
	ErrUnresolvedRasterizer = errors.New("unresolved passage rasterizer")
	// ErrRoomsNotAdjacent is returned when an opening is requested between
	// rooms that do not share a border.
	ErrRoomsNotAdjacent = errors.New("rooms do not share a border")
)

// RandomSource yields uniform integers in [0, n)
type RandomSource interface {
	Intn(n int) int
}

// Maze is the grid surface the rasterizer carves into.
type Maze interface {
	RandomSource
	Width() int
	Height() int
	Directions(x, y int) world.Direction
	IsCarved(x, y int) bool
	AddDirections(x, y int, dirs world.Direction) bool
	CarvePassage(from, to int, preserveExisting bool) bool
	CarveHorizontalSpan(y, x1, x2 int, preserveExisting bool)
	CarveVerticalSpan(x, y1, y2 int, preserveExisting bool)
	Topology() pathfind.Topology
}

// RoomMarker is implemented by mazes that label room cells
type RoomMarker interface {
	MarkAsRoom(x, y int, name string) bool
}

var _ Maze = (*world.Grid)(nil)
var _ RoomMarker = (*world.Grid)(nil)

// Stats counts what a rasterization pass carved
type Stats struct {
	Rooms     int
	Corridors map[dungeon.PassageRasterizerType]int
}

// RasterizeDungeon carves every room of g and then every connection.
// With preserveExistingCells set, room carving leaves cells that were already
// carved before the pass untouched; corridors always puncture room borders.
// Carving stops at the first failing connection and is not rolled back.
func RasterizeDungeon[R any, C comparable](m Maze, g *dungeon.Graph[dungeon.GridRoom[R], dungeon.GridPassageConnectionData[C]], preserveExistingCells bool) error {
	_, err := Rasterize(m, g, preserveExistingCells)
	return err
}

// Rasterize is RasterizeDungeon reporting what was carved
func Rasterize[R any, C comparable](m Maze, g *dungeon.Graph[dungeon.GridRoom[R], dungeon.GridPassageConnectionData[C]], preserveExistingCells bool) (Stats, error) {
	stats := Stats{Corridors: make(map[dungeon.PassageRasterizerType]int)}

	for _, room := range g.Rooms() {
		carveGridRoom(m, room.Data, roomLabel(room), preserveExistingCells)
		stats.Rooms++
	}

	// Built on first use and shared by every shortest-path corridor of the pass.
	var cost *PathCost
	for _, e := range g.Edges() {
		from, err := g.Node(e.From)
		if err != nil {
			return stats, fmt.Errorf("connection %d-%d: %w", e.From, e.To, err)
		}
		to, err := g.Node(e.To)
		if err != nil {
			return stats, fmt.Errorf("connection %d-%d: %w", e.From, e.To, err)
		}

		strategy := ResolveRasterizer(m, e.Value.Data.Rasterizer, from.Data, to.Data)
		if strategy == dungeon.ShortestPathUsingExisting && cost == nil {
			cost = NewPathCost(m)
		}
		if err := CarveCorridor(m, strategy, from.Data, to.Data, e.Value.Weight, cost, false); err != nil {
			return stats, fmt.Errorf("connection %d-%d: %w", e.From, e.To, err)
		}
		stats.Corridors[strategy]++
	}

	return stats, nil
}

// roomLabel names a room's cells after its payload when that is a non-empty
// string, and after its identity otherwise.
func roomLabel[R any](room dungeon.Room[dungeon.GridRoom[R]]) string {
	if name, ok := any(room.Data.Data).(string); ok && name != "" {
		return name
	}
	return fmt.Sprintf("Room %d", room.ID)
}

// ResolveRasterizer replaces Unspecified with a uniformly chosen strategy that
// can carve between the two rooms: Elbow or ShortestPathUsingExisting, plus
// Opening when the rooms abut. Other strategies are returned unchanged.
func ResolveRasterizer[R any](rng RandomSource, t dungeon.PassageRasterizerType, r1, r2 dungeon.GridRoom[R]) dungeon.PassageRasterizerType {
	if t != dungeon.Unspecified {
		return t
	}
	pool := []dungeon.PassageRasterizerType{dungeon.Elbow, dungeon.ShortestPathUsingExisting}
	if r1.Abuts(r2) {
		pool = append(pool, dungeon.Opening)
	}
	return pool[rng.Intn(len(pool))]
}

// CarveCorridor carves one connection between two rooms with the given
// strategy. weight is the opening width for Opening. A nil cost is built on
// demand for ShortestPathUsingExisting.
func CarveCorridor[R any](m Maze, strategy dungeon.PassageRasterizerType, r1, r2 dungeon.GridRoom[R], weight float64, cost *PathCost, preserveExisting bool) error {
	switch strategy {
	case dungeon.None:
		return nil
	case dungeon.Elbow:
		CarveElbowPassage(m, r1, r2, preserveExisting)
		return nil
	case dungeon.ShortestPathUsingExisting:
		if cost == nil {
			cost = NewPathCost(m)
		}
		CarveShortestPath(m, r1, r2, cost.EdgeCost, preserveExisting)
		return nil
	case dungeon.Opening:
		width := int(weight)
		if width < 1 {
			width = 1
		}
		return CarveOpening(m, r1, r2, width, preserveExisting)
	default:
		return fmt.Errorf("%v: %w", strategy, ErrUnresolvedRasterizer)
	}
}

// CarveElbowPassage carves an L-shaped corridor: along r1's centre row to
// r2's centre column, then along that column to r2's centre row.
func CarveElbowPassage[R any](m Maze, r1, r2 dungeon.GridRoom[R], preserveExisting bool) {
	x1, y1 := r1.Center()
	x2, y2 := r2.Center()
	m.CarveHorizontalSpan(y1, x1, x2, preserveExisting)
	m.CarveVerticalSpan(x2, y1, y2, preserveExisting)
}

// CarveShortestPath carves the cheapest path between the room centres under
// cost. Nothing is carved when no path exists.
func CarveShortestPath[R any](m Maze, r1, r2 dungeon.GridRoom[R], cost pathfind.EdgeCostFunc, preserveExisting bool) {
	x1, y1 := r1.Center()
	x2, y2 := r2.Center()
	source := x1 + y1*m.Width()
	target := x2 + y2*m.Width()
	for from, to := range pathfind.FindPath(m.Topology(), source, target, cost) {
		m.CarvePassage(from, to, preserveExisting)
	}
}

// CarveOpening carves a doorway up to width cells wide, centred on the border
// the two rooms share.
func CarveOpening[R any](m Maze, r1, r2 dungeon.GridRoom[R], width int, preserveExisting bool) error {
	if !r1.Abuts(r2) {
		return fmt.Errorf("opening between %d:%d and %d:%d: %w", r1.MinX, r1.MinY, r2.MinX, r2.MinY, ErrRoomsNotAdjacent)
	}
	w := m.Width()

	switch {
	case r1.MaxX()+1 == r2.MinX || r2.MaxX()+1 == r1.MinX:
		west, east := r1, r2
		if r2.MaxX()+1 == r1.MinX {
			west, east = r2, r1
		}
		lo, hi := max(west.MinY, east.MinY), min(west.MaxY(), east.MaxY())
		for _, y := range doorway(lo, hi, width) {
			m.CarvePassage(west.MaxX()+y*w, east.MinX+y*w, preserveExisting)
		}
	default:
		south, north := r1, r2
		if r2.MaxY()+1 == r1.MinY {
			south, north = r2, r1
		}
		lo, hi := max(south.MinX, north.MinX), min(south.MaxX(), north.MaxX())
		for _, x := range doorway(lo, hi, width) {
			m.CarvePassage(x+south.MaxY()*w, x+north.MinY*w, preserveExisting)
		}
	}
	return nil
}

// doorway returns up to width positions centred in [lo, hi]
func doorway(lo, hi, width int) []int {
	span := hi - lo + 1
	if width > span {
		width = span
	}
	start := lo + (span-width)/2
	positions := make([]int, width)
	for i := range positions {
		positions[i] = start + i
	}
	return positions
}
