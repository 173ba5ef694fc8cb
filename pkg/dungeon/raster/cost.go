package raster

import (
	"dungeonforge/pkg/engine/world"
)

// Default step costs of a PathCost
const (
	DefaultExistingCost   = 1.0
	DefaultCarvedCellCost = 2.0
	DefaultNewCellCost    = 4.0
)

// PathCost prices grid steps so shortest paths follow passages that are
// already open and avoid digging through untouched rock.
type PathCost struct {
	maze  Maze
	width int

	// ExistingCost is charged for a step through an open passage
	ExistingCost float64
	// CarvedCellCost is charged for breaking a wall into a carved cell
	CarvedCellCost float64
	// NewCellCost is charged for digging into an uncarved cell
	NewCellCost float64
}

// NewPathCost creates a cost function reading m's live connectivity
func NewPathCost(m Maze) *PathCost {
	return &PathCost{
		maze:           m,
		width:          m.Width(),
		ExistingCost:   DefaultExistingCost,
		CarvedCellCost: DefaultCarvedCellCost,
		NewCellCost:    DefaultNewCellCost,
	}
}

// EdgeCost returns the cost of stepping between adjacent cell indices
func (c *PathCost) EdgeCost(from, to int) float64 {
	fx, fy := from%c.width, from/c.width
	tx, ty := to%c.width, to/c.width
	dir := world.DirectionBetween(fx, fy, tx, ty)
	switch {
	case dir != world.None && c.maze.Directions(fx, fy)&dir != 0:
		return c.ExistingCost
	case c.maze.Directions(tx, ty) != world.None:
		return c.CarvedCellCost
	default:
		return c.NewCellCost
	}
}
