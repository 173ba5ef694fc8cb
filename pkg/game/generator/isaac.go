package generator

import (
	"fmt"
	"math/rand"

	"dungeonforge/pkg/dungeon"
	"dungeonforge/pkg/dungeon/mazegraph"
	"dungeonforge/pkg/dungeon/raster"
	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/floor"
)

// Room dimensions of the Isaac generator
const (
	IsaacRoomWidth    = 9
	IsaacRoomHeight   = 5
	IsaacOpeningWidth = 2
)

// IsaacGenerator walks lines over a coarse maze and blows every maze cell up
// into a full-size room, with doorways wherever the maze is open. Rooms tile
// the grid edge to edge, so Config.Rasterizer does not apply.
type IsaacGenerator struct {
	Config
}

// Name returns the name of this generator
func (g *IsaacGenerator) Name() string {
	return "Binding of Isaac"
}

// isaacScale returns the coarse maze size for a level.
// Level 1: 5x5, level 8 and deeper: 9x7.
func isaacScale(level int) (cols, rows int) {
	if floor.IsFinalFloor(level) {
		return 3, 3
	}
	return min(5+level/2, 9), min(5+level/3, 7)
}

// Generate creates a new grid for the given level
func (g *IsaacGenerator) Generate(level int) (*world.Grid, error) {
	res, err := g.GenerateDetailed(level)
	if err != nil {
		return nil, err
	}
	return res.Grid, nil
}

// GenerateDetailed creates a new grid and reports the rooms behind it
func (g *IsaacGenerator) GenerateDetailed(level int) (*Result, error) {
	if level < 1 {
		level = 1
	}
	rng, seed := g.source()
	theme := floor.ThemeFor(level)
	ids := dungeon.NewIDSource()

	cols, rows := isaacScale(level)
	coarse := world.NewGrid(cols, rows, rng)
	walkCoarseMaze(coarse, rng, level)

	rooms, err := mazegraph.FromMaze(coarse, IsaacRoomWidth, IsaacRoomHeight, IsaacOpeningWidth, ids)
	if err != nil {
		return nil, fmt.Errorf("%s level %d: %w", g.Name(), level, err)
	}
	if rooms.NumberOfNodes() == 0 {
		return nil, fmt.Errorf("%s level %d: %w", g.Name(), level, ErrNoRooms)
	}
	passages := mazegraph.ToPassageGraph(rooms, ids)

	grid := world.NewGrid(cols*IsaacRoomWidth, rows*IsaacRoomHeight, rng)
	stats, err := raster.Rasterize(grid, passages, false)
	if err != nil {
		return nil, fmt.Errorf("%s level %d: %w", g.Name(), level, err)
	}

	res := &Result{
		Generator:   g.Name(),
		Level:       level,
		Seed:        seed,
		Theme:       theme,
		Grid:        grid,
		Connections: passages.NumberOfEdges(),
		Placed:      passages.NumberOfNodes(),
		Carved:      stats,
	}

	// Name every room after the floor's theme
	for _, room := range passages.Rooms() {
		r := room.Data
		name := floor.RoomName(rng, theme)
		for y := r.MinY; y <= r.MaxY(); y++ {
			for x := r.MinX; x <= r.MaxX(); x++ {
				grid.MarkAsRoom(x, y, name)
			}
		}
		res.Rooms = append(res.Rooms, dungeon.NewGridRoom(r.MinX, r.MinY, r.Width, r.Height, name))
	}

	if err := validate(g.Name(), level, grid); err != nil {
		return nil, err
	}

	g.logger().Printf("%s level %d: %dx%d maze, %d rooms", g.Name(), level, cols, rows, res.Placed)
	return res, nil
}

// walkCoarseMaze carves lines out from the centre of m in all four
// directions, branching as it goes. Deeper levels walk further and branch more.
func walkCoarseMaze(m *world.Grid, rng *rand.Rand, level int) {
	// Level 1: 0.28, Level 10: 0.55
	branchProb := float32(0.25) + float32(level)*0.03
	if branchProb > 0.65 {
		branchProb = 0.65
	}

	// Level 1: 1-2, Level 10: 3-7
	minDist := 1 + level/4
	maxDist := 2 + level/2

	x, y := m.Width()/2, m.Height()/2
	for _, dir := range world.AllDirections() {
		walkLine(m, rng, x, y, dir, branchProb, minDist, maxDist)
	}

	// Extra lines start from cells already carved so the maze stays connected
	for i := 0; i < level/2; i++ {
		var carved [][2]int
		m.ForEachCell(func(cx, cy int, cell *world.Cell) {
			if cell.Carved {
				carved = append(carved, [2]int{cx, cy})
			}
		})
		if len(carved) == 0 {
			return
		}
		start := carved[rng.Intn(len(carved))]
		walkLine(m, rng, start[0], start[1], randomDirection(rng), branchProb, minDist, maxDist)
	}
}

// randomDirection returns a random cardinal direction
func randomDirection(rng *rand.Rand) world.Direction {
	dirs := world.AllDirections()
	return dirs[rng.Intn(len(dirs))]
}

// walkLine carves a straight line of up to maxDist steps from (x, y) in dir,
// stopping at the maze edge. Each step may spawn a branch in a random
// direction with a lower branching probability.
func walkLine(m *world.Grid, rng *rand.Rand, x, y int, dir world.Direction, branchProbability float32, minDist, maxDist int) {
	if !dir.IsSingle() {
		dir = randomDirection(rng)
	}
	dx, dy := dir.Delta()
	distance := minDist + rng.Intn(maxDist-minDist+1)

	for step := 0; step < distance; step++ {
		nx, ny := x+dx, y+dy
		if !m.IsValidPosition(nx, ny) {
			return
		}
		m.CarvePassage(m.Index(x, y), m.Index(nx, ny), false)

		if rng.Float32() < branchProbability {
			walkLine(m, rng, x, y, randomDirection(rng), branchProbability-.1, minDist, maxDist)
		}

		x, y = nx, ny
	}
}
