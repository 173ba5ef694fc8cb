package generator

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"dungeonforge/pkg/dungeon"
	"dungeonforge/pkg/dungeon/layout"
	"dungeonforge/pkg/dungeon/raster"
	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/floor"
)

// RoomsAndCorridorsGenerator scatters a chain of themed rooms over the grid
// and joins consecutive rooms, plus a few loops, with corridors.
type RoomsAndCorridorsGenerator struct {
	Config
}

// Name returns the name of this generator
func (g *RoomsAndCorridorsGenerator) Name() string {
	return "Rooms and Corridors"
}

// Constants for room scaling
const (
	baseRooms = 4  // Rooms on the first floor
	maxRooms  = 16 // Upper bound on rooms per floor
	maxCols   = 100
	maxRows   = 60
)

// roomsScale returns the grid size, room count and room sizes for a level.
// Level 1: 36x24 with 5 rooms, level 9: 84x56 with 13 larger rooms.
func roomsScale(level int) (width, height, rooms int, sizes dungeon.RoomSizeData) {
	if floor.IsFinalFloor(level) {
		// The final floor is a small, tight cluster
		return 30, 20, baseRooms, dungeon.SmallRoomSizes
	}

	width = min(30+level*6, maxCols)
	height = min(20+level*4, maxRows)
	rooms = min(baseRooms+level, maxRooms)
	sizes = dungeon.DefaultRoomSizes
	if level > 5 {
		sizes = dungeon.LargeRoomSizes
	}
	return width, height, rooms, sizes
}

// Generate creates a new grid for the given level
func (g *RoomsAndCorridorsGenerator) Generate(level int) (*world.Grid, error) {
	res, err := g.GenerateDetailed(level)
	if err != nil {
		return nil, err
	}
	return res.Grid, nil
}

// GenerateDetailed creates a new grid and reports the rooms behind it
func (g *RoomsAndCorridorsGenerator) GenerateDetailed(level int) (*Result, error) {
	if level < 1 {
		level = 1
	}
	rng, seed := g.source()
	theme := floor.ThemeFor(level)
	ids := dungeon.NewIDSource()
	width, height, rooms, sizes := roomsScale(level)

	// Abstract dungeon: a chain of named rooms
	b := dungeon.NewBuilder[string, string](ids)
	roomIDs := make([]int, 0, rooms)
	for i := 0; i < rooms; i++ {
		roomIDs = append(roomIDs, b.AddRoom(2, 1, floor.RoomName(rng, theme)))
	}
	if err := b.MakeSequentialRoomConnections(0, "corridor", dungeon.DefaultConnectionWeight); err != nil {
		return nil, fmt.Errorf("%s level %d: %w", g.Name(), level, err)
	}

	// Deeper floors get loops
	for i := 0; i < level/3; i++ {
		a, c := rng.Intn(len(roomIDs)), rng.Intn(len(roomIDs))
		if a != c {
			b.AddDefaultConnection(roomIDs[a], roomIDs[c], "loop")
		}
	}

	l := layout.New(width, height, b.Build(),
		layout.WithRand(rng),
		layout.WithRoomSizes(sizes),
		layout.WithRasterizer(g.Rasterizer),
		layout.WithIDSource(ids),
		layout.WithLogger(g.logger()),
	)
	placed := l.RandomRoomPlacement()
	if placed.NumberOfNodes() == 0 {
		return nil, fmt.Errorf("%s level %d: %w", g.Name(), level, ErrNoRooms)
	}
	if g.Rasterizer == dungeon.Opening {
		placed = elbowWhereApart(placed, ids)
	}

	grid := world.NewGrid(width, height, rng)
	stats, err := raster.Rasterize(grid, placed, false)
	if err != nil {
		return nil, fmt.Errorf("%s level %d: %w", g.Name(), level, err)
	}

	stitched := 0
	if g.Rasterizer != dungeon.None {
		stitched = stitch(grid, placed)
	}

	if err := validate(g.Name(), level, grid); err != nil {
		return nil, err
	}

	res := &Result{
		Generator:   g.Name(),
		Level:       level,
		Seed:        seed,
		Theme:       theme,
		Grid:        grid,
		Connections: placed.NumberOfEdges(),
		Placed:      placed.NumberOfNodes(),
		Dropped:     len(l.Dropped()),
		Stitched:    stitched,
		Carved:      stats,
	}
	for _, room := range placed.Rooms() {
		res.Rooms = append(res.Rooms, room.Data)
	}

	g.logger().Printf("%s level %d: %d rooms placed, %d dropped, %d stitched",
		g.Name(), level, res.Placed, res.Dropped, res.Stitched)
	return res, nil
}

type placedGraph = dungeon.Graph[dungeon.GridRoom[string], dungeon.GridPassageConnectionData[string]]

// elbowWhereApart rebuilds g with every Opening connection between rooms that
// do not share a border switched to Elbow. The layout keeps a moat of at
// least one cell, so openings only survive between rooms placed by hand.
func elbowWhereApart(g *placedGraph, ids *dungeon.IDSource) *placedGraph {
	b := dungeon.NewBuilder[dungeon.GridRoom[string], dungeon.GridPassageConnectionData[string]](ids)
	mapping := make(map[int]int, g.NumberOfNodes())
	for _, room := range g.Rooms() {
		mapping[room.ID] = b.AddRoom(room.Exits, room.Weight, room.Data)
	}
	for _, c := range g.Connections() {
		data := c.Data
		if data.Rasterizer == dungeon.Opening {
			from, errFrom := g.Node(c.From.RoomID)
			to, errTo := g.Node(c.To.RoomID)
			if errFrom == nil && errTo == nil && !from.Data.Abuts(to.Data) {
				data.Rasterizer = dungeon.Elbow
			}
		}
		b.AddConnectionWithExits(
			dungeon.Endpoint{RoomID: mapping[c.From.RoomID], Exit: c.From.Exit},
			dungeon.Endpoint{RoomID: mapping[c.To.RoomID], Exit: c.To.Exit},
			data,
			c.Weight,
		)
	}
	return b.Build()
}

// components groups room identities by connectivity, in node order
func components[R any, C comparable](g *dungeon.Graph[R, C]) [][]int {
	seen := mapset.New[int]()
	var out [][]int
	for _, id := range g.Nodes() {
		if seen.Has(id) {
			continue
		}
		seen.Put(id)
		var comp []int
		stack := []int{id}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, n)
			for _, next := range g.Neighbors(n) {
				if !seen.Has(next) {
					seen.Put(next)
					stack = append(stack, next)
				}
			}
		}
		out = append(out, comp)
	}
	return out
}

// stitch joins the components of a placed graph with elbow corridors
// between their first rooms and returns the number of corridors carved.
func stitch[C comparable](grid *world.Grid, g *dungeon.Graph[dungeon.GridRoom[string], C]) int {
	comps := components(g)
	for i := 1; i < len(comps); i++ {
		from, err := g.Node(comps[i-1][0])
		if err != nil {
			continue
		}
		to, err := g.Node(comps[i][0])
		if err != nil {
			continue
		}
		raster.CarveElbowPassage(grid, from.Data, to.Data, false)
	}
	return max(len(comps)-1, 0)
}
