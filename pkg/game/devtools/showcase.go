package devtools

import (
	"fmt"
	"math/rand"

	"dungeonforge/pkg/dungeon"
	"dungeonforge/pkg/dungeon/raster"
	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/generator"
)

// ShowcaseStrategies are the corridor strategies laid out by Showcase, one row each
var ShowcaseStrategies = []dungeon.PassageRasterizerType{
	dungeon.Elbow,
	dungeon.ShortestPathUsingExisting,
	dungeon.Opening,
	dungeon.None,
}

// Showcase builds a hard-coded developer floor: one band per corridor
// strategy, each holding a pair of rooms joined with that strategy, with a
// 3-cell margin between bands. Row pairs are not joined to each other.
func Showcase() (*generator.Result, error) {
	const (
		margin     = 3
		bandHeight = 8
		width      = 40
	)
	height := len(ShowcaseStrategies)*(bandHeight+margin) + margin

	ids := dungeon.NewIDSource()
	b := dungeon.NewBuilder[dungeon.GridRoom[string], dungeon.GridPassageConnectionData[string]](ids)

	// Bands run from the top of the map (highest y) down
	for i, strategy := range ShowcaseStrategies {
		base := height - margin - (i+1)*bandHeight - i*margin
		var west, east dungeon.GridRoom[string]
		if strategy == dungeon.Opening {
			// Abutting pair sharing a border
			west = dungeon.NewGridRoom(2, base+2, 6, 4, fmt.Sprintf("%s West", strategy))
			east = dungeon.NewGridRoom(8, base+1, 6, 5, fmt.Sprintf("%s East", strategy))
		} else {
			// Offset pair so bends show
			west = dungeon.NewGridRoom(2, base+4, 4, 4, fmt.Sprintf("%s West", strategy))
			east = dungeon.NewGridRoom(24, base, 5, 4, fmt.Sprintf("%s East", strategy))
		}
		a := b.AddRoom(1, 1, west)
		c := b.AddRoom(1, 1, east)
		b.AddConnection(a, c, dungeon.NewGridPassageConnectionData(strategy.String(), strategy), 2)
	}
	placed := b.Build()

	grid := world.NewGrid(width, height, rand.New(rand.NewSource(1)))
	stats, err := raster.Rasterize(grid, placed, false)
	if err != nil {
		return nil, fmt.Errorf("showcase: %w", err)
	}

	res := &generator.Result{
		Generator:   "Showcase",
		Seed:        1,
		Grid:        grid,
		Connections: placed.NumberOfEdges(),
		Placed:      placed.NumberOfNodes(),
		Carved:      stats,
	}
	for _, room := range placed.Rooms() {
		res.Rooms = append(res.Rooms, room.Data)
	}
	return res, nil
}
