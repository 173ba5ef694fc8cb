// Package mazegraph derives dungeon graphs from coarse mazes: every carved
// maze cell becomes a full-size room and every open wall between two cells
// becomes an opening between their rooms.
package mazegraph

import (
	"fmt"

	"dungeonforge/pkg/dungeon"
	"dungeonforge/pkg/engine/world"
)

// MazeReader is the read-only view of a maze needed to derive rooms
type MazeReader interface {
	Width() int
	Height() int
	Directions(x, y int) world.Direction
}

var _ MazeReader = (*world.Grid)(nil)

// RoomGraph is a dungeon whose rooms carry the maze cell's open directions
// and whose connections carry the strategy that carves them.
type RoomGraph = dungeon.Graph[dungeon.GridRoom[world.Direction], dungeon.PassageRasterizerType]

// PassageGraph is a RoomGraph ready for raster.RasterizeDungeon
type PassageGraph = dungeon.Graph[dungeon.GridRoom[world.Direction], dungeon.GridPassageConnectionData[dungeon.PassageRasterizerType]]

// FromMaze turns each carved cell of m into a roomWidth x roomHeight room at
// (x*roomWidth, y*roomHeight) and each open North or East wall into an
// Opening connection of weight openingWidth. Exit indices count up per room
// in the order its connections are found.
func FromMaze(m MazeReader, roomWidth, roomHeight, openingWidth int, ids *dungeon.IDSource) (*RoomGraph, error) {
	if roomWidth < 1 || roomHeight < 1 || openingWidth < 1 {
		return nil, fmt.Errorf("room %dx%d with opening %d: %w", roomWidth, roomHeight, openingWidth, dungeon.ErrInvalidRoomSize)
	}

	width, height := m.Width(), m.Height()
	b := dungeon.NewBuilder[dungeon.GridRoom[world.Direction], dungeon.PassageRasterizerType](ids)

	roomIDs := make([]int, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			roomIDs[x+y*width] = -1
			dirs := m.Directions(x, y)
			if dirs == world.None {
				continue
			}
			room := dungeon.NewGridRoom(x*roomWidth, y*roomHeight, roomWidth, roomHeight, dirs)
			roomIDs[x+y*width] = b.AddRoom(dirs.Count(), 1, room)
		}
	}

	roomAt := func(x, y int) int {
		if x < 0 || x >= width || y < 0 || y >= height {
			return -1
		}
		return roomIDs[x+y*width]
	}

	exits := make(map[int]int)
	nextExit := func(id int) int {
		e := exits[id]
		exits[id] = e + 1
		return e
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			id := roomAt(x, y)
			if id == -1 {
				continue
			}
			dirs := m.Directions(x, y)
			for _, dir := range []world.Direction{world.North, world.East} {
				if !dirs.Has(dir) {
					continue
				}
				dx, dy := dir.Delta()
				other := roomAt(x+dx, y+dy)
				if other == -1 {
					continue
				}
				b.AddConnectionWithExits(
					dungeon.Endpoint{RoomID: id, Exit: nextExit(id)},
					dungeon.Endpoint{RoomID: other, Exit: nextExit(other)},
					dungeon.Opening,
					float64(openingWidth),
				)
			}
		}
	}

	return b.Build(), nil
}

// ToPassageGraph rebuilds g with each connection's strategy moved into
// GridPassageConnectionData. Rooms get fresh identities from ids and keep
// their exits, weight and rectangle.
func ToPassageGraph(g *RoomGraph, ids *dungeon.IDSource) *PassageGraph {
	b := dungeon.NewBuilder[dungeon.GridRoom[world.Direction], dungeon.GridPassageConnectionData[dungeon.PassageRasterizerType]](ids)
	mapping := make(map[int]int, g.NumberOfNodes())
	for _, room := range g.Rooms() {
		mapping[room.ID] = b.AddRoom(room.Exits, room.Weight, room.Data)
	}
	for _, c := range g.Connections() {
		b.AddConnectionWithExits(
			dungeon.Endpoint{RoomID: mapping[c.From.RoomID], Exit: c.From.Exit},
			dungeon.Endpoint{RoomID: mapping[c.To.RoomID], Exit: c.To.Exit},
			dungeon.NewGridPassageConnectionData(c.Data, c.Data),
			c.Weight,
		)
	}
	return b.Build()
}
