package raster

import (
	"dungeonforge/pkg/dungeon"
	"dungeonforge/pkg/engine/world"
)

// CarveGridRoom opens the room's rectangle: interior cells in every
// direction, border cells along the border and inward, corners inward only.
// The outer boundary stays closed.
func CarveGridRoom[R any](m Maze, room dungeon.GridRoom[R]) {
	carveGridRoom(m, room, "", false)
}

func carveGridRoom[R any](m Maze, room dungeon.GridRoom[R], name string, preserveExisting bool) {
	marker, marks := m.(RoomMarker)
	left, right := room.MinX, room.MaxX()
	bottom, top := room.MinY, room.MaxY()

	for y := bottom; y <= top; y++ {
		for x := left; x <= right; x++ {
			if preserveExisting && m.IsCarved(x, y) {
				continue
			}
			m.AddDirections(x, y, roomCellDirections(x, y, left, right, bottom, top))
			if marks {
				marker.MarkAsRoom(x, y, name)
			}
		}
	}
}

// roomCellDirections returns the open directions of (x, y) inside the
// rectangle: every direction except those leading out of it.
func roomCellDirections(x, y, left, right, bottom, top int) world.Direction {
	dirs := world.All
	if x == left {
		dirs &^= world.West
	}
	if x == right {
		dirs &^= world.East
	}
	if y == bottom {
		dirs &^= world.South
	}
	if y == top {
		dirs &^= world.North
	}
	return dirs
}
