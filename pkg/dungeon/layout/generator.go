package layout

import (
	"math/rand"

	"dungeonforge/pkg/dungeon"
)

// Bounds describes the grid a room is placed on and the default size range
// of generated rooms.
type Bounds struct {
	GridWidth   int
	GridHeight  int
	MinRoomSize int
	MaxRoomSize int
}

// Fits returns true if the rectangle lies entirely inside the grid
func (b Bounds) Fits(minX, minY, width, height int) bool {
	return width > 0 && height > 0 &&
		minX >= 0 && minY >= 0 &&
		minX+width <= b.GridWidth && minY+height <= b.GridHeight
}

// RoomGenerator proposes a placement for a room. Returning false means no
// candidate could be produced for this draw.
type RoomGenerator[R any] interface {
	Generate(room dungeon.Room[R], bounds Bounds, rng *rand.Rand) (dungeon.GridRoom[R], bool)
}

// RoomGeneratorFunc adapts a function to RoomGenerator
type RoomGeneratorFunc[R any] func(room dungeon.Room[R], bounds Bounds, rng *rand.Rand) (dungeon.GridRoom[R], bool)

// Generate calls f
func (f RoomGeneratorFunc[R]) Generate(room dungeon.Room[R], bounds Bounds, rng *rand.Rand) (dungeon.GridRoom[R], bool) {
	return f(room, bounds, rng)
}

// UniformRoomGenerator draws width and height uniformly from
// [MinRoomSize, MaxRoomSize] and the corner uniformly among the positions
// where the room fits on the grid.
type UniformRoomGenerator[R any] struct{}

// Generate draws one candidate
func (UniformRoomGenerator[R]) Generate(room dungeon.Room[R], b Bounds, rng *rand.Rand) (dungeon.GridRoom[R], bool) {
	sizes := dungeon.RoomSizeData{
		MinWidth:  b.MinRoomSize,
		MaxWidth:  b.MaxRoomSize,
		MinHeight: b.MinRoomSize,
		MaxHeight: b.MaxRoomSize,
	}
	return generateSized(room, sizes, b, rng)
}

// SizedRoomGenerator draws width and height from independent ranges
type SizedRoomGenerator[R any] struct {
	Sizes dungeon.RoomSizeData
}

// Generate draws one candidate
func (g SizedRoomGenerator[R]) Generate(room dungeon.Room[R], b Bounds, rng *rand.Rand) (dungeon.GridRoom[R], bool) {
	return generateSized(room, g.Sizes, b, rng)
}

func generateSized[R any](room dungeon.Room[R], s dungeon.RoomSizeData, b Bounds, rng *rand.Rand) (dungeon.GridRoom[R], bool) {
	var none dungeon.GridRoom[R]
	if s.Validate() != nil {
		return none, false
	}
	width := s.MinWidth + rng.Intn(s.MaxWidth-s.MinWidth+1)
	height := s.MinHeight + rng.Intn(s.MaxHeight-s.MinHeight+1)
	if width > b.GridWidth || height > b.GridHeight {
		return none, false
	}
	minX := rng.Intn(b.GridWidth - width + 1)
	minY := rng.Intn(b.GridHeight - height + 1)
	return dungeon.NewGridRoom(minX, minY, width, height, room.Data), true
}
