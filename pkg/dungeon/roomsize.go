package dungeon

import (
	"errors"
	"fmt"
)

// ErrInvalidRoomSize is returned for room size bounds that cannot produce a room.
var ErrInvalidRoomSize = errors.New("invalid room size")

// RoomSizeData bounds the width and height of generated rooms and the moat
// kept between them.
type RoomSizeData struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
	Moat      int
}

// Room size presets
var (
	DefaultRoomSizes    = RoomSizeData{MinWidth: 4, MaxWidth: 8, MinHeight: 4, MaxHeight: 8, Moat: 1}
	SmallRoomSizes      = RoomSizeData{MinWidth: 3, MaxWidth: 5, MinHeight: 3, MaxHeight: 5, Moat: 1}
	LargeRoomSizes      = RoomSizeData{MinWidth: 6, MaxWidth: 10, MinHeight: 6, MaxHeight: 10, Moat: 3}
	ExtraLargeRoomSizes = RoomSizeData{MinWidth: 13, MaxWidth: 17, MinHeight: 6, MaxHeight: 10, Moat: 3}
)

// Validate checks that the bounds are positive and ordered
func (s RoomSizeData) Validate() error {
	switch {
	case s.MinWidth <= 0 || s.MinHeight <= 0:
		return fmt.Errorf("minimum %dx%d: %w", s.MinWidth, s.MinHeight, ErrInvalidRoomSize)
	case s.MaxWidth < s.MinWidth || s.MaxHeight < s.MinHeight:
		return fmt.Errorf("maximum %dx%d below minimum %dx%d: %w",
			s.MaxWidth, s.MaxHeight, s.MinWidth, s.MinHeight, ErrInvalidRoomSize)
	case s.Moat < 0:
		return fmt.Errorf("moat %d: %w", s.Moat, ErrInvalidRoomSize)
	}
	return nil
}
