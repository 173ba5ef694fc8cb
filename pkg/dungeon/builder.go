package dungeon

import (
	"errors"
	"fmt"
	"maps"

	"github.com/zyedidia/generic/mapset"
)

var (
	// ErrTooFewRooms is returned when sequential connections are requested
	// with fewer than two rooms in the builder.
	ErrTooFewRooms = errors.New("at least two rooms are required")
	// ErrInvalidSkip is returned for a negative sequential skip.
	ErrInvalidSkip = errors.New("skip must not be negative")
)

// Builder accumulates rooms and connections and produces Graph snapshots.
// A Builder is not safe for concurrent use.
type Builder[R any, C comparable] struct {
	ids *IDSource

	rooms map[int]Room[R]
	order []int

	seen        mapset.Set[Connection[C]]
	connections []Connection[C]
}

// NewBuilder creates an empty builder drawing identities from ids.
// A nil ids uses DefaultIDSource.
func NewBuilder[R any, C comparable](ids *IDSource) *Builder[R, C] {
	if ids == nil {
		ids = DefaultIDSource
	}
	return &Builder[R, C]{
		ids:   ids,
		rooms: make(map[int]Room[R]),
		seen:  mapset.New[Connection[C]](),
	}
}

// AddRoom creates a room with the next identity and returns that identity
func (b *Builder[R, C]) AddRoom(exits int, weight float64, data R) int {
	room := Room[R]{
		ID:     b.ids.Next(),
		Exits:  exits,
		Weight: weight,
		Data:   data,
	}
	b.rooms[room.ID] = room
	b.order = append(b.order, room.ID)
	return room.ID
}

// AddConnection joins two rooms. Adding a connection identical to one already
// present is a no-op.
func (b *Builder[R, C]) AddConnection(room1, room2 int, data C, weight float64) {
	b.AddConnectionWithExits(Endpoint{room1, NoExit}, Endpoint{room2, NoExit}, data, weight)
}

// AddDefaultConnection joins two rooms with DefaultConnectionWeight
func (b *Builder[R, C]) AddDefaultConnection(room1, room2 int, data C) {
	b.AddConnection(room1, room2, data, DefaultConnectionWeight)
}

// AddConnectionWithExits joins two rooms keeping the exit index of each side
func (b *Builder[R, C]) AddConnectionWithExits(from, to Endpoint, data C, weight float64) {
	c := Connection[C]{From: from, To: to, Weight: weight, Data: data}
	if b.seen.Has(c) {
		return
	}
	b.seen.Put(c)
	b.connections = append(b.connections, c)
}

// MakeSequentialRoomConnections joins rooms in the order they were added.
// With skip 0 every room is joined to the next; otherwise after each join the
// walk jumps skip further rooms ahead, so skip 1 pairs up (0,1), (2,3), ...
func (b *Builder[R, C]) MakeSequentialRoomConnections(skip int, data C, weight float64) error {
	if skip < 0 {
		return fmt.Errorf("skip %d: %w", skip, ErrInvalidSkip)
	}
	if len(b.order) < 2 {
		return fmt.Errorf("sequential connections over %d rooms: %w", len(b.order), ErrTooFewRooms)
	}
	for i := 0; i+1 < len(b.order); i += 1 + skip {
		b.AddConnection(b.order[i], b.order[i+1], data, weight)
	}
	return nil
}

// NumberOfRooms returns the number of rooms added so far
func (b *Builder[R, C]) NumberOfRooms() int {
	return len(b.order)
}

// NumberOfConnections returns the number of distinct connections added so far
func (b *Builder[R, C]) NumberOfConnections() int {
	return len(b.connections)
}

// Build returns a snapshot of the current rooms and connections. The builder
// remains usable and later changes do not affect the snapshot.
func (b *Builder[R, C]) Build() *Graph[R, C] {
	order := make([]int, len(b.order))
	copy(order, b.order)
	connections := make([]Connection[C], len(b.connections))
	copy(connections, b.connections)
	return &Graph[R, C]{
		rooms:       maps.Clone(b.rooms),
		order:       order,
		connections: connections,
	}
}
