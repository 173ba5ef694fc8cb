package dungeon

// Room is a node of a dungeon graph.
type Room[R any] struct {
	// ID is unique across every room drawn from the same IDSource
	ID int
	// Exits is the number of entrances/exits the room was created with.
	// It is informational and not checked against the room's connections.
	Exits int
	// Weight is the cost of moving through the room
	Weight float64
	// Data is the caller's payload
	Data R
}

// Endpoint identifies one side of a connection: a room and one of its exits.
// Exit is -1 when the exit is not tracked.
type Endpoint struct {
	RoomID int
	Exit   int
}

// NoExit marks an endpoint whose exit index is not tracked.
const NoExit = -1

// DefaultConnectionWeight is the weight of a connection added without one.
const DefaultConnectionWeight float64 = 1

// Connection is an undirected passage between two rooms. Two connections
// are the same connection when every field compares equal.
type Connection[C comparable] struct {
	From   Endpoint
	To     Endpoint
	Weight float64
	Data   C
}

// Joins returns true if the connection links rooms a and b in either order
func (c Connection[C]) Joins(a, b int) bool {
	return (c.From.RoomID == a && c.To.RoomID == b) ||
		(c.From.RoomID == b && c.To.RoomID == a)
}

// Touches returns true if either endpoint is the given room
func (c Connection[C]) Touches(id int) bool {
	return c.From.RoomID == id || c.To.RoomID == id
}

// Other returns the endpoint room opposite id
func (c Connection[C]) Other(id int) int {
	if c.From.RoomID == id {
		return c.To.RoomID
	}
	return c.From.RoomID
}
