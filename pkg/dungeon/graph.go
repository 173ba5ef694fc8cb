// Package dungeon models a dungeon as a graph of rooms joined by connections,
// and provides the builder that assembles one.
package dungeon

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

var (
	// ErrRoomNotFound is returned when a room identity is not in the graph.
	ErrRoomNotFound = errors.New("room not found")
	// ErrEdgeNotFound is returned when no connection joins two rooms.
	ErrEdgeNotFound = errors.New("connection not found")
)

// IndexedEdge is an edge tagged with its resolved endpoint indices.
type IndexedEdge[E any] struct {
	From  int
	To    int
	Value E
}

// IndexedGraph is a read-only graph whose nodes are addressed by integer index.
type IndexedGraph[N, E any] interface {
	NumberOfNodes() int
	NumberOfEdges() int
	Nodes() []int
	Edges() []IndexedEdge[E]
	Node(index int) (N, error)
	Neighbors(index int) []int
	OutEdges(index int) []IndexedEdge[E]
	InEdges(index int) []IndexedEdge[E]
	Parents(index int) []int
	ContainsEdge(from, to int) bool
	Edge(from, to int) (E, error)
	TryEdge(from, to int) (E, bool)
}

var _ IndexedGraph[Room[struct{}], Connection[int]] = (*Graph[struct{}, int])(nil)

// Graph is an immutable snapshot of rooms and the connections between them.
// Every query is derived from the room map and the connection list.
type Graph[R any, C comparable] struct {
	rooms       map[int]Room[R]
	order       []int
	connections []Connection[C]
}

// NumberOfNodes returns the number of rooms
func (g *Graph[R, C]) NumberOfNodes() int {
	return len(g.rooms)
}

// NumberOfEdges returns the number of connections
func (g *Graph[R, C]) NumberOfEdges() int {
	return len(g.connections)
}

// Nodes returns the room identities in the order they were added to the builder
func (g *Graph[R, C]) Nodes() []int {
	nodes := make([]int, len(g.order))
	copy(nodes, g.order)
	return nodes
}

// Rooms returns the rooms in node order
func (g *Graph[R, C]) Rooms() []Room[R] {
	rooms := make([]Room[R], 0, len(g.order))
	for _, id := range g.order {
		rooms = append(rooms, g.rooms[id])
	}
	return rooms
}

// Connections returns the connections in insertion order
func (g *Graph[R, C]) Connections() []Connection[C] {
	connections := make([]Connection[C], len(g.connections))
	copy(connections, g.connections)
	return connections
}

func indexed[C comparable](c Connection[C]) IndexedEdge[Connection[C]] {
	return IndexedEdge[Connection[C]]{From: c.From.RoomID, To: c.To.RoomID, Value: c}
}

// Edges returns every connection tagged with its (from, to) room identities
func (g *Graph[R, C]) Edges() []IndexedEdge[Connection[C]] {
	edges := make([]IndexedEdge[Connection[C]], 0, len(g.connections))
	for _, c := range g.connections {
		edges = append(edges, indexed(c))
	}
	return edges
}

// Node returns the room with the given identity
func (g *Graph[R, C]) Node(id int) (Room[R], error) {
	room, ok := g.rooms[id]
	if !ok {
		return room, fmt.Errorf("room %d: %w", id, ErrRoomNotFound)
	}
	return room, nil
}

// HasNode returns true if the room is in the graph
func (g *Graph[R, C]) HasNode(id int) bool {
	_, ok := g.rooms[id]
	return ok
}

// Neighbors returns the distinct rooms joined to id by any connection, in the
// order they are first encountered.
func (g *Graph[R, C]) Neighbors(id int) []int {
	seen := mapset.New[int]()
	var neighbors []int
	for _, c := range g.connections {
		if !c.Touches(id) {
			continue
		}
		other := c.Other(id)
		if seen.Has(other) {
			continue
		}
		seen.Put(other)
		neighbors = append(neighbors, other)
	}
	return neighbors
}

// OutEdges returns the connections stored with id as their first endpoint
func (g *Graph[R, C]) OutEdges(id int) []IndexedEdge[Connection[C]] {
	var edges []IndexedEdge[Connection[C]]
	for _, c := range g.connections {
		if c.From.RoomID == id {
			edges = append(edges, indexed(c))
		}
	}
	return edges
}

// InEdges returns the connections stored with id as their second endpoint
func (g *Graph[R, C]) InEdges(id int) []IndexedEdge[Connection[C]] {
	var edges []IndexedEdge[Connection[C]]
	for _, c := range g.connections {
		if c.To.RoomID == id {
			edges = append(edges, indexed(c))
		}
	}
	return edges
}

// Parents returns the first endpoints of the connections ending at id
func (g *Graph[R, C]) Parents(id int) []int {
	var parents []int
	for _, c := range g.connections {
		if c.To.RoomID == id {
			parents = append(parents, c.From.RoomID)
		}
	}
	return parents
}

// ContainsEdge returns true if a connection joins the two rooms in either order
func (g *Graph[R, C]) ContainsEdge(from, to int) bool {
	_, ok := g.TryEdge(from, to)
	return ok
}

// TryEdge returns the first connection joining the two rooms in either order
func (g *Graph[R, C]) TryEdge(from, to int) (Connection[C], bool) {
	for _, c := range g.connections {
		if c.Joins(from, to) {
			return c, true
		}
	}
	var zero Connection[C]
	return zero, false
}

// Edge is TryEdge reporting ErrEdgeNotFound when the rooms are not joined
func (g *Graph[R, C]) Edge(from, to int) (Connection[C], error) {
	c, ok := g.TryEdge(from, to)
	if !ok {
		return c, fmt.Errorf("rooms %d-%d: %w", from, to, ErrEdgeNotFound)
	}
	return c, nil
}
