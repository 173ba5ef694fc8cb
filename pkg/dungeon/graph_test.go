package dungeon

import (
	"errors"
	"testing"
)

// diamond builds a -> b, a -> c, b -> d, c -> d plus a parallel a -> b.
func diamond(t *testing.T) (*Graph[string, string], [4]int) {
	t.Helper()
	b := NewBuilder[string, string](NewIDSource())
	var ids [4]int
	for i, name := range []string{"a", "b", "c", "d"} {
		ids[i] = b.AddRoom(2, 1, name)
	}
	b.AddConnection(ids[0], ids[1], "ab", 1)
	b.AddConnection(ids[0], ids[2], "ac", 1)
	b.AddConnection(ids[1], ids[3], "bd", 1)
	b.AddConnection(ids[2], ids[3], "cd", 1)
	b.AddConnection(ids[1], ids[0], "ba", 5)
	return b.Build(), ids
}

func TestGraph_NodesInInsertionOrder(t *testing.T) {
	g, ids := diamond(t)
	nodes := g.Nodes()
	if len(nodes) != 4 {
		t.Fatalf("len(Nodes()) = %d, want 4", len(nodes))
	}
	for i := range ids {
		if nodes[i] != ids[i] {
			t.Errorf("Nodes()[%d] = %d, want %d", i, nodes[i], ids[i])
		}
	}
	rooms := g.Rooms()
	if rooms[3].Data != "d" {
		t.Errorf("Rooms()[3].Data = %q, want %q", rooms[3].Data, "d")
	}
}

func TestGraph_NodeNotFound(t *testing.T) {
	g, _ := diamond(t)
	if _, err := g.Node(-42); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("Node(-42) error = %v, want ErrRoomNotFound", err)
	}
	if g.HasNode(-42) {
		t.Error("HasNode(-42) = true")
	}
}

func TestGraph_NeighborsUndirectedAndDistinct(t *testing.T) {
	g, ids := diamond(t)
	got := g.Neighbors(ids[1])
	// a (from ab, and again from ba) then d
	if len(got) != 2 || got[0] != ids[0] || got[1] != ids[3] {
		t.Errorf("Neighbors(b) = %v, want [%d %d]", got, ids[0], ids[3])
	}
	if got := g.Neighbors(ids[3]); len(got) != 2 {
		t.Errorf("Neighbors(d) = %v, want 2 rooms", got)
	}
}

func TestGraph_EdgesKeepStoredOrientation(t *testing.T) {
	g, ids := diamond(t)
	edges := g.Edges()
	if len(edges) != 5 {
		t.Fatalf("len(Edges()) = %d, want 5", len(edges))
	}
	last := edges[4]
	if last.From != ids[1] || last.To != ids[0] || last.Value.Data != "ba" {
		t.Errorf("Edges()[4] = %+v, want b->a 'ba'", last)
	}
}

func TestGraph_DirectedViews(t *testing.T) {
	g, ids := diamond(t)
	if got := len(g.OutEdges(ids[0])); got != 2 {
		t.Errorf("len(OutEdges(a)) = %d, want 2", got)
	}
	if got := len(g.InEdges(ids[3])); got != 2 {
		t.Errorf("len(InEdges(d)) = %d, want 2", got)
	}
	parents := g.Parents(ids[0])
	if len(parents) != 1 || parents[0] != ids[1] {
		t.Errorf("Parents(a) = %v, want [%d]", parents, ids[1])
	}
}

func TestGraph_EdgeLookupFirstMatchEitherOrder(t *testing.T) {
	g, ids := diamond(t)
	c, err := g.Edge(ids[1], ids[0])
	if err != nil {
		t.Fatalf("Edge(b, a) error = %v", err)
	}
	if c.Data != "ab" {
		t.Errorf("Edge(b, a).Data = %q, want first inserted %q", c.Data, "ab")
	}
	if !g.ContainsEdge(ids[3], ids[2]) {
		t.Error("ContainsEdge(d, c) = false, want true")
	}
	if g.ContainsEdge(ids[0], ids[3]) {
		t.Error("ContainsEdge(a, d) = true, want false")
	}
	if _, err := g.Edge(ids[0], ids[3]); !errors.Is(err, ErrEdgeNotFound) {
		t.Errorf("Edge(a, d) error = %v, want ErrEdgeNotFound", err)
	}
}

func TestGraph_ReturnedSlicesAreCopies(t *testing.T) {
	g, _ := diamond(t)
	nodes := g.Nodes()
	nodes[0] = -1
	if g.Nodes()[0] == -1 {
		t.Error("mutating Nodes() result changed the graph")
	}
	conns := g.Connections()
	conns[0].Data = "changed"
	if g.Connections()[0].Data == "changed" {
		t.Error("mutating Connections() result changed the graph")
	}
}
