package dungeon

import (
	"errors"
	"testing"

	"github.com/zyedidia/generic/mapset"
)

func TestAddRoom_IdentitiesUniqueAcrossBuilders(t *testing.T) {
	ids := NewIDSource()
	b1 := NewBuilder[string, int](ids)
	b2 := NewBuilder[string, int](ids)

	seen := mapset.New[int]()
	for i := 0; i < 50; i++ {
		for _, id := range []int{b1.AddRoom(2, 1, "a"), b2.AddRoom(2, 1, "b")} {
			if seen.Has(id) {
				t.Fatalf("identity %d returned twice", id)
			}
			seen.Put(id)
		}
	}
}

func TestAddRoom_DefaultSourceUnique(t *testing.T) {
	b1 := NewBuilder[int, int](nil)
	b2 := NewBuilder[int, int](nil)
	a := b1.AddRoom(1, 1, 0)
	b := b2.AddRoom(1, 1, 0)
	if a == b {
		t.Errorf("rooms from two default builders share identity %d", a)
	}
}

func TestAddRoom_StoresRecord(t *testing.T) {
	b := NewBuilder[string, int](NewIDSource())
	id := b.AddRoom(3, 2.5, "vault")
	room, err := b.Build().Node(id)
	if err != nil {
		t.Fatalf("Node(%d) error = %v", id, err)
	}
	if room.ID != id || room.Exits != 3 || room.Weight != 2.5 || room.Data != "vault" {
		t.Errorf("Node(%d) = %+v, want {ID:%d Exits:3 Weight:2.5 Data:vault}", id, room, id)
	}
}

func TestAddConnection_Deduplicates(t *testing.T) {
	b := NewBuilder[int, string](NewIDSource())
	r1 := b.AddRoom(1, 1, 0)
	r2 := b.AddRoom(1, 1, 0)
	b.AddConnection(r1, r2, "door", 1)
	b.AddConnection(r1, r2, "door", 1)
	if got := b.Build().NumberOfEdges(); got != 1 {
		t.Errorf("NumberOfEdges() = %d, want 1", got)
	}
}

func TestAddConnection_DistinctPayloadsKept(t *testing.T) {
	b := NewBuilder[int, string](NewIDSource())
	r1 := b.AddRoom(1, 1, 0)
	r2 := b.AddRoom(1, 1, 0)
	b.AddConnection(r1, r2, "door", 1)
	b.AddConnection(r1, r2, "gate", 1)
	b.AddConnection(r1, r2, "door", 2)
	b.AddConnection(r2, r1, "door", 1)
	if got := b.NumberOfConnections(); got != 4 {
		t.Errorf("NumberOfConnections() = %d, want 4", got)
	}
}

func TestAddConnection_ExitIndexUnset(t *testing.T) {
	b := NewBuilder[int, int](NewIDSource())
	r1 := b.AddRoom(1, 1, 0)
	r2 := b.AddRoom(1, 1, 0)
	b.AddDefaultConnection(r1, r2, 7)
	c, err := b.Build().Edge(r1, r2)
	if err != nil {
		t.Fatalf("Edge() error = %v", err)
	}
	if c.From.Exit != NoExit || c.To.Exit != NoExit {
		t.Errorf("exits = (%d, %d), want (-1, -1)", c.From.Exit, c.To.Exit)
	}
	if c.Weight != DefaultConnectionWeight {
		t.Errorf("Weight = %v, want %v", c.Weight, DefaultConnectionWeight)
	}
}

func TestBuild_SnapshotIndependent(t *testing.T) {
	b := NewBuilder[int, int](NewIDSource())
	r1 := b.AddRoom(1, 1, 0)
	r2 := b.AddRoom(1, 1, 0)
	b.AddConnection(r1, r2, 0, 1)
	g := b.Build()

	r3 := b.AddRoom(1, 1, 0)
	b.AddConnection(r2, r3, 0, 1)

	if g.NumberOfNodes() != 2 || g.NumberOfEdges() != 1 {
		t.Errorf("snapshot changed: nodes=%d edges=%d, want 2 and 1", g.NumberOfNodes(), g.NumberOfEdges())
	}
	if g2 := b.Build(); g2.NumberOfNodes() != 3 || g2.NumberOfEdges() != 2 {
		t.Errorf("second Build: nodes=%d edges=%d, want 3 and 2", g2.NumberOfNodes(), g2.NumberOfEdges())
	}
}

func TestMakeSequentialRoomConnections_Chain(t *testing.T) {
	b := NewBuilder[int, string](NewIDSource())
	var ids []int
	for i := 0; i < 5; i++ {
		ids = append(ids, b.AddRoom(2, 1, i))
	}
	if err := b.MakeSequentialRoomConnections(0, "hall", 2); err != nil {
		t.Fatalf("MakeSequentialRoomConnections error = %v", err)
	}
	g := b.Build()
	if g.NumberOfEdges() != 4 {
		t.Fatalf("NumberOfEdges() = %d, want 4", g.NumberOfEdges())
	}
	for i := 0; i+1 < len(ids); i++ {
		c, ok := g.TryEdge(ids[i], ids[i+1])
		if !ok {
			t.Errorf("rooms %d-%d not connected", ids[i], ids[i+1])
			continue
		}
		if c.Weight != 2 || c.Data != "hall" {
			t.Errorf("connection %d-%d = %+v, want weight 2 data hall", ids[i], ids[i+1], c)
		}
	}
}

func TestMakeSequentialRoomConnections_Skip(t *testing.T) {
	b := NewBuilder[int, int](NewIDSource())
	var ids []int
	for i := 0; i < 6; i++ {
		ids = append(ids, b.AddRoom(1, 1, i))
	}
	if err := b.MakeSequentialRoomConnections(1, 0, 1); err != nil {
		t.Fatalf("MakeSequentialRoomConnections error = %v", err)
	}
	g := b.Build()
	if g.NumberOfEdges() != 3 {
		t.Fatalf("NumberOfEdges() = %d, want 3", g.NumberOfEdges())
	}
	for _, pair := range [][2]int{{0, 1}, {2, 3}, {4, 5}} {
		if !g.ContainsEdge(ids[pair[0]], ids[pair[1]]) {
			t.Errorf("rooms %d-%d not connected", ids[pair[0]], ids[pair[1]])
		}
	}
	if g.ContainsEdge(ids[1], ids[2]) {
		t.Error("rooms 1-2 connected, want skipped")
	}
}

func TestMakeSequentialRoomConnections_TooFewRooms(t *testing.T) {
	b := NewBuilder[int, int](NewIDSource())
	if err := b.MakeSequentialRoomConnections(0, 0, 1); !errors.Is(err, ErrTooFewRooms) {
		t.Errorf("empty builder error = %v, want ErrTooFewRooms", err)
	}
	b.AddRoom(1, 1, 0)
	if err := b.MakeSequentialRoomConnections(0, 0, 1); !errors.Is(err, ErrTooFewRooms) {
		t.Errorf("single room error = %v, want ErrTooFewRooms", err)
	}
	if b.NumberOfConnections() != 0 {
		t.Errorf("NumberOfConnections() = %d, want 0", b.NumberOfConnections())
	}
}

func TestMakeSequentialRoomConnections_NegativeSkip(t *testing.T) {
	b := NewBuilder[int, int](NewIDSource())
	b.AddRoom(1, 1, 0)
	b.AddRoom(1, 1, 0)
	if err := b.MakeSequentialRoomConnections(-1, 0, 1); !errors.Is(err, ErrInvalidSkip) {
		t.Errorf("error = %v, want ErrInvalidSkip", err)
	}
}
