package world

import (
	"math/rand"
	"testing"
)

func newTestGrid(w, h int) *Grid {
	return NewGrid(w, h, rand.New(rand.NewSource(1)))
}

func TestDirection_Opposite(t *testing.T) {
	cases := map[Direction]Direction{
		North:        South,
		East:         West,
		North | East: South | West,
		All:          All,
		None:         None,
	}
	for in, want := range cases {
		if got := in.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", in, got, want)
		}
	}
}

func TestDirection_String(t *testing.T) {
	if got := (North | West).String(); got != "N|W" {
		t.Errorf("(North|West).String() = %q, want %q", got, "N|W")
	}
	if got := None.String(); got != "None" {
		t.Errorf("None.String() = %q, want %q", got, "None")
	}
}

func TestDirection_Count(t *testing.T) {
	if got := (North | South | East).Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
}

func TestDirectionBetween(t *testing.T) {
	if got := DirectionBetween(2, 2, 2, 3); got != North {
		t.Errorf("DirectionBetween(2,2 -> 2,3) = %v, want North", got)
	}
	if got := DirectionBetween(2, 2, 1, 2); got != West {
		t.Errorf("DirectionBetween(2,2 -> 1,2) = %v, want West", got)
	}
	if got := DirectionBetween(0, 0, 1, 1); got != None {
		t.Errorf("DirectionBetween(diagonal) = %v, want None", got)
	}
}

func TestGrid_IndexRoundTrip(t *testing.T) {
	g := newTestGrid(7, 5)
	idx := g.Index(3, 4)
	if idx != 3+4*7 {
		t.Errorf("Index(3, 4) = %d, want %d", idx, 3+4*7)
	}
	x, y := g.Coordinate(idx)
	if x != 3 || y != 4 {
		t.Errorf("Coordinate(%d) = (%d, %d), want (3, 4)", idx, x, y)
	}
}

func TestGrid_BuildPanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0, 3) did not panic")
		}
	}()
	NewGrid(0, 3, nil)
}

func TestGrid_AddDirectionsIdempotent(t *testing.T) {
	g := newTestGrid(3, 3)
	g.AddDirections(1, 1, North|East)
	g.AddDirections(1, 1, North)
	if got := g.Directions(1, 1); got != North|East {
		t.Errorf("Directions(1, 1) = %v, want N|E", got)
	}
	if !g.GetCell(1, 1).Carved {
		t.Error("cell not marked carved after AddDirections")
	}
	if g.AddDirections(5, 5, North) {
		t.Error("AddDirections out of bounds returned true")
	}
}

func TestGrid_CarvePassageOpensBothSides(t *testing.T) {
	g := newTestGrid(3, 3)
	if !g.CarvePassage(g.Index(0, 0), g.Index(1, 0), false) {
		t.Fatal("CarvePassage returned false for adjacent cells")
	}
	if !g.GetCell(0, 0).IsOpen(East) {
		t.Error("(0,0) not open East")
	}
	if !g.GetCell(1, 0).IsOpen(West) {
		t.Error("(1,0) not open West")
	}
	if g.CarvePassage(g.Index(0, 0), g.Index(2, 0), false) {
		t.Error("CarvePassage returned true for non-adjacent cells")
	}
	if msg := g.Validate(); msg != "" {
		t.Errorf("Validate() = %q, want empty", msg)
	}
}

func TestGrid_CarvePassagePreserveExisting(t *testing.T) {
	g := newTestGrid(3, 1)
	// (1,0) is already defined as a closed cell
	g.GetCell(1, 0).Carved = true
	g.CarvePassage(g.Index(0, 0), g.Index(1, 0), true)
	if !g.GetCell(0, 0).IsOpen(East) {
		t.Error("undefined cell (0,0) was not carved")
	}
	if g.GetCell(1, 0).IsOpen(West) {
		t.Error("preserved cell (1,0) was modified")
	}
}

func TestGrid_Spans(t *testing.T) {
	g := newTestGrid(6, 6)
	g.CarveHorizontalSpan(2, 4, 1, false)
	for x := 1; x <= 4; x++ {
		if !g.GetCell(x, 2).Carved {
			t.Errorf("cell (%d,2) not carved by horizontal span", x)
		}
	}
	if g.GetCell(1, 2).IsOpen(West) || g.GetCell(4, 2).IsOpen(East) {
		t.Error("span ends opened beyond the span")
	}
	g.CarveVerticalSpan(4, 2, 5, false)
	if got := g.Reachable(1, 2).Size(); got != 7 {
		t.Errorf("Reachable(1, 2).Size() = %d, want 7", got)
	}
}

func TestGrid_ValidateDetectsOneSidedPassage(t *testing.T) {
	g := newTestGrid(2, 2)
	g.AddDirections(0, 0, East)
	if msg := g.Validate(); msg == "" {
		t.Error("Validate() = empty, want one-sided passage error")
	}
}

func TestGrid_IsConnected(t *testing.T) {
	g := newTestGrid(5, 1)
	g.CarvePassage(0, 1, false)
	g.CarvePassage(3, 4, false)
	if g.IsConnected() {
		t.Error("IsConnected() = true for two separate passages")
	}
	g.CarveHorizontalSpan(0, 1, 3, false)
	if !g.IsConnected() {
		t.Error("IsConnected() = false after joining passages")
	}
}

func TestGridTopology_Neighbors(t *testing.T) {
	topo := GridTopology{Width: 3, Height: 3}
	if got := len(topo.Neighbors(4)); got != 4 {
		t.Errorf("len(Neighbors(center)) = %d, want 4", got)
	}
	if got := len(topo.Neighbors(0)); got != 2 {
		t.Errorf("len(Neighbors(corner)) = %d, want 2", got)
	}
	if got := topo.Neighbors(9); got != nil {
		t.Errorf("Neighbors(out of range) = %v, want nil", got)
	}
}

func TestCell_DeadEnd(t *testing.T) {
	g := newTestGrid(3, 1)
	g.CarvePassage(g.Index(0, 0), g.Index(1, 0), false)
	g.CarvePassage(g.Index(1, 0), g.Index(2, 0), false)

	cases := []struct {
		x         int
		exits     int
		isDeadEnd bool
	}{
		{0, 1, true},
		{1, 2, false},
		{2, 1, true},
	}
	for _, tc := range cases {
		cell := g.GetCell(tc.x, 0)
		if got := cell.NumberOfExits(); got != tc.exits {
			t.Errorf("(%d,0).NumberOfExits() = %d, want %d", tc.x, got, tc.exits)
		}
		if got := cell.IsDeadEnd(); got != tc.isDeadEnd {
			t.Errorf("(%d,0).IsDeadEnd() = %v, want %v", tc.x, got, tc.isDeadEnd)
		}
	}

	var missing *Cell
	if missing.IsDeadEnd() || missing.NumberOfExits() != 0 {
		t.Error("nil cell reports exits")
	}
}
