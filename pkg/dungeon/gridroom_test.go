package dungeon

import (
	"errors"
	"testing"
)

func TestRoomDistance(t *testing.T) {
	a := NewGridRoom(0, 0, 4, 4, 0)
	cases := []struct {
		name string
		b    GridRoom[int]
		want int
	}{
		{"touching east", NewGridRoom(4, 0, 3, 3, 0), 0},
		{"one column gap", NewGridRoom(5, 0, 3, 3, 0), 1},
		{"gap west", NewGridRoom(-6, 1, 3, 3, 0), 3},
		{"gap north", NewGridRoom(1, 6, 2, 2, 0), 2},
		{"diagonal", NewGridRoom(6, 7, 2, 2, 0), 2 + 3},
		{"overlapping", NewGridRoom(2, 2, 4, 4, 0), 0},
		{"contained", NewGridRoom(1, 1, 1, 1, 0), 0},
	}
	for _, tc := range cases {
		if got := RoomDistance(a, tc.b); got != tc.want {
			t.Errorf("%s: RoomDistance = %d, want %d", tc.name, got, tc.want)
		}
		if got := RoomDistance(tc.b, a); got != tc.want {
			t.Errorf("%s: RoomDistance reversed = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestGridRoom_Center(t *testing.T) {
	r := NewGridRoom(2, 3, 5, 4, "x")
	x, y := r.Center()
	if x != 4 || y != 5 {
		t.Errorf("Center() = (%d, %d), want (4, 5)", x, y)
	}
	if !r.Contains(x, y) {
		t.Error("room does not contain its centre")
	}
}

func TestGridRoom_OverlapsAndAbuts(t *testing.T) {
	a := NewGridRoom(0, 0, 4, 4, 0)
	east := NewGridRoom(4, 2, 4, 4, 0)
	corner := NewGridRoom(4, 4, 2, 2, 0)
	apart := NewGridRoom(5, 0, 2, 2, 0)
	inside := NewGridRoom(1, 1, 2, 2, 0)

	if !a.Abuts(east) || !east.Abuts(a) {
		t.Error("rooms sharing a border do not abut")
	}
	if a.Abuts(corner) {
		t.Error("rooms touching only at a corner abut")
	}
	if a.Abuts(apart) {
		t.Error("separated rooms abut")
	}
	if !a.Overlaps(inside) || a.Abuts(inside) {
		t.Error("contained room should overlap and not abut")
	}
	if a.Overlaps(east) {
		t.Error("abutting rooms overlap")
	}
}

func TestPassageRasterizerType_Classification(t *testing.T) {
	for _, r := range []PassageRasterizerType{ShortestPathBetweenRooms, RandomWalk} {
		if !r.IsReserved() || r.IsConcrete() {
			t.Errorf("%v: reserved=%v concrete=%v, want reserved only", r, r.IsReserved(), r.IsConcrete())
		}
	}
	for _, r := range []PassageRasterizerType{Opening, Elbow, ShortestPathUsingExisting} {
		if !r.IsConcrete() {
			t.Errorf("%v.IsConcrete() = false", r)
		}
	}
	if None.IsConcrete() || Unspecified.IsConcrete() {
		t.Error("None/Unspecified reported concrete")
	}
	if got, ok := ParseRasterizer("Elbow"); !ok || got != Elbow {
		t.Errorf("ParseRasterizer(Elbow) = %v, %v", got, ok)
	}
	if _, ok := ParseRasterizer("Teleport"); ok {
		t.Error("ParseRasterizer(Teleport) ok = true")
	}
}

func TestRoomSizeData_Validate(t *testing.T) {
	for _, preset := range []RoomSizeData{DefaultRoomSizes, SmallRoomSizes, LargeRoomSizes, ExtraLargeRoomSizes} {
		if err := preset.Validate(); err != nil {
			t.Errorf("preset %+v: Validate() = %v", preset, err)
		}
	}
	bad := RoomSizeData{MinWidth: 5, MaxWidth: 3, MinHeight: 1, MaxHeight: 1}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidRoomSize) {
		t.Errorf("Validate() = %v, want ErrInvalidRoomSize", err)
	}
}
