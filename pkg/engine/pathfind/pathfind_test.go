package pathfind

import (
	"testing"
)

// lattice is a minimal width x height 4-neighbour topology for tests.
type lattice struct {
	w, h int
}

func (l lattice) NumberOfNodes() int { return l.w * l.h }

func (l lattice) Neighbors(i int) []int {
	x, y := i%l.w, i/l.w
	var out []int
	if x > 0 {
		out = append(out, i-1)
	}
	if x < l.w-1 {
		out = append(out, i+1)
	}
	if y > 0 {
		out = append(out, i-l.w)
	}
	if y < l.h-1 {
		out = append(out, i+l.w)
	}
	return out
}

func TestShortestPath_StraightLine(t *testing.T) {
	path := ShortestPath(lattice{5, 1}, 0, 4, nil)
	want := []int{0, 1, 2, 3, 4}
	if len(path) != len(want) {
		t.Fatalf("ShortestPath(0, 4) = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("path[%d] = %d, want %d", i, path[i], want[i])
		}
	}
}

func TestShortestPath_ManhattanLength(t *testing.T) {
	l := lattice{6, 6}
	path := ShortestPath(l, 0, 35, UnitCost)
	// 5 steps east + 5 steps north = 10 steps = 11 nodes
	if len(path) != 11 {
		t.Errorf("len(ShortestPath) = %d, want 11", len(path))
	}
	if got := PathCost(path, UnitCost); got != 10 {
		t.Errorf("PathCost = %v, want 10", got)
	}
}

func TestShortestPath_PrefersCheapEdges(t *testing.T) {
	// 3x3 lattice; going through the middle column is expensive except via
	// the top row, so the cheapest path from 0 to 2 detours.
	l := lattice{3, 3}
	cost := func(from, to int) float64 {
		cheap := map[int]bool{0: true, 3: true, 6: true, 7: true, 8: true, 5: true, 2: true}
		if cheap[from] && cheap[to] {
			return 1
		}
		return 100
	}
	path := ShortestPath(l, 0, 2, cost)
	want := []int{0, 3, 6, 7, 8, 5, 2}
	if len(path) != len(want) {
		t.Fatalf("ShortestPath = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("ShortestPath = %v, want %v", path, want)
		}
	}
}

func TestShortestPath_NoPath(t *testing.T) {
	// Two disconnected nodes
	l := lattice{1, 1}
	if path := ShortestPath(l, 0, 0, nil); path != nil {
		t.Errorf("ShortestPath(0, 0) = %v, want nil", path)
	}
	if path := ShortestPath(lattice{3, 3}, 0, 99, nil); path != nil {
		t.Errorf("ShortestPath(out of range) = %v, want nil", path)
	}
}

func TestFindPath_YieldsConsecutiveSteps(t *testing.T) {
	l := lattice{4, 4}
	steps := 0
	last := 0
	for from, to := range FindPath(l, 0, 15, UnitCost) {
		if from != last {
			t.Errorf("step %d starts at %d, want %d", steps, from, last)
		}
		last = to
		steps++
	}
	if last != 15 {
		t.Errorf("path ends at %d, want 15", last)
	}
	if steps != 6 {
		t.Errorf("steps = %d, want 6", steps)
	}
}

func TestFindPath_EmptyWhenSourceIsTarget(t *testing.T) {
	for range FindPath(lattice{2, 2}, 3, 3, nil) {
		t.Fatal("FindPath(3, 3) yielded a step, want none")
	}
}

func TestFindPath_StopsEarly(t *testing.T) {
	n := 0
	for range FindPath(lattice{10, 1}, 0, 9, nil) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d steps, want 2", n)
	}
}
