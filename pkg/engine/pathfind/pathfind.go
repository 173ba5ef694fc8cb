// Package pathfind provides shortest-path search over indexed topologies such
// as a grid lattice.
package pathfind

import (
	"iter"
	"math"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// Topology is an indexed graph: nodes are the integers [0, NumberOfNodes).
type Topology interface {
	NumberOfNodes() int
	Neighbors(index int) []int
}

// EdgeCostFunc returns the non-negative cost of stepping from one node to an
// adjacent one. Negative results are clamped to zero.
type EdgeCostFunc func(from, to int) float64

// UnitCost charges 1 for every step
func UnitCost(from, to int) float64 {
	return 1
}

type frontierEntry struct {
	index int
	dist  float64
}

// FindPath returns the steps (from, to) of a cheapest path from source to
// target. The search runs when iteration starts; the sequence is empty when
// either endpoint is out of range, source equals target, or no path exists.
func FindPath(t Topology, source, target int, cost EdgeCostFunc) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		path := ShortestPath(t, source, target, cost)
		for i := 0; i+1 < len(path); i++ {
			if !yield(path[i], path[i+1]) {
				return
			}
		}
	}
}

// ShortestPath returns the node sequence of a cheapest path from source to
// target, inclusive, or nil if there is none.
func ShortestPath(t Topology, source, target int, cost EdgeCostFunc) []int {
	n := t.NumberOfNodes()
	if source < 0 || source >= n || target < 0 || target >= n || source == target {
		return nil
	}
	if cost == nil {
		cost = UnitCost
	}

	dist := make([]float64, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[source] = 0

	settled := mapset.New[int]()
	frontier := heap.New[frontierEntry](func(a, b frontierEntry) bool {
		return a.dist < b.dist
	})
	frontier.Push(frontierEntry{index: source, dist: 0})

	for frontier.Size() > 0 {
		current, _ := frontier.Pop()
		if settled.Has(current.index) {
			continue
		}
		settled.Put(current.index)
		if current.index == target {
			break
		}

		for _, next := range t.Neighbors(current.index) {
			if settled.Has(next) {
				continue
			}
			step := cost(current.index, next)
			if step < 0 {
				step = 0
			}
			if d := current.dist + step; d < dist[next] {
				dist[next] = d
				prev[next] = current.index
				frontier.Push(frontierEntry{index: next, dist: d})
			}
		}
	}

	if prev[target] == -1 {
		return nil
	}

	var path []int
	for at := target; at != -1; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PathCost sums cost over consecutive steps of path
func PathCost(path []int, cost EdgeCostFunc) float64 {
	if cost == nil {
		cost = UnitCost
	}
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		total += cost(path[i], path[i+1])
	}
	return total
}
