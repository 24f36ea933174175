package pathfind

import (
	"fmt"

	"towergen/pkg/engine/world"
)

// Unreachable marks cells with no path in a distance map.
const Unreachable = -1

// ShortestPath returns a fewest-steps path from a to b using breadth-first
// search. Neighbours are expanded in direction order, so the result is
// deterministic for a given grid.
func (gr *Graph) ShortestPath(a, b world.Point) (Path, error) {
	from, to, err := gr.endpoints(a, b)
	if err != nil {
		return nil, err
	}
	if gr.adj[from] == nil || gr.adj[to] == nil {
		return nil, fmt.Errorf("%w: (%d,%d) -> (%d,%d)", ErrNoPath, a.X, a.Z, b.X, b.Z)
	}
	if from == to {
		return Path{a}, nil
	}

	prev := make([]int, len(gr.adj))
	for i := range prev {
		prev[i] = -1
	}
	visited := make([]bool, len(gr.adj))
	visited[from] = true
	queue := []int{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, e := range gr.adj[current] {
			if visited[e.To] || gr.adj[e.To] == nil {
				continue
			}
			visited[e.To] = true
			prev[e.To] = current
			if e.To == to {
				return gr.buildPath(prev, from, to), nil
			}
			queue = append(queue, e.To)
		}
	}
	return nil, fmt.Errorf("%w: (%d,%d) -> (%d,%d)", ErrNoPath, a.X, a.Z, b.X, b.Z)
}

// Distance returns the number of steps on the shortest path from a to b.
func (gr *Graph) Distance(a, b world.Point) (int, error) {
	path, err := gr.ShortestPath(a, b)
	if err != nil {
		return 0, err
	}
	return path.Len(), nil
}

// DistanceMap runs a full breadth-first search from a and returns the step
// count to every cell, indexed like the grid. Cells that cannot be reached
// hold Unreachable.
func (gr *Graph) DistanceMap(a world.Point) ([]int, error) {
	if !gr.contains(a) {
		return nil, fmt.Errorf("%w: source (%d,%d)", ErrOutOfBounds, a.X, a.Z)
	}
	dist := make([]int, len(gr.adj))
	for i := range dist {
		dist[i] = Unreachable
	}
	from := gr.index(a)
	if gr.adj[from] == nil {
		return dist, nil
	}

	dist[from] = 0
	queue := []int{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, e := range gr.adj[current] {
			if dist[e.To] != Unreachable || gr.adj[e.To] == nil {
				continue
			}
			dist[e.To] = dist[current] + 1
			queue = append(queue, e.To)
		}
	}
	return dist, nil
}

// Reachable returns every cell reachable from a, in breadth-first order.
func (gr *Graph) Reachable(a world.Point) ([]world.Point, error) {
	dist, err := gr.DistanceMap(a)
	if err != nil {
		return nil, err
	}
	var out []world.Point
	for idx, d := range dist {
		if d != Unreachable {
			out = append(out, gr.point(idx))
		}
	}
	return out, nil
}
