package pathfind

import (
	"math"

	"github.com/zyedidia/generic/heap"

	"towergen/pkg/engine/world"
)

type queued struct {
	idx  int
	dist float64
}

// WeightedPath returns the cheapest path from a to b and its total cost.
// The cost of a step is the cost of the cell being entered. Equal-cost
// frontiers are expanded in cell index order so results are reproducible.
func (gr *Graph) WeightedPath(a, b world.Point) (Path, float64, error) {
	if !gr.weighted {
		return nil, 0, ErrNotWeighted
	}
	from, to, err := gr.endpoints(a, b)
	if err != nil {
		return nil, 0, err
	}

	dist := make([]float64, len(gr.adj))
	prev := make([]int, len(gr.adj))
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[from] = 0

	pq := heap.New(func(x, y queued) bool {
		if x.dist != y.dist {
			return x.dist < y.dist
		}
		return x.idx < y.idx
	})
	pq.Push(queued{idx: from})

	for pq.Size() > 0 {
		cur, _ := pq.Pop()
		// stale entry from a lazy decrease-key
		if cur.dist > dist[cur.idx] {
			continue
		}
		if cur.idx == to {
			break
		}
		for _, e := range gr.adj[cur.idx] {
			nd := cur.dist + e.Cost
			if nd < dist[e.To] {
				dist[e.To] = nd
				prev[e.To] = cur.idx
				pq.Push(queued{idx: e.To, dist: nd})
			}
		}
	}

	return gr.buildPath(prev, from, to), dist[to], nil
}
