// Package pathfind answers reachability and shortest-path queries over a
// world.Grid. A Graph snapshots the grid's adjacency when it is built;
// later grid mutations are not seen by queries.
package pathfind

import (
	"errors"
	"fmt"

	"towergen/pkg/engine/world"
)

var (
	// ErrNoPath is returned when the target is unreachable in unweighted mode.
	ErrNoPath = errors.New("pathfind: no path")
	// ErrOutOfBounds is returned for query endpoints outside the grid.
	ErrOutOfBounds = fmt.Errorf("pathfind: %w", world.ErrOutOfBounds)
	// ErrNotWeighted is returned by weighted queries on an unweighted graph.
	ErrNotWeighted = errors.New("pathfind: graph is not weighted")
)

// Connectivity selects which neighbouring cells are adjacent.
type Connectivity int

const (
	// Conn4 links the four face-sharing neighbours.
	Conn4 Connectivity = iota
	// Conn8 also links diagonal neighbours.
	Conn8
)

// String returns the string representation of a connectivity
func (c Connectivity) String() string {
	if c == Conn8 {
		return "Conn8"
	}
	return "Conn4"
}

// Traversal costs used in weighted mode.
const (
	FloorCost = 1.0
	WallCost  = 1000.0
)

// Edge is a directed adjacency entry.
type Edge struct {
	To   int
	Cost float64
}

// Graph is an adjacency list over grid cell indices.
type Graph struct {
	width    int
	height   int
	conn     Connectivity
	weighted bool

	// adj[i] is nil for cells that are not part of the graph.
	adj [][]Edge
}

type options struct {
	conn     Connectivity
	weighted bool
}

// Option configures graph construction.
type Option func(*options)

// WithConnectivity picks 4- or 8-directional adjacency (default Conn4).
func WithConnectivity(c Connectivity) Option {
	return func(o *options) { o.conn = c }
}

// Weighted includes wall cells at WallCost so every in-bounds pair is connected.
func Weighted() Option {
	return func(o *options) { o.weighted = true }
}

// NewGraph builds the neighbour list for every cell of g.
func NewGraph(g *world.Grid, opts ...Option) *Graph {
	o := options{conn: Conn4}
	for _, opt := range opts {
		opt(&o)
	}

	dirs := world.CardinalDirections()
	if o.conn == Conn8 {
		dirs = world.AllDirections()
	}

	gr := &Graph{
		width:    g.Width(),
		height:   g.Height(),
		conn:     o.conn,
		weighted: o.weighted,
		adj:      make([][]Edge, g.Len()),
	}

	for idx := 0; idx < g.Len(); idx++ {
		p := g.PointAt(idx)
		if !o.weighted && !g.Type(p).IsTraversable() {
			continue
		}
		edges := make([]Edge, 0, len(dirs))
		for _, d := range dirs {
			dx, dz := d.Delta()
			q := p.Add(dx, dz)
			if !g.Contains(q) {
				continue
			}
			t := g.Type(q)
			switch {
			case t.IsTraversable():
				edges = append(edges, Edge{To: g.Index(q.X, q.Z), Cost: FloorCost})
			case o.weighted:
				edges = append(edges, Edge{To: g.Index(q.X, q.Z), Cost: WallCost})
			}
		}
		gr.adj[idx] = edges
	}
	return gr
}

// Connectivity returns the adjacency mode the graph was built with
func (gr *Graph) Connectivity() Connectivity {
	return gr.conn
}

// IsWeighted reports whether walls are part of the graph
func (gr *Graph) IsWeighted() bool {
	return gr.weighted
}

// Neighbors returns the edges leaving p. Cells outside the graph have none.
func (gr *Graph) Neighbors(p world.Point) []world.Point {
	if !gr.contains(p) {
		return nil
	}
	edges := gr.adj[gr.index(p)]
	out := make([]world.Point, len(edges))
	for i, e := range edges {
		out[i] = gr.point(e.To)
	}
	return out
}

// Has reports whether p is a node of the graph
func (gr *Graph) Has(p world.Point) bool {
	return gr.contains(p) && gr.adj[gr.index(p)] != nil
}

func (gr *Graph) contains(p world.Point) bool {
	return p.X >= 0 && p.X < gr.width && p.Z >= 0 && p.Z < gr.height
}

func (gr *Graph) index(p world.Point) int {
	return p.Z*gr.width + p.X
}

func (gr *Graph) point(idx int) world.Point {
	return world.Point{X: idx % gr.width, Z: idx / gr.width}
}

func (gr *Graph) endpoints(a, b world.Point) (int, int, error) {
	if !gr.contains(a) {
		return 0, 0, fmt.Errorf("%w: source (%d,%d)", ErrOutOfBounds, a.X, a.Z)
	}
	if !gr.contains(b) {
		return 0, 0, fmt.Errorf("%w: target (%d,%d)", ErrOutOfBounds, b.X, b.Z)
	}
	return gr.index(a), gr.index(b), nil
}

// Path is an ordered list of cells from source to target, both inclusive.
type Path []world.Point

// Len returns the number of steps along the path
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Contains reports whether q lies on the path
func (p Path) Contains(q world.Point) bool {
	for _, c := range p {
		if c == q {
			return true
		}
	}
	return false
}

func (gr *Graph) buildPath(prev []int, from, to int) Path {
	var rev []int
	for at := to; at != -1; at = prev[at] {
		rev = append(rev, at)
		if at == from {
			break
		}
	}
	path := make(Path, len(rev))
	for i, idx := range rev {
		path[len(rev)-1-i] = gr.point(idx)
	}
	return path
}
