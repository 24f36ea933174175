// Package verify checks finished grids, generated or loaded from level
// files, for the properties a playable level needs.
package verify

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"towergen/pkg/engine/pathfind"
	"towergen/pkg/engine/world"
)

var (
	ErrSpawnCount  = errors.New("verify: level needs exactly one spawn")
	ErrExitCount   = errors.New("verify: level needs exactly one exit")
	ErrUnreachable = errors.New("verify: exit is not reachable from spawn")
)

// Report is the outcome of checking one grid.
type Report struct {
	Spawn, Exit world.Point
	// Distance is the spawn-exit path length, or pathfind.Unreachable
	Distance int
	// Gatekeepers are the rooms every spawn-exit route passes through
	Gatekeepers []int
	Problems    []error
}

// OK reports whether no problems were found.
func (r Report) OK() bool {
	return len(r.Problems) == 0
}

// Err joins the problems into one error, or nil.
func (r Report) Err() error {
	return errors.Join(r.Problems...)
}

// Check inspects g: one spawn, one exit, and a walkable route between them.
func Check(g *world.Grid) Report {
	rep := Report{Distance: pathfind.Unreachable}

	spawns := g.Find(world.TilePlayer)
	exits := g.Find(world.TileExit)
	if len(spawns) != 1 {
		rep.Problems = append(rep.Problems, fmt.Errorf("%w: found %d", ErrSpawnCount, len(spawns)))
	}
	if len(exits) != 1 {
		rep.Problems = append(rep.Problems, fmt.Errorf("%w: found %d", ErrExitCount, len(exits)))
	}
	if len(spawns) == 0 || len(exits) == 0 {
		return rep
	}
	rep.Spawn, rep.Exit = spawns[0], exits[0]

	d, err := pathfind.NewGraph(g).Distance(rep.Spawn, rep.Exit)
	if err != nil {
		rep.Problems = append(rep.Problems, fmt.Errorf("%w: %v", ErrUnreachable, err))
		return rep
	}
	rep.Distance = d
	rep.Gatekeepers = Gatekeepers(g, rep.Spawn, rep.Exit)
	return rep
}

// Gatekeepers returns, in ascending order, the ids of rooms whose cells
// separate spawn from exit when treated as walls. Rooms holding spawn or
// exit are left out. Grids without room labels have no gatekeepers.
func Gatekeepers(g *world.Grid, spawn, exit world.Point) []int {
	rooms := roomsOf(g)
	skip := map[int]bool{}
	if id, err := g.RoomAt(spawn.X, spawn.Z); err == nil {
		skip[id] = true
	}
	if id, err := g.RoomAt(exit.X, exit.Z); err == nil {
		skip[id] = true
	}

	var out []int
	for id := range rooms {
		if skip[id] {
			continue
		}
		reach := reachableAvoidingRoom(g, spawn, id)
		if !reach.Has(exit) {
			out = append(out, id)
		}
	}
	sort.Ints(out)
	return out
}

func roomsOf(g *world.Grid) map[int]bool {
	out := make(map[int]bool)
	g.ForEachCell(func(c world.Cell) {
		if c.InRoom() {
			out[c.RoomID] = true
		}
	})
	return out
}

// reachableAvoidingRoom returns all cells reachable from start by BFS over
// traversable cells, treating the cells of room blocked as walls.
func reachableAvoidingRoom(g *world.Grid, start world.Point, blocked int) *mapset.Set[world.Point] {
	reachable := mapset.New[world.Point]()
	queue := []world.Point{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if reachable.Has(current) {
			continue
		}
		c, err := g.CellAt(current.X, current.Z)
		if err != nil || !c.Type.IsTraversable() {
			continue
		}
		if c.RoomID == blocked && current != start {
			continue
		}

		reachable.Put(current)

		for _, d := range world.CardinalDirections() {
			dx, dz := d.Delta()
			n := current.Add(dx, dz)
			if g.Contains(n) && !reachable.Has(n) {
				queue = append(queue, n)
			}
		}
	}

	return &reachable
}
