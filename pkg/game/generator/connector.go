package generator

import (
	"sort"

	"towergen/pkg/engine/world"
)

const stageConnect = "connect"

// collectRooms gathers labelled cells into rooms ordered by id
func collectRooms(grid *world.Grid) []Room {
	byID := make(map[int]*Room)
	var ids []int

	grid.ForEachCell(func(c world.Cell) {
		if !c.InRoom() {
			return
		}
		r, ok := byID[c.RoomID]
		if !ok {
			r = &Room{ID: c.RoomID}
			byID[c.RoomID] = r
			ids = append(ids, c.RoomID)
		}
		r.Cells = append(r.Cells, c.Pos())
	})
	sort.Ints(ids)

	rooms := make([]Room, 0, len(ids))
	for _, id := range ids {
		r := byID[id]
		r.finish()
		rooms = append(rooms, *r)
	}
	return rooms
}

// finish computes centroid, anchor and bounds from the member cells
func (r *Room) finish() {
	if len(r.Cells) == 0 {
		return
	}
	minX, minZ := r.Cells[0].X, r.Cells[0].Z
	maxX, maxZ := minX, minZ
	var sx, sz float64
	for _, p := range r.Cells {
		sx += float64(p.X)
		sz += float64(p.Z)
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minZ, maxZ = min(minZ, p.Z), max(maxZ, p.Z)
	}
	n := float64(len(r.Cells))
	r.CentroidX, r.CentroidZ = sx/n, sz/n
	r.Bounds = Rect{X: minX, Z: minZ, Width: maxX - minX + 1, Height: maxZ - minZ + 1}

	best := -1.0
	for _, p := range r.Cells {
		dx, dz := float64(p.X)-r.CentroidX, float64(p.Z)-r.CentroidZ
		if d := dx*dx + dz*dz; best < 0 || d < best {
			best = d
			r.Anchor = p
		}
	}
}

func centroidDist2(a, b Room) float64 {
	dx, dz := a.CentroidX-b.CentroidX, a.CentroidZ-b.CentroidZ
	return dx*dx + dz*dz
}

// connectRooms links every room into one spanning tree by repeatedly
// joining the closest connected/unconnected centroid pair, then carves an
// L-shaped corridor for each tree edge.
func connectRooms(grid *world.Grid, rooms []Room) ([]RoomEdge, []Warning) {
	if len(rooms) < 2 {
		return nil, []Warning{warnf(stageConnect, ErrInsufficientRooms, "%d room(s), nothing to connect", len(rooms))}
	}

	connected := []int{0}
	inTree := make([]bool, len(rooms))
	inTree[0] = true

	var edges []RoomEdge
	for len(connected) < len(rooms) {
		from, to := -1, -1
		bestDist := 0.0
		for _, ci := range connected {
			for j := range rooms {
				if inTree[j] {
					continue
				}
				d := centroidDist2(rooms[ci], rooms[j])
				// strict so the first pair found wins ties
				if from < 0 || d < bestDist {
					from, to, bestDist = ci, j, d
				}
			}
		}
		inTree[to] = true
		connected = append(connected, to)
		edges = append(edges, RoomEdge{From: rooms[from].ID, To: rooms[to].ID})
		carveCorridor(grid, rooms[from].Anchor, rooms[to].Anchor)
	}
	return edges, nil
}

// carveCorridor opens the source row across the x-span, then the target
// column across the z-span. Room cells are left untouched.
func carveCorridor(grid *world.Grid, from, to world.Point) {
	for x := min(from.X, to.X); x <= max(from.X, to.X); x++ {
		carveCorridorCell(grid, x, from.Z)
	}
	for z := min(from.Z, to.Z); z <= max(from.Z, to.Z); z++ {
		carveCorridorCell(grid, to.X, z)
	}
}

func carveCorridorCell(grid *world.Grid, x, z int) {
	c, err := grid.CellAt(x, z)
	if err != nil || c.InRoom() {
		return
	}
	_ = grid.SetType(x, z, world.TileEmpty)
}
