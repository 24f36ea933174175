package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"towergen/pkg/engine/world"
	"towergen/pkg/game/config"
)

const stageCarve = "carve"

// carver stamps rooms into a solid grid and labels their cells.
type carver interface {
	carve(grid *world.Grid, p config.Params, rng *rand.Rand) []Warning
}

// noiseJitter is the range of the per-room offset into the noise field.
const noiseJitter = 1000.0

// randomRooms places room_count rectangles at random, possibly overlapping.
type randomRooms struct{}

func (randomRooms) carve(grid *world.Grid, p config.Params, rng *rand.Rand) []Warning {
	var warnings []Warning

	for id := 1; id <= p.RoomCount; id++ {
		maxW := min(p.MaxRoomSize, grid.Width())
		maxH := min(p.MaxRoomSize, grid.Height())
		if p.MinRoomSize > maxW || p.MinRoomSize > maxH {
			warnings = append(warnings, warnf(stageCarve, ErrDegenerateRoom,
				"room %d: min size %d does not fit %dx%d grid", id, p.MinRoomSize, grid.Width(), grid.Height()))
			continue
		}

		w := p.MinRoomSize + rng.Intn(maxW-p.MinRoomSize+1)
		h := p.MinRoomSize + rng.Intn(maxH-p.MinRoomSize+1)
		r := Rect{
			X:      rng.Intn(grid.Width() - w + 1),
			Z:      rng.Intn(grid.Height() - h + 1),
			Width:  w,
			Height: h,
		}

		var mask func(x, z int) bool
		if p.NoiseEnabled() {
			noise := noiseMask(p.NoiseScale, p.NoiseThreshold, rng.Float64()*noiseJitter, rng.Float64()*noiseJitter)
			patch := largestPatch(r, noise)
			mask = func(x, z int) bool { return patch.Has(world.Point{X: x, Z: z}) }
		}

		if carveRect(grid, r, id, mask) == 0 {
			warnings = append(warnings, warnf(stageCarve, ErrDegenerateRoom, "room %d at (%d,%d) %dx%d has no cells of its own",
				id, r.X, r.Z, r.Width, r.Height))
		}
	}
	return warnings
}

// carveRect sets every cell of r that passes mask to Empty and labels the
// ones no earlier room has claimed. It returns the number of cells labelled.
func carveRect(grid *world.Grid, r Rect, id int, mask func(x, z int) bool) int {
	labelled := 0
	for z := r.Z; z < r.Z+r.Height; z++ {
		for x := r.X; x < r.X+r.Width; x++ {
			if mask != nil && !mask(x, z) {
				continue
			}
			c, err := grid.CellAt(x, z)
			if err != nil {
				continue
			}
			_ = grid.SetType(x, z, world.TileEmpty)
			if !c.InRoom() {
				_ = grid.SetRoom(x, z, id)
				labelled++
			}
		}
	}
	return labelled
}

// largestPatch returns the biggest 4-connected group of cells in r that pass
// mask. Ties go to the group found first in scan order.
func largestPatch(r Rect, mask func(x, z int) bool) mapset.Set[world.Point] {
	seen := mapset.New[world.Point]()
	var best []world.Point

	for z := r.Z; z < r.Z+r.Height; z++ {
		for x := r.X; x < r.X+r.Width; x++ {
			start := world.Point{X: x, Z: z}
			if seen.Has(start) || !mask(x, z) {
				continue
			}

			var patch []world.Point
			seen.Put(start)
			queue := []world.Point{start}
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				patch = append(patch, cur)

				for _, d := range world.CardinalDirections() {
					dx, dz := d.Delta()
					n := cur.Add(dx, dz)
					if !r.Contains(n) || seen.Has(n) || !mask(n.X, n.Z) {
						continue
					}
					seen.Put(n)
					queue = append(queue, n)
				}
			}
			if len(patch) > len(best) {
				best = patch
			}
		}
	}

	out := mapset.New[world.Point]()
	for _, pt := range best {
		out.Put(pt)
	}
	return out
}
