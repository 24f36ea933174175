package levelgen

import (
	"math"
	"math/rand"

	"towergen/pkg/engine/world"
	"towergen/pkg/game/config"
)

// ClassifyWalls splits wall cells into those sharing a face with a
// non-wall cell (edge) and the rest (thick). Both lists are in scan order.
func ClassifyWalls(grid *world.Grid) (edge, thick []world.Point) {
	grid.ForEachCell(func(c world.Cell) {
		if c.Type != world.TileWall {
			return
		}
		p := c.Pos()
		if hasOpenFace(grid, p) {
			edge = append(edge, p)
		} else {
			thick = append(thick, p)
		}
	})
	return edge, thick
}

func hasOpenFace(grid *world.Grid, p world.Point) bool {
	for _, d := range world.CardinalDirections() {
		dx, dz := d.Delta()
		q := p.Add(dx, dz)
		if grid.Contains(q) && grid.Type(q) != world.TileWall {
			return true
		}
	}
	return false
}

// BreakableQuota returns how many edge and thick walls to convert.
// Each share is clamped to its pool; no spill-over between pools.
func BreakableQuota(edgeCount, thickCount int, density, edgeBias float64) (fromEdge, fromThick int) {
	total := int(math.Floor(float64(edgeCount+thickCount) * density * config.BreakableScale))
	fromEdge = int(math.Floor(float64(total) * edgeBias))
	fromThick = total - fromEdge
	return min(fromEdge, edgeCount), min(fromThick, thickCount)
}

// PlaceBreakables turns a share of the walls into breakable walls. All
// walls are classified before any is converted.
func PlaceBreakables(grid *world.Grid, p config.Params, rng *rand.Rand) (fromEdge, fromThick int) {
	edge, thick := ClassifyWalls(grid)
	nEdge, nThick := BreakableQuota(len(edge), len(thick), p.BreakableDensity, p.EdgeWallBias)

	for _, pt := range sample(edge, nEdge, rng) {
		_ = grid.SetType(pt.X, pt.Z, world.TileBreakable)
	}
	for _, pt := range sample(thick, nThick, rng) {
		_ = grid.SetType(pt.X, pt.Z, world.TileBreakable)
	}
	return nEdge, nThick
}

// sample returns k distinct points from pool without modifying it
func sample(pool []world.Point, k int, rng *rand.Rand) []world.Point {
	if k <= 0 {
		return nil
	}
	shuffled := make([]world.Point, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:min(k, len(shuffled))]
}
