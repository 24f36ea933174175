// Package levelgen places a level's inhabitants once its layout is final:
// enemies and loot on the floor, breakable walls in the rock.
package levelgen

import (
	"github.com/zyedidia/generic/mapset"

	"towergen/pkg/engine/world"
)

// ManhattanDistance calculates the Manhattan distance between two points
func ManhattanDistance(a, b world.Point) int {
	dx := a.X - b.X
	dz := a.Z - b.Z
	if dx < 0 {
		dx = -dx
	}
	if dz < 0 {
		dz = -dz
	}
	return dx + dz
}

// ProtectedSet builds an avoid set from any number of point lists
func ProtectedSet(lists ...[]world.Point) mapset.Set[world.Point] {
	s := mapset.New[world.Point]()
	for _, l := range lists {
		for _, p := range l {
			s.Put(p)
		}
	}
	return s
}
