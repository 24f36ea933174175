package generator

import (
	"towergen/pkg/engine/pathfind"
	"towergen/pkg/engine/world"
)

// guaranteePath finds the cheapest route from spawn to exit with walls
// passable at a high cost, then opens every wall on it. Afterwards an
// ordinary walk from spawn to exit always exists.
func guaranteePath(grid *world.Grid, spawn, exit world.Point) (pathfind.Path, int, error) {
	graph := pathfind.NewGraph(grid, pathfind.Weighted())
	path, _, err := graph.WeightedPath(spawn, exit)
	if err != nil {
		return nil, 0, err
	}

	opened := 0
	for _, p := range path {
		if grid.Type(p) == world.TileWall {
			if err := grid.SetType(p.X, p.Z, world.TileEmpty); err != nil {
				return nil, 0, err
			}
			opened++
		}
	}
	return path, opened, nil
}
