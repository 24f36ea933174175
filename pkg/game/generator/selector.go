package generator

import (
	"math/rand"

	"towergen/pkg/engine/pathfind"
	"towergen/pkg/engine/world"
	"towergen/pkg/game/config"
	"towergen/pkg/game/levelgen"
)

const stageSelect = "select"

// selection is the outcome of placing the player spawn and the exit.
type selection struct {
	spawn    world.Point
	exit     world.Point
	target   int
	distance int
}

// selectSpawnExit picks two floor cells whose walking distance matches the
// requested distance as closely as the layout allows, and marks them
// Player and Exit.
func selectSpawnExit(grid *world.Grid, want int, rng *rand.Rand) (selection, []Warning) {
	for _, t := range []world.TileType{world.TilePlayer, world.TileExit} {
		for _, p := range grid.Find(t) {
			_ = grid.SetType(p.X, p.Z, world.TileEmpty)
		}
	}

	candidates := grid.Find(world.TileEmpty)
	if len(candidates) < 2 {
		sel := fallbackEndpoints(grid, candidates)
		place(grid, sel)
		return sel, []Warning{warnf(stageSelect, ErrNoSpawnCandidates,
			"%d floor cell(s); spawn (%d,%d) exit (%d,%d) left to the guarantee pass",
			len(candidates), sel.spawn.X, sel.spawn.Z, sel.exit.X, sel.exit.Z)}
	}

	graph := pathfind.NewGraph(grid)
	diameter := candidateDiameter(graph, grid, candidates)
	target := clampTarget(want, diameter)

	sel, ok := sampleEndpoints(graph, candidates, target, rng)
	var warnings []Warning
	if !ok {
		sel, ok = scanEndpoints(graph, grid, candidates, target)
		warnings = append(warnings, warnf(stageSelect, ErrSelectorBudget,
			"no pair at distance %d in %d attempts, best found %d", target, config.SelectorAttempts, sel.distance))
		if !ok {
			warnings = append(warnings, warnf(stageSelect, ErrUnreachableEndings,
				"no two floor cells are connected"))
		}
	}
	sel.target = target
	place(grid, sel)
	return sel, warnings
}

func place(grid *world.Grid, sel selection) {
	_ = grid.SetType(sel.spawn.X, sel.spawn.Z, world.TilePlayer)
	_ = grid.SetType(sel.exit.X, sel.exit.Z, world.TileExit)
}

// clampTarget keeps the target between one step and the layout's diameter
func clampTarget(want, diameter int) int {
	if diameter < 1 {
		return 0
	}
	return max(1, min(want, diameter))
}

// candidateDiameter is the longest shortest path between any two candidates.
func candidateDiameter(graph *pathfind.Graph, grid *world.Grid, candidates []world.Point) int {
	best := 0
	for _, c := range candidates {
		dist, err := graph.DistanceMap(c)
		if err != nil {
			continue
		}
		for _, o := range candidates {
			if d := dist[grid.Index(o.X, o.Z)]; d > best {
				best = d
			}
		}
	}
	return best
}

// sampleEndpoints tries random distinct pairs within the attempt budget
func sampleEndpoints(graph *pathfind.Graph, candidates []world.Point, target int, rng *rand.Rand) (selection, bool) {
	n := len(candidates)
	for i := 0; i < config.SelectorAttempts; i++ {
		a := rng.Intn(n)
		b := rng.Intn(n - 1)
		if b >= a {
			b++
		}
		d, err := graph.Distance(candidates[a], candidates[b])
		if err != nil {
			continue
		}
		if abs(d-target) <= config.SelectorTolerance {
			return selection{spawn: candidates[a], exit: candidates[b], distance: d}, true
		}
	}
	return selection{}, false
}

// scanEndpoints checks every pair in scan order and keeps the first one
// closest to target. If no pair is connected it falls back to the first two
// candidates and reports false.
func scanEndpoints(graph *pathfind.Graph, grid *world.Grid, candidates []world.Point, target int) (selection, bool) {
	best := selection{spawn: candidates[0], exit: candidates[1], distance: pathfind.Unreachable}
	bestDiff := -1

	for i, a := range candidates {
		dist, err := graph.DistanceMap(a)
		if err != nil {
			continue
		}
		for _, b := range candidates[i+1:] {
			d := dist[grid.Index(b.X, b.Z)]
			if d == pathfind.Unreachable {
				continue
			}
			if diff := abs(d - target); bestDiff < 0 || diff < bestDiff {
				best = selection{spawn: a, exit: b, distance: d}
				bestDiff = diff
				if diff == 0 {
					return best, true
				}
			}
		}
	}
	return best, bestDiff >= 0
}

// fallbackEndpoints handles grids with fewer than two floor cells: spawn on
// the floor cell if there is one, exit on the cell furthest from it.
func fallbackEndpoints(grid *world.Grid, floor []world.Point) selection {
	spawn := world.Point{}
	if len(floor) > 0 {
		spawn = floor[0]
	}
	exit, far := spawn, -1
	grid.ForEachCell(func(c world.Cell) {
		if d := levelgen.ManhattanDistance(spawn, c.Pos()); d > far {
			exit, far = c.Pos(), d
		}
	})
	return selection{spawn: spawn, exit: exit, target: far, distance: pathfind.Unreachable}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
