package generator

import (
	"towergen/pkg/engine/pathfind"
	"towergen/pkg/engine/world"
	"towergen/pkg/game/config"
	"towergen/pkg/game/levelgen"
)

// run executes the stages in their fixed order: carve, connect, select,
// guarantee, populate. Parameters are validated before the grid exists, so
// a fatal error never leaves partial output behind.
func run(c carver, layout string, extraLoot []levelgen.LootEntry, p config.Params, width, height int) (*Level, error) {
	if err := p.Validate(width, height); err != nil {
		return nil, err
	}

	grid, err := world.NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	grid.SetSeed(p.Seed)

	lvl := &Level{Grid: grid, Params: p, Layout: layout}

	lvl.warn(c.carve(grid, p, newStream(p.Seed, config.StageCarve))...)
	lvl.Rooms = collectRooms(grid)

	edges, warnings := connectRooms(grid, lvl.Rooms)
	lvl.Corridors = edges
	lvl.warn(warnings...)

	sel, warnings := selectSpawnExit(grid, p.MinPlayerExitDist, newStream(p.Seed, config.StageSelect))
	lvl.warn(warnings...)
	lvl.Spawn, lvl.Exit, lvl.TargetDistance = sel.spawn, sel.exit, sel.target

	path, opened, err := guaranteePath(grid, sel.spawn, sel.exit)
	if err != nil {
		return nil, err
	}
	lvl.GuaranteedPath, lvl.OpenedWalls = path, opened

	lvl.SpawnExitDistance = sel.distance
	if d, err := pathfind.NewGraph(grid).Distance(sel.spawn, sel.exit); err == nil {
		lvl.SpawnExitDistance = d
	}

	protected := levelgen.ProtectedSet(path)

	loot := levelgen.DefaultLootTable(p)
	for _, e := range extraLoot {
		loot.Add(e)
	}
	lvl.Population = levelgen.PlaceInhabitants(grid, p, &protected, loot, newStream(p.Seed, config.StagePopulate))
	lvl.Population.BreakableEdge, lvl.Population.BreakableThick =
		levelgen.PlaceBreakables(grid, p, newStream(p.Seed, config.StageBreakables))

	return lvl, nil
}
