package levelgen

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"towergen/pkg/engine/world"
	"towergen/pkg/game/config"
)

// Stats counts what the populator placed.
type Stats struct {
	Enemies  int
	Shooters int
	Loot     map[world.TileType]int

	BreakableEdge  int
	BreakableThick int
}

// LootCount returns how many cells of a loot tile were placed
func (s Stats) LootCount(t world.TileType) int {
	return s.Loot[t]
}

// Breakables returns the total number of breakable walls
func (s Stats) Breakables() int {
	return s.BreakableEdge + s.BreakableThick
}

// PlaceInhabitants walks the floor in scan order and turns some cells into
// enemies or loot. Cells in avoid are never touched. Each cell takes one
// draw to decide enemy, loot or nothing, and a second draw for the subtype.
// Loot appears with probability LootScale * loot_density * loot.Strength().
func PlaceInhabitants(grid *world.Grid, p config.Params, avoid *mapset.Set[world.Point], loot *LootTable, rng *rand.Rand) Stats {
	stats := Stats{Loot: make(map[world.TileType]int)}

	enemyChance := config.EnemyScale * p.EnemyDensity
	lootChance := 0.0
	if loot != nil {
		lootChance = config.LootScale * p.LootDensity * loot.Strength()
	}
	if enemyChance <= 0 && lootChance <= 0 {
		return stats
	}

	for _, pt := range grid.Find(world.TileEmpty) {
		if avoid != nil && avoid.Has(pt) {
			continue
		}

		r := rng.Float64()
		switch {
		case r < enemyChance:
			t := pickEnemy(rng.Float64())
			_ = grid.SetType(pt.X, pt.Z, t)
			if t == world.TileEnemyShooter {
				stats.Shooters++
			} else {
				stats.Enemies++
			}
		case r < enemyChance+lootChance:
			t, ok := loot.Pick(rng.Float64())
			if !ok {
				continue
			}
			_ = grid.SetType(pt.X, pt.Z, t)
			stats.Loot[t]++
		}
	}
	return stats
}

// pickEnemy splits enemies between grunts and shooters by weight
func pickEnemy(r float64) world.TileType {
	if r*(config.GruntWeight+config.ShooterWeight) < config.GruntWeight {
		return world.TileEnemy
	}
	return world.TileEnemyShooter
}
