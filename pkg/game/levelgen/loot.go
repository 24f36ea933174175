package levelgen

import (
	"towergen/pkg/engine/world"
	"towergen/pkg/game/config"
)

// LootEntry is one kind of pickup. Its share of placed loot is
// Ratio * Density relative to the other entries.
type LootEntry struct {
	Tile    world.TileType
	Ratio   float64
	Density float64
}

// Weight returns the entry's effective weight
func (e LootEntry) Weight() float64 {
	if e.Ratio <= 0 || e.Density <= 0 {
		return 0
	}
	return e.Ratio * e.Density
}

// LootTable is an ordered, weighted list of pickups.
type LootTable struct {
	entries []LootEntry
}

// DefaultLootTable returns coins and health packs weighted by the level's densities
func DefaultLootTable(p config.Params) *LootTable {
	t := &LootTable{}
	t.Add(LootEntry{Tile: world.TileCoin, Ratio: config.CoinWeight, Density: p.CoinDensity})
	t.Add(LootEntry{Tile: world.TileHealth, Ratio: config.HealthWeight, Density: p.HealthDensity})
	return t
}

// Add appends an entry; a tile already in the table is replaced in place
func (t *LootTable) Add(e LootEntry) {
	for i := range t.entries {
		if t.entries[i].Tile == e.Tile {
			t.entries[i] = e
			return
		}
	}
	t.entries = append(t.entries, e)
}

// Entries returns a copy of the table
func (t *LootTable) Entries() []LootEntry {
	out := make([]LootEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// TotalWeight is the sum of all entry weights
func (t *LootTable) TotalWeight() float64 {
	total := 0.0
	for _, e := range t.entries {
		total += e.Weight()
	}
	return total
}

// Strength is the ratio-weighted mean entry density, in [0,1] when every
// density is. It scales how much loot is placed, while Pick decides which.
func (t *LootTable) Strength() float64 {
	var ratios, weighted float64
	for _, e := range t.entries {
		if e.Ratio <= 0 {
			continue
		}
		ratios += e.Ratio
		weighted += e.Weight()
	}
	if ratios <= 0 {
		return 0
	}
	return weighted / ratios
}

// Pick maps r in [0,1) onto an entry by weight. It reports false when
// every weight is zero.
func (t *LootTable) Pick(r float64) (world.TileType, bool) {
	total := t.TotalWeight()
	if total <= 0 {
		return world.TileWall, false
	}
	target := r * total
	var last world.TileType
	for _, e := range t.entries {
		w := e.Weight()
		if w == 0 {
			continue
		}
		last = e.Tile
		if target < w {
			return e.Tile, true
		}
		target -= w
	}
	// rounding can leave target a hair above the final weight
	return last, true
}
