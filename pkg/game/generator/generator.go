// Package generator turns a parameter set and grid bounds into a finished
// level: rooms, corridors, spawn and exit, a guaranteed route between them,
// and the level's inhabitants.
package generator

import (
	"fmt"

	"towergen/pkg/game/config"
	"towergen/pkg/game/levelgen"
)

// GridGenerator is an interface for level generation algorithms
type GridGenerator interface {
	Generate(p config.Params, width, height int) (*Level, error)
	Name() string
}

// Available generators
var (
	Rooms = &RoomsGenerator{}
	BSP   = &BSPGenerator{}
)

// DefaultGenerator is the default level generator
var DefaultGenerator GridGenerator = Rooms

// ForLayout returns the generator registered for a layout name
func ForLayout(layout string) (GridGenerator, error) {
	switch layout {
	case "", config.LayoutRooms:
		return Rooms, nil
	case config.LayoutBSP:
		return BSP, nil
	}
	return nil, fmt.Errorf("%w: unknown layout %q", config.ErrInvalidParameters, layout)
}

// Generate runs the generator selected by p.Layout
func Generate(p config.Params, width, height int) (*Level, error) {
	g, err := ForLayout(p.Layout)
	if err != nil {
		return nil, err
	}
	return g.Generate(p, width, height)
}

// RoomsGenerator scatters rectangular or noise-shaped rooms at random.
type RoomsGenerator struct {
	// ExtraLoot is appended to the default coin/health loot table.
	ExtraLoot []levelgen.LootEntry
}

// Name returns the name of this generator
func (g *RoomsGenerator) Name() string {
	return "Random Rooms"
}

// Generate builds a level with randomly placed rooms
func (g *RoomsGenerator) Generate(p config.Params, width, height int) (*Level, error) {
	return run(randomRooms{}, config.LayoutRooms, g.ExtraLoot, p, width, height)
}

// BSPGenerator places non-overlapping rooms in the leaves of a BSP tree.
type BSPGenerator struct {
	// ExtraLoot is appended to the default coin/health loot table.
	ExtraLoot []levelgen.LootEntry
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// Generate builds a level using binary space partitioning for room placement
func (g *BSPGenerator) Generate(p config.Params, width, height int) (*Level, error) {
	return run(bspRooms{}, config.LayoutBSP, g.ExtraLoot, p, width, height)
}
