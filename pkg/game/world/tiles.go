// Package world maps engine tile types to the symbols, prefabs and names
// that exporters and previews show. The generator core never reads it.
package world

import (
	"fmt"
	"image/color"
	"sort"
	"sync"

	"towergen/pkg/engine/world"
)

// TileInfo describes how a tile type is presented outside the generator.
type TileInfo struct {
	Type world.TileType

	// Symbol is the single ASCII character used in map dumps and level files.
	Symbol byte
	// Glyph is what the terminal preview draws.
	Glyph string
	// Name is the exporter's upper-case identifier, also the translation key.
	Name string

	// Passable follows the game's movement rules. Generator reachability
	// counts every non-wall tile, breakables included.
	Passable bool
	Prefab   int
	Color    color.RGBA
}

var (
	mu       sync.RWMutex
	byType   = map[world.TileType]TileInfo{}
	bySymbol = map[byte]world.TileType{}
)

func init() {
	for _, info := range []TileInfo{
		{Type: world.TileEmpty, Symbol: '.', Glyph: "·", Name: "EMPTY", Passable: true, Prefab: 0, Color: color.RGBA{0x30, 0x30, 0x38, 0xff}},
		{Type: world.TileWall, Symbol: '#', Glyph: "█", Name: "WALL", Passable: false, Prefab: 1, Color: color.RGBA{0x80, 0x80, 0x80, 0xff}},
		{Type: world.TilePlayer, Symbol: 'P', Glyph: "@", Name: "PLAYER", Passable: true, Prefab: 3, Color: color.RGBA{0x40, 0xa0, 0xff, 0xff}},
		{Type: world.TileEnemy, Symbol: 'E', Glyph: "e", Name: "ENEMY", Passable: true, Prefab: 4, Color: color.RGBA{0xe0, 0x30, 0x30, 0xff}},
		{Type: world.TileEnemyShooter, Symbol: 'S', Glyph: "s", Name: "ENEMY_SHOOTER", Passable: true, Prefab: 5, Color: color.RGBA{0xff, 0x80, 0x20, 0xff}},
		{Type: world.TileCoin, Symbol: 'C', Glyph: "$", Name: "COIN", Passable: true, Prefab: 6, Color: color.RGBA{0xff, 0xd7, 0x00, 0xff}},
		{Type: world.TileHealth, Symbol: 'H', Glyph: "+", Name: "HEALTH", Passable: true, Prefab: 7, Color: color.RGBA{0x30, 0xd0, 0x60, 0xff}},
		{Type: world.TileBreakable, Symbol: 'B', Glyph: "▒", Name: "BREAKABLE", Passable: false, Prefab: 8, Color: color.RGBA{0x8b, 0x5a, 0x2b, 0xff}},
		{Type: world.TileExit, Symbol: 'X', Glyph: "▼", Name: "STAIRS", Passable: true, Prefab: 9, Color: color.RGBA{0xc0, 0x40, 0xff, 0xff}},
	} {
		if err := Register(info); err != nil {
			panic(err)
		}
	}
}

// Register adds a tile type to the table. Both the type and the symbol
// must be unused.
func Register(info TileInfo) error {
	mu.Lock()
	defer mu.Unlock()

	if _, ok := byType[info.Type]; ok {
		return fmt.Errorf("tile %s already registered", info.Type)
	}
	if t, ok := bySymbol[info.Symbol]; ok {
		return fmt.Errorf("symbol %q already used by %s", info.Symbol, t)
	}
	byType[info.Type] = info
	bySymbol[info.Symbol] = info.Type
	return nil
}

// Info returns the presentation of a tile type
func Info(t world.TileType) (TileInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()
	info, ok := byType[t]
	return info, ok
}

// Symbol returns the ASCII symbol of a tile type, '?' if unregistered
func Symbol(t world.TileType) byte {
	if info, ok := Info(t); ok {
		return info.Symbol
	}
	return '?'
}

// FromSymbol returns the tile type drawn with the given symbol
func FromSymbol(s byte) (world.TileType, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := bySymbol[s]
	return t, ok
}

// All returns every registered tile, ordered by prefab index
func All() []TileInfo {
	mu.RLock()
	out := make([]TileInfo, 0, len(byType))
	for _, info := range byType {
		out = append(out, info)
	}
	mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Prefab != out[j].Prefab {
			return out[i].Prefab < out[j].Prefab
		}
		return out[i].Type < out[j].Type
	})
	return out
}
