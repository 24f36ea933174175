// Package devtools provides developer tools for inspecting and exporting
// generated levels: text dumps, level files and HTML snapshots.
package devtools

import (
	"errors"
	"fmt"
	"strings"

	"towergen/pkg/engine/world"
	gameworld "towergen/pkg/game/world"
)

// ErrUnknownSymbol is returned when a map row contains a character with no tile.
var ErrUnknownSymbol = errors.New("devtools: unknown map symbol")

// EncodeASCII returns one string per grid row, z=0 first
func EncodeASCII(g *world.Grid) []string {
	rows := make([]string, g.Height())
	var sb strings.Builder
	for z := 0; z < g.Height(); z++ {
		sb.Reset()
		for x := 0; x < g.Width(); x++ {
			sb.WriteByte(gameworld.Symbol(g.Type(world.Point{X: x, Z: z})))
		}
		rows[z] = sb.String()
	}
	return rows
}

// DecodeASCII rebuilds a grid's tile types from rows made by EncodeASCII.
// Room labels are not part of the text form.
func DecodeASCII(rows []string) (*world.Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", world.ErrInvalidDimensions)
	}
	tiles := make([][]world.TileType, len(rows))
	for z, row := range rows {
		tiles[z] = make([]world.TileType, len(row))
		for x := 0; x < len(row); x++ {
			t, ok := gameworld.FromSymbol(row[x])
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownSymbol, row[x], x, z)
			}
			tiles[z][x] = t
		}
	}
	return world.FromTiles(tiles, nil)
}
