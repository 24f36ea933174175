package devtools

import (
	"towergen/pkg/engine/world"
	gameworld "towergen/pkg/game/world"
)

// DevMap builds a hand-made grid showing every registered tile type in a
// row, each on its own floor patch with a 1 cell margin. It is used to check
// palettes and renderers without running the generator.
func DevMap() *world.Grid {
	const margin = 1
	tiles := gameworld.All()

	width := len(tiles)*(margin+1) + margin + 2
	height := 5
	grid, err := world.NewGrid(width, height)
	if err != nil {
		// dimensions are constant and positive
		panic(err)
	}

	// Open a floor strip through the middle three rows
	for z := 1; z < height-1; z++ {
		for x := 1; x < width-1; x++ {
			_ = grid.SetType(x, z, world.TileEmpty)
		}
	}

	col := 1 + margin
	for _, info := range tiles {
		_ = grid.SetType(col, 2, info.Type)
		col += margin + 1
	}
	return grid
}
