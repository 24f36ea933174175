// Package ebiten provides a windowed preview of generated levels using Ebiten.
package ebiten

import "image/color"

var (
	colorBackground = color.RGBA{26, 26, 46, 255}
	colorPathMarker = color.RGBA{255, 255, 255, 90}
	colorMissing    = color.RGBA{255, 0, 255, 255}
)

const (
	defaultTileSize = 16
	minTileSize     = 4
	maxTileSize     = 64
	tileSizeStep    = 4

	// statusHeight is reserved under the map for the debug text lines
	statusHeight = 48

	maxWindowWidth  = 1600
	maxWindowHeight = 1000
)
