package ebiten

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"towergen/pkg/game/config"
	"towergen/pkg/game/renderer"
	"towergen/pkg/game/state"
)

var _ renderer.Previewer = (*Preview)(nil)

func TestZoomClamps(t *testing.T) {
	assert.Equal(t, defaultTileSize+tileSizeStep, zoom(defaultTileSize, tileSizeStep))
	assert.Equal(t, maxTileSize, zoom(maxTileSize, tileSizeStep))
	assert.Equal(t, minTileSize, zoom(minTileSize, -tileSizeStep))
}

func TestFitTileSize(t *testing.T) {
	assert.Equal(t, defaultTileSize, fitTileSize(40, 30, defaultTileSize))

	size := fitTileSize(400, 300, defaultTileSize)
	assert.Equal(t, minTileSize, size)

	size = fitTileSize(120, 40, defaultTileSize)
	assert.LessOrEqual(t, 120*size, maxWindowWidth)
}

func TestScreenSize(t *testing.T) {
	p := New()
	w, h := p.screenSize()
	assert.Zero(t, w)
	assert.Zero(t, h)

	s, err := state.NewSession(config.Defaults(), 30, 20)
	require.NoError(t, err)
	p.session = s

	w, h = p.screenSize()
	assert.Equal(t, 30*defaultTileSize, w)
	assert.Equal(t, 20*defaultTileSize+statusHeight, h)

	lw, lh := p.Layout(10, 10)
	assert.Equal(t, w, lw)
	assert.Equal(t, h, lh)
}

func TestStatusLine(t *testing.T) {
	p := config.Defaults()
	p.Seed = 7
	s, err := state.NewSession(p, 30, 20)
	require.NoError(t, err)
	require.NoError(t, s.Regenerate())

	line := statusLine(s)
	assert.Contains(t, line, "seed 7")
	assert.Contains(t, line, "[R] next")
}
