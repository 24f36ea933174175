package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_AllWall(t *testing.T) {
	g, err := NewGrid(6, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, g.Width())
	assert.Equal(t, 4, g.Height())
	assert.Equal(t, 24, g.Len())

	g.ForEachCell(func(c Cell) {
		assert.Equal(t, TileWall, c.Type, "cell (%d,%d)", c.X, c.Z)
		assert.Equal(t, NoRoom, c.RoomID, "cell (%d,%d)", c.X, c.Z)
	})
}

func TestNewGrid_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative", -1, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGrid(tc.width, tc.height)
			assert.True(t, errors.Is(err, ErrInvalidDimensions))
		})
	}
}

func TestGrid_OutOfBounds(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)

	for _, p := range []Point{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {10, 10}} {
		_, err := g.CellAt(p.X, p.Z)
		assert.ErrorIs(t, err, ErrOutOfBounds, "CellAt%v", p)
		assert.ErrorIs(t, g.SetType(p.X, p.Z, TileEmpty), ErrOutOfBounds)
		assert.ErrorIs(t, g.SetRoom(p.X, p.Z, 1), ErrOutOfBounds)
		_, err = g.TypeAt(p.X, p.Z)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		_, err = g.RoomAt(p.X, p.Z)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.Equal(t, TileWall, g.Type(p))
	}
}

func TestGrid_SetTypeAndRoom(t *testing.T) {
	g, err := NewGrid(4, 4)
	require.NoError(t, err)

	require.NoError(t, g.SetType(2, 1, TileEmpty))
	require.NoError(t, g.SetRoom(2, 1, 7))

	c, err := g.CellAt(2, 1)
	require.NoError(t, err)
	assert.Equal(t, TileEmpty, c.Type)
	assert.Equal(t, 7, c.RoomID)
	assert.True(t, c.InRoom())
	assert.Equal(t, Point{X: 2, Z: 1}, c.Pos())

	assert.Equal(t, 1, g.Count(TileEmpty))
	assert.Equal(t, []Point{{X: 2, Z: 1}}, g.Find(TileEmpty))
}

func TestGrid_IndexRoundTrip(t *testing.T) {
	g, err := NewGrid(7, 5)
	require.NoError(t, err)
	for z := 0; z < 5; z++ {
		for x := 0; x < 7; x++ {
			assert.Equal(t, Point{X: x, Z: z}, g.PointAt(g.Index(x, z)))
		}
	}
}

func TestGrid_TilesRoundTrip(t *testing.T) {
	g, err := NewGrid(5, 3)
	require.NoError(t, err)
	require.NoError(t, g.SetType(1, 1, TileEmpty))
	require.NoError(t, g.SetRoom(1, 1, 1))
	require.NoError(t, g.SetType(2, 1, TilePlayer))
	require.NoError(t, g.SetRoom(2, 1, 1))
	require.NoError(t, g.SetType(3, 1, TileExit))
	require.NoError(t, g.SetType(4, 2, TileBreakable))
	require.NoError(t, g.SetType(0, 0, TileType(42)))

	back, err := FromTiles(g.Tiles(), g.RoomIDs())
	require.NoError(t, err)
	assert.True(t, g.Equal(back))
	assert.Equal(t, g.Tiles(), back.Tiles())
	assert.Equal(t, g.RoomIDs(), back.RoomIDs())
}

func TestFromTiles_Errors(t *testing.T) {
	_, err := FromTiles(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = FromTiles([][]TileType{{TileWall, TileWall}, {TileWall}}, nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = FromTiles([][]TileType{{TileWall}}, [][]int{{1}, {2}})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)
	g.SetSeed(99)

	c := g.Clone()
	require.True(t, g.Equal(c))
	assert.Equal(t, int64(99), c.Seed())

	require.NoError(t, c.SetType(1, 1, TileEmpty))
	assert.False(t, g.Equal(c))
	typ, _ := g.TypeAt(1, 1)
	assert.Equal(t, TileWall, typ)
}

func TestDirection_OppositeAndDelta(t *testing.T) {
	for _, d := range AllDirections() {
		require.True(t, d.IsValid())
		dx, dz := d.Delta()
		ox, oz := d.Opposite().Delta()
		assert.Equal(t, -dx, ox, d.String())
		assert.Equal(t, -dz, oz, d.String())
		assert.Equal(t, d, d.Opposite().Opposite())
	}
	for _, d := range CardinalDirections() {
		dx, dz := d.Delta()
		assert.Equal(t, 1, abs(dx)+abs(dz), d.String())
	}
	assert.False(t, Direction(99).IsValid())
}

func TestPoint_IsAdjacent(t *testing.T) {
	p := Point{X: 2, Z: 2}
	assert.True(t, p.IsAdjacent(Point{X: 3, Z: 2}))
	assert.True(t, p.IsAdjacent(Point{X: 1, Z: 1}))
	assert.False(t, p.IsAdjacent(p))
	assert.False(t, p.IsAdjacent(Point{X: 4, Z: 2}))
}
