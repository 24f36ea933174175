package generator

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"towergen/pkg/engine/pathfind"
	"towergen/pkg/engine/world"
	"towergen/pkg/game/config"
	"towergen/pkg/game/levelgen"
)

// assertPlayable checks the invariants every finished level must hold.
func assertPlayable(t *testing.T, lvl *Level) {
	t.Helper()
	g := lvl.Grid

	players := g.Find(world.TilePlayer)
	exits := g.Find(world.TileExit)
	require.Len(t, players, 1, "player count")
	require.Len(t, exits, 1, "exit count")
	assert.Equal(t, lvl.Spawn, players[0])
	assert.Equal(t, lvl.Exit, exits[0])

	path, err := pathfind.NewGraph(g).ShortestPath(lvl.Spawn, lvl.Exit)
	require.NoError(t, err, "spawn and exit must be connected")
	assert.Equal(t, lvl.SpawnExitDistance, path.Len())

	require.NotEmpty(t, lvl.GuaranteedPath)
	assert.Equal(t, lvl.Spawn, lvl.GuaranteedPath[0])
	assert.Equal(t, lvl.Exit, lvl.GuaranteedPath[len(lvl.GuaranteedPath)-1])
	for _, p := range lvl.GuaranteedPath {
		typ := g.Type(p)
		assert.Contains(t, []world.TileType{world.TileEmpty, world.TilePlayer, world.TileExit}, typ,
			"guaranteed path cell %v is %s", p, typ)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, layout := range []string{config.LayoutRooms, config.LayoutBSP} {
		t.Run(layout, func(t *testing.T) {
			p := config.Defaults()
			p.Layout = layout
			p.Seed = 2024

			a, err := Generate(p, 40, 30)
			require.NoError(t, err)
			b, err := Generate(p, 40, 30)
			require.NoError(t, err)

			assert.True(t, a.Grid.Equal(b.Grid))
			assert.Equal(t, a.Spawn, b.Spawn)
			assert.Equal(t, a.Exit, b.Exit)
			assert.Equal(t, a.Corridors, b.Corridors)
			assert.Equal(t, a.Population, b.Population)
		})
	}
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	p := config.Defaults()
	a, err := Generate(p, 40, 30)
	require.NoError(t, err)
	p.Seed++
	b, err := Generate(p, 40, 30)
	require.NoError(t, err)
	assert.False(t, a.Grid.Equal(b.Grid))
}

func TestGenerate_InvariantsAcrossSeeds(t *testing.T) {
	for _, layout := range []string{config.LayoutRooms, config.LayoutBSP} {
		for seed := int64(1); seed <= 25; seed++ {
			p := config.Defaults()
			p.Layout = layout
			p.Seed = seed
			p.RoomCount = 6
			p.MinPlayerExitDist = 12

			lvl, err := Generate(p, 36, 24)
			require.NoError(t, err, "%s seed %d", layout, seed)
			assertPlayable(t, lvl)
			assert.Equal(t, layout, lvl.Layout)
		}
	}
}

func TestGenerate_NoiseRooms(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		p := config.Defaults()
		p.Seed = seed
		p.NoiseScale = 0.8
		p.NoiseThreshold = 0.5
		p.MinRoomSize, p.MaxRoomSize = 5, 9

		lvl, err := Generate(p, 40, 40)
		require.NoError(t, err)
		assertPlayable(t, lvl)

		again, err := Generate(p, 40, 40)
		require.NoError(t, err)
		assert.True(t, lvl.Grid.Equal(again.Grid), "seed %d", seed)

		// Every requested room either has cells or was reported.
		missing := p.RoomCount - len(lvl.Rooms)
		degenerate := 0
		for _, w := range lvl.Warnings {
			if errors.Is(w, ErrDegenerateRoom) {
				degenerate++
			}
		}
		assert.GreaterOrEqual(t, degenerate, missing, "seed %d", seed)

		dist, err := pathfind.NewGraph(lvl.Grid).DistanceMap(lvl.Spawn)
		require.NoError(t, err)
		for _, room := range lvl.Rooms {
			cut := 0
			for _, c := range room.Cells {
				if dist[lvl.Grid.Index(c.X, c.Z)] == pathfind.Unreachable {
					cut++
				}
			}
			assert.Zero(t, cut, "seed %d room %d: %d/%d cells unreachable from spawn", seed, room.ID, cut, len(room.Cells))
		}
	}
}

func TestLargestPatch(t *testing.T) {
	// two blobs inside a 6x3 rect: 2 cells on the left, 5 on the right
	floor := map[world.Point]bool{
		{X: 0, Z: 0}: true, {X: 0, Z: 1}: true,
		{X: 3, Z: 0}: true, {X: 4, Z: 0}: true, {X: 4, Z: 1}: true, {X: 5, Z: 2}: true, {X: 4, Z: 2}: true,
	}
	mask := func(x, z int) bool { return floor[world.Point{X: x, Z: z}] }

	patch := largestPatch(Rect{Width: 6, Height: 3}, mask)
	assert.Equal(t, 5, patch.Size())
	assert.True(t, patch.Has(world.Point{X: 5, Z: 2}))
	assert.False(t, patch.Has(world.Point{X: 0, Z: 0}))

	// diagonal contact does not join cells; the first of equal groups wins
	diag := func(x, z int) bool { return x == z }
	patch = largestPatch(Rect{Width: 3, Height: 3}, diag)
	assert.Equal(t, 1, patch.Size())
	assert.True(t, patch.Has(world.Point{}))
}

func TestGenerate_RoomsWithinBounds(t *testing.T) {
	p := config.Defaults()
	p.RoomCount, p.MinRoomSize, p.MaxRoomSize = 5, 3, 7

	for seed := int64(0); seed < 20; seed++ {
		p.Seed = seed
		lvl, err := Generate(p, 20, 20)
		require.NoError(t, err)
		for _, r := range lvl.Rooms {
			assert.GreaterOrEqual(t, r.ID, 1)
			assert.LessOrEqual(t, r.ID, p.RoomCount)
			for _, c := range r.Cells {
				assert.True(t, c.X >= 0 && c.X < 20 && c.Z >= 0 && c.Z < 20, "room %d cell %v", r.ID, c)
			}
			assert.LessOrEqual(t, r.Bounds.Width, 7)
			assert.LessOrEqual(t, r.Bounds.Height, 7)
		}
	}
}

func TestGenerate_InvalidParameters(t *testing.T) {
	p := config.Defaults()
	p.MinRoomSize, p.MaxRoomSize = 9, 4
	lvl, err := Generate(p, 20, 20)
	assert.ErrorIs(t, err, config.ErrInvalidParameters)
	assert.Nil(t, lvl)

	_, err = Generate(config.Defaults(), 1, 1)
	assert.ErrorIs(t, err, config.ErrInvalidParameters)

	p = config.Defaults()
	p.Layout = "maze"
	_, err = Generate(p, 20, 20)
	assert.ErrorIs(t, err, config.ErrInvalidParameters)
}

func TestGenerate_SingleRoomIsInsufficient(t *testing.T) {
	p := config.Defaults()
	p.RoomCount = 1
	lvl, err := Generate(p, 20, 20)
	require.NoError(t, err)
	assert.True(t, lvl.HasWarning(ErrInsufficientRooms))
	assert.Empty(t, lvl.Corridors)
	assertPlayable(t, lvl)
}

func TestGenerate_RoomsTooBigForGrid(t *testing.T) {
	p := config.Defaults()
	p.MinRoomSize, p.MaxRoomSize = 6, 8
	lvl, err := Generate(p, 5, 4)
	require.NoError(t, err)

	assert.True(t, lvl.HasWarning(ErrDegenerateRoom))
	assert.True(t, lvl.HasWarning(ErrInsufficientRooms))
	assert.True(t, lvl.HasWarning(ErrNoSpawnCandidates))
	assert.Empty(t, lvl.Rooms)
	assert.Positive(t, lvl.OpenedWalls)
	assertPlayable(t, lvl)
}

func TestGenerate_ExtraLoot(t *testing.T) {
	const gem = world.TileType(world.NumBuiltinTiles + 1)
	g := &RoomsGenerator{ExtraLoot: []levelgen.LootEntry{{Tile: gem, Ratio: 50, Density: 1}}}

	p := config.Defaults()
	p.RoomCount, p.MinRoomSize, p.MaxRoomSize = 8, 6, 10
	lvl, err := g.Generate(p, 40, 40)
	require.NoError(t, err)
	assert.Positive(t, lvl.Population.LootCount(gem))
	assert.Equal(t, lvl.Population.LootCount(gem), lvl.Grid.Count(gem))
	assertPlayable(t, lvl)
}

func TestForLayout(t *testing.T) {
	g, err := ForLayout("")
	require.NoError(t, err)
	assert.Equal(t, DefaultGenerator, g)

	g, err = ForLayout(config.LayoutBSP)
	require.NoError(t, err)
	assert.Equal(t, "BSP Tree", g.Name())

	_, err = ForLayout("cave")
	assert.ErrorIs(t, err, config.ErrInvalidParameters)
}

func TestConnectRooms_ThreeRoomsConnected(t *testing.T) {
	g, err := world.NewGrid(30, 30)
	require.NoError(t, err)
	carveRect(g, Rect{X: 1, Z: 1, Width: 4, Height: 4}, 1, nil)
	carveRect(g, Rect{X: 24, Z: 2, Width: 5, Height: 3}, 2, nil)
	carveRect(g, Rect{X: 10, Z: 22, Width: 6, Height: 6}, 3, nil)

	rooms := collectRooms(g)
	require.Len(t, rooms, 3)

	edges, warnings := connectRooms(g, rooms)
	assert.Empty(t, warnings)
	assert.Len(t, edges, 2)

	reach, err := pathfind.NewGraph(g).Reachable(rooms[0].Anchor)
	require.NoError(t, err)
	reachable := levelgen.ProtectedSet(reach)
	for _, r := range rooms {
		for _, c := range r.Cells {
			assert.True(t, reachable.Has(c), "room %d cell %v unreachable", r.ID, c)
		}
	}
	// Corridors never relabel cells.
	for _, r := range collectRooms(g) {
		assert.Len(t, r.Cells, len(rooms[r.ID-1].Cells))
	}
}

func TestConnectRooms_NearestFirst(t *testing.T) {
	g, err := world.NewGrid(40, 10)
	require.NoError(t, err)
	carveRect(g, Rect{X: 0, Z: 0, Width: 3, Height: 3}, 1, nil)
	carveRect(g, Rect{X: 35, Z: 0, Width: 3, Height: 3}, 2, nil)
	carveRect(g, Rect{X: 10, Z: 0, Width: 3, Height: 3}, 3, nil)

	edges, _ := connectRooms(g, collectRooms(g))
	assert.Equal(t, []RoomEdge{{From: 1, To: 3}, {From: 3, To: 2}}, edges)
}

func TestCollectRooms_Centroid(t *testing.T) {
	g, err := world.NewGrid(10, 10)
	require.NoError(t, err)
	carveRect(g, Rect{X: 2, Z: 4, Width: 3, Height: 3}, 1, nil)

	rooms := collectRooms(g)
	require.Len(t, rooms, 1)
	assert.InDelta(t, 3.0, rooms[0].CentroidX, 1e-9)
	assert.InDelta(t, 5.0, rooms[0].CentroidZ, 1e-9)
	assert.Equal(t, world.Point{X: 3, Z: 5}, rooms[0].Anchor)
	assert.Equal(t, Rect{X: 2, Z: 4, Width: 3, Height: 3}, rooms[0].Bounds)
}

func TestSelectSpawnExit_FallsBackToDiameter(t *testing.T) {
	g, err := world.NewGrid(8, 3)
	require.NoError(t, err)
	for x := 1; x <= 6; x++ {
		require.NoError(t, g.SetType(x, 1, world.TileEmpty))
	}

	sel, _ := selectSpawnExit(g, 100, rand.New(rand.NewSource(5)))
	assert.Equal(t, 5, sel.target)
	assert.Equal(t, 5, sel.distance)
	ends := []world.Point{{X: 1, Z: 1}, {X: 6, Z: 1}}
	assert.ElementsMatch(t, ends, []world.Point{sel.spawn, sel.exit})
	assert.Len(t, g.Find(world.TilePlayer), 1)
	assert.Len(t, g.Find(world.TileExit), 1)
}

func TestSelectSpawnExit_ExactTarget(t *testing.T) {
	g, err := world.NewGrid(12, 12)
	require.NoError(t, err)
	carveRect(g, Rect{X: 1, Z: 1, Width: 10, Height: 10}, 1, nil)

	sel, warnings := selectSpawnExit(g, 7, rand.New(rand.NewSource(11)))
	assert.Empty(t, warnings)
	assert.Equal(t, 7, sel.distance)
}

func TestSelectSpawnExit_RerunResetsMarkers(t *testing.T) {
	g, err := world.NewGrid(10, 10)
	require.NoError(t, err)
	carveRect(g, Rect{X: 0, Z: 0, Width: 10, Height: 10}, 1, nil)

	selectSpawnExit(g, 4, rand.New(rand.NewSource(1)))
	selectSpawnExit(g, 9, rand.New(rand.NewSource(2)))
	assert.Len(t, g.Find(world.TilePlayer), 1)
	assert.Len(t, g.Find(world.TileExit), 1)
}

func TestSelectSpawnExit_DisconnectedFloor(t *testing.T) {
	g, err := world.NewGrid(7, 1)
	require.NoError(t, err)
	require.NoError(t, g.SetType(0, 0, world.TileEmpty))
	require.NoError(t, g.SetType(6, 0, world.TileEmpty))

	sel, warnings := selectSpawnExit(g, 3, rand.New(rand.NewSource(1)))
	require.Len(t, warnings, 2)
	assert.ErrorIs(t, warnings[0], ErrSelectorBudget)
	assert.ErrorIs(t, warnings[1], ErrUnreachableEndings)
	assert.Equal(t, world.Point{X: 0, Z: 0}, sel.spawn)
	assert.Equal(t, world.Point{X: 6, Z: 0}, sel.exit)
}

func TestGuaranteePath_OpensWalls(t *testing.T) {
	g, err := world.NewGrid(12, 5)
	require.NoError(t, err)
	carveRect(g, Rect{X: 0, Z: 0, Width: 3, Height: 5}, 1, nil)
	carveRect(g, Rect{X: 8, Z: 0, Width: 4, Height: 5}, 2, nil)
	spawn, exit := world.Point{X: 1, Z: 2}, world.Point{X: 10, Z: 2}
	require.NoError(t, g.SetType(spawn.X, spawn.Z, world.TilePlayer))
	require.NoError(t, g.SetType(exit.X, exit.Z, world.TileExit))

	_, err = pathfind.NewGraph(g).ShortestPath(spawn, exit)
	require.ErrorIs(t, err, pathfind.ErrNoPath)

	path, opened, err := guaranteePath(g, spawn, exit)
	require.NoError(t, err)
	assert.Equal(t, 5, opened)
	assert.Equal(t, 9, path.Len())

	_, err = pathfind.NewGraph(g).ShortestPath(spawn, exit)
	assert.NoError(t, err)
}

func TestGuaranteePath_LeavesConnectedLevelAlone(t *testing.T) {
	g, err := world.NewGrid(10, 10)
	require.NoError(t, err)
	carveRect(g, Rect{X: 1, Z: 1, Width: 8, Height: 8}, 1, nil)
	before := g.Clone()

	_, opened, err := guaranteePath(g, world.Point{X: 1, Z: 1}, world.Point{X: 8, Z: 8})
	require.NoError(t, err)
	assert.Zero(t, opened)
	assert.True(t, before.Equal(g))
}

func TestValueNoise_Range(t *testing.T) {
	for i := 0; i < 200; i++ {
		x, z := float64(i)*0.37-20, float64(i)*0.91+3
		v := valueNoise(x, z)
		assert.True(t, v >= 0 && v <= 1, "noise(%g,%g)=%g", x, z, v)
		assert.Equal(t, v, valueNoise(x, z))
	}
}

func TestBSP_RoomsDoNotOverlap(t *testing.T) {
	p := config.Defaults()
	p.Layout = config.LayoutBSP
	p.RoomCount = 6

	for seed := int64(0); seed < 10; seed++ {
		p.Seed = seed
		lvl, err := Generate(p, 50, 40)
		require.NoError(t, err)
		assert.Len(t, lvl.Rooms, 6, "seed %d", seed)
		for i, a := range lvl.Rooms {
			for _, b := range lvl.Rooms[i+1:] {
				for _, c := range a.Cells {
					assert.False(t, b.Bounds.Contains(c), "seed %d: rooms %d and %d overlap at %v", seed, a.ID, b.ID, c)
				}
			}
		}
	}
}
