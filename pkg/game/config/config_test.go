package config

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_Valid(t *testing.T) {
	p := Defaults()
	require.NoError(t, p.Validate(20, 20))
	assert.False(t, p.NoiseEnabled())
	assert.Equal(t, LayoutRooms, p.Layout)
}

func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name          string
		mutate        func(*Params)
		width, height int
	}{
		{"min greater than max", func(p *Params) { p.MinRoomSize, p.MaxRoomSize = 8, 4 }, 20, 20},
		{"zero min size", func(p *Params) { p.MinRoomSize = 0 }, 20, 20},
		{"negative room count", func(p *Params) { p.RoomCount = -1 }, 20, 20},
		{"density above one", func(p *Params) { p.EnemyDensity = 1.5 }, 20, 20},
		{"negative bias", func(p *Params) { p.EdgeWallBias = -0.1 }, 20, 20},
		{"nan density", func(p *Params) { p.LootDensity = math.NaN() }, 20, 20},
		{"negative noise scale", func(p *Params) { p.NoiseScale = -1 }, 20, 20},
		{"negative distance", func(p *Params) { p.MinPlayerExitDist = -3 }, 20, 20},
		{"unknown layout", func(p *Params) { p.Layout = "cave" }, 20, 20},
		{"single cell", func(p *Params) {}, 1, 1},
		{"empty bounds", func(p *Params) {}, 0, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Defaults()
			tc.mutate(&p)
			assert.ErrorIs(t, p.Validate(tc.width, tc.height), ErrInvalidParameters)
		})
	}
}

func TestFromMap(t *testing.T) {
	p, err := FromMap(map[string]string{
		"seed":              "42",
		"room_count":        " 8 ",
		"noise_scale":       "0.8",
		"breakable_density": "0",
		"LAYOUT":            "BSP",
		"controller_colour": "ignored",
	})
	require.NoError(t, err)

	want := Defaults()
	want.Seed = 42
	want.RoomCount = 8
	want.NoiseScale = 0.8
	want.BreakableDensity = 0
	want.Layout = LayoutBSP
	assert.Equal(t, want, p)
	assert.True(t, p.NoiseEnabled())
}

func TestFromMap_MissingKeepsDefaults(t *testing.T) {
	p, err := FromMap(nil)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), p)
}

func TestFromMap_BadNumber(t *testing.T) {
	_, err := FromMap(map[string]string{"room_count": "many"})
	assert.ErrorIs(t, err, ErrInvalidParameters)

	_, err = FromMap(map[string]string{"edge_wall_bias": "x"})
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestParseAssignment(t *testing.T) {
	name, value, err := ParseAssignment(" enemy_density = 0.5")
	require.NoError(t, err)
	assert.Equal(t, "enemy_density", name)
	assert.Equal(t, "0.5", value)

	_, _, err = ParseAssignment("enemy_density")
	assert.ErrorIs(t, err, ErrInvalidParameters)
	_, _, err = ParseAssignment("=1")
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestStageSeed(t *testing.T) {
	assert.Equal(t, int64(100), StageSeed(100, StageCarve))
	assert.Equal(t, int64(100)+stageStride, StageSeed(100, StageSelect))
	assert.Equal(t, int64(100)+3*stageStride, StageSeed(100, StageBreakables))
	assert.Equal(t, "populate", StagePopulate.String())
}

func TestStageSeed_ConsecutiveBasesDoNotShareStreams(t *testing.T) {
	stages := []Stage{StageCarve, StageSelect, StagePopulate, StageBreakables}
	seen := make(map[int64]string)
	for base := int64(-50); base <= 50; base++ {
		for _, s := range stages {
			seed := StageSeed(base, s)
			_, dup := seen[seed]
			require.False(t, dup, "base %d %s collides with %s", base, s, seen[seed])
			seen[seed] = fmt.Sprintf("base %d %s", base, s)
		}
	}
}
