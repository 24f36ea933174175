package tower

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"towergen/pkg/game/config"
)

func TestPlan_SeedsAndLinks(t *testing.T) {
	base := config.Defaults()
	base.Seed = 100

	floors, err := Plan(base, 4, Ramp{})
	require.NoError(t, err)
	require.Len(t, floors, 4)

	for i, f := range floors {
		assert.Equal(t, i+1, f.Level)
		assert.Equal(t, base.Seed+int64(i), f.Params.Seed)
		assert.Equal(t, base.EnemyDensity, f.Params.EnemyDensity)
	}
	assert.Equal(t, 2, floors[0].Next)
	assert.False(t, floors[2].IsTop())
	assert.True(t, floors[3].IsTop())
	assert.Equal(t, Summit, floors[3].Band)
}

func TestPlan_Invalid(t *testing.T) {
	_, err := Plan(config.Defaults(), 0, DefaultRamp)
	assert.ErrorIs(t, err, ErrInvalidTower)
}

func TestParamsForFloor_RampClamps(t *testing.T) {
	base := config.Defaults()
	base.EnemyDensity = 0.9
	base.LootDensity = 0.1

	p := ParamsForFloor(base, 1, DefaultRamp)
	assert.Equal(t, base, p)

	p = ParamsForFloor(base, 10, DefaultRamp)
	assert.Equal(t, 1.0, p.EnemyDensity)
	assert.Equal(t, 0.0, p.LootDensity)
	assert.NoError(t, p.Validate(32, 24))
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, Summit, BandFor(1, 1))
	assert.Equal(t, Lower, BandFor(1, 10))
	assert.Equal(t, Middle, BandFor(5, 10))
	assert.Equal(t, Upper, BandFor(9, 10))
	assert.Equal(t, Summit, BandFor(10, 10))
	assert.Equal(t, "middle", Middle.String())
}

func TestParams(t *testing.T) {
	floors, err := Plan(config.Defaults(), 3, DefaultRamp)
	require.NoError(t, err)
	ps := Params(floors)
	require.Len(t, ps, 3)
	assert.Equal(t, floors[2].Params, ps[2])
}
