// Package tower plans a run of stacked floors: one level per floor, numbered
// from 1, each seeded one past the floor below it. Floors climb linearly and
// the top floor has no way up.
package tower

import (
	"errors"
	"fmt"

	"towergen/pkg/game/config"
)

// ErrInvalidTower is returned for a tower without floors.
var ErrInvalidTower = errors.New("tower: invalid tower")

// Band groups floors by how far up the tower they are.
type Band int

const (
	Lower Band = iota
	Middle
	Upper
	Summit
)

func (b Band) String() string {
	switch b {
	case Lower:
		return "lower"
	case Middle:
		return "middle"
	case Upper:
		return "upper"
	case Summit:
		return "summit"
	default:
		return fmt.Sprintf("Band(%d)", int(b))
	}
}

// Floor describes one level of the tower.
type Floor struct {
	Level  int // 1-based floor number, also the exported level id
	Band   Band
	Params config.Params
	// Next is the floor above, or 0 on the top floor.
	Next int
}

// IsTop reports whether f is the last floor.
func (f Floor) IsTop() bool {
	return f.Next == 0
}

// Ramp scales densities per floor. A zero Ramp leaves every floor at the
// base parameters.
type Ramp struct {
	EnemyStep float64 // added to enemy_density per floor above the first
	LootStep  float64 // subtracted from loot_density per floor above the first
}

// DefaultRamp makes each floor slightly more hostile and less generous
var DefaultRamp = Ramp{EnemyStep: 0.05, LootStep: 0.03}

// Plan lays out count floors over base. Floor n uses seed base.Seed+n-1.
func Plan(base config.Params, count int, ramp Ramp) ([]Floor, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d floors", ErrInvalidTower, count)
	}

	floors := make([]Floor, count)
	for i := range floors {
		next := 0
		if i < count-1 {
			next = i + 2
		}
		floors[i] = Floor{
			Level:  i + 1,
			Band:   BandFor(i+1, count),
			Params: ParamsForFloor(base, i+1, ramp),
			Next:   next,
		}
	}
	return floors, nil
}

// Params returns the generation parameters of each floor, in order.
func Params(floors []Floor) []config.Params {
	out := make([]config.Params, len(floors))
	for i, f := range floors {
		out[i] = f.Params
	}
	return out
}

// BandFor places floor level (1-based) of a count-floor tower in a band.
// The top floor is always Summit.
func BandFor(level, count int) Band {
	if level >= count {
		return Summit
	}
	// thirds of the floors below the summit
	switch frac := float64(level-1) / float64(max(count-1, 1)); {
	case frac < 1.0/3:
		return Lower
	case frac < 2.0/3:
		return Middle
	default:
		return Upper
	}
}

// ParamsForFloor derives floor level's parameters from base. Densities stay
// in [0,1].
func ParamsForFloor(base config.Params, level int, ramp Ramp) config.Params {
	p := base
	if level < 1 {
		level = 1
	}
	p.Seed = base.Seed + int64(level-1)

	depth := float64(level - 1)
	p.EnemyDensity = clamp01(base.EnemyDensity + ramp.EnemyStep*depth)
	p.LootDensity = clamp01(base.LootDensity - ramp.LootStep*depth)
	return p
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
