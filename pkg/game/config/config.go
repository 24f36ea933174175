// Package config holds the generation parameters for a level and the
// tuning table every stage reads its scaling constants from.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidParameters is returned when a parameter set cannot produce a level.
var ErrInvalidParameters = errors.New("config: invalid parameters")

// Room layout strategies.
const (
	LayoutRooms = "rooms"
	LayoutBSP   = "bsp"
)

// Params is the immutable record of options for one generation run.
type Params struct {
	Seed        int64 `json:"seed"`
	RoomCount   int   `json:"room_count"`
	MinRoomSize int   `json:"min_room_size"`
	MaxRoomSize int   `json:"max_room_size"`

	// NoiseScale > 0 switches the carver to irregular rooms.
	NoiseScale     float64 `json:"noise_scale"`
	NoiseThreshold float64 `json:"noise_threshold"`

	EnemyDensity     float64 `json:"enemy_density"`
	LootDensity      float64 `json:"loot_density"`
	CoinDensity      float64 `json:"coin_density"`
	HealthDensity    float64 `json:"health_density"`
	BreakableDensity float64 `json:"breakable_density"`
	EdgeWallBias     float64 `json:"edge_wall_bias"`

	MinPlayerExitDist int `json:"min_player_exit_dist"`

	Layout string `json:"layout"`
}

// Defaults returns the documented default parameter set
func Defaults() Params {
	return Params{
		Seed:              12345,
		RoomCount:         5,
		MinRoomSize:       3,
		MaxRoomSize:       7,
		NoiseScale:        0,
		NoiseThreshold:    0.5,
		EnemyDensity:      0.3,
		LootDensity:       1.0,
		CoinDensity:       0.5,
		HealthDensity:     0.25,
		BreakableDensity:  0.3,
		EdgeWallBias:      1.0,
		MinPlayerExitDist: 5,
		Layout:            LayoutRooms,
	}
}

// NoiseEnabled reports whether rooms are carved with the noise mask
func (p Params) NoiseEnabled() bool {
	return p.NoiseScale > 0
}

// Validate checks the parameters against each other and the grid bounds.
func (p Params) Validate(width, height int) error {
	var problems []string
	fail := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if width <= 0 || height <= 0 || width*height < 2 {
		fail("bounds %dx%d must hold at least two cells", width, height)
	}
	if p.RoomCount < 0 {
		fail("room_count %d is negative", p.RoomCount)
	}
	if p.MinRoomSize < 1 {
		fail("min_room_size %d must be at least 1", p.MinRoomSize)
	}
	if p.MinRoomSize > p.MaxRoomSize {
		fail("min_room_size %d exceeds max_room_size %d", p.MinRoomSize, p.MaxRoomSize)
	}
	if p.NoiseScale < 0 {
		fail("noise_scale %g is negative", p.NoiseScale)
	}
	if p.MinPlayerExitDist < 0 {
		fail("min_player_exit_dist %d is negative", p.MinPlayerExitDist)
	}

	unit := []struct {
		name string
		v    float64
	}{
		{"noise_threshold", p.NoiseThreshold},
		{"enemy_density", p.EnemyDensity},
		{"loot_density", p.LootDensity},
		{"coin_density", p.CoinDensity},
		{"health_density", p.HealthDensity},
		{"breakable_density", p.BreakableDensity},
		{"edge_wall_bias", p.EdgeWallBias},
	}
	for _, u := range unit {
		// NaN fails both comparisons, so test the accepted range directly
		if !(u.v >= 0 && u.v <= 1) {
			fail("%s %g outside [0,1]", u.name, u.v)
		}
	}

	switch p.Layout {
	case LayoutRooms, LayoutBSP:
	default:
		fail("unknown layout %q", p.Layout)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidParameters, strings.Join(problems, "; "))
	}
	return nil
}

// FromMap builds Params from a flat name/value record. Missing names keep
// their defaults; names the generator does not know are ignored.
func FromMap(values map[string]string) (Params, error) {
	p := Defaults()

	// sorted so the first reported error does not depend on map order
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := p.Set(key, values[key]); err != nil {
			return Params{}, err
		}
	}
	return p, nil
}

// Set assigns one named parameter from its string form.
// Unknown names are ignored.
func (p *Params) Set(name, value string) error {
	value = strings.TrimSpace(value)
	name = strings.ToLower(strings.TrimSpace(name))

	intField := func(dst *int) error {
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidParameters, name, value)
		}
		*dst = v
		return nil
	}
	floatField := func(dst *float64) error {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidParameters, name, value)
		}
		*dst = v
		return nil
	}

	switch name {
	case "seed":
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: seed=%q is not an integer", ErrInvalidParameters, value)
		}
		p.Seed = v
		return nil
	case "room_count":
		return intField(&p.RoomCount)
	case "min_room_size":
		return intField(&p.MinRoomSize)
	case "max_room_size":
		return intField(&p.MaxRoomSize)
	case "noise_scale":
		return floatField(&p.NoiseScale)
	case "noise_threshold":
		return floatField(&p.NoiseThreshold)
	case "enemy_density":
		return floatField(&p.EnemyDensity)
	case "loot_density":
		return floatField(&p.LootDensity)
	case "coin_density":
		return floatField(&p.CoinDensity)
	case "health_density":
		return floatField(&p.HealthDensity)
	case "breakable_density":
		return floatField(&p.BreakableDensity)
	case "edge_wall_bias":
		return floatField(&p.EdgeWallBias)
	case "min_player_exit_dist":
		return intField(&p.MinPlayerExitDist)
	case "layout":
		p.Layout = strings.ToLower(value)
		return nil
	}
	return nil
}

// ParseAssignment splits a "name=value" string
func ParseAssignment(s string) (name, value string, err error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return "", "", fmt.Errorf("%w: %q is not name=value", ErrInvalidParameters, s)
	}
	return strings.TrimSpace(name), strings.TrimSpace(value), nil
}
