package generator

import "math"

// noiseMask returns a predicate that keeps a cell when the value noise at
// its scaled, jittered position reaches threshold.
func noiseMask(scale, threshold, jx, jz float64) func(x, z int) bool {
	return func(x, z int) bool {
		return valueNoise(float64(x)*scale+jx, float64(z)*scale+jz) >= threshold
	}
}

// valueNoise is smooth 2D lattice noise in [0,1].
func valueNoise(x, z float64) float64 {
	x0, z0 := math.Floor(x), math.Floor(z)
	tx, tz := smoothstep(x-x0), smoothstep(z-z0)
	ix, iz := int64(x0), int64(z0)

	top := lerp(latticeValue(ix, iz), latticeValue(ix+1, iz), tx)
	bottom := lerp(latticeValue(ix, iz+1), latticeValue(ix+1, iz+1), tx)
	return lerp(top, bottom, tz)
}

// latticeValue hashes an integer lattice point to [0,1].
func latticeValue(ix, iz int64) float64 {
	h := uint64(ix)*0x9E3779B97F4A7C15 ^ uint64(iz)*0xC2B2AE3D27D4EB4F
	h ^= h >> 31
	h *= 0xBF58476D1CE4E5B9
	h ^= h >> 29
	return float64(h>>11) / float64(1<<53)
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
