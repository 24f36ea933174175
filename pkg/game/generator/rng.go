package generator

import (
	"math/rand"

	"towergen/pkg/game/config"
)

// newStream returns the random stream for one stage of a run. Each stage
// reseeds from the base seed so changing one stage's draws leaves the
// others' output untouched.
func newStream(seed int64, stage config.Stage) *rand.Rand {
	return rand.New(rand.NewSource(config.StageSeed(seed, stage)))
}
