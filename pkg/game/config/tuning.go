package config

// Scaling constants shared by the pipeline stages. Densities in Params are
// normalised to [0,1]; a density of 1 applies the full scale below.
const (
	// EnemyScale is the per-cell enemy probability at enemy_density 1.
	EnemyScale = 0.15
	// GruntWeight and ShooterWeight split enemies between Enemy and EnemyShooter.
	GruntWeight   = 4
	ShooterWeight = 1

	// LootScale is the per-cell loot probability at loot_density 1.
	LootScale = 0.1
	// CoinWeight and HealthWeight are the base loot ratios, multiplied by
	// coin_density and health_density respectively.
	CoinWeight   = 2
	HealthWeight = 1

	// BreakableScale caps the share of walls turned breakable at density 1.
	BreakableScale = 0.2

	// SelectorAttempts bounds the random spawn/exit search.
	SelectorAttempts = 500
	// SelectorTolerance is how far a sampled distance may miss the target.
	SelectorTolerance = 0
)

// Stage identifies a pipeline stage for seeding.
type Stage int

// Stages, in pipeline order.
const (
	StageCarve      Stage = 0
	StageSelect     Stage = 1
	StagePopulate   Stage = 2
	StageBreakables Stage = 3
)

// String returns the string representation of a stage
func (s Stage) String() string {
	switch s {
	case StageCarve:
		return "carve"
	case StageSelect:
		return "select"
	case StagePopulate:
		return "populate"
	case StageBreakables:
		return "breakables"
	default:
		return "unknown"
	}
}

// stageStride spaces the stage offsets so that runs with nearby base seeds,
// such as consecutive tower floors, never share a stage stream.
const stageStride int64 = 0x5DEECE66D

// StageSeed derives the seed a stage re-seeds its stream with: the base seed
// plus the stage's offset.
func StageSeed(base int64, s Stage) int64 {
	return base + int64(s)*stageStride
}
