package combat

// Tunable values in one place. All of these are additive, never
// multiplicative: nothing in this package multiplies a stat by a modifier.

// Time constants.
const (
	TickDurationMS      = 100
	RecoveryTicks       = 10
	ExhaustionThreshold = 0.9
)

// Fatigue constants.
const (
	FatiguePerAttack    = 0.05
	FatiguePerDefend    = 0.03
	FatiguePerMeleeTick = 0.01
	FatigueRecoveryRate = 0.02
)

// Stress constants.
const (
	BaseStressThreshold  = 1.0
	StressDecayRate      = 0.001
	ShakenThresholdRatio = 0.8
)

// Formation constants.
const (
	FormationBreakThreshold = 0.4
	CohesionLossPerCasualty = 0.02
	PressureDecayRate       = 0.01
)
