package combat

// Stress accumulates; past the threshold the entity breaks. The catalog is
// symmetric: what stresses an attacker stresses a defender, there is no
// attacker/defender asymmetry anywhere in the model.

// StressSource is a named cause of morale stress with a fixed additive
// magnitude. Closed catalog of 17 variants.
type StressSource int

const (
	// Combat stress: small, frequent.
	StressTakingCasualties StressSource = iota
	StressTakingFire
	StressMeleeViolence
	StressWoundReceived
	StressNearMiss

	// Shock stress: large, rare spikes.
	StressOfficerKilled
	StressFlankAttack
	StressAmbushSprung
	StressCavalryCharge
	StressTerrifyingEnemy

	// Pressure stress: tiny, per tick while the condition holds.
	StressOutnumbered
	StressSurrounded
	StressNoResponse
	StressOverwatchFire
	StressProlongedCombat

	// Social stress.
	StressAlliesBreaking
	StressAloneExposed
)

func (s StressSource) String() string {
	switch s {
	case StressTakingCasualties:
		return "taking_casualties"
	case StressTakingFire:
		return "taking_fire"
	case StressMeleeViolence:
		return "melee_violence"
	case StressWoundReceived:
		return "wound_received"
	case StressNearMiss:
		return "near_miss"
	case StressOfficerKilled:
		return "officer_killed"
	case StressFlankAttack:
		return "flank_attack"
	case StressAmbushSprung:
		return "ambush_sprung"
	case StressCavalryCharge:
		return "cavalry_charge"
	case StressTerrifyingEnemy:
		return "terrifying_enemy"
	case StressOutnumbered:
		return "outnumbered"
	case StressSurrounded:
		return "surrounded"
	case StressNoResponse:
		return "no_response"
	case StressOverwatchFire:
		return "overwatch_fire"
	case StressProlongedCombat:
		return "prolonged_combat"
	case StressAlliesBreaking:
		return "allies_breaking"
	case StressAloneExposed:
		return "alone_exposed"
	default:
		return "unknown"
	}
}

// AllStressSources lists the full catalog.
func AllStressSources() []StressSource {
	return []StressSource{
		StressTakingCasualties, StressTakingFire, StressMeleeViolence,
		StressWoundReceived, StressNearMiss,
		StressOfficerKilled, StressFlankAttack, StressAmbushSprung,
		StressCavalryCharge, StressTerrifyingEnemy,
		StressOutnumbered, StressSurrounded, StressNoResponse,
		StressOverwatchFire, StressProlongedCombat,
		StressAlliesBreaking, StressAloneExposed,
	}
}

// BaseStress is the fixed additive magnitude for this source.
func (s StressSource) BaseStress() float32 {
	switch s {
	case StressTakingCasualties:
		return 0.05
	case StressTakingFire:
		return 0.02
	case StressMeleeViolence:
		return 0.01
	case StressWoundReceived:
		return 0.15
	case StressNearMiss:
		return 0.03
	case StressOfficerKilled:
		return 0.30
	case StressFlankAttack:
		return 0.20
	case StressAmbushSprung:
		return 0.25
	case StressCavalryCharge:
		return 0.20
	case StressTerrifyingEnemy:
		return 0.15
	case StressOutnumbered:
		return 0.01
	case StressSurrounded:
		return 0.03
	case StressNoResponse:
		return 0.02
	case StressOverwatchFire:
		return 0.02
	case StressProlongedCombat:
		return 0.005
	case StressAlliesBreaking:
		return 0.10
	case StressAloneExposed:
		return 0.05
	default:
		return 0
	}
}

// BreakResult classifies how close an entity is to routing.
type BreakResult int

const (
	// BreakHolding is steady.
	BreakHolding BreakResult = iota
	// BreakShaken is rattled but not broken.
	BreakShaken
	// BreakBreaking means the entity will flee.
	BreakBreaking
)

func (b BreakResult) String() string {
	switch b {
	case BreakHolding:
		return "holding"
	case BreakShaken:
		return "shaken"
	case BreakBreaking:
		return "breaking"
	default:
		return "unknown"
	}
}

// MoraleState is the per-entity stress accumulator. Mutate only through
// ApplyStress and DecayStress.
type MoraleState struct {
	// CurrentStress is accumulated stress, 0 to unlimited. It can exceed
	// the threshold arbitrarily; the excess classifies break severity.
	CurrentStress float32 `json:"current_stress"`
	// BaseThreshold is the personal breaking point.
	BaseThreshold float32 `json:"base_threshold"`
}

// NewMoraleState returns a fresh accumulator at the base threshold.
func NewMoraleState() MoraleState {
	return MoraleState{BaseThreshold: BaseStressThreshold}
}

// ApplyStress adds the source's base stress unconditionally. No cap.
func (m *MoraleState) ApplyStress(source StressSource) {
	m.CurrentStress += source.BaseStress()
}

// DecayStress subtracts a flat amount, floored at zero.
func (m *MoraleState) DecayStress(rate float32) {
	m.CurrentStress -= rate
	if m.CurrentStress < 0 {
		m.CurrentStress = 0
	}
}

// CheckBreak classifies the current stress against fixed fractions of the
// base threshold.
func (m *MoraleState) CheckBreak() BreakResult {
	switch {
	case m.CurrentStress > m.BaseThreshold:
		return BreakBreaking
	case m.CurrentStress > m.BaseThreshold*ShakenThresholdRatio:
		return BreakShaken
	default:
		return BreakHolding
	}
}
