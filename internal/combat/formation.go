package combat

// Formation combat. At unit scale individual exchanges become statistical:
// property matchups drive pressure and cohesion directly, without ever
// calling the exchange resolver.

// EntityID addresses a combatant owned by the world storage layer.
type EntityID uint64

// FormationState is the owned per-formation record. Mutate only through
// the methods; broken count only grows within a resolution pass.
type FormationState struct {
	// Entities in this formation.
	Entities []EntityID `json:"entities"`
	// FrontLine holds the entities engaging in combat.
	FrontLine []EntityID `json:"front_line"`
	// Pressure runs -1 (losing) to +1 (winning).
	Pressure float32 `json:"pressure"`
	// Cohesion runs 0 (scattered) to 1 (tight formation).
	Cohesion float32 `json:"cohesion"`
	// Fatigue runs 0 (fresh) to 1 (exhausted).
	Fatigue float32 `json:"fatigue"`
	// Stress is formation-level stress, distinct from per-entity morale.
	Stress float32 `json:"stress"`
	// BrokenCount counts routed entities.
	BrokenCount int `json:"broken_count"`
}

// NewFormation creates a formation with the leading third as front line.
func NewFormation(entities []EntityID) *FormationState {
	front := make([]EntityID, 0, len(entities)/3)
	front = append(front, entities[:len(entities)/3]...)
	return &FormationState{
		Entities:  entities,
		FrontLine: front,
		Cohesion:  1.0,
	}
}

// ApplyPressureDelta shifts pressure, clamped to [-1, 1] regardless of the
// input magnitude.
func (f *FormationState) ApplyPressureDelta(delta float32) {
	f.Pressure += delta
	if f.Pressure > 1 {
		f.Pressure = 1
	}
	if f.Pressure < -1 {
		f.Pressure = -1
	}
}

// AddFatigue accumulates fatigue, clamped to [0, 1].
func (f *FormationState) AddFatigue(amount float32) {
	f.Fatigue += amount
	if f.Fatigue > 1 {
		f.Fatigue = 1
	}
	if f.Fatigue < 0 {
		f.Fatigue = 0
	}
}

// LoseCohesion reduces cohesion by a flat amount, floored at zero.
func (f *FormationState) LoseCohesion(amount float32) {
	f.Cohesion -= amount
	if f.Cohesion < 0 {
		f.Cohesion = 0
	}
}

// EffectiveStrength is the entity count minus routed entities.
func (f *FormationState) EffectiveStrength() int {
	n := len(f.Entities) - f.BrokenCount
	if n < 0 {
		return 0
	}
	return n
}

// IsBroken reports whether the routed fraction reached the break
// threshold. An empty formation is vacuously broken.
func (f *FormationState) IsBroken() bool {
	if len(f.Entities) == 0 {
		return true
	}
	ratio := float32(f.BrokenCount) / float32(len(f.Entities))
	return ratio >= FormationBreakThreshold
}

// PressureCategory buckets pressure for display. Never used in
// calculations.
type PressureCategory int

const (
	PressureCollapsing PressureCategory = iota
	PressureLosing
	PressureNeutral
	PressurePushing
	PressureOverwhelming
)

func (p PressureCategory) String() string {
	switch p {
	case PressureCollapsing:
		return "collapsing"
	case PressureLosing:
		return "losing"
	case PressureNeutral:
		return "neutral"
	case PressurePushing:
		return "pushing"
	case PressureOverwhelming:
		return "overwhelming"
	default:
		return "unknown"
	}
}

// PressureCategory buckets the current pressure for display.
func (f *FormationState) PressureCategory() PressureCategory {
	switch {
	case f.Pressure <= -0.7:
		return PressureCollapsing
	case f.Pressure <= -0.3:
		return PressureLosing
	case f.Pressure <= 0.3:
		return PressureNeutral
	case f.Pressure <= 0.7:
		return PressurePushing
	default:
		return PressureOverwhelming
	}
}

// ShockType is a formation-scale shock attack.
type ShockType int

const (
	ShockCavalryCharge ShockType = iota
	ShockFlankAttack
	ShockRearCharge
	ShockAmbush
)

func (s ShockType) String() string {
	switch s {
	case ShockCavalryCharge:
		return "cavalry_charge"
	case ShockFlankAttack:
		return "flank_attack"
	case ShockRearCharge:
		return "rear_charge"
	case ShockAmbush:
		return "ambush"
	default:
		return "unknown"
	}
}

// StressSpike is the fixed additive spike this shock applies to a
// formation's stress.
func (s ShockType) StressSpike() float32 {
	switch s {
	case ShockCavalryCharge:
		return 0.30
	case ShockFlankAttack:
		return 0.20
	case ShockRearCharge:
		return 0.40
	case ShockAmbush:
		return 0.35
	default:
		return 0
	}
}

// ApplyShock adds the shock's stress spike to the whole formation.
func (f *FormationState) ApplyShock(shock ShockType) {
	f.Stress += shock.StressSpike()
}
