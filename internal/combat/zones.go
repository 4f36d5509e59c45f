package combat

// Eleven body zones for hit location and wound tracking.

// WoundSeverity is a totally ordered wound category.
type WoundSeverity int

const (
	// SeverityNone is no wound at all.
	SeverityNone WoundSeverity = iota
	// SeverityScratch is cosmetic only.
	SeverityScratch
	// SeverityMinor is painful but functional.
	SeverityMinor
	// SeveritySerious is impaired function with bleeding.
	SeveritySerious
	// SeverityCritical is disabled with severe bleeding.
	SeverityCritical
	// SeverityDestroyed is a limb gone or organ destroyed.
	SeverityDestroyed
)

func (s WoundSeverity) String() string {
	switch s {
	case SeverityNone:
		return "none"
	case SeverityScratch:
		return "scratch"
	case SeverityMinor:
		return "minor"
	case SeveritySerious:
		return "serious"
	case SeverityCritical:
		return "critical"
	case SeverityDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// BodyZone is one of the 11 fixed hit locations.
type BodyZone int

const (
	ZoneHead BodyZone = iota
	ZoneNeck
	ZoneTorso
	ZoneArmLeft
	ZoneArmRight
	ZoneHandLeft
	ZoneHandRight
	ZoneLegLeft
	ZoneLegRight
	ZoneFootLeft
	ZoneFootRight
)

func (z BodyZone) String() string {
	switch z {
	case ZoneHead:
		return "head"
	case ZoneNeck:
		return "neck"
	case ZoneTorso:
		return "torso"
	case ZoneArmLeft:
		return "arm_left"
	case ZoneArmRight:
		return "arm_right"
	case ZoneHandLeft:
		return "hand_left"
	case ZoneHandRight:
		return "hand_right"
	case ZoneLegLeft:
		return "leg_left"
	case ZoneLegRight:
		return "leg_right"
	case ZoneFootLeft:
		return "foot_left"
	case ZoneFootRight:
		return "foot_right"
	default:
		return "unknown"
	}
}

// AllZones returns all 11 body zones.
func AllZones() []BodyZone {
	return []BodyZone{
		ZoneHead, ZoneNeck, ZoneTorso,
		ZoneArmLeft, ZoneArmRight, ZoneHandLeft, ZoneHandRight,
		ZoneLegLeft, ZoneLegRight, ZoneFootLeft, ZoneFootRight,
	}
}

// FatalityThreshold is the minimum severity at this zone considered
// potentially lethal.
func (z BodyZone) FatalityThreshold() WoundSeverity {
	switch z {
	case ZoneHead, ZoneNeck:
		return SeveritySerious
	case ZoneTorso:
		return SeverityCritical
	default:
		// Limbs don't kill directly.
		return SeverityDestroyed
	}
}

// HitWeightStanding is the relative likelihood of a strike landing on this
// zone against a standing target. The 11 weights sum to 1.0.
func (z BodyZone) HitWeightStanding() float32 {
	switch z {
	case ZoneTorso:
		return 0.35
	case ZoneArmLeft, ZoneArmRight:
		return 0.10
	case ZoneLegLeft, ZoneLegRight:
		return 0.12
	case ZoneHead:
		return 0.08
	case ZoneNeck:
		return 0.03
	case ZoneHandLeft, ZoneHandRight:
		return 0.03
	case ZoneFootLeft, ZoneFootRight:
		return 0.02
	default:
		return 0
	}
}

// IsLeg reports whether the zone is a leg or foot zone.
func (z BodyZone) IsLeg() bool {
	switch z {
	case ZoneLegLeft, ZoneLegRight, ZoneFootLeft, ZoneFootRight:
		return true
	}
	return false
}

// IsArm reports whether the zone is an arm zone.
func (z BodyZone) IsArm() bool {
	return z == ZoneArmLeft || z == ZoneArmRight
}

// IsHand reports whether the zone is a hand zone.
func (z BodyZone) IsHand() bool {
	return z == ZoneHandLeft || z == ZoneHandRight
}
