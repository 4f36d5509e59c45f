package combat

// Penetration: Edge vs Rigidity lookup. Categorical comparison only, no
// percentage modifiers anywhere.

// PenetrationResult is the outcome of an edge meeting armor rigidity.
type PenetrationResult int

const (
	// PenDeepCut is a severe wound with arterial risk.
	PenDeepCut PenetrationResult = iota
	// PenCut is a standard wound.
	PenCut
	// PenShallowCut is a minor wound.
	PenShallowCut
	// PenSnag means the weapon stuck without wounding.
	PenSnag
	// PenDeflect means the edge had no effect.
	PenDeflect
	// PenNoAttempt means a blunt weapon skipped straight to trauma.
	PenNoAttempt
)

func (p PenetrationResult) String() string {
	switch p {
	case PenDeepCut:
		return "deep_cut"
	case PenCut:
		return "cut"
	case PenShallowCut:
		return "shallow_cut"
	case PenSnag:
		return "snag"
	case PenDeflect:
		return "deflect"
	case PenNoAttempt:
		return "no_penetration_attempt"
	default:
		return "unknown"
	}
}

// ResolvePenetration resolves edge against rigidity. Total over the full
// 3x4 domain: every combination returns a defined variant. Blunt weapons
// never attempt penetration regardless of rigidity. A piercing weapon gets
// a one-category shift against mail and plate, never a numeric bonus.
func ResolvePenetration(edge Edge, rigidity Rigidity, hasPiercing bool) PenetrationResult {
	var base PenetrationResult
	switch {
	case edge == EdgeRazor && rigidity == RigidityCloth:
		base = PenDeepCut
	case edge == EdgeRazor && rigidity == RigidityLeather:
		base = PenCut
	case edge == EdgeRazor && rigidity == RigidityMail:
		base = PenSnag
	case edge == EdgeRazor && rigidity == RigidityPlate:
		base = PenDeflect
	case edge == EdgeSharp && rigidity == RigidityCloth:
		base = PenCut
	case edge == EdgeSharp && rigidity == RigidityLeather:
		base = PenShallowCut
	case edge == EdgeSharp && rigidity == RigidityMail:
		base = PenDeflect
	case edge == EdgeSharp && rigidity == RigidityPlate:
		base = PenDeflect
	default:
		// Blunt vs anything: no penetration attempt.
		base = PenNoAttempt
	}

	if !hasPiercing {
		return base
	}

	// Piercing: one step better against mail and plate only.
	switch {
	case edge == EdgeRazor && rigidity == RigidityMail && base == PenSnag:
		return PenShallowCut
	case edge == EdgeSharp && rigidity == RigidityMail && base == PenDeflect:
		return PenShallowCut
	case edge == EdgeRazor && rigidity == RigidityPlate && base == PenDeflect:
		return PenSnag
	case edge == EdgeSharp && rigidity == RigidityPlate && base == PenDeflect:
		return PenSnag
	}
	return base
}
