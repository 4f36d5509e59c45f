package combat

// Trauma: Mass vs Padding lookup. Categorical comparison only.

// TraumaResult is the outcome of weapon mass meeting armor padding.
type TraumaResult int

const (
	// TraumaNegligible has no mechanical effect.
	TraumaNegligible TraumaResult = iota
	// TraumaFatigue is a stamina cost that accumulates.
	TraumaFatigue
	// TraumaStagger is a brief vulnerability window.
	TraumaStagger
	// TraumaKnockdownBruise puts the target on the ground with internal bruising.
	TraumaKnockdownBruise
	// TraumaKnockdownCrush puts the target on the ground with broken bones.
	TraumaKnockdownCrush
)

func (t TraumaResult) String() string {
	switch t {
	case TraumaNegligible:
		return "negligible"
	case TraumaFatigue:
		return "fatigue"
	case TraumaStagger:
		return "stagger"
	case TraumaKnockdownBruise:
		return "knockdown_bruise"
	case TraumaKnockdownCrush:
		return "knockdown_crush"
	default:
		return "unknown"
	}
}

// IsKnockdown reports whether this trauma puts the target on the ground.
func (t TraumaResult) IsKnockdown() bool {
	return t == TraumaKnockdownBruise || t == TraumaKnockdownCrush
}

// ResolveTrauma resolves mass against padding. Total over the full 4x3
// domain. The table is authoritative: more mass never hurts less, more
// padding never hurts more.
func ResolveTrauma(mass Mass, padding Padding) TraumaResult {
	switch mass {
	case MassLight:
		// Light weapons: minimal trauma regardless of padding.
		return TraumaNegligible
	case MassMedium:
		switch padding {
		case PaddingNone:
			return TraumaStagger
		case PaddingLight:
			return TraumaFatigue
		default:
			return TraumaNegligible
		}
	case MassHeavy:
		// Padding helps but doesn't eliminate.
		switch padding {
		case PaddingNone:
			return TraumaKnockdownBruise
		case PaddingLight:
			return TraumaStagger
		default:
			return TraumaFatigue
		}
	default:
		// Massive (cavalry charge, siege): padding barely matters.
		switch padding {
		case PaddingNone:
			return TraumaKnockdownCrush
		case PaddingLight:
			return TraumaKnockdownBruise
		default:
			return TraumaStagger
		}
	}
}
