package combat

// Wound composition: penetration and trauma resolve on independent axes
// and the wound takes the worse of the two, never the sum.

// Wound records one hit on a specific body zone. Created once per hit and
// never mutated afterwards.
type Wound struct {
	Zone           BodyZone      `json:"zone"`
	Severity       WoundSeverity `json:"severity"`
	Bleeding       bool          `json:"bleeding"`
	MobilityImpact bool          `json:"mobility_impact"`
	GripImpact     bool          `json:"grip_impact"`
}

// NoWound is a zero-effect wound at the given zone.
func NoWound(zone BodyZone) Wound {
	return Wound{Zone: zone, Severity: SeverityNone}
}

// CombineResults merges a penetration result and a trauma result into a
// single wound at a zone. Severity is the maximum of the two derived
// severities: a deflected cut plus a knockdown is exactly as bad as the
// knockdown alone. Pure and total.
func CombineResults(pen PenetrationResult, trauma TraumaResult, zone BodyZone) Wound {
	var penSeverity WoundSeverity
	switch pen {
	case PenDeepCut:
		penSeverity = SeverityCritical
	case PenCut:
		penSeverity = SeveritySerious
	case PenShallowCut:
		penSeverity = SeverityMinor
	default:
		// Snag, deflect, no attempt: the edge did nothing.
		penSeverity = SeverityNone
	}

	var traumaSeverity WoundSeverity
	switch trauma {
	case TraumaKnockdownCrush:
		traumaSeverity = SeverityCritical
	case TraumaKnockdownBruise:
		traumaSeverity = SeveritySerious
	case TraumaStagger:
		traumaSeverity = SeverityScratch
	default:
		// Fatigue and negligible leave no wound.
		traumaSeverity = SeverityNone
	}

	severity := penSeverity
	if traumaSeverity > severity {
		severity = traumaSeverity
	}

	return Wound{
		Zone:     zone,
		Severity: severity,
		// Bleeding only from cuts; trauma never bleeds.
		Bleeding:       pen == PenDeepCut || pen == PenCut,
		MobilityImpact: zone.IsLeg() || trauma.IsKnockdown(),
		GripImpact:     zone.IsArm() || zone.IsHand(),
	}
}
