package combat

// Skill determines WHICH actions are available, not bonuses. No percentage
// modifiers, no damage multipliers, no hit chance adjustments.

// SkillLevel is an ordinal capability tier.
type SkillLevel int

const (
	// SkillNovice has high variance, slow transitions, poor reads.
	SkillNovice SkillLevel = iota
	// SkillTrained has moderate variance and decent transitions.
	SkillTrained
	// SkillVeteran has low variance, good transitions, finds gaps.
	SkillVeteran
	// SkillMaster has minimal variance, instant transitions, exploits openings.
	SkillMaster
)

func (s SkillLevel) String() string {
	switch s {
	case SkillNovice:
		return "novice"
	case SkillTrained:
		return "trained"
	case SkillVeteran:
		return "veteran"
	case SkillMaster:
		return "master"
	default:
		return "unknown"
	}
}

// CanRiposte reports whether a counterattack after a successful defense is
// available.
func (s SkillLevel) CanRiposte() bool {
	return s >= SkillVeteran
}

// CanTargetZone reports whether a specific body zone can be targeted.
func (s SkillLevel) CanTargetZone() bool {
	return s >= SkillTrained
}

// CanFeint reports whether a fake attack to create an opening is available.
func (s SkillLevel) CanFeint() bool {
	return s == SkillMaster
}

// CanDisarm reports whether disarming an opponent is available.
func (s SkillLevel) CanDisarm() bool {
	return s >= SkillVeteran
}

// CombatSkill is the complete skill profile. Deliberately carries no
// numeric fields: skill gates capabilities, it does not add numbers.
type CombatSkill struct {
	Level SkillLevel `json:"level"`
}

// SkillFromEncodingDepth derives a skill level from an opaque mastery depth
// supplied by an external skill system (0..1).
func SkillFromEncodingDepth(depth float32) CombatSkill {
	switch {
	case depth >= 0.85:
		return CombatSkill{Level: SkillMaster}
	case depth >= 0.6:
		return CombatSkill{Level: SkillVeteran}
	case depth >= 0.3:
		return CombatSkill{Level: SkillTrained}
	default:
		return CombatSkill{Level: SkillNovice}
	}
}
