package combat

// CombatState is the per-entity component the world storage layer owns.
// The adapter reads it to build Combatant values and writes back wound,
// fatigue, and morale mutations.
type CombatState struct {
	Stance  Stance           `json:"stance"`
	Skill   CombatSkill      `json:"skill"`
	Morale  MoraleState      `json:"morale"`
	Weapon  WeaponProperties `json:"weapon"`
	Armor   ArmorProperties  `json:"armor"`
	Fatigue float32          `json:"fatigue"`
	Wounds  []Wound          `json:"wounds,omitempty"`
}

// NewCombatState returns an unarmed, unarmored combatant at rest.
func NewCombatState() CombatState {
	return CombatState{
		Stance: StanceNeutral,
		Morale: NewMoraleState(),
		Weapon: Fists(),
		Armor:  NoArmor(),
	}
}

// Combatant builds the transient exchange view of this entity.
func (c *CombatState) Combatant() Combatant {
	return Combatant{
		Weapon: c.Weapon,
		Armor:  c.Armor,
		Stance: c.Stance,
		Skill:  c.Skill,
	}
}

// CanFight reports whether the entity can still participate in combat.
func (c *CombatState) CanFight() bool {
	return c.Stance != StanceBroken && !c.IsIncapacitated()
}

// InCombat reports whether the entity is actively fighting.
func (c *CombatState) InCombat() bool {
	return c.Stance == StancePressing || c.Stance == StanceDefensive
}

// AddFatigue accumulates fatigue, capped at 1.
func (c *CombatState) AddFatigue(amount float32) {
	c.Fatigue += amount
	if c.Fatigue > 1 {
		c.Fatigue = 1
	}
}

// RecoverFatigue reduces fatigue, floored at 0.
func (c *CombatState) RecoverFatigue(amount float32) {
	c.Fatigue -= amount
	if c.Fatigue < 0 {
		c.Fatigue = 0
	}
}

// severityPoints weighs accumulated wounds for the incapacitation check.
func severityPoints(s WoundSeverity) int {
	switch s {
	case SeverityScratch:
		return 1
	case SeverityMinor:
		return 2
	case SeveritySerious:
		return 4
	case SeverityCritical, SeverityDestroyed:
		return 10
	default:
		return 0
	}
}

// IsIncapacitated reports whether the entity can no longer fight: any
// single Critical wound, or 10+ accumulated severity points (Scratch=1,
// Minor=2, Serious=4).
func (c *CombatState) IsIncapacitated() bool {
	total := 0
	for _, w := range c.Wounds {
		if w.Severity >= SeverityCritical {
			return true
		}
		total += severityPoints(w.Severity)
	}
	return total >= 10
}

// IsDead reports whether any wound is past its zone's survivable limit:
// a Destroyed wound anywhere, or Critical+ at head, neck, or torso.
func (c *CombatState) IsDead() bool {
	for _, w := range c.Wounds {
		if w.Severity == SeverityDestroyed {
			return true
		}
		if w.Severity >= SeverityCritical {
			switch w.Zone {
			case ZoneHead, ZoneNeck, ZoneTorso:
				return true
			}
		}
	}
	return false
}
