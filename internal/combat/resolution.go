package combat

// Exchange resolution. An exchange is one resolved interaction between an
// attacker and a defender, producing up to two wounds. Pure and total: no
// randomness, no I/O, no mutation of the inputs.

// Combatant is the transient view of one side of an exchange, rebuilt from
// the owning entity's components on every resolution call.
type Combatant struct {
	Weapon WeaponProperties `json:"weapon"`
	Armor  ArmorProperties  `json:"armor"`
	Stance Stance           `json:"stance"`
	Skill  CombatSkill      `json:"skill"`
}

// ExchangeResult reports the outcome of a single exchange.
type ExchangeResult struct {
	// DefenderHit reports whether the attacker landed on the defender.
	DefenderHit bool `json:"defender_hit"`
	// AttackerHit reports whether the defender's counter landed.
	AttackerHit bool `json:"attacker_hit"`
	// AttackerStruckFirst orders the reporting when both sides land.
	AttackerStruckFirst bool `json:"attacker_struck_first"`
	// DefenderWound is the wound on the defender, if any.
	DefenderWound *Wound `json:"defender_wound,omitempty"`
	// AttackerWound is the wound on the attacker, if any.
	AttackerWound *Wound `json:"attacker_wound,omitempty"`
}

// SelectHitZone picks a target zone deterministically from skill. Masters
// go for the head; everyone else works center mass. Not random.
func SelectHitZone(skill SkillLevel) BodyZone {
	if skill == SkillMaster {
		return ZoneHead
	}
	return ZoneTorso
}

// ResolveHit runs one strike through penetration, trauma, and wound
// composition using the striking side's weapon and the receiving side's
// armor.
func ResolveHit(weapon WeaponProperties, armor ArmorProperties, zone BodyZone) Wound {
	pen := ResolvePenetration(weapon.Edge, armor.Rigidity, weapon.HasSpecial(SpecialPiercing))
	trauma := ResolveTrauma(weapon.Mass, armor.Padding)
	return CombineResults(pen, trauma, zone)
}

// ResolveExchange resolves one exchange between attacker and defender.
//
// The caller is responsible for only initiating exchanges from an eligible
// attacker stance. The function is total either way: a Broken attacker
// still yields a well-typed result, it is just not meaningful.
//
// If the defender is vulnerable the attacker gets a free hit. Otherwise
// both hits resolve in the same call; greater reach only orders the
// reporting, it never prevents the other side from landing. The defender's
// counter resolves only from a stance that can attack.
func ResolveExchange(attacker, defender *Combatant) ExchangeResult {
	if defender.Stance.Vulnerable() {
		zone := SelectHitZone(attacker.Skill.Level)
		wound := ResolveHit(attacker.Weapon, defender.Armor, zone)
		return ExchangeResult{
			DefenderHit:         true,
			AttackerHit:         false,
			AttackerStruckFirst: true,
			DefenderWound:       &wound,
		}
	}

	// Reach orders strike reporting; equal reach is simultaneous.
	attackerStruckFirst := attacker.Weapon.Reach >= defender.Weapon.Reach

	attackerZone := SelectHitZone(attacker.Skill.Level)
	defenderWound := ResolveHit(attacker.Weapon, defender.Armor, attackerZone)

	result := ExchangeResult{
		DefenderHit:         true,
		AttackerStruckFirst: attackerStruckFirst,
		DefenderWound:       &defenderWound,
	}

	if defender.Stance.CanAttack() {
		defenderZone := SelectHitZone(defender.Skill.Level)
		attackerWound := ResolveHit(defender.Weapon, attacker.Armor, defenderZone)
		result.AttackerHit = true
		result.AttackerWound = &attackerWound
	}
	return result
}
