package combat

import "testing"

func testSwordsman() *Combatant {
	return &Combatant{
		Weapon: Sword(),
		Armor:  NoArmor(),
		Stance: StancePressing,
		Skill:  CombatSkill{Level: SkillTrained},
	}
}

func testSpearman() *Combatant {
	return &Combatant{
		Weapon: Spear(),
		Armor:  NoArmor(),
		Stance: StancePressing,
		Skill:  CombatSkill{Level: SkillTrained},
	}
}

func testPlateKnight() *Combatant {
	return &Combatant{
		Weapon: Sword(),
		Armor:  PlateArmor(),
		Stance: StanceNeutral,
		Skill:  CombatSkill{Level: SkillVeteran},
	}
}

// TestFreeHitAgainstRecovering ensures a vulnerable defender takes one hit
// and cannot respond.
func TestFreeHitAgainstRecovering(t *testing.T) {
	attacker := testSwordsman()
	defender := testSwordsman()
	defender.Stance = StanceRecovering

	result := ResolveExchange(attacker, defender)
	if !result.DefenderHit {
		t.Fatal("defender must be hit")
	}
	if result.AttackerHit {
		t.Fatal("recovering defender must not counter")
	}
	if !result.AttackerStruckFirst {
		t.Fatal("free hit must report attacker first")
	}
	if result.DefenderWound == nil || result.AttackerWound != nil {
		t.Fatalf("wounds wrong: %+v", result)
	}
}

// TestReachOrdersStrikes ensures a long-reach attacker reports striking
// first against a short-reach defender.
func TestReachOrdersStrikes(t *testing.T) {
	result := ResolveExchange(testSpearman(), testSwordsman())
	if !result.AttackerStruckFirst {
		t.Fatal("spear must strike before sword")
	}

	// Reversed: the short-reach attacker reports second but still lands.
	result = ResolveExchange(testSwordsman(), testSpearman())
	if result.AttackerStruckFirst {
		t.Fatal("sword must not outreach spear")
	}
	if !result.DefenderHit {
		t.Fatal("reach orders reporting, it never prevents the hit")
	}
}

// TestBothSidesLandOnEqualReach ensures simultaneous resolution when both
// combatants can attack.
func TestBothSidesLandOnEqualReach(t *testing.T) {
	attacker := testSwordsman()
	defender := testSwordsman()

	result := ResolveExchange(attacker, defender)
	if !result.DefenderHit || !result.AttackerHit {
		t.Fatalf("both sides must land: %+v", result)
	}
	if !result.AttackerStruckFirst {
		t.Fatal("equal reach resolves as attacker first")
	}
}

// TestNeutralDefenderDoesNotCounter ensures only stances that can attack
// deliver the counter-hit.
func TestNeutralDefenderDoesNotCounter(t *testing.T) {
	defender := testSwordsman()
	defender.Stance = StanceNeutral

	result := ResolveExchange(testSwordsman(), defender)
	if !result.DefenderHit {
		t.Fatal("defender must be hit")
	}
	if result.AttackerHit {
		t.Fatal("neutral defender cannot counter")
	}

	defender.Stance = StanceDefensive
	result = ResolveExchange(testSwordsman(), defender)
	if !result.AttackerHit {
		t.Fatal("defensive defender must counter")
	}
}

// TestSwordVsPlateNoWound ensures sharp vs plate with medium mass vs heavy
// padding leaves no wound at all.
func TestSwordVsPlateNoWound(t *testing.T) {
	result := ResolveExchange(testSwordsman(), testPlateKnight())
	if result.DefenderWound == nil {
		t.Fatal("hit still resolves a wound record")
	}
	if got := result.DefenderWound.Severity; got != SeverityNone {
		t.Fatalf("severity = %v, want none", got)
	}
}

// TestZoneSelectionBySkill ensures masters target the head and everyone
// else works center mass, deterministically.
func TestZoneSelectionBySkill(t *testing.T) {
	if got := SelectHitZone(SkillMaster); got != ZoneHead {
		t.Fatalf("master zone = %v, want head", got)
	}
	for _, lvl := range []SkillLevel{SkillNovice, SkillTrained, SkillVeteran} {
		if got := SelectHitZone(lvl); got != ZoneTorso {
			t.Fatalf("%v zone = %v, want torso", lvl, got)
		}
	}
}

// TestExchangeDeterministic ensures identical inputs always produce
// identical results.
func TestExchangeDeterministic(t *testing.T) {
	first := ResolveExchange(testSpearman(), testPlateKnight())
	for i := 0; i < 100; i++ {
		again := ResolveExchange(testSpearman(), testPlateKnight())
		if again.DefenderHit != first.DefenderHit ||
			again.AttackerHit != first.AttackerHit ||
			again.AttackerStruckFirst != first.AttackerStruckFirst ||
			*again.DefenderWound != *first.DefenderWound {
			t.Fatalf("run %d diverged: %+v vs %+v", i, again, first)
		}
	}
}

// TestExchangeDoesNotMutateInputs ensures the resolver is pure.
func TestExchangeDoesNotMutateInputs(t *testing.T) {
	attacker := testSpearman()
	defender := testPlateKnight()
	aBefore, dBefore := *attacker, *defender

	ResolveExchange(attacker, defender)
	if attacker.Stance != aBefore.Stance || attacker.Weapon.Edge != aBefore.Weapon.Edge {
		t.Fatal("attacker mutated")
	}
	if defender.Stance != dBefore.Stance || defender.Armor != dBefore.Armor {
		t.Fatal("defender mutated")
	}
}
