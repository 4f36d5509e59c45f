package combat

import (
	"math"
	"testing"
)

// TestNewCombatState ensures the zero loadout is an unarmed neutral
// combatant with fresh morale.
func TestNewCombatState(t *testing.T) {
	s := NewCombatState()
	if s.Stance != StanceNeutral {
		t.Fatalf("stance = %v, want neutral", s.Stance)
	}
	if s.Morale.CurrentStress != 0 {
		t.Fatalf("stress = %v, want 0", s.Morale.CurrentStress)
	}
	if s.Weapon.Edge != EdgeBlunt || s.Weapon.Reach != ReachGrapple {
		t.Fatalf("default weapon = %v, want fists", s.Weapon)
	}
}

// TestCanFight ensures broken stance and incapacitation both end the
// fight.
func TestCanFight(t *testing.T) {
	s := NewCombatState()
	if !s.CanFight() {
		t.Fatal("healthy combatant must fight")
	}
	s.Stance = StanceBroken
	if s.CanFight() {
		t.Fatal("broken combatant must not fight")
	}

	s = NewCombatState()
	s.Wounds = append(s.Wounds, Wound{Zone: ZoneTorso, Severity: SeverityCritical})
	if s.CanFight() {
		t.Fatal("critically wounded combatant must not fight")
	}
}

// TestFatigueClamped ensures additive fatigue clamps to [0, 1].
func TestFatigueClamped(t *testing.T) {
	s := NewCombatState()
	s.AddFatigue(0.5)
	if s.Fatigue != 0.5 {
		t.Fatalf("fatigue = %v, want 0.5", s.Fatigue)
	}
	s.AddFatigue(0.7)
	if s.Fatigue != 1.0 {
		t.Fatalf("fatigue = %v, want clamped to 1.0", s.Fatigue)
	}
	s.RecoverFatigue(0.3)
	if math.Abs(float64(s.Fatigue)-0.7) > 0.001 {
		t.Fatalf("fatigue = %v, want 0.7", s.Fatigue)
	}
	s.RecoverFatigue(5)
	if s.Fatigue != 0 {
		t.Fatalf("fatigue = %v, want floored at 0", s.Fatigue)
	}
}

// TestIncapacitationAccumulates ensures wound points add up: five minor
// wounds incapacitate, four do not.
func TestIncapacitationAccumulates(t *testing.T) {
	s := NewCombatState()
	for i := 0; i < 4; i++ {
		s.Wounds = append(s.Wounds, Wound{Zone: ZoneArmLeft, Severity: SeverityMinor})
	}
	if s.IsIncapacitated() {
		t.Fatal("4 minor wounds (8 points) must not incapacitate")
	}
	s.Wounds = append(s.Wounds, Wound{Zone: ZoneArmRight, Severity: SeverityMinor})
	if !s.IsIncapacitated() {
		t.Fatal("5 minor wounds (10 points) must incapacitate")
	}
}

// TestIsDead ensures death requires a destroyed wound anywhere or a
// critical at a vital zone.
func TestIsDead(t *testing.T) {
	s := NewCombatState()
	s.Wounds = []Wound{{Zone: ZoneLegLeft, Severity: SeverityCritical}}
	if s.IsDead() {
		t.Fatal("critical leg wound incapacitates but does not kill")
	}
	s.Wounds = []Wound{{Zone: ZoneHead, Severity: SeverityCritical}}
	if !s.IsDead() {
		t.Fatal("critical head wound kills")
	}
	s.Wounds = []Wound{{Zone: ZoneFootRight, Severity: SeverityDestroyed}}
	if !s.IsDead() {
		t.Fatal("destroyed wound kills anywhere")
	}
}

// TestInCombat ensures only pressing and defensive count as fighting.
func TestInCombat(t *testing.T) {
	s := NewCombatState()
	if s.InCombat() {
		t.Fatal("neutral is not in combat")
	}
	s.Stance = StancePressing
	if !s.InCombat() {
		t.Fatal("pressing is in combat")
	}
	s.Stance = StanceDefensive
	if !s.InCombat() {
		t.Fatal("defensive is in combat")
	}
}
