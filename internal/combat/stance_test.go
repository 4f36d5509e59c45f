package combat

import "testing"

// TestStancePredicates ensures the attack/defend/vulnerable gates match
// each stance.
func TestStancePredicates(t *testing.T) {
	if !StancePressing.CanAttack() || !StanceDefensive.CanAttack() {
		t.Fatal("pressing and defensive must be able to attack")
	}
	if StanceNeutral.CanAttack() || StanceRecovering.CanAttack() || StanceBroken.CanAttack() {
		t.Fatal("only pressing and defensive can attack")
	}
	if !StanceNeutral.CanDefend() || !StanceDefensive.CanDefend() {
		t.Fatal("neutral and defensive must be able to defend")
	}
	if !StanceRecovering.Vulnerable() || !StanceBroken.Vulnerable() {
		t.Fatal("recovering and broken must be vulnerable")
	}
	if StancePressing.Vulnerable() || StanceNeutral.Vulnerable() {
		t.Fatal("active stances are not vulnerable")
	}
}

// TestStanceTransitions walks the transition table.
func TestStanceTransitions(t *testing.T) {
	tcs := []struct {
		from    Stance
		trigger TransitionTrigger
		want    Stance
	}{
		{StanceNeutral, TriggerInitiateAttack, StancePressing},
		{StanceNeutral, TriggerRaiseGuard, StanceDefensive},
		{StanceDefensive, TriggerDropGuard, StanceNeutral},
		{StancePressing, TriggerAttackCompleted, StanceNeutral},
		{StancePressing, TriggerAttackBlocked, StanceNeutral},
		{StancePressing, TriggerAttackMissed, StanceRecovering},
		{StanceDefensive, TriggerDefenseSucceeded, StanceNeutral},
		{StanceDefensive, TriggerDefenseFailed, StanceRecovering},
		{StanceNeutral, TriggerTookHit, StanceRecovering},
		{StancePressing, TriggerStaggered, StanceRecovering},
		{StanceDefensive, TriggerKnockdown, StanceRecovering},
		{StancePressing, TriggerExhausted, StanceRecovering},
		{StanceRecovering, TriggerRecovered, StanceNeutral},
		{StancePressing, TriggerCriticalWoundHead, StanceBroken},
		{StanceNeutral, TriggerCriticalWoundTorso, StanceBroken},
		{StanceDefensive, TriggerMoraleBreak, StanceBroken},
		{StanceRecovering, TriggerWoundThresholdExceeded, StanceBroken},
	}
	for _, tc := range tcs {
		if got := ApplyTrigger(tc.from, tc.trigger); got != tc.want {
			t.Fatalf("ApplyTrigger(%v, %d) = %v, want %v", tc.from, tc.trigger, got, tc.want)
		}
	}
}

// TestUnmatchedTriggerKeepsStance ensures pairs without a rule leave the
// stance unchanged.
func TestUnmatchedTriggerKeepsStance(t *testing.T) {
	if got := ApplyTrigger(StancePressing, TriggerInitiateAttack); got != StancePressing {
		t.Fatalf("pressing on initiate = %v, want pressing", got)
	}
	if got := ApplyTrigger(StanceBroken, TriggerRecovered); got != StanceBroken {
		t.Fatalf("broken on recovered = %v, want broken", got)
	}
}

// TestRecoveryCycle ensures hit then recover returns to neutral.
func TestRecoveryCycle(t *testing.T) {
	s := ApplyTrigger(StanceNeutral, TriggerTookHit)
	if s != StanceRecovering {
		t.Fatalf("after hit = %v, want recovering", s)
	}
	s = ApplyTrigger(s, TriggerRecovered)
	if s != StanceNeutral {
		t.Fatalf("after recovery = %v, want neutral", s)
	}
}
