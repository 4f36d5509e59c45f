package combat

// Combat is pressure and timing, not turns. Stances determine what actions
// are available and who gets free hits. Stance transitions are driven by
// tick systems outside this package; the resolvers only read stance.

// Stance is the combat posture. Every combatant is always in exactly one.
type Stance int

const (
	// StancePressing is attacking with initiative.
	StancePressing Stance = iota
	// StanceNeutral is balanced and ready.
	StanceNeutral
	// StanceDefensive is focused on blocking and countering.
	StanceDefensive
	// StanceRecovering is catching breath, vulnerable.
	StanceRecovering
	// StanceBroken is out of the fight (wounded or fled).
	StanceBroken
)

func (s Stance) String() string {
	switch s {
	case StancePressing:
		return "pressing"
	case StanceNeutral:
		return "neutral"
	case StanceDefensive:
		return "defensive"
	case StanceRecovering:
		return "recovering"
	case StanceBroken:
		return "broken"
	default:
		return "unknown"
	}
}

// CanAttack reports whether this stance can deliver a strike in an exchange.
func (s Stance) CanAttack() bool {
	return s == StancePressing || s == StanceDefensive
}

// CanDefend reports whether this stance can perform active defense.
func (s Stance) CanDefend() bool {
	return s == StanceNeutral || s == StanceDefensive
}

// Vulnerable reports whether this stance gives up free hits.
func (s Stance) Vulnerable() bool {
	return s == StanceRecovering || s == StanceBroken
}

// TransitionTrigger is an event that can move a combatant between stances.
type TransitionTrigger int

const (
	// Self-initiated.
	TriggerInitiateAttack TransitionTrigger = iota
	TriggerRaiseGuard
	TriggerDropGuard
	TriggerCatchBreath

	// Combat outcomes.
	TriggerAttackCompleted
	TriggerAttackBlocked
	TriggerAttackMissed
	TriggerDefenseSucceeded
	TriggerDefenseFailed
	TriggerTookHit
	TriggerStaggered
	TriggerKnockdown

	// Fatigue.
	TriggerExhausted
	TriggerRecovered

	// Incapacitation, leads to Broken.
	TriggerCriticalWoundHead
	TriggerCriticalWoundTorso
	TriggerMoraleBreak
	TriggerWoundThresholdExceeded
)

// ApplyTrigger returns the next stance for a trigger. Pairs with no rule
// leave the stance unchanged.
func ApplyTrigger(current Stance, trigger TransitionTrigger) Stance {
	// Triggers that apply from any stance.
	switch trigger {
	case TriggerCatchBreath, TriggerTookHit, TriggerStaggered, TriggerKnockdown, TriggerExhausted:
		return StanceRecovering
	case TriggerCriticalWoundHead, TriggerCriticalWoundTorso, TriggerMoraleBreak, TriggerWoundThresholdExceeded:
		return StanceBroken
	}

	switch {
	case current == StanceNeutral && trigger == TriggerInitiateAttack:
		return StancePressing
	case current == StanceNeutral && trigger == TriggerRaiseGuard:
		return StanceDefensive
	case current == StanceDefensive && trigger == TriggerDropGuard:
		return StanceNeutral
	case current == StancePressing && trigger == TriggerAttackCompleted:
		return StanceNeutral
	case current == StancePressing && trigger == TriggerAttackBlocked:
		return StanceNeutral
	case current == StancePressing && trigger == TriggerAttackMissed:
		// Overextended.
		return StanceRecovering
	case current == StanceDefensive && trigger == TriggerDefenseSucceeded:
		return StanceNeutral
	case current == StanceDefensive && trigger == TriggerDefenseFailed:
		return StanceRecovering
	case current == StanceRecovering && trigger == TriggerRecovered:
		return StanceNeutral
	}
	return current
}
