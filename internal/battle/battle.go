// Package battle drives tick-based combat on top of the resolution engine.
// Everything here is deterministic: the same inputs always replay to the
// same report.
package battle

import (
	"fmt"

	"github.com/Astreocclu/arc-citadel-sub001/internal/combat"
)

// DefaultMaxTicks bounds a duel that neither side can end.
const DefaultMaxTicks = 600

// Options tunes a duel run.
type Options struct {
	// MaxTicks caps the tick loop; 0 means DefaultMaxTicks.
	MaxTicks int `json:"max_ticks,omitempty"`
}

// Outcome classifies how a duel ended.
type Outcome int

const (
	OutcomeInconclusive Outcome = iota
	OutcomeIncapacitated
	OutcomeDead
	OutcomeMoraleBroken
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInconclusive:
		return "inconclusive"
	case OutcomeIncapacitated:
		return "incapacitated"
	case OutcomeDead:
		return "dead"
	case OutcomeMoraleBroken:
		return "morale_broken"
	default:
		return "unknown"
	}
}

// SideReport summarizes one combatant after the duel.
type SideReport struct {
	Name        string         `json:"name"`
	Wounds      []combat.Wound `json:"wounds,omitempty"`
	WoundCount  int            `json:"wound_count"`
	Fatigue     float32        `json:"fatigue"`
	Stress      float32        `json:"stress"`
	FinalStance string         `json:"final_stance"`
	Dead        bool           `json:"dead"`
}

// Report is the structured result of a duel plus the step log.
type Report struct {
	Winner    string     `json:"winner"` // empty on a draw or tick cap
	Outcome   string     `json:"outcome"`
	Ticks     int        `json:"ticks"`
	Exchanges int        `json:"exchanges"`
	A         SideReport `json:"a"`
	B         SideReport `json:"b"`
	Logs      []string   `json:"logs"`
}

// side is the mutable per-combatant loop state.
type side struct {
	name         string
	state        *combat.CombatState
	recoveryLeft int
	outcome      Outcome
}

func (s *side) applyTrigger(trigger combat.TransitionTrigger) {
	next := combat.ApplyTrigger(s.state.Stance, trigger)
	if next == combat.StanceRecovering && s.state.Stance != combat.StanceRecovering {
		s.recoveryLeft = combat.RecoveryTicks
	}
	s.state.Stance = next
}

// Duel runs a deterministic tick loop between two combat states, mutating
// both, and returns the report. Initiative alternates each tick.
func Duel(nameA, nameB string, a, b *combat.CombatState, opts Options) Report {
	maxTicks := opts.MaxTicks
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicks
	}

	sideA := &side{name: nameA, state: a}
	sideB := &side{name: nameB, state: b}
	logs := []string{fmt.Sprintf("duel: %s (%s, %s) vs %s (%s, %s)",
		nameA, a.Weapon, a.Armor, nameB, b.Weapon, b.Armor)}

	tick := 0
	exchanges := 0
	for ; tick < maxTicks; tick++ {
		if !sideA.state.CanFight() || !sideB.state.CanFight() {
			break
		}

		// Sustained combat pressure, symmetric per tick.
		sideA.state.Morale.ApplyStress(combat.StressProlongedCombat)
		sideB.state.Morale.ApplyStress(combat.StressProlongedCombat)
		sideA.state.AddFatigue(combat.FatiguePerMeleeTick)
		sideB.state.AddFatigue(combat.FatiguePerMeleeTick)

		recoverTick(sideA, &logs, tick)
		recoverTick(sideB, &logs, tick)

		initiator, other := sideA, sideB
		if tick%2 == 1 {
			initiator, other = sideB, sideA
		}

		if initiator.state.Stance == combat.StanceNeutral {
			initiator.applyTrigger(combat.TriggerInitiateAttack)
		}
		if !initiator.state.Stance.CanAttack() {
			continue
		}

		attacker := initiator.state.Combatant()
		defender := other.state.Combatant()
		result := combat.ResolveExchange(&attacker, &defender)
		exchanges++
		logExchange(&logs, tick, initiator.name, other.name, result)

		initiator.state.AddFatigue(combat.FatiguePerAttack)
		other.state.AddFatigue(combat.FatiguePerDefend)
		initiator.state.Morale.ApplyStress(combat.StressMeleeViolence)
		other.state.Morale.ApplyStress(combat.StressMeleeViolence)

		if result.DefenderHit && result.DefenderWound != nil {
			applyWound(other, *result.DefenderWound, &logs, tick)
		}
		if result.AttackerHit && result.AttackerWound != nil {
			applyWound(initiator, *result.AttackerWound, &logs, tick)
		}

		initiator.applyTrigger(combat.TriggerAttackCompleted)

		exhaustTick(sideA)
		exhaustTick(sideB)
		moraleTick(sideA, &logs, tick)
		moraleTick(sideB, &logs, tick)
	}

	report := Report{
		Ticks:     tick,
		Exchanges: exchanges,
		A:         sideSummary(sideA),
		B:         sideSummary(sideB),
		Logs:      logs,
	}
	winner, loser := decide(sideA, sideB)
	if winner != nil {
		report.Winner = winner.name
		report.Outcome = loser.outcome.String()
		report.Logs = append(report.Logs, fmt.Sprintf("result: %s wins (%s %s)",
			winner.name, loser.name, loser.outcome))
	} else {
		report.Outcome = OutcomeInconclusive.String()
		report.Logs = append(report.Logs, "result: inconclusive")
	}
	return report
}

func recoverTick(s *side, logs *[]string, tick int) {
	if s.state.Stance != combat.StanceRecovering {
		return
	}
	s.state.RecoverFatigue(combat.FatigueRecoveryRate)
	if s.recoveryLeft > 0 {
		s.recoveryLeft--
		return
	}
	s.applyTrigger(combat.TriggerRecovered)
	*logs = append(*logs, fmt.Sprintf("t%d: %s recovers", tick, s.name))
}

func exhaustTick(s *side) {
	if s.state.Fatigue >= combat.ExhaustionThreshold && s.state.Stance != combat.StanceRecovering {
		s.applyTrigger(combat.TriggerExhausted)
	}
}

func moraleTick(s *side, logs *[]string, tick int) {
	if s.state.Stance == combat.StanceBroken {
		return
	}
	if s.state.Morale.CheckBreak() == combat.BreakBreaking {
		s.applyTrigger(combat.TriggerMoraleBreak)
		s.outcome = OutcomeMoraleBroken
		*logs = append(*logs, fmt.Sprintf("t%d: %s breaks (stress %.3f)", tick, s.name, s.state.Morale.CurrentStress))
	}
}

func applyWound(s *side, wound combat.Wound, logs *[]string, tick int) {
	if wound.Severity == combat.SeverityNone {
		return
	}
	s.state.Wounds = append(s.state.Wounds, wound)
	s.state.Morale.ApplyStress(combat.StressWoundReceived)
	*logs = append(*logs, fmt.Sprintf("t%d: %s takes %s wound to %s", tick, s.name, wound.Severity, wound.Zone))

	switch {
	case wound.Severity >= combat.SeverityCritical && wound.Zone == combat.ZoneHead:
		s.applyTrigger(combat.TriggerCriticalWoundHead)
		s.outcome = OutcomeIncapacitated
	case wound.Severity >= combat.SeverityCritical && wound.Zone == combat.ZoneTorso:
		s.applyTrigger(combat.TriggerCriticalWoundTorso)
		s.outcome = OutcomeIncapacitated
	case s.state.IsIncapacitated():
		s.applyTrigger(combat.TriggerWoundThresholdExceeded)
		s.outcome = OutcomeIncapacitated
	default:
		s.applyTrigger(combat.TriggerTookHit)
	}
	if s.state.IsDead() {
		s.outcome = OutcomeDead
	}
}

func logExchange(logs *[]string, tick int, attacker, defender string, r combat.ExchangeResult) {
	first, second := attacker, defender
	if !r.AttackerStruckFirst {
		first, second = defender, attacker
	}
	line := fmt.Sprintf("t%d: %s exchanges with %s (%s strikes before %s)", tick, attacker, defender, first, second)
	if !r.AttackerHit {
		line = fmt.Sprintf("t%d: %s strikes %s, no counter", tick, attacker, defender)
	}
	*logs = append(*logs, line)
}

func sideSummary(s *side) SideReport {
	return SideReport{
		Name:        s.name,
		Wounds:      s.state.Wounds,
		WoundCount:  len(s.state.Wounds),
		Fatigue:     s.state.Fatigue,
		Stress:      s.state.Morale.CurrentStress,
		FinalStance: s.state.Stance.String(),
		Dead:        s.state.IsDead(),
	}
}

func decide(a, b *side) (winner, loser *side) {
	aOut := !a.state.CanFight()
	bOut := !b.state.CanFight()
	switch {
	case aOut && !bOut:
		return b, a
	case bOut && !aOut:
		return a, b
	default:
		return nil, nil
	}
}
