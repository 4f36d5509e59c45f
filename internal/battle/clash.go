package battle

import (
	"fmt"

	"github.com/Astreocclu/arc-citadel-sub001/internal/combat"
)

// Formation clash: the statistical surrogate for mass combat. It reads the
// same categorical property vocabulary as the exchange resolver but never
// calls it; matchup differentials feed pressure and cohesion directly.

// Force is one side of a clash: a formation plus the representative
// loadout of its front line.
type Force struct {
	Formation *combat.FormationState
	Weapon    combat.WeaponProperties
	Armor     combat.ArmorProperties
}

// ClashReport is the structured result of a formation engagement.
type ClashReport struct {
	Ticks     int      `json:"ticks"`
	Winner    string   `json:"winner"` // "a", "b", or "" for a standoff
	APressure float32  `json:"a_pressure"`
	BPressure float32  `json:"b_pressure"`
	ABroken   int      `json:"a_broken"`
	BBroken   int      `json:"b_broken"`
	Logs      []string `json:"logs"`
}

// woundPotential scores one side's representative strike against the other
// side's armor by the severity category it would produce. Pure table walk,
// no exchange resolution.
func woundPotential(weapon combat.WeaponProperties, armor combat.ArmorProperties) int {
	pen := combat.ResolvePenetration(weapon.Edge, armor.Rigidity, weapon.HasSpecial(combat.SpecialPiercing))
	trauma := combat.ResolveTrauma(weapon.Mass, armor.Padding)
	w := combat.CombineResults(pen, trauma, combat.ZoneTorso)
	return int(w.Severity)
}

// pressurePerStep is the fixed additive pressure movement per category of
// matchup advantage per tick.
const pressurePerStep = 0.01

// ResolveClash advances two engaged formations tick by tick until one
// breaks or the tick budget runs out. Both formations are mutated.
func ResolveClash(a, b Force, maxTicks int) ClashReport {
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicks
	}

	// The property differential is constant for fixed loadouts; reach
	// breaks ties the same way it orders strikes in single exchanges.
	advantage := woundPotential(a.Weapon, b.Armor) - woundPotential(b.Weapon, a.Armor)
	if advantage == 0 {
		switch {
		case a.Weapon.Reach > b.Weapon.Reach:
			advantage = 1
		case b.Weapon.Reach > a.Weapon.Reach:
			advantage = -1
		}
	}

	logs := []string{fmt.Sprintf("clash: %d vs %d (advantage %+d)",
		a.Formation.EffectiveStrength(), b.Formation.EffectiveStrength(), advantage)}

	tick := 0
	for ; tick < maxTicks; tick++ {
		if a.Formation.IsBroken() || b.Formation.IsBroken() {
			break
		}

		delta := float32(advantage) * pressurePerStep
		a.Formation.ApplyPressureDelta(delta)
		b.Formation.ApplyPressureDelta(-delta)

		a.Formation.AddFatigue(combat.FatiguePerMeleeTick)
		b.Formation.AddFatigue(combat.FatiguePerMeleeTick)
		a.Formation.Stress += combat.StressProlongedCombat.BaseStress()
		b.Formation.Stress += combat.StressProlongedCombat.BaseStress()

		clashTick(a.Formation, &logs, tick, "a")
		clashTick(b.Formation, &logs, tick, "b")
	}

	report := ClashReport{
		Ticks:     tick,
		APressure: a.Formation.Pressure,
		BPressure: b.Formation.Pressure,
		ABroken:   a.Formation.BrokenCount,
		BBroken:   b.Formation.BrokenCount,
		Logs:      logs,
	}
	switch {
	case a.Formation.IsBroken() && !b.Formation.IsBroken():
		report.Winner = "b"
	case b.Formation.IsBroken() && !a.Formation.IsBroken():
		report.Winner = "a"
	}
	report.Logs = append(report.Logs, fmt.Sprintf("clash over after %d ticks, winner %q", tick, report.Winner))
	return report
}

// clashTick applies per-tick attrition to one formation: collapsing
// pressure routs front-line entities, and stress past the per-entity
// threshold routs more.
func clashTick(f *combat.FormationState, logs *[]string, tick int, label string) {
	routed := 0
	if f.PressureCategory() == combat.PressureCollapsing {
		routed++
	}
	if f.Stress > combat.BaseStressThreshold {
		routed++
	}
	if routed == 0 {
		return
	}
	f.BrokenCount += routed
	if f.BrokenCount > len(f.Entities) {
		f.BrokenCount = len(f.Entities)
	}
	f.LoseCohesion(combat.CohesionLossPerCasualty * float32(routed))
	*logs = append(*logs, fmt.Sprintf("t%d: formation %s loses %d (broken %d/%d)",
		tick, label, routed, f.BrokenCount, len(f.Entities)))
}
