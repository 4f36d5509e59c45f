package combat

import "testing"

// TestStressSourcesPositive ensures every catalog entry carries a strictly
// positive additive value in (0, 1].
func TestStressSourcesPositive(t *testing.T) {
	sources := AllStressSources()
	if len(sources) != 17 {
		t.Fatalf("catalog size = %d, want 17", len(sources))
	}
	for _, s := range sources {
		v := s.BaseStress()
		if v <= 0 || v > 1 {
			t.Fatalf("%v base stress = %v, want in (0, 1]", s, v)
		}
	}
}

// TestShockOutweighsPressure ensures shock spikes are strictly larger than
// sustained pressure sources.
func TestShockOutweighsPressure(t *testing.T) {
	shocks := []StressSource{
		StressOfficerKilled, StressFlankAttack, StressAmbushSprung,
		StressCavalryCharge, StressTerrifyingEnemy,
	}
	pressures := []StressSource{
		StressOutnumbered, StressSurrounded, StressNoResponse,
		StressOverwatchFire, StressProlongedCombat,
	}
	for _, shock := range shocks {
		for _, pressure := range pressures {
			if shock.BaseStress() <= pressure.BaseStress() {
				t.Fatalf("%v (%v) must exceed %v (%v)",
					shock, shock.BaseStress(), pressure, pressure.BaseStress())
			}
		}
	}
}

// TestStressAccumulates ensures apply adds and never caps.
func TestStressAccumulates(t *testing.T) {
	m := NewMoraleState()
	for i := 0; i < 20; i++ {
		m.ApplyStress(StressWoundReceived)
	}
	// 20 * 0.15 = 3.0, well past the threshold: stress has no ceiling.
	if m.CurrentStress < 2.9 {
		t.Fatalf("stress = %v, want about 3.0", m.CurrentStress)
	}
}

// TestBreakThresholds ensures the fixed threshold fractions classify
// holding, shaken, and breaking.
func TestBreakThresholds(t *testing.T) {
	m := NewMoraleState()
	if got := m.CheckBreak(); got != BreakHolding {
		t.Fatalf("fresh state = %v, want holding", got)
	}

	m.CurrentStress = m.BaseThreshold * 0.85
	if got := m.CheckBreak(); got != BreakShaken {
		t.Fatalf("at 0.85x threshold = %v, want shaken", got)
	}

	m.CurrentStress = m.BaseThreshold * 1.1
	if got := m.CheckBreak(); got != BreakBreaking {
		t.Fatalf("at 1.1x threshold = %v, want breaking", got)
	}
}

// TestDecayFloorsAtZero ensures decay subtracts a flat amount and never
// goes negative.
func TestDecayFloorsAtZero(t *testing.T) {
	m := NewMoraleState()
	m.ApplyStress(StressNearMiss)
	m.DecayStress(1.0)
	if m.CurrentStress != 0 {
		t.Fatalf("stress = %v, want 0", m.CurrentStress)
	}
}

// TestSymmetricCatalog ensures the same source yields the same stress no
// matter which role accumulates it.
func TestSymmetricCatalog(t *testing.T) {
	attacker := NewMoraleState()
	defender := NewMoraleState()
	for _, s := range AllStressSources() {
		attacker.ApplyStress(s)
		defender.ApplyStress(s)
	}
	if attacker.CurrentStress != defender.CurrentStress {
		t.Fatalf("asymmetric accumulation: %v vs %v", attacker.CurrentStress, defender.CurrentStress)
	}
}
