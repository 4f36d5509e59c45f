package combat

import "testing"

// TestPenetrationTable spot-checks the edge vs rigidity table.
func TestPenetrationTable(t *testing.T) {
	tcs := []struct {
		edge     Edge
		rigidity Rigidity
		piercing bool
		want     PenetrationResult
	}{
		{EdgeRazor, RigidityCloth, false, PenDeepCut},
		{EdgeRazor, RigidityLeather, false, PenCut},
		{EdgeRazor, RigidityMail, false, PenSnag},
		{EdgeRazor, RigidityPlate, false, PenDeflect},
		{EdgeSharp, RigidityCloth, false, PenCut},
		{EdgeSharp, RigidityLeather, false, PenShallowCut},
		{EdgeSharp, RigidityMail, false, PenDeflect},
		{EdgeSharp, RigidityPlate, false, PenDeflect},
		{EdgeBlunt, RigidityCloth, false, PenNoAttempt},
		{EdgeBlunt, RigidityPlate, false, PenNoAttempt},
	}
	for _, tc := range tcs {
		got := ResolvePenetration(tc.edge, tc.rigidity, tc.piercing)
		if got != tc.want {
			t.Fatalf("ResolvePenetration(%v, %v, %v) = %v, want %v",
				tc.edge, tc.rigidity, tc.piercing, got, tc.want)
		}
	}
}

// TestPiercingIsOneCategoryShift ensures piercing shifts exactly the four
// defined combinations and nothing else.
func TestPiercingIsOneCategoryShift(t *testing.T) {
	tcs := []struct {
		edge     Edge
		rigidity Rigidity
		want     PenetrationResult
	}{
		{EdgeRazor, RigidityMail, PenShallowCut},
		{EdgeSharp, RigidityMail, PenShallowCut},
		{EdgeRazor, RigidityPlate, PenSnag},
		{EdgeSharp, RigidityPlate, PenSnag},
	}
	for _, tc := range tcs {
		got := ResolvePenetration(tc.edge, tc.rigidity, true)
		if got != tc.want {
			t.Fatalf("piercing %v vs %v = %v, want %v", tc.edge, tc.rigidity, got, tc.want)
		}
	}

	// Everything outside mail/plate is unaffected by piercing.
	for _, edge := range Edges() {
		for _, rigidity := range []Rigidity{RigidityCloth, RigidityLeather} {
			without := ResolvePenetration(edge, rigidity, false)
			with := ResolvePenetration(edge, rigidity, true)
			if with != without {
				t.Fatalf("piercing changed %v vs %v: %v -> %v", edge, rigidity, without, with)
			}
		}
	}
}

// TestBluntNeverPenetrates ensures blunt weapons skip penetration no matter
// the armor or piercing flag.
func TestBluntNeverPenetrates(t *testing.T) {
	for _, rigidity := range Rigidities() {
		for _, piercing := range []bool{false, true} {
			if got := ResolvePenetration(EdgeBlunt, rigidity, piercing); got != PenNoAttempt {
				t.Fatalf("blunt vs %v (piercing=%v) = %v, want no attempt", rigidity, piercing, got)
			}
		}
	}
}

// TestPenetrationTotal walks all 24 input combinations and requires a
// defined variant for each.
func TestPenetrationTotal(t *testing.T) {
	for _, edge := range Edges() {
		for _, rigidity := range Rigidities() {
			for _, piercing := range []bool{false, true} {
				got := ResolvePenetration(edge, rigidity, piercing)
				if got.String() == "unknown" {
					t.Fatalf("undefined result for (%v, %v, %v)", edge, rigidity, piercing)
				}
			}
		}
	}
}
