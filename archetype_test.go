package turnaround

import "testing"

// extremes covers target-band boundaries plus far out-of-range values.
var extremes = []int{-1000, -70, -11, -10, -1, 0, 1, 20, 25, 34, 35, 36, 39, 40, 41, 80, 1000}

func TestClassifyTotality(t *testing.T) {
	known := map[string]bool{
		ArchetypeBalancedCatalyst:      true,
		ArchetypeTechnologyAccelerator: true,
		ArchetypeGovernanceChampion:    true,
		ArchetypeEfficiencyOptimizer:   true,
	}

	for _, tv := range extremes {
		for _, or := range extremes {
			for _, iv := range extremes {
				for _, hr := range extremes {
					v := ScoreVector{TV: tv, OR: or, IV: iv, HR: hr}
					a := Classify(v)
					if !known[a.ID] {
						t.Fatalf("Classify(%+v) returned unknown archetype %q", v, a.ID)
					}
				}
			}
		}
	}
}

func TestClassifyLegacyTotality(t *testing.T) {
	for _, tv := range extremes {
		for _, or := range extremes {
			for _, iv := range extremes {
				for _, hr := range extremes {
					v := ScoreVector{TV: tv, OR: or, IV: iv, HR: hr}
					if a := ClassifyWith(RulesetLegacy, v); a.ID == "" {
						t.Fatalf("legacy classify(%+v) returned no archetype", v)
					}
				}
			}
		}
	}
}

func TestWinningOutcomeMatchesCatalystRule(t *testing.T) {
	// IsWinningOutcome must stay in lock-step with the first rule of the
	// standard list, for every vector.
	for _, tv := range extremes {
		for _, or := range extremes {
			for _, iv := range extremes {
				for _, hr := range extremes {
					v := ScoreVector{TV: tv, OR: or, IV: iv, HR: hr}
					won := IsWinningOutcome(v)
					isCatalyst := Classify(v).ID == ArchetypeBalancedCatalyst
					if won != isCatalyst {
						t.Fatalf("divergence at %+v: winning=%v catalyst=%v", v, won, isCatalyst)
					}
				}
			}
		}
	}
}

func TestClassifyAllB(t *testing.T) {
	v := ComputeScores([]Choice{ChoiceB, ChoiceB, ChoiceB, ChoiceB, ChoiceB})
	if a := Classify(v); a.ID != ArchetypeBalancedCatalyst {
		t.Errorf("all-B run should be balanced-catalyst, got %s (scores %+v)", a.ID, v)
	}
	if !IsWinningOutcome(v) {
		t.Error("all-B run should be a winning outcome")
	}
}

func TestClassifyAllA(t *testing.T) {
	v := ComputeScores([]Choice{ChoiceA, ChoiceA, ChoiceA, ChoiceA, ChoiceA})
	if a := Classify(v); a.ID != ArchetypeGovernanceChampion {
		t.Errorf("all-A run should be governance-champion, got %s (scores %+v)", a.ID, v)
	}
}

func TestClassifyZeroVector(t *testing.T) {
	if a := Classify(ScoreVector{}); a.ID != ArchetypeGovernanceChampion {
		t.Errorf("zero vector should resolve to governance-champion, got %s", a.ID)
	}
}

func TestClassifyRuleOrder(t *testing.T) {
	// Satisfies both the accelerator rule (IV>40, OR>=40) and the
	// optimizer rule (TV>=35, HR<-10); the earlier rule must win.
	v := ScoreVector{TV: 50, OR: 50, IV: 50, HR: -20}
	if a := Classify(v); a.ID != ArchetypeTechnologyAccelerator {
		t.Errorf("earlier rule should win, got %s", a.ID)
	}
}

func TestClassifyEfficiencyOptimizer(t *testing.T) {
	// High value, sacrificed workforce, too risky for the champion rule.
	v := ScoreVector{TV: 40, OR: 45, IV: 10, HR: -20}
	if a := Classify(v); a.ID != ArchetypeEfficiencyOptimizer {
		t.Errorf("expected efficiency-optimizer, got %s", a.ID)
	}
}

func TestClassifyFallback(t *testing.T) {
	// Misses every explicit rule: TV high enough to skip the champion
	// rule, HR too high for the optimizer, IV too low for the accelerator.
	v := ScoreVector{TV: 40, OR: 45, IV: 10, HR: 5}
	if a := Classify(v); a.ID != ArchetypeGovernanceChampion {
		t.Errorf("catch-all should give governance-champion, got %s", a.ID)
	}
}

func TestClassifyLegacyDiverges(t *testing.T) {
	// TV>35, OR<40, HR in (0, 20]: a catalyst under the standard rules but
	// not under legacy, which demands HR > 20.
	v := ScoreVector{TV: 40, OR: 10, IV: 5, HR: 10}
	if a := Classify(v); a.ID != ArchetypeBalancedCatalyst {
		t.Fatalf("standard should give balanced-catalyst, got %s", a.ID)
	}
	if a := ClassifyWith(RulesetLegacy, v); a.ID == ArchetypeBalancedCatalyst {
		t.Error("legacy rules should not grant balanced-catalyst at HR 10")
	}
}

func TestClassifyLegacyCatalyst(t *testing.T) {
	v := ScoreVector{TV: 40, OR: 10, IV: 5, HR: 30}
	if a := ClassifyWith(RulesetLegacy, v); a.ID != ArchetypeBalancedCatalyst {
		t.Errorf("legacy catalyst expected, got %s", a.ID)
	}
}

func TestArchetypeByID(t *testing.T) {
	a, ok := ArchetypeByID(ArchetypeBalancedCatalyst)
	if !ok || a.Name != "The Balanced Catalyst" {
		t.Errorf("lookup failed: %+v ok=%v", a, ok)
	}
	if _, ok := ArchetypeByID("nope"); ok {
		t.Error("unknown id should not resolve")
	}
}
