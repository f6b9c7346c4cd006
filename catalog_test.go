package turnaround

import "testing"

func TestCatalogShape(t *testing.T) {
	if len(Catalog) != TotalDecisions {
		t.Fatalf("expected %d decisions, got %d", TotalDecisions, len(Catalog))
	}
	for i, d := range Catalog {
		if d.Ordinal != i+1 {
			t.Errorf("decision %d has ordinal %d", i, d.Ordinal)
		}
		if d.Title == "" || d.Scenario == "" || d.Month == "" {
			t.Errorf("decision %d missing narrative text", d.Ordinal)
		}
		for _, variant := range d.A.Variants {
			if variant == "" {
				t.Errorf("decision %d option A has an empty variant", d.Ordinal)
			}
		}
		for _, variant := range d.B.Variants {
			if variant == "" {
				t.Errorf("decision %d option B has an empty variant", d.Ordinal)
			}
		}
		if d.A.Insight.First == "" || d.B.Insight.Second == "" {
			t.Errorf("decision %d missing insight beats", d.Ordinal)
		}
	}
}

func TestOptionLookup(t *testing.T) {
	d := &Catalog[0]
	if d.Option(ChoiceA).Delta != (ScoreVector{IV: 20, OR: 15, HR: -20, TV: -5}) {
		t.Errorf("wrong A delta: %+v", d.Option(ChoiceA).Delta)
	}
	if d.Option(ChoiceB).Delta != (ScoreVector{IV: 5, OR: -5, HR: 20, TV: 10}) {
		t.Errorf("wrong B delta: %+v", d.Option(ChoiceB).Delta)
	}
}

func TestChoiceTextVariantFallback(t *testing.T) {
	d := &Catalog[0]
	if got := d.ChoiceText(ChoiceA, 2); got != d.A.Variants[2] {
		t.Errorf("variant 2 not returned: %s", got)
	}
	if got := d.ChoiceText(ChoiceA, 99); got != d.A.Variants[0] {
		t.Error("out-of-range variant should fall back to the first")
	}
	if got := d.ChoiceText(ChoiceB, -1); got != d.B.Variants[0] {
		t.Error("negative variant should fall back to the first")
	}
}

func TestRandomVariantIndicesInRange(t *testing.T) {
	pairs := RandomVariantIndices()
	if len(pairs) != TotalDecisions {
		t.Fatalf("expected %d pairs, got %d", TotalDecisions, len(pairs))
	}
	for i, p := range pairs {
		if p.A < 0 || p.A > 4 || p.B < 0 || p.B > 4 {
			t.Errorf("pair %d out of range: %+v", i, p)
		}
	}
}
