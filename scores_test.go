package turnaround

import "testing"

func TestComputeScoresEmpty(t *testing.T) {
	v := ComputeScores(nil)
	if v != (ScoreVector{}) {
		t.Errorf("empty sequence should give the zero vector, got %+v", v)
	}
}

func TestComputeScoresAllB(t *testing.T) {
	v := ComputeScores([]Choice{ChoiceB, ChoiceB, ChoiceB, ChoiceB, ChoiceB})
	want := ScoreVector{TV: 80, OR: -15, HR: 65, IV: 55}
	if v != want {
		t.Errorf("all-B: expected %+v, got %+v", want, v)
	}
}

func TestComputeScoresAllA(t *testing.T) {
	v := ComputeScores([]Choice{ChoiceA, ChoiceA, ChoiceA, ChoiceA, ChoiceA})
	want := ScoreVector{TV: -15, OR: 30, HR: -70, IV: 10}
	if v != want {
		t.Errorf("all-A: expected %+v, got %+v", want, v)
	}
}

func TestComputeScoresPrefixConsistency(t *testing.T) {
	seq := []Choice{ChoiceB, ChoiceA, ChoiceB, ChoiceB, ChoiceA}

	// Incremental accumulation must match recompute-from-scratch at every
	// prefix length.
	var incremental ScoreVector
	for k, c := range seq {
		incremental = incremental.Add(Catalog[k].Option(c).Delta)
		recomputed := ComputeScores(seq[:k+1])
		if recomputed != incremental {
			t.Errorf("prefix %d: recompute %+v != incremental %+v", k+1, recomputed, incremental)
		}
	}
}

func TestComputeScoresIdempotent(t *testing.T) {
	seq := []Choice{ChoiceA, ChoiceB, ChoiceA}
	first := ComputeScores(seq)
	second := ComputeScores(seq)
	if first != second {
		t.Errorf("two calls on the same sequence differ: %+v vs %+v", first, second)
	}
}

func TestComputeScoresIgnoresExtraEntries(t *testing.T) {
	full := []Choice{ChoiceB, ChoiceB, ChoiceB, ChoiceB, ChoiceB}
	overlong := append(append([]Choice(nil), full...), ChoiceA, ChoiceA)
	if ComputeScores(overlong) != ComputeScores(full) {
		t.Error("entries beyond the catalog should be ignored, not scored")
	}
}

func TestScorePassingTargets(t *testing.T) {
	cases := []struct {
		key   MetricKey
		value int
		want  bool
	}{
		{MetricTV, 35, true},
		{MetricTV, 34, false},
		{MetricOR, 39, true},
		{MetricOR, 40, false},
		{MetricIV, 1, true},
		{MetricIV, 0, false},
		{MetricHR, 1, true},
		{MetricHR, -1, false},
	}
	for _, c := range cases {
		if got := ScorePassing(c.key, c.value); got != c.want {
			t.Errorf("ScorePassing(%s, %d) = %v, want %v", c.key, c.value, got, c.want)
		}
	}
}

func TestStatusGrading(t *testing.T) {
	if s := Status(MetricTV, 50); s != StatusMet {
		t.Errorf("TV 50 should be met, got %s", s)
	}
	if s := Status(MetricTV, 30); s != StatusNear {
		t.Errorf("TV 30 should be near target, got %s", s)
	}
	if s := Status(MetricTV, 10); s != StatusMissed {
		t.Errorf("TV 10 should be missed, got %s", s)
	}
	if s := Status(MetricOR, 45); s != StatusNear {
		t.Errorf("OR 45 should be near target, got %s", s)
	}
	if s := Status(MetricHR, -3); s != StatusNear {
		t.Errorf("HR -3 should be near target, got %s", s)
	}
}
