package turnaround

// --- Accumulation ---

// ComputeScores folds a choice sequence into a score vector. Works for any
// prefix length from 0 (zero vector) to the full game; entries beyond the
// catalog are ignored. Pure: recomputing from scratch is the only mode.
func ComputeScores(choices []Choice) ScoreVector {
	var v ScoreVector
	for i, c := range choices {
		if i >= len(Catalog) {
			break
		}
		v = v.Add(Catalog[i].Option(c).Delta)
	}
	return v
}

// --- Metric targets ---

// Metric describes one score dimension for display.
type Metric struct {
	Key         MetricKey
	Name        string
	Description string
	Target      string
	IsLimit     bool // true when the target is an upper bound
}

// Metrics lists the score dimensions in display order.
var Metrics = []Metric{
	{Key: MetricTV, Name: "Turnaround Value", Description: "Enterprise value generation", Target: "> +35"},
	{Key: MetricOR, Name: "Operational Risk", Description: "Risk exposure level", Target: "< +40", IsLimit: true},
	{Key: MetricIV, Name: "Innovation Velocity", Description: "Speed of AI adoption", Target: "> 0"},
	{Key: MetricHR, Name: "Human Readiness", Description: "Workforce AI capability", Target: "> 0"},
}

// ScoreStatus grades a metric value against its target band.
type ScoreStatus string

const (
	StatusMet    ScoreStatus = "met"
	StatusNear   ScoreStatus = "target"
	StatusMissed ScoreStatus = "missed"
)

// ScorePassing reports whether a metric value hits its target.
func ScorePassing(key MetricKey, value int) bool {
	switch key {
	case MetricTV:
		return value >= 35
	case MetricOR:
		return value < 40
	case MetricIV, MetricHR:
		return value > 0
	}
	return false
}

// NearTarget reports whether a metric value is just short of its target.
func NearTarget(key MetricKey, value int) bool {
	switch key {
	case MetricTV:
		return value >= 25 && value < 35
	case MetricOR:
		return value >= 40 && value <= 50
	case MetricIV, MetricHR:
		return value >= -5 && value <= 0
	}
	return false
}

// Status grades a metric value: met, near the target band, or missed.
func Status(key MetricKey, value int) ScoreStatus {
	if ScorePassing(key, value) {
		return StatusMet
	}
	if NearTarget(key, value) {
		return StatusNear
	}
	return StatusMissed
}

// ScoreTarget returns the numeric threshold for a metric.
func ScoreTarget(key MetricKey) int {
	switch key {
	case MetricTV:
		return 35
	case MetricOR:
		return 40
	}
	return 0
}

// ScoreRange is the reachable [Min, Max] band for a metric across all
// choice sequences, used to scale display gauges.
type ScoreRange struct {
	Min, Max int
}

var scoreRanges = map[MetricKey]ScoreRange{
	MetricTV: {Min: -20, Max: 80},
	MetricOR: {Min: -70, Max: 70},
	MetricIV: {Min: -20, Max: 80},
	MetricHR: {Min: -70, Max: 80},
}

// RangeFor returns the display range for a metric key.
func RangeFor(key MetricKey) ScoreRange {
	return scoreRanges[key]
}
