package turnaround

// Archetype is one of the four fixed classification outcomes.
type Archetype struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Subtitle  string `json:"subtitle"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	Diagnosis string `json:"diagnosis"`
	Impact    string `json:"impact"`
	Reality   string `json:"reality"`
}

const (
	ArchetypeBalancedCatalyst      = "balanced-catalyst"
	ArchetypeTechnologyAccelerator = "technology-accelerator"
	ArchetypeGovernanceChampion    = "governance-champion"
	ArchetypeEfficiencyOptimizer   = "efficiency-optimizer"
)

// Archetypes lists the four outcomes in display order. Archetype
// statistics follow this order.
var Archetypes = []Archetype{
	{
		ID:        ArchetypeBalancedCatalyst,
		Name:      "The Balanced Catalyst",
		Subtitle:  "The Golden Path",
		Icon:      "⚡",
		Color:     "#16A34A",
		Diagnosis: "You successfully architected a highly sustainable 12-month transformation. You recognize that AI is not just a technology play, but a fundamental shift in human operations.",
		Impact:    "You demonstrated the patience to absorb the initial friction of change. By prioritizing robust Domain-Specific Models and workforce upskilling over off-the-shelf quick fixes, you built a resilient foundation.",
		Reality:   "Because your people trust the systems and understand how to orchestrate them, they have elevated their roles. You didn't just optimize existing processes; you empowered your teams to unlock entirely new, high-margin revenue streams.",
	},
	{
		ID:        ArchetypeTechnologyAccelerator,
		Name:      "The Technology Accelerator",
		Subtitle:  "The Velocity Focus",
		Icon:      "🚀",
		Color:     "#D97706",
		Diagnosis: "You have a formidable bias for action. Your strategy heavily prioritizes rapid technological deployment and speed-to-market to capture early competitive advantages.",
		Impact:    "You achieved exceptional execution velocity in the first half of the year, securing early productivity gains and demonstrating decisive leadership in tech acquisition.",
		Reality:   "The critical next step is bridging the gap between technological capability and workforce readiness. Rapid scaling without an equal investment in human context engineering can lead to underutilized assets and operational friction.",
	},
	{
		ID:        ArchetypeGovernanceChampion,
		Name:      "The Governance Champion",
		Subtitle:  "The Risk-Mitigation Focus",
		Icon:      "🛡️",
		Color:     "#2563EB",
		Diagnosis: "You prioritize enterprise security, brand protection, and flawless compliance above all else. You build incredibly stable operational environments.",
		Impact:    "Your governance framework is exceptionally secure. You successfully shielded the organization from data vulnerabilities, prompt injection risks, and regulatory missteps during a highly volatile technological shift.",
		Reality:   "Over-indexing on risk prevention can inadvertently throttle innovation velocity. To achieve 30–40% value generation, the organization must transition from treating AI solely as a risk to manage, to a growth engine to unleash.",
	},
	{
		ID:        ArchetypeEfficiencyOptimizer,
		Name:      "The Efficiency Optimizer",
		Subtitle:  "The Bottom-Line Focus",
		Icon:      "📉",
		Color:     "#9333EA",
		Diagnosis: "You are highly effective at identifying cost-saving opportunities and rapidly streamlining legacy operations to drive immediate financial impact.",
		Impact:    "Your strategy delivered strong, immediate margin expansion. By automating manual processes and creating a leaner operational structure, you quickly returned cash to the bottom line.",
		Reality:   "While highly effective for short-term financial engineering, pure efficiency plays can create long-term cultural fatigue. To sustain this financial trajectory, savings must be aggressively reinvested into upskilling the remaining workforce to build net-new services.",
	},
}

// ArchetypeByID looks up an archetype by id.
func ArchetypeByID(id string) (Archetype, bool) {
	for _, a := range Archetypes {
		if a.ID == id {
			return a, true
		}
	}
	return Archetype{}, false
}

func mustArchetype(id string) Archetype {
	a, _ := ArchetypeByID(id)
	return a
}

// Ruleset selects which classification rule-set Classify uses. Two
// revisions of the rules shipped; RulesetStandard is the later, simplified
// first-match list and is the default. RulesetLegacy keeps the earlier
// multi-condition variant for comparison fixtures.
type Ruleset string

const (
	RulesetStandard Ruleset = "standard"
	RulesetLegacy   Ruleset = "legacy"
)

// Classify maps a score vector to exactly one archetype using the standard
// rule-set. Total and deterministic: every vector, including extreme ones,
// resolves to one of the four archetypes.
//
// The rules form an ordered decision list with first-match-wins semantics.
// The Balanced Catalyst rule deliberately requires three independent target
// bands at once; it is meant to be hard to reach.
func Classify(v ScoreVector) Archetype {
	switch {
	case v.TV > 35 && v.OR < 40 && v.HR > 0:
		return mustArchetype(ArchetypeBalancedCatalyst)
	case v.IV > 40 && (v.OR >= 40 || v.HR <= 0):
		return mustArchetype(ArchetypeTechnologyAccelerator)
	case v.OR < 40 && v.TV <= 35:
		return mustArchetype(ArchetypeGovernanceChampion)
	case v.TV >= 35 && v.HR < -10:
		return mustArchetype(ArchetypeEfficiencyOptimizer)
	}
	// Catch-all guarantees totality.
	return mustArchetype(ArchetypeGovernanceChampion)
}

// ClassifyWith classifies under an explicit rule-set.
func ClassifyWith(rs Ruleset, v ScoreVector) Archetype {
	if rs == RulesetLegacy {
		return classifyLegacy(v)
	}
	return Classify(v)
}

// classifyLegacy is the earlier, more elaborate rule-set. Kept selectable
// because both revisions were observed in production; thresholds differ
// from the standard list (notably HR > 20 and IV > 0 for the catalyst).
func classifyLegacy(v ScoreVector) Archetype {
	highTV := v.TV > 35
	lowRisk := v.OR < 40

	switch {
	case highTV && lowRisk && v.HR > 20 && v.IV > 0:
		return mustArchetype(ArchetypeBalancedCatalyst)
	case v.IV > 40 && (v.OR >= 20 || v.HR <= 10):
		return mustArchetype(ArchetypeTechnologyAccelerator)
	case v.TV >= 35 && v.HR < 0:
		return mustArchetype(ArchetypeEfficiencyOptimizer)
	case v.OR < 20 && (v.TV <= 35 || v.IV <= 20):
		return mustArchetype(ArchetypeGovernanceChampion)

	// Edge cases the primary rules miss.
	case v.TV > 35 && v.OR >= 40:
		return mustArchetype(ArchetypeTechnologyAccelerator)
	case v.TV >= 25 && v.HR < 0:
		return mustArchetype(ArchetypeEfficiencyOptimizer)
	case v.IV > 30 && v.TV <= 35:
		return mustArchetype(ArchetypeTechnologyAccelerator)
	}

	return mustArchetype(ArchetypeGovernanceChampion)
}

// IsWinningOutcome reports whether the scores hit the golden path. By
// construction this is the Balanced Catalyst predicate of the standard
// rule-set, and tests hold the two in lock-step.
func IsWinningOutcome(v ScoreVector) bool {
	return v.TV > 35 && v.OR < 40 && v.HR > 0
}
