package turnaround

import "time"

// MetricKey identifies one of the 4 score dimensions.
type MetricKey string

const (
	MetricTV MetricKey = "TV" // Turnaround Value — enterprise value generation
	MetricOR MetricKey = "OR" // Operational Risk — lower is better
	MetricIV MetricKey = "IV" // Innovation Velocity — speed of AI adoption
	MetricHR MetricKey = "HR" // Human Readiness — workforce AI capability
)

// ScoreVector is the running 4-dimensional score total. It starts at all
// zeros and is only ever the elementwise sum of the deltas of the choices
// made so far.
type ScoreVector struct {
	TV int `json:"TV"`
	OR int `json:"OR"`
	IV int `json:"IV"`
	HR int `json:"HR"`
}

// Add returns the elementwise sum of v and delta.
func (v ScoreVector) Add(delta ScoreVector) ScoreVector {
	return ScoreVector{
		TV: v.TV + delta.TV,
		OR: v.OR + delta.OR,
		IV: v.IV + delta.IV,
		HR: v.HR + delta.HR,
	}
}

// Get returns the value for a metric key. Unknown keys return 0.
func (v ScoreVector) Get(key MetricKey) int {
	switch key {
	case MetricTV:
		return v.TV
	case MetricOR:
		return v.OR
	case MetricIV:
		return v.IV
	case MetricHR:
		return v.HR
	}
	return 0
}

// Choice is one of the two options at a decision point.
type Choice string

const (
	ChoiceA Choice = "A"
	ChoiceB Choice = "B"
)

// OrgLevel is the player's organizational level, a fixed category set.
type OrgLevel string

const (
	LevelBoardMember      OrgLevel = "Board Member"
	LevelLeadership       OrgLevel = "Leadership"
	LevelSeniorManagement OrgLevel = "Senior Management"
	LevelManagers         OrgLevel = "Managers"
	LevelHR               OrgLevel = "HR"
	LevelTechnology       OrgLevel = "Technology"
	LevelOperations       OrgLevel = "Operations"
	LevelFinance          OrgLevel = "Finance"
	LevelOther            OrgLevel = "Other"
)

// OrgLevels lists all levels in display order. Level statistics follow
// this order.
var OrgLevels = []OrgLevel{
	LevelBoardMember,
	LevelLeadership,
	LevelSeniorManagement,
	LevelManagers,
	LevelHR,
	LevelTechnology,
	LevelOperations,
	LevelFinance,
	LevelOther,
}

// ParseOrgLevel validates a level string against the fixed category set.
func ParseOrgLevel(s string) (OrgLevel, bool) {
	for _, l := range OrgLevels {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// Player is a completed game record. Immutable once appended to a store.
type Player struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Level           OrgLevel    `json:"level"`
	Scores          ScoreVector `json:"scores"`
	Choices         []Choice    `json:"choices"`
	ArchetypeID     string      `json:"archetype"`
	SelfArchetypeID string      `json:"self_archetype,omitempty"`
	PhotoURL        string      `json:"photo_url,omitempty"`
	AvatarURL       string      `json:"avatar_url,omitempty"`
	CompletedAt     time.Time   `json:"completed_at"`
}

// LevelStats holds the rounded score means for one organizational level.
type LevelStats struct {
	Level       OrgLevel `json:"level"`
	AvgTV       int      `json:"avg_tv"`
	AvgOR       int      `json:"avg_or"`
	AvgIV       int      `json:"avg_iv"`
	AvgHR       int      `json:"avg_hr"`
	PlayerCount int      `json:"player_count"`
}

// ArchetypeStats holds the occurrence count for one archetype.
type ArchetypeStats struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// Config holds Game initialization parameters.
type Config struct {
	DBPath        string        // SQLite session store path; empty = in-memory store
	RedisAddr     string        // Redis address for a shared store; takes precedence over DBPath
	RedisPrefix   string        // Key prefix for the redis store (default "booth")
	GeminiAPIKey  string        // Enables avatar stylization
	Ruleset       Ruleset       // Classifier rule-set (default RulesetStandard)
	AvatarTimeout time.Duration // Client-side cap on the stylization call (default 30s)

	// Store and Stylist override the config-driven defaults when set.
	Store   SessionStore
	Stylist AvatarStylist
}

// ApplyDefaults fills zero-valued fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.RedisPrefix == "" {
		c.RedisPrefix = "booth"
	}
	if c.Ruleset == "" {
		c.Ruleset = RulesetStandard
	}
	if c.AvatarTimeout == 0 {
		c.AvatarTimeout = 30 * time.Second
	}
}
