package turnaround

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CurrentPlayer is the one in-progress session being built incrementally.
type CurrentPlayer struct {
	Name            string        `json:"name"`
	Level           OrgLevel      `json:"level"`
	SelfArchetypeID string        `json:"self_archetype,omitempty"`
	PhotoURL        string        `json:"photo_url,omitempty"`
	AvatarURL       string        `json:"avatar_url,omitempty"`
	Choices         []Choice      `json:"choices"`
	Variants        []VariantPair `json:"variants"`
}

// RegisterOptions carries the optional registration fields.
type RegisterOptions struct {
	SelfArchetypeID string
	PhotoURL        string
}

// Game is the booth session context. It owns the single current player in
// progress and the completed-player store; there is no ambient global
// state. All mutations go through the mutex because the store may be
// shared by concurrent kiosk handlers.
type Game struct {
	store   SessionStore
	stylist AvatarStylist
	config  Config

	mu      sync.Mutex
	current *CurrentPlayer
}

// Init creates a Game from config: picks the session store (redis, sqlite,
// or in-memory in that precedence) and wires the avatar stylist when an
// API key is present.
func Init(cfg Config) (*Game, error) {
	cfg.ApplyDefaults()

	store := cfg.Store
	if store == nil {
		var err error
		switch {
		case cfg.RedisAddr != "":
			store, err = NewRedisStore(cfg.RedisAddr, cfg.RedisPrefix)
		case cfg.DBPath != "":
			store, err = NewSQLiteStore(cfg.DBPath)
		default:
			store = NewMemoryStore()
		}
		if err != nil {
			return nil, err
		}
	}

	stylist := cfg.Stylist
	if stylist == nil && cfg.GeminiAPIKey != "" {
		stylist = NewGeminiStylist(cfg.GeminiAPIKey, WithStylizeTimeout(cfg.AvatarTimeout))
	}

	log.Printf("[booth] Initialized (store=%T, ruleset=%s)", store, cfg.Ruleset)

	return &Game{store: store, stylist: stylist, config: cfg}, nil
}

// Register starts a new session for a named player. Missing name or an
// unknown organizational level is rejected; this is user input, not a
// fault. Any previous in-progress session is discarded.
func (g *Game) Register(name string, level OrgLevel, opts RegisterOptions) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if _, ok := ParseOrgLevel(string(level)); !ok {
		return fmt.Errorf("unknown organizational level %q", level)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.current = &CurrentPlayer{
		Name:            name,
		Level:           level,
		SelfArchetypeID: opts.SelfArchetypeID,
		PhotoURL:        opts.PhotoURL,
		Variants:        RandomVariantIndices(),
	}
	return nil
}

// Choose records the answer for the next decision and returns the running
// score vector, recomputed from the full sequence.
func (g *Game) Choose(c Choice) (ScoreVector, error) {
	if c != ChoiceA && c != ChoiceB {
		return ScoreVector{}, fmt.Errorf("invalid choice %q", c)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.current == nil {
		return ScoreVector{}, fmt.Errorf("no player registered")
	}
	if len(g.current.Choices) >= TotalDecisions {
		return ScoreVector{}, fmt.Errorf("all %d decisions already made", TotalDecisions)
	}
	g.current.Choices = append(g.current.Choices, c)
	return ComputeScores(g.current.Choices), nil
}

// Undo removes the most recent answer and returns the recomputed vector.
func (g *Game) Undo() (ScoreVector, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.current == nil {
		return ScoreVector{}, fmt.Errorf("no player registered")
	}
	if len(g.current.Choices) == 0 {
		return ScoreVector{}, fmt.Errorf("nothing to undo")
	}
	g.current.Choices = g.current.Choices[:len(g.current.Choices)-1]
	return ComputeScores(g.current.Choices), nil
}

// Scores returns the running vector for the current session.
func (g *Game) Scores() (ScoreVector, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.current == nil {
		return ScoreVector{}, fmt.Errorf("no player registered")
	}
	return ComputeScores(g.current.Choices), nil
}

// Current returns a copy of the in-progress session, or nil.
func (g *Game) Current() *CurrentPlayer {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.current == nil {
		return nil
	}
	cp := *g.current
	cp.Choices = append([]Choice(nil), g.current.Choices...)
	cp.Variants = append([]VariantPair(nil), g.current.Variants...)
	return &cp
}

// SetAvatarURL attaches a styled avatar to the in-progress session.
func (g *Game) SetAvatarURL(url string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.current == nil {
		return fmt.Errorf("no player registered")
	}
	g.current.AvatarURL = url
	return nil
}

// Complete finishes the game: classifies the final vector, stamps the
// record, appends it to the session store, and clears the current player.
// Requires a registered player with all decisions answered.
func (g *Game) Complete() (Player, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.current == nil {
		return Player{}, fmt.Errorf("no player registered")
	}
	if len(g.current.Choices) < TotalDecisions {
		return Player{}, fmt.Errorf("game incomplete: %d of %d decisions made",
			len(g.current.Choices), TotalDecisions)
	}

	scores := ComputeScores(g.current.Choices)
	archetype := ClassifyWith(g.config.Ruleset, scores)

	p := Player{
		ID:              uuid.NewString(),
		Name:            g.current.Name,
		Level:           g.current.Level,
		Scores:          scores,
		Choices:         append([]Choice(nil), g.current.Choices...),
		ArchetypeID:     archetype.ID,
		SelfArchetypeID: g.current.SelfArchetypeID,
		PhotoURL:        g.current.PhotoURL,
		AvatarURL:       g.current.AvatarURL,
		CompletedAt:     time.Now(),
	}
	if err := g.store.AppendPlayer(p); err != nil {
		return Player{}, fmt.Errorf("append player: %w", err)
	}

	log.Printf("[booth] Completed game for %s (%s) -> %s", p.Name, p.Level, p.ArchetypeID)
	g.current = nil
	return p, nil
}

// Reset discards the current in-progress session. Completed records are
// untouched.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current = nil
}

// StylizeAvatar runs the configured stylist over a photo data URL,
// attaches the result to the current session, and returns it. The original
// photo comes back on any failure; avatar generation never hard-fails.
func (g *Game) StylizeAvatar(ctx context.Context, photoDataURL string) string {
	url := StylizeOrFallback(ctx, g.stylist, photoDataURL)
	g.mu.Lock()
	if g.current != nil {
		g.current.PhotoURL = photoDataURL
		g.current.AvatarURL = url
	}
	g.mu.Unlock()
	return url
}

// LevelStats derives per-level score means over all completed players.
func (g *Game) LevelStats() ([]LevelStats, error) {
	players, err := g.store.Players()
	if err != nil {
		return nil, err
	}
	return LevelStatsFrom(players), nil
}

// ArchetypeStats derives per-archetype counts over all completed players.
func (g *Game) ArchetypeStats() ([]ArchetypeStats, error) {
	players, err := g.store.Players()
	if err != nil {
		return nil, err
	}
	return ArchetypeStatsFrom(players), nil
}

// Leaderboard returns up to limit players sorted by Turnaround Value.
func (g *Game) Leaderboard(limit int) ([]Player, error) {
	players, err := g.store.Players()
	if err != nil {
		return nil, err
	}
	return LeaderboardFrom(players, limit), nil
}

// Close releases the session store.
func (g *Game) Close() error {
	return g.store.Close()
}
