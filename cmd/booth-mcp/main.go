// booth-mcp exposes the turnaround booth game as an MCP stdio server.
//
// Environment variables:
//
//	BOOTH_DB_PATH     — optional SQLite session store path
//	BOOTH_REDIS_ADDR  — optional Redis address for a shared kiosk store
//	BOOTH_RULESET     — classifier rule-set: standard (default) or legacy
//	GEMINI_API_KEY    — Gemini API key for avatar stylization
//
// Usage:
//
//	go install github.com/goblincore/turnaroundsim/cmd/booth-mcp
//	booth-mcp
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	turnaround "github.com/goblincore/turnaroundsim"
)

func main() {
	cfg := turnaround.Config{
		DBPath:       os.Getenv("BOOTH_DB_PATH"),
		RedisAddr:    os.Getenv("BOOTH_REDIS_ADDR"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		Ruleset:      turnaround.Ruleset(os.Getenv("BOOTH_RULESET")),
	}

	game, err := turnaround.Init(cfg)
	if err != nil {
		log.Fatalf("booth init: %v", err)
	}
	defer game.Close()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "booth-mcp",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "register_player",
		Description: "Start a session for a named player at an organizational level. Discards any session in progress.",
	}, registerHandler(game))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_decision",
		Description: "Fetch the scenario and option texts for the next (or a given) decision point.",
	}, decisionHandler(game))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "make_choice",
		Description: "Answer the next decision with option A or B. Returns the running scores and the choice's narrative consequences.",
	}, chooseHandler(game))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "undo_choice",
		Description: "Take back the most recent answer. Returns the recomputed running scores.",
	}, undoHandler(game))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_scores",
		Description: "Get the running score vector with per-metric target status.",
	}, scoresHandler(game))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "stylize_avatar",
		Description: "Stylize a captured photo (base64 data URL) into an avatar. Falls back to the original photo on any failure.",
	}, avatarHandler(game))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "complete_game",
		Description: "Finish the game after all 5 decisions: classify the player into a leadership archetype and record the result.",
	}, completeHandler(game))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "reset_session",
		Description: "Discard the in-progress session without recording anything.",
	}, resetHandler(game))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_leaderboard",
		Description: "List completed players sorted by Turnaround Value (ties keep play order).",
	}, leaderboardHandler(game))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_level_stats",
		Description: "Average scores and player counts per organizational level. Levels with no players are omitted.",
	}, levelStatsHandler(game))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_archetype_stats",
		Description: "Player counts per leadership archetype. Archetypes with no players are omitted.",
	}, archetypeStatsHandler(game))

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatalf("booth-mcp: %v", err)
	}
}

// --- Input types ---

type registerInput struct {
	Name            string `json:"name"                      jsonschema:"Player display name"`
	Level           string `json:"level"                     jsonschema:"Organizational level: Board Member, Leadership, Senior Management, Managers, HR, Technology, Operations, Finance, Other"`
	SelfArchetypeID string `json:"self_archetype,omitempty"  jsonschema:"Optional self-declared archetype id for the perception-vs-reality comparison"`
	PhotoURL        string `json:"photo_url,omitempty"       jsonschema:"Optional captured photo as a base64 data URL"`
}

type decisionInput struct {
	Ordinal int `json:"ordinal,omitempty" jsonschema:"Decision number 1-5; 0 means the next unanswered decision"`
}

type chooseInput struct {
	Choice string `json:"choice" jsonschema:"Option A or B"`
}

type avatarInput struct {
	PhotoDataURL string `json:"photo_data_url" jsonschema:"Captured photo as a base64 data URL (image/jpeg or image/png)"`
}

type leaderboardInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max rows to return (default 10)"`
}

type emptyInput struct{}

// --- Handlers ---

func registerHandler(game *turnaround.Game) func(context.Context, *mcp.CallToolRequest, registerInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input registerInput) (*mcp.CallToolResult, any, error) {
		err := game.Register(input.Name, turnaround.OrgLevel(input.Level), turnaround.RegisterOptions{
			SelfArchetypeID: input.SelfArchetypeID,
			PhotoURL:        input.PhotoURL,
		})
		if err != nil {
			return textResult(fmt.Sprintf("error: %v", err)), nil, nil
		}
		return textResult(jsonString(map[string]any{
			"status":    "registered",
			"decisions": turnaround.TotalDecisions,
		})), nil, nil
	}
}

func decisionHandler(game *turnaround.Game) func(context.Context, *mcp.CallToolRequest, decisionInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input decisionInput) (*mcp.CallToolResult, any, error) {
		current := game.Current()
		if current == nil {
			return textResult("error: no player registered"), nil, nil
		}

		ordinal := input.Ordinal
		if ordinal == 0 {
			ordinal = len(current.Choices) + 1
		}
		if ordinal < 1 || ordinal > turnaround.TotalDecisions {
			return textResult(fmt.Sprintf("error: decision ordinal %d out of range", ordinal)), nil, nil
		}

		d := &turnaround.Catalog[ordinal-1]
		variants := turnaround.VariantPair{}
		if len(current.Variants) >= ordinal {
			variants = current.Variants[ordinal-1]
		}
		return textResult(jsonString(map[string]any{
			"ordinal":  d.Ordinal,
			"title":    d.Title,
			"month":    d.Month,
			"scenario": d.Scenario,
			"option_a": d.ChoiceText(turnaround.ChoiceA, variants.A),
			"option_b": d.ChoiceText(turnaround.ChoiceB, variants.B),
		})), nil, nil
	}
}

func chooseHandler(game *turnaround.Game) func(context.Context, *mcp.CallToolRequest, chooseInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input chooseInput) (*mcp.CallToolResult, any, error) {
		choice := turnaround.Choice(input.Choice)
		scores, err := game.Choose(choice)
		if err != nil {
			return textResult(fmt.Sprintf("error: %v", err)), nil, nil
		}

		current := game.Current()
		answered := len(current.Choices)
		insight := turnaround.Catalog[answered-1].Option(choice).Insight

		return textResult(jsonString(map[string]any{
			"answered":  answered,
			"remaining": turnaround.TotalDecisions - answered,
			"scores":    scores,
			"insight":   insight,
		})), nil, nil
	}
}

func undoHandler(game *turnaround.Game) func(context.Context, *mcp.CallToolRequest, emptyInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
		scores, err := game.Undo()
		if err != nil {
			return textResult(fmt.Sprintf("error: %v", err)), nil, nil
		}
		return textResult(jsonString(map[string]any{"scores": scores})), nil, nil
	}
}

func scoresHandler(game *turnaround.Game) func(context.Context, *mcp.CallToolRequest, emptyInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
		scores, err := game.Scores()
		if err != nil {
			return textResult(fmt.Sprintf("error: %v", err)), nil, nil
		}

		status := make(map[string]string, len(turnaround.Metrics))
		for _, m := range turnaround.Metrics {
			status[string(m.Key)] = string(turnaround.Status(m.Key, scores.Get(m.Key)))
		}
		return textResult(jsonString(map[string]any{
			"scores": scores,
			"status": status,
		})), nil, nil
	}
}

func avatarHandler(game *turnaround.Game) func(context.Context, *mcp.CallToolRequest, avatarInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input avatarInput) (*mcp.CallToolResult, any, error) {
		avatarURL := game.StylizeAvatar(ctx, input.PhotoDataURL)
		return textResult(jsonString(map[string]any{
			"avatar_url": avatarURL,
			"stylized":   avatarURL != input.PhotoDataURL,
		})), nil, nil
	}
}

func completeHandler(game *turnaround.Game) func(context.Context, *mcp.CallToolRequest, emptyInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
		player, err := game.Complete()
		if err != nil {
			return textResult(fmt.Sprintf("error: %v", err)), nil, nil
		}
		archetype, _ := turnaround.ArchetypeByID(player.ArchetypeID)
		return textResult(jsonString(map[string]any{
			"player":    player,
			"archetype": archetype,
			"winning":   turnaround.IsWinningOutcome(player.Scores),
		})), nil, nil
	}
}

func resetHandler(game *turnaround.Game) func(context.Context, *mcp.CallToolRequest, emptyInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
		game.Reset()
		return textResult(`{"status": "reset"}`), nil, nil
	}
}

func leaderboardHandler(game *turnaround.Game) func(context.Context, *mcp.CallToolRequest, leaderboardInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input leaderboardInput) (*mcp.CallToolResult, any, error) {
		limit := input.Limit
		if limit <= 0 {
			limit = 10
		}
		board, err := game.Leaderboard(limit)
		if err != nil {
			return textResult(fmt.Sprintf("error: %v", err)), nil, nil
		}

		out := make([]map[string]any, len(board))
		for i, p := range board {
			out[i] = map[string]any{
				"rank":      i + 1,
				"name":      p.Name,
				"level":     p.Level,
				"scores":    p.Scores,
				"archetype": p.ArchetypeID,
			}
		}
		return textResult(jsonString(out)), nil, nil
	}
}

func levelStatsHandler(game *turnaround.Game) func(context.Context, *mcp.CallToolRequest, emptyInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
		stats, err := game.LevelStats()
		if err != nil {
			return textResult(fmt.Sprintf("error: %v", err)), nil, nil
		}
		return textResult(jsonString(stats)), nil, nil
	}
}

func archetypeStatsHandler(game *turnaround.Game) func(context.Context, *mcp.CallToolRequest, emptyInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
		stats, err := game.ArchetypeStats()
		if err != nil {
			return textResult(fmt.Sprintf("error: %v", err)), nil, nil
		}
		return textResult(jsonString(stats)), nil, nil
	}
}

// --- Helpers ---

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func jsonString(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal: %v"}`, err)
	}
	return string(data)
}
