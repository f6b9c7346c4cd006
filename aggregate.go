package turnaround

import (
	"math"
	"sort"
	"strings"
)

// Aggregation over completed player records. All three views are derived
// on demand from the full record list; levels and archetypes with zero
// players are omitted rather than zero-filled.

// LevelStatsFrom computes the rounded mean of each score field per
// organizational level, in the fixed level order.
func LevelStatsFrom(players []Player) []LevelStats {
	type acc struct {
		tv, or, iv, hr int
		count          int
	}
	byLevel := make(map[OrgLevel]*acc, len(OrgLevels))
	for _, p := range players {
		a := byLevel[p.Level]
		if a == nil {
			a = &acc{}
			byLevel[p.Level] = a
		}
		a.tv += p.Scores.TV
		a.or += p.Scores.OR
		a.iv += p.Scores.IV
		a.hr += p.Scores.HR
		a.count++
	}

	var stats []LevelStats
	for _, level := range OrgLevels {
		a := byLevel[level]
		if a == nil || a.count == 0 {
			continue
		}
		stats = append(stats, LevelStats{
			Level:       level,
			AvgTV:       roundMean(a.tv, a.count),
			AvgOR:       roundMean(a.or, a.count),
			AvgIV:       roundMean(a.iv, a.count),
			AvgHR:       roundMean(a.hr, a.count),
			PlayerCount: a.count,
		})
	}
	return stats
}

// ArchetypeStatsFrom counts players per archetype, in archetype display
// order, with the archetype's chart color.
func ArchetypeStatsFrom(players []Player) []ArchetypeStats {
	counts := make(map[string]int, len(Archetypes))
	for _, p := range players {
		counts[p.ArchetypeID]++
	}

	var stats []ArchetypeStats
	for _, a := range Archetypes {
		n := counts[a.ID]
		if n == 0 {
			continue
		}
		stats = append(stats, ArchetypeStats{
			Name:  strings.TrimPrefix(a.Name, "The "),
			Count: n,
			Color: a.Color,
		})
	}
	return stats
}

// LeaderboardFrom sorts players by Turnaround Value descending and
// truncates to limit. The sort is stable, so ties keep insertion order.
// limit <= 0 returns the full board.
func LeaderboardFrom(players []Player, limit int) []Player {
	board := make([]Player, len(players))
	copy(board, players)
	sort.SliceStable(board, func(i, j int) bool {
		return board[i].Scores.TV > board[j].Scores.TV
	})
	if limit > 0 && len(board) > limit {
		board = board[:limit]
	}
	return board
}

func roundMean(sum, count int) int {
	return int(math.Round(float64(sum) / float64(count)))
}
