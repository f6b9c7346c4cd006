package turnaround

import "testing"

func testPlayer(name string, level OrgLevel, scores ScoreVector, archetypeID string) Player {
	return Player{
		ID:          name,
		Name:        name,
		Level:       level,
		Scores:      scores,
		ArchetypeID: archetypeID,
	}
}

func TestLeaderboardOrderAndTies(t *testing.T) {
	players := []Player{
		testPlayer("p1", LevelLeadership, ScoreVector{TV: 40}, ArchetypeGovernanceChampion),
		testPlayer("p2", LevelLeadership, ScoreVector{TV: 40}, ArchetypeGovernanceChampion),
		testPlayer("p3", LevelLeadership, ScoreVector{TV: 60}, ArchetypeBalancedCatalyst),
	}

	board := LeaderboardFrom(players, 2)
	if len(board) != 2 {
		t.Fatalf("expected exactly 2 rows, got %d", len(board))
	}
	if board[0].Name != "p3" {
		t.Errorf("highest TV should rank first, got %s", board[0].Name)
	}
	if board[1].Name != "p1" {
		t.Errorf("tie should keep insertion order, got %s", board[1].Name)
	}
}

func TestLeaderboardNoLimit(t *testing.T) {
	players := []Player{
		testPlayer("a", LevelHR, ScoreVector{TV: 1}, ArchetypeGovernanceChampion),
		testPlayer("b", LevelHR, ScoreVector{TV: 2}, ArchetypeGovernanceChampion),
	}
	board := LeaderboardFrom(players, 0)
	if len(board) != 2 {
		t.Errorf("limit 0 should return all rows, got %d", len(board))
	}
	if board[0].Name != "b" {
		t.Errorf("expected b first, got %s", board[0].Name)
	}
}

func TestLeaderboardDoesNotMutateInput(t *testing.T) {
	players := []Player{
		testPlayer("a", LevelHR, ScoreVector{TV: 1}, ArchetypeGovernanceChampion),
		testPlayer("b", LevelHR, ScoreVector{TV: 2}, ArchetypeGovernanceChampion),
	}
	LeaderboardFrom(players, 10)
	if players[0].Name != "a" {
		t.Error("input slice order should be untouched")
	}
}

func TestLevelStatsRoundedMeans(t *testing.T) {
	players := []Player{
		testPlayer("a", LevelTechnology, ScoreVector{TV: 10, OR: 3, IV: 1, HR: 0}, ArchetypeGovernanceChampion),
		testPlayer("b", LevelTechnology, ScoreVector{TV: 15, OR: 4, IV: 2, HR: 1}, ArchetypeGovernanceChampion),
	}

	stats := LevelStatsFrom(players)
	if len(stats) != 1 {
		t.Fatalf("expected 1 level row, got %d", len(stats))
	}
	s := stats[0]
	if s.Level != LevelTechnology || s.PlayerCount != 2 {
		t.Fatalf("wrong row: %+v", s)
	}
	// (10+15)/2 = 12.5 rounds away from zero to 13; (3+4)/2 = 3.5 -> 4
	if s.AvgTV != 13 || s.AvgOR != 4 || s.AvgIV != 2 || s.AvgHR != 1 {
		t.Errorf("wrong means: %+v", s)
	}
}

func TestLevelStatsOmitEmptyLevels(t *testing.T) {
	players := []Player{
		testPlayer("a", LevelFinance, ScoreVector{TV: 5}, ArchetypeGovernanceChampion),
	}
	stats := LevelStatsFrom(players)
	if len(stats) != 1 {
		t.Fatalf("levels with zero players must be omitted, got %d rows", len(stats))
	}
	for _, s := range stats {
		if s.PlayerCount == 0 {
			t.Errorf("zero-count row leaked: %+v", s)
		}
	}
}

func TestLevelStatsFixedOrder(t *testing.T) {
	players := []Player{
		testPlayer("a", LevelFinance, ScoreVector{}, ArchetypeGovernanceChampion),
		testPlayer("b", LevelBoardMember, ScoreVector{}, ArchetypeGovernanceChampion),
	}
	stats := LevelStatsFrom(players)
	if len(stats) != 2 || stats[0].Level != LevelBoardMember || stats[1].Level != LevelFinance {
		t.Errorf("rows should follow the fixed level order, got %+v", stats)
	}
}

func TestArchetypeStatsCountsAndColors(t *testing.T) {
	players := []Player{
		testPlayer("a", LevelHR, ScoreVector{}, ArchetypeBalancedCatalyst),
		testPlayer("b", LevelHR, ScoreVector{}, ArchetypeBalancedCatalyst),
		testPlayer("c", LevelHR, ScoreVector{}, ArchetypeEfficiencyOptimizer),
	}

	stats := ArchetypeStatsFrom(players)
	if len(stats) != 2 {
		t.Fatalf("expected 2 archetype rows, got %d", len(stats))
	}
	if stats[0].Name != "Balanced Catalyst" || stats[0].Count != 2 {
		t.Errorf("wrong first row: %+v", stats[0])
	}
	if stats[0].Color != "#16A34A" {
		t.Errorf("row should carry the display color, got %s", stats[0].Color)
	}
	if stats[1].Name != "Efficiency Optimizer" || stats[1].Count != 1 {
		t.Errorf("wrong second row: %+v", stats[1])
	}
}

func TestArchetypeStatsOmitZeroCounts(t *testing.T) {
	stats := ArchetypeStatsFrom(nil)
	if len(stats) != 0 {
		t.Errorf("no players should mean no rows, got %+v", stats)
	}
}
