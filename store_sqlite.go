package turnaround

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore is an opt-in session store backed by SQLite, for booths that
// want to survive a process restart mid-event. Insertion order is the
// autoincrement id.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database and runs migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("booth: mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("booth: open db: %w", err)
	}

	// Single connection avoids write contention for our scale
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("booth: migrate: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`)

	var version int
	s.db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&version)

	if version < 1 {
		if _, err := s.db.Exec(`
			CREATE TABLE IF NOT EXISTS players (
				id             INTEGER PRIMARY KEY AUTOINCREMENT,
				player_id      TEXT    NOT NULL,
				name           TEXT    NOT NULL,
				level          TEXT    NOT NULL,
				tv             INTEGER NOT NULL,
				op_risk        INTEGER NOT NULL,
				iv             INTEGER NOT NULL,
				hr             INTEGER NOT NULL,
				choices        TEXT    NOT NULL,
				archetype      TEXT    NOT NULL,
				self_archetype TEXT    NOT NULL DEFAULT '',
				photo_url      TEXT    NOT NULL DEFAULT '',
				avatar_url     TEXT    NOT NULL DEFAULT '',
				completed_at   TEXT    NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_players_level     ON players(level);
			CREATE INDEX IF NOT EXISTS idx_players_archetype ON players(archetype);
		`); err != nil {
			return err
		}
		s.db.Exec(`INSERT INTO schema_version (version) VALUES (1)`)
	}

	return nil
}

func (s *SQLiteStore) AppendPlayer(p Player) error {
	_, err := s.db.Exec(`
		INSERT INTO players (player_id, name, level, tv, op_risk, iv, hr, choices,
			archetype, self_archetype, photo_url, avatar_url, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, string(p.Level),
		p.Scores.TV, p.Scores.OR, p.Scores.IV, p.Scores.HR,
		encodeChoices(p.Choices),
		p.ArchetypeID, p.SelfArchetypeID, p.PhotoURL, p.AvatarURL,
		p.CompletedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

func (s *SQLiteStore) Players() ([]Player, error) {
	rows, err := s.db.Query(`
		SELECT player_id, name, level, tv, op_risk, iv, hr, choices,
			archetype, self_archetype, photo_url, avatar_url, completed_at
		FROM players
		ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		var level, choices, completed string
		if err := rows.Scan(
			&p.ID, &p.Name, &level,
			&p.Scores.TV, &p.Scores.OR, &p.Scores.IV, &p.Scores.HR,
			&choices, &p.ArchetypeID, &p.SelfArchetypeID,
			&p.PhotoURL, &p.AvatarURL, &completed,
		); err != nil {
			return nil, err
		}
		p.Level = OrgLevel(level)
		p.Choices = decodeChoices(choices)
		p.CompletedAt, _ = time.Parse(time.RFC3339Nano, completed)
		players = append(players, p)
	}
	return players, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// encodeChoices packs a choice sequence as a compact string, e.g. "ABBAB".
func encodeChoices(choices []Choice) string {
	out := make([]byte, len(choices))
	for i, c := range choices {
		out[i] = 'A'
		if c == ChoiceB {
			out[i] = 'B'
		}
	}
	return string(out)
}

func decodeChoices(s string) []Choice {
	if s == "" {
		return nil
	}
	out := make([]Choice, len(s))
	for i := range s {
		out[i] = ChoiceA
		if s[i] == 'B' {
			out[i] = ChoiceB
		}
	}
	return out
}
