// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/term2048/internal/game"
)

// Modes a game can be recorded under.
const (
	ModeConsole  = "console"
	ModeTUI      = "tui"
	ModeSSH      = "ssh"
	ModeAutoplay = "autoplay"
)

// timeLayout has a fixed width so text ordering matches time ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store manages the SQLite database connection for game records.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// GameRecord is one finished game.
type GameRecord struct {
	ID        string // UUID, assigned by SaveGame when empty
	Mode      string
	Player    string
	Score     int
	MaxTile   int
	Moves     int
	Won       bool // Target tile reached
	Duration  time.Duration
	CreatedAt time.Time
}

// RecordFromSnapshot builds a record for a finished game.
func RecordFromSnapshot(mode, player string, snap game.Snapshot, d time.Duration) GameRecord {
	return GameRecord{
		Mode:     mode,
		Player:   player,
		Score:    snap.Score,
		MaxTile:  snap.MaxTile,
		Moves:    snap.Moves,
		Won:      snap.Target > 0 && snap.MaxTile >= snap.Target,
		Duration: d,
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			mode TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_games_mode ON games(mode);
		CREATE INDEX IF NOT EXISTS idx_games_top ON games(mode, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame records a finished game and returns its ID.
func (s *Store) SaveGame(rec GameRecord) (string, error) {
	if rec.Mode == "" {
		return "", errors.New("storage: game record has no mode")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now()
	}

	_, err := s.db.Exec(
		`INSERT INTO games (id, mode, player, score, max_tile, moves, won, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Mode, rec.Player, rec.Score, rec.MaxTile, rec.Moves,
		rec.Won, rec.Duration.Milliseconds(), rec.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save game: %w", err)
	}

	return rec.ID, nil
}

const selectGames = `SELECT id, mode, player, score, max_tile, moves, won, duration_ms, created_at FROM games`

// TopScores retrieves the top N games for a mode, or across all modes when
// mode is empty. Results are ordered by score descending.
func (s *Store) TopScores(mode string, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	var (
		rows *sql.Rows
		err  error
	)
	if mode == "" {
		rows, err = s.db.Query(selectGames+` ORDER BY score DESC, created_at ASC LIMIT ?`, limit)
	} else {
		rows, err = s.db.Query(selectGames+` WHERE mode = ? ORDER BY score DESC, created_at ASC LIMIT ?`, mode, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanGames(rows)
}

// RecentGames retrieves the most recently finished games.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(selectGames+` ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent games: %w", err)
	}
	return scanGames(rows)
}

// GameByID retrieves a game by its ID. Returns nil if it does not exist.
func (s *Store) GameByID(id string) (*GameRecord, error) {
	rows, err := s.db.Query(selectGames+` WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}
	games, err := scanGames(rows)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, nil
	}
	return &games[0], nil
}

func scanGames(rows *sql.Rows) ([]GameRecord, error) {
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var (
			rec        GameRecord
			durationMS int64
			createdAt  any
		)
		if err := rows.Scan(&rec.ID, &rec.Mode, &rec.Player, &rec.Score, &rec.MaxTile,
			&rec.Moves, &rec.Won, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		rec.CreatedAt = parseTime(createdAt)
		games = append(games, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return games, nil
}

// parseTime accepts what the driver hands back for a timestamp column.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{timeLayout, time.RFC3339Nano, "2006-01-02 15:04:05"} {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

// HighScore returns the highest score for the given mode, or across all
// modes when mode is empty. Returns 0 if no games exist.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM games WHERE ? = '' OR mode = ?",
		mode, mode,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all games for the given mode, or every game when mode is empty.
func (s *Store) ClearScores(mode string) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if mode == "" {
		res, err = s.db.Exec("DELETE FROM games")
	} else {
		res, err = s.db.Exec("DELETE FROM games WHERE mode = ?", mode)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear scores: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	return n, nil
}

// Modes returns every mode with at least one recorded game, sorted by name.
func (s *Store) Modes() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT mode FROM games ORDER BY mode")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query modes: %w", err)
	}
	defer rows.Close()

	var modes []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		modes = append(modes, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return modes, nil
}

// GameStats contains aggregated statistics for a mode.
type GameStats struct {
	Mode       string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	BestTile   int
	Wins       int
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific mode.
func (s *Store) GetGameStats(mode string) (*GameStats, error) {
	stats := &GameStats{Mode: mode}

	var lastPlayed sql.NullString
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0),
		        COALESCE(MAX(max_tile), 0), COALESCE(SUM(won), 0), MAX(created_at)
		 FROM games WHERE mode = ?`,
		mode,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore,
		&stats.BestTile, &stats.Wins, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	if lastPlayed.Valid {
		stats.LastPlayed = parseTime(lastPlayed.String)
	}

	return stats, nil
}

// GetAllGamesStats retrieves statistics for every mode that has been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(max_tile), SUM(won), MAX(created_at)
		 FROM games
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var st GameStats
		var lastPlayed string
		if err := rows.Scan(&st.Mode, &st.GamesCount, &st.HighScore, &st.AvgScore,
			&st.TotalScore, &st.BestTile, &st.Wins, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Mode] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
