package leaderboard

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/aaronzipp/rock-paper-showdown/internal/models"

	_ "modernc.org/sqlite" // SQLite driver.
)

// SQLite is the durable leaderboard backend. Entries survive restarts.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path and applies the schema.
func OpenSQLite(path string) (*SQLite, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &SQLite{db: db}
	if err := store.migrate(); err != nil {
		// Best-effort close on migration failure.
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS players (
			name TEXT PRIMARY KEY,
			score INTEGER NOT NULL DEFAULT 0,
			games_won INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE INDEX IF NOT EXISTS idx_players_score ON players(score DESC, name ASC);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// RegisterPlayer inserts a zero-score row unless the player already exists.
func (s *SQLite) RegisterPlayer(ctx context.Context, name string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO players (name, score, games_won) VALUES (?, 0, 0)
		 ON CONFLICT(name) DO NOTHING`, name)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RecordGame applies a completed game's totals in one transaction.
func (s *SQLite) RecordGame(ctx context.Context, result GameResult) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			// Best-effort rollback.
			_ = tx.Rollback()
		}
	}()

	upsert := `INSERT INTO players (name, score, games_won) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			score = score + excluded.score,
			games_won = games_won + excluded.games_won`

	if _, err = tx.ExecContext(ctx, upsert, result.Player1, result.Player1Score, gamesWon(result.Winner, result.Player1)); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, upsert, result.Player2, result.Player2Score, gamesWon(result.Winner, result.Player2)); err != nil {
		return err
	}

	return tx.Commit()
}

// gamesWon credits the sole winner; a tied game (empty winner) credits nobody.
func gamesWon(winner, player string) int {
	if winner != "" && winner == player {
		return 1
	}
	return 0
}

// ByName returns all entries ordered lexicographically by player name.
func (s *SQLite) ByName(ctx context.Context) ([]models.LeaderboardEntry, error) {
	return s.list(ctx, `SELECT name, score, games_won FROM players ORDER BY name ASC`)
}

// ByScore returns all entries ordered by descending score, ties broken by
// ascending name.
func (s *SQLite) ByScore(ctx context.Context) ([]models.LeaderboardEntry, error) {
	return s.list(ctx, `SELECT name, score, games_won FROM players ORDER BY score DESC, name ASC`)
}

func (s *SQLite) list(ctx context.Context, query string) ([]models.LeaderboardEntry, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	// Best-effort rows close.
	defer func() { _ = rows.Close() }()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var entry models.LeaderboardEntry
		if err := rows.Scan(&entry.Name, &entry.Score, &entry.GamesWon); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
