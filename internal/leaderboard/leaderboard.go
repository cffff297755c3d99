// Package leaderboard persists all-time per-player score and win aggregates.
package leaderboard

import (
	"context"

	"github.com/aaronzipp/rock-paper-showdown/internal/models"
)

// GameResult is the completed-session summary applied to the aggregates.
// Winner is the sole winner's name, or empty for a tied game.
type GameResult struct {
	Player1      string
	Player2      string
	Player1Score int
	Player2Score int
	Winner       string
}

// Store is implemented by leaderboard backends. Entries are created on first
// appearance, updated additively, and never deleted.
type Store interface {
	// RegisterPlayer creates a zero-score entry for the player if none
	// exists and reports whether it was created.
	RegisterPlayer(ctx context.Context, name string) (bool, error)

	// RecordGame adds each player's round-score total and credits the sole
	// winner with a game won. Called once per completed game.
	RecordGame(ctx context.Context, result GameResult) error

	// ByName returns all entries ordered lexicographically by player name.
	ByName(ctx context.Context) ([]models.LeaderboardEntry, error)

	// ByScore returns all entries ordered by descending score, ties broken
	// by ascending name.
	ByScore(ctx context.Context) ([]models.LeaderboardEntry, error)

	Close() error
}
