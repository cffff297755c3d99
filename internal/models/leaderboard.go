package models

// LeaderboardEntry is a player's all-time aggregate across completed games.
type LeaderboardEntry struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	GamesWon int    `json:"games_won"`
}
