package leaderboard

import (
	"context"
	"sort"
	"sync"

	"github.com/aaronzipp/rock-paper-showdown/internal/models"
)

// Memory is an in-process leaderboard backend. It implements the same Store
// contract as the SQLite backend but loses entries on restart; tests and
// ephemeral deployments use it.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]*models.LeaderboardEntry
}

// NewMemory creates an empty in-memory leaderboard
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]*models.LeaderboardEntry),
	}
}

// RegisterPlayer creates a zero-score entry if the player is new.
func (m *Memory) RegisterPlayer(ctx context.Context, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.entries[name]; exists {
		return false, nil
	}
	m.entries[name] = &models.LeaderboardEntry{Name: name}
	return true, nil
}

// RecordGame applies a completed game's totals.
func (m *Memory) RecordGame(ctx context.Context, result GameResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apply(result.Player1, result.Player1Score, gamesWon(result.Winner, result.Player1))
	m.apply(result.Player2, result.Player2Score, gamesWon(result.Winner, result.Player2))
	return nil
}

func (m *Memory) apply(name string, score, won int) {
	entry, exists := m.entries[name]
	if !exists {
		entry = &models.LeaderboardEntry{Name: name}
		m.entries[name] = entry
	}
	entry.Score += score
	entry.GamesWon += won
}

// ByName returns all entries ordered lexicographically by player name.
func (m *Memory) ByName(ctx context.Context) ([]models.LeaderboardEntry, error) {
	entries := m.snapshot()
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// ByScore returns all entries ordered by descending score, ties broken by
// ascending name.
func (m *Memory) ByScore(ctx context.Context) ([]models.LeaderboardEntry, error) {
	entries := m.snapshot()
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

func (m *Memory) snapshot() []models.LeaderboardEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entries := make([]models.LeaderboardEntry, 0, len(m.entries))
	for _, entry := range m.entries {
		entries = append(entries, *entry)
	}
	return entries
}

// Close is a no-op for the in-memory backend.
func (m *Memory) Close() error {
	return nil
}
