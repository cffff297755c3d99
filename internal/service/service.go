// Package service coordinates the session store, game rules and leaderboard.
// It is the sole entry point external callers use to read or mutate game
// state.
package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/aaronzipp/rock-paper-showdown/internal/game"
	"github.com/aaronzipp/rock-paper-showdown/internal/leaderboard"
	"github.com/aaronzipp/rock-paper-showdown/internal/models"
	"github.com/aaronzipp/rock-paper-showdown/internal/sse"
	"github.com/aaronzipp/rock-paper-showdown/internal/store"
)

// Service serializes every session-mutating operation under one mutex, so
// concurrent plays observe consistent snapshots and round numbers advance
// monotonically.
type Service struct {
	mu       sync.Mutex
	sessions *store.SessionStore
	board    leaderboard.Store
	policy   game.Policy
	chooser  Chooser
	hub      *sse.Hub // optional
}

// New wires a service. hub may be nil when no event stream is served.
func New(sessions *store.SessionStore, board leaderboard.Store, policy game.Policy, chooser Chooser, hub *sse.Hub) *Service {
	return &Service{
		sessions: sessions,
		board:    board,
		policy:   policy,
		chooser:  chooser,
		hub:      hub,
	}
}

// PlayResult pairs a resolved round with the retained winner after it.
type PlayResult struct {
	game.RoundResult
	LastWinner string
}

// StateSnapshot is what the client reads at page load.
type StateSnapshot struct {
	GameActive   bool
	LastWinner   string
	Player1      string
	Player2      string
	Player1Score int
	Player2Score int
	RoundNumber  int
	StartedAt    time.Time
}

// Start begins a new session for the two named players, replacing any
// unfinished one. Both players are registered on the leaderboard before
// the session is installed: a registration failure leaves no active
// session behind.
func (s *Service) Start(ctx context.Context, player1, player2 string) (*models.Session, error) {
	player1 = strings.TrimSpace(player1)
	player2 = strings.TrimSpace(player2)
	if err := game.ValidatePlayers(player1, player2); err != nil {
		return nil, err
	}

	for _, name := range []string{player1, player2} {
		if _, err := s.board.RegisterPlayer(ctx, name); err != nil {
			return nil, fmt.Errorf("register player %q: %w", name, err)
		}
	}

	s.mu.Lock()
	session, err := s.sessions.StartSession(player1, player2)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	log.Printf("game started: id=%s %s vs %s", session.ID, player1, player2)
	s.publish(sse.EventGameStarted, map[string]string{
		"player1": player1,
		"player2": player2,
	})
	return session, nil
}

// Play resolves one round: player 1's choice comes from the caller, player
// 2's from the server's chooser. On the completing round it records the
// retained winner and applies the game to the leaderboard, exactly once.
func (s *Service) Play(ctx context.Context, rawChoice string) (PlayResult, error) {
	choice1, err := game.ParseChoice(rawChoice)
	if err != nil {
		return PlayResult{}, err
	}
	choice2 := s.chooser.Choose()

	s.mu.Lock()
	session, ok := s.sessions.Current()
	if !ok {
		s.mu.Unlock()
		return PlayResult{}, game.ErrNoActiveSession
	}

	round, err := game.PlayRound(session, choice1, choice2, s.policy)
	if err != nil {
		s.mu.Unlock()
		return PlayResult{}, err
	}

	var completed leaderboard.GameResult
	if round.GameComplete {
		s.sessions.CompleteSession(round.GameWinner)
		completed = leaderboard.GameResult{
			Player1:      session.Player1,
			Player2:      session.Player2,
			Player1Score: session.Player1Score,
			Player2Score: session.Player2Score,
			Winner:       soleWinner(round.GameWinner),
		}
	}
	_, lastWinner := s.sessions.CurrentState()
	s.mu.Unlock()

	result := PlayResult{RoundResult: round, LastWinner: lastWinner}

	s.publish(sse.EventRoundPlayed, map[string]any{
		"round_number":  round.RoundNumber,
		"round_winner":  round.Outcome,
		"player1_score": round.Player1Score,
		"player2_score": round.Player2Score,
		"game_complete": round.GameComplete,
	})

	if round.GameComplete {
		log.Printf("game complete: winner=%s score=%d-%d rounds=%d",
			round.GameWinner, round.Player1Score, round.Player2Score, round.RoundNumber)
		if err := s.board.RecordGame(ctx, completed); err != nil {
			log.Printf("record completed game: %v", err)
			return result, fmt.Errorf("record completed game: %w", err)
		}
		s.publish(sse.EventGameComplete, map[string]string{
			"game_winner": round.GameWinner,
		})
	}

	return result, nil
}

// soleWinner strips the tie marker; a tied game has no sole winner.
func soleWinner(winner string) string {
	if winner == models.TieMarker {
		return ""
	}
	return winner
}

// State returns the current session snapshot and the retained winner.
func (s *Service) State() StateSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, lastWinner := s.sessions.CurrentState()
	snap := StateSnapshot{GameActive: active, LastWinner: lastWinner}
	if session, ok := s.sessions.Current(); ok {
		snap.Player1 = session.Player1
		snap.Player2 = session.Player2
		snap.Player1Score = session.Player1Score
		snap.Player2Score = session.Player2Score
		snap.RoundNumber = session.RoundNumber
		snap.StartedAt = session.StartedAt
	}
	return snap
}

// Leaderboard returns both read projections of the leaderboard.
func (s *Service) Leaderboard(ctx context.Context) (byName, byScore []models.LeaderboardEntry, err error) {
	byName, err = s.board.ByName(ctx)
	if err != nil {
		return nil, nil, err
	}
	byScore, err = s.board.ByScore(ctx)
	if err != nil {
		return nil, nil, err
	}
	return byName, byScore, nil
}

// RegisterPlayer creates a leaderboard entry for a new player name. It
// returns the normalized name and whether a new entry was created.
func (s *Service) RegisterPlayer(ctx context.Context, name string) (string, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false, game.Validationf("player name is required")
	}
	created, err := s.board.RegisterPlayer(ctx, name)
	if err != nil {
		return "", false, err
	}
	if created {
		s.publish(sse.EventPlayerRegistered, map[string]string{"player": name})
	}
	return name, created, nil
}

func (s *Service) publish(event string, payload any) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(event, payload)
}
