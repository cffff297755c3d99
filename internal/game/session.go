package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/aaronzipp/rock-paper-showdown/internal/models"
)

// RoundResult is everything the presentation layer needs to render one
// resolved round; no separate read is required.
type RoundResult struct {
	RoundNumber   int
	Player1Choice models.Choice
	Player2Choice models.Choice
	Outcome       models.RoundOutcome
	Player1Score  int
	Player2Score  int
	GameComplete  bool
	GameWinner    string // player name or models.TieMarker, set when GameComplete
}

// ValidatePlayers checks the session-start name rules: both names non-empty
// and mutually distinct (case-sensitive).
func ValidatePlayers(player1, player2 string) error {
	if player1 == "" || player2 == "" {
		return Validationf("both player names are required")
	}
	if player1 == player2 {
		return Validationf("players must have different names")
	}
	return nil
}

// NewSession creates an active session for two validated player names.
func NewSession(player1, player2 string) *models.Session {
	return &models.Session{
		ID:        uuid.New().String(),
		Player1:   player1,
		Player2:   player2,
		Status:    models.StatusActive,
		StartedAt: time.Now(),
	}
}

// PlayRound resolves one round and advances the session state machine.
// Ties award no points. When the policy's completion condition is met the
// session transitions to Complete, irreversibly; further rounds fail with
// ErrGameComplete and leave the session untouched.
func PlayRound(s *models.Session, choice1, choice2 models.Choice, policy Policy) (RoundResult, error) {
	if s == nil {
		return RoundResult{}, ErrNoActiveSession
	}
	if s.Status != models.StatusActive {
		return RoundResult{}, ErrGameComplete
	}
	if !choice1.Valid() || !choice2.Valid() {
		return RoundResult{}, ErrInvalidChoice
	}

	outcome := Resolve(choice1, choice2)
	s.RoundNumber++
	switch outcome {
	case models.OutcomePlayer1:
		s.Player1Score++
	case models.OutcomePlayer2:
		s.Player2Score++
	}

	result := RoundResult{
		RoundNumber:   s.RoundNumber,
		Player1Choice: choice1,
		Player2Choice: choice2,
		Outcome:       outcome,
		Player1Score:  s.Player1Score,
		Player2Score:  s.Player2Score,
	}

	if done, winner := policy.Evaluate(s); done {
		s.Status = models.StatusComplete
		s.Winner = winner
		result.GameComplete = true
		result.GameWinner = winner
	}

	return result, nil
}
