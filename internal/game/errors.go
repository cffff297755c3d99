package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChoice rejects a choice outside the rock/paper/scissors set.
	ErrInvalidChoice = errors.New("invalid choice: must be rock, paper, or scissors")

	// ErrNoActiveSession rejects a round when no game has been started.
	ErrNoActiveSession = errors.New("no active game: start a new game first")

	// ErrGameComplete rejects a round on a session that already finished.
	ErrGameComplete = errors.New("game is complete: start a new game")
)

// ValidationError reports rejected caller input, such as empty or duplicate
// player names. It is never fatal; the caller can correct the input and retry.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validationf builds a ValidationError with a formatted message.
func Validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
