package game

import (
	"strings"

	"github.com/aaronzipp/rock-paper-showdown/internal/models"
)

// beats maps each choice to the choice it defeats.
var beats = map[models.Choice]models.Choice{
	models.Rock:     models.Scissors,
	models.Scissors: models.Paper,
	models.Paper:    models.Rock,
}

// Resolve computes the outcome of a single round. It is total over the
// choice set; callers validate choices before invoking it.
func Resolve(choice1, choice2 models.Choice) models.RoundOutcome {
	if choice1 == choice2 {
		return models.OutcomeTie
	}
	if beats[choice1] == choice2 {
		return models.OutcomePlayer1
	}
	return models.OutcomePlayer2
}

// ParseChoice normalizes raw client input into a Choice.
func ParseChoice(raw string) (models.Choice, error) {
	choice := models.Choice(strings.ToLower(strings.TrimSpace(raw)))
	if !choice.Valid() {
		return "", ErrInvalidChoice
	}
	return choice, nil
}
