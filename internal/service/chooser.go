package service

import (
	"math/rand"

	"github.com/aaronzipp/rock-paper-showdown/internal/models"
)

// Chooser supplies player 2's choice for each round. The server plays the
// opponent; tests inject a scripted chooser.
type Chooser interface {
	Choose() models.Choice
}

// RandomChooser picks uniformly among the valid choices.
type RandomChooser struct{}

// Choose returns a random choice
func (RandomChooser) Choose() models.Choice {
	choices := models.Choices()
	return choices[rand.Intn(len(choices))]
}
