package models

// Choice is one of the hand signs a player can throw in a round.
type Choice string

const (
	Rock     Choice = "rock"
	Paper    Choice = "paper"
	Scissors Choice = "scissors"
)

// Choices lists every valid choice.
func Choices() []Choice {
	return []Choice{Rock, Paper, Scissors}
}

// Valid reports whether c is a recognized choice.
func (c Choice) Valid() bool {
	switch c {
	case Rock, Paper, Scissors:
		return true
	}
	return false
}

// RoundOutcome identifies which side won a resolved round.
type RoundOutcome string

const (
	OutcomePlayer1 RoundOutcome = "Player1"
	OutcomePlayer2 RoundOutcome = "Player2"
	OutcomeTie     RoundOutcome = "Tie"
)
