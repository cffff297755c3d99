package models

import "time"

// TieMarker is recorded as the winner of a session that ends with equal
// scores under a fixed-rounds policy.
const TieMarker = "Tie"

// Session represents one match between two named players, from start to
// completion. Player names are fixed for the session's lifetime.
type Session struct {
	ID           string
	Player1      string
	Player2      string
	Player1Score int
	Player2Score int
	RoundNumber  int
	Status       SessionStatus
	Winner       string // player name or TieMarker, set when Status is StatusComplete
	StartedAt    time.Time
}
