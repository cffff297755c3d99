package sse

// SSE event type constants
const (
	EventGameStarted      = "game-started"
	EventRoundPlayed      = "round-played"
	EventGameComplete     = "game-complete"
	EventPlayerRegistered = "player-registered"
)
