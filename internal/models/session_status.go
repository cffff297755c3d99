package models

// SessionStatus represents the current state of a game session
type SessionStatus string

const (
	StatusActive   SessionStatus = "active"
	StatusComplete SessionStatus = "complete"
)
