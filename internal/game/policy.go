package game

import (
	"fmt"

	"github.com/aaronzipp/rock-paper-showdown/internal/models"
)

// Policy decides when a session is complete and who won. Exactly one policy
// is active per process.
type Policy struct {
	Mode        string
	TargetScore int
	TotalRounds int
}

// DefaultPolicy is first-to-three.
func DefaultPolicy() Policy {
	return Policy{
		Mode:        PolicyTargetScore,
		TargetScore: DefaultTargetScore,
		TotalRounds: DefaultTotalRounds,
	}
}

// NewPolicy validates a configured completion policy.
func NewPolicy(mode string, targetScore, totalRounds int) (Policy, error) {
	switch mode {
	case PolicyTargetScore:
		if targetScore < 1 {
			return Policy{}, fmt.Errorf("target score must be at least 1, got %d", targetScore)
		}
	case PolicyFixedRounds:
		if totalRounds < 1 {
			return Policy{}, fmt.Errorf("total rounds must be at least 1, got %d", totalRounds)
		}
	default:
		return Policy{}, fmt.Errorf("unknown game policy %q", mode)
	}
	return Policy{Mode: mode, TargetScore: targetScore, TotalRounds: totalRounds}, nil
}

// Evaluate reports whether the session is finished and, if so, the final
// winner: a player name, or models.TieMarker for a tied fixed-rounds final.
// The target-score policy cannot end in a tie.
func (p Policy) Evaluate(s *models.Session) (bool, string) {
	switch p.Mode {
	case PolicyFixedRounds:
		if s.RoundNumber < p.TotalRounds {
			return false, ""
		}
		switch {
		case s.Player1Score > s.Player2Score:
			return true, s.Player1
		case s.Player2Score > s.Player1Score:
			return true, s.Player2
		default:
			return true, models.TieMarker
		}
	default: // PolicyTargetScore
		if s.Player1Score >= p.TargetScore {
			return true, s.Player1
		}
		if s.Player2Score >= p.TargetScore {
			return true, s.Player2
		}
		return false, ""
	}
}
