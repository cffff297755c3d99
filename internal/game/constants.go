package game

const (
	// PolicyTargetScore completes a game when a player reaches the target score
	PolicyTargetScore = "target_score"

	// PolicyFixedRounds completes a game after a fixed number of rounds
	PolicyFixedRounds = "fixed_rounds"

	// DefaultTargetScore is the winning score under the target-score policy
	DefaultTargetScore = 3

	// DefaultTotalRounds is the game length under the fixed-rounds policy
	DefaultTotalRounds = 10
)
