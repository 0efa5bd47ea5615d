package catch

// Stats holds the per-run score, lives and level.
type Stats struct {
	Score int
	Lives int
	Level int
}

// NewStats returns the stats at the start of a run.
func NewStats(startLives int) Stats {
	return Stats{
		Score: 0,
		Lives: startLives,
		Level: 1,
	}
}

// LevelFor returns 1 + floor(score / threshold).
func LevelFor(score, threshold int) int {
	if threshold <= 0 {
		return 1
	}
	return 1 + score/threshold
}
