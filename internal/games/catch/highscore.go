package catch

import "sync"

// RunResult is the published outcome of a finished run.
type RunResult struct {
	Player string
	Score  int
	Level  int
	Ticks  uint64
	Seed   int64
}

// HighScore tracks the best score across runs. Implementations must be safe
// for concurrent use because SSH sessions share one tracker.
type HighScore interface {
	// Best returns the current high score.
	Best() int
	// Submit records a finished run and returns the resulting high score,
	// max(previous, result.Score). raised is true only when this run moved
	// the high score, decided under the same lock as the update.
	Submit(result RunResult) (best int, raised bool)
}

// MemoryHighScore is a process-wide in-memory high score.
type MemoryHighScore struct {
	mu   sync.Mutex
	best int
}

// NewMemoryHighScore creates a tracker starting at zero.
func NewMemoryHighScore() *MemoryHighScore {
	return &MemoryHighScore{}
}

// Best implements HighScore.
func (h *MemoryHighScore) Best() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.best
}

// Submit implements HighScore.
func (h *MemoryHighScore) Submit(result RunResult) (int, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if result.Score > h.best {
		h.best = result.Score
		return h.best, true
	}
	return h.best, false
}
