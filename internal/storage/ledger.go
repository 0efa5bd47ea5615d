package storage

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-catch/internal/games/catch"
)

// Ledger is a catch.HighScore backed by a Store. It keeps the best score in
// memory and records every submitted run. Safe for concurrent use by SSH
// sessions.
type Ledger struct {
	mu     sync.Mutex
	store  *Store
	best   int
	logger *log.Logger
}

var _ catch.HighScore = (*Ledger)(nil)

// NewLedger creates a ledger seeded with the store's current high score.
func NewLedger(store *Store, logger *log.Logger) (*Ledger, error) {
	best, err := store.HighScore()
	if err != nil {
		return nil, fmt.Errorf("storage: load high score: %w", err)
	}
	return &Ledger{
		store:  store,
		best:   best,
		logger: logger,
	}, nil
}

// Best implements catch.HighScore.
func (l *Ledger) Best() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.best
}

// Submit implements catch.HighScore. A failed write is logged and the
// in-memory high score is still updated.
func (l *Ledger) Submit(result catch.RunResult) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	raised := result.Score > l.best
	if raised {
		l.best = result.Score
	}

	id, err := l.store.SaveRun(result)
	if err != nil {
		if l.logger != nil {
			l.logger.Warn("cannot record run", "error", err)
		}
		return l.best, raised
	}
	if l.logger != nil {
		l.logger.Debug("run recorded", "id", id, "score", result.Score)
	}
	return l.best, raised
}
