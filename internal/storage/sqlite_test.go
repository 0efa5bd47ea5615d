package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-catch/internal/games/catch"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	store, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreMemoryDefault(t *testing.T) {
	store, err := Open("")
	if err != nil {
		t.Fatalf("Open(\"\") failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(catch.RunResult{Player: "p", Score: 3, Level: 1}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	// Same single connection must see the row
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 3 {
		t.Errorf("HighScore() = %d, expected 3", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openMemory(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	step := 0
	store.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Minute)
	}

	results := []catch.RunResult{
		{Player: "ada", Score: 12, Level: 2, Ticks: 900, Seed: 1},
		{Player: "bob", Score: 30, Level: 4, Ticks: 2000, Seed: 2},
		{Player: "ada", Score: 5, Level: 1, Ticks: 400, Seed: 3},
	}
	for _, r := range results {
		id, err := store.SaveRun(r)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("SaveRun() id %q is not a uuid: %v", id, err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	wantScores := []int{30, 12, 5}
	for i, want := range wantScores {
		if top[i].Score != want {
			t.Errorf("top[%d].Score = %d, expected %d", i, top[i].Score, want)
		}
	}
	if top[0].Player != "bob" || top[0].Level != 4 || top[0].Ticks != 2000 || top[0].Seed != 2 {
		t.Errorf("top[0] = %+v, fields not round-tripped", top[0])
	}
	if !top[0].CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("top[0].CreatedAt = %v, expected %v", top[0].CreatedAt, base.Add(2*time.Minute))
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 5 || recent[1].Score != 30 {
		t.Errorf("RecentRuns(2) = %+v, expected newest first", recent)
	}
}

func TestStoreHighScoreAndSummary(t *testing.T) {
	store := openMemory(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty ledger HighScore() = %d, expected 0", high)
	}

	sum, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Runs != 0 || !sum.LastPlayed.IsZero() {
		t.Errorf("empty Summary() = %+v", sum)
	}

	for _, score := range []int{10, 20, 30} {
		if _, err := store.SaveRun(catch.RunResult{Player: "p", Score: score, Level: 1 + score/10}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	sum, err = store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Runs != 3 || sum.HighScore != 30 || sum.AvgScore != 20 || sum.BestLevel != 4 {
		t.Errorf("Summary() = %+v", sum)
	}
	if sum.LastPlayed.IsZero() {
		t.Error("Summary().LastPlayed should be set")
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if high, _ := store.HighScore(); high != 0 {
		t.Errorf("HighScore() after clear = %d", high)
	}
}

func TestStorePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(catch.RunResult{Player: "p", Score: 42, Level: 5}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 42 {
		t.Errorf("HighScore() = %d, expected 42", high)
	}
}

func TestLedgerImplementsHighScore(t *testing.T) {
	store := openMemory(t)
	if _, err := store.SaveRun(catch.RunResult{Player: "old", Score: 15, Level: 2}); err != nil {
		t.Fatal(err)
	}

	ledger, err := NewLedger(store, nil)
	if err != nil {
		t.Fatalf("NewLedger() failed: %v", err)
	}
	if ledger.Best() != 15 {
		t.Errorf("Best() = %d, expected seeded 15", ledger.Best())
	}

	if got, raised := ledger.Submit(catch.RunResult{Player: "a", Score: 9}); got != 15 || raised {
		t.Errorf("Submit(9) = (%d, %v), expected (15, false)", got, raised)
	}
	if got, raised := ledger.Submit(catch.RunResult{Player: "b", Score: 21}); got != 21 || !raised {
		t.Errorf("Submit(21) = (%d, %v), expected (21, true)", got, raised)
	}
	if _, raised := ledger.Submit(catch.RunResult{Player: "c", Score: 21}); raised {
		t.Error("tying the high score should not count as raising it")
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 4 {
		t.Errorf("ledger recorded %d runs, expected 4", len(runs))
	}
}

func TestLedgerConcurrentSubmit(t *testing.T) {
	store := openMemory(t)
	ledger, err := NewLedger(store, nil)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			ledger.Submit(catch.RunResult{Player: "p", Score: score})
		}(i)
	}
	wg.Wait()

	if ledger.Best() != 19 {
		t.Errorf("Best() = %d, expected 19", ledger.Best())
	}
	sum, err := store.Summary()
	if err != nil {
		t.Fatal(err)
	}
	if sum.Runs != 20 {
		t.Errorf("Runs = %d, expected 20", sum.Runs)
	}
}
