package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/games/catch"
	"github.com/vovakirdan/tui-catch/internal/replay"
)

func testOptions() Options {
	cfg := config.DefaultCatchConfig()
	cfg.Loading.DisplayDelay = 0
	return Options{
		Config:  cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  80,
			ScreenH:  24,
			TickRate: 60,
			Seed:     42,
		},
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

// loadedModel drives a model through loading into the menu.
func loadedModel(t *testing.T, opts Options) Model {
	t.Helper()
	m := NewModel(opts)

	msg := m.loadAssets()()
	loaded, ok := msg.(assetsLoadedMsg)
	if !ok {
		t.Fatalf("loadAssets produced %T", msg)
	}

	m, cmd := update(t, m, loaded)
	if cmd == nil {
		t.Fatal("expected a command to leave loading")
	}
	m, _ = update(t, m, cmd())

	if m.session.State() != catch.StateMenu {
		t.Fatalf("state = %s, expected menu", m.session.State())
	}
	return m
}

func TestModelLoadingToMenu(t *testing.T) {
	m := NewModel(testOptions())
	if !strings.Contains(m.View(), "loading assets") {
		t.Error("loading view should show progress")
	}

	m = loadedModel(t, testOptions())
	if m.assets == nil || len(m.assets.Failed) != 0 {
		t.Errorf("embedded assets should load cleanly")
	}
	if !strings.Contains(m.View(), "Press Enter to start") {
		t.Error("menu view missing start prompt")
	}
}

func TestModelMissingAssetsStillReachMenu(t *testing.T) {
	opts := testOptions()
	opts.Assets = fstest.MapFS{}
	m := loadedModel(t, opts)

	if len(m.assets.Failed) == 0 {
		t.Error("missing manifest should be recorded")
	}
	if !strings.Contains(m.View(), "using fallbacks") {
		t.Error("menu should mention fallbacks")
	}
}

func TestModelProgressMessages(t *testing.T) {
	m := NewModel(testOptions())
	m, cmd := update(t, m, assetProgressMsg{loaded: 3, total: 12})
	if m.loaded != 3 || m.total != 12 {
		t.Errorf("progress = %d/%d", m.loaded, m.total)
	}
	if cmd == nil {
		t.Error("progress should re-arm the listener")
	}
}

func TestModelTickScheduling(t *testing.T) {
	m := loadedModel(t, testOptions())

	// Ticks in the menu are ignored
	m, cmd := update(t, m, TickMsg{Gen: m.gen})
	if cmd != nil {
		t.Error("menu should not arm ticks")
	}

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.session.State() != catch.StatePlaying {
		t.Fatalf("state = %s, expected playing", m.session.State())
	}
	if cmd == nil {
		t.Fatal("start should arm the first tick")
	}

	m, cmd = update(t, m, TickMsg{Gen: m.gen})
	if m.session.Snapshot().Tick != 1 {
		t.Errorf("tick = %d, expected 1", m.session.Snapshot().Tick)
	}
	if cmd == nil {
		t.Error("playing should re-arm the tick")
	}

	// Stale generation is dropped
	m, cmd = update(t, m, TickMsg{Gen: m.gen - 1})
	if cmd != nil || m.session.Snapshot().Tick != 1 {
		t.Error("stale tick should be dropped")
	}

	// Pause stops the scheduler
	m, cmd = update(t, m, runeKey('p'))
	if !m.paused || cmd != nil {
		t.Fatal("pause should stop ticking")
	}
	m, cmd = update(t, m, TickMsg{Gen: m.gen})
	if cmd != nil || m.session.Snapshot().Tick != 1 {
		t.Error("paused model should not step")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("playing view should show pause status")
	}

	m, cmd = update(t, m, runeKey('p'))
	if m.paused || cmd == nil {
		t.Fatal("unpause should re-arm the tick")
	}
	m, _ = update(t, m, TickMsg{Gen: m.gen})
	if m.session.Snapshot().Tick != 2 {
		t.Errorf("tick = %d, expected 2", m.session.Snapshot().Tick)
	}
}

func TestModelMovementKeys(t *testing.T) {
	m := loadedModel(t, testOptions())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	startX := m.session.Snapshot().ActorX
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, TickMsg{Gen: m.gen})

	if got := m.session.Snapshot().ActorX; got != startX-m.session.Config().Actor.Speed {
		t.Errorf("actor X = %v, expected %v", got, startX-m.session.Config().Actor.Speed)
	}
}

// playUntilOver ticks a running model to game over, nudging right now and then.
func playUntilOver(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 50000 && m.session.State() == catch.StatePlaying; i++ {
		if i%90 == 0 {
			m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
		}
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg{Gen: m.gen})
		if m.session.State() == catch.StateGameOver && cmd != nil {
			t.Fatal("game over must not arm another tick")
		}
	}
	if m.session.State() != catch.StateGameOver {
		t.Fatal("run did not end")
	}
	return m
}

func loadVerified(t *testing.T, path string, seed int64) {
	t.Helper()
	rec, err := replay.Load(path)
	if err != nil {
		t.Fatalf("replay.Load(%s) failed: %v", filepath.Base(path), err)
	}
	if rec.Seed != seed {
		t.Errorf("%s: recorded seed = %d, expected %d", filepath.Base(path), rec.Seed, seed)
	}
	if err := replay.Verify(rec); err != nil {
		t.Errorf("%s: replay.Verify() failed: %v", filepath.Base(path), err)
	}
}

func TestModelFullRunRecordsReplay(t *testing.T) {
	dir := t.TempDir()
	opts := testOptions()
	opts.Record = filepath.Join(dir, "run.catch")
	var bell bytes.Buffer
	opts.Bell = &bell

	m := loadedModel(t, opts)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = playUntilOver(t, m)

	if !strings.Contains(m.View(), "G A M E   O V E R") {
		t.Error("game over view missing")
	}
	if !bytes.Contains(bell.Bytes(), []byte("\a\a")) {
		t.Error("game over cue should ring the bell")
	}
	loadVerified(t, opts.Record, 42)

	// Back to menu, then a second run uses the next seed and its own file
	m, _ = update(t, m, runeKey('m'))
	if m.session.State() != catch.StateMenu {
		t.Fatalf("state = %s, expected menu", m.session.State())
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.session.State() != catch.StatePlaying || m.runs != 2 {
		t.Fatalf("second run not started: state=%s runs=%d", m.session.State(), m.runs)
	}
	m = playUntilOver(t, m)

	loadVerified(t, filepath.Join(dir, "run-2.catch"), 43)
	loadVerified(t, opts.Record, 42)
}

func TestReplayPath(t *testing.T) {
	tests := []struct {
		path string
		run  int
		want string
	}{
		{"run.catch", 1, "run.catch"},
		{"run.catch", 2, "run-2.catch"},
		{"out/run.catch", 12, "out/run-12.catch"},
		{"run", 3, "run-3"},
		{"run.catch", 0, "run.catch"},
	}
	for _, tc := range tests {
		if got := replayPath(tc.path, tc.run); got != tc.want {
			t.Errorf("replayPath(%q, %d) = %q, expected %q", tc.path, tc.run, got, tc.want)
		}
	}
}

func TestModelSharedHighScore(t *testing.T) {
	high := catch.NewMemoryHighScore()
	high.Submit(catch.RunResult{Score: 99})

	opts := testOptions()
	opts.HighScore = high
	m := loadedModel(t, opts)

	if !strings.Contains(m.View(), "99") {
		t.Error("menu should show the shared high score")
	}
}

func TestModelQuit(t *testing.T) {
	m := loadedModel(t, testOptions())
	m, cmd := update(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestEmbeddedAssetsUsedByDefault(t *testing.T) {
	m := NewModel(testOptions())
	set, err := m.loader.Load(t.Context(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := set.Sprite("actor"); !ok {
		t.Error("default loader should read embedded assets")
	}
}
