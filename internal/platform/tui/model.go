package tui

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-catch/internal/assets"
	"github.com/vovakirdan/tui-catch/internal/audio"
	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/games/catch"
	"github.com/vovakirdan/tui-catch/internal/replay"
)

// Options configures a Model.
type Options struct {
	Config    config.CatchConfig
	Runtime   core.RuntimeConfig
	Assets    fs.FS           // Defaults to the embedded assets
	HighScore catch.HighScore // Shared across SSH sessions; defaults to in-memory
	Player    string
	Bell      io.Writer // Receives BEL cues; nil keeps the game silent
	Record    string    // Replay path; later runs of the process get a numbered suffix
	Context   context.Context
	Logger    *log.Logger

	// AssetWorkers bounds concurrent asset reads; zero keeps the loader default.
	AssetWorkers int
}

// assetProgressMsg reports loader progress.
type assetProgressMsg struct {
	loaded, total int
}

// assetsLoadedMsg carries the finished asset set.
type assetsLoadedMsg struct {
	set *assets.Set
	err error
}

// loadingDoneMsg fires once the loading screen has been shown long enough.
type loadingDoneMsg struct{}

// Model is the Bubble Tea model for one player. It owns the session and is
// the only writer of its state.
type Model struct {
	session  *catch.Session
	runtime  core.RuntimeConfig
	loader   *assets.Loader
	assets   *assets.Set
	bell     *audio.Bell
	logger   *log.Logger
	ctx      context.Context
	progress chan assetProgressMsg

	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	bar      progress.Model
	held     heldIntents
	gen      uint64 // Tick generation, bumped whenever ticking stops or restarts
	paused   bool
	quitting bool

	loaded, total int
	runs          int
	player        string
	recordPath    string
	recorder      *replay.Recorder
	finishedAt    time.Time
}

// NewModel creates a model in the loading state.
func NewModel(opts Options) Model {
	defaults := core.DefaultConfig()
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = defaults.TickRate
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = defaults.ScreenW, defaults.ScreenH
	}
	if opts.Assets == nil {
		opts.Assets = assets.Embedded()
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = "local"
	}

	bell := audio.NewBell(opts.Bell, nil, opts.Logger.WithPrefix("audio"))
	sessionOpts := []catch.Option{
		catch.WithAudio(audio.WithLogging(bell, opts.Logger.WithPrefix("audio"))),
		catch.WithLogger(opts.Logger.WithPrefix("session")),
		catch.WithPlayer(opts.Player),
	}
	if opts.HighScore != nil {
		sessionOpts = append(sessionOpts, catch.WithHighScore(opts.HighScore))
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		session: catch.NewSession(opts.Config, sessionOpts...),
		runtime: opts.Runtime,
		loader: assets.NewLoader(opts.Assets,
			assets.WithLogger(opts.Logger.WithPrefix("assets")),
			assets.WithParallelism(opts.AssetWorkers),
		),
		bell:       bell,
		logger:     opts.Logger,
		ctx:        opts.Context,
		progress:   make(chan assetProgressMsg, 16),
		screen:     core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keys:       DefaultKeyMap(),
		help:       h,
		bar:        progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		held:       newHeldIntents(opts.Config.Gameplay.HoldTicks),
		player:     opts.Player,
		recordPath: opts.Record,
	}
}

// Init starts asset loading.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadAssets(), m.waitProgress())
}

// loadAssets runs the loader off the update goroutine and streams progress
// through the progress channel.
func (m Model) loadAssets() tea.Cmd {
	ch := m.progress
	loader := m.loader
	ctx := m.ctx
	return func() tea.Msg {
		defer close(ch)
		set, err := loader.Load(ctx, func(loaded, total int) {
			select {
			case ch <- assetProgressMsg{loaded: loaded, total: total}:
			case <-ctx.Done():
			}
		})
		return assetsLoadedMsg{set: set, err: err}
	}
}

func (m Model) waitProgress() tea.Cmd {
	ch := m.progress
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.bar.Width = min(40, max(msg.Width-10, 10))
		return m, nil

	case assetProgressMsg:
		m.loaded, m.total = msg.loaded, msg.total
		return m, m.waitProgress()

	case assetsLoadedMsg:
		return m.handleAssetsLoaded(msg)

	case loadingDoneMsg:
		if err := m.session.AssetsLoaded(); err != nil {
			m.logger.Error("leave loading", "error", err)
		}
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

func (m Model) handleAssetsLoaded(msg assetsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// Only a cancelled context fails a load; the session is going away.
		m.logger.Warn("asset loading interrupted", "error", msg.err)
	}
	m.assets = msg.set
	if m.assets != nil {
		m.bell.SetCues(m.assets.Cues())
		if n := len(m.assets.Failed); n > 0 {
			m.logger.Warn("assets unavailable, using fallbacks", "count", n, "ids", m.assets.FailedIDs())
		}
	}

	delay := m.session.Config().Loading.DisplayDelay
	if delay <= 0 {
		return m, func() tea.Msg { return loadingDoneMsg{} }
	}
	return m, tea.Tick(delay, func(time.Time) tea.Msg { return loadingDoneMsg{} })
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.gen++
		return m, tea.Quit
	}

	switch m.session.State() {
	case catch.StateMenu:
		if action == core.ActionStart {
			return m.startRun()
		}

	case catch.StatePlaying:
		switch action {
		case core.ActionLeft, core.ActionRight:
			m.held.press(action)
		case core.ActionPause:
			return m.togglePause()
		}

	case catch.StateGameOver:
		switch action {
		case core.ActionStart:
			return m.startRun()
		case core.ActionMenu:
			if err := m.session.ReturnToMenu(); err != nil {
				m.logger.Error("return to menu", "error", err)
			}
		}
	}

	return m, nil
}

// startRun moves the session into playing and arms the first tick.
func (m Model) startRun() (tea.Model, tea.Cmd) {
	seed := m.nextSeed()
	if err := m.session.Start(seed); err != nil {
		m.logger.Error("start run", "error", err)
		return m, nil
	}
	m.runs++
	m.paused = false
	m.held.release()
	if m.recordPath != "" {
		m.recorder = replay.NewRecorder(m.player, seed, m.session.Config())
	}

	m.gen++
	return m, tickCmd(m.runtime.TickRate, m.gen)
}

// nextSeed derives the seed for the next run. A fixed runtime seed makes
// every run of the process reproducible.
func (m Model) nextSeed() int64 {
	if m.runtime.Seed != 0 {
		return m.runtime.Seed + int64(m.runs)
	}
	return time.Now().UnixNano()
}

// togglePause suspends or resumes the scheduler.
func (m Model) togglePause() (tea.Model, tea.Cmd) {
	m.paused = !m.paused
	m.gen++
	m.held.release()
	if m.paused {
		return m, nil
	}
	return m, tickCmd(m.runtime.TickRate, m.gen)
}

// handleTick runs one simulation step and re-arms the next tick while the
// run is still playing.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.paused || m.quitting || m.session.State() != catch.StatePlaying {
		return m, nil
	}

	in := m.held.frame()
	if m.recorder != nil {
		m.recorder.Record(in)
	}
	m.session.Tick(in)
	m.held.decay()

	if m.session.State() != catch.StatePlaying {
		m.finishRun()
		return m, nil
	}
	return m, tickCmd(m.runtime.TickRate, m.gen)
}

func (m *Model) finishRun() {
	m.finishedAt = time.Now()
	m.held.release()
	if m.recorder == nil {
		return
	}
	m.recorder.Finish(m.session.Snapshot())
	path := replayPath(m.recordPath, m.runs)
	if err := replay.Save(path, m.recorder.Recording()); err != nil {
		m.logger.Warn("cannot save replay", "path", path, "error", err)
	} else {
		m.logger.Info("replay saved", "path", path)
	}
	m.recorder = nil
}

// replayPath numbers the recordings of one process: the first run uses
// path as given, run n > 1 inserts "-n" before the extension.
func replayPath(path string, run int) string {
	if run <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), run, ext)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.session.State() {
	case catch.StateLoading:
		return m.viewLoading()
	case catch.StateMenu:
		return m.viewMenu()
	case catch.StateGameOver:
		return m.viewGameOver()
	default:
		return m.viewPlaying()
	}
}

func (m Model) viewLoading() string {
	percent := 0.0
	if m.total > 0 {
		percent = float64(m.loaded) / float64(m.total)
	} else if m.assets != nil {
		percent = 1
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("C A T C H"))
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("loading assets %d/%d", m.loaded, m.total)))
	return centered(m.runtime.ScreenW, m.runtime.ScreenH, b.String())
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("C A T C H"))
	b.WriteString("\n")
	b.WriteString("Catch what falls. Three misses and you're out.\n\n")
	b.WriteString(fmt.Sprintf("High score: %s\n", accentStyle.Render(humanize.Comma(int64(m.session.HighScore())))))
	if track := m.bell.NowPlaying(); track != "" {
		b.WriteString(dimStyle.Render("♪ " + track))
		b.WriteString("\n")
	}
	if m.assets != nil && len(m.assets.Failed) > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d assets unavailable, using fallbacks", len(m.assets.Failed))))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(accentStyle.Render("Press Enter to start"))

	panel := panelStyle.Render(b.String())
	return centered(m.runtime.ScreenW, m.runtime.ScreenH-1, panel) + "\n" + dimStyle.Render(m.help.View(m.keys))
}

func (m Model) viewPlaying() string {
	status := m.help.View(m.keys)
	banner := ""
	if m.paused {
		status = "press p to resume"
		banner = "PAUSED"
	} else if track := m.bell.NowPlaying(); track != "" {
		status = "♪ " + track + "  " + status
	}
	renderGame(m.screen, m.session.Snapshot(), m.session.Config(), m.assets, status, banner)
	return RenderScreen(m.screen)
}

func (m Model) viewGameOver() string {
	result, _ := m.session.Result()

	var b strings.Builder
	b.WriteString(alertStyle.Render("G A M E   O V E R"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Score  %s\n", accentStyle.Render(humanize.Comma(int64(result.Score)))))
	b.WriteString(fmt.Sprintf("Level  %d\n", result.Level))
	b.WriteString(fmt.Sprintf("High   %s\n", humanize.Comma(int64(m.session.HighScore()))))
	if m.session.NewRecord() {
		b.WriteString(accentStyle.Render("NEW RECORD!"))
		b.WriteString("\n")
	}
	if !m.finishedAt.IsZero() {
		b.WriteString(dimStyle.Render("finished " + humanize.Time(m.finishedAt)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter: play again   m: menu   q: quit"))

	panel := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("9")).
		Padding(1, 4).
		Render(b.String())
	return centered(m.runtime.ScreenW, m.runtime.ScreenH, panel)
}

// Session exposes the controller, for tests and the SSH host.
func (m Model) Session() *catch.Session {
	return m.session
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(opts.Context),
	)

	_, err := p.Run()
	return err
}
