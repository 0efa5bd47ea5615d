package catch

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-catch/internal/audio"
	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
)

// Session is the top-level controller. It owns the state machine and the
// world of the current run, and turns step events into audio requests.
// A Session is driven from a single goroutine.
type Session struct {
	cfg     config.CatchConfig
	machine *Machine
	world   *World
	high    HighScore
	audio   audio.Port
	logger  *log.Logger
	player  string

	seed      int64
	result    RunResult
	finished  bool
	newRecord bool
}

// Option configures a Session.
type Option func(*Session)

// WithHighScore sets the high score tracker. Defaults to a private
// in-memory tracker.
func WithHighScore(h HighScore) Option {
	return func(s *Session) { s.high = h }
}

// WithAudio sets the audio port. Defaults to audio.Nop.
func WithAudio(p audio.Port) Option {
	return func(s *Session) { s.audio = p }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithPlayer sets the player name recorded with results.
func WithPlayer(name string) Option {
	return func(s *Session) { s.player = name }
}

// NewSession creates a controller in the loading state.
func NewSession(cfg config.CatchConfig, opts ...Option) *Session {
	s := &Session{
		cfg:     cfg,
		machine: NewMachine(),
		audio:   audio.Nop{},
		player:  "local",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.high == nil {
		s.high = NewMemoryHighScore()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// AssetsLoaded moves from loading to menu and starts the menu track.
func (s *Session) AssetsLoaded() error {
	if err := s.machine.Transition(StateMenu); err != nil {
		return err
	}
	s.audio.Play(audio.TrackMenu, true)
	s.logger.Debug("assets loaded")
	return nil
}

// Start begins a new run from menu or gameover with a fully reset world.
func (s *Session) Start(seed int64) error {
	from := s.machine.State()
	if err := s.machine.Transition(StatePlaying); err != nil {
		return err
	}

	rng := NewSimpleRNG(seed)
	if s.world == nil {
		s.world = NewWorld(s.cfg, rng)
	} else {
		s.world.Reset(rng)
	}
	s.seed = seed
	s.finished = false
	s.newRecord = false
	s.result = RunResult{}

	if from == StateMenu {
		s.audio.Stop(audio.TrackMenu)
	}
	s.audio.Play(audio.TrackGame, true)
	s.logger.Info("run started", "player", s.player, "seed", seed)
	return nil
}

// Tick runs one simulation step. Outside the playing state it does nothing.
// A step that ends the run moves the session to gameover before returning.
func (s *Session) Tick(in core.InputFrame) []Event {
	if s.machine.State() != StatePlaying {
		return nil
	}

	events := s.world.Step(in)
	for _, ev := range events {
		switch ev.Type {
		case EventCaught:
			s.audio.Play(audio.CueCatch, false)
		case EventMissed:
			s.audio.Play(audio.CueMiss, false)
		case EventLevelUp:
			s.audio.Play(audio.CueLevelUp, false)
			s.logger.Debug("level up", "level", ev.Level, "score", ev.Score)
		case EventGameOver:
			s.finish()
		}
	}
	return events
}

// finish handles playing -> gameover.
func (s *Session) finish() {
	if err := s.machine.Transition(StateGameOver); err != nil {
		// Unreachable while Tick only steps in the playing state.
		s.logger.Error("finish run", "error", err)
		return
	}

	stats := s.world.Stats()
	s.result = RunResult{
		Player: s.player,
		Score:  stats.Score,
		Level:  stats.Level,
		Ticks:  s.world.Tick(),
		Seed:   s.seed,
	}
	s.finished = true

	best, raised := s.high.Submit(s.result)
	s.newRecord = raised

	s.audio.Stop(audio.TrackGame)
	s.audio.Play(audio.CueGameOver, false)
	if s.newRecord {
		s.audio.Play(audio.CueNewRecord, false)
	}

	s.logger.Info("run finished",
		"player", s.player,
		"score", s.result.Score,
		"level", s.result.Level,
		"ticks", s.result.Ticks,
		"high", best,
	)
}

// ReturnToMenu moves from gameover to menu.
func (s *Session) ReturnToMenu() error {
	if err := s.machine.Transition(StateMenu); err != nil {
		return err
	}
	s.audio.Play(audio.TrackMenu, true)
	return nil
}

// State returns the current game state.
func (s *Session) State() State {
	return s.machine.State()
}

// Result returns the last finished run. ok is false until a run has ended.
func (s *Session) Result() (result RunResult, ok bool) {
	return s.result, s.finished
}

// NewRecord reports whether the last finished run raised the high score.
func (s *Session) NewRecord() bool {
	return s.newRecord
}

// HighScore returns the current high score.
func (s *Session) HighScore() int {
	return s.high.Best()
}

// Config returns the session config.
func (s *Session) Config() config.CatchConfig {
	return s.cfg
}

// Snapshot returns a read-only view for rendering. Before the first run the
// world fields are zero.
func (s *Session) Snapshot() Snapshot {
	var snap Snapshot
	if s.world != nil {
		snap = s.world.Snapshot()
	}
	snap.State = s.machine.State().String()
	snap.HighScore = s.high.Best()
	return snap
}
