// Package audio provides the fire-and-forget audio port used by the game
// controller, plus terminal implementations of it.
package audio

import "github.com/charmbracelet/log"

// Track and cue identifiers shared with the asset manifest.
const (
	TrackMenu    = "menu"
	TrackGame    = "game"
	CueCatch     = "catch"
	CueMiss      = "miss"
	CueLevelUp   = "levelup"
	CueGameOver  = "gameover"
	CueNewRecord = "record"
)

// Port plays and stops tracks. Calls never fail from the caller's point of
// view: implementations swallow playback errors.
type Port interface {
	Play(track string, loop bool)
	Stop(track string)
}

// Cue describes how a track is rendered on a terminal.
type Cue struct {
	Label string `yaml:"label"` // Shown in the HUD while a looping track plays
	Bells int    `yaml:"bells"` // Number of BEL characters emitted on play
}

// Nop is a Port that does nothing.
type Nop struct{}

// Play implements Port.
func (Nop) Play(string, bool) {}

// Stop implements Port.
func (Nop) Stop(string) {}

// logged wraps a Port and logs every call at debug level.
type logged struct {
	next   Port
	logger *log.Logger
}

// WithLogging returns a Port that logs calls before forwarding them.
func WithLogging(next Port, logger *log.Logger) Port {
	if logger == nil {
		return next
	}
	return logged{next: next, logger: logger}
}

func (l logged) Play(track string, loop bool) {
	l.logger.Debug("play", "track", track, "loop", loop)
	l.next.Play(track, loop)
}

func (l logged) Stop(track string) {
	l.logger.Debug("stop", "track", track)
	l.next.Stop(track)
}
