package audio

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Bell is a terminal Port: one-shot cues ring the terminal bell, looping
// tracks are only remembered so the HUD can show what is "playing".
type Bell struct {
	w       io.Writer
	cues    map[string]Cue
	logger  *log.Logger
	current string
}

// NewBell creates a Bell writing to w. Tracks without a cue are silent.
func NewBell(w io.Writer, cues map[string]Cue, logger *log.Logger) *Bell {
	if cues == nil {
		cues = make(map[string]Cue)
	}
	return &Bell{
		w:      w,
		cues:   cues,
		logger: logger,
	}
}

// SetCues replaces the cue table, typically once assets have loaded.
func (b *Bell) SetCues(cues map[string]Cue) {
	if cues == nil {
		cues = make(map[string]Cue)
	}
	b.cues = cues
}

// Play implements Port.
func (b *Bell) Play(track string, loop bool) {
	if loop {
		b.current = track
		return
	}

	cue, ok := b.cues[track]
	if !ok || cue.Bells <= 0 || b.w == nil {
		return
	}

	if _, err := io.WriteString(b.w, strings.Repeat("\a", cue.Bells)); err != nil && b.logger != nil {
		// Playback failures never reach the game.
		b.logger.Debug("bell failed", "track", track, "error", err)
	}
}

// Stop implements Port.
func (b *Bell) Stop(track string) {
	if b.current == track {
		b.current = ""
	}
}

// NowPlaying returns the label of the current looping track, or "".
func (b *Bell) NowPlaying() string {
	if b.current == "" {
		return ""
	}
	if cue, ok := b.cues[b.current]; ok && cue.Label != "" {
		return cue.Label
	}
	return b.current
}
