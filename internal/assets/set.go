package assets

import (
	"sort"
	"unicode/utf8"

	"github.com/vovakirdan/tui-catch/internal/audio"
	"github.com/vovakirdan/tui-catch/internal/core"
)

// builtinGlyphs cover the known sprite ids when even the manifest is gone.
var builtinGlyphs = map[string]rune{
	"actor": '=',
	"apple": '@',
	"star":  '*',
	"gem":   '◆',
	"coin":  'o',
}

// Set is the result of a load: everything that loaded plus what failed.
type Set struct {
	Sprites map[string]Sprite
	Sounds  map[string]audio.Cue
	Failed  []Failure

	fallbacks map[string]Sprite
}

func newSet() *Set {
	return &Set{
		Sprites:   make(map[string]Sprite),
		Sounds:    make(map[string]audio.Cue),
		fallbacks: make(map[string]Sprite),
	}
}

func (s *Set) setFallback(entry SpriteEntry) {
	glyph, _ := utf8.DecodeRuneInString(entry.Fallback)
	if entry.Fallback == "" {
		glyph = '#'
		if r, ok := builtinGlyphs[entry.ID]; ok {
			glyph = r
		}
	}
	color, _ := core.ParseColor(entry.Color)
	s.fallbacks[entry.ID] = fallbackSprite(entry.ID, glyph, color)
}

// Sprite returns the sprite for id, or a one-rune fallback when the asset is
// unavailable. ok reports whether the real asset loaded.
func (s *Set) Sprite(id string) (sprite Sprite, ok bool) {
	if sp, found := s.Sprites[id]; found {
		return sp, true
	}
	if sp, found := s.fallbacks[id]; found {
		return sp, false
	}
	glyph, found := builtinGlyphs[id]
	if !found {
		glyph = '#'
	}
	return fallbackSprite(id, glyph, core.ColorDefault), false
}

// Cues returns the loaded sound cues, for an audio.Bell.
func (s *Set) Cues() map[string]audio.Cue {
	out := make(map[string]audio.Cue, len(s.Sounds))
	for id, cue := range s.Sounds {
		out[id] = cue
	}
	return out
}

// FailedIDs returns the ids of failed assets in sorted order.
func (s *Set) FailedIDs() []string {
	ids := make([]string, 0, len(s.Failed))
	for _, f := range s.Failed {
		ids = append(ids, f.ID)
	}
	sort.Strings(ids)
	return ids
}

// fallbackSprite is a 1x1 sprite, usually drawn with Fill.
func fallbackSprite(id string, glyph rune, color core.Color) Sprite {
	return Sprite{ID: id, Rows: [][]rune{{glyph}}, Color: color}
}
