package assets

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-catch/internal/core"
)

var errEmptySprite = errors.New("empty sprite")

// Sprite is plain-text glyph art, one row per line.
type Sprite struct {
	ID    string
	Rows  [][]rune
	Color core.Color
}

// Width returns the widest row in runes.
func (s Sprite) Width() int {
	w := 0
	for _, row := range s.Rows {
		w = max(w, len(row))
	}
	return w
}

// Height returns the number of rows.
func (s Sprite) Height() int {
	return len(s.Rows)
}

// ParseSprite reads glyph art. Trailing whitespace and trailing blank lines
// are dropped; leading spaces are kept for alignment.
func ParseSprite(id string, data []byte) (Sprite, error) {
	if !utf8.Valid(data) {
		return Sprite{}, errors.New("sprite is not valid UTF-8")
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(text, "\n")

	rows := make([][]rune, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []rune(strings.TrimRight(line, " \t")))
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return Sprite{}, errEmptySprite
	}

	return Sprite{ID: id, Rows: rows}, nil
}

// Draw renders the sprite centered in the given cell rectangle, clipped to
// it. Spaces in the art are transparent.
func (s Sprite) Draw(scr *core.Screen, x, y, w, h int) {
	offX := (w - s.Width()) / 2
	offY := (h - s.Height()) / 2

	for ry, row := range s.Rows {
		cy := ry + offY
		if cy < 0 || cy >= h {
			continue
		}
		for rx, r := range row {
			cx := rx + offX
			if cx < 0 || cx >= w || r == ' ' {
				continue
			}
			scr.SetColored(x+cx, y+cy, r, s.Color)
		}
	}
}

// Fill covers the whole rectangle with the sprite's first rune.
func (s Sprite) Fill(scr *core.Screen, x, y, w, h int) {
	glyph := '#'
	if len(s.Rows) > 0 && len(s.Rows[0]) > 0 {
		glyph = s.Rows[0][0]
	}
	for dy := range h {
		for dx := range w {
			scr.SetColored(x+dx, y+dy, glyph, s.Color)
		}
	}
}
