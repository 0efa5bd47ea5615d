package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-catch/internal/assets"
	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/games/catch"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Minimum terminal size that fits HUD, a bordered field and the help line.
const (
	minScreenW = 24
	minScreenH = 8
)

// Playfield maps virtual playfield pixels to terminal cells.
type Playfield struct {
	field      config.Playfield
	cols, rows int
}

// NewPlayfield creates a mapping onto a cols x rows cell area.
func NewPlayfield(field config.Playfield, cols, rows int) Playfield {
	return Playfield{field: field, cols: max(cols, 1), rows: max(rows, 1)}
}

// CellRect converts a virtual rectangle to a cell rectangle. Sizes are at
// least one cell so small objects stay visible.
func (p Playfield) CellRect(r core.Rect) (x, y, w, h int) {
	sx := float64(p.cols) / p.field.Width
	sy := float64(p.rows) / p.field.Height

	x = int(r.X * sx)
	y = floorInt(r.Y * sy)
	w = max(int(r.W*sx+0.5), 1)
	h = max(int(r.H*sy+0.5), 1)
	return x, y, w, h
}

func floorInt(v float64) int {
	i := int(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return i
}

// DrawSnapshot draws objects and the actor onto a screen the size of the
// playfield mapping. Parts above the top edge are clipped.
func (p Playfield) DrawSnapshot(scr *core.Screen, snap catch.Snapshot, set *assets.Set) {
	for _, obj := range snap.Objects {
		x, y, w, h := p.CellRect(core.NewRect(obj.X, obj.Y, obj.Width, obj.Height))
		drawSprite(scr, set, obj.Kind.String(), x, y, w, h)
	}

	x, y, w, h := p.CellRect(core.NewRect(snap.ActorX, snap.ActorY, snap.ActorWidth, snap.ActorHeight))
	drawSprite(scr, set, "actor", x, y, w, h)
}

func drawSprite(scr *core.Screen, set *assets.Set, id string, x, y, w, h int) {
	if set == nil {
		set = &assets.Set{}
	}
	sprite, ok := set.Sprite(id)
	if !ok {
		sprite.Fill(scr, x, y, w, h)
		return
	}
	sprite.Draw(scr, x, y, w, h)
}

// renderGame draws the HUD, the bordered playfield and a status line.
// A non-empty banner is centered over the playfield.
func renderGame(scr *core.Screen, snap catch.Snapshot, cfg config.CatchConfig, set *assets.Set, status, banner string) {
	scr.Clear()
	w, h := scr.Width(), scr.Height()
	if w < minScreenW || h < minScreenH {
		scr.DrawTextCentered(h/2-1, "terminal")
		scr.DrawTextCentered(h/2, "too small")
		return
	}

	hud := fmt.Sprintf(" SCORE %s  LEVEL %d  HIGH %s",
		humanize.Comma(int64(snap.Score)), snap.Level, humanize.Comma(int64(snap.HighScore)))
	scr.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	lives := strings.Repeat("♥", max(snap.Lives, 0))
	scr.DrawTextColored(w-len([]rune(lives))-1, 0, lives, core.ColorBrightRed)

	scr.DrawBox(0, 1, w, h-2)

	inner := core.NewScreen(w-2, h-4)
	NewPlayfield(cfg.Playfield, inner.Width(), inner.Height()).DrawSnapshot(inner, snap, set)
	scr.Blit(inner, 1, 2)
	if banner != "" {
		scr.DrawTextCentered(2+inner.Height()/2, banner)
	}

	scr.DrawTextColored(1, h-1, status, core.ColorGray)
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 4)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	accentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	alertStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
)

// centered places a block in the middle of the terminal.
func centered(width, height int, block string) string {
	if width <= 0 || height <= 0 {
		return block
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
