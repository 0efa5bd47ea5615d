package assets

import (
	"testing"

	"github.com/vovakirdan/tui-catch/internal/core"
)

func TestParseSprite(t *testing.T) {
	sp, err := ParseSprite("actor", []byte("\\====/  \r\n \\__/\n\n\n"))
	if err != nil {
		t.Fatalf("ParseSprite() failed: %v", err)
	}
	if sp.Height() != 2 {
		t.Errorf("Height() = %d, expected 2", sp.Height())
	}
	if sp.Width() != 6 {
		t.Errorf("Width() = %d, expected 6", sp.Width())
	}
	if string(sp.Rows[1]) != " \\__/" {
		t.Errorf("row 1 = %q, leading space should be kept", string(sp.Rows[1]))
	}
}

func TestParseSpriteErrors(t *testing.T) {
	if _, err := ParseSprite("x", []byte("\n  \n")); err == nil {
		t.Error("blank sprite should fail")
	}
	if _, err := ParseSprite("x", []byte{0xff, 0xfe}); err == nil {
		t.Error("invalid UTF-8 should fail")
	}
}

func TestSpriteDrawCenteredAndClipped(t *testing.T) {
	sp, err := ParseSprite("apple", []byte("(@)"))
	if err != nil {
		t.Fatal(err)
	}
	sp.Color = core.ColorRed

	scr := core.NewScreen(10, 3)
	sp.Draw(scr, 2, 0, 5, 3)

	// 5 wide rect, 3 wide sprite: offset 1; 3 tall rect, 1 tall sprite: offset 1
	if got := scr.Row(1); got != "   (@)    " {
		t.Errorf("row 1 = %q", got)
	}
	if c := scr.GetCell(4, 1); c.Color != core.ColorRed {
		t.Errorf("cell color = %v, expected red", c.Color)
	}

	// Rect narrower than the sprite clips from both sides
	scr.Clear()
	sp.Draw(scr, 0, 0, 1, 1)
	if got := scr.Row(0); got != "@         " {
		t.Errorf("clipped row = %q", got)
	}
}

func TestSpriteFill(t *testing.T) {
	sp := fallbackSprite("gem", '◆', core.ColorBrightMagenta)
	scr := core.NewScreen(4, 2)
	sp.Fill(scr, 1, 0, 2, 2)

	for _, row := range []int{0, 1} {
		if got := scr.Row(row); got != " ◆◆ " {
			t.Errorf("row %d = %q", row, got)
		}
	}
}
