package core

import (
	"strings"
	"testing"
)

func TestNewScreenBlank(t *testing.T) {
	s := NewScreen(12, 3)

	if s.Width() != 12 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 12x3", s.Width(), s.Height())
	}
	want := strings.Repeat(strings.Repeat(" ", 12)+"\n", 2) + strings.Repeat(" ", 12)
	if s.String() != want {
		t.Errorf("new screen = %q, expected blank", s.String())
	}
}

func TestScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative size should clamp to 0x0, got %dx%d", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("empty screen should render empty string, got %q", s.String())
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		row  int
		want string
	}{
		{
			name: "plain",
			draw: func(s *Screen) { s.DrawText(2, 0, "abc") },
			want: "  abc   ",
		},
		{
			name: "clipped right",
			draw: func(s *Screen) { s.DrawText(6, 0, "abc") },
			want: "      ab",
		},
		{
			name: "clipped left",
			draw: func(s *Screen) { s.DrawText(-2, 0, "abcd") },
			want: "cd      ",
		},
		{
			name: "centered",
			draw: func(s *Screen) { s.DrawTextCentered(1, "hi") },
			row:  1,
			want: "   hi   ",
		},
		{
			name: "centered wider than screen",
			draw: func(s *Screen) { s.DrawTextCentered(0, "0123456789") },
			want: "12345678",
		},
		{
			name: "out of range row",
			draw: func(s *Screen) { s.DrawText(0, 5, "zzz") },
			want: "        ",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(8, 2)
			tc.draw(s)
			if got := s.Row(tc.row); got != tc.want {
				t.Errorf("Row(%d) = %q, expected %q", tc.row, got, tc.want)
			}
		})
	}
}

func TestScreenFillAndClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.Fill('#')
	if s.String() != "###\n###" {
		t.Errorf("Fill = %q", s.String())
	}
	s.Clear()
	if s.String() != "   \n   " {
		t.Errorf("Clear = %q", s.String())
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(0, 0, 5, 3)

	want := "┌───┐ \n│   │ \n└───┘ \n      "
	if s.String() != want {
		t.Errorf("DrawBox =\n%s\nexpected\n%s", s.String(), want)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(4, 2)
	if s.String() != "Hell\n    " {
		t.Errorf("after shrink = %q", s.String())
	}

	s.Resize(7, 3)
	if got := s.Row(0); got != "Hell   " {
		t.Errorf("after grow row 0 = %q", got)
	}
	if got := s.Row(2); got != "       " {
		t.Errorf("dropped rows should not come back, row 2 = %q", got)
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(4, 1)
	for _, y := range []int{-1, 1} {
		if got := s.Row(y); got != "    " {
			t.Errorf("Row(%d) = %q, expected blank", y, got)
		}
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColored(1, 0, "ok", ColorGreen)

	cell := s.GetCell(1, 0)
	if cell.Rune != 'o' || cell.Color != ColorGreen {
		t.Errorf("GetCell(1, 0) = %+v, expected green 'o'", cell)
	}

	// Plain Set resets color
	s.Set(1, 0, 'x')
	if c := s.GetCell(1, 0); c.Color != ColorDefault {
		t.Errorf("Set should use default color, got %v", c.Color)
	}

	// Out of bounds returns an uncolored space
	if c := s.GetCell(-1, 5); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("out of bounds GetCell = %+v", c)
	}
}

func TestScreenBlit(t *testing.T) {
	dst := NewScreen(6, 3)
	src := NewScreen(3, 2)
	src.DrawTextColored(0, 0, "abc", ColorRed)
	src.DrawText(0, 1, "def")

	dst.Blit(src, 4, 1)

	if got := dst.Row(1); got != "    ab" {
		t.Errorf("row 1 = %q, expected clipped blit", got)
	}
	if got := dst.Row(2); got != "    de" {
		t.Errorf("row 2 = %q", got)
	}
	if c := dst.GetCell(4, 1); c.Color != ColorRed {
		t.Errorf("blit should keep colors, got %v", c.Color)
	}
}
