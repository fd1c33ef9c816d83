package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	if b := s.Bounds(); b != NewRect(0, 0, 80, 24) {
		t.Errorf("Bounds() = %+v", b)
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetColor(5, 5, '●', "#ff4b4b")

	c := s.GetCell(5, 5)
	if c.Rune != '●' || c.Color != "#ff4b4b" {
		t.Errorf("GetCell(5, 5) = %+v", c)
	}

	// Out of bounds is silent and reads as blank.
	s.SetColor(-1, 0, 'A', ColorRed)
	s.SetColor(0, 100, 'A', ColorRed)
	if s.Get(-1, 0) != ' ' || s.GetCell(100, 0).Color != ColorDefault {
		t.Error("out of bounds reads should be blank")
	}

	s.Clear()
	if s.GetCell(5, 5) != blank {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "Next: ●", ColorYellow)

	if row := s.Row(1); !strings.HasPrefix(row, "  Next: ●") {
		t.Errorf("Row(1) = %q", row)
	}
	if s.GetCell(8, 1).Color != ColorYellow {
		t.Error("DrawTextColor should color every rune")
	}

	// Clipped at the right edge.
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := map[[2]int]rune{{1, 1}: '┌', {5, 1}: '┐', {1, 4}: '└', {5, 4}: '┘'}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges missing")
	}
	if s.GetCell(3, 4).Color != ColorGray {
		t.Error("box should carry its color")
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawHLine(1, 8, 6, '═', ColorWhite)
	s.DrawVLine(0, 0, 9, '│', ColorWhite)

	for x := 1; x < 7; x++ {
		if s.Get(x, 8) != '═' {
			t.Errorf("DrawHLine: missing at (%d, 8)", x)
		}
	}
	for y := 0; y < 9; y++ {
		if s.Get(0, y) != '│' {
			t.Errorf("DrawVLine: missing at (0, %d)", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawTextColor(0, 1, "BBBBB", ColorRed)
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorCyan)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize, size = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") || s.GetCell(0, 0).Color != ColorCyan {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should survive enlarging, row 0 = %q", s.Row(0))
	}
	if s.Row(-1) != strings.Repeat(" ", 15) {
		t.Error("out of bounds row should be spaces")
	}
}
