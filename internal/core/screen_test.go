package core

import (
	"strings"
	"testing"
)

func TestScreenSetAndGet(t *testing.T) {
	s := NewScreen(10, 5)

	red := NewRGB(1, 0, 0)
	s.SetCell(3, 2, 'X', red)

	cell := s.GetCell(3, 2)
	if cell.Rune != 'X' || cell.Fg != red {
		t.Errorf("GetCell() = %+v, want X in red", cell)
	}

	// Out of bounds is silently ignored / returns default
	s.SetCell(-1, 0, 'Y', red)
	s.SetCell(10, 0, 'Y', red)
	s.SetCell(0, 5, 'Y', red)
	if got := s.GetCell(99, 99); got.Rune != ' ' {
		t.Errorf("Out-of-bounds GetCell() = %+v, want blank", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(1, 1, '#', NewRGB(0, 1, 0))
	s.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Fg != DefaultFg {
				t.Fatalf("Cell (%d,%d) not cleared: %+v", x, y, c)
			}
		}
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'A')
	s.Set(9, 4, 'B')

	s.Resize(5, 3)
	if s.Width() != 5 || s.Height() != 3 {
		t.Fatalf("Resize dimensions wrong: %dx%d", s.Width(), s.Height())
	}
	if s.GetCell(2, 2).Rune != 'A' {
		t.Error("Content inside the new bounds should survive a shrink")
	}

	s.Resize(12, 6)
	if s.GetCell(2, 2).Rune != 'A' {
		t.Error("Content should survive a grow")
	}
	if s.GetCell(9, 4).Rune != ' ' {
		t.Error("Content dropped by the shrink should stay gone")
	}
}

func TestScreenTint(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 1, '#', NewRGB(0, 0, 0))

	warm := NewRGB(1, 0.5, 0)
	s.Tint(1, 1, warm, 0.5)

	c := s.GetCell(1, 1)
	if c.Fg.R != 0.5 || c.Fg.G != 0.25 || c.Fg.B != 0 {
		t.Errorf("Tint blended to %+v, want halfway to warm", c.Fg)
	}

	// Full tint lands exactly on the light color
	s.Tint(1, 1, warm, 1)
	if got := s.GetCell(1, 1).Fg; got != warm {
		t.Errorf("Full tint = %+v, want %+v", got, warm)
	}

	// Out of bounds must not panic
	s.Tint(-5, 100, warm, 0.5)
}

func TestScreenDim(t *testing.T) {
	s := NewScreen(3, 3)
	s.SetCell(0, 0, '#', NewRGB(1, 0.8, 0.6))
	s.Dim(0.5)

	c := s.GetCell(0, 0)
	if c.Fg.R != 0.5 || c.Fg.G != 0.4 || c.Fg.B != 0.3 {
		t.Errorf("Dim(0.5) = %+v, want halved channels", c.Fg)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi", DefaultFg)

	if s.GetCell(2, 1).Rune != 'h' || s.GetCell(3, 1).Rune != 'i' {
		t.Errorf("DrawText misplaced: row %q", s.Row(1))
	}

	// Clipping at the right edge must not panic
	s.DrawText(8, 1, "long text", DefaultFg)
	if s.GetCell(9, 1).Rune != 'o' {
		t.Errorf("Clipped text wrong: row %q", s.Row(1))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc", DefaultFg)

	if !strings.Contains(s.Row(1), "abc") {
		t.Fatalf("Centered text missing: %q", s.Row(1))
	}
	if s.GetCell(4, 1).Rune != 'a' {
		t.Errorf("Text not centered: row %q", s.Row(1))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
