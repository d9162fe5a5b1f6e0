package core

import (
	"strings"
	"testing"
)

func TestScreenSetAndGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColor(3, 2, '@', ColorGreen)

	cell := s.GetCell(3, 2)
	if cell.Rune != '@' || cell.Color != ColorGreen {
		t.Errorf("GetCell(3,2) = %+v, want '@' in green", cell)
	}

	// Out-of-bounds writes are ignored, reads return blanks
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')

	if cell := s.GetCell(-1, 0); cell.Rune != ' ' {
		t.Errorf("out-of-bounds read should be blank, got %q", cell.Rune)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(0, 0, '#')
	s.Clear()

	if got := s.String(); got != "    \n    " {
		t.Errorf("Clear should blank the buffer, got %q", got)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'A')
	s.Set(9, 4, 'B')

	s.Resize(5, 3)

	if s.Width() != 5 || s.Height() != 3 {
		t.Errorf("resize to 5x3 failed, got %dx%d", s.Width(), s.Height())
	}
	if s.GetCell(2, 2).Rune != 'A' {
		t.Error("content inside the new bounds should survive a shrink")
	}

	s.Resize(12, 6)
	if s.GetCell(2, 2).Rune != 'A' {
		t.Error("content should survive a grow")
	}
	if s.GetCell(9, 4).Rune != ' ' {
		t.Error("content dropped by a shrink must not reappear")
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if row := s.Row(1); row != "  hi      " {
		t.Errorf("Row(1) = %q", row)
	}

	// Clipping at the right edge
	s.DrawText(8, 0, "long")
	if row := s.Row(0); row != "        lo" {
		t.Errorf("clipped Row(0) = %q", row)
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")

	row := s.Row(0)
	if !strings.Contains(row, "abc") {
		t.Fatalf("Row(0) = %q, should contain text", row)
	}
	if row != "    abc    " {
		t.Errorf("text should be centered, got %q", row)
	}
}

func TestDrawHLine(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawHLine(1, 0, 5, '=', ColorYellow)

	if row := s.Row(0); row != " =====  " {
		t.Errorf("Row(0) = %q", row)
	}
	if s.GetCell(1, 0).Color != ColorYellow {
		t.Error("line should carry its color")
	}
}

func TestFillRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.FillRect(1, 1, 3, 2, '#', ColorRed)

	if row := s.Row(1); row != " ###  " {
		t.Errorf("Row(1) = %q", row)
	}
	if row := s.Row(2); row != " ###  " {
		t.Errorf("Row(2) = %q", row)
	}
	if row := s.Row(0); row != "      " {
		t.Errorf("Row(0) should stay blank, got %q", row)
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(0, 0, 6, 4)

	if row := s.Row(0); row != "┌────┐" {
		t.Errorf("top row = %q", row)
	}
	if row := s.Row(3); row != "└────┘" {
		t.Errorf("bottom row = %q", row)
	}
	if s.GetCell(0, 1).Rune != '│' || s.GetCell(5, 2).Rune != '│' {
		t.Error("box sides should be vertical bars")
	}
}

func TestRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	if got := s.Row(5); got != "    " {
		t.Errorf("out-of-bounds row should be blank, got %q", got)
	}
}
