package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColor(1, 2, '●', ColorGreen)

	c := s.GetCell(1, 2)
	if c.Rune != '●' || c.Color != ColorGreen {
		t.Errorf("GetCell(1, 2) = %+v, expected green dot", c)
	}
	if got := s.GetCell(0, 0).Color; got != ColorDefault {
		t.Errorf("untouched cell color = %d, expected default", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(0, 0, 10, 10), 'X', ColorRed)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'X')
	s.Resize(8, 3)

	if s.Width() != 8 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 8x3", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should discard content")
	}
	s.Set(7, 2, 'Y')
	if s.Get(7, 2) != 'Y' {
		t.Error("new bounds should be writable")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "Hello")

	if row := s.Row(1); row != "  Hello   " {
		t.Errorf("Row(1) = %q, expected %q", row, "  Hello   ")
	}

	// Clipped at right edge
	s.DrawText(8, 0, "ABC")
	if row := s.Row(0); row != "        AB" {
		t.Errorf("Row(0) = %q, expected %q", row, "        AB")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorYellow)

	if row := s.Row(0); row != "    abc    " {
		t.Errorf("Row(0) = %q, expected centered text", row)
	}
	if s.GetCell(4, 0).Color != ColorYellow {
		t.Error("centered text should carry its color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4), ColorDefault)

	expected := strings.Join([]string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}, "\n")
	if got := s.String(); got != expected {
		t.Errorf("DrawBox result:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawHLine(0, 3, 4, '=', ColorWhite)
	s.DrawVLine(0, 0, 3, '|', ColorGray)

	if row := s.Row(3); row != "====" {
		t.Errorf("Row(3) = %q, expected %q", row, "====")
	}
	for y := 0; y < 3; y++ {
		if s.Get(0, y) != '|' {
			t.Errorf("Get(0, %d) = %q, expected '|'", y, s.Get(0, y))
		}
	}
}
