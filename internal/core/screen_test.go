package core

import (
	"strings"
	"testing"
)

// rowText returns row y of the screen as plain text.
func rowText(s *Screen, y int) string {
	return strings.Split(s.String(), "\n")[y]
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "      \n      \n      " {
		t.Errorf("String() = %q, expected three blank rows", got)
	}
}

func TestScreenCells(t *testing.T) {
	s := NewScreen(6, 2)
	s.Set(0, 0, 'x')
	s.SetColored(1, 0, '*', ColorYellow)
	s.DrawTextColored(0, 1, "ab", ColorRed)

	tests := []struct {
		name     string
		x, y     int
		expected Cell
	}{
		{"plain", 0, 0, Cell{Rune: 'x'}},
		{"coloured", 1, 0, Cell{Rune: '*', Color: ColorYellow}},
		{"text", 1, 1, Cell{Rune: 'b', Color: ColorRed}},
		{"untouched", 5, 1, blank},
		{"left of screen", -1, 0, blank},
		{"below screen", 0, 9, blank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.GetCell(tt.x, tt.y); got != tt.expected {
				t.Errorf("GetCell(%d, %d) = %+v, expected %+v", tt.x, tt.y, got, tt.expected)
			}
		})
	}

	s.Clear()
	if got := s.GetCell(1, 0); got != blank {
		t.Errorf("after Clear, GetCell(1, 0) = %+v, expected blank", got)
	}
}

func TestScreenOutOfBoundsWrites(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(-1, 0, 'A')
	s.Set(4, 0, 'A')
	s.SetColored(0, -1, 'A', ColorRed)
	s.SetCell(0, 2, Cell{Rune: 'A'})

	if strings.ContainsRune(s.String(), 'A') {
		t.Errorf("out of bounds write landed on screen: %q", s.String())
	}
	if s.Get(9, 9) != ' ' {
		t.Errorf("Get(out of bounds) = %q, expected space", s.Get(9, 9))
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name     string
		draw     func(s *Screen)
		expected string
	}{
		{"at offset", func(s *Screen) { s.DrawText(2, 0, "Hi") }, "  Hi    "},
		{"clipped right", func(s *Screen) { s.DrawText(6, 0, "Hello") }, "      He"},
		{"clipped left", func(s *Screen) { s.DrawText(-2, 0, "Hello") }, "llo     "},
		{"centred", func(s *Screen) { s.DrawTextCentered(0, "Hi") }, "   Hi   "},
		{"centred wide runes", func(s *Screen) { s.DrawTextCentered(0, "──") }, "   ──   "},
		{"multibyte keeps columns", func(s *Screen) { s.DrawText(0, 0, "█▓x") }, "█▓x     "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(8, 1)
			tt.draw(s)
			if got := rowText(s, 0); got != tt.expected {
				t.Errorf("row = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestScreenBanner(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawText(0, 2, "xxxxxxx")

	r := NewRect(1, 1, 5, 3)
	s.DrawRect(r, ' ')
	s.DrawBox(r)

	expected := []string{
		"       ",
		" ┌───┐ ",
		"x│   │x",
		" └───┘ ",
		"       ",
	}
	for y, want := range expected {
		if got := rowText(s, y); got != want {
			t.Errorf("row %d = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawHLine(1, 1, 10, '─')

	if got := rowText(s, 1); got != " ─────" {
		t.Errorf("row = %q, expected the line clipped at the edge", got)
	}
}

func TestColorANSI(t *testing.T) {
	tests := []struct {
		color    Color
		expected string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightWhite, "15"},
		{ColorOrange, "208"},
		{ColorGray, "244"},
	}

	for _, tt := range tests {
		if got := tt.color.ANSI(); got != tt.expected {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tt.color, got, tt.expected)
		}
	}
}

func TestScreenResizeKeepsCells(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawTextColored(0, 0, "Hello", ColorGreen)
	s.DrawText(0, 5, "World")

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 4x3", s.Width(), s.Height())
	}
	if got := rowText(s, 0); got != "Hell" {
		t.Errorf("row 0 = %q, expected Hell", got)
	}

	s.Resize(12, 7)
	if got := rowText(s, 0); got != "Hell        " {
		t.Errorf("row 0 = %q, expected Hell and blanks", got)
	}
	if got := s.GetCell(0, 0).Color; got != ColorGreen {
		t.Errorf("colour after resize = %v, expected green", got)
	}
	if got := rowText(s, 5); strings.TrimSpace(got) != "" {
		t.Errorf("row 5 = %q, expected blank after the shrink dropped it", got)
	}
}
