package sim

import "testing"

func TestDirectionRotation(t *testing.T) {
	tests := []struct {
		dir   Direction
		left  Direction
		right Direction
		opp   Direction
	}{
		{DirUp, DirLeft, DirRight, DirDown},
		{DirRight, DirUp, DirDown, DirLeft},
		{DirDown, DirRight, DirLeft, DirUp},
		{DirLeft, DirDown, DirUp, DirRight},
		{DirNone, DirNone, DirNone, DirNone},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.RotateLeft(); got != tt.left {
				t.Errorf("RotateLeft() = %v, expected %v", got, tt.left)
			}
			if got := tt.dir.RotateRight(); got != tt.right {
				t.Errorf("RotateRight() = %v, expected %v", got, tt.right)
			}
			if got := tt.dir.Opposite(); got != tt.opp {
				t.Errorf("Opposite() = %v, expected %v", got, tt.opp)
			}
		})
	}
}

func TestCoordOffset(t *testing.T) {
	c := C(5, 5)
	tests := []struct {
		dir      Direction
		expected Coord
	}{
		{DirUp, C(5, 4)},
		{DirRight, C(6, 5)},
		{DirDown, C(5, 6)},
		{DirLeft, C(4, 5)},
		{DirNone, C(5, 5)},
	}

	for _, tt := range tests {
		if got := c.Offset(tt.dir); got != tt.expected {
			t.Errorf("Offset(%v) = %v, expected %v", tt.dir, got, tt.expected)
		}
	}
}

func TestFCoordOffsetTime(t *testing.T) {
	base := F(3, 3)
	tests := []struct {
		name     string
		facing   Direction
		timer    float64
		expected FCoord
	}{
		{"up half", DirUp, 0.5, F(3, 3.5)},
		{"right quarter", DirRight, 0.25, F(2.75, 3)},
		{"down full", DirDown, 1.0, F(3, 2)},
		{"left half", DirLeft, 0.5, F(3.5, 3)},
		{"arrived", DirDown, 0, F(3, 3)},
		{"negative clamps", DirLeft, -0.4, F(3, 3)},
		{"no facing", DirNone, 0.7, F(3, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := Tile{Facing: tt.facing, Timer: tt.timer}
			if got := base.OffsetTime(tile); got != tt.expected {
				t.Errorf("OffsetTime() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
