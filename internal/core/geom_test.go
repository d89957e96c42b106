package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestScrollOffset(t *testing.T) {
	tests := []struct {
		name        string
		focus       float64
		view, world int
		expected    int
	}{
		{"centred", 30.5, 20, 60, 20},
		{"clamped at start", 2.5, 20, 60, 0},
		{"clamped at end", 59.5, 20, 60, 40},
		{"world fits", 3.5, 20, 10, -5},
		{"world equals view", 5, 10, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScrollOffset(tt.focus, tt.view, tt.world); got != tt.expected {
				t.Errorf("ScrollOffset(%v, %d, %d) = %d, expected %d",
					tt.focus, tt.view, tt.world, got, tt.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	tests := []struct {
		a, b     int
		min, max int
	}{
		{5, 10, 5, 10},
		{10, 5, 5, 10},
		{-3, -3, -3, -3},
	}

	for _, tt := range tests {
		if got := Min(tt.a, tt.b); got != tt.min {
			t.Errorf("Min(%d, %d) = %d, expected %d", tt.a, tt.b, got, tt.min)
		}
		if got := Max(tt.a, tt.b); got != tt.max {
			t.Errorf("Max(%d, %d) = %d, expected %d", tt.a, tt.b, got, tt.max)
		}
	}
}
