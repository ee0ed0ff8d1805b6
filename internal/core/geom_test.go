package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{2, 3, true},
		{5, 7, true},
		{6, 3, false},
		{2, 8, false},
		{1, 3, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.min, tt.max, got, tt.expected)
		}
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		name             string
		v, from, to, exp int
	}{
		{"origin", 0, 600, 20, 0},
		{"middle", 300, 600, 20, 10},
		{"last", 599, 600, 20, 19},
		{"zero range", 5, 0, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Scale(tt.v, tt.from, tt.to); got != tt.exp {
				t.Errorf("Scale(%d, %d, %d) = %d, expected %d", tt.v, tt.from, tt.to, got, tt.exp)
			}
		})
	}
}
