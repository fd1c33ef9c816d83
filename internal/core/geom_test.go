package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestInCircle(t *testing.T) {
	tests := []struct {
		name     string
		px, py   float64
		expected bool
	}{
		{"center", 0, 0, true},
		{"on boundary", 3, 4, true},
		{"just outside", 3, 4.01, false},
		{"far away", 100, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := InCircle(tc.px, tc.py, 0, 0, 5); got != tc.expected {
				t.Errorf("InCircle(%v, %v) = %v, expected %v", tc.px, tc.py, got, tc.expected)
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
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(-5.5, 0, 10); got != 0 {
		t.Errorf("ClampF(-5.5, 0, 10) = %f, expected 0", got)
	}
	if got := ClampF(15.5, 0, 10); got != 10 {
		t.Errorf("ClampF(15.5, 0, 10) = %f, expected 10", got)
	}
}

func TestRound(t *testing.T) {
	if Round(2.5) != 3 || Round(2.49) != 2 || Round(-1.5) != -2 {
		t.Error("Round should round half away from zero")
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionDrop) || f.Pointed() {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionDrop)
	f.Point(12)
	if !f.Has(ActionDrop) {
		t.Error("Has(ActionDrop) should be true after Set")
	}
	if !f.Pointed() || f.PointerCol != 12 {
		t.Errorf("pointer = (%v, %d), expected (true, 12)", f.Pointed(), f.PointerCol)
	}

	f.Clear()
	if f.Has(ActionDrop) || f.Pointed() {
		t.Error("Clear should reset actions and pointer")
	}
}
