package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"non-overlapping vertical", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"adjacent horizontal (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"single cell overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

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

func TestVec2(t *testing.T) {
	v := Vec2{3, 4}
	if v.Len() != 5 {
		t.Errorf("Len() = %f, expected 5", v.Len())
	}

	n := v.Norm()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Norm().Len() = %f, expected 1", n.Len())
	}
	if (Vec2{}).Norm() != (Vec2{}) {
		t.Error("Norm() of zero vector should be zero")
	}

	sum := v.Add(Vec2{1, 1}).Sub(Vec2{0, 2}).Scale(2)
	if sum != (Vec2{8, 6}) {
		t.Errorf("Add/Sub/Scale = %+v, expected {8 6}", sum)
	}

	x, y := Vec2{-0.5, 2.9}.Cell()
	if x != -1 || y != 2 {
		t.Errorf("Cell() = (%d, %d), expected (-1, 2)", x, y)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if ClampF(15.5, 0, 10) != 10 || ClampF(-1, 0, 10) != 0 || ClampF(5.5, 0, 10) != 5.5 {
		t.Error("ClampF() returned unexpected value")
	}
}

func TestInputFrameDirection(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionDown)
	if dx, dy := f.Direction(); dx != -1 || dy != 1 {
		t.Errorf("Direction() = (%d, %d), expected (-1, 1)", dx, dy)
	}

	f.Set(ActionRight)
	if dx, _ := f.Direction(); dx != 0 {
		t.Errorf("opposite keys should cancel, got dx=%d", dx)
	}

	c := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) || !c.Has(ActionLeft) {
		t.Error("Clone() should be independent of Clear()")
	}
}

func TestTickMillis(t *testing.T) {
	if (RuntimeConfig{TickRate: 50}).TickMillis() != 20 {
		t.Error("50 fps should be 20ms per tick")
	}
	if (RuntimeConfig{}).TickMillis() != 16 {
		t.Error("zero tick rate should fall back to 60 fps")
	}
}
