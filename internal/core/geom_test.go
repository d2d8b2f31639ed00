package core

import (
	"math/rand"
	"testing"

	"pgregory.net/rapid"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "single unit overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
		{
			name:     "corner touching",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 10, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.99, 0, 10, 10),
			expected: true,
		},
		{
			name:     "far apart",
			a:        NewRect(0, -1000, 6, 14),
			b:        NewRect(100, 100, 32, 28),
			expected: false,
		},
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

func TestRectIntersectsSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		gen := rapid.Float64Range(-500, 500)
		size := rapid.Float64Range(0, 100)
		a := NewRect(gen.Draw(t, "ax"), gen.Draw(t, "ay"), size.Draw(t, "aw"), size.Draw(t, "ah"))
		b := NewRect(gen.Draw(t, "bx"), gen.Draw(t, "by"), size.Draw(t, "bw"), size.Draw(t, "bh"))

		if a.Intersects(b) != b.Intersects(a) {
			t.Fatalf("asymmetric result for %+v and %+v", a, b)
		}
	})
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17.5 {
		t.Errorf("Center() = (%v, %v), expected (15, 17.5)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
		{3, 5, 1, 5}, // inverted range resolves to min
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampInt(t *testing.T) {
	if ClampInt(-3, 0, 10) != 0 {
		t.Error("ClampInt(-3, 0, 10) should be 0")
	}
	if ClampInt(30, 0, 10) != 10 {
		t.Error("ClampInt(30, 0, 10) should be 10")
	}
}

func TestRandIntRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seenLow, seenHigh := false, false

	for i := 0; i < 5000; i++ {
		v := RandInt(rng, 0, 40)
		if v < 0 || v > 40 {
			t.Fatalf("RandInt(0, 40) = %d, out of range", v)
		}
		seenLow = seenLow || v == 0
		seenHigh = seenHigh || v == 40
	}

	if !seenLow || !seenHigh {
		t.Errorf("RandInt should reach both inclusive ends, low=%v high=%v", seenLow, seenHigh)
	}
}

func TestRandIntDegenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := RandInt(rng, 10, 5); got != 10 {
		t.Errorf("RandInt(10, 5) = %d, expected 10", got)
	}
	if got := RandInt(rng, 3, 3); got != 3 {
		t.Errorf("RandInt(3, 3) = %d, expected 3", got)
	}
}
