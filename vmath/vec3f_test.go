package vmath

import (
	"math"
	"testing"
)

func TestV3FOps(t *testing.T) {
	a := Vec3F{1, 2, 3}
	b := Vec3F{4, -5, 6}

	if got := V3FAdd(a, b); got != (Vec3F{5, -3, 9}) {
		t.Errorf("Expected V3FAdd to be {5 -3 9}, got %v", got)
	}
	if got := V3FSub(a, b); got != (Vec3F{-3, 7, -3}) {
		t.Errorf("Expected V3FSub to be {-3 7 -3}, got %v", got)
	}
	if got := V3FScale(a, 2); got != (Vec3F{2, 4, 6}) {
		t.Errorf("Expected V3FScale to be {2 4 6}, got %v", got)
	}
	if got := V3FAddScaled(a, b, 0.5); got != (Vec3F{3, -0.5, 6}) {
		t.Errorf("Expected V3FAddScaled to be {3 -0.5 6}, got %v", got)
	}
}

func TestV3FMagAndDist(t *testing.T) {
	v := Vec3F{3, 4, 0}
	if got := V3FMag(v); got != 5 {
		t.Errorf("Expected magnitude 5, got %v", got)
	}
	if got := V3FDist(Vec3F{1, 1, 1}, Vec3F{1, 1, 4}); got != 3 {
		t.Errorf("Expected distance 3, got %v", got)
	}
}

func TestV3FNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3F
	}{
		{"Unit axis", Vec3F{0, 0, 2}},
		{"Diagonal", Vec3F{1, 1, 1}},
		{"Negative", Vec3F{-3, 4, -12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := V3FNormalize(tt.in)
			if mag := V3FMag(n); math.Abs(mag-1) > 1e-12 {
				t.Errorf("Expected unit magnitude, got %v", mag)
			}
		})
	}

	if got := V3FNormalize(Vec3F{}); got != (Vec3F{}) {
		t.Errorf("Expected zero vector to normalize to zero, got %v", got)
	}
}
