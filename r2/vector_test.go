package r2

import "testing"

func TestQuadrant(t *testing.T) {
	tests := []struct {
		v    Vector
		want int
	}{
		{Vector{1, 1}, 0},
		{Vector{1, 0}, 0},
		{Vector{0, 1}, 0},
		{Vector{0, 0}, 0},
		{Vector{-1, 1}, 1},
		{Vector{-1, 0}, 1},
		{Vector{-1, -1}, 2},
		{Vector{1, -1}, 3},
		{Vector{0, -1}, 3},
	}
	for _, tc := range tests {
		if got := tc.v.Quadrant(); got != tc.want {
			t.Errorf("%v.Quadrant() = %d, want %d", tc.v, got, tc.want)
		}
	}
}
