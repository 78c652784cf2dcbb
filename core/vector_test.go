package core

import (
	"math"
	"testing"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float32
	}{
		{
			name: "orthogonal",
			a:    []float32{1, 0, 0},
			b:    []float32{0, 1, 0},
			want: 0,
		},
		{
			name: "identical unit vectors",
			a:    []float32{0.6, 0.8, 0},
			b:    []float32{0.6, 0.8, 0},
			want: 1,
		},
		{
			name: "opposite",
			a:    []float32{1, 0},
			b:    []float32{-1, 0},
			want: -1,
		},
		{
			name: "mismatched lengths use shorter",
			a:    []float32{1, 1, 1},
			b:    []float32{2, 3},
			want: 5,
		},
		{
			name: "empty",
			a:    nil,
			b:    []float32{1, 2},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dot(tt.a, tt.b)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("Dot() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	v := []float32{3, 4}
	Normalize(v)

	if math.Abs(float64(v[0]-0.6)) > 1e-6 || math.Abs(float64(v[1]-0.8)) > 1e-6 {
		t.Errorf("Normalize() = %v, want [0.6 0.8]", v)
	}

	norm := math.Sqrt(float64(v[0]*v[0] + v[1]*v[1]))
	if math.Abs(norm-1) > 1e-6 {
		t.Errorf("Normalize() norm = %v, want 1", norm)
	}
}

func TestNormalize_ZeroVector(t *testing.T) {
	v := []float32{0, 0, 0}
	Normalize(v)

	for i, x := range v {
		if x != 0 {
			t.Errorf("Normalize() changed zero vector at %d: %v", i, x)
		}
	}
}

func TestNormalize_AlreadyUnit(t *testing.T) {
	v := []float32{1, 0, 0}
	Normalize(v)

	if v[0] != 1 || v[1] != 0 || v[2] != 0 {
		t.Errorf("Normalize() changed unit vector: %v", v)
	}
}
