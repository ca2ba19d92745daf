package mapcanvas

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, -2)

	if got := p.Add(q); got != Pt(4, 2) {
		t.Errorf("Add = %v, want (4,2)", got)
	}
	if got := p.Sub(q); got != Pt(2, 6) {
		t.Errorf("Sub = %v, want (2,6)", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %v, want (6,8)", got)
	}
	if got := p.Div(2); got != Pt(1.5, 2) {
		t.Errorf("Div = %v, want (1.5,2)", got)
	}
	if got := Pt(0, 0).Distance(p); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPointLerp(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want Point
	}{
		{"start", 0, Pt(0, 10)},
		{"quarter", 0.25, Pt(2.5, 10)},
		{"half", 0.5, Pt(5, 10)},
		{"end", 1, Pt(10, 10)},
	}
	a, b := Pt(0, 10), Pt(10, 10)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Lerp(b, tt.t); got != tt.want {
				t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestFlatRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
	}{
		{"empty", nil},
		{"single", []Point{Pt(1, 2)}},
		{"triangle", []Point{Pt(0, 0), Pt(10, 0), Pt(5, 10)}},
		{"negative coords", []Point{Pt(-3.5, 7.25), Pt(0, -1), Pt(2, 2), Pt(-8, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flat := PointsToFlat(tt.pts)
			if len(flat) != 2*len(tt.pts) {
				t.Fatalf("flat length = %d, want %d", len(flat), 2*len(tt.pts))
			}
			back := FlatToPoints(flat)
			if len(back) != len(tt.pts) {
				t.Fatalf("round-trip length = %d, want %d", len(back), len(tt.pts))
			}
			for i := range tt.pts {
				if back[i] != tt.pts[i] {
					t.Errorf("point %d = %v, want %v", i, back[i], tt.pts[i])
				}
			}
		})
	}
}

func TestFlatToPointsOddLength(t *testing.T) {
	// Trailing unpaired value is dropped, never panics.
	pts := FlatToPoints([]float64{1, 2, 3})
	if len(pts) != 1 || pts[0] != Pt(1, 2) {
		t.Errorf("FlatToPoints odd = %v, want [(1,2)]", pts)
	}
}

func TestFlatRoundTripOtherOrder(t *testing.T) {
	flat := []float64{0, 0, 10, 0, 5, 10, -2, 3.5}
	back := PointsToFlat(FlatToPoints(flat))
	if len(back) != len(flat) {
		t.Fatalf("length = %d, want %d", len(back), len(flat))
	}
	for i := range flat {
		if math.Abs(back[i]-flat[i]) > 0 {
			t.Errorf("element %d = %v, want %v", i, back[i], flat[i])
		}
	}
}
