package mapcanvas

import (
	"math"
	"testing"
)

// The two group conventions the canvas uses: the drawing group shifted by
// (120, 0) at 0.95 scale, and the plain map group.
var (
	drawingGroup = Transform{Scale: 0.95, Offset: Pt(120, 0)}
	mapGroup     = Transform{Scale: 1, Offset: Pt(0, 0)}
)

func TestTransformApplyUnapply(t *testing.T) {
	tests := []struct {
		name string
		tr   Transform
		p    Point
	}{
		{"identity", IdentityTransform(), Pt(3, 4)},
		{"scale only", Transform{Scale: 2.5}, Pt(-7, 11)},
		{"offset only", Transform{Scale: 1, Offset: Pt(100, -40)}, Pt(0.5, 0.5)},
		{"scale and offset", Transform{Scale: 0.95, Offset: Pt(120, 0)}, Pt(250, 130)},
		{"zoomed in", Transform{Scale: 4.2, Offset: Pt(-312.5, 87)}, Pt(19, -3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tr.Unapply(tt.tr.Apply(tt.p))
			if math.Abs(got.X-tt.p.X) > 1e-6 || math.Abs(got.Y-tt.p.Y) > 1e-6 {
				t.Errorf("Unapply(Apply(%v)) = %v", tt.p, got)
			}
		})
	}
}

func TestComposeMatchesNestedApply(t *testing.T) {
	viewport := Transform{Scale: 1.8, Offset: Pt(-64, 22)}
	for _, group := range []Transform{drawingGroup, mapGroup} {
		p := Pt(33, -19)
		nested := viewport.Apply(group.Apply(p))
		composed := viewport.Compose(group).Apply(p)
		if math.Abs(nested.X-composed.X) > 1e-9 || math.Abs(nested.Y-composed.Y) > 1e-9 {
			t.Errorf("group %+v: nested %v != composed %v", group, nested, composed)
		}
	}
}

func TestScreenToMapFormula(t *testing.T) {
	// map = (screen - viewportOffset - groupOffset*scale) / (groupScale*scale)
	viewport := Transform{Scale: 2, Offset: Pt(50, -30)}
	screen := Pt(400, 300)

	got := ScreenToMap(screen, viewport, drawingGroup)
	wantX := (screen.X - viewport.Offset.X - drawingGroup.Offset.X*viewport.Scale) /
		(drawingGroup.Scale * viewport.Scale)
	wantY := (screen.Y - viewport.Offset.Y - drawingGroup.Offset.Y*viewport.Scale) /
		(drawingGroup.Scale * viewport.Scale)
	if math.Abs(got.X-wantX) > 1e-9 || math.Abs(got.Y-wantY) > 1e-9 {
		t.Errorf("ScreenToMap = %v, want (%v,%v)", got, wantX, wantY)
	}
}

func TestScreenToMapInverse(t *testing.T) {
	viewports := []Transform{
		{Scale: 1, Offset: Pt(0, 0)},
		{Scale: 3.7, Offset: Pt(-512, 240)},
		{Scale: 0.4, Offset: Pt(12.5, 99)},
	}
	screens := []Point{Pt(0, 0), Pt(1024, 768), Pt(-5, 333.25)}

	for _, vp := range viewports {
		for _, group := range []Transform{drawingGroup, mapGroup} {
			for _, s := range screens {
				m := ScreenToMap(s, vp, group)
				back := MapToScreen(m, vp, group)
				if math.Abs(back.X-s.X) > 1e-6 || math.Abs(back.Y-s.Y) > 1e-6 {
					t.Errorf("vp %+v group %+v: round-trip of %v = %v", vp, group, s, back)
				}
			}
		}
	}
}

func TestScreenToMapNoGroups(t *testing.T) {
	vp := Transform{Scale: 2, Offset: Pt(10, 20)}
	got := ScreenToMap(Pt(30, 60), vp)
	if got != Pt(10, 20) {
		t.Errorf("ScreenToMap = %v, want (10,20)", got)
	}
}
