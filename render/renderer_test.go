package render

import (
	"bytes"
	"image/color"
	"testing"

	"golang.org/x/text/language"

	"github.com/gogpu/mapcanvas"
)

func testFrame() Frame {
	return Frame{
		Viewport: mapcanvas.IdentityTransform(),
		Regions: []RegionShape{
			{
				ID:   "riyadh",
				Name: mapcanvas.LocalizedName{En: "Riyadh", Ar: "الرياض"},
				Outline: []mapcanvas.Point{
					mapcanvas.Pt(50, 50),
					mapcanvas.Pt(250, 50),
					mapcanvas.Pt(250, 200),
					mapcanvas.Pt(50, 200),
				},
			},
		},
		Polygons: []*mapcanvas.Polygon{
			{
				ID:     "p1",
				Name:   mapcanvas.Name("District"),
				Points: []float64{80, 80, 160, 80, 160, 150, 80, 150},
				Label:  mapcanvas.LabelUp,
			},
		},
		Landmarks: []*mapcanvas.Landmark{
			{
				ID:       "l1",
				Name:     mapcanvas.Name("Museum"),
				Kind:     mapcanvas.KindEducation,
				Position: mapcanvas.Pt(200, 120),
			},
		},
		InProgress: []mapcanvas.Point{
			mapcanvas.Pt(30, 30),
			mapcanvas.Pt(40, 35),
		},
	}
}

func TestRendererFrame(t *testing.T) {
	r, err := New(320, 240)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() { _ = r.Close() }()

	r.RenderFrame(testFrame())

	img := r.Image()
	if img == nil {
		t.Fatal("Image() returned nil")
	}
	b := img.Bounds()
	if b.Dx() != 320 || b.Dy() != 240 {
		t.Errorf("bounds = %v, want 320x240", b)
	}

	// A point inside the saved polygon must differ from the background.
	bg := img.At(5, 5)
	in := img.At(120, 115)
	if sameColor(bg, in) {
		t.Error("polygon interior matches background, nothing was drawn")
	}
}

func TestRendererEncodePNG(t *testing.T) {
	r, err := New(64, 64, WithFont(nil))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() { _ = r.Close() }()

	r.RenderFrame(testFrame())

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("EncodePNG() wrote nothing")
	}
}

func TestRendererViewportTransform(t *testing.T) {
	// With a strong zoom into the polygon, its fill should cover the
	// canvas center; at identity it does not.
	f := Frame{
		Viewport: mapcanvas.Transform{Scale: 4, Offset: mapcanvas.Pt(-400, -400)},
		Polygons: []*mapcanvas.Polygon{
			{ID: "p", Points: []float64{100, 100, 150, 100, 150, 150, 100, 150}},
		},
	}

	r, err := New(160, 160, WithFont(nil), WithBackground("#000000"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() { _ = r.Close() }()

	r.RenderFrame(f)

	// Map point (125,125) lands at screen (100,100) under the viewport.
	if sameColor(r.Image().At(100, 100), color.NRGBA{A: 255}) {
		t.Error("zoomed polygon did not cover the transformed point")
	}
}

func TestRendererArabicLabels(t *testing.T) {
	r, err := New(320, 240)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() { _ = r.Close() }()

	f := testFrame()
	f.Lang = language.Arabic
	// Must not panic on RTL text.
	r.RenderFrame(f)
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
