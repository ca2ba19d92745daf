// Package render rasterizes the map canvas: region outlines, saved and
// in-progress polygons, landmark markers, and direction-offset labels,
// using github.com/gogpu/gg.
//
// The renderer consumes plain state (a Frame) and holds no mutable scene
// state of its own, so every frame is reproducible from its inputs.
package render

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"

	"github.com/gogpu/mapcanvas"
)

const (
	defaultLabelOffset = 18
	vertexRadius       = 4
	landmarkRadius     = 6
	defaultFontSize    = 13
)

// kindColors maps landmark kinds to marker fill colors.
var kindColors = map[mapcanvas.LandmarkKind]string{
	mapcanvas.KindLandmark:  "#e63946",
	mapcanvas.KindShop:      "#f4a261",
	mapcanvas.KindEducation: "#457b9d",
	mapcanvas.KindHospital:  "#d62828",
	mapcanvas.KindPark:      "#2a9d8f",
	mapcanvas.KindMosque:    "#6d597a",
}

// RegionShape is a region outline with its display name, in map-space
// points.
type RegionShape struct {
	ID      string
	Name    mapcanvas.LocalizedName
	Outline []mapcanvas.Point
}

// Frame carries everything needed to draw one frame of the canvas.
type Frame struct {
	// Viewport is the current zoom/pan transform.
	Viewport mapcanvas.Transform

	Regions    []RegionShape
	Polygons   []*mapcanvas.Polygon
	Landmarks  []*mapcanvas.Landmark
	InProgress []mapcanvas.Point

	// HoverID and SelectedID pick out polygons for hover and selection
	// styling.
	HoverID    string
	SelectedID string

	// Lang selects the label language. The zero tag renders English.
	Lang language.Tag
}

// Renderer rasterizes frames onto an owned drawing context.
type Renderer struct {
	dc    *gg.Context
	face  text.Face
	group mapcanvas.Transform

	labelOffset float64
	background  string
	noLabels    bool
}

// Option configures a Renderer during creation.
type Option func(*Renderer)

// WithGroupTransform sets the nested group transform between the viewport
// layer and map space, matching the one pointer input is converted with.
func WithGroupTransform(t mapcanvas.Transform) Option {
	return func(r *Renderer) { r.group = t }
}

// WithLabelOffset sets the polygon label displacement distance in
// map-space units.
func WithLabelOffset(d float64) Option {
	return func(r *Renderer) { r.labelOffset = d }
}

// WithFont overrides the label font face. Passing nil disables label
// drawing entirely.
func WithFont(face text.Face) Option {
	return func(r *Renderer) {
		r.face = face
		r.noLabels = face == nil
	}
}

// WithBackground sets the canvas clear color as a hex string.
func WithBackground(hex string) Option {
	return func(r *Renderer) { r.background = hex }
}

// New creates a renderer with a canvas of the given pixel dimensions.
// Labels use the bundled Go Regular face unless WithFont overrides it.
func New(width, height int, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		dc:          gg.NewContext(width, height),
		group:       mapcanvas.IdentityTransform(),
		labelOffset: defaultLabelOffset,
		background:  "#0f1b2d",
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.face == nil && !r.noLabels {
		source, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("render: load bundled font: %w", err)
		}
		r.face = source.Face(defaultFontSize)
	}
	if r.face != nil {
		r.dc.SetFont(r.face)
	}
	return r, nil
}

// RenderFrame draws a complete frame: background, region outlines, saved
// polygons with hover and selection styling, the in-progress shape,
// landmark markers, and labels.
func (r *Renderer) RenderFrame(f Frame) {
	r.dc.ClearWithColor(gg.Hex(r.background))

	t := f.Viewport.Compose(r.group)

	for _, region := range f.Regions {
		r.drawClosed(region.Outline, t, gg.RGBA2(0.11, 0.21, 0.34, 0.65), "#a8dadc")
	}

	for _, p := range f.Polygons {
		fill := gg.RGBA2(0.16, 0.62, 0.56, 0.45)
		switch p.ID {
		case f.SelectedID:
			fill = gg.RGBA2(0.91, 0.77, 0.42, 0.6)
		case f.HoverID:
			fill = gg.RGBA2(0.16, 0.62, 0.56, 0.7)
		}
		r.drawClosed(p.Vertices(), t, fill, "#f1faee")
	}

	r.drawInProgress(f.InProgress, t)
	r.drawLandmarks(f.Landmarks, t)
	r.drawLabels(f, t)
}

// drawClosed fills and strokes a closed map-space path.
func (r *Renderer) drawClosed(pts []mapcanvas.Point, t mapcanvas.Transform, fill gg.RGBA, stroke string) {
	if len(pts) < 3 {
		return
	}
	dc := r.dc
	r.tracePath(pts, t)
	dc.ClosePath()

	dc.SetColor(fill.Color())
	_ = dc.FillPreserve()

	dc.SetHexColor(stroke)
	dc.SetLineWidth(1.5)
	_ = dc.Stroke()
}

// drawInProgress draws the open polyline and vertex handles of the shape
// being drawn.
func (r *Renderer) drawInProgress(pts []mapcanvas.Point, t mapcanvas.Transform) {
	if len(pts) == 0 {
		return
	}
	dc := r.dc
	if len(pts) > 1 {
		r.tracePath(pts, t)
		dc.SetHexColor("#e63946")
		dc.SetDash(6, 4)
		dc.SetLineWidth(1.5)
		_ = dc.Stroke()
		dc.ClearDash()
	}
	for _, p := range pts {
		s := t.Apply(p)
		dc.SetHexColor("#ffffff")
		dc.DrawCircle(s.X, s.Y, vertexRadius)
		_ = dc.FillPreserve()
		dc.SetHexColor("#e63946")
		dc.SetLineWidth(1.5)
		_ = dc.Stroke()
	}
}

// drawLandmarks draws kind-colored markers with a white outline.
func (r *Renderer) drawLandmarks(landmarks []*mapcanvas.Landmark, t mapcanvas.Transform) {
	dc := r.dc
	for _, lm := range landmarks {
		s := t.Apply(lm.Position)
		col, ok := kindColors[lm.Kind]
		if !ok {
			col = kindColors[mapcanvas.KindLandmark]
		}
		dc.SetHexColor(col)
		dc.DrawCircle(s.X, s.Y, landmarkRadius)
		_ = dc.FillPreserve()
		dc.SetHexColor("#ffffff")
		dc.SetLineWidth(1.5)
		_ = dc.Stroke()
	}
}

// drawLabels draws region, polygon, and landmark names. Text is drawn in
// screen space after the shapes. Polygon labels are displaced along their
// label direction and tied back to the shape with a connector line.
func (r *Renderer) drawLabels(f Frame, t mapcanvas.Transform) {
	if r.face == nil {
		return
	}
	dc := r.dc

	for _, region := range f.Regions {
		if region.Name.IsEmpty() || len(region.Outline) == 0 {
			continue
		}
		s := t.Apply(mapcanvas.BoundsOf(region.Outline).Center())
		dc.SetHexColor("#a8dadc")
		dc.DrawStringAnchored(region.Name.In(f.Lang), s.X, s.Y, 0.5, 0.5)
	}

	for _, p := range f.Polygons {
		if p.Name.IsEmpty() {
			continue
		}
		center := t.Apply(mapcanvas.Centroid(p.Vertices()))
		anchor := t.Apply(p.LabelAnchor(r.labelOffset))

		dc.SetHexColor("#f1faee")
		dc.SetLineWidth(1)
		dc.DrawLine(center.X, center.Y, anchor.X, anchor.Y)
		_ = dc.Stroke()
		dc.DrawStringAnchored(p.Name.In(f.Lang), anchor.X, anchor.Y, anchorX(p.Label), anchorY(p.Label))
	}

	for _, lm := range f.Landmarks {
		if lm.Name.IsEmpty() {
			continue
		}
		s := t.Apply(lm.Position)
		dc.SetHexColor("#ffffff")
		dc.DrawStringAnchored(lm.Name.In(f.Lang), s.X, s.Y-landmarkRadius-2, 0.5, 1)
	}
}

// anchorX returns the horizontal text anchor so the label grows away from
// the shape it names.
func anchorX(d mapcanvas.LabelDirection) float64 {
	switch d {
	case mapcanvas.LabelLeft:
		return 1
	case mapcanvas.LabelRight:
		return 0
	default:
		return 0.5
	}
}

// anchorY returns the vertical text anchor.
func anchorY(d mapcanvas.LabelDirection) float64 {
	switch d {
	case mapcanvas.LabelUp:
		return 1
	case mapcanvas.LabelDown:
		return 0
	default:
		return 0.5
	}
}

// tracePath walks a map-space point list in screen space.
func (r *Renderer) tracePath(pts []mapcanvas.Point, t mapcanvas.Transform) {
	dc := r.dc
	for i, p := range pts {
		s := t.Apply(p)
		if i == 0 {
			dc.MoveTo(s.X, s.Y)
		} else {
			dc.LineTo(s.X, s.Y)
		}
	}
}

// Image returns the rendered canvas.
func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}

// SavePNG writes the rendered canvas to a file.
func (r *Renderer) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}

// EncodePNG writes the rendered canvas to a writer.
func (r *Renderer) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// Close releases the drawing context.
func (r *Renderer) Close() error {
	return r.dc.Close()
}
