// Package viewport owns the map viewport: zoom scale, pan translation, the
// region -> city -> project drill-down selection, and the animated
// transitions between viewport states.
//
// The viewport separates animation data from the render tree. It computes
// per-frame scale/position values through [Viewport.Tick] and hands them to
// an attached [Layer]; the render layer is responsible for wiring those
// values onto its own primitives. This keeps the interpolation math
// testable without any canvas library.
//
// While a transition is in flight (IsZooming reports true) the viewport
// must not accept transform-mutating input: a vertex added or a pan applied
// mid-animation would be computed against a transform that is about to
// change. Drag is suppressed here; click gating is the orchestration
// layer's job.
package viewport

import (
	"log/slog"

	"github.com/gogpu/mapcanvas"
)

// DefaultDuration is the length of an animated viewport transition in
// seconds.
const DefaultDuration = 0.5

// Layer is the render-target handle the viewport animates. Implementations
// apply the scale and position to their own scene graph each time they are
// called.
type Layer interface {
	SetTransform(scale float64, position mapcanvas.Point)
}

// BoundsSource resolves region ids to cached map-space bounding boxes.
// The regions package provides the standard implementation.
type BoundsSource interface {
	RegionBounds(id string) (mapcanvas.Rect, bool)
}

// Viewport holds the current view transform and drill-down selection.
// Like the editor it is single-writer: all mutation happens on the event
// loop, so it carries no locking.
type Viewport struct {
	width, height float64
	mapW, mapH    float64

	// fitPadding grows a target bounds box before fitting, so zoomed
	// regions keep a margin around them.
	fitPadding float64

	// dragPadding is how much empty space a drag may reveal beyond the
	// scaled map content.
	dragPadding float64

	baseScale float64
	basePos   mapcanvas.Point

	duration float64
	ease     mapcanvas.Easing

	scale    float64
	position mapcanvas.Point

	anim *animation

	layer  Layer
	bounds BoundsSource

	selRegion  string
	selCity    string
	selProject string
}

// Option configures a Viewport during creation.
type Option func(*Viewport)

// WithMapSize sets the map content dimensions in map-space units.
// Defaults to the viewport dimensions.
func WithMapSize(w, h float64) Option {
	return func(v *Viewport) { v.mapW, v.mapH = w, h }
}

// WithFitPadding sets the margin added around bounds before zoom-fitting.
func WithFitPadding(p float64) Option {
	return func(v *Viewport) { v.fitPadding = p }
}

// WithDragPadding sets how much empty space a drag may reveal.
func WithDragPadding(p float64) Option {
	return func(v *Viewport) { v.dragPadding = p }
}

// WithBasePosition sets the initial-position offset baseline the overview
// state returns to. Zoom targets are computed relative to it.
func WithBasePosition(p mapcanvas.Point) Option {
	return func(v *Viewport) { v.basePos = p }
}

// WithDuration sets the transition duration in seconds.
func WithDuration(d float64) Option {
	return func(v *Viewport) {
		if d > 0 {
			v.duration = d
		}
	}
}

// WithEasing sets the transition easing curve. Default is
// mapcanvas.EaseInOut.
func WithEasing(e mapcanvas.Easing) Option {
	return func(v *Viewport) { v.ease = e }
}

// WithLayer attaches the render-target handle at construction.
func WithLayer(l Layer) Option {
	return func(v *Viewport) { v.layer = l }
}

// WithBoundsSource attaches the region bounds source at construction.
func WithBoundsSource(b BoundsSource) Option {
	return func(v *Viewport) { v.bounds = b }
}

// New creates a viewport of the given pixel dimensions at the overview
// state (scale 1, base position).
func New(width, height float64, opts ...Option) *Viewport {
	v := &Viewport{
		width:     width,
		height:    height,
		mapW:      width,
		mapH:      height,
		baseScale: 1,
		duration:  DefaultDuration,
		ease:      mapcanvas.EaseInOut,
		scale:     1,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.position = v.basePos
	return v
}

// AttachLayer sets the render-target handle. Zoom operations are silent
// no-ops while no layer is attached; the handle is expected to appear once
// the render layer mounts.
func (v *Viewport) AttachLayer(l Layer) {
	v.layer = l
}

// SetBoundsSource sets the region bounds source.
func (v *Viewport) SetBoundsSource(b BoundsSource) {
	v.bounds = b
}

// Scale returns the current zoom scale.
func (v *Viewport) Scale() float64 {
	return v.scale
}

// Position returns the current pan translation.
func (v *Viewport) Position() mapcanvas.Point {
	return v.position
}

// Transform returns the current viewport transform for coordinate
// conversion (see mapcanvas.ScreenToMap).
func (v *Viewport) Transform() mapcanvas.Transform {
	return mapcanvas.Transform{Scale: v.scale, Offset: v.position}
}

// IsZooming reports whether an animated transition is in flight.
func (v *Viewport) IsZooming() bool {
	return v.anim != nil
}

// ZoomToRegion animates the viewport to fit the cached bounds of the given
// region. Missing bounds data or a missing layer handle make this a silent
// no-op; both are expected transient states while data loads.
func (v *Viewport) ZoomToRegion(regionID string) {
	if v.bounds == nil {
		mapcanvas.Logger().Debug("viewport: zoom with no bounds source",
			slog.String("region", regionID))
		return
	}
	b, ok := v.bounds.RegionBounds(regionID)
	if !ok {
		mapcanvas.Logger().Debug("viewport: zoom to unknown region",
			slog.String("region", regionID))
		return
	}
	v.ZoomToBounds(b)
}

// ZoomToBounds animates the viewport so the given map-space box, grown by
// the fit padding, fills the viewport:
//
//	scale = min(viewportWidth/paddedWidth, viewportHeight/paddedHeight)
//
// with the box centered, relative to the base position.
func (v *Viewport) ZoomToBounds(b mapcanvas.Rect) {
	if b.IsEmpty() {
		return
	}
	padded := b.Pad(v.fitPadding)
	scale := padded.FitScale(v.width, v.height)
	v.animateTo(scale, v.centerOn(padded.Center(), scale), nil)
}

// ZoomToPoints is ZoomToBounds over the bounding box of an arbitrary point
// set, typically a just-selected project footprint.
func (v *Viewport) ZoomToPoints(pts []mapcanvas.Point) {
	if len(pts) == 0 {
		return
	}
	v.ZoomToBounds(mapcanvas.BoundsOf(pts))
}

// ZoomToPoint centers the viewport on a single map-space point at a fixed
// zoom level, used for landmark placement preview.
func (v *Viewport) ZoomToPoint(p mapcanvas.Point, fixedScale float64) {
	if fixedScale <= 0 {
		return
	}
	v.animateTo(fixedScale, v.centerOn(p, fixedScale), nil)
}

// ResetZoom animates back to the overview (base scale and position) and,
// on completion, clears the region selection along with its dependents.
func (v *Viewport) ResetZoom() {
	v.animateTo(v.baseScale, v.basePos, func() {
		v.ClearFrom(LevelRegion)
	})
}

// centerOn returns the translation that places map-space point c at the
// viewport center under the given scale, offset by the base position.
func (v *Viewport) centerOn(c mapcanvas.Point, scale float64) mapcanvas.Point {
	return mapcanvas.Pt(v.width/2, v.height/2).Sub(c.Mul(scale)).Add(v.basePos)
}
