package viewport

import "github.com/gogpu/mapcanvas"

// ClampDrag limits a proposed pan translation so the scaled map content
// cannot be dragged to reveal empty space beyond the drag padding. It is a
// pure function of the current scale and map dimensions, and it is
// idempotent: an already-clamped position is a fixed point.
//
// While a transition is in flight the candidate is returned unchanged, so
// programmatic animation is never fought by the clamp.
func (v *Viewport) ClampDrag(candidate mapcanvas.Point) mapcanvas.Point {
	if v.IsZooming() {
		return candidate
	}
	return mapcanvas.Point{
		X: clampAxis(candidate.X, v.width, v.mapW*v.scale, v.dragPadding),
		Y: clampAxis(candidate.Y, v.height, v.mapH*v.scale, v.dragPadding),
	}
}

// clampAxis clamps a translation along one axis. When the scaled content
// is smaller than the viewport the valid range inverts; the content is
// centered instead.
func clampAxis(pos, viewport, content, padding float64) float64 {
	hi := padding
	lo := viewport - content - padding
	if lo > hi {
		return (viewport - content) / 2
	}
	if pos < lo {
		return lo
	}
	if pos > hi {
		return hi
	}
	return pos
}

// Drag applies a user drag-move to the viewport: the candidate position is
// clamped and becomes the current translation. Drags are suppressed while
// a transition is in flight.
func (v *Viewport) Drag(candidate mapcanvas.Point) {
	if v.IsZooming() {
		mapcanvas.Logger().Debug("viewport: drag suppressed during transition")
		return
	}
	v.position = v.ClampDrag(candidate)
	v.apply()
}
