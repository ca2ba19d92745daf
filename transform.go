package mapcanvas

// Transform is a uniform scale followed by a translation:
//
//	screen = map*Scale + Offset
//
// It is the restricted affine transform the canvas needs. Viewport zoom/pan
// is one Transform; a semantic group nested inside the map layer (for
// example a drawing group shifted by (120, 0) and scaled by 0.95) is
// another. Arbitrary nesting is expressed with [Transform.Compose].
type Transform struct {
	Scale  float64
	Offset Point
}

// IdentityTransform returns the identity transform (scale 1, no offset).
func IdentityTransform() Transform {
	return Transform{Scale: 1}
}

// Apply converts a map-space point to the parent coordinate space.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: p.X*t.Scale + t.Offset.X,
		Y: p.Y*t.Scale + t.Offset.Y,
	}
}

// Unapply converts a parent-space point back to map space. It is the exact
// inverse of Apply for any non-zero scale.
func (t Transform) Unapply(p Point) Point {
	return Point{
		X: (p.X - t.Offset.X) / t.Scale,
		Y: (p.Y - t.Offset.Y) / t.Scale,
	}
}

// Compose nests inner within t and returns the combined transform, so that
//
//	t.Compose(inner).Apply(p) == t.Apply(inner.Apply(p))
//
// for every point p. Composition is associative, so a chain of nested
// groups reduces left to right.
func (t Transform) Compose(inner Transform) Transform {
	return Transform{
		Scale:  t.Scale * inner.Scale,
		Offset: inner.Offset.Mul(t.Scale).Add(t.Offset),
	}
}

// ScreenToMap converts a screen-space pointer position to map space under
// the viewport transform and any nested group transforms, listed outermost
// first. With a single group g this reduces to
//
//	map = (screen - viewport.Offset - g.Offset*viewport.Scale) / (g.Scale*viewport.Scale)
//
// which is the inverse of MapToScreen to within floating-point tolerance.
func ScreenToMap(screen Point, viewport Transform, groups ...Transform) Point {
	t := viewport
	for _, g := range groups {
		t = t.Compose(g)
	}
	return t.Unapply(screen)
}

// MapToScreen converts a map-space point to screen space under the viewport
// transform and any nested group transforms, listed outermost first.
func MapToScreen(p Point, viewport Transform, groups ...Transform) Point {
	t := viewport
	for _, g := range groups {
		t = t.Compose(g)
	}
	return t.Apply(p)
}
