package render

import "github.com/gogpu/mapcanvas"

// PointInPolygon reports whether a map-space point lies inside the closed
// polygon described by pts, using the even-odd ray casting rule. Polygons
// with fewer than three vertices contain nothing.
func PointInPolygon(pts []mapcanvas.Point, p mapcanvas.Point) bool {
	if len(pts) < 3 {
		return false
	}
	inside := false
	j := len(pts) - 1
	for i := 0; i < len(pts); i++ {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// PolygonAt returns the topmost polygon containing the map-space point.
// Later entries are drawn on top, so the list is searched back to front.
func PolygonAt(polys []*mapcanvas.Polygon, p mapcanvas.Point) *mapcanvas.Polygon {
	for i := len(polys) - 1; i >= 0; i-- {
		if PointInPolygon(polys[i].Vertices(), p) {
			return polys[i]
		}
	}
	return nil
}

// HitTest converts a screen-space pointer position to map space under the
// given transforms and returns the topmost polygon under it, for hover and
// selection styling.
func HitTest(screen mapcanvas.Point, polys []*mapcanvas.Polygon, vp mapcanvas.Transform, groups ...mapcanvas.Transform) *mapcanvas.Polygon {
	return PolygonAt(polys, mapcanvas.ScreenToMap(screen, vp, groups...))
}
