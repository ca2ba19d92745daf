// Package regions provides the read-only region boundary source: static
// vector geometry bundled with the binary, parsed once, with each region's
// axis-aligned bounding box cached process-wide for zoom-to-fit
// calculations. Boundaries never change at runtime.
package regions

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/gogpu/mapcanvas"
)

//go:embed regions.geojson
var defaultBoundaries []byte

// Region is one named boundary from the bundled set. Geometry coordinates
// are in map space, not longitude/latitude.
type Region struct {
	ID       string
	Name     mapcanvas.LocalizedName
	Geometry orb.Geometry
}

// Source resolves region ids to boundary geometry and cached bounds.
// It is immutable after construction and safe for concurrent reads.
type Source struct {
	regions map[string]Region
	bounds  map[string]mapcanvas.Rect
	order   []string
}

// FromGeoJSON parses a GeoJSON feature collection into a Source. Each
// feature must carry an "id" property; "name" and "nameAr" are the
// bilingual display names.
func FromGeoJSON(data []byte) (*Source, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("regions: parse boundaries: %w", err)
	}

	s := &Source{
		regions: make(map[string]Region, len(fc.Features)),
		bounds:  make(map[string]mapcanvas.Rect, len(fc.Features)),
	}
	for _, f := range fc.Features {
		id, _ := f.Properties["id"].(string)
		if id == "" {
			return nil, fmt.Errorf("regions: feature without id property")
		}
		if _, dup := s.regions[id]; dup {
			return nil, fmt.Errorf("regions: duplicate region id %q", id)
		}
		name, _ := f.Properties["name"].(string)
		nameAr, _ := f.Properties["nameAr"].(string)

		s.regions[id] = Region{
			ID:       id,
			Name:     mapcanvas.LocalizedName{En: name, Ar: nameAr},
			Geometry: f.Geometry,
		}
		s.bounds[id] = rectFromBound(f.Geometry.Bound())
		s.order = append(s.order, id)
	}

	mapcanvas.Logger().Info("regions: boundary set loaded")
	return s, nil
}

func rectFromBound(b orb.Bound) mapcanvas.Rect {
	return mapcanvas.Rect{
		X:      b.Min[0],
		Y:      b.Min[1],
		Width:  b.Max[0] - b.Min[0],
		Height: b.Max[1] - b.Min[1],
	}
}

var (
	defaultOnce   sync.Once
	defaultSource *Source
	defaultErr    error
)

// Default returns the Source for the bundled boundary set. The data is
// parsed on first use and shared process-wide.
func Default() (*Source, error) {
	defaultOnce.Do(func() {
		defaultSource, defaultErr = FromGeoJSON(defaultBoundaries)
	})
	return defaultSource, defaultErr
}

// RegionBounds returns the cached bounding box for a region id. It
// implements the viewport's BoundsSource contract; unknown ids report
// false so zoom operations degrade to no-ops.
func (s *Source) RegionBounds(id string) (mapcanvas.Rect, bool) {
	r, ok := s.bounds[id]
	return r, ok
}

// Region returns the full region record for an id.
func (s *Source) Region(id string) (Region, bool) {
	r, ok := s.regions[id]
	return r, ok
}

// IDs returns the region ids in file order.
func (s *Source) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of regions in the set.
func (s *Source) Len() int {
	return len(s.order)
}

// Outline returns a region's outer boundary as a map-space point list,
// for rendering. Only Polygon and MultiPolygon geometries have outlines;
// other geometry types return nil.
func (s *Source) Outline(id string) []mapcanvas.Point {
	r, ok := s.regions[id]
	if !ok {
		return nil
	}
	var ring orb.Ring
	switch g := r.Geometry.(type) {
	case orb.Polygon:
		if len(g) == 0 {
			return nil
		}
		ring = g[0]
	case orb.MultiPolygon:
		if len(g) == 0 || len(g[0]) == 0 {
			return nil
		}
		ring = g[0][0]
	default:
		return nil
	}

	pts := make([]mapcanvas.Point, 0, len(ring))
	for _, p := range ring {
		pts = append(pts, mapcanvas.Pt(p[0], p[1]))
	}
	return pts
}
