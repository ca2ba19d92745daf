// Package mapcanvas provides the state and geometry engine for an
// interactive, zoomable map canvas: coordinate transforms between screen
// space and map space, polygon and landmark editing state, drill-down
// viewport navigation with animated transitions, and canvas rendering.
//
// # Overview
//
// mapcanvas powers admin dashboards that manage geographic content
// (regions, cities, projects, landmarks) drawn as polygon and point
// annotations over a map image. The root package holds the shared
// vocabulary: points, transforms, bounds, easing curves, label
// directions, and the bilingual entity types. The behavior lives in
// subpackages:
//
//   - editor: the polygon/point drawing state machine
//   - viewport: zoom, pan, drill-down selection, and animated transitions
//   - regions: the static region boundary source and its cached bounds
//   - store: persistence collaborators (in-memory and Badger-backed)
//   - controls: form orchestration between the editor and the stores
//   - render: drawing via github.com/gogpu/gg
//
// # Quick Start
//
//	ed := editor.New()
//	ed.StartDrawing()
//	ed.AddPoint(mapcanvas.Pt(0, 0))
//	ed.AddPoint(mapcanvas.Pt(10, 0))
//	ed.AddPoint(mapcanvas.Pt(5, 10))
//	poly, err := ed.Finish("region-1", mapcanvas.Name("Test City"), mapcanvas.LabelUp)
//
// # Coordinate System
//
// Map space is the fixed logical coordinate system of the underlying map
// image, independent of zoom and pan. Screen space is pixel coordinates
// relative to the canvas viewport. Both use the standard graphics
// convention: origin at top-left, X increases right, Y increases down.
// Transform values convert between the two; see [ScreenToMap] and
// [MapToScreen].
//
// # Logging
//
// By default mapcanvas produces no log output. Call [SetLogger] to enable
// diagnostics, including debug records for the deliberately silent no-op
// paths (unknown polygon ids, missing region bounds, missing layer handle).
package mapcanvas
