// Command mapdemo demonstrates the mapcanvas drawing engine: it loads the
// bundled region boundaries, zooms into a region, draws and persists a
// district polygon and a landmark, and renders the result to a PNG.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/gogpu/mapcanvas"
	"github.com/gogpu/mapcanvas/controls"
	"github.com/gogpu/mapcanvas/editor"
	"github.com/gogpu/mapcanvas/regions"
	"github.com/gogpu/mapcanvas/render"
	"github.com/gogpu/mapcanvas/store"
	"github.com/gogpu/mapcanvas/viewport"
)

// frameLayer records the viewport transform the way a render tree node
// would, so the renderer can pick it up per frame.
type frameLayer struct {
	transform mapcanvas.Transform
}

func (l *frameLayer) SetTransform(scale float64, pos mapcanvas.Point) {
	l.transform = mapcanvas.Transform{Scale: scale, Offset: pos}
}

func main() {
	var (
		width  = flag.Int("width", 1024, "image width")
		height = flag.Int("height", 768, "image height")
		region = flag.String("region", "riyadh", "region to zoom into")
		output = flag.String("output", "mapdemo.png", "output file")
	)
	flag.Parse()

	source, err := regions.Default()
	if err != nil {
		log.Fatalf("Failed to load regions: %v", err)
	}

	layer := &frameLayer{transform: mapcanvas.IdentityTransform()}
	view := viewport.New(float64(*width), float64(*height),
		viewport.WithLayer(layer),
		viewport.WithBoundsSource(source),
	)
	ed := editor.New()
	db := store.NewMemory()

	group := mapcanvas.Transform{Scale: 0.95, Offset: mapcanvas.Pt(120, 0)}
	ctl := controls.New(ed, view, db, db, controls.WithGroupTransform(group))

	// Zoom into the region and run the animation to completion.
	view.Select(viewport.LevelRegion, *region)
	view.ZoomToRegion(*region)
	settle(view)

	// Draw a district polygon against the zoomed viewport.
	b, ok := source.RegionBounds(*region)
	if !ok {
		log.Fatalf("Unknown region %q", *region)
	}
	ctl.StartDrawing()
	for _, p := range districtOutline(b) {
		ctl.HandleCanvasClick(mapcanvas.MapToScreen(p, view.Transform(), group))
	}
	form := ctl.Form()
	form.Name = "Demo District"
	form.NameAr = "حي تجريبي"
	form.Label = mapcanvas.LabelUp

	ctx := context.Background()
	poly, err := ctl.SavePolygon(ctx)
	if err != nil {
		log.Fatalf("Failed to save polygon: %v", err)
	}
	settle(view)

	// Place a landmark inside the new district.
	view.Select(viewport.LevelCity, poly.ID)
	ctl.StartPlacingLandmark()
	ctl.HandleCanvasClick(mapcanvas.MapToScreen(b.Center(), view.Transform(), group))
	form = ctl.Form()
	form.Name = "Demo Landmark"
	form.Kind = mapcanvas.KindPark
	if _, err := ctl.SaveLandmark(ctx); err != nil {
		log.Fatalf("Failed to save landmark: %v", err)
	}
	settle(view)

	// Render the final state.
	r, err := render.New(*width, *height, render.WithGroupTransform(group))
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer func() { _ = r.Close() }()

	polygons, err := db.ListPolygons(ctx, "")
	if err != nil {
		log.Fatalf("Failed to list polygons: %v", err)
	}
	landmarks, err := db.ListLandmarks(ctx, "")
	if err != nil {
		log.Fatalf("Failed to list landmarks: %v", err)
	}

	frame := render.Frame{
		Viewport:   layer.transform,
		Polygons:   polygons,
		Landmarks:  landmarks,
		SelectedID: poly.ID,
	}
	for _, id := range source.IDs() {
		rg, _ := source.Region(id)
		frame.Regions = append(frame.Regions, render.RegionShape{
			ID:      rg.ID,
			Name:    rg.Name,
			Outline: source.Outline(id),
		})
	}
	r.RenderFrame(frame)

	if err := r.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// settle steps the viewport animation in 30 fps increments until it
// completes.
func settle(v *viewport.Viewport) {
	for i := 0; i < 120 && v.IsZooming(); i++ {
		v.Tick(1.0 / 30)
	}
}

// districtOutline builds a small quad inside a region's bounding box.
func districtOutline(b mapcanvas.Rect) []mapcanvas.Point {
	c := b.Center()
	w := b.Width * 0.2
	h := b.Height * 0.2
	return []mapcanvas.Point{
		mapcanvas.Pt(c.X-w, c.Y-h),
		mapcanvas.Pt(c.X+w, c.Y-h),
		mapcanvas.Pt(c.X+w, c.Y+h),
		mapcanvas.Pt(c.X-w, c.Y+h),
	}
}
