// Package controls mediates between the create/edit form, the drawing
// editor, the viewport, and the persistence stores. It is the only layer
// that produces user-facing error messages: the editor and viewport either
// perform an operation or silently no-op, and controls decides what the
// human hears about it.
//
// Controls also enforces the one mutual-exclusion invariant the canvas
// has: while a viewport transition is in flight, clicks and drags are
// suppressed, because a vertex or pan computed against a mid-animation
// transform would land in the wrong place once the animation settles.
package controls

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/mapcanvas"
	"github.com/gogpu/mapcanvas/editor"
	"github.com/gogpu/mapcanvas/store"
	"github.com/gogpu/mapcanvas/viewport"
)

// User-recoverable precondition violations. Saving stays blocked until the
// user adds points, selects a context, or fills the form.
var (
	ErrTooFewPoints     = errors.New("at least 3 points are required to save a polygon")
	ErrNoRegionSelected = errors.New("select a region before saving")
	ErrNoCitySelected   = errors.New("select a city before saving")
	ErrNoPointPlaced    = errors.New("click the map to place the landmark first")
	ErrNameRequired     = errors.New("a name is required")
)

// DefaultLandmarkPreviewScale is the fixed zoom level used to preview a
// just-placed landmark.
const DefaultLandmarkPreviewScale = 2.5

// Form holds the user-facing fields of the create/edit panel.
type Form struct {
	Name   string
	NameAr string
	Label  mapcanvas.LabelDirection
	Kind   mapcanvas.LandmarkKind
	Image  string
}

// Reset clears the form to its zero state.
func (f *Form) Reset() {
	*f = Form{}
}

// Controls orchestrates one drawing surface.
type Controls struct {
	editor    *editor.Editor
	view      *viewport.Viewport
	polygons  store.PolygonStore
	landmarks store.LandmarkStore

	// group is the nested drawing-group transform between the viewport
	// layer and map space.
	group mapcanvas.Transform

	previewScale float64

	form Form

	// placing marks the current session as single-point landmark
	// placement rather than polygon drawing.
	placing bool
}

// Option configures Controls during creation.
type Option func(*Controls)

// WithGroupTransform sets the nested group transform applied between the
// viewport and map space when converting pointer positions.
func WithGroupTransform(t mapcanvas.Transform) Option {
	return func(c *Controls) { c.group = t }
}

// WithLandmarkPreviewScale sets the fixed zoom level for landmark
// placement previews.
func WithLandmarkPreviewScale(s float64) Option {
	return func(c *Controls) {
		if s > 0 {
			c.previewScale = s
		}
	}
}

// New wires the orchestration layer to its collaborators.
func New(ed *editor.Editor, view *viewport.Viewport, polygons store.PolygonStore, landmarks store.LandmarkStore, opts ...Option) *Controls {
	c := &Controls{
		editor:       ed,
		view:         view,
		polygons:     polygons,
		landmarks:    landmarks,
		group:        mapcanvas.IdentityTransform(),
		previewScale: DefaultLandmarkPreviewScale,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Form returns the mutable form state bound to the edit panel.
func (c *Controls) Form() *Form {
	return &c.form
}

// StartDrawing begins a new polygon drawing session.
func (c *Controls) StartDrawing() {
	c.placing = false
	c.editor.StartDrawing()
}

// StartEditing loads an existing polygon into the editor and seeds the
// form from its stored fields. Unknown ids leave everything unchanged.
func (c *Controls) StartEditing(id string) {
	c.editor.StartEditing(id)
	if c.editor.EditingID() != id {
		return
	}
	if p, ok := c.editor.Polygon(id); ok {
		c.placing = false
		c.form.Name = p.Name.En
		c.form.NameAr = p.Name.Ar
		c.form.Label = p.Label
		c.form.Image = p.Image
	}
}

// StartPlacingLandmark begins a single-point landmark placement session:
// exactly one click is captured, later clicks move the point.
func (c *Controls) StartPlacingLandmark() {
	c.placing = true
	c.editor.StartDrawing()
}

// HandleCanvasClick routes a pointer click in screen space to the editor,
// converting through the viewport and group transforms. Clicks are
// dropped while a transition is in flight or no drawing session is
// active.
func (c *Controls) HandleCanvasClick(screen mapcanvas.Point) {
	if c.view.IsZooming() {
		mapcanvas.Logger().Debug("controls: click suppressed during transition")
		return
	}
	if c.editor.Mode() == editor.ModeIdle {
		return
	}
	p := mapcanvas.ScreenToMap(screen, c.view.Transform(), c.group)
	if c.placing {
		c.editor.PlacePoint(p)
		c.view.ZoomToPoint(p, c.previewScale)
		return
	}
	c.editor.AddPoint(p)
}

// HandleDragMove routes a drag-move to the viewport. Drags are dropped
// while a transition is in flight.
func (c *Controls) HandleDragMove(candidate mapcanvas.Point) {
	if c.view.IsZooming() {
		mapcanvas.Logger().Debug("controls: drag suppressed during transition")
		return
	}
	c.view.Drag(candidate)
}

// Cancel abandons the current drawing session and clears the form.
func (c *Controls) Cancel() {
	c.editor.Cancel()
	c.placing = false
	c.form.Reset()
}

// CanSavePolygon reports whether the save action should be enabled:
// enough vertices, a region selected, and a name entered.
func (c *Controls) CanSavePolygon() bool {
	return c.editor.PointCount() >= 3 &&
		c.view.Selected(viewport.LevelRegion) != "" &&
		c.form.Name != ""
}

// SavePolygon persists the in-progress shape together with the form
// fields, then commits it locally and zooms to the result.
//
// Preconditions are reported as recoverable errors and change nothing.
// A persistence failure is returned with the drawing state untouched, so
// the user can retry without redrawing. Only after the store accepts the
// shape is the editor's finish applied.
func (c *Controls) SavePolygon(ctx context.Context) (*mapcanvas.Polygon, error) {
	if c.editor.PointCount() < 3 {
		return nil, ErrTooFewPoints
	}
	regionID := c.view.Selected(viewport.LevelRegion)
	if regionID == "" {
		return nil, ErrNoRegionSelected
	}
	if c.form.Name == "" {
		return nil, ErrNameRequired
	}

	points := mapcanvas.PointsToFlat(c.editor.Points())
	name := mapcanvas.LocalizedName{En: c.form.Name, Ar: c.form.NameAr}

	var persistedID string
	if editingID := c.editor.EditingID(); editingID != "" {
		label := c.form.Label.String()
		_, err := c.polygons.UpdatePolygon(ctx, editingID, store.UpdatePolygonRequest{
			Name:   &c.form.Name,
			NameAr: &c.form.NameAr,
			Points: points,
			Label:  &label,
			Image:  imagePtr(c.form.Image),
		})
		if err != nil {
			return nil, fmt.Errorf("saving polygon failed: %w", err)
		}
		persistedID = editingID
	} else {
		created, err := c.polygons.CreatePolygon(ctx, store.CreatePolygonRequest{
			Name:     c.form.Name,
			NameAr:   c.form.NameAr,
			Points:   points,
			RegionID: regionID,
			Label:    c.form.Label.String(),
			Image:    c.form.Image,
		})
		if err != nil {
			return nil, fmt.Errorf("saving polygon failed: %w", err)
		}
		persistedID = created.ID
	}

	poly, err := c.editor.FinishWithID(persistedID, regionID, name, c.form.Label)
	if err != nil {
		// Unreachable: the vertex count was checked above.
		return nil, err
	}
	c.form.Reset()
	c.view.ZoomToPoints(poly.Vertices())
	return poly, nil
}

// CanSaveLandmark reports whether the landmark save action should be
// enabled.
func (c *Controls) CanSaveLandmark() bool {
	_, placed := c.editor.PlacedPoint()
	return placed &&
		c.view.Selected(viewport.LevelCity) != "" &&
		c.form.Name != ""
}

// SaveLandmark persists the placed point together with the form fields.
// Like SavePolygon, persistence failures leave the placement intact.
func (c *Controls) SaveLandmark(ctx context.Context) (*mapcanvas.Landmark, error) {
	p, placed := c.editor.PlacedPoint()
	if !placed {
		return nil, ErrNoPointPlaced
	}
	cityID := c.view.Selected(viewport.LevelCity)
	if cityID == "" {
		return nil, ErrNoCitySelected
	}
	if c.form.Name == "" {
		return nil, ErrNameRequired
	}

	lm, err := c.landmarks.CreateLandmark(ctx, store.CreateLandmarkRequest{
		Name:   c.form.Name,
		NameAr: c.form.NameAr,
		Kind:   c.form.Kind.String(),
		X:      p.X,
		Y:      p.Y,
		CityID: cityID,
	})
	if err != nil {
		return nil, fmt.Errorf("saving landmark failed: %w", err)
	}

	c.editor.Cancel()
	c.placing = false
	c.form.Reset()
	return lm, nil
}

// DeletePolygon removes a polygon from the store and the editor's
// collection.
func (c *Controls) DeletePolygon(ctx context.Context, id string) error {
	if err := c.polygons.DeletePolygon(ctx, id); err != nil {
		return fmt.Errorf("deleting polygon failed: %w", err)
	}
	c.editor.RemovePolygon(id)
	return nil
}

func imagePtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
