// Package editor implements the polygon and landmark drawing state machine:
// the in-progress vertex list, the saved polygon collection, and the
// draw/edit/finish/cancel lifecycle.
//
// An Editor moves through three modes:
//
//	idle --StartDrawing--> drawing-new --Finish (>=3 pts)--> idle
//	idle --StartEditing--> drawing-edit --Finish--> idle
//
// and either drawing mode returns to idle via Cancel, discarding the
// in-progress vertices without persisting them.
//
// Editor is single-writer by design: all mutation happens synchronously in
// response to discrete input events, so it carries no locking. Wrap it if
// you need to drive it from multiple goroutines.
package editor

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gogpu/mapcanvas"
)

// ErrTooFewPoints is returned by Finish when the in-progress vertex list
// has fewer than three points.
var ErrTooFewPoints = errors.New("editor: a polygon needs at least 3 points")

// Mode is the tri-state drawing flag controlling whether pointer clicks
// append vertices.
type Mode uint8

// Drawing modes.
const (
	// ModeIdle accepts no vertex input.
	ModeIdle Mode = iota

	// ModeDrawingNew accumulates vertices for a polygon that does not
	// exist yet.
	ModeDrawingNew

	// ModeDrawingEdit accumulates vertices for an existing polygon,
	// pre-populated from its stored points.
	ModeDrawingEdit
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDrawingNew:
		return "drawing-new"
	case ModeDrawingEdit:
		return "drawing-edit"
	default:
		return "unknown"
	}
}

// Editor owns the shape currently being drawn and the library of saved
// polygons. Exactly one polygon may be under edit at a time.
type Editor struct {
	mode      Mode
	current   []mapcanvas.Point
	editingID string

	polygons []*mapcanvas.Polygon

	// placed is the single captured landmark coordinate, if any.
	placed *mapcanvas.Point

	newID func() string
}

// Option configures an Editor during creation.
type Option func(*Editor)

// WithIDGenerator overrides how ids for newly finished polygons are
// generated. The default is uuid.NewString. Useful for deterministic tests.
func WithIDGenerator(gen func() string) Option {
	return func(e *Editor) {
		if gen != nil {
			e.newID = gen
		}
	}
}

// New creates an idle Editor with an empty polygon collection.
func New(opts ...Option) *Editor {
	e := &Editor{newID: uuid.NewString}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Mode returns the current drawing mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// EditingID returns the id of the polygon under edit, or "" when not in
// drawing-edit mode.
func (e *Editor) EditingID() string {
	return e.editingID
}

// StartDrawing enters drawing-new mode. It is a no-op unless the editor is
// idle; an in-flight drawing session is never silently discarded.
func (e *Editor) StartDrawing() {
	if e.mode != ModeIdle {
		return
	}
	e.mode = ModeDrawingNew
}

// StartEditing looks up a saved polygon by id and enters drawing-edit mode
// with the in-progress list pre-populated from its stored points. An
// unknown id leaves the editor untouched.
//
// The silent not-found behavior is deliberate: displayed and stored
// polygons can briefly disagree while data loads, and entering edit mode
// against a missing polygon would corrupt the session. A debug record is
// logged so the mismatch is visible in development.
func (e *Editor) StartEditing(id string) {
	p, ok := e.lookup(id)
	if !ok {
		mapcanvas.Logger().Debug("editor: start editing unknown polygon",
			slog.String("id", id))
		return
	}
	e.current = mapcanvas.FlatToPoints(p.Points)
	e.editingID = id
	e.mode = ModeDrawingEdit
}

// Cancel discards the in-progress vertices and any placed landmark point
// and returns to idle. Saved polygons are untouched.
func (e *Editor) Cancel() {
	e.current = nil
	e.editingID = ""
	e.placed = nil
	e.mode = ModeIdle
}

// AddPoint appends a vertex to the in-progress list. Calls while idle are
// ignored; gating input by mode is the caller's job, this is the backstop.
func (e *Editor) AddPoint(p mapcanvas.Point) {
	if e.mode == ModeIdle {
		mapcanvas.Logger().Debug("editor: add point while idle ignored")
		return
	}
	e.current = append(e.current, p)
}

// UpdatePoint replaces the vertex at index. Out-of-range indices are a
// caller contract violation and are silently ignored.
func (e *Editor) UpdatePoint(index int, p mapcanvas.Point) {
	if index < 0 || index >= len(e.current) {
		return
	}
	e.current[index] = p
}

// DeletePoint removes the vertex at index, shifting later vertices down.
// Out-of-range indices are silently ignored. Lists of fewer than three
// points are valid unfinished drawing states.
func (e *Editor) DeletePoint(index int) {
	if index < 0 || index >= len(e.current) {
		return
	}
	e.current = append(e.current[:index], e.current[index+1:]...)
}

// ClearPoints resets the in-progress list to empty without leaving the
// current mode.
func (e *Editor) ClearPoints() {
	e.current = nil
}

// Points returns a copy of the in-progress vertex list.
func (e *Editor) Points() []mapcanvas.Point {
	out := make([]mapcanvas.Point, len(e.current))
	copy(out, e.current)
	return out
}

// PointCount returns the number of in-progress vertices.
func (e *Editor) PointCount() int {
	return len(e.current)
}

// Finish completes the drawing session. With fewer than three vertices it
// returns ErrTooFewPoints and changes nothing, so the user can keep adding
// points.
//
// In drawing-edit mode the target polygon is overwritten in place: its
// points, name, and label direction are replaced while its id and original
// region assignment are preserved. Otherwise a new polygon with a fresh id
// is appended to the collection under regionID.
//
// On success the in-progress list is cleared and the editor returns to
// idle. The finished polygon is returned in both cases.
func (e *Editor) Finish(regionID string, name mapcanvas.LocalizedName, dir mapcanvas.LabelDirection) (*mapcanvas.Polygon, error) {
	return e.finish(e.newID(), regionID, name, dir)
}

// FinishWithID is Finish with a caller-supplied id for the create case,
// used when a persistence layer has already assigned the id. When the
// editor is in drawing-edit mode the existing polygon keeps its own id and
// the argument is ignored.
func (e *Editor) FinishWithID(id, regionID string, name mapcanvas.LocalizedName, dir mapcanvas.LabelDirection) (*mapcanvas.Polygon, error) {
	if id == "" {
		id = e.newID()
	}
	return e.finish(id, regionID, name, dir)
}

func (e *Editor) finish(id, regionID string, name mapcanvas.LocalizedName, dir mapcanvas.LabelDirection) (*mapcanvas.Polygon, error) {
	if len(e.current) < 3 {
		return nil, ErrTooFewPoints
	}

	var poly *mapcanvas.Polygon
	if e.editingID != "" {
		if existing, ok := e.lookup(e.editingID); ok {
			existing.Points = mapcanvas.PointsToFlat(e.current)
			existing.Name = name
			existing.Label = dir
			poly = existing
		}
	}
	if poly == nil {
		poly = &mapcanvas.Polygon{
			ID:       id,
			Name:     name,
			Points:   mapcanvas.PointsToFlat(e.current),
			RegionID: regionID,
			Label:    dir,
		}
		e.polygons = append(e.polygons, poly)
	}

	e.current = nil
	e.editingID = ""
	e.mode = ModeIdle
	return poly, nil
}

// Polygons returns the saved polygons in insertion order. The slice is a
// copy; the polygons themselves are shared.
func (e *Editor) Polygons() []*mapcanvas.Polygon {
	out := make([]*mapcanvas.Polygon, len(e.polygons))
	copy(out, e.polygons)
	return out
}

// Polygon returns the saved polygon with the given id.
func (e *Editor) Polygon(id string) (*mapcanvas.Polygon, bool) {
	return e.lookup(id)
}

// AddPolygon inserts an already-persisted polygon into the collection,
// typically when hydrating the editor from a store. Existing entries with
// the same id are replaced.
func (e *Editor) AddPolygon(p *mapcanvas.Polygon) {
	if p == nil {
		return
	}
	for i, existing := range e.polygons {
		if existing.ID == p.ID {
			e.polygons[i] = p
			return
		}
	}
	e.polygons = append(e.polygons, p)
}

// RemovePolygon deletes a saved polygon by id and reports whether it was
// present. Removing the polygon under edit cancels the edit session.
func (e *Editor) RemovePolygon(id string) bool {
	for i, p := range e.polygons {
		if p.ID == id {
			e.polygons = append(e.polygons[:i], e.polygons[i+1:]...)
			if e.editingID == id {
				e.Cancel()
			}
			return true
		}
	}
	return false
}

func (e *Editor) lookup(id string) (*mapcanvas.Polygon, bool) {
	for _, p := range e.polygons {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// PlacePoint captures the single landmark coordinate. Repeated calls
// replace the previous capture; like AddPoint it is ignored while idle.
func (e *Editor) PlacePoint(p mapcanvas.Point) {
	if e.mode == ModeIdle {
		mapcanvas.Logger().Debug("editor: place point while idle ignored")
		return
	}
	e.placed = &p
}

// PlacedPoint returns the captured landmark coordinate, if one exists.
func (e *Editor) PlacedPoint() (mapcanvas.Point, bool) {
	if e.placed == nil {
		return mapcanvas.Point{}, false
	}
	return *e.placed, true
}
