package editor

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gogpu/mapcanvas"
)

// sequentialIDs returns a generator producing "poly-1", "poly-2", ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("poly-%d", n)
	}
}

func drawTriangle(e *Editor) {
	e.AddPoint(mapcanvas.Pt(0, 0))
	e.AddPoint(mapcanvas.Pt(10, 0))
	e.AddPoint(mapcanvas.Pt(5, 10))
}

func TestDrawAndFinishScenario(t *testing.T) {
	e := New(WithIDGenerator(sequentialIDs()))

	e.StartDrawing()
	if e.Mode() != ModeDrawingNew {
		t.Fatalf("mode = %v, want drawing-new", e.Mode())
	}
	drawTriangle(e)

	poly, err := e.Finish("region-1", mapcanvas.Name("Test City"), mapcanvas.LabelUp)
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	saved := e.Polygons()
	if len(saved) != 1 {
		t.Fatalf("saved polygons = %d, want 1", len(saved))
	}
	want := []float64{0, 0, 10, 0, 5, 10}
	if len(poly.Points) != len(want) {
		t.Fatalf("points = %v, want %v", poly.Points, want)
	}
	for i := range want {
		if poly.Points[i] != want[i] {
			t.Fatalf("points = %v, want %v", poly.Points, want)
		}
	}
	if poly.RegionID != "region-1" || poly.Label != mapcanvas.LabelUp {
		t.Errorf("polygon = %+v", poly)
	}
	if e.PointCount() != 0 {
		t.Errorf("current points not cleared: %d", e.PointCount())
	}
	if e.Mode() != ModeIdle {
		t.Errorf("mode = %v, want idle", e.Mode())
	}
}

func TestFinishMinimumVertexInvariant(t *testing.T) {
	for _, count := range []int{0, 1, 2} {
		t.Run(fmt.Sprintf("%d points", count), func(t *testing.T) {
			e := New()
			e.StartDrawing()
			for i := 0; i < count; i++ {
				e.AddPoint(mapcanvas.Pt(float64(i), 0))
			}

			_, err := e.Finish("r", mapcanvas.Name("x"), mapcanvas.LabelUp)
			if !errors.Is(err, ErrTooFewPoints) {
				t.Fatalf("err = %v, want ErrTooFewPoints", err)
			}
			if len(e.Polygons()) != 0 {
				t.Error("saved polygons changed")
			}
			if e.PointCount() != count {
				t.Errorf("current points = %d, want %d", e.PointCount(), count)
			}
			if e.Mode() != ModeDrawingNew {
				t.Errorf("mode = %v, drawing mode should not exit", e.Mode())
			}
		})
	}
}

func TestCreateAssignsFreshIDs(t *testing.T) {
	e := New()
	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		e.StartDrawing()
		drawTriangle(e)
		p, err := e.Finish("r", mapcanvas.Name("x"), mapcanvas.LabelDown)
		if err != nil {
			t.Fatalf("Finish: %v", err)
		}
		if p.ID == "" || seen[p.ID] {
			t.Fatalf("id %q not fresh", p.ID)
		}
		seen[p.ID] = true
	}
	if len(e.Polygons()) != 3 {
		t.Errorf("saved = %d, want 3", len(e.Polygons()))
	}
}

func TestEditOverwritesInPlace(t *testing.T) {
	e := New(WithIDGenerator(sequentialIDs()))
	e.StartDrawing()
	drawTriangle(e)
	orig, err := e.Finish("region-1", mapcanvas.Name("Old"), mapcanvas.LabelUp)
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	e.StartEditing(orig.ID)
	if e.Mode() != ModeDrawingEdit {
		t.Fatalf("mode = %v, want drawing-edit", e.Mode())
	}
	if e.PointCount() != 3 {
		t.Fatalf("pre-populated points = %d, want 3", e.PointCount())
	}

	e.UpdatePoint(0, mapcanvas.Pt(-5, -5))
	e.AddPoint(mapcanvas.Pt(0, 20))
	updated, err := e.Finish("ignored-region", mapcanvas.Name("New"), mapcanvas.LabelLeft)
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	if len(e.Polygons()) != 1 {
		t.Fatalf("saved = %d, edit must not append", len(e.Polygons()))
	}
	if updated != orig {
		t.Error("edit should mutate the existing polygon, not replace it")
	}
	if updated.ID != "poly-1" {
		t.Errorf("id changed to %q", updated.ID)
	}
	if updated.RegionID != "region-1" {
		t.Errorf("region changed to %q, original assignment must survive", updated.RegionID)
	}
	if updated.Name.En != "New" || updated.Label != mapcanvas.LabelLeft {
		t.Errorf("fields not updated: %+v", updated)
	}
	if len(updated.Points) != 8 {
		t.Errorf("points = %v, want 4 vertices", updated.Points)
	}
	if updated.Points[0] != -5 || updated.Points[1] != -5 {
		t.Errorf("moved vertex not stored: %v", updated.Points)
	}
}

func TestStartEditingUnknownIDIsNoOp(t *testing.T) {
	e := New()
	e.StartDrawing()
	e.AddPoint(mapcanvas.Pt(1, 2))

	e.StartEditing("city-5")

	if e.Mode() != ModeDrawingNew {
		t.Errorf("mode = %v, must be unchanged", e.Mode())
	}
	if e.PointCount() != 1 {
		t.Errorf("points = %d, must be unchanged", e.PointCount())
	}
	if e.EditingID() != "" {
		t.Errorf("editing id = %q, want empty", e.EditingID())
	}
}

func TestAddPointWhileIdleIgnored(t *testing.T) {
	e := New()
	e.AddPoint(mapcanvas.Pt(1, 1))
	if e.PointCount() != 0 {
		t.Error("idle editor accepted a vertex")
	}
}

func TestUpdateAndDeletePointBounds(t *testing.T) {
	e := New()
	e.StartDrawing()
	e.AddPoint(mapcanvas.Pt(0, 0))
	e.AddPoint(mapcanvas.Pt(1, 1))

	// Out-of-range indices are silently ignored.
	e.UpdatePoint(-1, mapcanvas.Pt(9, 9))
	e.UpdatePoint(2, mapcanvas.Pt(9, 9))
	e.DeletePoint(5)
	if e.PointCount() != 2 {
		t.Fatalf("points = %d, want 2", e.PointCount())
	}

	e.DeletePoint(0)
	pts := e.Points()
	if len(pts) != 1 || pts[0] != mapcanvas.Pt(1, 1) {
		t.Errorf("after delete: %v", pts)
	}
	e.DeletePoint(0)
	if e.PointCount() != 0 {
		t.Error("list should be empty")
	}
}

func TestCancelDiscardsWithoutPersisting(t *testing.T) {
	e := New()
	e.StartDrawing()
	drawTriangle(e)
	e.Cancel()

	if e.Mode() != ModeIdle || e.PointCount() != 0 {
		t.Error("cancel should reset to idle with no points")
	}
	if len(e.Polygons()) != 0 {
		t.Error("cancel must not persist")
	}
}

func TestStartDrawingWhileActiveIsNoOp(t *testing.T) {
	e := New(WithIDGenerator(sequentialIDs()))
	e.StartDrawing()
	drawTriangle(e)
	p, _ := e.Finish("r", mapcanvas.Name("a"), mapcanvas.LabelUp)

	e.StartEditing(p.ID)
	e.StartDrawing()
	if e.Mode() != ModeDrawingEdit {
		t.Errorf("mode = %v, StartDrawing must not clobber an edit session", e.Mode())
	}
}

func TestFinishWithID(t *testing.T) {
	e := New()
	e.StartDrawing()
	drawTriangle(e)
	p, err := e.FinishWithID("server-42", "r", mapcanvas.Name("a"), mapcanvas.LabelUp)
	if err != nil {
		t.Fatalf("FinishWithID: %v", err)
	}
	if p.ID != "server-42" {
		t.Errorf("id = %q, want server-42", p.ID)
	}
}

func TestRemovePolygon(t *testing.T) {
	e := New(WithIDGenerator(sequentialIDs()))
	e.StartDrawing()
	drawTriangle(e)
	p, _ := e.Finish("r", mapcanvas.Name("a"), mapcanvas.LabelUp)

	if !e.RemovePolygon(p.ID) {
		t.Fatal("RemovePolygon returned false for existing id")
	}
	if e.RemovePolygon(p.ID) {
		t.Error("RemovePolygon returned true for missing id")
	}
	if len(e.Polygons()) != 0 {
		t.Error("polygon not removed")
	}
}

func TestRemovePolygonUnderEditCancels(t *testing.T) {
	e := New(WithIDGenerator(sequentialIDs()))
	e.StartDrawing()
	drawTriangle(e)
	p, _ := e.Finish("r", mapcanvas.Name("a"), mapcanvas.LabelUp)

	e.StartEditing(p.ID)
	e.RemovePolygon(p.ID)
	if e.Mode() != ModeIdle || e.EditingID() != "" {
		t.Error("removing the polygon under edit should cancel the session")
	}
}

func TestAddPolygonReplacesById(t *testing.T) {
	e := New()
	e.AddPolygon(&mapcanvas.Polygon{ID: "a", RegionID: "r1"})
	e.AddPolygon(&mapcanvas.Polygon{ID: "a", RegionID: "r2"})
	if len(e.Polygons()) != 1 {
		t.Fatalf("polygons = %d, want 1", len(e.Polygons()))
	}
	p, _ := e.Polygon("a")
	if p.RegionID != "r2" {
		t.Errorf("region = %q, want r2", p.RegionID)
	}
}

func TestPlacePoint(t *testing.T) {
	e := New()
	if _, ok := e.PlacedPoint(); ok {
		t.Fatal("fresh editor has a placed point")
	}
	e.PlacePoint(mapcanvas.Pt(5, 5))
	if _, ok := e.PlacedPoint(); ok {
		t.Fatal("idle editor accepted a placed point")
	}

	e.StartDrawing()
	e.PlacePoint(mapcanvas.Pt(5, 5))
	e.PlacePoint(mapcanvas.Pt(7, 8))
	got, ok := e.PlacedPoint()
	if !ok || got != mapcanvas.Pt(7, 8) {
		t.Errorf("placed = %v ok=%v, want (7,8)", got, ok)
	}

	e.Cancel()
	if _, ok := e.PlacedPoint(); ok {
		t.Error("cancel should clear the placed point")
	}
}
