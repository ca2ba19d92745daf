// Package store defines the persistence collaborators the drawing engine
// saves shapes through, and two implementations: an in-memory store for
// tests and previews, and an embedded Badger-backed store.
//
// The engine treats a store as a simple create/update/delete contract.
// Store errors carry no structure beyond presence: the orchestration layer
// turns them into user-facing messages, retrying is always a plain
// re-invocation.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/gogpu/mapcanvas"
)

// ErrNotFound is returned when an id resolves to nothing.
var ErrNotFound = errors.New("store: not found")

// validate checks request struct tags. A single instance caches the parsed
// tags, per the validator documentation.
var validate = validator.New()

// CreatePolygonRequest is the wire form of a new polygon: the serialized
// flat coordinate array plus form fields. ID is optional; a store assigns
// a fresh one when it is empty.
type CreatePolygonRequest struct {
	ID       string    `validate:"omitempty"`
	Name     string    `validate:"required"`
	NameAr   string    `validate:"omitempty"`
	Points   []float64 `validate:"required,min=6"`
	RegionID string    `validate:"required"`
	Label    string    `validate:"required,oneof=up down left right"`
	Image    string    `validate:"omitempty"`
}

// Validate reports whether the request is well formed: named, assigned to
// a region, a valid label direction, and at least three x,y pairs.
func (r CreatePolygonRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("store: invalid polygon: %w", err)
	}
	if len(r.Points)%2 != 0 {
		return fmt.Errorf("store: invalid polygon: odd coordinate count %d", len(r.Points))
	}
	return nil
}

// UpdatePolygonRequest is a partial update: nil fields keep their stored
// values. The id and region assignment of the stored polygon are never
// changed by an update.
type UpdatePolygonRequest struct {
	Name   *string   `validate:"omitempty,min=1"`
	NameAr *string   `validate:"omitempty"`
	Points []float64 `validate:"omitempty,min=6"`
	Label  *string   `validate:"omitempty,oneof=up down left right"`
	Image  *string   `validate:"omitempty"`
}

// Validate reports whether the partial update is well formed.
func (r UpdatePolygonRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("store: invalid polygon update: %w", err)
	}
	if len(r.Points)%2 != 0 {
		return fmt.Errorf("store: invalid polygon update: odd coordinate count %d", len(r.Points))
	}
	return nil
}

// apply copies the set fields onto a stored polygon.
func (r UpdatePolygonRequest) apply(p *mapcanvas.Polygon) error {
	if r.Name != nil {
		p.Name.En = *r.Name
	}
	if r.NameAr != nil {
		p.Name.Ar = *r.NameAr
	}
	if r.Points != nil {
		p.Points = append([]float64(nil), r.Points...)
	}
	if r.Label != nil {
		dir, err := mapcanvas.ParseLabelDirection(*r.Label)
		if err != nil {
			return err
		}
		p.Label = dir
	}
	if r.Image != nil {
		p.Image = *r.Image
	}
	return nil
}

// CreateLandmarkRequest is the wire form of a new landmark: a single
// coordinate pair, a kind tag, and the bilingual name.
type CreateLandmarkRequest struct {
	ID     string  `validate:"omitempty"`
	Name   string  `validate:"required"`
	NameAr string  `validate:"omitempty"`
	Kind   string  `validate:"required,oneof=landmark shop education hospital park mosque"`
	X      float64 `validate:"-"`
	Y      float64 `validate:"-"`
	CityID string  `validate:"required"`
	Image  string  `validate:"omitempty"`
}

// Validate reports whether the request is well formed.
func (r CreateLandmarkRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("store: invalid landmark: %w", err)
	}
	return nil
}

// PolygonStore persists city boundaries and project footprints.
type PolygonStore interface {
	CreatePolygon(ctx context.Context, req CreatePolygonRequest) (*mapcanvas.Polygon, error)
	UpdatePolygon(ctx context.Context, id string, req UpdatePolygonRequest) (*mapcanvas.Polygon, error)
	DeletePolygon(ctx context.Context, id string) error
	GetPolygon(ctx context.Context, id string) (*mapcanvas.Polygon, error)
	ListPolygons(ctx context.Context, regionID string) ([]*mapcanvas.Polygon, error)
}

// LandmarkStore persists landmark points.
type LandmarkStore interface {
	CreateLandmark(ctx context.Context, req CreateLandmarkRequest) (*mapcanvas.Landmark, error)
	DeleteLandmark(ctx context.Context, id string) error
	ListLandmarks(ctx context.Context, cityID string) ([]*mapcanvas.Landmark, error)
}

// polygonFromCreate builds the entity for a validated create request.
func polygonFromCreate(id string, req CreatePolygonRequest) (*mapcanvas.Polygon, error) {
	dir, err := mapcanvas.ParseLabelDirection(req.Label)
	if err != nil {
		return nil, err
	}
	return &mapcanvas.Polygon{
		ID:       id,
		Name:     mapcanvas.LocalizedName{En: req.Name, Ar: req.NameAr},
		Points:   append([]float64(nil), req.Points...),
		RegionID: req.RegionID,
		Label:    dir,
		Image:    req.Image,
	}, nil
}

// landmarkFromCreate builds the entity for a validated create request.
func landmarkFromCreate(id string, req CreateLandmarkRequest) (*mapcanvas.Landmark, error) {
	kind, err := mapcanvas.ParseLandmarkKind(req.Kind)
	if err != nil {
		return nil, err
	}
	return &mapcanvas.Landmark{
		ID:       id,
		Name:     mapcanvas.LocalizedName{En: req.Name, Ar: req.NameAr},
		Kind:     kind,
		Position: mapcanvas.Pt(req.X, req.Y),
		CityID:   req.CityID,
		Image:    req.Image,
	}, nil
}
