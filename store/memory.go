package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/gogpu/mapcanvas"
)

// Memory is an in-process store for tests, demos, and preview sessions.
// It is safe for concurrent use.
type Memory struct {
	mu        sync.RWMutex
	polygons  map[string]*mapcanvas.Polygon
	landmarks map[string]*mapcanvas.Landmark

	// insertion order, so listings are stable
	polyOrder []string
	lmOrder   []string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		polygons:  make(map[string]*mapcanvas.Polygon),
		landmarks: make(map[string]*mapcanvas.Landmark),
	}
}

var _ PolygonStore = (*Memory)(nil)
var _ LandmarkStore = (*Memory)(nil)

// CreatePolygon validates and stores a new polygon, assigning a fresh id
// unless the request carries one.
func (m *Memory) CreatePolygon(_ context.Context, req CreatePolygonRequest) (*mapcanvas.Polygon, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	p, err := polygonFromCreate(id, req)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.polygons[id]; !exists {
		m.polyOrder = append(m.polyOrder, id)
	}
	m.polygons[id] = p
	return copyPolygon(p), nil
}

// UpdatePolygon applies a partial update to a stored polygon.
func (m *Memory) UpdatePolygon(_ context.Context, id string, req UpdatePolygonRequest) (*mapcanvas.Polygon, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.polygons[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := req.apply(p); err != nil {
		return nil, err
	}
	return copyPolygon(p), nil
}

// DeletePolygon removes a stored polygon.
func (m *Memory) DeletePolygon(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.polygons[id]; !ok {
		return ErrNotFound
	}
	delete(m.polygons, id)
	for i, pid := range m.polyOrder {
		if pid == id {
			m.polyOrder = append(m.polyOrder[:i], m.polyOrder[i+1:]...)
			break
		}
	}
	return nil
}

// GetPolygon returns a stored polygon by id.
func (m *Memory) GetPolygon(_ context.Context, id string) (*mapcanvas.Polygon, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.polygons[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyPolygon(p), nil
}

// ListPolygons returns stored polygons in insertion order. An empty
// regionID lists every polygon.
func (m *Memory) ListPolygons(_ context.Context, regionID string) ([]*mapcanvas.Polygon, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*mapcanvas.Polygon
	for _, id := range m.polyOrder {
		p := m.polygons[id]
		if regionID == "" || p.RegionID == regionID {
			out = append(out, copyPolygon(p))
		}
	}
	return out, nil
}

// CreateLandmark validates and stores a new landmark.
func (m *Memory) CreateLandmark(_ context.Context, req CreateLandmarkRequest) (*mapcanvas.Landmark, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	lm, err := landmarkFromCreate(id, req)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.landmarks[id]; !exists {
		m.lmOrder = append(m.lmOrder, id)
	}
	m.landmarks[id] = lm
	out := *lm
	return &out, nil
}

// DeleteLandmark removes a stored landmark.
func (m *Memory) DeleteLandmark(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.landmarks[id]; !ok {
		return ErrNotFound
	}
	delete(m.landmarks, id)
	for i, lid := range m.lmOrder {
		if lid == id {
			m.lmOrder = append(m.lmOrder[:i], m.lmOrder[i+1:]...)
			break
		}
	}
	return nil
}

// ListLandmarks returns stored landmarks in insertion order. An empty
// cityID lists every landmark.
func (m *Memory) ListLandmarks(_ context.Context, cityID string) ([]*mapcanvas.Landmark, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*mapcanvas.Landmark
	for _, id := range m.lmOrder {
		lm := m.landmarks[id]
		if cityID == "" || lm.CityID == cityID {
			cp := *lm
			out = append(out, &cp)
		}
	}
	return out, nil
}

// copyPolygon returns a detached copy so callers cannot mutate stored
// state through returned pointers.
func copyPolygon(p *mapcanvas.Polygon) *mapcanvas.Polygon {
	cp := *p
	cp.Points = append([]float64(nil), p.Points...)
	return &cp
}
