package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/gogpu/mapcanvas"
)

// key prefixes; the id follows directly.
const (
	polygonPrefix  = "polygon/"
	landmarkPrefix = "landmark/"
)

// BadgerConfig configures the embedded store.
type BadgerConfig struct {
	dataDir  string
	inMemory bool
}

// NewBadgerConfig returns the default configuration. A data directory or
// in-memory mode must be chosen before opening.
func NewBadgerConfig() BadgerConfig {
	return BadgerConfig{}
}

// WithDataDir sets the on-disk location of the store.
func (c BadgerConfig) WithDataDir(dir string) BadgerConfig {
	c.dataDir = dir
	return c
}

// WithInMemory switches the store to a non-persistent in-memory backend,
// useful for tests that still exercise the full storage path.
func (c BadgerConfig) WithInMemory(inMemory bool) BadgerConfig {
	c.inMemory = inMemory
	return c
}

func (c BadgerConfig) validate() error {
	if c.dataDir == "" && !c.inMemory {
		return errors.New("store: badger config needs a data directory or in-memory mode")
	}
	return nil
}

// Badger is a PolygonStore and LandmarkStore backed by an embedded Badger
// key-value database. Entities are stored as JSON under prefixed keys.
type Badger struct {
	db *badger.DB
}

var _ PolygonStore = (*Badger)(nil)
var _ LandmarkStore = (*Badger)(nil)

// OpenBadger opens (creating if needed) the embedded store.
func OpenBadger(cfg BadgerConfig) (*Badger, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	opts := badger.DefaultOptions(cfg.dataDir).
		WithInMemory(cfg.inMemory).
		WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger: %w", err)
	}
	return &Badger{db: db}, nil
}

// Close releases the underlying database.
func (b *Badger) Close() error {
	if err := b.db.Close(); err != nil {
		mapcanvas.Logger().Warn("store: badger close", "error", err)
		return err
	}
	return nil
}

// CreatePolygon validates and stores a new polygon, assigning a fresh id
// unless the request carries one.
func (b *Badger) CreatePolygon(_ context.Context, req CreatePolygonRequest) (*mapcanvas.Polygon, error) {
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
	if err := b.put(polygonPrefix+id, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdatePolygon applies a partial update in a single read-modify-write
// transaction.
func (b *Badger) UpdatePolygon(_ context.Context, id string, req UpdatePolygonRequest) (*mapcanvas.Polygon, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var p mapcanvas.Polygon
	err := b.db.Update(func(txn *badger.Txn) error {
		if err := getJSON(txn, polygonPrefix+id, &p); err != nil {
			return err
		}
		if err := req.apply(&p); err != nil {
			return err
		}
		return setJSON(txn, polygonPrefix+id, &p)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePolygon removes a stored polygon.
func (b *Badger) DeletePolygon(_ context.Context, id string) error {
	return b.deleteKey(polygonPrefix + id)
}

// GetPolygon returns a stored polygon by id.
func (b *Badger) GetPolygon(_ context.Context, id string) (*mapcanvas.Polygon, error) {
	var p mapcanvas.Polygon
	err := b.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, polygonPrefix+id, &p)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPolygons returns stored polygons in key order. An empty regionID
// lists every polygon.
func (b *Badger) ListPolygons(_ context.Context, regionID string) ([]*mapcanvas.Polygon, error) {
	var out []*mapcanvas.Polygon
	err := b.scan(polygonPrefix, func(val []byte) error {
		var p mapcanvas.Polygon
		if err := json.Unmarshal(val, &p); err != nil {
			return err
		}
		if regionID == "" || p.RegionID == regionID {
			out = append(out, &p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateLandmark validates and stores a new landmark.
func (b *Badger) CreateLandmark(_ context.Context, req CreateLandmarkRequest) (*mapcanvas.Landmark, error) {
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
	if err := b.put(landmarkPrefix+id, lm); err != nil {
		return nil, err
	}
	return lm, nil
}

// DeleteLandmark removes a stored landmark.
func (b *Badger) DeleteLandmark(_ context.Context, id string) error {
	return b.deleteKey(landmarkPrefix + id)
}

// ListLandmarks returns stored landmarks in key order. An empty cityID
// lists every landmark.
func (b *Badger) ListLandmarks(_ context.Context, cityID string) ([]*mapcanvas.Landmark, error) {
	var out []*mapcanvas.Landmark
	err := b.scan(landmarkPrefix, func(val []byte) error {
		var lm mapcanvas.Landmark
		if err := json.Unmarshal(val, &lm); err != nil {
			return err
		}
		if cityID == "" || lm.CityID == cityID {
			out = append(out, &lm)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Badger) put(key string, v any) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, key, v)
	})
}

func (b *Badger) deleteKey(key string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(key)); errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		} else if err != nil {
			return err
		}
		return txn.Delete([]byte(key))
	})
}

func (b *Badger) scan(prefix string, fn func(val []byte) error) error {
	return b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			if err := it.Item().Value(fn); err != nil {
				return err
			}
		}
		return nil
	})
}

func getJSON(txn *badger.Txn, key string, v any) error {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

func setJSON(txn *badger.Txn, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return txn.Set([]byte(key), data)
}
