package mapcanvas

// Polygon is a closed map annotation: a city boundary or a project
// footprint. Points holds the vertex list in the flat alternating x,y wire
// form (see [PointsToFlat]); a finished polygon has at least three vertices
// (Points length >= 6). Vertex order is the order the shape was drawn in.
type Polygon struct {
	ID       string         `json:"id"`
	Name     LocalizedName  `json:"name"`
	Points   []float64      `json:"points"`
	RegionID string         `json:"regionId"`
	Label    LabelDirection `json:"labelDirection"`
	Image    string         `json:"image,omitempty"`
}

// Vertices returns the vertex list in point form. The slice is freshly
// allocated; mutating it does not affect the polygon.
func (p *Polygon) Vertices() []Point {
	return FlatToPoints(p.Points)
}

// Bounds returns the polygon's axis-aligned bounding box.
func (p *Polygon) Bounds() Rect {
	return BoundsOf(p.Vertices())
}

// LabelAnchor returns where the polygon's label text should be placed:
// the vertex centroid displaced by the label direction.
func (p *Polygon) LabelAnchor(distance float64) Point {
	return Centroid(p.Vertices()).Add(p.Label.Offset(distance))
}

// Landmark is a single-point map annotation with a kind tag. Unlike
// Polygon it has exactly one coordinate pair.
type Landmark struct {
	ID       string        `json:"id"`
	Name     LocalizedName `json:"name"`
	Kind     LandmarkKind  `json:"type"`
	Position Point         `json:"position"`
	CityID   string        `json:"cityId"`
	Image    string        `json:"image,omitempty"`
}
