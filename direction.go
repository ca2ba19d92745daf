package mapcanvas

import (
	"encoding/json"
	"fmt"
)

// LabelDirection determines where a shape's text label and connector line
// sit relative to its anchor point.
type LabelDirection uint8

// Label direction constants.
const (
	LabelUp LabelDirection = iota
	LabelDown
	LabelLeft
	LabelRight
)

// String returns the wire name for the direction ("up", "down", ...).
func (d LabelDirection) String() string {
	switch d {
	case LabelUp:
		return "up"
	case LabelDown:
		return "down"
	case LabelLeft:
		return "left"
	case LabelRight:
		return "right"
	default:
		return "unknown"
	}
}

// Offset returns the displacement from a label's anchor to its text
// position, at the given distance in map-space units.
func (d LabelDirection) Offset(distance float64) Point {
	switch d {
	case LabelUp:
		return Point{Y: -distance}
	case LabelDown:
		return Point{Y: distance}
	case LabelLeft:
		return Point{X: -distance}
	default:
		return Point{X: distance}
	}
}

// MarshalJSON encodes the direction as its wire name.
func (d LabelDirection) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a wire name.
func (d *LabelDirection) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLabelDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseLabelDirection parses a wire name produced by String.
func ParseLabelDirection(s string) (LabelDirection, error) {
	switch s {
	case "up":
		return LabelUp, nil
	case "down":
		return LabelDown, nil
	case "left":
		return LabelLeft, nil
	case "right":
		return LabelRight, nil
	}
	return LabelUp, fmt.Errorf("mapcanvas: unknown label direction %q", s)
}

// LandmarkKind categorizes a landmark point.
type LandmarkKind uint8

// Landmark kind constants.
const (
	KindLandmark LandmarkKind = iota
	KindShop
	KindEducation
	KindHospital
	KindPark
	KindMosque
)

// String returns the wire name for the kind.
func (k LandmarkKind) String() string {
	switch k {
	case KindLandmark:
		return "landmark"
	case KindShop:
		return "shop"
	case KindEducation:
		return "education"
	case KindHospital:
		return "hospital"
	case KindPark:
		return "park"
	case KindMosque:
		return "mosque"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the kind as its wire name.
func (k LandmarkKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a wire name.
func (k *LandmarkKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLandmarkKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseLandmarkKind parses a wire name produced by String.
func ParseLandmarkKind(s string) (LandmarkKind, error) {
	switch s {
	case "landmark":
		return KindLandmark, nil
	case "shop":
		return KindShop, nil
	case "education":
		return KindEducation, nil
	case "hospital":
		return KindHospital, nil
	case "park":
		return KindPark, nil
	case "mosque":
		return KindMosque, nil
	}
	return KindLandmark, fmt.Errorf("mapcanvas: unknown landmark kind %q", s)
}
