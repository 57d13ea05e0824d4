package schema

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoJSON - mongo location format for point geometries
type GeoJSON struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// Geometry is an arbitrary GeoJSON geometry. Coordinates is left untyped so
// that points, polygons and multi-geometries all round-trip through mongo
// and the transport layer unmodified.
type Geometry struct {
	Type        string      `bson:"type" json:"type"`
	Coordinates interface{} `bson:"coordinates" json:"coordinates"`
}

// NewPointGeometry builds a point geometry in GeoJSON axis order,
// longitude first.
func NewPointGeometry(longitude, latitude float64) *Geometry {
	return &Geometry{
		Type:        "Point",
		Coordinates: []float64{longitude, latitude},
	}
}

// NormalizeGeometry reconciles the two accepted report location shapes into
// the one canonical stored geometry. A client-supplied geometry is trusted
// as given; otherwise a point is synthesized from the scalar pair.
func NormalizeGeometry(geometry *Geometry, latitude, longitude float64) *Geometry {
	if geometry != nil && geometry.Type != "" {
		return geometry
	}
	return NewPointGeometry(longitude, latitude)
}

// PointCoordinates returns the longitude/latitude pair of a point geometry.
// Coordinates may arrive as []float64 from Go callers, []interface{} from
// JSON decoding or primitive.A from bson decoding, so every shape is handled.
func (g *Geometry) PointCoordinates() (float64, float64, error) {
	if g == nil || g.Type != "Point" {
		return 0, 0, fmt.Errorf("geometry is not a point")
	}

	var values []float64
	switch coords := g.Coordinates.(type) {
	case []float64:
		values = coords
	case []interface{}:
		for _, c := range coords {
			v, ok := toFloat(c)
			if !ok {
				return 0, 0, fmt.Errorf("invalid point coordinate value")
			}
			values = append(values, v)
		}
	case primitive.A:
		for _, c := range coords {
			v, ok := toFloat(c)
			if !ok {
				return 0, 0, fmt.Errorf("invalid point coordinate value")
			}
			values = append(values, v)
		}
	default:
		return 0, 0, fmt.Errorf("invalid point coordinates")
	}

	if len(values) < 2 {
		return 0, 0, fmt.Errorf("point must carry two coordinates")
	}

	return values[0], values[1], nil
}

func toFloat(v interface{}) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case float32:
		return float64(value), true
	case int32:
		return float64(value), true
	case int64:
		return float64(value), true
	case int:
		return float64(value), true
	}
	return 0, false
}

// ValidateCoordinates checks the scalar pair against WGS84 bounds and
// returns every violated constraint, not only the first one.
func ValidateCoordinates(latitude, longitude float64) []string {
	violations := make([]string, 0)

	if latitude > 90 {
		violations = append(violations, "latitude must not be greater than 90")
	}
	if latitude < -90 {
		violations = append(violations, "latitude must not be less than -90")
	}
	if longitude > 180 {
		violations = append(violations, "longitude must not be greater than 180")
	}
	if longitude < -180 {
		violations = append(violations, "longitude must not be less than -180")
	}

	return violations
}
