package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewPointGeometry(t *testing.T) {
	g := NewPointGeometry(77.6, 12.9)

	assert.Equal(t, "Point", g.Type)
	// GeoJSON axis order is longitude first
	assert.Equal(t, []float64{77.6, 12.9}, g.Coordinates)
}

func TestNormalizeGeometrySynthesizesPoint(t *testing.T) {
	g := NormalizeGeometry(nil, 12.9, 77.6)

	assert.Equal(t, "Point", g.Type)
	assert.Equal(t, []float64{77.6, 12.9}, g.Coordinates)

	// a geometry without a type is treated as absent
	g = NormalizeGeometry(&Geometry{}, 12.9, 77.6)
	assert.Equal(t, "Point", g.Type)
	assert.Equal(t, []float64{77.6, 12.9}, g.Coordinates)
}

func TestNormalizeGeometryKeepsSuppliedGeometry(t *testing.T) {
	supplied := &Geometry{
		Type: "Polygon",
		Coordinates: [][][]float64{{
			{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0},
		}},
	}

	g := NormalizeGeometry(supplied, 12.9, 77.6)
	assert.Equal(t, supplied, g)
}

func TestPointCoordinates(t *testing.T) {
	lon, lat, err := NewPointGeometry(77.6, 12.9).PointCoordinates()
	assert.NoError(t, err)
	assert.Equal(t, 77.6, lon)
	assert.Equal(t, 12.9, lat)

	// JSON decoding yields []interface{}
	lon, lat, err = (&Geometry{Type: "Point", Coordinates: []interface{}{77.6, 12.9}}).PointCoordinates()
	assert.NoError(t, err)
	assert.Equal(t, 77.6, lon)
	assert.Equal(t, 12.9, lat)

	// bson decoding yields primitive.A
	lon, lat, err = (&Geometry{Type: "Point", Coordinates: primitive.A{77.6, 12.9}}).PointCoordinates()
	assert.NoError(t, err)
	assert.Equal(t, 77.6, lon)
	assert.Equal(t, 12.9, lat)
}

func TestPointCoordinatesRejectsNonPoints(t *testing.T) {
	_, _, err := (&Geometry{Type: "Polygon"}).PointCoordinates()
	assert.Error(t, err)

	var nilGeometry *Geometry
	_, _, err = nilGeometry.PointCoordinates()
	assert.Error(t, err)

	_, _, err = (&Geometry{Type: "Point", Coordinates: []float64{77.6}}).PointCoordinates()
	assert.Error(t, err)

	_, _, err = (&Geometry{Type: "Point", Coordinates: "77.6,12.9"}).PointCoordinates()
	assert.Error(t, err)

	_, _, err = (&Geometry{Type: "Point", Coordinates: []interface{}{"east", "north"}}).PointCoordinates()
	assert.Error(t, err)
}

func TestValidateCoordinates(t *testing.T) {
	testCases := []struct {
		name       string
		latitude   float64
		longitude  float64
		violations []string
	}{
		{"valid", 12.9, 77.6, []string{}},
		{"latitude north bound", 90, 180, []string{}},
		{"latitude south bound", -90, -180, []string{}},
		{"latitude too large", 90.1, 0, []string{"latitude must not be greater than 90"}},
		{"latitude too small", -90.1, 0, []string{"latitude must not be less than -90"}},
		{"longitude too large", 0, 180.1, []string{"longitude must not be greater than 180"}},
		{"longitude too small", 0, -180.1, []string{"longitude must not be less than -180"}},
		{"both out of range", 91, 181, []string{
			"latitude must not be greater than 90",
			"longitude must not be greater than 180",
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.violations, ValidateCoordinates(tc.latitude, tc.longitude))
		})
	}
}
