package store

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/roadcare/pothole-api/schema"
)

// geoIntersectsQuery matches documents whose geometry intersects the given
// geometry, boundary inclusive.
func geoIntersectsQuery(geometry *schema.Geometry) bson.M {
	return bson.M{
		"geometry": bson.M{
			"$geoIntersects": bson.M{
				"$geometry": geometry,
			},
		},
	}
}

// aggStageGeoProximity orders documents by ascending spherical distance to
// the point and annotates each with the distance in meters.
func aggStageGeoProximity(maxDistance, longitude, latitude float64) bson.M {
	return bson.M{
		"$geoNear": bson.M{
			"near": bson.M{
				"type":        "Point",
				"coordinates": bson.A{longitude, latitude},
			},
			"distanceField": "dist",
			"maxDistance":   maxDistance,
			"spherical":     true,
		},
	}
}

// aggStageGeoProximityTo restricts the proximity computation to documents
// matching query and exposes the closest point of the stored geometry.
func aggStageGeoProximityTo(longitude, latitude float64, query bson.M) bson.M {
	return bson.M{
		"$geoNear": bson.M{
			"near": bson.M{
				"type":        "Point",
				"coordinates": bson.A{longitude, latitude},
			},
			"distanceField": "dist",
			"includeLocs":   "closest_point",
			"spherical":     true,
			"query":         query,
		},
	}
}

func aggStageGroupCount(field string) []bson.M {
	return []bson.M{
		{"$group": bson.M{
			"_id":   "$" + field,
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"count": -1, "_id": 1}},
	}
}
