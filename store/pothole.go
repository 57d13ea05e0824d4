package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/roadcare/pothole-api/schema"
)

var (
	ErrPotholeNotFound = fmt.Errorf("pothole not found")
	ErrPhotoNotFound   = fmt.Errorf("photo not found")
)

// PotholeUpdate carries the partial update payload. Only non-nil fields
// are applied.
type PotholeUpdate struct {
	Severity    *schema.Severity
	Status      *schema.Status
	Description *string
	Notes       *string
}

// PotholeReport - report lifecycle and spatial query operations
type PotholeReport interface {
	CreatePothole(pothole *schema.Pothole, photos []*schema.PotholePhoto, contextGeometry *schema.Geometry) (*schema.Pothole, *schema.Proximity, error)
	GetPothole(id primitive.ObjectID) (*schema.Pothole, error)
	ListPotholes() ([]schema.Pothole, error)
	ListPotholesWithin(geometry *schema.Geometry) ([]schema.Pothole, error)
	ListPotholesNearby(latitude, longitude, radiusMeters float64) ([]schema.PotholeDistance, error)
	UpdatePothole(id primitive.ObjectID, update PotholeUpdate) (*schema.Pothole, error)
	DeletePothole(id primitive.ObjectID) error
}

// CreatePothole persists a report with its canonical geometry, attaches the
// supplied photos and opportunistically backfills location metadata. The
// enrichment lookup is awaited here but its failure never fails the create.
func (m *mongoDB) CreatePothole(pothole *schema.Pothole, photos []*schema.PotholePhoto, contextGeometry *schema.Geometry) (*schema.Pothole, *schema.Proximity, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PotholeCollection)

	pothole.ID = primitive.NewObjectID()
	pothole.ReportedAt = time.Now().UTC()
	pothole.Geometry = schema.NormalizeGeometry(pothole.Geometry, pothole.Latitude, pothole.Longitude)

	if _, err := c.InsertOne(ctx, pothole); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("insert pothole")
		return nil, nil, err
	}

	m.enrichPothole(pothole)

	for _, photo := range photos {
		if _, err := m.AddPhoto(pothole.ID, photo); err != nil {
			return nil, nil, err
		}
	}

	var proximity *schema.Proximity
	if contextGeometry != nil {
		p, err := m.potholeProximity(pothole.ID, contextGeometry)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix":     mongoLogPrefix,
				"pothole_id": pothole.ID.Hex(),
				"error":      err,
			}).Error("compute pothole proximity")
		} else {
			proximity = p
		}
	}

	created, err := m.GetPothole(pothole.ID)
	if err != nil {
		return nil, nil, err
	}

	return created, proximity, nil
}

// enrichPothole resolves road name, district and full address for fields
// the client left empty and persists them with a follow-up update. Every
// failure is swallowed after logging; creation success does not depend on
// the geocoder.
func (m *mongoDB) enrichPothole(pothole *schema.Pothole) {
	if m.resolver == nil {
		return
	}
	if pothole.RoadName != "" && pothole.District != "" && pothole.Address != "" {
		return
	}

	address, err := m.resolver.Resolve(pothole.Latitude, pothole.Longitude)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"pothole_id": pothole.ID.Hex(),
			"error":      err,
		}).Warn("reverse geocode enrichment failed")
		return
	}

	fields := bson.M{}
	if pothole.RoadName == "" && address.RoadName != "" {
		fields["road_name"] = address.RoadName
		fields["road_source"] = schema.RoadSourceAPI
	}
	if pothole.District == "" && address.District != "" {
		fields["district"] = address.District
	}
	if pothole.Address == "" && address.FullAddress != "" {
		fields["address"] = address.FullAddress
	}
	if len(fields) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PotholeCollection)
	if _, err := c.UpdateOne(ctx, bson.M{"_id": pothole.ID}, bson.M{"$set": fields}); err != nil {
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"pothole_id": pothole.ID.Hex(),
			"error":      err,
		}).Warn("persist enrichment")
	}
}

// potholeProximity computes the closest point on the stored geometry to the
// context geometry and the geodesic distance between them. The context must
// be a point; the spatial engine stays the single evaluator of geodesic math.
func (m *mongoDB) potholeProximity(id primitive.ObjectID, contextGeometry *schema.Geometry) (*schema.Proximity, error) {
	lon, lat, err := contextGeometry.PointCoordinates()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PotholeCollection)
	cur, err := c.Aggregate(ctx, []bson.M{
		aggStageGeoProximityTo(lon, lat, bson.M{"_id": id}),
	})
	if err != nil {
		return nil, err
	}

	var results []schema.Proximity
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrPotholeNotFound
	}

	return &results[0], nil
}

// GetPothole loads a report along with its photos, ordered by upload time.
func (m *mongoDB) GetPothole(id primitive.ObjectID) (*schema.Pothole, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PotholeCollection)

	var pothole schema.Pothole
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&pothole); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPotholeNotFound
		}
		return nil, err
	}

	photos, err := m.ListPhotos(id)
	if err != nil {
		return nil, err
	}
	pothole.Photos = photos

	return &pothole, nil
}

// ListPotholes returns every report, newest first.
func (m *mongoDB) ListPotholes() ([]schema.Pothole, error) {
	return m.findPotholes(bson.M{})
}

// ListPotholesWithin returns reports whose stored geometry intersects the
// given geometry, boundary inclusive, newest first.
func (m *mongoDB) ListPotholesWithin(geometry *schema.Geometry) ([]schema.Pothole, error) {
	return m.findPotholes(geoIntersectsQuery(geometry))
}

func (m *mongoDB) findPotholes(query bson.M) ([]schema.Pothole, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PotholeCollection)

	opts := options.Find().SetSort(bson.M{"reported_at": -1})
	cur, err := c.Find(ctx, query, opts)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("query potholes")
		return nil, err
	}

	result := make([]schema.Pothole, 0)
	if err := cur.All(ctx, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// ListPotholesNearby returns reports within the geodesic radius of the
// given point, ascending by distance and annotated with it. A report at
// exactly the radius is included.
func (m *mongoDB) ListPotholesNearby(latitude, longitude, radiusMeters float64) ([]schema.PotholeDistance, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PotholeCollection)
	cur, err := c.Aggregate(ctx, []bson.M{
		aggStageGeoProximity(radiusMeters, longitude, latitude),
	})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("query nearby potholes")
		return nil, err
	}

	result := make([]schema.PotholeDistance, 0)
	if err := cur.All(ctx, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// UpdatePothole applies only the fields present in the partial payload.
func (m *mongoDB) UpdatePothole(id primitive.ObjectID, update PotholeUpdate) (*schema.Pothole, error) {
	fields := bson.M{}
	if update.Severity != nil {
		fields["severity"] = *update.Severity
	}
	if update.Status != nil {
		fields["status"] = *update.Status
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Notes != nil {
		fields["notes"] = *update.Notes
	}

	if len(fields) > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		defer cancel()

		c := m.client.Database(m.database).Collection(schema.PotholeCollection)
		result, err := c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 0 {
			return nil, ErrPotholeNotFound
		}
	}

	return m.GetPothole(id)
}

// DeletePothole removes the report's photos first, then the report itself.
// The explicit two-step ordering keeps the behavior portable to stores
// without cascading delete support.
func (m *mongoDB) DeletePothole(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	db := m.client.Database(m.database)

	if _, err := db.Collection(schema.PhotoCollection).DeleteMany(ctx, bson.M{"pothole_id": id}); err != nil {
		return err
	}

	result, err := db.Collection(schema.PotholeCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrPotholeNotFound
	}

	return nil
}
