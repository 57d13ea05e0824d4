package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/roadcare/pothole-api/schema"
)

// PotholePhoto - photo attachment operations
type PotholePhoto interface {
	AddPhoto(potholeID primitive.ObjectID, photo *schema.PotholePhoto) (*schema.PotholePhoto, error)
	GetPhoto(photoID primitive.ObjectID) (*schema.PotholePhoto, error)
	ListPhotos(potholeID primitive.ObjectID) ([]schema.PotholePhoto, error)
}

// AddPhoto attaches a photo to an existing report. A photo cannot exist
// without its owner, so the report is looked up first.
func (m *mongoDB) AddPhoto(potholeID primitive.ObjectID, photo *schema.PotholePhoto) (*schema.PotholePhoto, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	db := m.client.Database(m.database)

	if err := db.Collection(schema.PotholeCollection).FindOne(ctx, bson.M{"_id": potholeID},
		options.FindOne().SetProjection(bson.M{"_id": 1})).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPotholeNotFound
		}
		return nil, err
	}

	photo.ID = primitive.NewObjectID()
	photo.PotholeID = potholeID
	photo.UploadedAt = time.Now().UTC()

	if _, err := db.Collection(schema.PhotoCollection).InsertOne(ctx, photo); err != nil {
		return nil, err
	}

	return photo, nil
}

func (m *mongoDB) GetPhoto(photoID primitive.ObjectID) (*schema.PotholePhoto, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PhotoCollection)

	var photo schema.PotholePhoto
	if err := c.FindOne(ctx, bson.M{"_id": photoID}).Decode(&photo); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}

	return &photo, nil
}

// ListPhotos returns a report's photos ordered by upload time.
func (m *mongoDB) ListPhotos(potholeID primitive.ObjectID) ([]schema.PotholePhoto, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PhotoCollection)

	opts := options.Find().
		SetSort(bson.M{"uploaded_at": 1}).
		SetProjection(bson.M{"data": 0})
	cur, err := c.Find(ctx, bson.M{"pothole_id": potholeID}, opts)
	if err != nil {
		return nil, err
	}

	result := make([]schema.PotholePhoto, 0)
	if err := cur.All(ctx, &result); err != nil {
		return nil, err
	}

	return result, nil
}
