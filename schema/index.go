package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDBIndexer ensures the indexes backing the spatial queries. Index
// creation is idempotent; callers decide whether a failure is fatal (the
// migrate command) or only logged (server startup), since query correctness
// does not depend on the indexes, only performance.
type MongoDBIndexer struct {
	ctx      context.Context
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(client *mongo.Client, dbName string) *MongoDBIndexer {
	return &MongoDBIndexer{
		ctx:      context.Background(),
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func (m *MongoDBIndexer) IndexAll() error {
	if err := m.IndexPotholeCollection(); err != nil {
		return err
	}
	return m.IndexPhotoCollection()
}

func (m *MongoDBIndexer) IndexPotholeCollection() error {
	if err := m.createIndex(PotholeCollection, mongo.IndexModel{
		Keys: bson.M{
			"geometry": "2dsphere",
		},
	}); err != nil {
		return err
	}

	return m.createIndex(PotholeCollection, mongo.IndexModel{
		Keys: bson.M{
			"reported_at": -1,
		},
	})
}

func (m *MongoDBIndexer) IndexPhotoCollection() error {
	return m.createIndex(PhotoCollection, mongo.IndexModel{
		Keys: bson.M{
			"pothole_id": 1,
		},
	})
}
