package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/roadcare/pothole-api/geo"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

// MongoStore - interface for report persistence and spatial queries
type MongoStore interface {
	PotholeReport
	PotholePhoto
	Dashboard
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client   *mongo.Client
	database string
	resolver geo.LocationResolver
}

// Ping - ping mongo db
func (m *mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m *mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewMongoStore - return report store operations. The resolver backs the
// best-effort location enrichment and may be nil to disable it.
func NewMongoStore(client *mongo.Client, database string, resolver geo.LocationResolver) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
		resolver: resolver,
	}
}
