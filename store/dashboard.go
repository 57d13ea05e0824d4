package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/roadcare/pothole-api/schema"
)

// PotholeFilter narrows the admin dashboard listing. Empty fields match
// everything.
type PotholeFilter struct {
	Status   string
	Severity string
	District string
}

// Dashboard - admin triage operations
type Dashboard interface {
	DashboardPotholes(filter PotholeFilter) ([]schema.Pothole, error)
	PotholeStats() (*schema.PotholeStats, error)
}

// DashboardPotholes lists reports matching the filter, newest first.
func (m *mongoDB) DashboardPotholes(filter PotholeFilter) ([]schema.Pothole, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Severity != "" {
		query["severity"] = filter.Severity
	}
	if filter.District != "" {
		query["district"] = filter.District
	}

	return m.findPotholes(query)
}

// PotholeStats aggregates report counts by status, severity and district.
func (m *mongoDB) PotholeStats() (*schema.PotholeStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PotholeCollection)

	total, err := c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	stats := schema.PotholeStats{
		Total:        total,
		ByStatus:     make([]schema.StatusCount, 0),
		BySeverity:   make([]schema.SeverityCount, 0),
		TopDistricts: make([]schema.DistrictCount, 0),
	}

	cur, err := c.Aggregate(ctx, aggStageGroupCount("status"))
	if err != nil {
		return nil, err
	}
	if err := cur.All(ctx, &stats.ByStatus); err != nil {
		return nil, err
	}

	cur, err = c.Aggregate(ctx, aggStageGroupCount("severity"))
	if err != nil {
		return nil, err
	}
	if err := cur.All(ctx, &stats.BySeverity); err != nil {
		return nil, err
	}

	pipeline := append([]bson.M{
		{"$match": bson.M{"district": bson.M{"$exists": true, "$ne": ""}}},
	}, aggStageGroupCount("district")...)
	pipeline = append(pipeline, bson.M{"$limit": 5})

	cur, err = c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if err := cur.All(ctx, &stats.TopDistricts); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"prefix": mongoLogPrefix,
		"total":  stats.Total,
	}).Debug("dashboard stats computed")

	return &stats, nil
}
