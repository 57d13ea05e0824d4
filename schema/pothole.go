package schema

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PotholeCollection = "potholes"
	PhotoCollection   = "photos"
)

// Severity of a reported pothole.
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// ParseSeverity maps free-form client input onto the severity enumeration.
// Matching is case-insensitive and anything unrecognized falls back to LOW.
func ParseSeverity(value string) Severity {
	switch Severity(strings.ToUpper(value)) {
	case SeverityMedium:
		return SeverityMedium
	case SeverityHigh:
		return SeverityHigh
	}
	return SeverityLow
}

// ValidSeverity reports whether value is exactly one of the enumerated
// severities. Used by update paths which must reject instead of falling back.
func ValidSeverity(value string) bool {
	switch Severity(value) {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// Status of a report in the triage lifecycle.
// The canonical vocabulary is Pending / In Progress / Fixed.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusFixed      Status = "Fixed"
)

// ParseStatus validates value against the canonical status set.
func ParseStatus(value string) (Status, bool) {
	switch Status(value) {
	case StatusPending, StatusInProgress, StatusFixed:
		return Status(value), true
	}
	return "", false
}

// RoadSource provenance markers for enriched location fields.
const (
	RoadSourceAPI    = "api"
	RoadSourceClient = "client"
)

// Pothole is a citizen-submitted report. The geometry field is the single
// source of truth for spatial queries; latitude/longitude are kept as a
// denormalized convenience for geocoding and response assembly.
type Pothole struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Description  string             `bson:"description" json:"description"`
	ReporterName string             `bson:"reporter_name" json:"reporterName"`
	Severity     Severity           `bson:"severity" json:"severity"`
	Status       Status             `bson:"status" json:"status"`
	Latitude     float64            `bson:"latitude" json:"latitude"`
	Longitude    float64            `bson:"longitude" json:"longitude"`
	Geometry     *Geometry          `bson:"geometry" json:"geometry"`
	RoadName     string             `bson:"road_name,omitempty" json:"roadName,omitempty"`
	RoadSource   string             `bson:"road_source,omitempty" json:"roadSource,omitempty"`
	District     string             `bson:"district,omitempty" json:"district,omitempty"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	ReportedAt   time.Time          `bson:"reported_at" json:"reportedAt"`
	Photos       []PotholePhoto     `bson:"-" json:"photos"`
}

// PotholePhoto is a binary attachment exclusively owned by one report.
// The payload is never serialized into report listings.
type PotholePhoto struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PotholeID  primitive.ObjectID `bson:"pothole_id" json:"potholeId"`
	Filename   string             `bson:"filename" json:"filename"`
	Mimetype   string             `bson:"mimetype" json:"mimetype"`
	Data       []byte             `bson:"data" json:"-"`
	UploadedAt time.Time          `bson:"uploaded_at" json:"uploadedAt"`
}

// PotholeDistance annotates a report with its geodesic distance to a
// queried point, as computed by the store's $geoNear stage.
type PotholeDistance struct {
	Pothole        `bson:",inline"`
	DistanceMeters float64 `bson:"dist" json:"distanceMeters"`
}

// Proximity is the auxiliary response data computed when a creation request
// carries a context geometry. It never mutates stored state.
type Proximity struct {
	ClosestPoint   GeoJSON `bson:"closest_point" json:"closestPoint"`
	DistanceMeters float64 `bson:"dist" json:"distanceMeters"`
}

type StatusCount struct {
	Status string `bson:"_id" json:"status"`
	Count  int64  `bson:"count" json:"count"`
}

type SeverityCount struct {
	Severity string `bson:"_id" json:"severity"`
	Count    int64  `bson:"count" json:"count"`
}

type DistrictCount struct {
	District string `bson:"_id" json:"district"`
	Count    int64  `bson:"count" json:"count"`
}

// PotholeStats is the admin dashboard aggregate.
type PotholeStats struct {
	Total        int64           `json:"total"`
	ByStatus     []StatusCount   `json:"byStatus"`
	BySeverity   []SeverityCount `json:"bySeverity"`
	TopDistricts []DistrictCount `json:"topDistricts"`
}
