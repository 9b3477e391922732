package domain

import "time"

// RoadAccess describes how reachable a district is by road.
type RoadAccess string

// Road access categories, from fully cut off to unobstructed.
const (
	RoadBlocked RoadAccess = "Blocked"
	RoadLow     RoadAccess = "Low"
	RoadMedium  RoadAccess = "Medium"
	RoadHigh    RoadAccess = "High"
)

// Tier is the recommended action level derived from the urgency score.
type Tier string

const (
	TierImmediate Tier = "Immediate"
	TierUrgent    Tier = "Urgent"
	TierMonitor   Tier = "Monitor"
)

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DistrictRecord holds one district's metrics for a single generation cycle.
// Records are immutable once generated; resource needs are derived on read
// via NeedsFor rather than stored.
type DistrictRecord struct {
	District string `json:"district"`

	// Geo is nil when the district is missing from the coordinate table.
	// The record is still produced, but excluded from map projections.
	Geo *Geo `json:"geo,omitempty"`

	WeatherSeverity float64    `json:"weather_severity"` // [0,1]
	DisruptionIndex float64    `json:"disruption_index"` // [0.7,1.0]
	FloodIndex      int        `json:"flood_index"`      // [0,10]
	RoadAccess      RoadAccess `json:"road_access"`
	UrgencyScore    float64    `json:"urgency_score"` // [0,1]
	Recommendation  Tier       `json:"recommendation"`
	Population      int        `json:"population"` // [5000,20000]
}

// RegionDataset is one region's generated records plus the generation
// timestamp. A refresh replaces the dataset wholesale; records never
// carry over between cycles.
type RegionDataset struct {
	Region      string           `json:"region"`
	Records     []DistrictRecord `json:"records"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// RequestStatus tracks an aid request through the approval workflow.
type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusApproved RequestStatus = "Approved"
)

// AidRequest is one submitted aid request. Requests live in an append-only
// sequence; positional index is their identity. The only permitted mutation
// is the one-way Pending to Approved transition.
type AidRequest struct {
	Region  string        `json:"region"`
	AidType string        `json:"aid_type"`
	Status  RequestStatus `json:"status"`
}
