package position

import (
	"time"

	"github.com/nowtrain/yamanote-live/stations"
)

// ScheduleState is one train's nominal position at a given instant per
// the timetable. Produced by the timetable evaluator; never mutated
// here.
type ScheduleState struct {
	TrainNumber    string
	Direction      stations.Direction
	FromStation    string
	ToStation      string
	Progress       float64
	IsStopped      bool
	StoppedAt      string
	ServiceTimeSec int
}

// RealtimeReport is the most recent GTFS-RT vehicle sample for a train.
// Train numbers are assumed to be normalized to the timetable's form by
// the feed client.
type RealtimeReport struct {
	TrainNumber  string
	Latitude     float64
	Longitude    float64
	StopSequence int
	Status       int
	Timestamp    int64
}

// Quality classifies how a final position was derived.
type Quality string

const (
	// QualityGood means a fresh real-time fix drove the position.
	QualityGood Quality = "good"
	// QualityStale means schedule and an aging real-time fix were
	// blended.
	QualityStale Quality = "stale"
	// QualityRejected means a real-time fix existed but matched no
	// candidate segment within the distance threshold.
	QualityRejected Quality = "rejected"
	// QualityTimetableOnly means no usable real-time fix; the timetable
	// alone drove the position.
	QualityTimetableOnly Quality = "timetable_only"
	// QualityError means inputs were malformed; the schedule progress
	// was used as a last resort.
	QualityError Quality = "error"
)

// BlendedPosition is the engine's output record for one train.
type BlendedPosition struct {
	TrainNumber string             `json:"trainNumber"`
	Direction   stations.Direction `json:"direction"`
	FromStation string             `json:"fromStation,omitempty"`
	ToStation   string             `json:"toStation,omitempty"`
	Progress    float64            `json:"progress"`
	Longitude   float64            `json:"longitude"`
	Latitude    float64            `json:"latitude"`
	IsStopped   bool               `json:"isStopped"`
	StationID   string             `json:"stationId,omitempty"`
	DataQuality Quality            `json:"dataQuality"`

	// Raw real-time passthrough, present when a report existed.
	StopSequence *int `json:"stopSequence,omitempty"`
	Status       *int `json:"status,omitempty"`
}

// Config carries the engine's tunables. Thresholds are configuration,
// not hardwired law; deployments adjust them without touching the
// algorithm.
type Config struct {
	// MaxDistanceMeters rejects real-time points farther than this from
	// every candidate segment.
	MaxDistanceMeters float64
	// FreshThreshold is the report age up to which real-time progress
	// is used as-is.
	FreshThreshold time.Duration
	// StaleThreshold is the report age at and beyond which the
	// timetable alone is trusted.
	StaleThreshold time.Duration
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		MaxDistanceMeters: 500.0,
		FreshThreshold:    30 * time.Second,
		StaleThreshold:    120 * time.Second,
	}
}
