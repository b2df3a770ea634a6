// Package timetable evaluates a static timetable into per-train
// schedule states: which segment each active train is on at a given
// service time, or which station it is dwelling at.
package timetable

import (
	"github.com/nowtrain/yamanote-live/stations"
)

// StopTime is one scheduled call of a trip, in service-day seconds.
// After-midnight calls carry values past 86400.
type StopTime struct {
	StationID    string `json:"stationId"`
	ArrivalSec   int    `json:"arrivalSec"`
	DepartureSec int    `json:"departureSec"`
}

// Trip is one train's scheduled run around the loop.
type Trip struct {
	TrainNumber string             `json:"trainNumber"`
	Direction   stations.Direction `json:"direction"`
	ServiceType string             `json:"serviceType,omitempty"`
	StopTimes   []StopTime         `json:"stopTimes"`
}

// Timetable holds all trips for one service type. Read-only after
// construction.
type Timetable struct {
	trips []Trip
}

// New builds a timetable from trips.
func New(trips []Trip) *Timetable {
	t := &Timetable{trips: make([]Trip, len(trips))}
	copy(t.trips, trips)
	return t
}

// TripCount returns the number of trips in the timetable.
func (t *Timetable) TripCount() int { return len(t.trips) }
