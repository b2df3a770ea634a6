package gtfsrt

import (
	"strconv"
	"strings"

	"github.com/nowtrain/yamanote-live/stations"
)

// Trip ID prefixes used by the ODPT feed for the two Yamanote services.
const (
	outerLoopPrefix = "4201"
	innerLoopPrefix = "4211"
)

// IsYamanote reports whether a trip ID belongs to a Yamanote line train.
// Yamanote trip IDs end with the service letter "G".
func IsYamanote(tripID string) bool {
	return strings.HasSuffix(tripID, "G")
}

// TrainNumber extracts the train number from a Yamanote trip ID by stripping
// the four-digit service prefix. Returns "" when the ID is too short.
func TrainNumber(tripID string) string {
	if len(tripID) <= 4 {
		return ""
	}
	return tripID[4:]
}

// DirectionForTrip derives the loop direction from a trip ID. The four-digit
// prefix is authoritative; when it matches neither service the train number
// parity decides (odd numbers run the outer loop).
func DirectionForTrip(tripID string) (stations.Direction, bool) {
	if strings.HasPrefix(tripID, outerLoopPrefix) {
		return stations.OuterLoop, true
	}
	if strings.HasPrefix(tripID, innerLoopPrefix) {
		return stations.InnerLoop, true
	}
	return directionFromNumber(TrainNumber(tripID))
}

func directionFromNumber(trainNumber string) (stations.Direction, bool) {
	digits := strings.TrimRight(trainNumber, "G")
	n, err := strconv.Atoi(digits)
	if err != nil {
		return "", false
	}
	if n%2 == 1 {
		return stations.OuterLoop, true
	}
	return stations.InnerLoop, true
}
