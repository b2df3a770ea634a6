package timetable

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// Load reads a timetable JSON file of the form {"trips": [...]}.
func Load(path string) (*Timetable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read timetable: %w", err)
	}

	var doc struct {
		Trips []Trip `json:"trips"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse timetable: %w", err)
	}

	kept := make([]Trip, 0, len(doc.Trips))
	for _, trip := range doc.Trips {
		if trip.TrainNumber == "" || len(trip.StopTimes) < 2 {
			log.Printf("timetable: dropping malformed trip %q (%d stops)", trip.TrainNumber, len(trip.StopTimes))
			continue
		}
		kept = append(kept, trip)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("no usable trips in %s", path)
	}

	log.Printf("timetable: loaded %d trips", len(kept))
	return New(kept), nil
}
