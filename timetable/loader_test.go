package timetable

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleTimetable = `{
  "trips": [
    {
      "trainNumber": "0726G",
      "direction": "OuterLoop",
      "stopTimes": [
        {"stationId": "JR-East.Yamanote.Osaki", "arrivalSec": 36000, "departureSec": 36030},
        {"stationId": "JR-East.Yamanote.Gotanda", "arrivalSec": 36150, "departureSec": 36180}
      ]
    },
    {
      "trainNumber": "",
      "direction": "InnerLoop",
      "stopTimes": [
        {"stationId": "JR-East.Yamanote.Ueno", "arrivalSec": 100, "departureSec": 200},
        {"stationId": "JR-East.Yamanote.Okachimachi", "arrivalSec": 300, "departureSec": 400}
      ]
    },
    {
      "trainNumber": "0935G",
      "direction": "InnerLoop",
      "stopTimes": [
        {"stationId": "JR-East.Yamanote.Nippori", "arrivalSec": 100, "departureSec": 200}
      ]
    }
  ]
}`

func writeTimetable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timetable.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDropsMalformedTrips(t *testing.T) {
	tt, err := Load(writeTimetable(t, sampleTimetable))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	// The nameless trip and the single-stop trip are dropped.
	if tt.TripCount() != 1 {
		t.Errorf("tripCount = %d, want 1", tt.TripCount())
	}
}

func TestLoadNoUsableTrips(t *testing.T) {
	if _, err := Load(writeTimetable(t, `{"trips": []}`)); err == nil {
		t.Fatal("expected an error for an empty timetable")
	}
}

func TestLoadBadJSON(t *testing.T) {
	if _, err := Load(writeTimetable(t, "not json")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
