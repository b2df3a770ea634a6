package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nowtrain/yamanote-live/config"
	"github.com/nowtrain/yamanote-live/position"
	"github.com/nowtrain/yamanote-live/stations"
	"github.com/nowtrain/yamanote-live/timetable"
	"github.com/nowtrain/yamanote-live/track"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	topo := stations.NewTopology([]string{"A", "B", "C", "D"})
	vertices := [][2]float64{
		{139.700, 35.650}, {139.704, 35.650}, {139.708, 35.650},
		{139.708, 35.654}, {139.708, 35.658}, {139.704, 35.658},
		{139.700, 35.658}, {139.700, 35.654},
	}
	geom := track.NewGeometry(vertices,
		map[string]int{"A": 0, "B": 2, "C": 4, "D": 6},
		map[string][2]float64{
			"A": vertices[0], "B": vertices[2], "C": vertices[4], "D": vertices[6],
		})
	engine := position.NewEngine(topo, geom, position.Config{})

	sec := timetable.ServiceSeconds(time.Now())
	trips := []timetable.Trip{{
		TrainNumber: "0726G",
		Direction:   stations.OuterLoop,
		StopTimes: []timetable.StopTime{
			{StationID: "A", ArrivalSec: sec - 600, DepartureSec: sec - 580},
			{StationID: "B", ArrivalSec: sec + 600, DepartureSec: sec + 620},
		},
	}}

	cfg := &config.AppConfig{}
	cfg.Server.Port = 0
	cfg.Server.CacheTTLMS = 50

	return New(cfg, timetable.New(trips), engine, nil, nil)
}

func TestHandleHealth(t *testing.T) {
	srv := testServer(t)

	rec := httptest.NewRecorder()
	srv.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp healthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "ok" || resp.TripCount != 1 {
		t.Errorf("health = %+v, want status ok with one trip", resp)
	}
}

func TestHandlePositionsTimetableOnly(t *testing.T) {
	srv := testServer(t)

	rec := httptest.NewRecorder()
	srv.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/trains/yamanote/positions", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp PositionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.GTFSAvailable {
		t.Error("gtfsAvailable = true without a feed client")
	}
	if resp.TrainCount != 1 || len(resp.Trains) != 1 {
		t.Fatalf("trainCount = %d (%d trains), want 1", resp.TrainCount, len(resp.Trains))
	}
	tr := resp.Trains[0]
	if tr.TrainNumber != "0726G" {
		t.Errorf("trainNumber = %q, want 0726G", tr.TrainNumber)
	}
	if tr.DataQuality != position.QualityTimetableOnly {
		t.Errorf("dataQuality = %q, want timetable_only", tr.DataQuality)
	}
}

func TestHandlePositionsCached(t *testing.T) {
	srv := testServer(t)
	router := srv.router()

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/trains/yamanote/positions", nil))
	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/trains/yamanote/positions", nil))

	var a, b PositionsResponse
	if err := json.Unmarshal(first.Body.Bytes(), &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(second.Body.Bytes(), &b); err != nil {
		t.Fatal(err)
	}
	// Within the cache TTL the second response reuses the first snapshot.
	if a.Timestamp != b.Timestamp {
		t.Errorf("timestamps differ across cached responses: %q vs %q", a.Timestamp, b.Timestamp)
	}
}
