package server

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nowtrain/yamanote-live/position"
	"github.com/nowtrain/yamanote-live/timetable"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:     "ok",
		TripCount:  s.timetable.TripCount(),
		ServiceSec: timetable.ServiceSeconds(time.Now()),
	})
}

func (s *Server) handlePositions(w http.ResponseWriter, r *http.Request) {
	if cached, err := s.cache.Get(positionsCacheKey); err == nil {
		if resp, ok := cached.(*PositionsResponse); ok {
			writeJSON(w, http.StatusOK, resp)
			return
		}
	}

	resp := s.buildPositions(r.Context(), time.Now())
	if err := s.cache.Set(positionsCacheKey, resp); err != nil {
		log.Printf("server: caching positions: %v", err)
	}
	writeJSON(w, http.StatusOK, resp)
}

// buildPositions evaluates the timetable, fetches the vehicle feed, and runs
// the blending engine. A feed failure degrades to timetable-only output
// rather than erroring the request.
func (s *Server) buildPositions(ctx context.Context, now time.Time) *PositionsResponse {
	states := s.timetable.StatesAt(timetable.ServiceSeconds(now))

	var reports map[string]position.RealtimeReport
	gtfsAvailable := false
	if s.feed != nil {
		var err error
		reports, _, err = s.feed.Fetch(ctx)
		if err != nil {
			log.Printf("server: vehicle feed unavailable, serving timetable only: %v", err)
		} else {
			gtfsAvailable = true
		}
	}

	trains, skipped := s.engine.Positions(states, reports, now)
	resp := &PositionsResponse{
		Timestamp:     timetable.JSTTimestamp(now),
		GTFSAvailable: gtfsAvailable,
		TrainCount:    len(trains),
		Skipped:       skipped,
		Trains:        trains,
	}

	if s.store != nil {
		if _, err := s.store.RecordSnapshot(ctx, now, gtfsAvailable, trains); err != nil {
			log.Printf("server: recording snapshot: %v", err)
		}
	}
	return resp
}

func (s *Server) handleTrainHistory(w http.ResponseWriter, r *http.Request) {
	trainNumber := chi.URLParam(r, "trainNumber")
	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	tracks, err := s.store.TrackForTrain(r.Context(), trainNumber, limit)
	if err != nil {
		log.Printf("server: querying history for %s: %v", trainNumber, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "history query failed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"trainNumber": trainNumber,
		"samples":     tracks,
	})
}
