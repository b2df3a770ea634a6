package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/nowtrain/yamanote-live/position"
)

// PositionsResponse is the wire envelope for the live positions endpoint.
type PositionsResponse struct {
	Timestamp     string                     `json:"timestamp"`
	GTFSAvailable bool                       `json:"gtfsAvailable"`
	TrainCount    int                        `json:"trainCount"`
	Skipped       int                        `json:"skipped"`
	Trains        []position.BlendedPosition `json:"trains"`
}

type healthResponse struct {
	Status     string `json:"status"`
	TripCount  int    `json:"tripCount"`
	ServiceSec int    `json:"serviceSec"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("server: encoding response: %v", err)
	}
}
