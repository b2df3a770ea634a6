package gtfsrt

import (
	"testing"

	"github.com/nowtrain/yamanote-live/stations"
)

func TestIsYamanote(t *testing.T) {
	tests := []struct {
		tripID string
		want   bool
	}{
		{"42010726G", true},
		{"42110935G", true},
		{"43220810K", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsYamanote(tt.tripID); got != tt.want {
			t.Errorf("IsYamanote(%q) = %v, want %v", tt.tripID, got, tt.want)
		}
	}
}

func TestTrainNumber(t *testing.T) {
	tests := []struct {
		tripID string
		want   string
	}{
		{"42010726G", "0726G"},
		{"42110935G", "0935G"},
		{"G", ""},
		{"4201", ""},
	}
	for _, tt := range tests {
		if got := TrainNumber(tt.tripID); got != tt.want {
			t.Errorf("TrainNumber(%q) = %q, want %q", tt.tripID, got, tt.want)
		}
	}
}

func TestDirectionForTrip(t *testing.T) {
	tests := []struct {
		tripID string
		want   stations.Direction
		ok     bool
	}{
		{"42010726G", stations.OuterLoop, true},
		{"42110935G", stations.InnerLoop, true},
		// Unknown prefix falls back to train number parity.
		{"99990727G", stations.OuterLoop, true},
		{"99990728G", stations.InnerLoop, true},
		{"xxxxabcG", "", false},
	}
	for _, tt := range tests {
		got, ok := DirectionForTrip(tt.tripID)
		if got != tt.want || ok != tt.ok {
			t.Errorf("DirectionForTrip(%q) = (%q, %v), want (%q, %v)",
				tt.tripID, got, ok, tt.want, tt.ok)
		}
	}
}
