package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/nowtrain/yamanote-live/position"
	"github.com/nowtrain/yamanote-live/stations"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndQuerySnapshot(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	positions := []position.BlendedPosition{
		{
			TrainNumber: "0726G",
			Direction:   stations.OuterLoop,
			FromStation: "JR-East.Yamanote.Shibuya",
			ToStation:   "JR-East.Yamanote.Harajuku",
			Progress:    0.42,
			Longitude:   139.7016,
			Latitude:    35.6621,
			DataQuality: position.QualityGood,
		},
		{
			TrainNumber: "0935G",
			Direction:   stations.InnerLoop,
			Progress:    0,
			Longitude:   139.7387,
			Latitude:    35.7280,
			IsStopped:   true,
			StationID:   "JR-East.Yamanote.Nippori",
			DataQuality: position.QualityTimetableOnly,
		},
	}

	id, err := s.RecordSnapshot(ctx, time.Unix(1700000000, 0), true, positions)
	if err != nil {
		t.Fatalf("RecordSnapshot failed: %v", err)
	}
	if id == "" {
		t.Fatal("empty snapshot id")
	}

	tracks, err := s.TrackForTrain(ctx, "0726G", 10)
	if err != nil {
		t.Fatalf("TrackForTrain failed: %v", err)
	}
	if len(tracks) != 1 {
		t.Fatalf("got %d samples, want 1", len(tracks))
	}
	tr := tracks[0]
	if tr.SnapshotID != id {
		t.Errorf("snapshotId = %q, want %q", tr.SnapshotID, id)
	}
	if tr.Progress != 0.42 || tr.DataQuality != "good" {
		t.Errorf("sample = %+v, want progress 0.42 quality good", tr)
	}
}

func TestTrackForTrainOrdering(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Unix(1700000000, 0)
	for i := 0; i < 3; i++ {
		p := []position.BlendedPosition{{
			TrainNumber: "0726G",
			Direction:   stations.OuterLoop,
			Progress:    float64(i) * 0.1,
			DataQuality: position.QualityGood,
		}}
		if _, err := s.RecordSnapshot(ctx, base.Add(time.Duration(i)*time.Minute), true, p); err != nil {
			t.Fatalf("RecordSnapshot %d failed: %v", i, err)
		}
	}

	tracks, err := s.TrackForTrain(ctx, "0726G", 2)
	if err != nil {
		t.Fatalf("TrackForTrain failed: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("got %d samples, want the limit of 2", len(tracks))
	}
	// Newest first.
	if tracks[0].Progress != 0.2 || tracks[1].Progress != 0.1 {
		t.Errorf("progress order = %f, %f, want 0.2, 0.1", tracks[0].Progress, tracks[1].Progress)
	}

	if tracks2, _ := s.TrackForTrain(ctx, "no-such-train", 5); len(tracks2) != 0 {
		t.Errorf("got %d samples for an unknown train, want 0", len(tracks2))
	}
}
