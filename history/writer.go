package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nowtrain/yamanote-live/position"
)

// RecordSnapshot stores one computed set of blended positions under a fresh
// snapshot ID and returns that ID.
func (s *Store) RecordSnapshot(ctx context.Context, capturedAt time.Time, gtfsAvailable bool, positions []position.BlendedPosition) (string, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	snapshotID := uuid.New().String()
	capturedAtStr := capturedAt.UTC().Format(time.RFC3339)

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	avail := 0
	if gtfsAvailable {
		avail = 1
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO snapshots (snapshot_id, captured_at, gtfs_available, train_count) VALUES (?, ?, ?, ?)",
		snapshotID, capturedAtStr, avail, len(positions),
	); err != nil {
		return "", fmt.Errorf("inserting snapshot row: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO train_positions (
			snapshot_id, train_number, direction, from_station, to_station,
			progress, longitude, latitude, is_stopped, station_id, data_quality
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return "", fmt.Errorf("preparing position insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range positions {
		stopped := 0
		if p.IsStopped {
			stopped = 1
		}
		if _, err := stmt.ExecContext(ctx,
			snapshotID, p.TrainNumber, string(p.Direction), p.FromStation, p.ToStation,
			p.Progress, p.Longitude, p.Latitude, stopped, p.StationID, string(p.DataQuality),
		); err != nil {
			return "", fmt.Errorf("inserting position for train %s: %w", p.TrainNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing snapshot: %w", err)
	}
	return snapshotID, nil
}

// TrainTrack is one recorded sample of a train's position.
type TrainTrack struct {
	SnapshotID  string  `json:"snapshotId"`
	CapturedAt  string  `json:"capturedAt"`
	FromStation string  `json:"fromStation,omitempty"`
	ToStation   string  `json:"toStation,omitempty"`
	Progress    float64 `json:"progress"`
	Longitude   float64 `json:"longitude"`
	Latitude    float64 `json:"latitude"`
	DataQuality string  `json:"dataQuality"`
}

// TrackForTrain returns the most recent samples for one train, newest first.
func (s *Store) TrackForTrain(ctx context.Context, trainNumber string, limit int) ([]TrainTrack, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.conn.QueryContext(ctx, `
		SELECT p.snapshot_id, s.captured_at, p.from_station, p.to_station,
		       p.progress, p.longitude, p.latitude, p.data_quality
		FROM train_positions p
		JOIN snapshots s ON s.snapshot_id = p.snapshot_id
		WHERE p.train_number = ?
		ORDER BY s.captured_at DESC
		LIMIT ?
	`, trainNumber, limit)
	if err != nil {
		return nil, fmt.Errorf("querying track for train %s: %w", trainNumber, err)
	}
	defer rows.Close()

	var tracks []TrainTrack
	for rows.Next() {
		var t TrainTrack
		if err := rows.Scan(&t.SnapshotID, &t.CapturedAt, &t.FromStation, &t.ToStation,
			&t.Progress, &t.Longitude, &t.Latitude, &t.DataQuality); err != nil {
			return nil, fmt.Errorf("scanning track row: %w", err)
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}
