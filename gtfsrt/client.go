package gtfsrt

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/nowtrain/yamanote-live/position"
)

// Client fetches the ODPT vehicle position feed over HTTP.
type Client struct {
	feedURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a client for the given feed URL. The ODPT consumer key is
// appended as the acl:consumerKey query parameter on every request.
func NewClient(feedURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		feedURL:    feedURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads and decodes the feed, returning Yamanote reports keyed by
// train number plus the feed header timestamp.
func (c *Client) Fetch(ctx context.Context) (map[string]position.RealtimeReport, int64, error) {
	fm, err := c.fetchFeed(ctx)
	if err != nil {
		return nil, 0, err
	}
	var headerTS int64
	if fm.Header != nil && fm.Header.Timestamp != nil {
		headerTS = int64(*fm.Header.Timestamp)
	}
	return buildReports(fm), headerTS, nil
}

func (c *Client) fetchFeed(ctx context.Context) (*gtfsrtpb.FeedMessage, error) {
	u, err := url.Parse(c.feedURL)
	if err != nil {
		return nil, fmt.Errorf("parsing feed URL: %w", err)
	}
	if c.apiKey != "" {
		q := u.Query()
		q.Set("acl:consumerKey", c.apiKey)
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building feed request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching vehicle positions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vehicle position feed returned %d", resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading feed body: %w", err)
	}

	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return nil, fmt.Errorf("decoding feed protobuf: %w", err)
	}
	return &fm, nil
}

// buildReports extracts Yamanote vehicle entities into per-train reports.
// Entities without a trip ID, a position, or a Yamanote service letter are
// skipped; a later entity for the same train wins only when its timestamp is
// newer.
func buildReports(fm *gtfsrtpb.FeedMessage) map[string]position.RealtimeReport {
	reports := make(map[string]position.RealtimeReport)
	for _, e := range fm.GetEntity() {
		v := e.GetVehicle()
		if v == nil || v.Position == nil {
			continue
		}
		trip := v.GetTrip()
		if trip == nil || trip.TripId == nil {
			continue
		}
		tripID := *trip.TripId
		if !IsYamanote(tripID) {
			continue
		}
		trainNumber := TrainNumber(tripID)
		if trainNumber == "" {
			continue
		}

		r := position.RealtimeReport{
			TrainNumber: trainNumber,
			Latitude:    float64(v.Position.GetLatitude()),
			Longitude:   float64(v.Position.GetLongitude()),
		}
		if v.CurrentStopSequence != nil {
			r.StopSequence = int(*v.CurrentStopSequence)
		}
		if v.CurrentStatus != nil {
			r.Status = int(*v.CurrentStatus)
		}
		if v.Timestamp != nil {
			r.Timestamp = int64(*v.Timestamp)
		}

		if prev, ok := reports[trainNumber]; ok && prev.Timestamp >= r.Timestamp {
			continue
		}
		reports[trainNumber] = r
	}
	return reports
}
