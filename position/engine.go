package position

import (
	"log"
	"time"

	"github.com/nowtrain/yamanote-live/stations"
	"github.com/nowtrain/yamanote-live/track"
)

// Engine computes blended positions against a fixed topology and track
// geometry. It holds no mutable state; one Engine serves all requests
// for the process lifetime.
type Engine struct {
	topo *stations.Topology
	geom *track.Geometry
	cfg  Config
}

// NewEngine creates an engine. Zero-valued Config fields take their
// defaults.
func NewEngine(topo *stations.Topology, geom *track.Geometry, cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.MaxDistanceMeters <= 0 {
		cfg.MaxDistanceMeters = def.MaxDistanceMeters
	}
	if cfg.FreshThreshold <= 0 {
		cfg.FreshThreshold = def.FreshThreshold
	}
	if cfg.StaleThreshold <= cfg.FreshThreshold {
		cfg.StaleThreshold = def.StaleThreshold
	}
	return &Engine{topo: topo, geom: geom, cfg: cfg}
}

// Positions resolves one BlendedPosition per train. Trains whose
// coordinate cannot be resolved are omitted; the second return value is
// how many were skipped. One malformed train never aborts the batch.
func (e *Engine) Positions(states []ScheduleState, reports map[string]RealtimeReport, now time.Time) ([]BlendedPosition, int) {
	out := make([]BlendedPosition, 0, len(states))
	skipped := 0
	for _, st := range states {
		pos, ok := e.positionFor(st, reports, now)
		if !ok {
			skipped++
			continue
		}
		out = append(out, pos)
	}
	return out, skipped
}

// positionFor runs the full pipeline for one train. Panics from
// malformed records are confined here so the rest of the batch
// survives.
func (e *Engine) positionFor(st ScheduleState, reports map[string]RealtimeReport, now time.Time) (pos BlendedPosition, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("position: failed to resolve train %s: %v", st.TrainNumber, r)
			ok = false
		}
	}()

	rep, hasReport := reports[st.TrainNumber]

	if st.IsStopped {
		return e.stoppedPosition(st, rep, hasReport)
	}

	from, to := st.FromStation, st.ToStation

	var match SegmentMatch
	matched := false
	if hasReport {
		match, matched = e.matchSegment(st, rep)
	}

	var blended float64
	var quality Quality
	switch {
	case matched:
		if match.IsNeighbor {
			from, to = match.From, match.To
		}
		rtProgress := match.Progress
		staleness := now.Sub(time.Unix(rep.Timestamp, 0))
		blended, quality = e.blend(st.Progress, &rtProgress, staleness)
	case hasReport:
		// A report existed but matched no candidate segment.
		blended, quality = e.blend(st.Progress, nil, 0)
		if quality == QualityTimetableOnly {
			quality = QualityRejected
		}
	default:
		blended, quality = e.blend(st.Progress, nil, 0)
	}

	coord, found := e.synthesize(from, to, st.Direction, blended)
	if !found {
		return BlendedPosition{}, false
	}

	pos = BlendedPosition{
		TrainNumber: st.TrainNumber,
		Direction:   st.Direction,
		FromStation: from,
		ToStation:   to,
		Progress:    blended,
		Longitude:   coord[0],
		Latitude:    coord[1],
		DataQuality: quality,
	}
	if hasReport {
		attachPassthrough(&pos, rep)
	}
	return pos, true
}

// stoppedPosition resolves a train dwelling at a station straight to
// the station coordinate. The stopped-at station wins over the
// segment origin when both are known.
func (e *Engine) stoppedPosition(st ScheduleState, rep RealtimeReport, hasReport bool) (BlendedPosition, bool) {
	stationID := st.StoppedAt
	if stationID == "" {
		stationID = st.FromStation
	}
	coord, found := e.stationCoord(stationID)
	if !found {
		return BlendedPosition{}, false
	}

	pos := BlendedPosition{
		TrainNumber: st.TrainNumber,
		Direction:   st.Direction,
		Progress:    0,
		Longitude:   coord[0],
		Latitude:    coord[1],
		IsStopped:   true,
		StationID:   stationID,
		DataQuality: QualityTimetableOnly,
	}
	if hasReport {
		attachPassthrough(&pos, rep)
	}
	return pos, true
}

func attachPassthrough(pos *BlendedPosition, rep RealtimeReport) {
	seq := rep.StopSequence
	status := rep.Status
	pos.StopSequence = &seq
	pos.Status = &status
}
