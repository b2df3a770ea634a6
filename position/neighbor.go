package position

import (
	"math"

	"github.com/nowtrain/yamanote-live/geo"
	"github.com/nowtrain/yamanote-live/stations"
)

// AdjacentSegments builds the candidate station pairs for a nominal
// segment: the segment itself, its predecessor one station back in the
// direction's natural sense, and its successor one station forward.
// The timetable and the real-time clock can disagree by about one
// station; searching these three absorbs that without scanning the
// whole loop.
//
// If either station is unknown to the topology the nominal pair is
// returned alone, unchanged.
func AdjacentSegments(topo *stations.Topology, from, to string, dir stations.Direction) [][2]string {
	fi, okFrom := topo.Ordinal(from)
	ti, okTo := topo.Ordinal(to)
	if !okFrom || !okTo {
		return [][2]string{{from, to}}
	}

	prev := topo.StationAt(topo.Step(fi, -1, dir))
	next := topo.StationAt(topo.Step(ti, 1, dir))

	return [][2]string{
		{from, to},
		{prev, from},
		{to, next},
	}
}

// SegmentMatch is the winning candidate of a neighbor search.
type SegmentMatch struct {
	From           string
	To             string
	Progress       float64
	DistanceMeters float64
	Coord          [2]float64
	// IsNeighbor is true when the winner is not the nominal segment.
	IsNeighbor bool
}

// matchSegment projects the real-time point onto every candidate
// segment and keeps the closest fit. Returns false when no candidate
// accepts the point within the distance threshold.
func (e *Engine) matchSegment(st ScheduleState, rep RealtimeReport) (SegmentMatch, bool) {
	candidates := AdjacentSegments(e.topo, st.FromStation, st.ToStation, st.Direction)

	best := SegmentMatch{DistanceMeters: math.MaxFloat64}
	found := false
	for i, cand := range candidates {
		coords, ok := e.geom.Segment(cand[0], cand[1], st.Direction)
		if !ok {
			continue
		}
		proj, ok := geo.Project(coords, rep.Latitude, rep.Longitude, e.cfg.MaxDistanceMeters)
		if !ok {
			continue
		}
		if proj.DistanceMeters < best.DistanceMeters {
			best = SegmentMatch{
				From:           cand[0],
				To:             cand[1],
				Progress:       proj.Progress,
				DistanceMeters: proj.DistanceMeters,
				Coord:          proj.Nearest,
				IsNeighbor:     i != 0,
			}
			found = true
		}
	}
	return best, found
}
