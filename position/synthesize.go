package position

import (
	"log"

	"github.com/nowtrain/yamanote-live/geo"
	"github.com/nowtrain/yamanote-live/stations"
)

// stationCoord looks up a station's [lon, lat], logging once per miss
// so silently dropped trains leave a trace.
func (e *Engine) stationCoord(id string) ([2]float64, bool) {
	if id == "" {
		return [2]float64{}, false
	}
	coord, ok := e.geom.StationCoord(id)
	if !ok {
		log.Printf("position: no coordinates for station %s", id)
	}
	return coord, ok
}

// synthesize maps a (segment, direction, progress) tuple back to a
// [lon, lat] coordinate. When the segment's polyline is available the
// point is taken at the progress fraction of its arc length; otherwise
// the two station coordinates are interpolated in a straight line, a
// knowingly less accurate best effort. Fails only when neither the
// polyline nor both station coordinates exist.
func (e *Engine) synthesize(from, to string, dir stations.Direction, progress float64) ([2]float64, bool) {
	if coords, ok := e.geom.Segment(from, to, dir); ok && len(coords) >= 2 {
		if pt, ok := geo.PointAtFraction(coords, progress); ok {
			return pt, true
		}
	}

	start, okStart := e.stationCoord(from)
	end, okEnd := e.stationCoord(to)
	if !okStart || !okEnd {
		log.Printf("position: missing coordinates for segment %s -> %s", from, to)
		return [2]float64{}, false
	}
	return geo.Interpolate(start, end, geo.Clamp(progress, 0, 1)), true
}
