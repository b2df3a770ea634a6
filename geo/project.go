package geo

import "math"

// minPolylineMeters rejects degenerate geometry: a candidate shorter
// than this cannot carry a meaningful progress fraction.
const minPolylineMeters = 1.0

// Projection is the result of projecting a target point onto a
// polyline.
type Projection struct {
	// Progress is the arc-length fraction of the best-fit point,
	// clamped to [0, 1].
	Progress float64
	// DistanceMeters is the haversine distance from the target to the
	// nearest point on the polyline.
	DistanceMeters float64
	// Nearest is the [lon, lat] of the best-fit point.
	Nearest [2]float64
}

// Project finds the point on a polyline closest to the target and its
// progress fraction along the line. The perpendicular projection runs
// in raw lon/lat space; the reported distance is haversine. Returns
// false when the polyline has fewer than two vertices, is shorter than
// a meter, or the target lies farther than maxDistanceMeters from
// every sub-segment.
//
// The search is greedy over consecutive vertex pairs, which is correct
// for the locally non-self-intersecting slices the track resolver
// produces.
func Project(coords [][2]float64, lat, lon, maxDistanceMeters float64) (Projection, bool) {
	if len(coords) < 2 {
		return Projection{}, false
	}

	cum, total := CumulativeLengths(coords)
	if total < minPolylineMeters {
		return Projection{}, false
	}

	best := Projection{DistanceMeters: math.MaxFloat64}
	bestIdx := -1
	bestT := 0.0

	for i := 0; i < len(coords)-1; i++ {
		a := coords[i]
		b := coords[i+1]

		vx := b[0] - a[0]
		vy := b[1] - a[1]
		wx := lon - a[0]
		wy := lat - a[1]

		denom := vx*vx + vy*vy
		t := 0.0
		if denom > 0 {
			t = Clamp((wx*vx+wy*vy)/denom, 0, 1)
		}

		nearest := [2]float64{a[0] + t*vx, a[1] + t*vy}
		dist := Haversine(lat, lon, nearest[1], nearest[0])

		if dist < best.DistanceMeters {
			best.DistanceMeters = dist
			best.Nearest = nearest
			bestIdx = i
			bestT = t
		}
	}

	if bestIdx < 0 || best.DistanceMeters > maxDistanceMeters {
		return Projection{}, false
	}

	segLen := cum[bestIdx+1] - cum[bestIdx]
	best.Progress = Clamp((cum[bestIdx]+bestT*segLen)/total, 0, 1)
	return best, true
}
