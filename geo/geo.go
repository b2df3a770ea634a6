// Package geo holds the planar and great-circle geometry used by the
// position engine. Coordinates are [lon, lat] pairs; distances are
// meters via the haversine formula. Projections deliberately work in
// raw lon/lat space, trading a small local distortion for simplicity.
package geo

import "math"

const earthRadiusMeters = 6371000

// Haversine calculates the great-circle distance between two points in
// meters.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	deltaPhi := (lat2 - lat1) * math.Pi / 180
	deltaLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// Interpolate linearly interpolates between two [lon, lat] points.
func Interpolate(start, end [2]float64, fraction float64) [2]float64 {
	return [2]float64{
		start[0] + (end[0]-start[0])*fraction,
		start[1] + (end[1]-start[1])*fraction,
	}
}

// Clamp constrains a value to [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// CumulativeLengths returns the running arc length in meters at each
// vertex of a polyline, plus the total. cum[0] is always 0.
func CumulativeLengths(coords [][2]float64) (cum []float64, total float64) {
	cum = make([]float64, len(coords))
	for i := 1; i < len(coords); i++ {
		total += Haversine(coords[i-1][1], coords[i-1][0], coords[i][1], coords[i][0])
		cum[i] = total
	}
	return cum, total
}

// PointAtFraction returns the [lon, lat] point at the given fraction of
// a polyline's total arc length. The fraction is clamped to [0, 1].
// Returns false for an empty polyline; a zero-length polyline yields
// its first vertex.
func PointAtFraction(coords [][2]float64, fraction float64) ([2]float64, bool) {
	if len(coords) == 0 {
		return [2]float64{}, false
	}
	if len(coords) == 1 {
		return coords[0], true
	}

	cum, total := CumulativeLengths(coords)
	if total <= 0 {
		return coords[0], true
	}

	target := Clamp(fraction, 0, 1) * total
	for i := 1; i < len(cum); i++ {
		if cum[i] >= target {
			segLen := cum[i] - cum[i-1]
			t := 0.0
			if segLen > 0 {
				t = (target - cum[i-1]) / segLen
			}
			return Interpolate(coords[i-1], coords[i], t), true
		}
	}
	return coords[len(coords)-1], true
}

// ClosestVertex finds the index of the polyline vertex nearest to a
// [lon, lat] target.
func ClosestVertex(coords [][2]float64, target [2]float64) int {
	minDist := math.MaxFloat64
	minIdx := 0
	for i, coord := range coords {
		dist := Haversine(coord[1], coord[0], target[1], target[0])
		if dist < minDist {
			minDist = dist
			minIdx = i
		}
	}
	return minIdx
}
