// Package track holds the loop's polyline geometry and resolves the
// concrete vertex run between two stations for a given traversal
// direction, including the wraparound at the loop seam.
package track

import (
	"github.com/nowtrain/yamanote-live/stations"
)

// Geometry is the track polyline for the whole loop, traced once in
// outer-loop (canonical) direction, plus per-station vertex indices and
// coordinates. Read-only after construction.
type Geometry struct {
	vertices      [][2]float64
	stationVertex map[string]int
	stationCoord  map[string][2]float64
}

// NewGeometry builds a Geometry from a vertex list in canonical
// direction and per-station vertex indices and [lon, lat] coordinates.
func NewGeometry(vertices [][2]float64, stationVertex map[string]int, stationCoord map[string][2]float64) *Geometry {
	g := &Geometry{
		vertices:      make([][2]float64, len(vertices)),
		stationVertex: make(map[string]int, len(stationVertex)),
		stationCoord:  make(map[string][2]float64, len(stationCoord)),
	}
	copy(g.vertices, vertices)
	for id, i := range stationVertex {
		g.stationVertex[id] = i
	}
	for id, c := range stationCoord {
		g.stationCoord[id] = c
	}
	return g
}

// VertexCount returns the number of polyline vertices.
func (g *Geometry) VertexCount() int { return len(g.vertices) }

// StationCoord returns the [lon, lat] of a station, or false when the
// station has no known coordinate.
func (g *Geometry) StationCoord(id string) ([2]float64, bool) {
	c, ok := g.stationCoord[id]
	return c, ok
}

// StationVertex returns the polyline vertex index a station is snapped
// to.
func (g *Geometry) StationVertex(id string) (int, bool) {
	i, ok := g.stationVertex[id]
	return i, ok
}

// Segment returns the ordered vertex run from one station to another,
// walking the polyline in the given direction and wrapping through the
// loop seam when needed. A station pair snapped to the same vertex
// yields a single-point run, which callers must treat as
// non-projectable. Returns false when either station is unknown to the
// vertex map or the polyline is empty.
func (g *Geometry) Segment(from, to string, dir stations.Direction) ([][2]float64, bool) {
	if len(g.vertices) == 0 {
		return nil, false
	}
	fi, ok := g.stationVertex[from]
	if !ok {
		return nil, false
	}
	ti, ok := g.stationVertex[to]
	if !ok {
		return nil, false
	}

	if fi == ti {
		return [][2]float64{g.vertices[fi]}, true
	}

	if dir == stations.InnerLoop {
		// Walking vertex indices downward from fi to ti is the
		// canonical walk from ti to fi, reversed.
		return reversed(g.forwardRun(ti, fi)), true
	}
	return g.forwardRun(fi, ti), true
}

// forwardRun copies the inclusive vertex run from fi to ti walking
// indices upward, wrapping past the last vertex back to index 0.
func (g *Geometry) forwardRun(fi, ti int) [][2]float64 {
	if fi <= ti {
		out := make([][2]float64, ti-fi+1)
		copy(out, g.vertices[fi:ti+1])
		return out
	}
	out := make([][2]float64, 0, (len(g.vertices)-fi)+ti+1)
	out = append(out, g.vertices[fi:]...)
	out = append(out, g.vertices[:ti+1]...)
	return out
}

func reversed(coords [][2]float64) [][2]float64 {
	out := make([][2]float64, len(coords))
	for i, c := range coords {
		out[len(coords)-1-i] = c
	}
	return out
}
