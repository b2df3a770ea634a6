package track

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/nowtrain/yamanote-live/geo"
	"github.com/nowtrain/yamanote-live/stations"
)

// LoadGeometry reads the track polyline and the station coordinates
// from GeoJSON files and snaps every station to its nearest polyline
// vertex. The topology is used only to sanity-check that snapped
// vertex indices follow track order; violations are logged, not fatal.
func LoadGeometry(trackPath, stationsPath string, topo *stations.Topology) (*Geometry, error) {
	vertices, err := loadTrackLine(trackPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load track geometry: %w", err)
	}

	coords, err := loadStationPoints(stationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load station coordinates: %w", err)
	}

	stationVertex := make(map[string]int, len(coords))
	for id, c := range coords {
		stationVertex[id] = geo.ClosestVertex(vertices, c)
	}

	checkVertexOrder(topo, stationVertex, len(vertices))

	log.Printf("track: loaded %d vertices, %d station coordinates", len(vertices), len(coords))
	return NewGeometry(vertices, stationVertex, coords), nil
}

// loadTrackLine reads a GeoJSON file holding the loop polyline. Both a
// bare LineString geometry and a FeatureCollection whose first
// LineString feature carries the loop are accepted.
func loadTrackLine(path string) ([][2]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Type        string      `json:"type"`
		Coordinates [][]float64 `json:"coordinates"`
		Features    []struct {
			Geometry struct {
				Type        string      `json:"type"`
				Coordinates [][]float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	raw := doc.Coordinates
	if len(raw) == 0 {
		for _, f := range doc.Features {
			if f.Geometry.Type == "LineString" && len(f.Geometry.Coordinates) > 0 {
				raw = f.Geometry.Coordinates
				break
			}
		}
	}
	if len(raw) < 2 {
		return nil, fmt.Errorf("no LineString with at least 2 vertices in %s", path)
	}

	vertices := make([][2]float64, 0, len(raw))
	for _, c := range raw {
		if len(c) < 2 {
			continue
		}
		vertices = append(vertices, [2]float64{c[0], c[1]})
	}
	return vertices, nil
}

// loadStationPoints reads a GeoJSON FeatureCollection of station Point
// features keyed by their ODPT id property.
func loadStationPoints(path string) (map[string][2]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Features []struct {
			Properties struct {
				ID string `json:"id"`
			} `json:"properties"`
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	coords := make(map[string][2]float64, len(doc.Features))
	for _, f := range doc.Features {
		if f.Properties.ID == "" || len(f.Geometry.Coordinates) < 2 {
			continue
		}
		coords[f.Properties.ID] = [2]float64{f.Geometry.Coordinates[0], f.Geometry.Coordinates[1]}
	}
	if len(coords) == 0 {
		return nil, fmt.Errorf("no station features with id and coordinates in %s", path)
	}
	return coords, nil
}

// checkVertexOrder verifies that snapped vertex indices are
// non-decreasing in topology order, allowing the single wrap at the
// loop seam. A bad snap degrades segment slicing, so it is worth a
// warning, but missing track data should not take the service down.
func checkVertexOrder(topo *stations.Topology, stationVertex map[string]int, vertexCount int) {
	if topo == nil || vertexCount == 0 {
		return
	}
	wraps := 0
	prev := -1
	for i := 0; i < topo.Len(); i++ {
		id := topo.StationAt(i)
		vi, ok := stationVertex[id]
		if !ok {
			log.Printf("track: no coordinates for station %s; segments touching it will fall back to straight lines", id)
			continue
		}
		if prev >= 0 && vi < prev {
			wraps++
			if wraps > 1 {
				log.Printf("track: station %s snapped out of track order (vertex %d after %d)", id, vi, prev)
			}
		}
		prev = vi
	}
}
