package main

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// accessNames maps the "access" feature property to polygon access types
var accessNames = map[string]AccessType{
	"total":     TotalAccess,
	"nearest":   NearestAccess,
	"barred":    BarredAccess,
	"contained": ContainedAccess,
}

// LoadSceneFromGeoJSON reads obstacle polygons from a GeoJSON
// FeatureCollection. Each feature's "access" property selects the access
// type (defaulting to barred); coordinates are rounded to integer scene
// space. Only the outer ring of each polygon is used.
func LoadSceneFromGeoJSON(filename string) ([]RawPolygon, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	return ParseSceneGeoJSON(data)
}

// ParseSceneGeoJSON converts GeoJSON FeatureCollection bytes to raw polygons
func ParseSceneGeoJSON(data []byte) ([]RawPolygon, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scene GeoJSON: %w", err)
	}

	var polygons []RawPolygon
	for _, feature := range fc.Features {
		access, ok := accessNames[feature.Properties.MustString("access", "barred")]
		if !ok {
			access = BarredAccess
		}

		switch geom := feature.Geometry.(type) {
		case orb.Polygon:
			if len(geom) > 0 {
				polygons = append(polygons, ringToRawPolygon(geom[0], access))
			}
		case orb.MultiPolygon:
			for _, poly := range geom {
				if len(poly) > 0 {
					polygons = append(polygons, ringToRawPolygon(poly[0], access))
				}
			}
		}
	}

	return polygons, nil
}

// ringToRawPolygon rounds an outer ring to integer coordinates, dropping the
// closing point GeoJSON rings repeat at the end
func ringToRawPolygon(ring orb.Ring, access AccessType) RawPolygon {
	raw := RawPolygon{Access: access, Vertices: make([]Point, 0, len(ring))}
	for _, coord := range ring {
		p := FloatPoint{X: coord[0], Y: coord[1]}.Round()
		raw.Vertices = append(raw.Vertices, p)
	}

	n := len(raw.Vertices)
	if n > 1 && raw.Vertices[0] == raw.Vertices[n-1] {
		raw.Vertices = raw.Vertices[:n-1]
	}

	return raw
}
