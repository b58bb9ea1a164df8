package main

import (
	"log"
)

// RawPolygon is a polygon as supplied by the caller: an access type and an
// ordered vertex list. Winding may be arbitrary; it is normalized during
// conversion.
type RawPolygon struct {
	Access   AccessType `json:"access"`
	Vertices []Point    `json:"vertices"`
}

// PlanRequest is the full input of one planning call.
type PlanRequest struct {
	Start    Point        `json:"start"`
	End      Point        `json:"end"`
	Polygons []RawPolygon `json:"polygons,omitempty"`

	// Scene bounds
	Width  int `json:"width"`
	Height int `json:"height"`

	// 0 selects the keyboard fast path that skips fixups entirely;
	// 1 and 2 run the full planner
	OptimizationLevel int `json:"optimizationLevel"`
}

// convertPolygon turns a raw polygon into the internal representation with
// normalized winding. Polygons without vertices are skipped by returning nil.
func convertPolygon(raw RawPolygon) *Polygon {
	return newPolygon(raw.Access, raw.Vertices)
}

// convertPolygonSet builds the pathfinding state for a request: polygons are
// converted, the start and end points are fixed up (or, at optimization
// level 0, replaced by the nearest obstacle intersection) and merged into
// the vertex set, and the flat vertex index is built.
func convertPolygonSet(req PlanRequest) (*PathfindingState, error) {
	s := newPathfindingState(req.Width, req.Height)

	for _, raw := range req.Polygons {
		if polygon := convertPolygon(raw); polygon != nil {
			s.polygons = append(s.polygons, polygon)
		}
	}

	if req.OptimizationLevel == 0 {
		// Keyboard support: trade path quality for latency on
		// discrete-step input
		changePolygonsOpt0(s)

		isec, found, err := nearestIntersection(s, req.Start, req.End)
		if err != nil {
			return nil, err
		}

		if found {
			// Route from the intersection and prepend the original
			// start position after pathfinding
			orig := req.Start
			s.prependPoint = &orig
			s.vertexStart = mergePoint(s, isec)
		} else {
			s.vertexStart = mergePoint(s, req.Start)
		}
		s.vertexEnd = mergePoint(s, req.End)
	} else {
		newStart, err := fixupStartPoint(s, req.Start)
		if err != nil {
			return nil, err
		}

		newEnd, err := fixupEndPoint(s, req.End)
		if err != nil {
			return nil, err
		}

		s.vertexStart = mergePoint(s, newStart)
		s.vertexEnd = mergePoint(s, newEnd)
	}

	s.buildVertexIndex()

	return s, nil
}

// PlanPath computes the shortest collision-free polyline from the request's
// start to its end, respecting each polygon's access semantics. The returned
// sequence is terminated by the sentinel pair; a two-point sequence signals
// that no safe route was found and the caller should decide how to proceed.
func PlanPath(req PlanRequest) []Point {
	s, err := convertPolygonSet(req)
	if err != nil {
		log.Printf("walkplan: %v; returning direct path from start to end", err)
		return directPath(req.Start, req.End)
	}

	index := NewSpatialIndex(s.polygons)
	aStar(s, index, true)

	return outputPath(s)
}

// ContainsPoint is the static hit-test entry point: it reports whether p is
// inside or on the given polygon, with no path search. The polygon's access
// type is overridden so the inverted containment rule for contained-access
// polygons never applies here.
func ContainsPoint(p Point, raw RawPolygon) bool {
	polygon := newPolygon(BarredAccess, raw.Vertices)
	if polygon == nil {
		return false
	}
	return contained(p, polygon) != Outside
}
