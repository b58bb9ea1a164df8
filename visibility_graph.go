package main

// visibleVertices returns every vertex that can be reached from cur by an
// unobstructed straight segment. It is queried lazily per A* expansion
// rather than precomputed as a full graph; vertex counts are small enough
// that the quadratic edge scan is acceptable, and the spatial index trims it
// to polygons whose bounding box the sight line actually crosses.
func visibleVertices(s *PathfindingState, index *SpatialIndex, cur *Vertex) []*Vertex {
	visible := make([]*Vertex, 0, len(s.vertexIndex))

	for _, vertex := range s.vertexIndex {
		// Make sure we don't intersect a polygon locally at the vertices
		if vertex == cur || inside(vertex.P, cur) || inside(cur.P, vertex) {
			continue
		}

		if segmentClear(s, index, cur.P, vertex.P) {
			visible = append(visible, vertex)
		}
	}

	return visible
}

// segmentClear reports whether the segment (p, q) avoids the interior of
// every polygon in the set. A segment is blocked either by properly
// crossing an edge, or by passing over a vertex in a way that cuts through
// that vertex's polygon locally.
func segmentClear(s *PathfindingState, index *SpatialIndex, p, q Point) bool {
	var candidates []*Polygon
	if index != nil {
		candidates = index.SegmentCandidates(p, q)
	} else {
		candidates = s.polygons
	}

	for _, polygon := range candidates {
		if len(polygon.verts) < 2 {
			continue
		}

		for _, edge := range polygon.verts {
			if between(p, q, edge.P) {
				// We hit a vertex; make sure we can pass through it
				// without entering its polygon
				if inside(p, edge) || inside(q, edge) {
					return false
				}

				// This edge won't properly intersect, so we continue
				continue
			}

			if intersectProper(p, q, edge.P, edge.Next().P) {
				return false
			}
		}
	}

	return true
}
