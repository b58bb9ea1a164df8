package main

// mergePoint merges a point into the polygon set and returns its vertex.
// If a matching vertex already exists it is reused. If the point lies on an
// existing edge that edge is split in two around a new vertex. Otherwise the
// point becomes a new single-vertex BarredAccess polygon, a pure visibility
// node. The operation is idempotent: merging the same point twice returns
// the same vertex and leaves the topology untouched.
func mergePoint(s *PathfindingState, p Point) *Vertex {
	// Check for an already existing vertex
	for _, polygon := range s.polygons {
		for _, vertex := range polygon.verts {
			if vertex.P == p {
				return vertex
			}
		}
	}

	vNew := &Vertex{P: p}

	// Check for the point lying on an edge
	for _, polygon := range s.polygons {
		if len(polygon.verts) < 2 {
			continue
		}
		for _, vertex := range polygon.verts {
			if between(vertex.P, vertex.Next().P, p) {
				// Split the edge by inserting the new vertex
				polygon.insertAfter(vertex, vNew)
				return vNew
			}
		}
	}

	// Add the point as a single-vertex polygon
	polygon := &Polygon{access: BarredAccess}
	vNew.poly = polygon
	vNew.idx = 0
	polygon.verts = []*Vertex{vNew}
	s.addPolygon(polygon)

	return vNew
}
