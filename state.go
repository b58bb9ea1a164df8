package main

// PathfindingState owns everything one planning call allocates: the polygon
// set, the chosen start/end vertices, the flat vertex index used by the
// search, the prepend/append bookkeeping from fixups and the scene bounds.
// Nothing in it is shared between calls.
type PathfindingState struct {
	polygons []*Polygon

	vertexStart *Vertex
	vertexEnd   *Vertex

	// Flat index of all vertices, in polygon order
	vertexIndex []*Vertex

	// Points to stitch onto the final path when start or end was relocated
	prependPoint *Point
	appendPoint  *Point

	width, height int
}

func newPathfindingState(width, height int) *PathfindingState {
	return &PathfindingState{width: width, height: height}
}

// addPolygon prepends a polygon to the set
func (s *PathfindingState) addPolygon(p *Polygon) {
	s.polygons = append([]*Polygon{p}, s.polygons...)
}

// removePolygonAt drops the polygon at index i, preserving order
func (s *PathfindingState) removePolygonAt(i int) {
	s.polygons = append(s.polygons[:i], s.polygons[i+1:]...)
}

// buildVertexIndex flattens all polygon vertices into one slice for the
// search phase. Must be called after the polygon set is final.
func (s *PathfindingState) buildVertexIndex() {
	count := 0
	for _, poly := range s.polygons {
		count += len(poly.verts)
	}

	s.vertexIndex = make([]*Vertex, 0, count)
	for _, poly := range s.polygons {
		s.vertexIndex = append(s.vertexIndex, poly.verts...)
	}
}

// pointOnScreenBorder reports whether p lies on the scene's outer boundary
func (s *PathfindingState) pointOnScreenBorder(p Point) bool {
	return p.X == 0 || p.X == s.width-1 || p.Y == 0 || p.Y == s.height-1
}

// edgeOnScreenBorder reports whether the edge (p, q) lies along the scene's
// outer boundary
func (s *PathfindingState) edgeOnScreenBorder(p, q Point) bool {
	return (p.X == 0 && q.X == 0) || (p.Y == 0 && q.Y == 0) ||
		(p.X == s.width-1 && q.X == s.width-1) ||
		(p.Y == s.height-1 && q.Y == s.height-1)
}
