package main

// AccessType classifies how a polygon constrains walkability.
type AccessType int

const (
	// TotalAccess polygons are always walkable and impose no constraint
	// once the start or end point touches them.
	TotalAccess AccessType = iota
	// NearestAccess polygons are avoided, but a target inside one is
	// snapped back onto it after the path reaches the boundary.
	NearestAccess
	// BarredAccess polygons are never walkable.
	BarredAccess
	// ContainedAccess polygons invert containment: walkable space must
	// stay inside them.
	ContainedAccess
)

// Containment is the result of a point-in-polygon test.
type Containment int

const (
	Outside Containment = iota
	OnEdge
	Inside
)

// Vertex is a polygon corner and a node of the visibility graph. The cost
// fields are search state owned by a single planning call and are reset on
// every A* invocation.
type Vertex struct {
	P Point

	poly *Polygon
	idx  int

	// A* cost variables
	costG float64
	costF float64

	// Previous vertex in shortest path
	pathPrev *Vertex

	// Heap bookkeeping for the open set
	heapIdx int
	seq     int
}

// Next returns the following vertex in the polygon's cyclic order
func (v *Vertex) Next() *Vertex {
	return v.poly.verts[(v.idx+1)%len(v.poly.verts)]
}

// Prev returns the preceding vertex in the polygon's cyclic order
func (v *Vertex) Prev() *Vertex {
	n := len(v.poly.verts)
	return v.poly.verts[(v.idx+n-1)%n]
}

// hasEdges reports whether the owning polygon has at least one edge.
// Single-vertex polygons are pure visibility nodes.
func (v *Vertex) hasEdges() bool {
	return len(v.poly.verts) > 1
}

// Polygon is a typed obstacle or accessibility region: a cyclic ordered
// sequence of vertices. All types except ContainedAccess are kept in
// anti-clockwise order, ContainedAccess in clockwise order.
type Polygon struct {
	access AccessType
	verts  []*Vertex
}

// newPolygon builds a polygon from points and normalizes its winding.
// Returns nil for an empty point list.
func newPolygon(access AccessType, pts []Point) *Polygon {
	if len(pts) == 0 {
		return nil
	}

	poly := &Polygon{access: access, verts: make([]*Vertex, 0, len(pts))}
	for i, p := range pts {
		poly.verts = append(poly.verts, &Vertex{P: p, poly: poly, idx: i})
	}
	fixVertexOrder(poly)

	return poly
}

// insertAfter splits the edge starting at v by inserting n directly after it
func (p *Polygon) insertAfter(v *Vertex, n *Vertex) {
	n.poly = p
	at := v.idx + 1
	p.verts = append(p.verts, nil)
	copy(p.verts[at+1:], p.verts[at:])
	p.verts[at] = n
	for i := at; i < len(p.verts); i++ {
		p.verts[i].idx = i
	}
}

// reverse flips the cyclic order of the polygon's vertices
func (p *Polygon) reverse() {
	for i, j := 0, len(p.verts)-1; i < j; i, j = i+1, j-1 {
		p.verts[i], p.verts[j] = p.verts[j], p.verts[i]
	}
	for i, v := range p.verts {
		v.idx = i
	}
}

// polygonArea returns twice the signed area of the polygon
func polygonArea(p *Polygon) int {
	size := 0
	for i := 1; i+1 < len(p.verts); i++ {
		size += area(p.verts[0].P, p.verts[i].P, p.verts[i+1].P)
	}
	return size
}

// fixVertexOrder reverses the vertex order when the winding contradicts the
// convention for the polygon's access type. A positive area means the
// vertices are ordered anti-clockwise, a negative area clockwise.
func fixVertexOrder(p *Polygon) {
	a := polygonArea(p)
	if (a > 0 && p.access == ContainedAccess) || (a < 0 && p.access != ContainedAccess) {
		p.reverse()
	}
}

// contained classifies p against the polygon using a signed ray-crossing
// count. Crossings left and right of p are counted separately; an odd total
// means p touches a vertex or a degenerately aligned edge. For
// ContainedAccess polygons the Inside/Outside interpretation is inverted.
func contained(p Point, polygon *Polygon) Containment {
	lcross, rcross := 0, 0

	for _, vertex := range polygon.verts {
		v1 := vertex.P
		v2 := vertex.Next().P

		if p == v1 {
			return OnEdge
		}

		// Check if the edge straddles the horizontal ray through p
		rstrad := (v1.Y < p.Y) != (v2.Y < p.Y)
		lstrad := (v1.Y > p.Y) != (v2.Y > p.Y)

		if lstrad || rstrad {
			// Intersection x coordinate as the fraction x/xq,
			// compared by multiplication to stay in integers
			x := v2.X*v1.Y - v1.X*v2.Y + (v1.X-v2.X)*p.Y
			xq := v1.Y - v2.Y

			if xq < 0 {
				x = -x
				xq = -xq
			}

			if rstrad && x > xq*p.X {
				rcross++
			} else if lstrad && x < xq*p.X {
				lcross++
			}
		}
	}

	if (lcross+rcross)%2 == 1 {
		return OnEdge
	}

	if rcross%2 == 1 {
		if polygon.access == ContainedAccess {
			return Outside
		}
		return Inside
	}

	if polygon.access == ContainedAccess {
		return Inside
	}
	return Outside
}

// inside reports whether the line from p to the vertex enters the interior
// of the vertex's polygon locally at that vertex. Convex vertices require p
// to be left of both adjacent edges, reflex vertices left of either.
func inside(p Point, vertex *Vertex) bool {
	if !vertex.hasEdges() {
		return false
	}

	prev := vertex.Prev().P
	next := vertex.Next().P
	cur := vertex.P

	if left(prev, cur, next) {
		// Convex vertex
		return left(cur, next, p) && left(prev, cur, p)
	}
	// Reflex vertex
	return left(cur, next, p) || left(prev, cur, p)
}
