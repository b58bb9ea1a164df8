package main

import "math"

// Point is an integer coordinate on the scene plane.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SqrDist returns the squared Euclidean distance between two points
func (p Point) SqrDist(other Point) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// Distance calculates Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	return math.Sqrt(float64(p.SqrDist(other)))
}

// FloatPoint is an intermediate floating point coordinate, produced by edge
// projections and segment intersections before snapping back to the grid.
type FloatPoint struct {
	X, Y float64
}

// Round snaps the point to the nearest integer coordinate
func (f FloatPoint) Round() Point {
	return Point{int(math.Floor(f.X + 0.5)), int(math.Floor(f.Y + 0.5))}
}

// area returns twice the signed area of the triangle (a, b, c).
// The sign encodes the orientation of the three points.
func area(a, b, c Point) int {
	return (b.X-a.X)*(a.Y-c.Y) - (c.X-a.X)*(a.Y-b.Y)
}

// left reports whether c is strictly to the left of the directed line (a, b)
func left(a, b, c Point) bool {
	return area(a, b, c) > 0
}

// collinear reports whether a, b and c lie on one line
func collinear(a, b, c Point) bool {
	return area(a, b, c) == 0
}

// between reports whether c lies on the closed segment (a, b).
// Assumes a != b.
func between(a, b, c Point) bool {
	if !collinear(a, b, c) {
		return false
	}

	if a.X != b.X {
		return (a.X <= c.X && c.X <= b.X) || (a.X >= c.X && c.X >= b.X)
	}
	return (a.Y <= c.Y && c.Y <= b.Y) || (a.Y >= c.Y && c.Y >= b.Y)
}

// intersectProper reports whether the open segments (a, b) and (c, d) cross
// transversally. Segments that merely touch at an endpoint or overlap along
// a line do not count.
func intersectProper(a, b, c, d Point) bool {
	ab := (left(a, b, c) && left(b, a, d)) || (left(a, b, d) && left(b, a, c))
	cd := (left(c, d, a) && left(d, c, b)) || (left(c, d, b) && left(d, c, a))
	return ab && cd
}

// intersection computes the intersection point of the segment (a, b) with the
// polygon edge starting at vertex, excluding the edge's own endpoints.
// Returns false when the segments are parallel or do not intersect.
func intersection(a, b Point, vertex *Vertex) (FloatPoint, bool) {
	c := vertex.P
	d := vertex.Next().P

	denom := float64(a.X)*float64(d.Y-c.Y) + float64(b.X)*float64(c.Y-d.Y) +
		float64(d.X)*float64(b.Y-a.Y) + float64(c.X)*float64(a.Y-b.Y)

	if denom == 0.0 {
		// Segments are parallel, no intersection
		return FloatPoint{}, false
	}

	num := float64(a.X)*float64(d.Y-c.Y) + float64(c.X)*float64(a.Y-d.Y) + float64(d.X)*float64(c.Y-a.Y)
	s := num / denom

	num = -(float64(a.X)*float64(c.Y-b.Y) + float64(b.X)*float64(a.Y-c.Y) + float64(c.X)*float64(b.Y-a.Y))
	t := num / denom

	if 0.0 <= s && s <= 1.0 && 0.0 < t && t < 1.0 {
		return FloatPoint{
			X: float64(a.X) + s*float64(b.X-a.X),
			Y: float64(a.Y) + s*float64(b.Y-a.Y),
		}, true
	}

	return FloatPoint{}, false
}
