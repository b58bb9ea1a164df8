package main

import "testing"

func pointsOf(p *Polygon) []Point {
	pts := make([]Point, len(p.verts))
	for i, v := range p.verts {
		pts[i] = v.P
	}
	return pts
}

func TestFixVertexOrder(t *testing.T) {
	anticlockwise := []Point{{0, 0}, {0, 4}, {4, 4}, {4, 0}}
	clockwise := []Point{{4, 0}, {4, 4}, {0, 4}, {0, 0}}

	tests := []struct {
		name   string
		access AccessType
		in     []Point
		want   []Point
	}{
		{"barred keeps anticlockwise", BarredAccess, anticlockwise, anticlockwise},
		{"barred reverses clockwise", BarredAccess, clockwise, anticlockwise},
		{"contained keeps clockwise", ContainedAccess, clockwise, clockwise},
		{"contained reverses anticlockwise", ContainedAccess, anticlockwise, clockwise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			poly := newPolygon(tt.access, tt.in)
			got := pointsOf(poly)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("vertex order = %v, want %v", got, tt.want)
				}
			}
			for i, v := range poly.verts {
				if v.idx != i {
					t.Errorf("vertex %d carries index %d", i, v.idx)
				}
			}
		})
	}
}

func TestNewPolygonEmpty(t *testing.T) {
	if p := newPolygon(BarredAccess, nil); p != nil {
		t.Error("expected nil polygon for empty point list")
	}
}

func TestContained(t *testing.T) {
	square := newPolygon(BarredAccess, []Point{{0, 0}, {0, 4}, {4, 4}, {4, 0}})

	tests := []struct {
		name string
		p    Point
		want Containment
	}{
		{"center", Point{2, 2}, Inside},
		{"outside", Point{5, 5}, Outside},
		{"far outside", Point{-3, 2}, Outside},
		{"left edge", Point{0, 2}, OnEdge},
		{"bottom edge", Point{2, 0}, OnEdge},
		{"vertex", Point{0, 0}, OnEdge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := contained(tt.p, square); got != tt.want {
				t.Errorf("contained(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

// Containment of a contained-access polygon is the inversion of the raw
// ray-crossing result, except that OnEdge is its own category and never
// flips.
func TestContainedInversion(t *testing.T) {
	pts := []Point{{0, 0}, {0, 4}, {4, 4}, {4, 0}}
	barred := newPolygon(BarredAccess, pts)
	containedPoly := newPolygon(ContainedAccess, pts)

	samples := []Point{
		{2, 2}, {5, 5}, {-1, -1}, {0, 2}, {2, 0}, {0, 0}, {4, 4}, {1, 3},
	}

	for _, p := range samples {
		raw := contained(p, barred)
		inv := contained(p, containedPoly)

		switch raw {
		case OnEdge:
			if inv != OnEdge {
				t.Errorf("point %v: OnEdge flipped to %v", p, inv)
			}
		case Inside:
			if inv != Outside {
				t.Errorf("point %v: raw Inside should invert to Outside, got %v", p, inv)
			}
		case Outside:
			if inv != Inside {
				t.Errorf("point %v: raw Outside should invert to Inside, got %v", p, inv)
			}
		}
	}
}

func TestContainedSingleVertex(t *testing.T) {
	poly := newPolygon(BarredAccess, []Point{{3, 3}})

	if got := contained(Point{3, 3}, poly); got != OnEdge {
		t.Errorf("contained on the single vertex = %v, want OnEdge", got)
	}
	if got := contained(Point{4, 3}, poly); got != Outside {
		t.Errorf("contained next to a single vertex = %v, want Outside", got)
	}
}

func TestInside(t *testing.T) {
	square := newPolygon(BarredAccess, []Point{{0, 0}, {0, 4}, {4, 4}, {4, 0}})

	var corner *Vertex
	for _, v := range square.verts {
		if v.P == (Point{0, 0}) {
			corner = v
		}
	}

	// A sight line from the square's interior enters the polygon locally
	// at the corner; one from beyond the corner does not
	if !inside(Point{2, 2}, corner) {
		t.Error("inside(center, corner) = false, want true")
	}
	if inside(Point{-1, -1}, corner) {
		t.Error("inside(beyond corner, corner) = true, want false")
	}

	// Single-vertex polygons have no interior
	singleton := newPolygon(BarredAccess, []Point{{9, 9}})
	if inside(Point{2, 2}, singleton.verts[0]) {
		t.Error("inside reported true for a single-vertex polygon")
	}
}

func TestInsertAfter(t *testing.T) {
	poly := newPolygon(BarredAccess, []Point{{0, 0}, {0, 4}, {4, 4}, {4, 0}})

	var v *Vertex
	for _, vert := range poly.verts {
		if vert.P == (Point{0, 0}) {
			v = vert
		}
	}

	split := &Vertex{P: Point{0, 2}}
	poly.insertAfter(v, split)

	if len(poly.verts) != 5 {
		t.Fatalf("vertex count = %d, want 5", len(poly.verts))
	}
	if v.Next() != split {
		t.Errorf("Next after split = %v, want the inserted vertex", v.Next().P)
	}
	if split.Prev() != v {
		t.Errorf("Prev of inserted vertex = %v, want %v", split.Prev().P, v.P)
	}
	for i, vert := range poly.verts {
		if vert.idx != i {
			t.Errorf("vertex %d carries index %d after insert", i, vert.idx)
		}
	}
}
