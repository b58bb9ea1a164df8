package main

import (
	"errors"
	"log"
)

// errDegeneratePolygon is returned when no lattice point near a polygon
// boundary lies outside the polygon. It signals a near-zero-area polygon and
// aborts the planning call to the direct fallback path.
var errDegeneratePolygon = errors.New("no free point near degenerate polygon")

// nearbyTolerance is the pixel distance within which a point counts as
// "nearby" a contained-access polygon's boundary.
const nearbyTolerance = 1

// findFreePoint searches near f for an integer point that is not contained
// in the polygon. The rounded point is tried first, then the four
// surrounding lattice points in fixed order.
func findFreePoint(f FloatPoint, polygon *Polygon) (Point, error) {
	p := f.Round()
	if contained(p, polygon) != Inside {
		return p, nil
	}

	// Try (x, y), (x + 1, y), (x + 1, y + 1) and (x, y + 1)
	p = Point{int(f.X), int(f.Y)}
	if contained(p, polygon) == Inside {
		p.X++
		if contained(p, polygon) == Inside {
			p.Y++
			if contained(p, polygon) == Inside {
				p.X--
				if contained(p, polygon) == Inside {
					return Point{}, errDegeneratePolygon
				}
			}
		}
	}

	return p, nil
}

// findNearPoint computes the nearest boundary point of a polygon containing
// p, by clamped projection of p onto each edge. Edges lying on the scene
// border are skipped, except for contained-access polygons where the border
// can be part of the walkable region's rim.
func findNearPoint(s *PathfindingState, p Point, polygon *Polygon) (Point, error) {
	var nearP FloatPoint
	dist := -1

	for _, vertex := range polygon.verts {
		p1 := vertex.P
		p2 := vertex.Next().P

		if polygon.access != ContainedAccess && s.edgeOnScreenBorder(p1, p2) {
			continue
		}

		// Clamped parametric projection of p onto the edge
		u := float64((p.X-p1.X)*(p2.X-p1.X)+(p.Y-p1.Y)*(p2.Y-p1.Y)) / float64(p1.SqrDist(p2))
		if u < 0.0 {
			u = 0.0
		}
		if u > 1.0 {
			u = 1.0
		}

		newPoint := FloatPoint{
			X: float64(p1.X) + u*float64(p2.X-p1.X),
			Y: float64(p1.Y) + u*float64(p2.Y-p1.Y),
		}

		newDist := p.SqrDist(newPoint.Round())
		if dist < 0 || newDist < dist {
			nearP = newPoint
			dist = newDist
		}
	}

	return findFreePoint(nearP, polygon)
}

// nearestIntersection computes the closest intersection of the segment
// (p, q) with the polygon set. Intersections reached from the inside of a
// polygon are ignored, as are improper intersections that do not obstruct
// visibility. The second return value is false when no intersection exists.
func nearestIntersection(s *PathfindingState, p, q Point) (Point, bool, error) {
	var isec FloatPoint
	var ipolygon *Polygon
	dist := -1

	for _, polygon := range s.polygons {
		for _, vertex := range polygon.verts {
			var newIsec FloatPoint

			if between(p, q, vertex.P) {
				// Skip the vertex when we hit it from the inside
				// of the polygon
				if !inside(q, vertex) {
					continue
				}
				newIsec = FloatPoint{X: float64(vertex.P.X), Y: float64(vertex.P.Y)}
			} else {
				// Skip the edge when we hit it from the inside
				// of the polygon
				if !left(vertex.P, vertex.Next().P, q) {
					continue
				}

				var ok bool
				newIsec, ok = intersection(p, q, vertex)
				if !ok {
					continue
				}
			}

			newDist := p.SqrDist(newIsec.Round())
			if dist < 0 || newDist < dist {
				ipolygon = polygon
				isec = newIsec
				dist = newDist
			}
		}
	}

	if dist < 0 {
		return Point{}, false, nil
	}

	ret, err := findFreePoint(isec, ipolygon)
	return ret, true, err
}

// nearbyPolygon reports whether point lies within nearbyTolerance pixels of
// a contained-access polygon in any of the four axis directions.
func nearbyPolygon(point Point, polygon *Polygon) bool {
	return contained(Point{point.X, point.Y + nearbyTolerance}, polygon) != Inside ||
		contained(Point{point.X, point.Y - nearbyTolerance}, polygon) != Inside ||
		contained(Point{point.X + nearbyTolerance, point.Y}, polygon) != Inside ||
		contained(Point{point.X - nearbyTolerance, point.Y}, polygon) != Inside
}

// fixupStartPoint validates the start point against the polygon set and
// relocates it when it sits inside a polygon that forbids it. Totally
// accessible polygons touching the start are dropped, as are contained
// access polygons the start is clearly unrelated to. The original start is
// recorded for prepending to the final path when a relocation happens.
func fixupStartPoint(s *PathfindingState, start Point) (Point, error) {
	newStart := start

	for i := 0; i < len(s.polygons); {
		polygon := s.polygons[i]
		cont := contained(start, polygon)

		switch polygon.access {
		case TotalAccess:
			// Remove totally accessible polygons that contain the start point
			if cont != Outside {
				s.removePolygonAt(i)
				continue
			}
		case ContainedAccess:
			// Remove contained access polygons that do not contain the
			// start point (the containment test is inverted here), unless
			// the start is within a pixel of the boundary
			if cont == Inside && !nearbyPolygon(start, polygon) {
				s.removePolygonAt(i)
				continue
			}
			fallthrough
		case BarredAccess, NearestAccess:
			if cont == Inside {
				if s.prependPoint != nil {
					// We shouldn't get here twice; keep the first relocation
					log.Printf("walkplan: start point is contained in multiple polygons")
					break
				}

				np, err := findNearPoint(s, start, polygon)
				if err != nil {
					return Point{}, err
				}

				if polygon.access == BarredAccess || polygon.access == ContainedAccess {
					log.Printf("walkplan: start position at unreachable location")
				}

				// The original start is in an invalid location, so we use
				// the moved point and stitch the original one onto the
				// final path later on
				orig := start
				s.prependPoint = &orig
				newStart = np
			}
		}

		i++
	}

	return newStart, nil
}

// fixupEndPoint is the end-point counterpart of fixupStartPoint. The end is
// relocated whenever it is not strictly outside a constraining polygon; for
// nearest-access polygons the original end is additionally recorded for
// appending after the search, since the contract there is "get as close as
// possible, then snap to the true target".
func fixupEndPoint(s *PathfindingState, end Point) (Point, error) {
	newEnd := end
	relocated := false

	for i := 0; i < len(s.polygons); {
		polygon := s.polygons[i]
		cont := contained(end, polygon)

		switch polygon.access {
		case TotalAccess:
			// Remove totally accessible polygons that contain the end point
			if cont != Outside {
				s.removePolygonAt(i)
				continue
			}
		case ContainedAccess, BarredAccess, NearestAccess:
			if cont != Outside {
				if relocated {
					// We shouldn't get here twice; keep the first relocation
					log.Printf("walkplan: end point is contained in multiple polygons")
					break
				}

				np, err := findNearPoint(s, end, polygon)
				if err != nil {
					return Point{}, err
				}
				newEnd = np
				relocated = true

				if polygon.access == NearestAccess {
					orig := end
					s.appendPoint = &orig
				}
			}
		}

		i++
	}

	return newEnd, nil
}

// changePolygonsOpt0 adjusts the polygon set for optimization level 0, the
// keyboard fast path. Totally accessible polygons are removed and
// nearest-access polygons are downgraded to totally accessible ones.
func changePolygonsOpt0(s *PathfindingState) {
	for i := 0; i < len(s.polygons); {
		polygon := s.polygons[i]
		if polygon.access == TotalAccess {
			s.removePolygonAt(i)
			continue
		}
		if polygon.access == NearestAccess {
			polygon.access = TotalAccess
		}
		i++
	}
}
