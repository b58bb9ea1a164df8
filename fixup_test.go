package main

import "testing"

func TestFindFreePoint(t *testing.T) {
	square := newPolygon(BarredAccess, []Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}})

	// A point near the boundary resolves to a lattice point not inside
	p, err := findFreePoint(FloatPoint{X: 10.0, Y: 5.0}, square)
	if err != nil {
		t.Fatalf("findFreePoint: %v", err)
	}
	if contained(p, square) == Inside {
		t.Errorf("resolved point %v is still inside", p)
	}

	// Deep inside the polygon all probes stay contained
	if _, err := findFreePoint(FloatPoint{X: 5.4, Y: 5.4}, square); err == nil {
		t.Error("expected failure for a point surrounded by interior")
	}
}

func TestFindNearPoint(t *testing.T) {
	s := newPathfindingState(320, 190)
	square := newPolygon(BarredAccess, []Point{{2, 2}, {2, 8}, {8, 8}, {8, 2}})
	s.polygons = []*Polygon{square}

	p, err := findNearPoint(s, Point{5, 5}, square)
	if err != nil {
		t.Fatalf("findNearPoint: %v", err)
	}
	if contained(p, square) != OnEdge {
		t.Errorf("near point %v not on the polygon boundary", p)
	}
	if p.SqrDist(Point{5, 5}) != 9 {
		t.Errorf("near point %v is not at boundary distance from the center", p)
	}
}

func TestFindNearPointSkipsBorderEdges(t *testing.T) {
	s := newPathfindingState(20, 20)
	// The left edge of this polygon lies on the screen border and must
	// not attract the near point
	poly := newPolygon(BarredAccess, []Point{{0, 5}, {0, 15}, {6, 15}, {6, 5}})
	s.polygons = []*Polygon{poly}

	p, err := findNearPoint(s, Point{1, 10}, poly)
	if err != nil {
		t.Fatalf("findNearPoint: %v", err)
	}
	if p.X == 0 {
		t.Errorf("near point %v landed on the screen border edge", p)
	}
}

func TestNearbyPolygon(t *testing.T) {
	region := newPolygon(ContainedAccess, []Point{{5, 5}, {5, 15}, {15, 15}, {15, 5}})

	// One pixel outside the walkable region counts as nearby
	if !nearbyPolygon(Point{4, 10}, region) {
		t.Error("point one pixel from the boundary not reported nearby")
	}
	// Far outside the region nothing is within reach
	if nearbyPolygon(Point{1, 1}, region) {
		t.Error("distant point reported nearby")
	}
}

func TestFixupStartTotalAccess(t *testing.T) {
	s := newTestState(newPolygon(TotalAccess, []Point{{2, 2}, {2, 8}, {8, 8}, {8, 2}}))

	start, err := fixupStartPoint(s, Point{5, 5})
	if err != nil {
		t.Fatalf("fixupStartPoint: %v", err)
	}
	if start != (Point{5, 5}) {
		t.Errorf("start moved to %v, want unchanged", start)
	}
	if len(s.polygons) != 0 {
		t.Error("total access polygon containing the start was not removed")
	}
	if s.prependPoint != nil {
		t.Error("prepend point set without a relocation")
	}
}

func TestFixupStartBarred(t *testing.T) {
	square := newPolygon(BarredAccess, []Point{{2, 2}, {2, 8}, {8, 8}, {8, 2}})
	s := newTestState(square)

	start, err := fixupStartPoint(s, Point{5, 5})
	if err != nil {
		t.Fatalf("fixupStartPoint: %v", err)
	}
	if contained(start, square) == Inside {
		t.Errorf("relocated start %v still inside the polygon", start)
	}
	if s.prependPoint == nil || *s.prependPoint != (Point{5, 5}) {
		t.Error("original start not recorded for prepending")
	}
	if len(s.polygons) != 1 {
		t.Error("barred polygon must not be removed")
	}
}

func TestFixupStartOnEdgeKept(t *testing.T) {
	square := newPolygon(BarredAccess, []Point{{2, 2}, {2, 8}, {8, 8}, {8, 2}})
	s := newTestState(square)

	// Start relocation triggers on strict containment only
	start, err := fixupStartPoint(s, Point{2, 5})
	if err != nil {
		t.Fatalf("fixupStartPoint: %v", err)
	}
	if start != (Point{2, 5}) || s.prependPoint != nil {
		t.Errorf("start on the boundary was relocated to %v", start)
	}
}

func TestFixupStartContainedAccess(t *testing.T) {
	region := []Point{{5, 5}, {5, 15}, {15, 15}, {15, 5}}

	t.Run("irrelevant region removed", func(t *testing.T) {
		s := newTestState(newPolygon(ContainedAccess, region))
		if _, err := fixupStartPoint(s, Point{30, 30}); err != nil {
			t.Fatalf("fixupStartPoint: %v", err)
		}
		if len(s.polygons) != 0 {
			t.Error("contained access polygon far from the start was not removed")
		}
	})

	t.Run("start inside region kept untouched", func(t *testing.T) {
		s := newTestState(newPolygon(ContainedAccess, region))
		start, err := fixupStartPoint(s, Point{10, 10})
		if err != nil {
			t.Fatalf("fixupStartPoint: %v", err)
		}
		if start != (Point{10, 10}) || len(s.polygons) != 1 {
			t.Error("start inside the walkable region must not trigger a fixup")
		}
	})

	t.Run("start near boundary relocated into region", func(t *testing.T) {
		s := newTestState(newPolygon(ContainedAccess, region))
		start, err := fixupStartPoint(s, Point{4, 10})
		if err != nil {
			t.Fatalf("fixupStartPoint: %v", err)
		}
		if len(s.polygons) != 1 {
			t.Fatal("nearby contained access polygon was removed")
		}
		if contained(start, s.polygons[0]) == Inside {
			t.Errorf("relocated start %v still outside the walkable region", start)
		}
		if s.prependPoint == nil || *s.prependPoint != (Point{4, 10}) {
			t.Error("original start not recorded for prepending")
		}
	})
}

func TestFixupStartMultipleContainment(t *testing.T) {
	a := newPolygon(BarredAccess, []Point{{2, 2}, {2, 8}, {8, 8}, {8, 2}})
	b := newPolygon(BarredAccess, []Point{{3, 3}, {3, 12}, {12, 12}, {12, 3}})
	s := newTestState(a, b)

	start, err := fixupStartPoint(s, Point{5, 5})
	if err != nil {
		t.Fatalf("fixupStartPoint: %v", err)
	}
	// The first relocation wins; the second containment is only diagnosed
	if s.prependPoint == nil {
		t.Fatal("no relocation recorded")
	}
	if contained(start, a) == Inside {
		t.Errorf("start %v still inside the first polygon", start)
	}
}

func TestFixupEndNearestAppends(t *testing.T) {
	square := newPolygon(NearestAccess, []Point{{12, 2}, {12, 8}, {18, 8}, {18, 2}})
	s := newTestState(square)

	end, err := fixupEndPoint(s, Point{15, 5})
	if err != nil {
		t.Fatalf("fixupEndPoint: %v", err)
	}
	if contained(end, square) == Inside {
		t.Errorf("relocated end %v still inside the polygon", end)
	}
	if s.appendPoint == nil || *s.appendPoint != (Point{15, 5}) {
		t.Error("original end not recorded for appending")
	}
}

func TestFixupEndBarredNoAppend(t *testing.T) {
	square := newPolygon(BarredAccess, []Point{{12, 2}, {12, 8}, {18, 8}, {18, 2}})
	s := newTestState(square)

	end, err := fixupEndPoint(s, Point{15, 5})
	if err != nil {
		t.Fatalf("fixupEndPoint: %v", err)
	}
	if contained(end, square) == Inside {
		t.Errorf("relocated end %v still inside the polygon", end)
	}
	if s.appendPoint != nil {
		t.Error("append point recorded for a barred access polygon")
	}
}

func TestFixupEndOnEdgeRelocates(t *testing.T) {
	// Unlike the start, the end is fixed up whenever it is not strictly
	// outside; on the boundary of a nearest access polygon the original
	// end is still recorded for appending
	square := newPolygon(NearestAccess, []Point{{12, 2}, {12, 8}, {18, 8}, {18, 2}})
	s := newTestState(square)

	if _, err := fixupEndPoint(s, Point{12, 5}); err != nil {
		t.Fatalf("fixupEndPoint: %v", err)
	}
	if s.appendPoint == nil {
		t.Error("end on the boundary did not record an append point")
	}
}

func TestChangePolygonsOpt0(t *testing.T) {
	s := newTestState(
		newPolygon(TotalAccess, []Point{{0, 0}, {0, 2}, {2, 2}}),
		newPolygon(NearestAccess, []Point{{5, 5}, {5, 7}, {7, 7}}),
		newPolygon(BarredAccess, []Point{{9, 9}, {9, 11}, {11, 11}}),
	)

	changePolygonsOpt0(s)

	if len(s.polygons) != 2 {
		t.Fatalf("polygon count = %d, want 2", len(s.polygons))
	}
	if s.polygons[0].access != TotalAccess {
		t.Error("nearest access polygon not downgraded to total access")
	}
	if s.polygons[1].access != BarredAccess {
		t.Error("barred access polygon changed")
	}
}

func TestNearestIntersection(t *testing.T) {
	s := newTestState(newPolygon(BarredAccess, []Point{{4, -4}, {4, 4}, {6, 4}, {6, -4}}))

	isec, found, err := nearestIntersection(s, Point{0, 0}, Point{10, 0})
	if err != nil {
		t.Fatalf("nearestIntersection: %v", err)
	}
	if !found {
		t.Fatal("no intersection found for a blocked segment")
	}
	if isec != (Point{4, 0}) {
		t.Errorf("intersection = %v, want (4,0)", isec)
	}

	// An unobstructed segment has no intersection
	if _, found, _ := nearestIntersection(s, Point{0, 10}, Point{10, 10}); found {
		t.Error("intersection reported for a clear segment")
	}
}
