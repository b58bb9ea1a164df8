package main

import (
	"github.com/dhconnelly/rtreego"
)

// polygonEntry wraps a polygon for R-tree storage
type polygonEntry struct {
	polygon *Polygon
	bbox    rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *polygonEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// SpatialIndex answers which polygons a sight line could possibly obstruct,
// by axis-aligned bounding box. Single-vertex polygons have no edges and are
// not indexed.
type SpatialIndex struct {
	tree *rtreego.Rtree
}

// NewSpatialIndex builds the index over the current polygon set. Call it
// after scene building is complete; edge splits from mergePoint stay inside
// the original bounding boxes, so the index remains valid during the search.
func NewSpatialIndex(polygons []*Polygon) *SpatialIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	for _, polygon := range polygons {
		if len(polygon.verts) < 2 {
			continue
		}
		bbox, err := polygonBoundingBox(polygon)
		if err != nil {
			continue
		}
		tree.Insert(&polygonEntry{polygon: polygon, bbox: bbox})
	}

	return &SpatialIndex{tree: tree}
}

// SegmentCandidates returns the polygons whose bounding box intersects the
// bounding box of the segment (p, q)
func (si *SpatialIndex) SegmentCandidates(p, q Point) []*Polygon {
	minX, maxX := float64(min(p.X, q.X)), float64(max(p.X, q.X))
	minY, maxY := float64(min(p.Y, q.Y)), float64(max(p.Y, q.Y))

	// Pad by one pixel so degenerate axis-aligned segments keep a
	// positive extent
	bbox, err := rtreego.NewRect(
		rtreego.Point{minX, minY},
		[]float64{maxX - minX + 1, maxY - minY + 1},
	)
	if err != nil {
		return nil
	}

	results := si.tree.SearchIntersect(bbox)
	polygons := make([]*Polygon, 0, len(results))
	for _, item := range results {
		polygons = append(polygons, item.(*polygonEntry).polygon)
	}

	return polygons
}

// polygonBoundingBox computes the axis-aligned bounding box for a polygon
func polygonBoundingBox(polygon *Polygon) (rtreego.Rect, error) {
	minX, minY := polygon.verts[0].P.X, polygon.verts[0].P.Y
	maxX, maxY := minX, minY

	for _, v := range polygon.verts[1:] {
		minX = min(minX, v.P.X)
		maxX = max(maxX, v.P.X)
		minY = min(minY, v.P.Y)
		maxY = max(maxY, v.P.Y)
	}

	return rtreego.NewRect(
		rtreego.Point{float64(minX), float64(minY)},
		[]float64{float64(maxX - minX + 1), float64(maxY - minY + 1)},
	)
}
