package main

// PathSentinel is the coordinate used for the terminating pair of every
// returned path. It lies outside any legal scene coordinate.
const PathSentinel = 0x7777

// sentinelPoint terminates every output sequence
var sentinelPoint = Point{PathSentinel, PathSentinel}

// outputPath walks the predecessor chain from the end vertex into the final
// start-to-end point sequence, re-attaching the prepend and append points
// recorded during fixup and terminating with the sentinel.
//
// When the end vertex was never reached the output is truncated to the path
// up to the start vertex only; the two-point shape is how partial failure is
// signalled to the caller.
func outputPath(s *PathfindingState) []Point {
	if s.vertexEnd.pathPrev == nil {
		// Unreachable; return the path up to the start vertex
		out := make([]Point, 0, 3)
		if s.prependPoint != nil {
			out = append(out, *s.prependPoint)
		} else {
			out = append(out, s.vertexStart.P)
		}
		return append(out, s.vertexStart.P, sentinelPoint)
	}

	pathLen := 0
	for vertex := s.vertexEnd; vertex != nil; vertex = vertex.pathPrev {
		pathLen++
	}

	out := make([]Point, 0, pathLen+3)
	if s.prependPoint != nil {
		out = append(out, *s.prependPoint)
	}

	// Walk predecessors back to the start, then reverse into place
	first := len(out)
	for vertex := s.vertexEnd; vertex != nil; vertex = vertex.pathPrev {
		out = append(out, vertex.P)
	}
	for i, j := first, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	if s.appendPoint != nil {
		out = append(out, *s.appendPoint)
	}

	return append(out, sentinelPoint)
}

// directPath is the fallback output shape: straight from start to end with
// no avoidance. Callers treat it identically to an unreachable result.
func directPath(start, end Point) []Point {
	return []Point{start, end, sentinelPoint}
}
