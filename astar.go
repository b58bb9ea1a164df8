package main

import (
	"container/heap"
	"log"
	"math"
)

// openQueue implements heap.Interface over the A* open set. Ties on the
// estimated total cost are broken by lower path cost, then by insertion
// order, so identical input always yields the identical path.
type openQueue []*Vertex

func (pq openQueue) Len() int { return len(pq) }

func (pq openQueue) Less(i, j int) bool {
	if pq[i].costF != pq[j].costF {
		return pq[i].costF < pq[j].costF
	}
	if pq[i].costG != pq[j].costG {
		return pq[i].costG < pq[j].costG
	}
	return pq[i].seq < pq[j].seq
}

func (pq openQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].heapIdx = i
	pq[j].heapIdx = j
}

func (pq *openQueue) Push(x interface{}) {
	v := x.(*Vertex)
	v.heapIdx = len(*pq)
	*pq = append(*pq, v)
}

func (pq *openQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	v := old[n-1]
	old[n-1] = nil
	v.heapIdx = -1
	*pq = old[0 : n-1]
	return v
}

// aStar computes a shortest path from the state's start vertex to its end
// vertex over the lazily evaluated visibility graph. The caller constructs
// the resulting path by following the pathPrev links from the end vertex;
// if no path exists the end vertex's pathPrev stays nil, which is a normal
// outcome rather than an error.
//
// When avoidScreenBorder is set, vertices lying exactly on the scene's
// outer boundary are skipped unless they are the end vertex, preventing
// degenerate paths that hug the frame edge.
func aStar(s *PathfindingState, index *SpatialIndex, avoidScreenBorder bool) {
	// Reset per-call search state; vertices are never shared across runs
	// without this reinitialization
	for _, vertex := range s.vertexIndex {
		vertex.costG = math.Inf(1)
		vertex.costF = math.Inf(1)
		vertex.pathPrev = nil
		vertex.heapIdx = -1
	}

	openSet := &openQueue{}
	heap.Init(openSet)

	closed := make(map[*Vertex]bool, len(s.vertexIndex))
	inOpen := make(map[*Vertex]bool, len(s.vertexIndex))
	seq := 0

	s.vertexStart.costG = 0
	s.vertexStart.costF = s.vertexStart.P.Distance(s.vertexEnd.P)
	s.vertexStart.seq = seq
	seq++
	heap.Push(openSet, s.vertexStart)
	inOpen[s.vertexStart] = true

	for openSet.Len() > 0 {
		vertexMin := heap.Pop(openSet).(*Vertex)
		delete(inOpen, vertexMin)

		// Check if we are done
		if vertexMin == s.vertexEnd {
			return
		}

		closed[vertexMin] = true

		for _, vertex := range visibleVertices(s, index, vertexMin) {
			if closed[vertex] {
				continue
			}

			if avoidScreenBorder {
				// Avoid plotting the path along the screen border
				if vertex != s.vertexEnd && s.pointOnScreenBorder(vertex.P) {
					continue
				}
			}

			if !inOpen[vertex] {
				vertex.seq = seq
				seq++
				heap.Push(openSet, vertex)
				inOpen[vertex] = true
			}

			newDist := vertexMin.costG + vertexMin.P.Distance(vertex.P)
			if newDist < vertex.costG {
				vertex.costG = newDist
				vertex.costF = newDist + vertex.P.Distance(s.vertexEnd.P)
				vertex.pathPrev = vertexMin
				heap.Fix(openSet, vertex.heapIdx)
			}
		}
	}

	log.Printf("walkplan: end point (%d, %d) is unreachable", s.vertexEnd.P.X, s.vertexEnd.P.Y)
}
