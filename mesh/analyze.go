package mesh

import "sort"

// Analysis is the report produced by Analyze: edge/triangle adjacency
// counts, boundary loops and the derived manifoldness and watertightness
// booleans.
type Analysis struct {
	NumEdges         int
	BoundaryEdges    int
	NonManifoldEdges int
	Loops            [][]int32
	IsManifold       bool
	IsWatertight     bool
}

// Analyze computes edge/triangle adjacency, manifoldness and boundary
// loops for m. It never mutates m.
func Analyze(m Mesh) Analysis {
	et := buildEdgeTable(m)
	a := Analysis{NumEdges: len(et)}
	for _, tris := range et {
		switch {
		case len(tris) == 1:
			a.BoundaryEdges++
		case len(tris) > 2:
			a.NonManifoldEdges++
		}
	}
	a.IsManifold = a.NonManifoldEdges == 0
	a.IsWatertight = a.IsManifold && a.BoundaryEdges == 0
	a.Loops = findBoundaryLoops(et)
	return a
}

// findBoundaryLoops walks the boundary-vertex adjacency graph, discarding
// any discovered loop shorter than 3 vertices. Boundary vertices are
// visited in ascending index order so the result is deterministic.
func findBoundaryLoops(et edgeTable) [][]int32 {
	adj := boundaryAdjacency(et)
	if len(adj) == 0 {
		return nil
	}
	verts := make([]int32, 0, len(adj))
	for v := range adj {
		verts = append(verts, v)
	}
	sort.Slice(verts, func(i, j int) bool { return verts[i] < verts[j] })

	visited := make(map[int32]bool, len(adj))
	var loops [][]int32
	for _, start := range verts {
		if visited[start] {
			continue
		}
		loop := []int32{start}
		visited[start] = true
		cur := start
		for {
			next, ok := unvisitedNeighbor(adj[cur], visited, start)
			if !ok {
				break
			}
			if next == start {
				break // loop closed
			}
			loop = append(loop, next)
			visited[next] = true
			cur = next
		}
		if len(loop) >= 3 {
			loops = append(loops, loop)
		}
	}
	return loops
}

// unvisitedNeighbor returns the first neighbor not yet visited. If every
// neighbor has already been visited, it returns start to close the loop
// when start is among them, so the walk never stops one step short of
// closing a cycle it has otherwise fully traversed.
func unvisitedNeighbor(neighbors []int32, visited map[int32]bool, start int32) (int32, bool) {
	for _, n := range neighbors {
		if !visited[n] {
			return n, true
		}
	}
	for _, n := range neighbors {
		if n == start {
			return n, true
		}
	}
	return 0, false
}
