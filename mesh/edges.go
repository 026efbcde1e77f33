package mesh

// edgeKey is an unordered vertex-index pair, always stored with the
// smaller index first so it can key a map regardless of winding.
type edgeKey struct{ lo, hi int32 }

func newEdgeKey(a, b int32) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{lo: a, hi: b}
}

// edgeTable maps an unordered vertex-index pair to the triangle indices
// that contain it. Rebuilt on demand, never persisted on Mesh.
type edgeTable map[edgeKey][]int32

// buildEdgeTable derives the edge table of m: one entry per unique edge,
// listing every triangle incident to it.
func buildEdgeTable(m Mesh) edgeTable {
	et := make(edgeTable, len(m.Triangles)*3/2)
	for ti, tri := range m.Triangles {
		for j := 0; j < 3; j++ {
			k := newEdgeKey(tri[j], tri[(j+1)%3])
			et[k] = append(et[k], int32(ti))
		}
	}
	return et
}

// boundaryAdjacency maps a boundary vertex to the other boundary vertices
// it shares a boundary edge with, used to walk boundary loops.
func boundaryAdjacency(et edgeTable) map[int32][]int32 {
	adj := make(map[int32][]int32)
	for k, tris := range et {
		if len(tris) != 1 {
			continue
		}
		adj[k.lo] = append(adj[k.lo], k.hi)
		adj[k.hi] = append(adj[k.hi], k.lo)
	}
	return adj
}
