package sdfgen

import (
	"sync"

	"github.com/soypat/sdfgen/internal/geom"
	"github.com/soypat/sdfgen/mesh"
)

// runNarrowBand is the exact narrow-band pass (§4.D). For every triangle
// it visits only the voxels within its footprint (bounding box expanded
// by exactBand cells) and updates phi/closest via a point-to-triangle
// distance query.
//
// Triangles are partitioned into batches across worker goroutines. Each
// worker accumulates into a private scratch (phi, closest) pair
// initialized to the grid's sentinels, so no synchronization is needed
// while processing triangles; the scratch buffers are then reduced into
// the shared grid by per-voxel minimum, with ties broken by the smallest
// triangle index, matching the single-threaded result bit for bit.
func runNarrowBand(g *Grid, m mesh.Mesh, exactBand, threads int) {
	nt := len(m.Triangles)
	if nt == 0 {
		return
	}
	if threads > nt {
		threads = nt
	}
	if threads < 1 {
		threads = 1
	}

	scratches := make([]scratchPair, threads)
	n := g.NX * g.NY * g.NZ

	batch := (nt + threads - 1) / threads
	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		start := w * batch
		end := start + batch
		if start >= nt {
			continue // unused worker, empty scratch left zero-valued
		}
		if end > nt {
			end = nt
		}
		s := scratchPair{phi: make([]float32, n), closest: make([]int32, n)}
		for i := range s.phi {
			s.phi[i] = g.Sentinel
			s.closest[i] = -1
		}
		scratches[w] = s
		wg.Add(1)
		go func(start, end int, s scratchPair) {
			defer wg.Done()
			for ti := start; ti < end; ti++ {
				narrowBandTriangle(g, m, ti, exactBand, s.phi, s.closest)
			}
		}(start, end, s)
	}
	wg.Wait()

	reduceScratches(g, scratches)
}

// scratchPair is a worker's private distance/closest-triangle buffers,
// reduced into the shared Grid once every worker has finished.
type scratchPair struct {
	phi     []float32
	closest []int32
}

// reduceScratches merges every worker's private (phi, closest) pair into
// g by per-voxel minimum, breaking ties on equal distance by the smaller
// triangle index, so the result is independent of worker count and
// scheduling order (§5).
func reduceScratches(g *Grid, scratches []scratchPair) {
	for _, s := range scratches {
		if s.phi == nil {
			continue
		}
		for idx, d := range s.phi {
			if d >= g.Sentinel {
				continue
			}
			ct := s.closest[idx]
			cur := g.Phi[idx]
			if d < cur || (d == cur && (g.Closest[idx] < 0 || ct < g.Closest[idx])) {
				g.Phi[idx] = d
				g.Closest[idx] = ct
			}
		}
	}
}

// narrowBandTriangle computes triangle ti's footprint and updates the
// scratch (phi, closest) arrays for every voxel in it.
func narrowBandTriangle(g *Grid, m mesh.Mesh, ti, exactBand int, phi []float32, closest []int32) {
	a, b, c := m.Triangle(ti)
	ia := g.ToIndexSpace(a)
	ib := g.ToIndexSpace(b)
	ic := g.ToIndexSpace(c)
	minI := geom.MinElem(geom.MinElem(ia, ib), ic)
	maxI := geom.MaxElem(geom.MaxElem(ia, ib), ic)

	i0 := clampInt(int(floorf(minI.X))-exactBand, 0, g.NX-1)
	i1 := clampInt(int(ceilf(maxI.X))+exactBand, 0, g.NX-1)
	j0 := clampInt(int(floorf(minI.Y))-exactBand, 0, g.NY-1)
	j1 := clampInt(int(ceilf(maxI.Y))+exactBand, 0, g.NY-1)
	k0 := clampInt(int(floorf(minI.Z))-exactBand, 0, g.NZ-1)
	k1 := clampInt(int(ceilf(maxI.Z))+exactBand, 0, g.NZ-1)

	for k := k0; k <= k1; k++ {
		for j := j0; j <= j1; j++ {
			for i := i0; i <= i1; i++ {
				center := g.Center(i, j, k)
				d := geom.PointTriangleDistance(center, a, b, c)
				idx := g.Index(i, j, k)
				if d < phi[idx] {
					phi[idx] = d
					closest[idx] = int32(ti)
				}
			}
		}
	}
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func floorf(x float32) float32 {
	i := int(x)
	if x < 0 && float32(i) != x {
		i--
	}
	return float32(i)
}

func ceilf(x float32) float32 {
	i := int(x)
	if x > 0 && float32(i) != x {
		i++
	}
	return float32(i)
}
