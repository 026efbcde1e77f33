package sdfgen

import (
	"github.com/soypat/sdfgen/internal/geom"
	"github.com/soypat/sdfgen/mesh"
)

// sweepDirections is the fixed, deterministic schedule of the six rook
// sweeps (§4.F): axis 0/1/2 is i/j/k, sign +1/-1 is the direction of
// travel along that axis. Two full passes of all six directions suffice
// to extend the exact narrow-band distances to every voxel reachable
// through it.
var sweepDirections = [6]struct{ axis, sign int }{
	{0, 1}, {0, -1},
	{1, 1}, {1, -1},
	{2, 1}, {2, -1},
}

// runSweep is the fast sweep propagation stage. It runs on the calling
// goroutine: each direction is strictly sequential since a voxel depends
// on neighbors visited earlier in the same pass (§4.F, §5).
func runSweep(g *Grid, m mesh.Mesh) {
	for pass := 0; pass < 2; pass++ {
		for _, d := range sweepDirections {
			sweepOnce(g, m, d.axis, d.sign)
		}
	}
}

func sweepOnce(g *Grid, m mesh.Mesh, axis, sign int) {
	iStart, iEnd, iStep := loopBounds(g.NX, axis == 0 && sign < 0)
	jStart, jEnd, jStep := loopBounds(g.NY, axis == 1 && sign < 0)
	kStart, kEnd, kStep := loopBounds(g.NZ, axis == 2 && sign < 0)
	for k := kStart; k != kEnd; k += kStep {
		for j := jStart; j != jEnd; j += jStep {
			for i := iStart; i != iEnd; i += iStep {
				sweepVoxel(g, m, i, j, k)
			}
		}
	}
}

// loopBounds returns the (start, end, step) of a loop over [0,n) that
// runs ascending, or descending from n-1 to 0 when reverse is true.
func loopBounds(n int, reverse bool) (start, end, step int) {
	if !reverse {
		return 0, n, 1
	}
	return n - 1, -1, -1
}

// sweepVoxel examines the six face neighbors of (i,j,k) already computed
// in this or an earlier pass and, for every neighbor with a valid
// closest-triangle id, tries that triangle's distance against the
// current voxel — propagating the narrow band's exact distances outward
// one cell at a time.
func sweepVoxel(g *Grid, m mesh.Mesh, i, j, k int) {
	idx := g.Index(i, j, k)
	center := g.Center(i, j, k)
	neighbors := [6][3]int{
		{i - 1, j, k}, {i + 1, j, k},
		{i, j - 1, k}, {i, j + 1, k},
		{i, j, k - 1}, {i, j, k + 1},
	}
	for _, n := range neighbors {
		if !g.InBounds(n[0], n[1], n[2]) {
			continue
		}
		nidx := g.Index(n[0], n[1], n[2])
		ct := g.Closest[nidx]
		if ct < 0 {
			continue
		}
		a, b, c := m.Triangle(int(ct))
		d := geom.PointTriangleDistance(center, a, b, c)
		if d < g.Phi[idx] {
			g.Phi[idx] = d
			g.Closest[idx] = ct
		}
	}
}
