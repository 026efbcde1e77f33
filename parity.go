package sdfgen

import (
	"sync"

	"github.com/soypat/sdfgen/internal/geom"
	"github.com/soypat/sdfgen/mesh"
)

// runParity is the intersection parity pass (§4.E). For every column
// (i,j) it shoots an axis-aligned ray along k through every triangle
// whose 2D (x,y) projection contains the column's voxel-center (x,y),
// and increments inside[i,j,k] by +1 or -1 (depending on the triangle's
// signed area in (x,y)) for every voxel whose center-z exceeds the
// ray-plane crossing z.
//
// Columns are independent, so each worker owns a disjoint range of
// columns and writes only within it: no synchronization is required.
func runParity(g *Grid, m mesh.Mesh, threads int) {
	totalCols := g.NX * g.NY
	if totalCols == 0 {
		return
	}
	if threads < 1 {
		threads = 1
	}
	if threads > totalCols {
		threads = totalCols
	}
	batch := (totalCols + threads - 1) / threads

	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		start := w * batch
		end := start + batch
		if start >= totalCols {
			continue
		}
		if end > totalCols {
			end = totalCols
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for col := start; col < end; col++ {
				i := col % g.NX
				j := col / g.NX
				parityColumn(g, m, i, j)
			}
		}(start, end)
	}
	wg.Wait()
}

func parityColumn(g *Grid, m mesh.Mesh, i, j int) {
	cx := g.Origin.X + (float32(i)+0.5)*g.Dx
	cy := g.Origin.Y + (float32(j)+0.5)*g.Dx
	for ti := range m.Triangles {
		a, b, c := m.Triangle(ti)
		ab := b.Sub(a)
		ac := c.Sub(a)
		n := geom.Cross(ab, ac)
		if n.Z == 0 {
			continue // triangle's (x,y) projection has zero area
		}
		if !columnInTriangleXY(cx, cy, a, b, c) {
			continue
		}
		zCross := a.Z - (n.X*(cx-a.X)+n.Y*(cy-a.Y))/n.Z
		sign := int32(1)
		if n.Z < 0 {
			sign = -1
		}
		for k := 0; k < g.NZ; k++ {
			zCenter := g.Origin.Z + (float32(k)+0.5)*g.Dx
			if zCenter > zCross {
				idx := g.Index(i, j, k)
				g.Inside[idx] += sign
			}
		}
	}
}

// columnInTriangleXY reports whether (x,y) lies within the (x,y)
// projection of triangle (a,b,c), using the Orientation2D predicate.
// Points strictly inside are contained. A point exactly on an edge is
// contained only when that edge, taken counter-clockwise around the
// projected triangle, runs towards -y, or towards +x with no change in y.
// Two triangles on opposite sides of a shared edge traverse it in opposite
// directions, so a ray passing exactly through a shared edge or vertex is
// attributed to a single owning triangle.
func columnInTriangleXY(x, y float32, a, b, c geom.Vec3) bool {
	if geom.Orientation2D(a.X, a.Y, b.X, b.Y, c.X, c.Y) < 0 {
		b, c = c, b // visit the edges counter-clockwise
	}
	owns := func(p, q geom.Vec3) bool {
		if d := geom.Orientation2D(x, y, p.X, p.Y, q.X, q.Y); d != 0 {
			return d > 0
		}
		dx, dy := q.X-p.X, q.Y-p.Y
		return dy < 0 || (dy == 0 && dx > 0)
	}
	return owns(a, b) && owns(b, c) && owns(c, a)
}
