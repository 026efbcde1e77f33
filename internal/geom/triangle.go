package geom

import "github.com/chewxy/math32"

// degenerateArea2 is the squared double-area threshold below which a
// triangle is treated as degenerate (zero area).
const degenerateArea2 = 1e-20

// PointTriangleDistance returns the exact Euclidean distance from p to the
// closed triangle (a, b, c), handling every Voronoi region (the three
// vertices, the three edges and the interior face).
//
// The triangle is projected onto its own plane using an orthonormal local
// frame built from edge (a,b); the closest point is found in that 2D frame
// by clamping against the three edges, then mapped back to 3D. Degenerate
// (zero-area) triangles fall back to the minimum of the three point-segment
// distances so the result is never NaN.
func PointTriangleDistance(p, a, b, c Vec3) float32 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	n := Cross(ab, ac)
	if Norm2(n) < degenerateArea2 {
		return degenerateTriangleDistance(p, a, b, c)
	}

	xAxis := Unit(ab)
	normal := Unit(n)
	yAxis := Cross(normal, xAxis)

	project := func(v Vec3) (float32, float32) {
		rel := v.Sub(a)
		return Dot(rel, xAxis), Dot(rel, yAxis)
	}
	px, py := project(p)
	_, _ = project(a) // a is the local origin, (0,0)
	bx, by := project(b)
	cx, cy := project(c)

	cpx, cpy, _ := closestOnTriangle2D(px, py, 0, 0, bx, by, cx, cy)
	closest := a.Add(xAxis.Scale(cpx)).Add(yAxis.Scale(cpy))
	return Norm(p.Sub(closest))
}

// degenerateTriangleDistance handles zero-area triangles (collinear or
// coincident vertices) by falling back to the closest of the three edges,
// which themselves degrade gracefully to point-point distance when an
// edge has zero length.
func degenerateTriangleDistance(p, a, b, c Vec3) float32 {
	d0 := pointSegmentDistance(p, a, b)
	d1 := pointSegmentDistance(p, b, c)
	d2 := pointSegmentDistance(p, c, a)
	d := d0
	if d1 < d {
		d = d1
	}
	if d2 < d {
		d = d2
	}
	return d
}

func pointSegmentDistance(p, a, b Vec3) float32 {
	ab := b.Sub(a)
	len2 := Norm2(ab)
	if len2 < degenerateArea2 {
		return Norm(p.Sub(a))
	}
	t := Dot(p.Sub(a), ab) / len2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := a.Add(ab.Scale(t))
	return Norm(p.Sub(closest))
}

// closestOnTriangle2D finds the point on the closed 2D triangle (ax,ay),
// (bx,by), (cx,cy) closest to (px,py), returning its coordinates and the
// squared distance. Ties within each edge test resolve via strict `<`
// comparisons so results are stable across repeated calls.
func closestOnTriangle2D(px, py, ax, ay, bx, by, cx, cy float32) (cpx, cpy, dist2 float32) {
	if inTriangle2D(px, py, ax, ay, bx, by, cx, cy) {
		return px, py, 0
	}
	type edge struct{ x0, y0, x1, y1 float32 }
	edges := [3]edge{
		{ax, ay, bx, by},
		{bx, by, cx, cy},
		{cx, cy, ax, ay},
	}
	best := float32(math32.MaxFloat32)
	for _, e := range edges {
		qx, qy := closestOnSegment2D(px, py, e.x0, e.y0, e.x1, e.y1)
		dx, dy := px-qx, py-qy
		d2 := dx*dx + dy*dy
		if d2 < best {
			best = d2
			cpx, cpy = qx, qy
		}
	}
	return cpx, cpy, best
}

func closestOnSegment2D(px, py, x0, y0, x1, y1 float32) (float32, float32) {
	dx, dy := x1-x0, y1-y0
	len2 := dx*dx + dy*dy
	if len2 < degenerateArea2 {
		return x0, y0
	}
	t := ((px-x0)*dx + (py-y0)*dy) / len2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return x0 + t*dx, y0 + t*dy
}

// inTriangle2D reports whether (px,py) lies within the closed triangle
// (ax,ay), (bx,by), (cx,cy), using Orientation2D. Points on an edge or
// vertex count as inside.
func inTriangle2D(px, py, ax, ay, bx, by, cx, cy float32) bool {
	d1 := Orientation2D(px, py, ax, ay, bx, by)
	d2 := Orientation2D(px, py, bx, by, cx, cy)
	d3 := Orientation2D(px, py, cx, cy, ax, ay)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// Orientation2D returns twice the signed area of the triangle (p, p1, p2)
// projected onto a 2D plane: positive if (p, p1, p2) turns counter-clockwise,
// negative if clockwise, zero if collinear. Used by the intersection parity
// pass to test whether a ray origin falls inside a triangle's 2D projection
// and to derive the crossing's winding sign.
func Orientation2D(x, y, x1, y1, x2, y2 float32) float32 {
	return (x1-x)*(y2-y) - (x2-x)*(y1-y)
}
