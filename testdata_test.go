package sdfgen

import (
	"github.com/soypat/sdfgen/internal/geom"
	"github.com/soypat/sdfgen/mesh"
)

// unitCube returns the watertight 8-vertex, 12-triangle unit cube used
// throughout the seed scenarios (vertices at {0,1}^3, two triangles per
// face, consistent winding with every face normal, by the right-hand rule,
// pointing into the cube).
func unitCube() mesh.Mesh {
	v := []geom.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	tris := [][3]int32{
		{0, 1, 2}, {0, 2, 3}, // bottom
		{4, 6, 5}, {4, 7, 6}, // top
		{0, 5, 1}, {0, 4, 5}, // front y=0
		{3, 2, 6}, {3, 6, 7}, // back y=1
		{0, 3, 7}, {0, 7, 4}, // left x=0
		{1, 5, 6}, {1, 6, 2}, // right x=1
	}
	return mesh.Mesh{Vertices: v, Triangles: tris}
}

// onUnitCubeSurface reports whether p lies, within 1e-6, on the surface of
// the cube [0,1]^3 that unitCube describes.
func onUnitCubeSurface(p geom.Vec3) bool {
	const tol = 1e-6
	in := func(v float32) bool { return v >= -tol && v <= 1+tol }
	on := func(v float32) bool { return (v >= -tol && v <= tol) || (v >= 1-tol && v <= 1+tol) }
	return in(p.X) && in(p.Y) && in(p.Z) && (on(p.X) || on(p.Y) || on(p.Z))
}

// singleTriangle returns the flat (0,0,0)-(1,0,0)-(0,1,0) single triangle
// in the z=0 plane.
func singleTriangle() mesh.Mesh {
	return mesh.Mesh{
		Vertices: []geom.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
		Triangles: [][3]int32{
			{0, 1, 2},
		},
	}
}
