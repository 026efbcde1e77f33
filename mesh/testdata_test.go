package mesh

import "github.com/soypat/sdfgen/internal/geom"

// unitCube returns the watertight 8-vertex, 12-triangle unit cube used by
// the seed scenarios in the spec (vertices at {0,1}^3, two triangles per
// face).
func unitCube() Mesh {
	v := []geom.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0}, // bottom (z=0): 0,1,2,3
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1}, // top (z=1): 4,5,6,7
	}
	tris := [][3]int32{
		{0, 1, 2}, {0, 2, 3}, // bottom
		{4, 6, 5}, {4, 7, 6}, // top
		{0, 5, 1}, {0, 4, 5}, // front y=0
		{3, 2, 6}, {3, 6, 7}, // back y=1
		{0, 3, 7}, {0, 7, 4}, // left x=0
		{1, 5, 6}, {1, 6, 2}, // right x=1
	}
	return Mesh{Vertices: v, Triangles: tris}
}

// cubeMissingFace returns unitCube with its top face (z=1) removed,
// leaving a single boundary loop of 4 edges.
func cubeMissingFace() Mesh {
	m := unitCube()
	full := m.Triangles
	// Drop the top face (triangle indices 2,3: z=1), keep the other five faces.
	m.Triangles = append([][3]int32{}, full[0], full[1])
	m.Triangles = append(m.Triangles, full[4:]...)
	return m
}

// singleTriangle returns the (0,0,0)-(1,0,0)-(0,1,0) single-triangle
// mesh from the spec's seed scenarios.
func singleTriangle() Mesh {
	return Mesh{
		Vertices: []geom.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
		Triangles: [][3]int32{
			{0, 1, 2},
		},
	}
}

// stlStyleCube returns a 36-vertex (12 triangles x 3 unique-per-triangle
// vertices), geometrically identical to unitCube but with every triangle
// owning its own copy of each vertex position, as a binary STL loader
// would hand back before welding.
func stlStyleCube() Mesh {
	src := unitCube()
	out := Mesh{
		Vertices:  make([]geom.Vec3, 0, len(src.Triangles)*3),
		Triangles: make([][3]int32, len(src.Triangles)),
	}
	for ti, tri := range src.Triangles {
		var newTri [3]int32
		for j, vi := range tri {
			idx := int32(len(out.Vertices))
			out.Vertices = append(out.Vertices, src.Vertices[vi])
			newTri[j] = idx
		}
		out.Triangles[ti] = newTri
	}
	return out
}
