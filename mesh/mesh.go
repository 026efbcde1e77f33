// Package mesh defines the triangle mesh data model, edge adjacency
// analysis and the repair stage (vertex welding and hole filling) that
// makes the grid pipeline's sign determination reliable on imperfect
// input geometry.
package mesh

import "github.com/soypat/sdfgen/internal/geom"

// Mesh is an ordered sequence of vertices and an ordered sequence of
// triangles, each a triple of indices into Vertices. Orientation is
// consistent in input convention but is never required by the grid
// pipeline: sign is recovered independently via intersection parity.
type Mesh struct {
	Vertices  []geom.Vec3
	Triangles [][3]int32
}

// Triangle returns the three vertex positions of triangle i.
func (m Mesh) Triangle(i int) (a, b, c geom.Vec3) {
	t := m.Triangles[i]
	return m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
}

// Bounds returns the axis-aligned bounding box of all vertices. Calling
// Bounds on a mesh with no vertices panics, mirroring slice-index
// semantics elsewhere in this package: callers must check for an empty
// mesh first (§7, "Empty mesh").
func (m Mesh) Bounds() geom.Box {
	bb := geom.Box{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		bb = bb.Include(v)
	}
	return bb
}

// degenerateTriangle reports whether a triangle references the same
// vertex index twice, the invariant Weld and FillHoles must preserve.
func degenerateTriangle(t [3]int32) bool {
	return t[0] == t[1] || t[1] == t[2] || t[2] == t[0]
}
