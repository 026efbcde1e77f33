package meshio

import (
	"fmt"
	"io"

	"github.com/hschendel/stl"
	"github.com/soypat/sdfgen/internal/geom"
	"github.com/soypat/sdfgen/mesh"
)

// WeldTolerance is the vertex-merge distance §6 mandates for STL loading:
// every triangle in a binary STL owns its own copy of each vertex it
// touches, so the loader must weld before the mesh reaches the core
// pipeline.
const WeldTolerance = 1e-5

// LoadSTL decodes a binary STL stream and welds its per-triangle
// duplicate vertices at WeldTolerance before returning.
func LoadSTL(r io.ReadSeeker) (mesh.Mesh, error) {
	solid, err := stl.ReadAll(r)
	if err != nil {
		return mesh.Mesh{}, fmt.Errorf("meshio: reading stl: %w", err)
	}
	raw := mesh.Mesh{
		Vertices:  make([]geom.Vec3, 0, len(solid.Triangles)*3),
		Triangles: make([][3]int32, len(solid.Triangles)),
	}
	for ti, tri := range solid.Triangles {
		var t [3]int32
		for vi, v := range tri.Vertices {
			idx := int32(len(raw.Vertices))
			raw.Vertices = append(raw.Vertices, geom.Vec3{X: v[0], Y: v[1], Z: v[2]})
			t[vi] = idx
		}
		raw.Triangles[ti] = t
	}
	welded, _, err := mesh.Weld(raw, WeldTolerance)
	if err != nil {
		return mesh.Mesh{}, fmt.Errorf("meshio: welding stl: %w", err)
	}
	return welded, nil
}
