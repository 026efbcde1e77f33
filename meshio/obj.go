// Package meshio loads triangle meshes from the ASCII OBJ and binary STL
// formats named in the external interfaces (§6): OBJ is parsed directly,
// STL is decoded with github.com/hschendel/stl and welded before it is
// handed back, since a binary STL always duplicates a vertex once per
// triangle that touches it.
package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/soypat/sdfgen/internal/geom"
	"github.com/soypat/sdfgen/mesh"
)

// LoadOBJ parses an ASCII OBJ stream into a Mesh. Only `v` and `f` lines
// are interpreted; everything else (comments, normals, texture
// coordinates, groups, materials) is ignored. Faces are 1-indexed and may
// carry `//n` or `/t/n` suffixes on each vertex reference, which are
// stripped; polygons with more than three vertices are triangulated as a
// fan around their first vertex.
func LoadOBJ(r io.Reader) (mesh.Mesh, error) {
	var m mesh.Mesh
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return mesh.Mesh{}, fmt.Errorf("meshio: line %d: %w", line, err)
			}
			m.Vertices = append(m.Vertices, v)
		case "f":
			idx, err := parseFaceIndices(fields[1:])
			if err != nil {
				return mesh.Mesh{}, fmt.Errorf("meshio: line %d: %w", line, err)
			}
			tris, err := fanTriangulate(idx, len(m.Vertices))
			if err != nil {
				return mesh.Mesh{}, fmt.Errorf("meshio: line %d: %w", line, err)
			}
			m.Triangles = append(m.Triangles, tris...)
		}
	}
	if err := sc.Err(); err != nil {
		return mesh.Mesh{}, fmt.Errorf("meshio: reading obj: %w", err)
	}
	return m, nil
}

func parseVertex(fields []string) (geom.Vec3, error) {
	if len(fields) < 3 {
		return geom.Vec3{}, fmt.Errorf("vertex line needs 3 coordinates, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return geom.Vec3{}, fmt.Errorf("invalid vertex x: %w", err)
	}
	y, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return geom.Vec3{}, fmt.Errorf("invalid vertex y: %w", err)
	}
	z, err := strconv.ParseFloat(fields[2], 32)
	if err != nil {
		return geom.Vec3{}, fmt.Errorf("invalid vertex z: %w", err)
	}
	return geom.Vec3{X: float32(x), Y: float32(y), Z: float32(z)}, nil
}

// parseFaceIndices resolves a `f` line's vertex references to 0-indexed
// vertex indices, stripping any `//n` or `/t/n` suffix.
func parseFaceIndices(fields []string) ([]int32, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("face line needs at least 3 vertices, got %d", len(fields))
	}
	idx := make([]int32, len(fields))
	for i, f := range fields {
		ref := f
		if slash := strings.IndexByte(f, '/'); slash >= 0 {
			ref = f[:slash]
		}
		n, err := strconv.Atoi(ref)
		if err != nil {
			return nil, fmt.Errorf("invalid face index %q: %w", f, err)
		}
		idx[i] = int32(n - 1) // OBJ indices are 1-based
	}
	return idx, nil
}

func fanTriangulate(idx []int32, vertexCount int) ([][3]int32, error) {
	for _, i := range idx {
		if i < 0 || int(i) >= vertexCount {
			return nil, fmt.Errorf("face references vertex %d, but only %d vertices seen so far", i+1, vertexCount)
		}
	}
	tris := make([][3]int32, 0, len(idx)-2)
	for i := 1; i < len(idx)-1; i++ {
		tris = append(tris, [3]int32{idx[0], idx[i], idx[i+1]})
	}
	return tris, nil
}
