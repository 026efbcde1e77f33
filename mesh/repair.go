package mesh

import (
	"fmt"

	"github.com/soypat/sdfgen/internal/geom"
)

// WeldReport summarizes a Weld call.
type WeldReport struct {
	// Merged is the count of input vertices that were mapped onto an
	// already-emitted vertex rather than emitted themselves.
	Merged int
	// DroppedFaces is the count of triangles dropped because welding
	// made them reference the same vertex twice.
	DroppedFaces int
}

type bucket [3]int32

func vertexBucket(v geom.Vec3, invTol float32) bucket {
	return bucket{
		int32(floor32(v.X * invTol)),
		int32(floor32(v.Y * invTol)),
		int32(floor32(v.Z * invTol)),
	}
}

func floor32(x float32) float32 {
	i := float32(int32(x))
	if x < 0 && i != x {
		i--
	}
	return i
}

// Weld merges vertices that lie within tolerance t of a previously emitted
// vertex, rewriting face indices through the resulting map and dropping
// any face that becomes degenerate. Vertices are processed in input
// order and the first occurrence in any 3x3x3 bucket neighborhood wins,
// so the result is a prefix-stable subsequence of the input: applying
// Weld twice with the same tolerance is a no-op on the second pass.
func Weld(m Mesh, t float32) (Mesh, WeldReport, error) {
	if t <= 0 {
		return Mesh{}, WeldReport{}, fmt.Errorf("mesh: weld tolerance must be positive, got %v", t)
	}
	invTol := 1 / t
	buckets := make(map[bucket][]int32, len(m.Vertices))
	remap := make([]int32, len(m.Vertices))
	out := Mesh{Vertices: make([]geom.Vec3, 0, len(m.Vertices))}

	var report WeldReport
	for i, v := range m.Vertices {
		b := vertexBucket(v, invTol)
		found := int32(-1)
		for dx := int32(-1); dx <= 1 && found < 0; dx++ {
			for dy := int32(-1); dy <= 1 && found < 0; dy++ {
				for dz := int32(-1); dz <= 1 && found < 0; dz++ {
					nb := bucket{b[0] + dx, b[1] + dy, b[2] + dz}
					for _, candidate := range buckets[nb] {
						if geom.Norm(out.Vertices[candidate].Sub(v)) < t {
							found = candidate
							break
						}
					}
				}
			}
		}
		if found >= 0 {
			remap[i] = found
			report.Merged++
			continue
		}
		idx := int32(len(out.Vertices))
		out.Vertices = append(out.Vertices, v)
		buckets[b] = append(buckets[b], idx)
		remap[i] = idx
	}

	out.Triangles = make([][3]int32, 0, len(m.Triangles))
	for _, tri := range m.Triangles {
		newTri := [3]int32{remap[tri[0]], remap[tri[1]], remap[tri[2]]}
		if degenerateTriangle(newTri) {
			report.DroppedFaces++
			continue
		}
		out.Triangles = append(out.Triangles, newTri)
	}
	return out, report, nil
}

// RepairReport summarizes a FillHoles call.
type RepairReport struct {
	HolesFilled      int
	TrianglesAdded   int
	FallbackTriangle int // count of ears that needed the degenerate-ear fallback
	Warnings         []string
}

// FillHoles triangulates every boundary loop of m via ear clipping and
// returns the repaired mesh alongside a report of what was done. Winding
// of the new triangles follows loop order and is not verified against the
// rest of the mesh; the grid pipeline's parity-based sign determination
// (not a normal-based one) tolerates the resulting winding inconsistency.
func FillHoles(m Mesh) (Mesh, RepairReport) {
	a := Analyze(m)
	var report RepairReport
	out := Mesh{
		Vertices:  m.Vertices,
		Triangles: append([][3]int32(nil), m.Triangles...),
	}
	for _, loop := range a.Loops {
		added := triangulateEar(loop, m.Vertices, &report)
		out.Triangles = append(out.Triangles, added...)
		report.HolesFilled++
		report.TrianglesAdded += len(added)
	}
	return out, report
}

// triangulateEar reduces loop to triangles by repeatedly clipping an ear:
// the first vertex whose incident edges form a non-degenerate cross
// product. If no such ear exists the fallback described in §4.C fires:
// emit (loop[0], loop[1], loop[2]) and remove loop[1].
func triangulateEar(loop []int32, verts []geom.Vec3, report *RepairReport) [][3]int32 {
	ring := append([]int32(nil), loop...)
	var tris [][3]int32
	for len(ring) > 3 {
		idx := findEar(ring, verts)
		if idx < 0 {
			// Fallback: no non-degenerate ear found.
			tris = append(tris, [3]int32{ring[0], ring[1], ring[2]})
			ring = append(ring[:1], ring[2:]...) // remove index 1
			report.FallbackTriangle++
			report.Warnings = append(report.Warnings, "mesh: hole fill fallback triangle emitted, no valid ear found")
			continue
		}
		n := len(ring)
		prev := (idx - 1 + n) % n
		next := (idx + 1) % n
		tris = append(tris, [3]int32{ring[prev], ring[idx], ring[next]})
		ring = append(ring[:idx], ring[idx+1:]...)
	}
	if len(ring) == 3 {
		tris = append(tris, [3]int32{ring[0], ring[1], ring[2]})
	}
	return tris
}

// findEar returns the index of the first vertex in ring whose incident
// edges produce a non-degenerate cross product, or -1 if none exists.
func findEar(ring []int32, verts []geom.Vec3) int {
	n := len(ring)
	for i := 0; i < n; i++ {
		prev := verts[ring[(i-1+n)%n]]
		cur := verts[ring[i]]
		next := verts[ring[(i+1)%n]]
		e1 := cur.Sub(prev)
		e2 := next.Sub(cur)
		if geom.Norm2(geom.Cross(e1, e2)) > degenerateArea2 {
			return i
		}
	}
	return -1
}

const degenerateArea2 = 1e-20
