// Package reftest provides independent reference structures used only by
// tests to cross-validate the production pipeline: an R-tree-backed ray
// cast oracle for sign determination (§8 invariant 4, "independent
// reference ray cast") and a k-d tree nearest-centroid query used as a
// coarse cross-check on closest-triangle assignment. Neither structure
// shares code with the production narrow-band, parity or sweep passes.
package reftest

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/soypat/sdfgen/internal/geom"
	"github.com/soypat/sdfgen/mesh"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// RayOracle answers point-containment queries against a mesh via ray
// casting and R-tree-accelerated candidate triangle lookup, entirely
// independent of the production parity pass (internal/geom's
// Orientation2D and sdfgen's columnInTriangleXY are never called here).
type RayOracle struct {
	m    mesh.Mesh
	tree *rtreego.Rtree
}

// triSpatial adapts one triangle's padded bounding box to rtreego.Spatial.
type triSpatial struct {
	idx  int
	rect *rtreego.Rect
}

func (t *triSpatial) Bounds() *rtreego.Rect { return t.rect }

// NewRayOracle indexes every triangle of m by its axis-aligned bounding
// box, padded by eps on every side to tolerate axis-aligned rays passing
// exactly along a box face.
func NewRayOracle(m mesh.Mesh, eps float64) *RayOracle {
	tree := rtreego.NewTree(3, 4, 16)
	for i, t := range m.Triangles {
		a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
		bb := geom.EmptyBox()
		bb = bb.Include(a)
		bb = bb.Include(b)
		bb = bb.Include(c)
		p := rtreego.Point{float64(bb.Min.X) - eps, float64(bb.Min.Y) - eps, float64(bb.Min.Z) - eps}
		lengths := []float64{
			float64(bb.Max.X-bb.Min.X) + 2*eps,
			float64(bb.Max.Y-bb.Min.Y) + 2*eps,
			float64(bb.Max.Z-bb.Min.Z) + 2*eps,
		}
		rect, err := rtreego.NewRect(p, lengths)
		if err != nil {
			continue // degenerate (zero-length) box: triangle contributes no volume to index
		}
		tree.Insert(&triSpatial{idx: i, rect: rect})
	}
	return &RayOracle{m: m, tree: tree}
}

// Inside reports whether p lies inside the mesh, determined by casting a
// ray in the +Z direction and counting triangle crossings via
// Möller-Trumbore intersection: odd crossing count means inside. The ray
// starts from p shifted by a few 1e-6 in x and y, which moves it off mesh
// edges and vertices passing exactly through p; such an edge would
// otherwise be counted once for each triangle sharing it.
func (o *RayOracle) Inside(p geom.Vec3) bool {
	origin := geom.Vec3{X: p.X + 1.3e-6, Y: p.Y + 0.7e-6, Z: p.Z}
	queryPt := rtreego.Point{float64(origin.X), float64(origin.Y), float64(origin.Z)}
	query, err := rtreego.NewRect(queryPt, []float64{1e-6, 1e-6, 1 << 30})
	if err != nil {
		return false
	}
	candidates := o.tree.SearchIntersect(query)
	count := 0
	for _, c := range candidates {
		ts := c.(*triSpatial)
		t := o.m.Triangles[ts.idx]
		a, b, cc := o.m.Vertices[t[0]], o.m.Vertices[t[1]], o.m.Vertices[t[2]]
		if rayHitsTriangleUpward(origin, a, b, cc) {
			count++
		}
	}
	return count%2 == 1
}

// rayHitsTriangleUpward reports whether the ray from origin in direction
// +Z crosses triangle (a,b,c) at a parameter t > 0, via the
// Möller-Trumbore algorithm.
func rayHitsTriangleUpward(origin, a, b, c geom.Vec3) bool {
	const epsilon = 1e-9
	dir := geom.Vec3{Z: 1}
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	h := geom.Cross(dir, e2)
	det := geom.Dot(e1, h)
	if det > -epsilon && det < epsilon {
		return false // ray parallel to triangle plane
	}
	invDet := 1 / det
	s := origin.Sub(a)
	u := invDet * geom.Dot(s, h)
	if u < 0 || u > 1 {
		return false
	}
	q := geom.Cross(s, e1)
	v := invDet * geom.Dot(dir, q)
	if v < 0 || u+v > 1 {
		return false
	}
	t := invDet * geom.Dot(e2, q)
	return t > epsilon
}

// centroidPoint adapts a triangle centroid to kdtree.Comparable so the
// oracle's nearest-centroid index can reuse gonum's generic k-d tree
// implementation instead of hand-rolling one.
type centroidPoint struct {
	pos geom.Vec3
	idx int
}

func (p centroidPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	o := c.(centroidPoint)
	switch d {
	case 0:
		return float64(p.pos.X - o.pos.X)
	case 1:
		return float64(p.pos.Y - o.pos.Y)
	default:
		return float64(p.pos.Z - o.pos.Z)
	}
}

func (p centroidPoint) Dims() int { return 3 }

func (p centroidPoint) Distance(c kdtree.Comparable) float64 {
	o := c.(centroidPoint)
	return float64(geom.Norm(p.pos.Sub(o.pos)))
}

type centroidPoints []centroidPoint

func (p centroidPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p centroidPoints) Len() int                      { return len(p) }

// Pivot sorts p along dimension d and returns the index of the median
// element, as kdtree.Interface requires. This partitions by a plain sort
// rather than a library quickselect helper — adequate for the small
// triangle counts this test oracle ever indexes.
func (p centroidPoints) Pivot(d kdtree.Dim) int {
	sort.Sort(axisSort{pts: p, dim: d})
	return len(p) / 2
}

func (p centroidPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

type axisSort struct {
	pts centroidPoints
	dim kdtree.Dim
}

func (s axisSort) Len() int { return len(s.pts) }
func (s axisSort) Less(i, j int) bool {
	return axisValue(s.pts[i].pos, s.dim) < axisValue(s.pts[j].pos, s.dim)
}
func (s axisSort) Swap(i, j int) { s.pts[i], s.pts[j] = s.pts[j], s.pts[i] }

func axisValue(p geom.Vec3, d kdtree.Dim) float32 {
	switch d {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// NearestCentroidIndex builds a k-d tree over every triangle's centroid,
// used by tests as a coarse, independent cross-check of which triangle
// the production narrow-band pass assigned as closest: agreement is not
// guaranteed (centroid distance is not point-to-triangle distance), but
// persistent large disagreement flags a bug worth investigating by hand.
type NearestCentroidIndex struct {
	tree   *kdtree.Tree
	points centroidPoints
}

// NewNearestCentroidIndex indexes every triangle of m by its centroid.
func NewNearestCentroidIndex(m mesh.Mesh) *NearestCentroidIndex {
	pts := make(centroidPoints, len(m.Triangles))
	for i, t := range m.Triangles {
		a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
		centroid := a.Add(b).Add(c).Scale(1.0 / 3)
		pts[i] = centroidPoint{pos: centroid, idx: i}
	}
	tree := kdtree.New(pts, false)
	return &NearestCentroidIndex{tree: tree, points: pts}
}

// Nearest returns the triangle index whose centroid is closest to p.
func (n *NearestCentroidIndex) Nearest(p geom.Vec3) int {
	q := centroidPoint{pos: p}
	got, _ := n.tree.Nearest(q)
	return got.(centroidPoint).idx
}
