// Package sdfgen converts a triangle mesh into a three-dimensional signed
// distance field: a regular voxel grid where each cell stores the signed
// Euclidean distance from the cell center to the closest point on the
// mesh, negative inside the mesh and positive outside.
//
// The entry point is MakeLevelSet, which runs the exact narrow-band pass,
// the intersection parity pass, fast sweep propagation and sign
// application in sequence over a Grid it allocates and owns for the
// duration of a single job.
package sdfgen

import (
	"github.com/chewxy/math32"
	"github.com/soypat/sdfgen/internal/geom"
)

// Vec3i is a 3D integer vector, used for voxel indices and triangle
// footprints in grid-index space.
type Vec3i [3]int

func (a Vec3i) Add(b Vec3i) Vec3i { return Vec3i{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }

// Grid is the regular voxel array shared by every stage of the pipeline.
// Voxel (i, j, k) has its center at
// (Origin.X+(i+0.5)*Dx, Origin.Y+(j+0.5)*Dx, Origin.Z+(k+0.5)*Dx).
// All three working arrays share this shape in row-major, i-fastest
// layout: index(i,j,k) = i + nx*j + nx*ny*k.
type Grid struct {
	NX, NY, NZ int
	Origin     geom.Vec3
	Dx         float32

	// Phi is the unsigned-then-signed distance field, initialized to
	// Sentinel and overwritten exactly where the pipeline determines a
	// better value.
	Phi []float32
	// Closest is the index of the triangle currently known to be
	// closest to each voxel, or -1 if none has been found yet.
	Closest []int32
	// Inside is the signed intersection-parity accumulator.
	Inside []int32

	// Sentinel is the initial value of Phi, at least three times the
	// grid diagonal so any real distance compares smaller.
	Sentinel float32
}

// NewGrid allocates a Grid of the given shape, origin and cell size with
// all three arrays initialized to their §3 sentinel values (Phi to the
// grid-diagonal sentinel, Closest to -1, Inside to 0).
func NewGrid(nx, ny, nz int, origin geom.Vec3, dx float32) (*Grid, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, ErrInvalidGrid
	}
	if dx <= 0 {
		return nil, ErrInvalidGrid
	}
	n := nx * ny * nz
	g := &Grid{
		NX: nx, NY: ny, NZ: nz,
		Origin: origin,
		Dx:     dx,
		Phi:    make([]float32, n),
		Closest: func() []int32 {
			c := make([]int32, n)
			for i := range c {
				c[i] = -1
			}
			return c
		}(),
		Inside: make([]int32, n),
	}
	diag := dx * float32(diagCells(nx, ny, nz))
	g.Sentinel = 3 * diag
	for i := range g.Phi {
		g.Phi[i] = g.Sentinel
	}
	return g, nil
}

func diagCells(nx, ny, nz int) float32 {
	fx, fy, fz := float32(nx), float32(ny), float32(nz)
	return math32.Sqrt(fx*fx + fy*fy + fz*fz)
}

// Index returns the flat array index of voxel (i,j,k).
func (g *Grid) Index(i, j, k int) int { return i + g.NX*(j+g.NY*k) }

// InBounds reports whether (i,j,k) lies within the grid.
func (g *Grid) InBounds(i, j, k int) bool {
	return i >= 0 && i < g.NX && j >= 0 && j < g.NY && k >= 0 && k < g.NZ
}

// Center returns the world-space center of voxel (i,j,k).
func (g *Grid) Center(i, j, k int) geom.Vec3 {
	return geom.Vec3{
		X: g.Origin.X + (float32(i)+0.5)*g.Dx,
		Y: g.Origin.Y + (float32(j)+0.5)*g.Dx,
		Z: g.Origin.Z + (float32(k)+0.5)*g.Dx,
	}
}

// ToIndexSpace converts a world-space point to fractional grid-index
// coordinates: (p - Origin) / Dx.
func (g *Grid) ToIndexSpace(p geom.Vec3) geom.Vec3 {
	inv := 1 / g.Dx
	return p.Sub(g.Origin).Scale(inv)
}

// Diagonal returns the world-space length of the grid's diagonal, D in
// the invariant "phi is finite and within [-D, D]" (§8).
func (g *Grid) Diagonal() float32 {
	return g.Dx * diagCells(g.NX, g.NY, g.NZ)
}
