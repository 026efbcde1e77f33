package sdfgen

import (
	"log"
	"runtime"

	"github.com/soypat/sdfgen/internal/geom"
	"github.com/soypat/sdfgen/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// Config configures a single SDF generation job (component H, the
// orchestrator). The zero value is usable: ExactBand defaults to 1,
// Threads defaults to runtime.NumCPU(), Backend defaults to CPU and
// Logger defaults to log.Default() — the teacher corpus never reaches
// for a structured logging library, so warnings go through the standard
// logger like every other entry point in that corpus.
type Config struct {
	// ExactBand is B in §4.D: the narrow-band half-width, in voxels,
	// that the exact per-triangle pass expands each triangle's
	// footprint by. Must be >= 1; zero or negative is replaced by 1.
	ExactBand int
	// Threads bounds the worker pool size. Zero means "auto": the
	// number of hardware threads.
	Threads int
	// Repair runs hole filling before gridding when true. Welding is a
	// separate, explicit step (mesh.Weld) since it is typically only
	// needed once, right after loading — see meshio.
	Repair bool
	// Backend selects the compute backend. Defaults to CPU; see
	// IsGPUAvailable.
	Backend Backend
	// Logger receives advisory warnings (§7): non-manifold meshes,
	// non-watertight meshes, hole-fill fallback triangles.
	Logger *log.Logger
}

func (c Config) withDefaults() Config {
	if c.ExactBand <= 0 {
		c.ExactBand = 1
	}
	if c.Threads <= 0 {
		c.Threads = runtime.NumCPU()
	}
	if c.Backend == nil {
		c.Backend = CPU
	}
	if c.Logger == nil {
		c.Logger = log.Default()
	}
	return c
}

// Job is a fully resolved unit of work: a mesh paired with the grid
// geometry and pipeline configuration to run over it. Backends consume a
// Job and return the finished Grid.
type Job struct {
	Mesh   mesh.Mesh
	Config Config

	NX, NY, NZ int
	Origin     geom.Vec3
	Dx         float32
}

// Result is the output of a single SDF generation job.
type Result struct {
	Grid     *Grid
	Analysis mesh.Analysis
	// EmptyMesh is true when the input mesh had no triangles: Grid is
	// then all-sentinel per §7's "Empty mesh" policy, and Analysis is
	// the zero value.
	EmptyMesh bool
}

// Run executes the full pipeline for m under the grid geometry and
// options in c: optional hole-fill repair, mesh analysis, then the
// narrow-band, parity, sweep and sign stages in order (§2 control flow).
// This is the orchestrator's primary entry point; MakeLevelSet below is
// the narrower library contract named in §4.H and §6.
func (c Config) Run(m mesh.Mesh, origin geom.Vec3, dx float32, nx, ny, nz int) (*Result, error) {
	c = c.withDefaults()
	if nx <= 0 || ny <= 0 || nz <= 0 || dx <= 0 {
		return nil, ErrInvalidGrid
	}
	if len(m.Triangles) == 0 {
		g, err := NewGrid(nx, ny, nz, origin, dx)
		if err != nil {
			return nil, err
		}
		return &Result{Grid: g, EmptyMesh: true}, nil
	}

	if c.Repair {
		repaired, report := mesh.FillHoles(m)
		for _, w := range report.Warnings {
			c.Logger.Printf("sdfgen: %s", w)
		}
		m = repaired
	}
	analysis := mesh.Analyze(m)
	if !analysis.IsManifold {
		c.Logger.Printf("sdfgen: mesh is non-manifold (%d non-manifold edges); sign may be incorrect", analysis.NonManifoldEdges)
	}
	if !analysis.IsWatertight {
		c.Logger.Printf("sdfgen: mesh is not watertight (%d boundary edges); sign may be incorrect without repair", analysis.BoundaryEdges)
	}

	job := &Job{
		Mesh:   m,
		Config: c,
		NX:     nx, NY: ny, NZ: nz,
		Origin: origin,
		Dx:     dx,
	}
	g, err := c.Backend.MakeLevelSet(job)
	if err != nil {
		return nil, err
	}
	return &Result{Grid: g, Analysis: analysis}, nil
}

// MakeLevelSet is the single public entry point described in §4.H: it
// allocates the grid, runs the exact narrow-band pass, intersection
// parity pass, fast sweep propagation and sign application in order, and
// returns the resulting signed distance values in i-fastest order.
// Closest and Inside are private intermediates discarded after use; a
// caller that wants the mesh Analysis or repair warnings should use
// Config.Run directly instead.
func MakeLevelSet(triangles [][3]int32, vertices []geom.Vec3, origin geom.Vec3, dx float32, nx, ny, nz, exactBand int) ([]float32, error) {
	c := Config{ExactBand: exactBand}
	res, err := c.Run(mesh.Mesh{Vertices: vertices, Triangles: triangles}, origin, dx, nx, ny, nz)
	if err != nil {
		return nil, err
	}
	return res.Grid.Phi, nil
}

// runCPUPipeline is the single CPU Backend implementation: allocate the
// grid, then run D, E, F, G in order.
func runCPUPipeline(job *Job) (*Grid, error) {
	g, err := NewGrid(job.NX, job.NY, job.NZ, job.Origin, job.Dx)
	if err != nil {
		return nil, err
	}
	runNarrowBand(g, job.Mesh, job.Config.ExactBand, job.Config.Threads)
	runParity(g, job.Mesh, job.Config.Threads)
	runSweep(g, job.Mesh)
	applySign(g)
	return g, nil
}

// GridSpecFromCellSize derives a grid (origin and cell counts) the way
// "cell-size mode" does in §4.H: origin from the mesh bounding box minus
// padding cells, size derived as ceil(extent/dx) plus 2*padding.
//
// The bounding box arithmetic is carried in float64 via gonum's r3.Vec:
// mesh coordinates can span many orders of magnitude away from the grid
// origin, and this computation only runs once per job, so there is no
// reason to inherit phi's float32 storage precision here.
func GridSpecFromCellSize(bb geom.Box, dx float32, padding int) (origin geom.Vec3, nx, ny, nz int) {
	min64 := toR3(bb.Min)
	size64 := r3.Sub(toR3(bb.Max), min64)
	pad64 := float64(padding) * float64(dx)
	origin64 := r3.Sub(min64, r3.Vec{X: pad64, Y: pad64, Z: pad64})

	nx = ceilDiv(float32(size64.X), dx) + 2*padding
	ny = ceilDiv(float32(size64.Y), dx) + 2*padding
	nz = ceilDiv(float32(size64.Z), dx) + 2*padding
	return fromR3(origin64), nx, ny, nz
}

// GridSpecFromCellCount derives a grid the way "grid-count mode" does in
// §4.H: a fixed cell count per axis, cell size derived from the longest
// bounding-box axis plus padding, and the mesh centered in the grid.
func GridSpecFromCellCount(bb geom.Box, n int, padding int) (origin geom.Vec3, dx float32) {
	size64 := r3.Sub(toR3(bb.Max), toR3(bb.Min))
	longest := size64.X
	if size64.Y > longest {
		longest = size64.Y
	}
	if size64.Z > longest {
		longest = size64.Z
	}
	usableCells := float64(n - 2*padding)
	if usableCells <= 0 {
		usableCells = 1
	}
	dx64 := longest / usableCells
	gridSize := dx64 * float64(n)
	center64 := r3.Scale(0.5, r3.Add(toR3(bb.Min), toR3(bb.Max)))
	half := gridSize / 2
	origin64 := r3.Sub(center64, r3.Vec{X: half, Y: half, Z: half})
	return fromR3(origin64), float32(dx64)
}

func toR3(v geom.Vec3) r3.Vec { return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)} }

func fromR3(v r3.Vec) geom.Vec3 {
	return geom.Vec3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func ceilDiv(size, dx float32) int {
	n := int(size / dx)
	if float32(n)*dx < size {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}
