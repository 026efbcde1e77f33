package sdfgen

// Backend computes a level set from a mesh and grid configuration. CPU is
// the only implementation provided here; a GPU backend is a legal variant
// producing the same result within float tolerance (§1), but is not
// specified or implemented by this package — it would satisfy the same
// interface.
type Backend interface {
	MakeLevelSet(job *Job) (*Grid, error)
}

// cpuBackend runs the exact narrow-band pass, intersection parity pass,
// fast sweep propagation and sign application on a worker pool sized to
// the job's configuration.
type cpuBackend struct{}

// CPU is the only Backend this package implements.
var CPU Backend = cpuBackend{}

func (cpuBackend) MakeLevelSet(job *Job) (*Grid, error) {
	return runCPUPipeline(job)
}

// IsGPUAvailable reports whether a GPU backend is available on this
// build. This package only ships a CPU backend, so it always returns
// false; a program linking in a GPU implementation would override this
// check on its own variant of Backend.
func IsGPUAvailable() bool { return false }
