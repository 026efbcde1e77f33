package sdfgen

// applySign is the sign application stage (§4.G): negate phi wherever
// the intersection parity accumulator is odd. Voxels that never received
// an exact or swept distance remain at the sentinel and keep a positive
// sign regardless of parity — this should not occur after runSweep on a
// non-empty mesh, but is guarded against explicitly since it is cheap and
// the spec calls it out by name.
func applySign(g *Grid) {
	for idx, d := range g.Phi {
		if d >= g.Sentinel {
			continue
		}
		if g.Inside[idx]%2 != 0 {
			g.Phi[idx] = -d
		}
	}
}
