// Package voxelviz renders a single axis-aligned slice of a signed
// distance field as a diverging heatmap PNG, for inspecting a grid
// without a full volumetric viewer.
package voxelviz

import (
	"fmt"

	"github.com/soypat/sdfgen"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Axis selects which index of a Grid is held fixed to take a slice.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// paletteSize is the number of discrete colors sampled from the
// continuous diverging color map.
const paletteSize = 256

// RenderSlice renders the plane of g.Phi at the given index along axis as
// a blue(inside)-to-red(outside) diverging heatmap PNG at path.
func RenderSlice(g *sdfgen.Grid, axis Axis, index int, path string) error {
	grid, err := newSliceGrid(g, axis, index)
	if err != nil {
		return err
	}

	cmap := moreland.SmoothBlueRed()
	lo, hi := float64(grid.min), float64(grid.max)
	if lo == hi {
		// A flat slice (e.g. all-sentinel) would otherwise collapse the
		// color map's range to a point.
		lo, hi = lo-1, hi+1
	}
	cmap.SetMin(lo)
	cmap.SetMax(hi)

	heat := plotter.NewHeatMap(grid, cmap.Palette(paletteSize))

	p := plot.New()
	p.Title.Text = fmt.Sprintf("phi slice axis=%d index=%d", axis, index)
	p.Add(heat)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("voxelviz: saving slice png: %w", err)
	}
	return nil
}

// sliceGrid adapts one plane of a Grid's Phi array to plotter.GridXYZ.
type sliceGrid struct {
	g          *sdfgen.Grid
	axis       Axis
	index      int
	cols, rows int
	min, max   float32
}

func newSliceGrid(g *sdfgen.Grid, axis Axis, index int) (*sliceGrid, error) {
	var cols, rows, bound int
	switch axis {
	case AxisX:
		cols, rows, bound = g.NY, g.NZ, g.NX
	case AxisY:
		cols, rows, bound = g.NX, g.NZ, g.NY
	case AxisZ:
		cols, rows, bound = g.NX, g.NY, g.NZ
	default:
		return nil, fmt.Errorf("voxelviz: unknown axis %d", axis)
	}
	if index < 0 || index >= bound {
		return nil, fmt.Errorf("voxelviz: slice index %d out of range [0,%d)", index, bound)
	}
	s := &sliceGrid{g: g, axis: axis, index: index, cols: cols, rows: rows}
	s.min, s.max = s.bounds()
	return s, nil
}

func (s *sliceGrid) phiAt(c, r int) float32 {
	var i, j, k int
	switch s.axis {
	case AxisX:
		i, j, k = s.index, c, r
	case AxisY:
		i, j, k = c, s.index, r
	default:
		i, j, k = c, r, s.index
	}
	return s.g.Phi[s.g.Index(i, j, k)]
}

func (s *sliceGrid) bounds() (min, max float32) {
	min, max = s.phiAt(0, 0), s.phiAt(0, 0)
	for c := 0; c < s.cols; c++ {
		for r := 0; r < s.rows; r++ {
			v := s.phiAt(c, r)
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

// Dims implements plotter.GridXYZ.
func (s *sliceGrid) Dims() (c, r int) { return s.cols, s.rows }

// Z implements plotter.GridXYZ.
func (s *sliceGrid) Z(c, r int) float64 { return float64(s.phiAt(c, r)) }

// X implements plotter.GridXYZ.
func (s *sliceGrid) X(c int) float64 { return float64(c) }

// Y implements plotter.GridXYZ.
func (s *sliceGrid) Y(r int) float64 { return float64(r) }
