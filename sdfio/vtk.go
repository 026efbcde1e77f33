package sdfio

import (
	"bufio"
	"fmt"
	"io"
)

// WriteVTKImageData writes phi as a legacy-format VTK STRUCTURED_POINTS
// dataset (ASCII), openable directly in ParaView, for the "VTK image
// writer" collaborator named in §1. This is a debugging/visualization
// export, not part of the wire format round-tripped by ReadBinary.
func WriteVTKImageData(w io.Writer, hdr Header, phi []float32) error {
	if hdr.Count() != len(phi) {
		return fmt.Errorf("sdfio: header describes %d voxels, got %d phi values", hdr.Count(), len(phi))
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# vtk DataFile Version 3.0")
	fmt.Fprintln(bw, "sdfgen signed distance field")
	fmt.Fprintln(bw, "ASCII")
	fmt.Fprintln(bw, "DATASET STRUCTURED_POINTS")
	fmt.Fprintf(bw, "DIMENSIONS %d %d %d\n", hdr.NX, hdr.NY, hdr.NZ)
	fmt.Fprintf(bw, "ORIGIN %g %g %g\n", hdr.OX, hdr.OY, hdr.OZ)
	fmt.Fprintf(bw, "SPACING %g %g %g\n", hdr.Dx, hdr.Dx, hdr.Dx)
	fmt.Fprintf(bw, "POINT_DATA %d\n", len(phi))
	fmt.Fprintln(bw, "SCALARS phi float 1")
	fmt.Fprintln(bw, "LOOKUP_TABLE default")
	for _, v := range phi {
		if _, err := fmt.Fprintln(bw, v); err != nil {
			return fmt.Errorf("sdfio: writing vtk scalars: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("sdfio: flushing vtk output: %w", err)
	}
	return nil
}
