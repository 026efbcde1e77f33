// Package sdfio reads and writes the output SDF binary format and a
// legacy VTK image-data export for visualization (§6).
package sdfio

import (
	"encoding/binary"
	"fmt"
	"io"
)

// HeaderSize is the fixed size in bytes of the binary format's header,
// before the first phi value.
const HeaderSize = 36

// Header describes a grid's shape and placement, independent of the phi
// payload that follows it.
type Header struct {
	NX, NY, NZ int32
	// Origin is the world-space position of voxel (0,0,0)'s corner, not
	// its center — the same corner convention as sdfgen.Grid.Origin, whose
	// voxel centers sit half a cell inward. This package never imports
	// sdfgen, keeping the wire format decoupled from the in-memory grid.
	OX, OY, OZ float32
	Dx         float32
}

// Count returns the number of phi values the header describes.
func (h Header) Count() int { return int(h.NX) * int(h.NY) * int(h.NZ) }

// WriteBinary writes hdr followed by phi in the exact wire format of §6:
// three int32 dimensions, three float32 origin components, a float32 cell
// size, 8 reserved zero bytes, then phi in i-fastest order, all
// little-endian.
func WriteBinary(w io.Writer, hdr Header, phi []float32) error {
	if hdr.Count() != len(phi) {
		return fmt.Errorf("sdfio: header describes %d voxels, got %d phi values", hdr.Count(), len(phi))
	}
	fields := []any{hdr.NX, hdr.NY, hdr.NZ, hdr.OX, hdr.OY, hdr.OZ, hdr.Dx}
	for _, f := range fields {
		if err := binary.Write(w, binary.LittleEndian, f); err != nil {
			return fmt.Errorf("sdfio: writing header: %w", err)
		}
	}
	var reserved [8]byte
	if _, err := w.Write(reserved[:]); err != nil {
		return fmt.Errorf("sdfio: writing reserved bytes: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, phi); err != nil {
		return fmt.Errorf("sdfio: writing phi: %w", err)
	}
	return nil
}

// ReadBinary reads a Header and its phi payload written by WriteBinary.
func ReadBinary(r io.Reader) (Header, []float32, error) {
	var hdr Header
	fields := []any{&hdr.NX, &hdr.NY, &hdr.NZ, &hdr.OX, &hdr.OY, &hdr.OZ, &hdr.Dx}
	for _, f := range fields {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			return Header{}, nil, fmt.Errorf("sdfio: reading header: %w", err)
		}
	}
	var reserved [8]byte
	if _, err := io.ReadFull(r, reserved[:]); err != nil {
		return Header{}, nil, fmt.Errorf("sdfio: reading reserved bytes: %w", err)
	}
	if hdr.NX <= 0 || hdr.NY <= 0 || hdr.NZ <= 0 {
		return Header{}, nil, fmt.Errorf("sdfio: invalid grid dimensions (%d,%d,%d)", hdr.NX, hdr.NY, hdr.NZ)
	}
	phi := make([]float32, hdr.Count())
	if err := binary.Read(r, binary.LittleEndian, phi); err != nil {
		return Header{}, nil, fmt.Errorf("sdfio: reading phi: %w", err)
	}
	return hdr, phi, nil
}
