package voxelviz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/sdfgen"
	"github.com/soypat/sdfgen/internal/geom"
)

func TestRenderSliceWritesPNG(t *testing.T) {
	g, err := sdfgen.NewGrid(4, 5, 6, geom.Vec3{}, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	for i := range g.Phi {
		g.Phi[i] = float32(i%7) - 3
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "slice.png")
	if err := RenderSlice(g, AxisZ, 2, path); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty PNG output")
	}
}

func TestRenderSliceRejectsOutOfRangeIndex(t *testing.T) {
	g, err := sdfgen.NewGrid(4, 5, 6, geom.Vec3{}, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "slice.png")
	if err := RenderSlice(g, AxisZ, 99, path); err == nil {
		t.Fatal("expected error for out-of-range slice index")
	}
}

func TestRenderSliceHandlesFlatSlice(t *testing.T) {
	g, err := sdfgen.NewGrid(3, 3, 3, geom.Vec3{}, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	// Every voxel still at the sentinel: min == max, exercising the
	// degenerate color-map-range guard.
	path := filepath.Join(t.TempDir(), "flat.png")
	if err := RenderSlice(g, AxisX, 0, path); err != nil {
		t.Fatal(err)
	}
}
