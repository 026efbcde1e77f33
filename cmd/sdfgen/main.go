// Command sdfgen converts a triangle mesh (OBJ or binary STL) into a
// binary signed distance field, per the CLI contract of §6.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/soypat/sdfgen"
	"github.com/soypat/sdfgen/internal/geom"
	"github.com/soypat/sdfgen/meshio"
	"github.com/soypat/sdfgen/mesh"
	"github.com/soypat/sdfgen/sdfio"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// exit codes per §6: 0 success, 1 argument/parse/load error, -1 write failure.
const (
	exitOK       = 0
	exitArgError = 1
	exitWriteErr = -1
)

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("sdfgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cpu := fs.Bool("cpu", false, "force the CPU backend")
	fixMesh := fs.Bool("fix", false, "run mesh repair (hole filling) before gridding")
	threads := fs.Int("threads", 0, "worker thread count, 0 = auto")
	fs.IntVar(threads, "t", 0, "shorthand for --threads")
	padding := fs.Int("padding", 1, "cells of empty space outside the mesh bounding box (>= 1)")
	fs.IntVar(padding, "p", 1, "shorthand for --padding")
	out := fs.String("o", "out.sdf", "output binary SDF path")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: sdfgen [flags] input.obj dx padding")
		fmt.Fprintln(stderr, "       sdfgen [flags] input.stl nx [ny nz]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitArgError
	}

	rest := fs.Args()
	if len(rest) < 1 {
		fmt.Fprintln(stderr, "sdfgen: missing input path")
		return exitArgError
	}
	if *padding < 1 {
		fmt.Fprintln(stderr, "sdfgen: padding must be >= 1")
		return exitArgError
	}

	inputPath := rest[0]
	m, err := loadMesh(inputPath)
	if err != nil {
		fmt.Fprintln(stderr, "sdfgen:", err)
		return exitArgError
	}

	origin, dx, nx, ny, nz, err := resolveGrid(inputPath, m, rest[1:], *padding)
	if err != nil {
		fmt.Fprintln(stderr, "sdfgen:", err)
		return exitArgError
	}

	// --cpu is accepted for interface parity with a hypothetical GPU
	// backend (§9); this package only ever ships sdfgen.CPU.
	_ = *cpu
	cfg := sdfgen.Config{
		ExactBand: 2,
		Threads:   *threads,
		Repair:    *fixMesh,
		Backend:   sdfgen.CPU,
		Logger:    log.New(stderr, "", log.LstdFlags),
	}
	res, err := cfg.Run(m, origin, dx, nx, ny, nz)
	if err != nil {
		fmt.Fprintln(stderr, "sdfgen:", err)
		return exitArgError
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintln(stderr, "sdfgen:", err)
		return exitWriteErr
	}
	defer f.Close()
	hdr := sdfio.Header{
		NX: int32(res.Grid.NX), NY: int32(res.Grid.NY), NZ: int32(res.Grid.NZ),
		OX: res.Grid.Origin.X, OY: res.Grid.Origin.Y, OZ: res.Grid.Origin.Z,
		Dx: res.Grid.Dx,
	}
	if err := sdfio.WriteBinary(f, hdr, res.Grid.Phi); err != nil {
		fmt.Fprintln(stderr, "sdfgen:", err)
		return exitWriteErr
	}
	return exitOK
}

func loadMesh(path string) (mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return mesh.Mesh{}, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return meshio.LoadOBJ(f)
	case ".stl":
		return meshio.LoadSTL(f)
	default:
		return mesh.Mesh{}, fmt.Errorf("unrecognized mesh format %q (want .obj or .stl)", path)
	}
}

// resolveGrid implements the two grid-sizing modes of §4.H/§6: cell-size
// mode for OBJ (`dx padding` positional), grid-count mode for STL
// (`nx [ny nz]` positional, padding only from the -p/--padding flag — the
// undisclosed "padding < 20" heuristic is removed, not reinterpreted).
func resolveGrid(path string, m mesh.Mesh, positional []string, padding int) (origin geom.Vec3, dx float32, nx, ny, nz int, err error) {
	if len(m.Vertices) == 0 {
		return geom.Vec3{}, 0, 0, 0, 0, sdfgen.ErrEmptyMesh
	}
	bb := m.Bounds()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		if len(positional) != 2 {
			return geom.Vec3{}, 0, 0, 0, 0, fmt.Errorf("obj input requires exactly 2 positional args: dx padding")
		}
		dxVal, err := strconv.ParseFloat(positional[0], 32)
		if err != nil {
			return geom.Vec3{}, 0, 0, 0, 0, fmt.Errorf("invalid dx: %w", err)
		}
		objPadding, err := strconv.Atoi(positional[1])
		if err != nil {
			return geom.Vec3{}, 0, 0, 0, 0, fmt.Errorf("invalid padding: %w", err)
		}
		origin, nx, ny, nz = sdfgen.GridSpecFromCellSize(bb, float32(dxVal), objPadding)
		return origin, float32(dxVal), nx, ny, nz, nil
	case ".stl":
		if len(positional) != 1 && len(positional) != 3 {
			return geom.Vec3{}, 0, 0, 0, 0, fmt.Errorf("stl input requires 1 or 3 positional args: nx or nx ny nz")
		}
		counts := make([]int, len(positional))
		for i, s := range positional {
			n, err := strconv.Atoi(s)
			if err != nil {
				return geom.Vec3{}, 0, 0, 0, 0, fmt.Errorf("invalid cell count %q: %w", s, err)
			}
			counts[i] = n
		}
		nx = counts[0]
		ny, nz = nx, nx
		if len(counts) == 3 {
			ny, nz = counts[1], counts[2]
		}
		origin, dx = sdfgen.GridSpecFromCellCount(bb, nx, padding)
		return origin, dx, nx, ny, nz, nil
	default:
		return geom.Vec3{}, 0, 0, 0, 0, fmt.Errorf("unrecognized mesh format %q", path)
	}
}
