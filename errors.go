package sdfgen

import "errors"

// ErrInvalidGrid is returned when the requested grid dimensions or cell
// size are not positive (§7, "Grid dimension <= 0 or dx <= 0").
var ErrInvalidGrid = errors.New("sdfgen: grid dimensions and cell size must be positive")

// ErrEmptyMesh is never returned by this package: Config.Run reports an
// empty mesh through Result.EmptyMesh and an all-sentinel phi instead
// (§7, "Empty mesh: returns all-sentinel phi; no failure"). cmd/sdfgen
// returns it as an error when a loaded mesh has no vertices.
var ErrEmptyMesh = errors.New("sdfgen: mesh has no triangles")
