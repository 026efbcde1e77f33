package mesh

import "testing"

func TestAnalyzeWatertightCube(t *testing.T) {
	a := Analyze(unitCube())
	if a.NumEdges != 18 {
		t.Errorf("NumEdges: got %d want 18", a.NumEdges)
	}
	if a.BoundaryEdges != 0 {
		t.Errorf("BoundaryEdges: got %d want 0", a.BoundaryEdges)
	}
	if a.NonManifoldEdges != 0 {
		t.Errorf("NonManifoldEdges: got %d want 0", a.NonManifoldEdges)
	}
	if len(a.Loops) != 0 {
		t.Errorf("Loops: got %d want 0", len(a.Loops))
	}
	if !a.IsWatertight || !a.IsManifold {
		t.Errorf("expected watertight+manifold cube, got %+v", a)
	}
}

func TestAnalyzeCubeMissingFace(t *testing.T) {
	a := Analyze(cubeMissingFace())
	if a.BoundaryEdges != 4 {
		t.Errorf("BoundaryEdges: got %d want 4", a.BoundaryEdges)
	}
	if len(a.Loops) != 1 {
		t.Fatalf("Loops: got %d want 1", len(a.Loops))
	}
	if len(a.Loops[0]) != 4 {
		t.Errorf("loop length: got %d want 4", len(a.Loops[0]))
	}
	if a.IsWatertight {
		t.Error("expected non-watertight mesh")
	}
}

func TestAnalyzeSingleTriangle(t *testing.T) {
	a := Analyze(singleTriangle())
	if a.BoundaryEdges != 3 {
		t.Errorf("BoundaryEdges: got %d want 3", a.BoundaryEdges)
	}
	if len(a.Loops) != 1 {
		t.Fatalf("Loops: got %d want 1", len(a.Loops))
	}
	if a.IsWatertight {
		t.Error("expected non-watertight mesh")
	}
}
