package meshio

import (
	"strings"
	"testing"
)

func TestLoadOBJTriangle(t *testing.T) {
	src := `# comment
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	m, err := LoadOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Vertices) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(m.Vertices))
	}
	if len(m.Triangles) != 1 || m.Triangles[0] != [3]int32{0, 1, 2} {
		t.Fatalf("unexpected triangles: %v", m.Triangles)
	}
}

func TestLoadOBJFanTriangulatesQuad(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	m, err := LoadOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	want := [][3]int32{{0, 1, 2}, {0, 2, 3}}
	if len(m.Triangles) != len(want) {
		t.Fatalf("expected %d triangles, got %d", len(want), len(m.Triangles))
	}
	for i, tri := range want {
		if m.Triangles[i] != tri {
			t.Errorf("triangle %d = %v, want %v", i, m.Triangles[i], tri)
		}
	}
}

func TestLoadOBJStripsVertexNormalSuffixes(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
f 1//1 2//1 3//1
`
	m, err := LoadOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Triangles) != 1 || m.Triangles[0] != [3]int32{0, 1, 2} {
		t.Fatalf("unexpected triangles: %v", m.Triangles)
	}

	src2 := `v 0 0 0
v 1 0 0
v 0 1 0
f 1/1/1 2/1/1 3/1/1
`
	m2, err := LoadOBJ(strings.NewReader(src2))
	if err != nil {
		t.Fatal(err)
	}
	if len(m2.Triangles) != 1 || m2.Triangles[0] != [3]int32{0, 1, 2} {
		t.Fatalf("unexpected triangles: %v", m2.Triangles)
	}
}

func TestLoadOBJRejectsOutOfRangeFace(t *testing.T) {
	src := `v 0 0 0
f 1 2 3
`
	if _, err := LoadOBJ(strings.NewReader(src)); err == nil {
		t.Fatal("expected error for face referencing undefined vertices")
	}
}

func TestLoadOBJRejectsBadVertex(t *testing.T) {
	src := `v 0 0 notanumber
`
	if _, err := LoadOBJ(strings.NewReader(src)); err == nil {
		t.Fatal("expected error for malformed vertex line")
	}
}
