package models

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/facet/pkg/math3d"
)

func TestToGLTFCube(t *testing.T) {
	doc, err := ToGLTF(CubeMesh(2))
	if err != nil {
		t.Fatalf("ToGLTF() error = %v", err)
	}
	if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
		t.Fatalf("expected one mesh with one primitive")
	}
	if got := doc.Accessors[0].Count; got != 8 {
		t.Errorf("position count = %d, want 8", got)
	}
	// 6 quads fan into 12 triangles.
	if got := doc.Accessors[1].Count; got != 36 {
		t.Errorf("index count = %d, want 36", got)
	}
	if got := doc.Accessors[0].Max; got[0] != 1 || got[1] != 1 || got[2] != 1 {
		t.Errorf("position max = %v, want [1 1 1]", got)
	}
}

func TestToGLTFSkipsUndrawable(t *testing.T) {
	m := triangle()
	m.AddFace(0, 1)
	m.AddFace(0, 1, 42)
	doc, err := ToGLTF(m)
	if err != nil {
		t.Fatalf("ToGLTF() error = %v", err)
	}
	if got := doc.Accessors[1].Count; got != 3 {
		t.Errorf("index count = %d, want 3", got)
	}
}

func TestToGLTFEmpty(t *testing.T) {
	m := NewMesh("nothing")
	m.AddVertex(math3d.V3(0, 0, 0))
	m.AddFace(0, 0)
	if _, err := ToGLTF(m); !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("ToGLTF() error = %v, want ErrEmptyMesh", err)
	}
}

func TestWriteGLBDecodes(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGLB(&buf, UVSphere(math3d.Zero3(), 1, 4, 6)); err != nil {
		t.Fatalf("WriteGLB() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("glTF")) {
		t.Fatal("output is not a binary glTF container")
	}

	doc := new(gltf.Document)
	if err := gltf.NewDecoder(&buf).Decode(doc); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got := doc.Accessors[0].Count; got != 35 {
		t.Errorf("position count = %d, want 35", got)
	}
	if doc.Meshes[0].Name != "sphere" {
		t.Errorf("mesh name = %q, want sphere", doc.Meshes[0].Name)
	}
}

func TestSaveGLB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.glb")
	if err := SaveGLB(path, CubeMesh(1)); err != nil {
		t.Fatalf("SaveGLB() error = %v", err)
	}
	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatalf("gltf.Open() error = %v", err)
	}
	if len(doc.Meshes) != 1 {
		t.Errorf("len(Meshes) = %d, want 1", len(doc.Meshes))
	}
}
