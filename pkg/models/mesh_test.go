package models

import (
	"testing"

	"github.com/taigrr/facet/pkg/math3d"
)

func triangle() *Mesh {
	m := NewMesh("tri")
	m.AddVertex(math3d.V3(0, 0, 0))
	m.AddVertex(math3d.V3(1, 0, 0))
	m.AddVertex(math3d.V3(0, 1, 0))
	m.AddFace(0, 1, 2)
	return m
}

func TestMeshCounts(t *testing.T) {
	m := triangle()
	if got := m.VertexCount(); got != 3 {
		t.Errorf("VertexCount() = %d, want 3", got)
	}
	if got := m.FaceCount(); got != 1 {
		t.Errorf("FaceCount() = %d, want 1", got)
	}
}

func TestFacePositionsDropsOutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		face    []int
		wantLen int
		wantOK  bool
	}{
		{"all valid", []int{0, 1, 2}, 3, true},
		{"one invalid of four", []int{0, 1, 7, 2}, 3, true},
		{"negative index", []int{-1, 0, 1, 2}, 3, true},
		{"too few after drop", []int{0, 1, 9}, 0, false},
		{"two vertices", []int{0, 1}, 0, false},
		{"empty", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := triangle()
			m.Faces = []Face{tt.face}
			pos, ok := m.FacePositions(0)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if len(pos) != tt.wantLen {
				t.Errorf("len(pos) = %d, want %d", len(pos), tt.wantLen)
			}
		})
	}
}

func TestDrawableFaces(t *testing.T) {
	m := triangle()
	m.AddFace(0, 1)
	m.AddFace(0, 5, 6)
	m.AddFace(2, 1, 0)
	if got := m.DrawableFaces(); got != 2 {
		t.Errorf("DrawableFaces() = %d, want 2", got)
	}
}

func TestBoundsEmpty(t *testing.T) {
	min, max := NewMesh("empty").Bounds()
	if min != math3d.Zero3() || max != math3d.Zero3() {
		t.Errorf("Bounds() = %v, %v, want zero box", min, max)
	}
}

func TestTransformedLeavesOriginal(t *testing.T) {
	m := triangle()
	moved := m.Transformed(math3d.Translate(math3d.V3(5, 0, 0)))

	if m.Vertices[0] != math3d.V3(0, 0, 0) {
		t.Errorf("original mutated: %v", m.Vertices[0])
	}
	if moved.Vertices[0] != math3d.V3(5, 0, 0) {
		t.Errorf("moved.Vertices[0] = %v, want (5,0,0)", moved.Vertices[0])
	}
}

func TestCloneIsDeep(t *testing.T) {
	m := triangle()
	c := m.Clone()
	c.Faces[0][0] = 2
	c.Vertices[0] = math3d.V3(9, 9, 9)
	if m.Faces[0][0] != 0 {
		t.Error("Clone shares face storage")
	}
	if m.Vertices[0] != math3d.V3(0, 0, 0) {
		t.Error("Clone shares vertex storage")
	}
}

func TestAppendOffsetsIndices(t *testing.T) {
	m := triangle()
	other := triangle()
	other.AddFace(0, 1, 8)
	m.Append(other)

	if got := m.VertexCount(); got != 6 {
		t.Fatalf("VertexCount() = %d, want 6", got)
	}
	want := Face{3, 4, 5}
	for i, idx := range m.Faces[1] {
		if idx != want[i] {
			t.Errorf("Faces[1] = %v, want %v", m.Faces[1], want)
			break
		}
	}
	// An index invalid in other must not alias a vertex of m.
	if _, ok := m.FacePositions(2); ok {
		t.Error("face with out-of-range index became drawable after Append")
	}
}
