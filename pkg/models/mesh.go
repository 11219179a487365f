// Package models provides the polygon mesh representation used by facet and
// the generators that synthesize cube and UV sphere meshes.
package models

import (
	"github.com/taigrr/facet/pkg/math3d"
)

// Face is an ordered list of vertex indices describing one convex polygon.
// Winding is counter-clockwise when viewed from the lit side.
type Face []int

// Mesh represents a polygon mesh: vertex positions plus faces that reference
// them by index. A Mesh has no coordinate space of its own; the renderer
// projects whatever positions it is given.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    []Face
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]math3d.Vec3, 0),
		Faces:    make([]Face, 0),
	}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(v math3d.Vec3) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddFace appends a face built from the given indices.
func (m *Mesh) AddFace(indices ...int) {
	f := make(Face, len(indices))
	copy(f, indices)
	m.Faces = append(m.Faces, f)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces, including malformed ones.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// FacePositions returns the positions referenced by face i. Indices outside
// the vertex range are dropped. ok is false when fewer than three positions
// remain, in which case the face is not drawable.
func (m *Mesh) FacePositions(i int) (pos []math3d.Vec3, ok bool) {
	if i < 0 || i >= len(m.Faces) {
		return nil, false
	}
	f := m.Faces[i]
	pos = make([]math3d.Vec3, 0, len(f))
	for _, idx := range f {
		if idx < 0 || idx >= len(m.Vertices) {
			continue
		}
		pos = append(pos, m.Vertices[idx])
	}
	if len(pos) < 3 {
		return nil, false
	}
	return pos, true
}

// DrawableFaces returns the number of faces with at least three resolvable
// vertices.
func (m *Mesh) DrawableFaces() int {
	n := 0
	for i := range m.Faces {
		if _, ok := m.FacePositions(i); ok {
			n++
		}
	}
	return n
}

// Bounds returns the axis-aligned bounding box of the vertices.
// An empty mesh reports a zero box.
func (m *Mesh) Bounds() (min, max math3d.Vec3) {
	if len(m.Vertices) == 0 {
		return math3d.Zero3(), math3d.Zero3()
	}

	min = m.Vertices[0]
	max = m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return min, max
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	min, max := m.Bounds()
	return min.Add(max).Scale(0.5)
}

// Transform applies a transformation matrix to all vertices in place.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulVec3(m.Vertices[i])
	}
}

// Transformed returns a transformed deep copy, leaving m untouched.
func (m *Mesh) Transformed(mat math3d.Mat4) *Mesh {
	c := m.Clone()
	c.Transform(mat)
	return c
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:     m.Name,
		Vertices: make([]math3d.Vec3, len(m.Vertices)),
		Faces:    make([]Face, len(m.Faces)),
	}
	copy(clone.Vertices, m.Vertices)
	for i, f := range m.Faces {
		clone.Faces[i] = append(Face(nil), f...)
	}
	return clone
}

// Append merges other into m, offsetting its face indices past m's
// vertices. Out-of-range indices in other stay out of range.
func (m *Mesh) Append(other *Mesh) {
	base := len(m.Vertices)
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, f := range other.Faces {
		nf := make(Face, len(f))
		for i, idx := range f {
			if idx < 0 || idx >= len(other.Vertices) {
				nf[i] = -1
				continue
			}
			nf[i] = idx + base
		}
		m.Faces = append(m.Faces, nf)
	}
}
