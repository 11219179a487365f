package models

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/qmuntal/gltf"
)

// ErrEmptyMesh is returned when exporting a mesh with no drawable faces.
var ErrEmptyMesh = errors.New("mesh has no drawable faces")

// ToGLTF converts the mesh into a single-primitive glTF document with an
// embedded buffer. Polygons are fan-triangulated from their first vertex,
// which is exact for the convex faces facet renders. Out-of-range indices
// are dropped the same way the renderer drops them.
func ToGLTF(m *Mesh) (*gltf.Document, error) {
	var indices []uint32
	for i := range m.Faces {
		if _, ok := m.FacePositions(i); !ok {
			continue
		}
		valid := make([]uint32, 0, len(m.Faces[i]))
		for _, idx := range m.Faces[i] {
			if idx >= 0 && idx < len(m.Vertices) {
				valid = append(valid, uint32(idx))
			}
		}
		for k := 1; k+1 < len(valid); k++ {
			indices = append(indices, valid[0], valid[k], valid[k+1])
		}
	}
	if len(indices) == 0 {
		return nil, fmt.Errorf("export %q: %w", m.Name, ErrEmptyMesh)
	}

	posBytes := len(m.Vertices) * 12
	data := make([]byte, posBytes+len(indices)*4)
	for i, v := range m.Vertices {
		off := i * 12
		binary.LittleEndian.PutUint32(data[off:], math.Float32bits(float32(v.X)))
		binary.LittleEndian.PutUint32(data[off+4:], math.Float32bits(float32(v.Y)))
		binary.LittleEndian.PutUint32(data[off+8:], math.Float32bits(float32(v.Z)))
	}
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(data[posBytes+i*4:], idx)
	}

	// glTF requires min/max on POSITION accessors.
	lo, hi := m.Bounds()

	name := m.Name
	if name == "" {
		name = "mesh"
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "facet"
	doc.Buffers = []*gltf.Buffer{{ByteLength: len(data), Data: data}}
	doc.BufferViews = []*gltf.BufferView{
		{Buffer: 0, ByteOffset: 0, ByteLength: posBytes, Target: gltf.TargetArrayBuffer},
		{Buffer: 0, ByteOffset: posBytes, ByteLength: len(indices) * 4, Target: gltf.TargetElementArrayBuffer},
	}
	doc.Accessors = []*gltf.Accessor{
		{
			BufferView:    ptr(0),
			ComponentType: gltf.ComponentFloat,
			Count:         len(m.Vertices),
			Type:          gltf.AccessorVec3,
			Min:           []float64{float64(float32(lo.X)), float64(float32(lo.Y)), float64(float32(lo.Z))},
			Max:           []float64{float64(float32(hi.X)), float64(float32(hi.Y)), float64(float32(hi.Z))},
		},
		{
			BufferView:    ptr(1),
			ComponentType: gltf.ComponentUint,
			Count:         len(indices),
			Type:          gltf.AccessorScalar,
		},
	}
	doc.Meshes = []*gltf.Mesh{{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]int{gltf.POSITION: 0},
			Indices:    ptr(1),
			Mode:       gltf.PrimitiveTriangles,
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: name, Mesh: ptr(0)}}
	doc.Scenes = []*gltf.Scene{{Nodes: []int{0}}}
	doc.Scene = ptr(0)
	return doc, nil
}

// WriteGLB encodes the mesh as binary glTF to w.
func WriteGLB(w io.Writer, m *Mesh) error {
	doc, err := ToGLTF(m)
	if err != nil {
		return err
	}
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode glb: %w", err)
	}
	return nil
}

// SaveGLB writes the mesh as a .glb file at path.
func SaveGLB(path string, m *Mesh) error {
	doc, err := ToGLTF(m)
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save glb: %w", err)
	}
	return nil
}

func ptr(i int) *int { return &i }
