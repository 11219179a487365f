package models

import (
	"math"

	"github.com/taigrr/facet/pkg/math3d"
)

// Cube is a parametric cube: an edge length plus the rigid transform that
// places it in the scene. It is per-frame animation state; the renderer only
// ever sees the Mesh it produces.
type Cube struct {
	Position math3d.Vec3
	Rotation math3d.Vec3 // Euler angles, radians, applied X then Y then Z
	Size     float64
}

// NewCube creates an untransformed cube with the given edge length.
func NewCube(size float64) Cube {
	return Cube{Size: size}
}

// cubeFaces lists the quads of the unit cube in cubeCorners order. Each
// winding is hand-chosen; no correction is applied at runtime.
var cubeFaces = [6]Face{
	{0, 1, 2, 3}, // front
	{4, 7, 6, 5}, // back
	{0, 3, 7, 4}, // left
	{1, 5, 6, 2}, // right
	{3, 2, 6, 7}, // top
	{0, 4, 5, 1}, // bottom
}

var cubeCorners = [8]math3d.Vec3{
	{X: -1, Y: -1, Z: -1},
	{X: 1, Y: -1, Z: -1},
	{X: 1, Y: 1, Z: -1},
	{X: -1, Y: 1, Z: -1},
	{X: -1, Y: -1, Z: 1},
	{X: 1, Y: -1, Z: 1},
	{X: 1, Y: 1, Z: 1},
	{X: -1, Y: 1, Z: 1},
}

// CubeMesh returns an axis-aligned cube of edge length size centered on the
// origin: 8 vertices and 6 quads.
func CubeMesh(size float64) *Mesh {
	h := size / 2
	m := &Mesh{
		Name:     "cube",
		Vertices: make([]math3d.Vec3, len(cubeCorners)),
		Faces:    make([]Face, len(cubeFaces)),
	}
	for i, c := range cubeCorners {
		m.Vertices[i] = c.Scale(h)
	}
	for i, f := range cubeFaces {
		m.Faces[i] = append(Face(nil), f...)
	}
	return m
}

// LocalMesh returns the cube before rotation and translation.
func (c Cube) LocalMesh() *Mesh {
	return CubeMesh(c.Size)
}

// Transform returns the rigid transform for the cube's pose.
func (c Cube) Transform() math3d.Mat4 {
	return math3d.Rigid(c.Position, c.Rotation)
}

// Mesh returns the cube in world space.
func (c Cube) Mesh() *Mesh {
	m := c.LocalMesh()
	m.Transform(c.Transform())
	return m
}

// Sphere is a parametric UV sphere.
type Sphere struct {
	Center      math3d.Vec3
	Radius      float64
	LatSegments int
	LonSegments int
}

// Mesh returns the sphere in world space.
func (s Sphere) Mesh() *Mesh {
	return UVSphere(s.Center, s.Radius, s.LatSegments, s.LonSegments)
}

// UVSphere generates a latitude/longitude sphere with (lat+1)*(lon+1)
// vertices and lat*lon quads. Each ring repeats its first vertex at
// θ = 2π, and the pole rings collapse to a point, so quads touching the
// poles are degenerate. Negative segment counts are treated as zero.
func UVSphere(center math3d.Vec3, radius float64, lat, lon int) *Mesh {
	lat = max(lat, 0)
	lon = max(lon, 0)

	m := &Mesh{
		Name:     "sphere",
		Vertices: make([]math3d.Vec3, 0, (lat+1)*(lon+1)),
		Faces:    make([]Face, 0, lat*lon),
	}

	for i := 0; i <= lat; i++ {
		phi := 0.0
		if lat > 0 {
			phi = math.Pi * float64(i) / float64(lat)
		}
		sinPhi, cosPhi := math.Sincos(phi)
		for j := 0; j <= lon; j++ {
			theta := 0.0
			if lon > 0 {
				theta = 2 * math.Pi * float64(j) / float64(lon)
			}
			sinTheta, cosTheta := math.Sincos(theta)
			m.Vertices = append(m.Vertices, math3d.V3(
				center.X+radius*sinPhi*cosTheta,
				center.Y+radius*cosPhi,
				center.Z+radius*sinPhi*sinTheta,
			))
		}
	}

	stride := lon + 1
	for i := range lat {
		for j := range lon {
			a := i*stride + j
			b := a + 1
			c := a + stride
			d := c + 1
			m.Faces = append(m.Faces, Face{a, b, d, c})
		}
	}
	return m
}
