// Package render implements facet's software rasterizer: flat-shaded convex
// polygons drawn back to front into a packed-color framebuffer, plus the
// sinks that move finished frames to a terminal, a window, an LED driver
// or an image file.
package render

import (
	"cmp"
	"math"
	"slices"

	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/models"
)

// DefaultFocal is the pinhole focal length.
const DefaultFocal = 5.0

const (
	// minDepth replaces z+focal when a vertex sits at or behind the focal
	// plane, keeping the projection scale finite and positive.
	minDepth = 0.1

	// edgeTolerance lets pixels on a polygon boundary pass the half-plane test.
	edgeTolerance = -0.1
)

// Renderer draws meshes into an owned framebuffer. It is single-threaded and
// keeps no state between frames other than the framebuffer contents, the
// light and the counters in Stats.
type Renderer struct {
	fb    *Framebuffer
	Focal float64
	Light Light
	Stats Stats

	faces []preparedFace
	proj  []math3d.Vec2
}

// Stats counts work done since the last ResetStats.
type Stats struct {
	FacesTested   int // faces seen, drawable or not
	FacesSkipped  int // faces with fewer than 3 resolvable vertices
	FacesDrawn    int // faces shaded and rasterized
	PixelsWritten int // pixels passing the inside test
}

// preparedFace is a drawable face with its shading inputs.
type preparedFace struct {
	pos    []math3d.Vec3
	normal math3d.Vec3
	avgZ   float64
}

// NewRenderer creates a renderer with a black width x height framebuffer,
// the default focal length and the default light.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		fb:    NewFramebuffer(width, height),
		Focal: DefaultFocal,
		Light: DefaultLight(),
	}
}

// Framebuffer returns the renderer's framebuffer. Callers may read it at any
// time; writes are overwritten by subsequent renders.
func (r *Renderer) Framebuffer() *Framebuffer {
	return r.fb
}

// Width returns the framebuffer width.
func (r *Renderer) Width() int {
	return r.fb.Width
}

// Height returns the framebuffer height.
func (r *Renderer) Height() int {
	return r.fb.Height
}

// Clear resets the framebuffer to black.
func (r *Renderer) Clear() {
	r.fb.Clear()
}

// ResetStats zeroes the counters (call once per frame).
func (r *Renderer) ResetStats() {
	r.Stats = Stats{}
}

// SetLightDirection normalizes dir and makes it the light direction.
func (r *Renderer) SetLightDirection(dir math3d.Vec3) {
	r.Light.Direction = dir.Normalize()
}

// SetColors sets the shadow and lit ends of the shading ramp.
func (r *Renderer) SetColors(shadow, lit RGB) {
	r.Light.Shadow = shadow
	r.Light.Lit = lit
}

// Project maps v to screen space with a pinhole camera at z = -Focal
// looking down +z. Screen y grows downward with world y.
func (r *Renderer) Project(v math3d.Vec3) math3d.Vec2 {
	z := v.Z + r.Focal
	if z <= 0 {
		z = minDepth
	}
	scale := r.Focal / z
	return math3d.V2(
		v.X*scale+float64(r.fb.Width)/2,
		v.Y*scale+float64(r.fb.Height)/2,
	)
}

// RenderMesh draws every drawable face of m, sorted back to front by
// average Z. The mesh must already be in the space to project from.
func (r *Renderer) RenderMesh(m *models.Mesh) {
	r.RenderMeshes(m)
}

// RenderMeshes draws all faces of all meshes in a single pass with one
// global depth sort, so faces of different meshes interleave correctly.
func (r *Renderer) RenderMeshes(meshes ...*models.Mesh) {
	r.faces = r.faces[:0]
	for _, m := range meshes {
		if m == nil {
			continue
		}
		r.prepare(m)
	}

	// Stable so coplanar faces keep their mesh order.
	slices.SortStableFunc(r.faces, func(a, b preparedFace) int {
		return cmp.Compare(a.avgZ, b.avgZ)
	})

	for i := range r.faces {
		f := &r.faces[i]
		r.fillPolygon(f.pos, r.Light.Shade(f.normal))
		r.Stats.FacesDrawn++
	}
}

// RenderCube draws c in world space.
func (r *Renderer) RenderCube(c models.Cube) {
	r.RenderMesh(c.Mesh())
}

func (r *Renderer) prepare(m *models.Mesh) {
	for i := range m.Faces {
		r.Stats.FacesTested++
		pos, ok := m.FacePositions(i)
		if !ok {
			r.Stats.FacesSkipped++
			continue
		}
		r.faces = append(r.faces, preparedFace{
			pos:    pos,
			normal: FaceNormal(pos),
			avgZ:   averageZ(pos),
		})
	}
}

// FaceNormal returns normalize((v1-v0) x (v2-v0)). Polygons with fewer than
// three vertices get (0,0,1); degenerate ones get the zero vector.
func FaceNormal(pos []math3d.Vec3) math3d.Vec3 {
	if len(pos) < 3 {
		return math3d.V3(0, 0, 1)
	}
	e1 := pos[1].Sub(pos[0])
	e2 := pos[2].Sub(pos[0])
	return e1.Cross(e2).Normalize()
}

func averageZ(pos []math3d.Vec3) float64 {
	var sum float64
	for _, p := range pos {
		sum += p.Z
	}
	return sum / float64(len(pos))
}

// fillPolygon projects pos and fills the convex polygon it spans.
func (r *Renderer) fillPolygon(pos []math3d.Vec3, c uint32) {
	r.proj = r.proj[:0]
	for _, p := range pos {
		r.proj = append(r.proj, r.Project(p))
	}
	poly := r.proj

	minX, maxX := poly[0].X, poly[0].X
	minY, maxY := poly[0].Y, poly[0].Y
	for _, p := range poly[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	x0 := max(0, truncate(minX))
	x1 := min(r.fb.Width-1, truncate(maxX)+1)
	y0 := max(0, truncate(minY))
	y1 := min(r.fb.Height-1, truncate(maxY)+1)

	for y := y0; y <= y1; y++ {
		row := r.fb.Pixels[y*r.fb.Width:]
		for x := x0; x <= x1; x++ {
			if insideConvex(math3d.V2(float64(x), float64(y)), poly) {
				row[x] = c
				r.Stats.PixelsWritten++
			}
		}
	}
}

// insideConvex reports whether p lies on the inner side of every edge of
// poly, within edgeTolerance.
func insideConvex(p math3d.Vec2, poly []math3d.Vec2) bool {
	n := len(poly)
	for i := range n {
		a := poly[i]
		b := poly[(i+1)%n]
		if b.Sub(a).Cross(p.Sub(a)) < edgeTolerance {
			return false
		}
	}
	return true
}

// truncate converts toward zero like an integer cast, saturating values
// outside the int range so huge projections stay clampable.
func truncate(f float64) int {
	switch {
	case f != f:
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}
