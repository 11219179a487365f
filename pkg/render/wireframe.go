package render

import (
	"math"

	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/models"
)

// RenderMeshWireframe outlines every drawable face of m in color c using the
// same projection as the filled pass. Edges are drawn in face order with no
// depth sort or hidden line removal.
func (r *Renderer) RenderMeshWireframe(m *models.Mesh, c uint32) {
	for i := range m.Faces {
		r.Stats.FacesTested++
		pos, ok := m.FacePositions(i)
		if !ok {
			r.Stats.FacesSkipped++
			continue
		}
		for j := range pos {
			r.drawLine3D(pos[j], pos[(j+1)%len(pos)], c)
		}
		r.Stats.FacesDrawn++
	}
}

// RenderCubeWireframe outlines c in world space.
func (r *Renderer) RenderCubeWireframe(c models.Cube, color uint32) {
	r.RenderMeshWireframe(c.Mesh(), color)
}

// drawLine3D projects both endpoints and draws the segment between them.
func (r *Renderer) drawLine3D(a, b math3d.Vec3, c uint32) {
	pa := r.Project(a)
	pb := r.Project(b)
	if !pa.IsFinite() || !pb.IsFinite() {
		return
	}
	x0, y0 := roundClamp(pa.X), roundClamp(pa.Y)
	x1, y1 := roundClamp(pb.X), roundClamp(pb.Y)

	// Skip segments entirely on one side of the framebuffer; Bresenham
	// would otherwise walk every off-screen step.
	w, h := r.fb.Width, r.fb.Height
	if (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) || (x0 >= w && x1 >= w) || (y0 >= h && y1 >= h) {
		return
	}
	r.fb.DrawLine(x0, y0, x1, y1, c)
}

// roundClamp rounds to the nearest pixel, limiting the result so lines from
// near-plane vertices stay walkable.
func roundClamp(f float64) int {
	const limit = 1 << 14
	return int(math.Max(-limit, math.Min(limit, math.Round(f))))
}
