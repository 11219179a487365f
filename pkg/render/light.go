package render

import (
	"github.com/taigrr/facet/pkg/math3d"
)

// Light is a single directional light with a two-color ramp. Faces turned
// away from Direction take Shadow; faces facing it head-on take Lit.
type Light struct {
	Direction math3d.Vec3 // unit length
	Shadow    RGB
	Lit       RGB
}

// DefaultLight returns a warm white light from the upper right front.
func DefaultLight() Light {
	return Light{
		Direction: math3d.V3(0.8, 0.6, 1.0).Normalize(),
		Shadow:    ColorGray,
		Lit:       ColorCream,
	}
}

// Brightness returns max(0, n·Direction) clamped to [0, 1].
func (l Light) Brightness(n math3d.Vec3) float64 {
	return clamp01(n.Dot(l.Direction))
}

// Shade returns the packed flat-shaded color for a face with normal n.
// A zero normal shades as full shadow.
func (l Light) Shade(n math3d.Vec3) uint32 {
	return l.Shadow.Lerp(l.Lit, l.Brightness(n)).Pack()
}
