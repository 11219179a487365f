package scene

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/facet/pkg/config"
	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/models"
	"github.com/taigrr/facet/pkg/render"
)

const (
	sphereRadius   = 2.0
	sphereLat      = 8
	sphereLon      = 12
	sphereBob      = 1.5 // target height either side of center
	sphereBobEvery = 2.0 // time units between target flips
)

// Sphere shows a UV sphere bouncing between two heights next to a spinning
// cube. Both are drawn in one depth-sorted pass so they interleave
// correctly when they overlap.
type Sphere struct {
	sphere models.Sphere
	cube   models.Cube
	spin   math3d.Vec3
	bob    harmonica.Spring
	bobV   float64
	target float64
	t      float64
}

// NewSphere creates the scene. The cube uses opts' size and rotation speeds.
func NewSphere(opts config.RendererOptions) *Sphere {
	return &Sphere{
		sphere: models.Sphere{
			Center:      math3d.V3(-2, 0, -3),
			Radius:      sphereRadius,
			LatSegments: sphereLat,
			LonSegments: sphereLon,
		},
		cube: models.Cube{
			Position: math3d.V3(2.5, 0, -3),
			Size:     opts.CubeSize,
		},
		spin:   math3d.V3(opts.RotationSpeedX, opts.RotationSpeedY, opts.RotationSpeedZ),
		bob:    harmonica.NewSpring(TimeStep, 3.0, 0.25),
		target: sphereBob,
	}
}

func (s *Sphere) Name() string { return "sphere" }

// Step flips the bob target every sphereBobEvery time units, moves the
// sphere toward it on an underdamped spring and spins the cube.
func (s *Sphere) Step() {
	if int(math.Floor(s.t/sphereBobEvery))%2 == 0 {
		s.target = sphereBob
	} else {
		s.target = -sphereBob
	}
	s.sphere.Center.Y, s.bobV = s.bob.Update(s.sphere.Center.Y, s.bobV, s.target)
	s.cube.Rotation = s.spin.Scale(s.t)
	s.t += TimeStep
}

// Target returns the height the sphere is currently springing toward.
func (s *Sphere) Target() float64 {
	return s.target
}

// SphereCenter returns the sphere's current center.
func (s *Sphere) SphereCenter() math3d.Vec3 {
	return s.sphere.Center
}

func (s *Sphere) Render(r *render.Renderer, mode Mode) {
	renderMeshes(r, mode, s.sphere.Mesh(), s.cube.Mesh())
}
