package scene

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/facet/pkg/config"
	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/models"
	"github.com/taigrr/facet/pkg/render"
)

// orbitPhase staggers the cubes by a third of a turn.
const orbitPhase = 2.094

// Orbit is a row of spinning cubes at increasing depth, bobbing on sine
// waves. Spin speed ramps up from rest on a critically damped spring.
type Orbit struct {
	opts   config.RendererOptions
	cubes  []models.Cube
	t      float64
	ramp   float64 // 0 at rest, 1 at full speed
	rampV  float64
	spring harmonica.Spring
}

// NewOrbit places opts.NumCubes cubes at x = (i-1)*4, z = -8 + 3i.
func NewOrbit(opts config.RendererOptions) *Orbit {
	o := &Orbit{
		opts:   opts,
		cubes:  make([]models.Cube, opts.NumCubes),
		spring: harmonica.NewSpring(TimeStep, 4.0, 1.0),
	}
	for i := range o.cubes {
		fi := float64(i)
		o.cubes[i] = models.Cube{
			Position: math3d.V3((fi-1)*4, 0, -8+fi*3),
			Rotation: math3d.V3(fi*orbitPhase, fi*orbitPhase, 0),
			Size:     opts.CubeSize,
		}
	}
	return o
}

func (o *Orbit) Name() string { return "orbit" }

// Step spins each cube by the eased speed and sets its height from the
// current time.
func (o *Orbit) Step() {
	o.ramp, o.rampV = o.spring.Update(o.ramp, o.rampV, 1)
	spin := o.Speed().Scale(TimeStep)

	for i := range o.cubes {
		c := &o.cubes[i]
		c.Rotation = c.Rotation.Add(spin)
		c.Position.Y = math.Sin(o.t*o.opts.PositionAnimationSpeed+float64(i)) * o.opts.PositionAnimationAmplitude
	}
	o.t += TimeStep
}

// Speed returns the current angular velocity per axis, radians per time unit.
func (o *Orbit) Speed() math3d.Vec3 {
	return math3d.V3(o.opts.RotationSpeedX, o.opts.RotationSpeedY, o.opts.RotationSpeedZ).Scale(o.ramp)
}

// Cubes returns the cubes' current poses.
func (o *Orbit) Cubes() []models.Cube {
	return o.cubes
}

func (o *Orbit) Render(r *render.Renderer, mode Mode) {
	meshes := make([]*models.Mesh, len(o.cubes))
	for i, c := range o.cubes {
		meshes[i] = c.Mesh()
	}
	renderMeshes(r, mode, meshes...)
}
