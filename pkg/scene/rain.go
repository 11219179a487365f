package scene

import (
	"math/rand/v2"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/facet/pkg/config"
	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/models"
	"github.com/taigrr/facet/pkg/render"
)

const (
	rainSpawnInterval = 0.3
	rainCubeSize      = 1.5
	rainDepth         = -2.5 // projects at scale 2 with the default focal length
)

// rainSpin is the shared rotation rate of every falling cube.
var rainSpin = math3d.V3(1.2, 0.8, 0.5)

// Rain spawns small cubes above the display that fall with a slight
// sideways drift and are dropped once they clear the bottom edge. Speeds
// are chosen in pixels per tick and converted to world units at rainDepth.
type Rain struct {
	width      int
	scale      float64 // pixels per world unit at rainDepth
	halfH      float64 // half the display height in world units
	rng        *rand.Rand
	drops      []drop
	spawnTimer float64
	t          float64
}

type drop struct {
	motion *harmonica.Projectile
	cube   models.Cube
}

// NewRain creates an empty rain scene for a width x height display.
func NewRain(opts config.RendererOptions, width, height int, seed uint64) *Rain {
	focal := opts.FocalLength
	if focal <= 0 {
		focal = render.DefaultFocal
	}
	scale := focal / max(rainDepth+focal, 0.1)
	return &Rain{
		width: width,
		scale: scale,
		halfH: float64(height) / 2 / scale,
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (r *Rain) Name() string { return "rain" }

// Step spawns a cube every rainSpawnInterval, moves every cube one tick and
// removes those below the display.
func (r *Rain) Step() {
	r.spawnTimer += TimeStep
	if r.spawnTimer >= rainSpawnInterval {
		r.spawnTimer = 0
		r.spawn()
	}

	rot := rainSpin.Scale(r.t)
	limit := r.halfH + rainCubeSize
	kept := r.drops[:0]
	for _, d := range r.drops {
		p := d.motion.Update()
		if p.Y > limit {
			logger().Debug("rain drop left display", "x", p.X)
			continue
		}
		d.cube.Position = math3d.V3(p.X, p.Y, p.Z)
		d.cube.Rotation = rot
		kept = append(kept, d)
	}
	clear(r.drops[len(kept):])
	r.drops = kept
	r.t += TimeStep
}

// spawn adds a cube above the top edge at a random column at least a few
// pixels from the sides. It falls 0.5 to 1.0 pixels per tick and drifts
// -0.2 to 0.2.
func (r *Rain) spawn() {
	span := max(r.width-5, 1)
	col := float64(r.rng.IntN(span)) + 2.5
	fall := 0.5 + float64(r.rng.IntN(100))/200
	drift := float64(r.rng.IntN(200)-100) / 500

	start := harmonica.Point{
		X: (col - float64(r.width)/2) / r.scale,
		Y: -r.halfH - rainCubeSize,
		Z: rainDepth,
	}
	perTick := harmonica.Vector{
		X: drift / r.scale / TimeStep,
		Y: fall / r.scale / TimeStep,
	}
	r.drops = append(r.drops, drop{
		motion: harmonica.NewProjectile(TimeStep, start, perTick, harmonica.Vector{}),
		cube: models.Cube{
			Position: math3d.V3(start.X, start.Y, start.Z),
			Size:     rainCubeSize,
		},
	})
}

// Cubes returns the falling cubes' current poses.
func (r *Rain) Cubes() []models.Cube {
	cubes := make([]models.Cube, len(r.drops))
	for i, d := range r.drops {
		cubes[i] = d.cube
	}
	return cubes
}

func (r *Rain) Render(rn *render.Renderer, mode Mode) {
	meshes := make([]*models.Mesh, len(r.drops))
	for i, d := range r.drops {
		meshes[i] = d.cube.Mesh()
	}
	renderMeshes(rn, mode, meshes...)
}
