// Package scene holds the animation state that drives the renderer: each
// scene advances on a fixed tick and draws itself into a render.Renderer.
package scene

import (
	"errors"
	"fmt"
	"slices"

	"github.com/taigrr/facet/pkg/config"
	"github.com/taigrr/facet/pkg/models"
	"github.com/taigrr/facet/pkg/render"
)

// TimeStep is the animation time added per tick, independent of the real
// frame rate.
const TimeStep = 0.016

// ErrUnknownScene is returned by New for unregistered names.
var ErrUnknownScene = errors.New("unknown scene")

// Mode selects how meshes are drawn.
type Mode int

const (
	ModeSolid Mode = iota
	ModeWireframe
)

func (m Mode) String() string {
	switch m {
	case ModeSolid:
		return "solid"
	case ModeWireframe:
		return "wireframe"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Toggle switches between solid and wireframe.
func (m Mode) Toggle() Mode {
	if m == ModeWireframe {
		return ModeSolid
	}
	return ModeWireframe
}

// Scene is one animation. Step advances it by TimeStep; Render draws the
// current state without clearing.
type Scene interface {
	Name() string
	Step()
	Render(r *render.Renderer, mode Mode)
}

// Factory builds a scene for a width x height display.
type Factory func(opts config.RendererOptions, width, height int, seed uint64) Scene

var registry = map[string]Factory{
	"orbit": func(opts config.RendererOptions, _, _ int, _ uint64) Scene {
		return NewOrbit(opts)
	},
	"rain": func(opts config.RendererOptions, width, height int, seed uint64) Scene {
		return NewRain(opts, width, height, seed)
	},
	"sphere": func(opts config.RendererOptions, _, _ int, _ uint64) Scene {
		return NewSphere(opts)
	},
	"pattern": func(config.RendererOptions, int, int, uint64) Scene {
		return NewPattern()
	},
}

// Names lists the registered scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// New builds the named scene. seed drives any randomness so runs are
// reproducible.
func New(name string, cfg config.Config, width, height int, seed uint64) (Scene, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownScene, name, Names())
	}
	logger().Debug("scene created", "scene", name, "width", width, "height", height, "seed", seed)
	return f(cfg.Renderer, width, height, seed), nil
}

// Frame runs one tick: clear the framebuffer, advance s, draw it.
func Frame(s Scene, r *render.Renderer, mode Mode) {
	r.Clear()
	s.Step()
	s.Render(r, mode)
}

// renderMeshes draws a set of meshes in mode with one global depth sort.
func renderMeshes(r *render.Renderer, mode Mode, meshes ...*models.Mesh) {
	if mode == ModeWireframe {
		c := r.Light.Lit.Pack()
		for _, m := range meshes {
			r.RenderMeshWireframe(m, c)
		}
		return
	}
	r.RenderMeshes(meshes...)
}
