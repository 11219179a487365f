package scene

import (
	"github.com/taigrr/facet/pkg/pattern"
	"github.com/taigrr/facet/pkg/render"
)

// Pattern is the static panel test pattern in the renderer's light colors.
type Pattern struct{}

// NewPattern returns the test pattern scene.
func NewPattern() *Pattern { return &Pattern{} }

func (*Pattern) Name() string { return "pattern" }

func (*Pattern) Step() {}

// Render ignores mode; the pattern is line art already.
func (*Pattern) Render(r *render.Renderer, _ Mode) {
	pattern.Draw(r.Framebuffer(), r.Light.Shadow, r.Light.Lit)
}
