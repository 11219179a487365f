package main

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"

	"github.com/taigrr/facet/pkg/scene"
)

func newWindowCmd(opts *options) *cobra.Command {
	var scale int
	var wireframe bool
	cmd := &cobra.Command{
		Use:       "window [scene]",
		Short:     "Play a scene in a desktop window",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: scene.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if scale < 1 {
				return fmt.Errorf("scale must be at least 1, got %d", scale)
			}
			s, err := opts.newSession(sceneArg(args))
			if err != nil {
				return err
			}
			if wireframe {
				s.mode = scene.ModeWireframe
			}
			return runWindow(cmd.Context(), s, scale)
		},
	}
	cmd.Flags().IntVar(&scale, "scale", 16, "Window pixels per LED")
	cmd.Flags().BoolVar(&wireframe, "wireframe", false, "Start in wireframe mode")
	return cmd
}

// runWindow opens a window showing the framebuffer scaled up and blocks
// until it is closed.
func runWindow(ctx context.Context, s *session, scale int) error {
	fb := s.framebuffer()
	ebiten.SetWindowTitle("facet: " + s.scene.Name())
	ebiten.SetWindowSize(fb.Width*scale, fb.Height*scale)
	tps := max(1000/s.cfg.Renderer.FrameRateMs, 1)
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(&windowGame{ctx: ctx, s: s}); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	s.log.Info("stopped", "frames", s.frames)
	return nil
}

type windowGame struct {
	ctx    context.Context
	s      *session
	img    *ebiten.Image
	paused bool
}

func (g *windowGame) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.paused = !g.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		g.s.mode = g.s.mode.Toggle()
	}
	if !g.paused {
		g.s.step()
	}
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	fb := g.s.framebuffer()
	if g.img == nil {
		g.img = ebiten.NewImage(fb.Width, fb.Height)
	}
	g.img.WritePixels(fb.ToImage().Pix)
	screen.DrawImage(g.img, nil)
}

func (g *windowGame) Layout(_, _ int) (int, int) {
	fb := g.s.framebuffer()
	return fb.Width, fb.Height
}
