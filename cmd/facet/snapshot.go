package main

import (
	"fmt"
	"image"

	"github.com/spf13/cobra"

	"github.com/taigrr/facet/pkg/render"
	"github.com/taigrr/facet/pkg/scene"
)

func newSnapshotCmd(opts *options) *cobra.Command {
	var (
		frames    int
		out       string
		scale     int
		animate   bool
		wireframe bool
	)
	cmd := &cobra.Command{
		Use:   "snapshot [scene]",
		Short: "Render a scene headlessly to an image file",
		Long: `Render a scene for a number of ticks and write the last frame to an image.

The output extension selects the format: .png, .webp or .tga. With
--animate every frame is kept and written as an animated WebP.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: scene.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if frames < 1 {
				return fmt.Errorf("frames must be at least 1, got %d", frames)
			}
			if scale < 1 {
				return fmt.Errorf("scale must be at least 1, got %d", scale)
			}
			format, err := render.FormatFromPath(out)
			if err != nil {
				return err
			}
			if animate && format != render.FormatWebP {
				return fmt.Errorf("%w: animation needs .webp, got %s", render.ErrUnsupportedFormat, out)
			}

			s, err := opts.newSession(sceneArg(args))
			if err != nil {
				return err
			}
			if wireframe {
				s.mode = scene.ModeWireframe
			}

			var anim []image.Image
			for range frames {
				s.step()
				if animate {
					anim = append(anim, render.Upscale(s.framebuffer().ToImage(), scale))
				}
			}

			if animate {
				err = render.SaveWebPAnimation(out, anim, s.cfg.Renderer.FrameInterval())
			} else {
				err = render.SaveImage(out, render.Upscale(s.framebuffer().ToImage(), scale))
			}
			if err != nil {
				return err
			}
			s.log.Info("snapshot written", "path", out, "frames", frames, "animated", animate)
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&frames, "frames", 60, "Ticks to run before capturing")
	f.StringVarP(&out, "out", "o", "facet.png", "Output file (.png, .webp, .tga)")
	f.IntVar(&scale, "scale", 8, "Output pixels per LED")
	f.BoolVar(&animate, "animate", false, "Write every frame as an animated WebP")
	f.BoolVar(&wireframe, "wireframe", false, "Render in wireframe mode")
	return cmd
}
