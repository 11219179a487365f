// facet - flat-shaded 3D scenes for small LED matrices
//
// Renders cubes and spheres with a painter's algorithm software rasterizer
// and shows the frames in a terminal, a desktop window or image files.
//
// Controls (play and window):
//
//	Q/Esc  - Quit
//	Space  - Pause
//	W      - Toggle wireframe
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/taigrr/facet/pkg/config"
	"github.com/taigrr/facet/pkg/render"
	"github.com/taigrr/facet/pkg/scene"
)

var version = "dev"

// options are the persistent flags shared by every subcommand.
type options struct {
	configPath string
	logLevel   string
	seed       uint64
	flags      config.Flags
}

func main() {
	root := newRootCmd()
	if err := fang.Execute(context.Background(), root,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "facet",
		Short: "Flat-shaded 3D scenes for LED matrices",
		Long: `facet renders rotating cubes and spheres with a software rasterizer.

Frames are sized for an LED matrix panel described by the config file and
can be shown in the terminal, in a desktop window, or written to images.

Scenes: ` + fmt.Sprint(scene.Names()),
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "config.json", "Path to the JSON config file")
	pf.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.Uint64Var(&opts.seed, "seed", 1, "Seed for scenes with randomness")
	pf.IntVar(&opts.flags.Rows, "rows", 0, "Override matrix rows")
	pf.IntVar(&opts.flags.Cols, "cols", 0, "Override matrix cols")
	pf.IntVar(&opts.flags.NumCubes, "cubes", 0, "Override number of cubes")
	pf.IntVar(&opts.flags.FrameMs, "frame-ms", 0, "Override frame interval in milliseconds")
	pf.Float64Var(&opts.flags.Focal, "focal", 0, "Override focal length")

	root.AddCommand(
		newPlayCmd(opts),
		newWindowCmd(opts),
		newSnapshotCmd(opts),
		newExportCmd(opts),
	)
	return root
}

// logger builds the stderr logger and hands it to the library packages.
func (o *options) logger() (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	scene.SetLogger(log)
	config.SetLogger(log)
	return log, nil
}

// load reads the config file, falling back to defaults when it does not
// exist, then applies flag overrides and validates the result.
func (o *options) load(log *slog.Logger) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warn("config file not found, using defaults", "path", o.configPath)
		cfg = config.Default()
	case err != nil:
		return cfg, err
	}
	cfg.Resolve(o.flags)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", o.configPath, err)
	}
	return cfg, nil
}

// session is one running scene with its renderer.
type session struct {
	cfg      config.Config
	scene    scene.Scene
	renderer *render.Renderer
	mode     scene.Mode
	log      *slog.Logger
	frames   int
}

func (o *options) newSession(name string) (*session, error) {
	log, err := o.logger()
	if err != nil {
		return nil, err
	}
	cfg, err := o.load(log)
	if err != nil {
		return nil, err
	}

	width, height := cfg.DisplaySize()
	s, err := scene.New(name, cfg, width, height, o.seed)
	if err != nil {
		return nil, err
	}
	r := render.NewRenderer(width, height)
	cfg.Renderer.Apply(r)

	log.Info("starting", "scene", name, "width", width, "height", height,
		"frame_interval", cfg.Renderer.FrameInterval())
	return &session{cfg: cfg, scene: s, renderer: r, log: log}, nil
}

// step runs one animation tick and logs progress every 100 frames.
func (s *session) step() {
	s.renderer.ResetStats()
	scene.Frame(s.scene, s.renderer, s.mode)
	s.frames++
	if s.frames%100 == 0 {
		st := s.renderer.Stats
		s.log.Info("frame", "count", s.frames)
		s.log.Debug("render stats", "faces_tested", st.FacesTested, "faces_skipped", st.FacesSkipped,
			"faces_drawn", st.FacesDrawn, "pixels", st.PixelsWritten)
	}
}

func (s *session) framebuffer() *render.Framebuffer {
	return s.renderer.Framebuffer()
}

// sceneArg returns the scene named on the command line, or orbit.
func sceneArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "orbit"
}
