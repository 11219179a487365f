package main

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"

	"github.com/taigrr/facet/pkg/scene"
)

func newPlayCmd(opts *options) *cobra.Command {
	var wireframe bool
	cmd := &cobra.Command{
		Use:   "play [scene]",
		Short: "Play a scene in the terminal",
		Long: `Play a scene in the terminal using half-block cells, two pixels per cell.

Controls:
  Q/Esc   - Quit
  Space   - Pause
  W       - Toggle wireframe`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: scene.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession(sceneArg(args))
			if err != nil {
				return err
			}
			if wireframe {
				s.mode = scene.ModeWireframe
			}
			return play(cmd.Context(), s)
		},
	}
	cmd.Flags().BoolVar(&wireframe, "wireframe", false, "Start in wireframe mode")
	return cmd
}

func play(ctx context.Context, s *session) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var paused, wireframe atomic.Bool
	wireframe.Store(s.mode == scene.ModeWireframe)

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				term.Erase()
				term.Resize(ev.Width, ev.Height)
			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("q", "escape", "ctrl+c"):
					cancel()
					return
				case ev.MatchString("space"):
					paused.Store(!paused.Load())
				case ev.MatchString("w"):
					wireframe.Store(!wireframe.Load())
				}
			}
		}
	}()

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	targetDuration := s.cfg.Renderer.FrameInterval()
	fb := s.framebuffer()

	for {
		select {
		case <-ctx.Done():
			cleanup()
			s.log.Info("stopped", "frames", s.frames)
			return nil
		default:
		}

		now := time.Now()

		s.mode = scene.ModeSolid
		if wireframe.Load() {
			s.mode = scene.ModeWireframe
		}
		if !paused.Load() {
			s.step()
		}

		term.Draw(fb)
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		if elapsed := time.Since(now); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
