// Package config loads the LED matrix geometry and renderer parameters from
// a JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/render"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full configuration file.
type Config struct {
	Matrix   MatrixOptions   `json:"matrix_options"`
	Renderer RendererOptions `json:"renderer_options"`
}

// MatrixOptions describes the panel chain the frames are sized for.
type MatrixOptions struct {
	Rows              int    `json:"rows"`
	Cols              int    `json:"cols"`
	ChainLength       int    `json:"chain_length"`
	Parallel          int    `json:"parallel"`
	Brightness        int    `json:"brightness"`
	HardwareMapping   string `json:"hardware_mapping"`
	PixelMapperConfig string `json:"pixel_mapper_config"`
}

// RendererOptions holds the animation and shading parameters.
type RendererOptions struct {
	NumCubes                   int     `json:"num_cubes"`
	CubeSize                   float64 `json:"cube_size"`
	RotationSpeedX             float64 `json:"rotation_speed_x"`
	RotationSpeedY             float64 `json:"rotation_speed_y"`
	RotationSpeedZ             float64 `json:"rotation_speed_z"`
	PositionAnimationSpeed     float64 `json:"position_animation_speed"`
	PositionAnimationAmplitude float64 `json:"position_animation_amplitude"`
	LightR                     int     `json:"light_r"`
	LightG                     int     `json:"light_g"`
	LightB                     int     `json:"light_b"`
	ShadowR                    int     `json:"shadow_r"`
	ShadowG                    int     `json:"shadow_g"`
	ShadowB                    int     `json:"shadow_b"`
	LightDirX                  float64 `json:"light_dir_x"`
	LightDirY                  float64 `json:"light_dir_y"`
	LightDirZ                  float64 `json:"light_dir_z"`
	FocalLength                float64 `json:"focal_length"`
	FrameRateMs                int     `json:"frame_rate_ms"`
}

// Default returns the built-in configuration: one 32x32 panel and three
// slowly spinning cubes under a warm light.
func Default() Config {
	return Config{
		Matrix: MatrixOptions{
			Rows:            32,
			Cols:            32,
			ChainLength:     1,
			Parallel:        1,
			Brightness:      100,
			HardwareMapping: "regular",
		},
		Renderer: RendererOptions{
			NumCubes:                   3,
			CubeSize:                   2.5,
			RotationSpeedX:             0.7,
			RotationSpeedY:             0.5,
			RotationSpeedZ:             0.3,
			PositionAnimationSpeed:     0.5,
			PositionAnimationAmplitude: 2.0,
			LightR:                     255,
			LightG:                     255,
			LightB:                     200,
			ShadowR:                    100,
			ShadowG:                    100,
			ShadowB:                    100,
			LightDirX:                  0.8,
			LightDirY:                  0.6,
			LightDirZ:                  1.0,
			FocalLength:                render.DefaultFocal,
			FrameRateMs:                33,
		},
	}
}

// Load reads a JSON config file over the defaults. Keys missing from the
// file keep their default values. A missing file is returned as an error
// wrapping fs.ErrNotExist.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}

	logger().Debug("config loaded", "path", path,
		"rows", cfg.Matrix.Rows, "cols", cfg.Matrix.Cols, "chain", cfg.Matrix.ChainLength)
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values leave the file value alone.
type Flags struct {
	Rows     int
	Cols     int
	NumCubes int
	FrameMs  int
	Focal    float64
}

// Resolve layers non-zero flags over the loaded values.
func (c *Config) Resolve(flags Flags) {
	if flags.Rows > 0 {
		c.Matrix.Rows = flags.Rows
	}
	if flags.Cols > 0 {
		c.Matrix.Cols = flags.Cols
	}
	if flags.NumCubes > 0 {
		c.Renderer.NumCubes = flags.NumCubes
	}
	if flags.FrameMs > 0 {
		c.Renderer.FrameRateMs = flags.FrameMs
	}
	if flags.Focal > 0 {
		c.Renderer.FocalLength = flags.Focal
	}
}

// Validate reports every problem found, joined, each wrapping ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
	}

	m := c.Matrix
	if m.Rows <= 0 {
		bad("rows must be positive, got %d", m.Rows)
	}
	if m.Cols <= 0 {
		bad("cols must be positive, got %d", m.Cols)
	}
	if m.ChainLength <= 0 {
		bad("chain_length must be positive, got %d", m.ChainLength)
	}
	if m.Parallel <= 0 {
		bad("parallel must be positive, got %d", m.Parallel)
	}
	if m.Brightness < 0 || m.Brightness > 100 {
		bad("brightness must be within 0..100, got %d", m.Brightness)
	}

	r := c.Renderer
	if r.NumCubes < 0 {
		bad("num_cubes must not be negative, got %d", r.NumCubes)
	}
	if r.CubeSize <= 0 {
		bad("cube_size must be positive, got %v", r.CubeSize)
	}
	if r.FocalLength <= 0 {
		bad("focal_length must be positive, got %v", r.FocalLength)
	}
	if r.FrameRateMs <= 0 {
		bad("frame_rate_ms must be positive, got %d", r.FrameRateMs)
	}
	channels := []struct {
		name string
		v    int
	}{
		{"light_r", r.LightR}, {"light_g", r.LightG}, {"light_b", r.LightB},
		{"shadow_r", r.ShadowR}, {"shadow_g", r.ShadowG}, {"shadow_b", r.ShadowB},
	}
	for _, ch := range channels {
		if ch.v < 0 || ch.v > 255 {
			bad("%s must be within 0..255, got %d", ch.name, ch.v)
		}
	}

	return errors.Join(errs...)
}

// DisplaySize returns the pixel size of the assembled panel chain. A
// U-mapper folds the chain: square chains become sqrt x sqrt, others use
// two columns' worth of panels per row band.
func (m MatrixOptions) DisplaySize() (width, height int) {
	colsMul := m.ChainLength
	rowsMul := m.Parallel

	mapper := m.PixelMapperConfig
	if strings.Contains(mapper, "U-mapper") || strings.Contains(mapper, "u-mapper") {
		root := int(math.Sqrt(float64(m.ChainLength)))
		if root*root == m.ChainLength {
			colsMul = root
			rowsMul *= root
		} else {
			colsMul = (m.ChainLength + 1) / 2
			rowsMul *= (m.ChainLength + colsMul - 1) / colsMul
		}
	}

	return m.Cols * colsMul, m.Rows * rowsMul
}

// DisplaySize is shorthand for c.Matrix.DisplaySize.
func (c Config) DisplaySize() (width, height int) {
	return c.Matrix.DisplaySize()
}

// LightColor returns the lit end of the shading ramp.
func (r RendererOptions) LightColor() render.RGB {
	return render.RGB{R: channel(r.LightR), G: channel(r.LightG), B: channel(r.LightB)}
}

// ShadowColor returns the dark end of the shading ramp.
func (r RendererOptions) ShadowColor() render.RGB {
	return render.RGB{R: channel(r.ShadowR), G: channel(r.ShadowG), B: channel(r.ShadowB)}
}

// LightDirection returns the normalized light direction.
func (r RendererOptions) LightDirection() math3d.Vec3 {
	return math3d.V3(r.LightDirX, r.LightDirY, r.LightDirZ).Normalize()
}

// FrameInterval returns the delay between frames.
func (r RendererOptions) FrameInterval() time.Duration {
	return time.Duration(r.FrameRateMs) * time.Millisecond
}

// Light returns the renderer light described by the options.
func (r RendererOptions) Light() render.Light {
	return render.Light{
		Direction: r.LightDirection(),
		Shadow:    r.ShadowColor(),
		Lit:       r.LightColor(),
	}
}

// Apply configures a renderer's focal length and light.
func (r RendererOptions) Apply(rn *render.Renderer) {
	rn.Focal = r.FocalLength
	rn.Light = r.Light()
}

func channel(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}
