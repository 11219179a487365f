package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

// ErrUnsupportedFormat is returned for image extensions with no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format is a still image encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
	FormatTGA  Format = "tga"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch Format(ext) {
	case FormatPNG, FormatWebP, FormatTGA:
		return Format(ext), nil
	}
	return "", fmt.Errorf("%q: %w", filepath.Ext(path), ErrUnsupportedFormat)
}

// Upscale enlarges img by an integer factor with nearest-neighbor sampling
// so each LED pixel stays a crisp square. Factors below 2 return img as is.
func Upscale(img image.Image, factor int) image.Image {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatWebP:
		err = nativewebp.Encode(w, img, nil)
	case FormatTGA:
		err = tga.Encode(w, img)
	default:
		return fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}

// SaveImage writes img to path, choosing the format from its extension.
func SaveImage(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return saveWith(path, func(w io.Writer) error {
		return Encode(w, img, format)
	})
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	return saveWith(path, func(w io.Writer) error {
		return Encode(w, fb.ToImage(), FormatPNG)
	})
}

// SaveWebP saves the framebuffer as a lossless WebP file.
func (fb *Framebuffer) SaveWebP(path string) error {
	return saveWith(path, func(w io.Writer) error {
		return Encode(w, fb.ToImage(), FormatWebP)
	})
}

// SaveTGA saves the framebuffer as an uncompressed TGA file.
func (fb *Framebuffer) SaveTGA(path string) error {
	return saveWith(path, func(w io.Writer) error {
		return Encode(w, fb.ToImage(), FormatTGA)
	})
}

// EncodeWebPAnimation writes frames as a looping animated WebP with a fixed
// delay per frame.
func EncodeWebPAnimation(w io.Writer, frames []image.Image, delay time.Duration) error {
	if len(frames) == 0 {
		return errors.New("encode animation: no frames")
	}
	ms := uint(max(delay.Milliseconds(), 1))
	ani := &nativewebp.Animation{
		Images:    frames,
		Durations: make([]uint, len(frames)),
		Disposals: make([]uint, len(frames)),
	}
	for i := range frames {
		ani.Durations[i] = ms
	}
	if err := nativewebp.EncodeAll(w, ani, nil); err != nil {
		return fmt.Errorf("encode animation: %w", err)
	}
	return nil
}

// SaveWebPAnimation writes frames to path as an animated WebP.
func SaveWebPAnimation(path string, frames []image.Image, delay time.Duration) error {
	return saveWith(path, func(w io.Writer) error {
		return EncodeWebPAnimation(w, frames, delay)
	})
}

func saveWith(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
