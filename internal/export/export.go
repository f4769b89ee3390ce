// Package export renders the sealed drawing onto an offscreen bitmap and
// encodes it for download.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"

	"LocalSketchpad/internal/paint"
)

var ErrInvalidScale = errors.New("export scale must be positive")

// Source is what an export draws. sketch.Pad satisfies it.
type Source interface {
	Size() (int, int)
	RenderSealed(paint.Surface)
}

type Options struct {
	Scale      float64
	Background color.Color
}

// Bitmap replays the sealed commands onto a new image Scale times the
// canvas size. Previews and a command still being drawn are left out.
func Bitmap(src Source, opts Options) (*image.RGBA, error) {
	if opts.Scale <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidScale, opts.Scale)
	}
	w, h := src.Size()
	b := paint.NewBitmap(w, h, opts.Scale)
	if opts.Background != nil {
		b.Background = opts.Background
	}
	src.RenderSealed(b)
	return b.Image(), nil
}

// PNG writes the exported bitmap as PNG.
func PNG(w io.Writer, src Source, opts Options) error {
	img, err := Bitmap(src, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	log.Printf("[EXPORT] Wrote %dx%d PNG", img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}
