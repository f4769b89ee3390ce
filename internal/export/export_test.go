package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalSketchpad/internal/sketch"
	"LocalSketchpad/internal/state"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func newPad() *sketch.Pad {
	tools := state.NewTools(state.ToolOptions{
		Thickness:    4,
		MinThickness: 1,
		MaxThickness: 10,
		Color:        color.Black,
		Stickers:     []string{"A"},
		FontSize:     16,
	})
	return sketch.New(32, 24, tools)
}

func TestBitmapScalesCanvas(t *testing.T) {
	p := newPad()
	img, err := Bitmap(p, Options{Scale: 4})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 128, 96), img.Bounds())
	assert.Equal(t, white, img.RGBAAt(0, 0))
}

func TestBitmapRejectsBadScale(t *testing.T) {
	for _, s := range []float64{0, -2} {
		_, err := Bitmap(newPad(), Options{Scale: s})
		assert.ErrorIs(t, err, ErrInvalidScale)
	}
}

func TestBitmapDrawsSealedOnly(t *testing.T) {
	p := newPad()
	p.PointerDown(state.Point{X: 4, Y: 12})
	p.PointerMove(state.Point{X: 28, Y: 12})
	p.PointerUp()

	img, err := Bitmap(p, Options{Scale: 2})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(32, 24))

	// hover preview and a live command stay out of the export
	p.PointerMove(state.Point{X: 16, Y: 4})
	p.PointerDown(state.Point{X: 16, Y: 20})
	p.PointerMove(state.Point{X: 30, Y: 20})
	img, err = Bitmap(p, Options{Scale: 2})
	require.NoError(t, err)
	assert.Equal(t, white, img.RGBAAt(46, 40))
}

func TestBitmapBackground(t *testing.T) {
	bg := color.NRGBA{R: 1, G: 2, B: 3, A: 255}
	img, err := Bitmap(newPad(), Options{Scale: 1, Background: bg})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 255}, img.RGBAAt(5, 5))
}

func TestPNG(t *testing.T) {
	p := newPad()
	p.PointerDown(state.Point{X: 10, Y: 10})
	p.PointerUp()

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, p, Options{Scale: 4}))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 128, 96), img.Bounds())

	r, g, b, _ := img.At(40, 40).RGBA()
	assert.Zero(t, r|g|b, "single click leaves a dot")
}

func TestPDF(t *testing.T) {
	p := newPad()
	p.PointerDown(state.Point{X: 10, Y: 10})
	p.PointerMove(state.Point{X: 20, Y: 15})
	p.PointerUp()

	var buf bytes.Buffer
	require.NoError(t, PDF(&buf, p, Options{Scale: 2}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	assert.ErrorIs(t, PDF(&bytes.Buffer{}, p, Options{}), ErrInvalidScale)
}
