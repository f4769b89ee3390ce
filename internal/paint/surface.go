// Package paint defines the drawing surface the sketchpad renders onto.
//
// Surface mirrors a canvas 2D context: attributes are sticky until changed
// or until Restore pops a Save. Callers that need a clean slate for an
// attribute must set it themselves.
package paint

import "image/color"

// LineCap is the shape drawn at the open ends of a stroked path.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

func (c LineCap) String() string {
	switch c {
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	}
	return "butt"
}

// Surface receives the draw calls produced by display commands and tool
// previews. Coordinates are canvas-local pixels, origin top-left.
type Surface interface {
	// Clear paints the whole surface with its background.
	Clear()

	// Save pushes the current attribute set; Restore pops it.
	Save()
	Restore()

	SetLineWidth(w float64)
	SetLineCap(c LineCap)
	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	// SetGlobalAlpha scales the alpha of everything drawn afterwards.
	SetGlobalAlpha(a float64)
	// SetFont sets the pixel size used by FillText.
	SetFont(size float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Stroke strokes the current path with the line attributes.
	Stroke()

	// StrokeCircle strokes a circle outline centred on (x, y).
	StrokeCircle(x, y, r float64)
	// FillText draws text centred horizontally and vertically on (x, y).
	FillText(text string, x, y float64)
}
