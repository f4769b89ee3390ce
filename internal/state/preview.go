package state

import (
	"image/color"

	"LocalSketchpad/internal/paint"
)

// Preview styling. Previews are drawn translucent so they never read as ink.
const (
	PreviewAlpha     = 0.4
	previewRingWidth = 1
)

var previewColor = color.NRGBA{R: 96, G: 96, B: 96, A: 255}

// Preview is the hover hint for the active tool. Its Mode selects the
// variant: a ring sized to the marker thickness, or the sticker glyph.
type Preview struct {
	Mode      Mode
	Position  Point
	Thickness float64
	Glyph     string
	FontSize  float64
}

// NewPreview builds the preview the tool state shows at p.
func NewPreview(p Point, tool ToolState) *Preview {
	pv := &Preview{Mode: tool.Mode, Position: p}
	pv.apply(tool)
	return pv
}

// Retool copies the parameters of tool into the preview if tool has the
// same mode. It reports false when the preview no longer fits the tool.
func (pv *Preview) Retool(tool ToolState) bool {
	if pv.Mode != tool.Mode {
		return false
	}
	pv.apply(tool)
	return true
}

func (pv *Preview) apply(tool ToolState) {
	switch pv.Mode {
	case ModeMarker:
		pv.Thickness = tool.Thickness
	case ModeSticker:
		pv.Glyph = tool.Glyph
		pv.FontSize = tool.FontSize
	}
}

// Draw renders the preview. Callers wrap it in Save/Restore.
func (pv *Preview) Draw(s paint.Surface) {
	s.SetGlobalAlpha(PreviewAlpha)
	switch pv.Mode {
	case ModeMarker:
		s.SetLineWidth(previewRingWidth)
		s.SetStrokeColor(previewColor)
		s.StrokeCircle(pv.Position.X, pv.Position.Y, max(pv.Thickness/2, previewRingWidth))
	case ModeSticker:
		s.SetFont(pv.FontSize)
		s.SetFillColor(previewColor)
		s.FillText(pv.Glyph, pv.Position.X, pv.Position.Y)
	}
}
