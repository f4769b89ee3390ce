package state

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalSketchpad/internal/paint"
)

func TestMarkerPreviewDrawsRing(t *testing.T) {
	pv := NewPreview(Point{10, 12}, ToolState{Mode: ModeMarker, Thickness: 8, Color: color.Black})
	rec := paint.NewRecorder()
	pv.Draw(rec)

	require.Equal(t, 1, rec.Count("StrokeCircle"))
	assert.Equal(t, []float64{10, 12, 4}, rec.Find("StrokeCircle")[0].Args)
	assert.Equal(t, []float64{PreviewAlpha}, rec.Find("SetGlobalAlpha")[0].Args)
	assert.Zero(t, rec.Count("Stroke"))
}

func TestMarkerPreviewMinimumRadius(t *testing.T) {
	pv := NewPreview(Point{}, ToolState{Mode: ModeMarker, Thickness: 0.5})
	rec := paint.NewRecorder()
	pv.Draw(rec)
	assert.Equal(t, float64(previewRingWidth), rec.Find("StrokeCircle")[0].Args[2])
}

func TestStickerPreviewDrawsGlyph(t *testing.T) {
	pv := NewPreview(Point{3, 4}, ToolState{Mode: ModeSticker, Glyph: "#", FontSize: 30})
	rec := paint.NewRecorder()
	pv.Draw(rec)

	text := rec.Find("FillText")
	require.Len(t, text, 1)
	assert.Equal(t, "#", text[0].Text)
	assert.Equal(t, []float64{3, 4}, text[0].Args)
}

func TestPreviewRetool(t *testing.T) {
	pv := NewPreview(Point{}, ToolState{Mode: ModeMarker, Thickness: 2})
	assert.True(t, pv.Retool(ToolState{Mode: ModeMarker, Thickness: 9}))
	assert.Equal(t, 9.0, pv.Thickness)

	assert.False(t, pv.Retool(ToolState{Mode: ModeSticker, Glyph: "x"}))
	assert.Equal(t, ModeMarker, pv.Mode)
	assert.Empty(t, pv.Glyph)
}
