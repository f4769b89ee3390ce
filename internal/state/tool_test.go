package state

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestTools() *Tools {
	return NewTools(ToolOptions{
		Thickness:    2,
		MinThickness: 1,
		MaxThickness: 20,
		Color:        color.Black,
		Stickers:     []string{"A", "B", "A", ""},
		FontSize:     28,
	})
}

func TestNewToolsDefaults(t *testing.T) {
	tools := newTestTools()
	st := tools.State()
	assert.Equal(t, ModeMarker, st.Mode)
	assert.Equal(t, 2.0, st.Thickness)
	assert.Equal(t, "A", st.Glyph)
	assert.Equal(t, 28.0, st.FontSize)
	assert.Equal(t, []string{"A", "B"}, tools.Stickers())

	lo, hi := tools.ThicknessRange()
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 20.0, hi)
}

func TestToolsClampThickness(t *testing.T) {
	tools := newTestTools()
	tools.SetThickness(100)
	assert.Equal(t, 20.0, tools.State().Thickness)
	tools.SelectMarker(-3)
	assert.Equal(t, 1.0, tools.State().Thickness)
}

func TestToolsNotifyOnlyOnChange(t *testing.T) {
	tools := newTestTools()
	var seen []ToolState
	tools.Subscribe(func(s ToolState) { seen = append(seen, s) })

	tools.SelectSticker("B")
	tools.SelectSticker("B")
	tools.SelectSticker("")
	tools.SetColor(color.NRGBA{A: 255})
	tools.SetColor(nil)

	assert.Len(t, seen, 2)
	assert.Equal(t, ModeSticker, seen[0].Mode)
	assert.Equal(t, "B", seen[0].Glyph)
	assert.Equal(t, ModeMarker, seen[1].Mode)
}

func TestToolsAddSticker(t *testing.T) {
	tools := newTestTools()
	assert.True(t, tools.AddSticker("C"))
	assert.False(t, tools.AddSticker("C"))
	assert.False(t, tools.AddSticker(""))
	assert.Equal(t, []string{"A", "B", "C"}, tools.Stickers())
	assert.Equal(t, ModeSticker, tools.State().Mode)
	assert.Equal(t, "C", tools.State().Glyph)
}

func TestSameColor(t *testing.T) {
	assert.True(t, sameColor(color.Black, color.NRGBA{A: 255}))
	assert.False(t, sameColor(color.Black, color.White))
	assert.False(t, sameColor(nil, color.White))
	assert.True(t, sameColor(nil, nil))
}
