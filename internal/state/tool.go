package state

import (
	"image/color"
	"slices"
)

// ToolState holds the parameters new commands and previews are built from.
type ToolState struct {
	Mode      Mode
	Thickness float64
	Color     color.Color
	Glyph     string
	FontSize  float64
}

func (t ToolState) equal(o ToolState) bool {
	return t.Mode == o.Mode &&
		t.Thickness == o.Thickness &&
		t.Glyph == o.Glyph &&
		t.FontSize == o.FontSize &&
		sameColor(t.Color, o.Color)
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

// ToolOptions bounds and seeds a Tools.
type ToolOptions struct {
	Thickness    float64
	MinThickness float64
	MaxThickness float64
	Color        color.Color
	Stickers     []string
	FontSize     float64
}

// Tools owns the active ToolState and the sticker palette, and notifies
// subscribers when either changes.
type Tools struct {
	state     ToolState
	min, max  float64
	stickers  []string
	listeners []func(ToolState)
}

func NewTools(opts ToolOptions) *Tools {
	if opts.MinThickness <= 0 {
		opts.MinThickness = 1
	}
	if opts.MaxThickness < opts.MinThickness {
		opts.MaxThickness = opts.MinThickness
	}
	if opts.Color == nil {
		opts.Color = color.Black
	}
	if opts.FontSize <= 0 {
		opts.FontSize = 32
	}
	t := &Tools{min: opts.MinThickness, max: opts.MaxThickness}
	for _, g := range opts.Stickers {
		t.addSticker(g)
	}
	t.state = ToolState{
		Mode:      ModeMarker,
		Thickness: t.clamp(opts.Thickness),
		Color:     opts.Color,
		FontSize:  opts.FontSize,
	}
	if len(t.stickers) > 0 {
		t.state.Glyph = t.stickers[0]
	}
	return t
}

// Subscribe registers fn to run after every tool change.
func (t *Tools) Subscribe(fn func(ToolState)) {
	t.listeners = append(t.listeners, fn)
}

func (t *Tools) State() ToolState {
	return t.state
}

// Stickers returns a copy of the sticker palette in insertion order.
func (t *Tools) Stickers() []string {
	return slices.Clone(t.stickers)
}

func (t *Tools) ThicknessRange() (float64, float64) {
	return t.min, t.max
}

// SelectMarker switches to the marker with the given thickness.
func (t *Tools) SelectMarker(thickness float64) {
	next := t.state
	next.Mode = ModeMarker
	next.Thickness = t.clamp(thickness)
	t.set(next)
}

// SetThickness changes the marker thickness without switching tools.
func (t *Tools) SetThickness(thickness float64) {
	next := t.state
	next.Thickness = t.clamp(thickness)
	t.set(next)
}

// SetColor changes the marker colour and switches to the marker.
func (t *Tools) SetColor(c color.Color) {
	if c == nil {
		return
	}
	next := t.state
	next.Mode = ModeMarker
	next.Color = c
	t.set(next)
}

// SelectSticker switches to the sticker tool with glyph. Selecting the
// already active glyph is a no-op.
func (t *Tools) SelectSticker(glyph string) {
	if glyph == "" {
		return
	}
	next := t.state
	next.Mode = ModeSticker
	next.Glyph = glyph
	t.set(next)
}

// AddSticker appends glyph to the palette and selects it. It reports
// whether the palette grew; known glyphs are only selected.
func (t *Tools) AddSticker(glyph string) bool {
	added := t.addSticker(glyph)
	t.SelectSticker(glyph)
	return added
}

func (t *Tools) addSticker(glyph string) bool {
	if glyph == "" || slices.Contains(t.stickers, glyph) {
		return false
	}
	t.stickers = append(t.stickers, glyph)
	return true
}

func (t *Tools) clamp(v float64) float64 {
	return max(t.min, min(t.max, v))
}

func (t *Tools) set(next ToolState) {
	if next.equal(t.state) {
		return
	}
	t.state = next
	for _, fn := range t.listeners {
		fn(next)
	}
}
