package state

import (
	"image/color"

	"LocalSketchpad/internal/paint"
)

// Kind discriminates the Command variants.
type Kind uint8

const (
	KindStroke Kind = iota + 1
	KindSticker
)

func (k Kind) String() string {
	switch k {
	case KindStroke:
		return "stroke"
	case KindSticker:
		return "sticker"
	}
	return "unknown"
}

// dotEpsilon is the length of the segment drawn for a single-point stroke,
// long enough for the line cap to be painted.
const dotEpsilon = 0.01

// Stroke is a freehand marker line. It always has at least one point.
type Stroke struct {
	Points    []Point
	Thickness float64
	Color     color.Color
}

// Sticker is a glyph anchored at a single point that drags move rather
// than extend.
type Sticker struct {
	Position Point
	Glyph    string
	FontSize float64
}

// Command is one recorded user action. Exactly one of Stroke and Sticker is
// set, selected by Kind. A command is mutable only while it is the live
// command of a History.
type Command struct {
	ID      string
	Kind    Kind
	Stroke  *Stroke
	Sticker *Sticker
}

// Visitor dispatches on the Command variant.
type Visitor interface {
	VisitStroke(*Stroke)
	VisitSticker(*Sticker)
}

func NewStroke(start Point, thickness float64, c color.Color) *Command {
	if thickness <= 0 {
		thickness = 1
	}
	if c == nil {
		c = color.Black
	}
	return &Command{
		ID:   nextID(),
		Kind: KindStroke,
		Stroke: &Stroke{
			Points:    []Point{start},
			Thickness: thickness,
			Color:     c,
		},
	}
}

func NewSticker(at Point, glyph string, fontSize float64) *Command {
	return &Command{
		ID:   nextID(),
		Kind: KindSticker,
		Sticker: &Sticker{
			Position: at,
			Glyph:    glyph,
			FontSize: fontSize,
		},
	}
}

// NewCommand builds the command the tool state draws when a drag starts at p.
func NewCommand(p Point, tool ToolState) *Command {
	if tool.Mode == ModeSticker {
		return NewSticker(p, tool.Glyph, tool.FontSize)
	}
	return NewStroke(p, tool.Thickness, tool.Color)
}

// Accept calls the visitor method matching the command's variant.
func (c *Command) Accept(v Visitor) {
	switch c.Kind {
	case KindStroke:
		v.VisitStroke(c.Stroke)
	case KindSticker:
		v.VisitSticker(c.Sticker)
	}
}

// Extend applies a drag sample: strokes append it, stickers move to it.
func (c *Command) Extend(p Point) {
	switch c.Kind {
	case KindStroke:
		c.Stroke.Points = append(c.Stroke.Points, p)
	case KindSticker:
		c.Sticker.Position = p
	}
}

// Display draws the command. It sets every attribute it relies on and does
// not modify the command.
func (c *Command) Display(s paint.Surface) {
	c.Accept(displayer{s})
}

// Clone returns a deep copy.
func (c *Command) Clone() *Command {
	out := &Command{ID: c.ID, Kind: c.Kind}
	switch c.Kind {
	case KindStroke:
		st := *c.Stroke
		st.Points = append([]Point(nil), c.Stroke.Points...)
		out.Stroke = &st
	case KindSticker:
		sk := *c.Sticker
		out.Sticker = &sk
	}
	return out
}

type displayer struct{ s paint.Surface }

func (d displayer) VisitStroke(st *Stroke) {
	if len(st.Points) == 0 {
		return
	}
	s := d.s
	s.SetLineWidth(st.Thickness)
	s.SetLineCap(paint.CapRound)
	s.SetStrokeColor(st.Color)
	s.BeginPath()
	first := st.Points[0]
	s.MoveTo(first.X, first.Y)
	if len(st.Points) == 1 {
		s.LineTo(first.X+dotEpsilon, first.Y)
	}
	for _, p := range st.Points[1:] {
		s.LineTo(p.X, p.Y)
	}
	s.Stroke()
}

func (d displayer) VisitSticker(sk *Sticker) {
	s := d.s
	s.SetFont(sk.FontSize)
	s.SetFillColor(color.Black)
	s.FillText(sk.Glyph, sk.Position.X, sk.Position.Y)
}
