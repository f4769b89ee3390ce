// Package sketch ties the drawing history, the tool state and the hover
// preview into one pad that consumes pointer and button events and renders
// frames.
package sketch

import (
	"image/color"

	"LocalSketchpad/internal/paint"
	"LocalSketchpad/internal/state"
)

// EventKind says what part of the pad changed.
type EventKind int

const (
	EventDrawing EventKind = iota
	EventTool
	EventPreview
)

func (k EventKind) String() string {
	switch k {
	case EventTool:
		return "tool"
	case EventPreview:
		return "preview"
	}
	return "drawing"
}

// Event is sent to subscribers after every mutation so the UI can redraw
// and refresh the undo/redo controls.
type Event struct {
	Kind    EventKind
	CanUndo bool
	CanRedo bool
}

// Pad is one independent sketchpad. It is driven from a single event loop
// and is not safe for concurrent use.
type Pad struct {
	width, height int

	history   *state.History
	tools     *state.Tools
	preview   *state.Preview
	listeners []func(Event)
}

// New creates a pad for a width×height canvas using tools for new
// commands and previews.
func New(width, height int, tools *state.Tools) *Pad {
	p := &Pad{
		width:   width,
		height:  height,
		history: state.NewHistory(),
		tools:   tools,
	}
	p.history.Subscribe(func(state.Change) {
		p.emit(EventDrawing)
	})
	tools.Subscribe(p.toolChanged)
	return p
}

// Subscribe registers fn to run after every mutation.
func (p *Pad) Subscribe(fn func(Event)) {
	p.listeners = append(p.listeners, fn)
}

func (p *Pad) Size() (int, int)        { return p.width, p.height }
func (p *Pad) History() *state.History { return p.history }
func (p *Pad) Tools() *state.Tools     { return p.tools }
func (p *Pad) Preview() *state.Preview { return p.preview }
func (p *Pad) CanUndo() bool           { return p.history.CanUndo() }
func (p *Pad) CanRedo() bool           { return p.history.CanRedo() }
func (p *Pad) Drawing() bool           { return p.history.Drawing() }

// Commands returns deep copies of the committed commands, oldest first.
func (p *Pad) Commands() []*state.Command {
	cmds := p.history.Committed()
	for i, c := range cmds {
		cmds[i] = c.Clone()
	}
	return cmds
}

// PointerDown starts a new command from the current tool state.
func (p *Pad) PointerDown(pt state.Point) {
	p.preview = nil
	p.history.Begin(state.NewCommand(pt, p.tools.State()))
}

// PointerMove extends the live command while drawing and otherwise
// replaces the hover preview.
func (p *Pad) PointerMove(pt state.Point) {
	if p.history.Drawing() {
		p.history.Extend(pt)
		return
	}
	p.preview = state.NewPreview(pt, p.tools.State())
	p.emit(EventPreview)
}

// PointerUp seals the live command.
func (p *Pad) PointerUp() {
	p.history.Seal()
}

// PointerLeave seals the live command and drops the preview. The preview
// comes back with the next move, not on re-entry.
func (p *Pad) PointerLeave() {
	p.history.Seal()
	if p.preview != nil {
		p.preview = nil
		p.emit(EventPreview)
	}
}

func (p *Pad) Undo()  { p.history.Undo() }
func (p *Pad) Redo()  { p.history.Redo() }
func (p *Pad) Clear() { p.history.Clear() }

// SelectMarker, SetThickness, SetColor, SelectSticker and AddSticker
// change the tool state; the preview follows through toolChanged.

func (p *Pad) SelectMarker(thickness float64) { p.tools.SelectMarker(thickness) }
func (p *Pad) SetThickness(thickness float64) { p.tools.SetThickness(thickness) }
func (p *Pad) SetColor(c color.Color)         { p.tools.SetColor(c) }
func (p *Pad) SelectSticker(glyph string)     { p.tools.SelectSticker(glyph) }
func (p *Pad) AddSticker(glyph string) bool   { return p.tools.AddSticker(glyph) }

func (p *Pad) toolChanged(st state.ToolState) {
	if p.preview != nil && !p.preview.Retool(st) {
		p.preview = nil
	}
	p.emit(EventTool)
}

// Render draws a full frame: background, every committed command oldest
// first, then the preview when not drawing.
func (p *Pad) Render(s paint.Surface) {
	s.Clear()
	for _, cmd := range p.history.Committed() {
		cmd.Display(s)
	}
	if p.history.Drawing() || p.preview == nil {
		return
	}
	s.Save()
	p.preview.Draw(s)
	s.Restore()
}

// RenderSealed draws the sealed commands only, with no preview and no
// command in progress.
func (p *Pad) RenderSealed(s paint.Surface) {
	s.Clear()
	for _, cmd := range p.history.Sealed() {
		cmd.Display(s)
	}
}

func (p *Pad) emit(kind EventKind) {
	ev := Event{
		Kind:    kind,
		CanUndo: p.history.CanUndo(),
		CanRedo: p.history.CanRedo(),
	}
	for _, fn := range p.listeners {
		fn(ev)
	}
}
