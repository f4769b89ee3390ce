package state

import "fmt"

// Point is a position in canvas-local pixels, origin top-left. Points off
// the drawing surface are valid; drags may leave the canvas.
type Point struct{ X, Y float64 }

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Mode is the active tool.
type Mode int

const (
	ModeMarker Mode = iota
	ModeSticker
)

func (m Mode) String() string {
	if m == ModeSticker {
		return "sticker"
	}
	return "marker"
}

// ChangeKind says which History operation produced a Change.
type ChangeKind string

const (
	ChangeBegin  ChangeKind = "begin"
	ChangeExtend ChangeKind = "extend"
	ChangeSeal   ChangeKind = "seal"
	ChangeUndo   ChangeKind = "undo"
	ChangeRedo   ChangeKind = "redo"
	ChangeClear  ChangeKind = "clear"
)

// Change is delivered to History subscribers after every effective
// mutation. No-op calls produce no Change.
type Change struct {
	Kind    ChangeKind
	Command *Command // nil for clear
	CanUndo bool
	CanRedo bool
}
