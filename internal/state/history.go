package state

import (
	"log"
	"slices"
)

// History is the drawing timeline: the committed commands, oldest first,
// and a LIFO buffer of undone commands. Every command lives in exactly one
// of the two.
//
// The command being dragged is the tail of the committed list and is also
// held in a separate live slot; only the live command accepts Extend.
//
// History is not safe for concurrent use. All operations are total: calls
// with nothing to act on are no-ops and emit no Change.
type History struct {
	committed []*Command
	redo      []*Command // top of stack is the last element
	live      *Command
	listeners []func(Change)
}

func NewHistory() *History {
	return &History{}
}

// Subscribe registers fn to run after every effective mutation.
func (h *History) Subscribe(fn func(Change)) {
	h.listeners = append(h.listeners, fn)
}

// Begin appends cmd and makes it the live command. Any undone commands are
// discarded for good.
func (h *History) Begin(cmd *Command) {
	if cmd == nil {
		return
	}
	h.committed = append(h.committed, cmd)
	h.redo = nil
	h.live = cmd
	h.notify(ChangeBegin, cmd)
}

// Extend forwards a drag sample to the live command, if any.
func (h *History) Extend(p Point) {
	if h.live == nil {
		return
	}
	h.live.Extend(p)
	h.notify(ChangeExtend, h.live)
}

// Seal ends the live command's mutability window. The command stays where
// it is.
func (h *History) Seal() {
	if h.live == nil {
		return
	}
	cmd := h.live
	h.live = nil
	h.notify(ChangeSeal, cmd)
}

// Undo moves the newest committed command onto the redo buffer. A live
// command is sealed first.
func (h *History) Undo() {
	n := len(h.committed)
	if n == 0 {
		return
	}
	h.live = nil
	cmd := h.committed[n-1]
	h.committed[n-1] = nil
	h.committed = h.committed[:n-1]
	h.redo = append(h.redo, cmd)
	h.notify(ChangeUndo, cmd)
}

// Redo moves the most recently undone command back to the end of the
// committed list.
func (h *History) Redo() {
	n := len(h.redo)
	if n == 0 {
		return
	}
	h.live = nil
	cmd := h.redo[n-1]
	h.redo[n-1] = nil
	h.redo = h.redo[:n-1]
	h.committed = append(h.committed, cmd)
	h.notify(ChangeRedo, cmd)
}

// Clear drops every committed and undone command.
func (h *History) Clear() {
	log.Printf("[HISTORY] Clearing %d committed and %d undone commands", len(h.committed), len(h.redo))
	h.committed = nil
	h.redo = nil
	h.live = nil
	h.notify(ChangeClear, nil)
}

func (h *History) CanUndo() bool { return len(h.committed) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Drawing reports whether a command is live.
func (h *History) Drawing() bool { return h.live != nil }

// Live returns the live command or nil.
func (h *History) Live() *Command { return h.live }

// Committed returns the committed commands, oldest first, including a live
// command at the tail.
func (h *History) Committed() []*Command {
	return slices.Clone(h.committed)
}

// Sealed returns the committed commands without the live one.
func (h *History) Sealed() []*Command {
	if h.live != nil {
		return slices.Clone(h.committed[:len(h.committed)-1])
	}
	return slices.Clone(h.committed)
}

// Undone returns the redo buffer, next-to-redo first.
func (h *History) Undone() []*Command {
	out := slices.Clone(h.redo)
	slices.Reverse(out)
	return out
}

func (h *History) notify(kind ChangeKind, cmd *Command) {
	if len(h.listeners) == 0 {
		return
	}
	ch := Change{
		Kind:    kind,
		Command: cmd,
		CanUndo: h.CanUndo(),
		CanRedo: h.CanRedo(),
	}
	for _, fn := range h.listeners {
		fn(ch)
	}
}
