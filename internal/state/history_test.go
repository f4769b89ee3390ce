package state

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stroke(points ...Point) *Command {
	c := NewStroke(points[0], 2, color.Black)
	for _, p := range points[1:] {
		c.Extend(p)
	}
	return c
}

func draw(h *History, points ...Point) *Command {
	c := NewStroke(points[0], 2, color.Black)
	h.Begin(c)
	for _, p := range points[1:] {
		h.Extend(p)
	}
	h.Seal()
	return c
}

func TestHistoryStrokeUndoStickerScenario(t *testing.T) {
	h := NewHistory()
	s := draw(h, Point{10, 10}, Point{20, 20})

	require.Equal(t, []*Command{s}, h.Committed())
	assert.Equal(t, []Point{{10, 10}, {20, 20}}, s.Stroke.Points)

	h.Undo()
	assert.Empty(t, h.Committed())
	assert.Equal(t, []*Command{s}, h.Undone())

	sticker := NewSticker(Point{5, 5}, "*", 32)
	h.Begin(sticker)
	h.Seal()
	assert.Empty(t, h.Undone())
	assert.Equal(t, []*Command{sticker}, h.Committed())
	assert.Equal(t, Point{5, 5}, sticker.Sticker.Position)

	h.Redo()
	assert.Equal(t, []*Command{sticker}, h.Committed())
	assert.False(t, h.CanRedo())
}

func TestHistoryUndoTwiceRedoOnce(t *testing.T) {
	h := NewHistory()
	c1 := draw(h, Point{1, 1})
	c2 := draw(h, Point{2, 2})
	c3 := draw(h, Point{3, 3})

	h.Undo()
	h.Undo()
	assert.Equal(t, []*Command{c1}, h.Committed())
	assert.Equal(t, []*Command{c2, c3}, h.Undone())

	h.Redo()
	assert.Equal(t, []*Command{c1, c2}, h.Committed())
	assert.Equal(t, []*Command{c3}, h.Undone())
}

func TestHistoryUndoRedoInverse(t *testing.T) {
	h := NewHistory()
	var want []*Command
	for i := range 6 {
		f := float64(i)
		want = append(want, draw(h, Point{f, f}, Point{f + 1, f}))
	}

	for range want {
		h.Undo()
	}
	assert.Empty(t, h.Committed())
	for range want {
		h.Redo()
	}
	assert.Equal(t, want, h.Committed())
	assert.Empty(t, h.Undone())
}

func TestHistoryConservation(t *testing.T) {
	h := NewHistory()
	for i := range 4 {
		draw(h, Point{float64(i), 0})
	}
	total := func() int { return len(h.Committed()) + len(h.Undone()) }

	ops := []func(){h.Undo, h.Undo, h.Redo, h.Undo, h.Undo, h.Undo, h.Undo, h.Redo, h.Redo}
	for _, op := range ops {
		op()
		assert.Equal(t, 4, total())
	}
}

func TestHistoryBeginInvalidatesRedo(t *testing.T) {
	h := NewHistory()
	draw(h, Point{1, 1})
	draw(h, Point{2, 2})
	h.Undo()
	h.Undo()
	require.True(t, h.CanRedo())

	c := draw(h, Point{3, 3})
	assert.False(t, h.CanRedo())

	// undoing the new command does not bring the old ones back
	h.Undo()
	assert.Equal(t, []*Command{c}, h.Undone())
	h.Redo()
	h.Redo()
	assert.Equal(t, []*Command{c}, h.Committed())
}

func TestHistoryNoOps(t *testing.T) {
	h := NewHistory()
	var changes []Change
	h.Subscribe(func(c Change) { changes = append(changes, c) })

	h.Undo()
	h.Redo()
	h.Extend(Point{1, 1})
	h.Seal()
	assert.Empty(t, changes)
	assert.Empty(t, h.Committed())
	assert.Empty(t, h.Undone())
	assert.False(t, h.Drawing())

	c := draw(h, Point{1, 1})
	changes = nil
	h.Extend(Point{9, 9})
	h.Seal()
	assert.Empty(t, changes)
	assert.Equal(t, []Point{{1, 1}}, c.Stroke.Points)
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory()
	draw(h, Point{1, 1})
	draw(h, Point{2, 2})
	draw(h, Point{3, 3})
	h.Undo()
	require.True(t, h.CanUndo())
	require.True(t, h.CanRedo())

	h.Clear()
	assert.Empty(t, h.Committed())
	assert.Empty(t, h.Undone())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestHistoryLiveCommand(t *testing.T) {
	h := NewHistory()
	first := draw(h, Point{0, 0})

	c := NewStroke(Point{1, 1}, 3, color.Black)
	h.Begin(c)
	assert.True(t, h.Drawing())
	assert.Same(t, c, h.Live())
	assert.Equal(t, []*Command{first, c}, h.Committed())
	assert.Equal(t, []*Command{first}, h.Sealed())

	h.Seal()
	assert.Nil(t, h.Live())
	assert.Equal(t, []*Command{first, c}, h.Sealed())
}

func TestHistoryUndoWhileDrawingSeals(t *testing.T) {
	h := NewHistory()
	c := NewStroke(Point{1, 1}, 3, color.Black)
	h.Begin(c)
	h.Undo()
	assert.False(t, h.Drawing())

	h.Extend(Point{5, 5})
	assert.Equal(t, []Point{{1, 1}}, c.Stroke.Points)
}

func TestHistoryChanges(t *testing.T) {
	h := NewHistory()
	var kinds []ChangeKind
	var last Change
	h.Subscribe(func(c Change) {
		kinds = append(kinds, c.Kind)
		last = c
	})

	c := NewStroke(Point{1, 1}, 3, color.Black)
	h.Begin(c)
	h.Extend(Point{2, 2})
	h.Seal()
	h.Undo()
	assert.False(t, last.CanUndo)
	assert.True(t, last.CanRedo)
	assert.Same(t, c, last.Command)
	h.Redo()
	h.Clear()

	assert.Equal(t, []ChangeKind{ChangeBegin, ChangeExtend, ChangeSeal, ChangeUndo, ChangeRedo, ChangeClear}, kinds)
	assert.Nil(t, last.Command)
}

func TestHistoryBeginNil(t *testing.T) {
	h := NewHistory()
	draw(h, Point{1, 1})
	h.Undo()
	h.Begin(nil)
	assert.True(t, h.CanRedo())
}
