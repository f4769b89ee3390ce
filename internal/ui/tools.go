package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalSketchpad/internal/config"
	"LocalSketchpad/internal/sketch"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar holds the tool and history controls for one board.
type Toolbar struct {
	board *BoardWidget
	pad   *sketch.Pad
	win   fyne.Window

	thin, thick *widget.Button
	slider      *widget.Slider
	stickers    *fyne.Container
	entry       *widget.Entry
	undo, redo  *widget.Button
	clear       *widget.Button

	object fyne.CanvasObject
}

// NewToolbar builds the controls. win is used as the parent of the export
// dialogs and may be nil in tests.
func NewToolbar(board *BoardWidget, cfg config.Config, win fyne.Window) *Toolbar {
	pad := board.Pad()
	t := &Toolbar{board: board, pad: pad, win: win}

	// --- Markers ---
	t.thin = widget.NewButton("Thin", func() { pad.SelectMarker(cfg.Marker.Thin) })
	t.thick = widget.NewButton("Thick", func() { pad.SelectMarker(cfg.Marker.Thick) })

	lo, hi := pad.Tools().ThicknessRange()
	t.slider = widget.NewSlider(lo, hi)
	t.slider.Step = 0.5
	t.slider.SetValue(pad.Tools().State().Thickness)
	t.slider.OnChanged = func(v float64) {
		pad.SetThickness(v)
	}
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), t.slider)

	// --- Color Palette ---
	colorBox := container.NewHBox()
	for _, c := range cfg.Palette() {
		colorBox.Add(newColorSwatch(c, func(c color.Color) { pad.SetColor(c) }))
	}

	// --- Stickers ---
	t.stickers = container.NewHBox()
	for _, g := range pad.Tools().Stickers() {
		t.stickers.Add(t.stickerButton(g))
	}
	t.entry = widget.NewEntry()
	t.entry.SetPlaceHolder("Custom sticker")
	t.entry.OnSubmitted = func(string) { t.addCustomSticker() }
	entryBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), t.entry)
	addSticker := widget.NewButtonWithIcon("", theme.ContentAddIcon(), t.addCustomSticker)

	// --- History ---
	t.undo = widget.NewButtonWithIcon("", theme.ContentUndoIcon(), pad.Undo)
	t.redo = widget.NewButtonWithIcon("", theme.ContentRedoIcon(), pad.Redo)
	t.clear = widget.NewButtonWithIcon("", theme.DeleteIcon(), pad.Clear)

	// --- Export ---
	exportPNG := widget.NewButtonWithIcon("PNG", theme.DocumentSaveIcon(), func() { t.export(FormatPNG) })
	exportPDF := widget.NewButtonWithIcon("PDF", theme.DocumentSaveIcon(), func() { t.export(FormatPDF) })

	t.object = container.NewVBox(
		container.NewHBox(
			widget.NewLabel("Marker:"), t.thin, t.thick, sliderBox,
			widget.NewSeparator(),
			colorBox,
			layout.NewSpacer(),
			t.undo, t.redo, t.clear,
		),
		container.NewHBox(
			widget.NewLabel("Stickers:"), t.stickers, entryBox, addSticker,
			layout.NewSpacer(),
			exportPNG, exportPDF,
		),
	)

	pad.Subscribe(t.refresh)
	t.refresh(sketch.Event{CanUndo: pad.CanUndo(), CanRedo: pad.CanRedo()})
	return t
}

func (t *Toolbar) Object() fyne.CanvasObject { return t.object }

func (t *Toolbar) stickerButton(glyph string) *widget.Button {
	return widget.NewButton(glyph, func() { t.pad.SelectSticker(glyph) })
}

func (t *Toolbar) addCustomSticker() {
	glyph := t.entry.Text
	if glyph == "" {
		return
	}
	if t.pad.AddSticker(glyph) {
		t.stickers.Add(t.stickerButton(glyph))
	}
	t.entry.SetText("")
}

// refresh keeps the history buttons and slider in step with the pad.
func (t *Toolbar) refresh(ev sketch.Event) {
	setEnabled(t.undo, ev.CanUndo)
	setEnabled(t.redo, ev.CanRedo)
	setEnabled(t.clear, ev.CanUndo || ev.CanRedo)
	if ev.Kind == sketch.EventTool {
		if v := t.pad.Tools().State().Thickness; t.slider.Value != v {
			t.slider.Value = v
			t.slider.Refresh()
		}
	}
}

func setEnabled(b *widget.Button, on bool) {
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}

func (t *Toolbar) export(format ExportFormat) {
	if t.win == nil {
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			log.Printf("[UI] Export dialog error: %v", err)
			t.board.SetStatus("Export cancelled")
			return
		}
		if writer == nil {
			return
		}
		t.board.ExportToFile(writer, format)
	}, t.win)
	d.SetFileName("sketch" + format.Extension())
	d.Show()
}
