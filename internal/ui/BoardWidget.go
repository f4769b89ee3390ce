package ui

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LocalSketchpad/internal/export"
	"LocalSketchpad/internal/paint"
	"LocalSketchpad/internal/sketch"
	"LocalSketchpad/internal/state"
)

// ExportFormat selects the encoder used by ExportToFile.
type ExportFormat int

const (
	FormatPNG ExportFormat = iota
	FormatPDF
)

func (f ExportFormat) Extension() string {
	if f == FormatPDF {
		return ".pdf"
	}
	return ".png"
}

// BoardWidget shows a sketch.Pad and feeds it pointer events.
type BoardWidget struct {
	widget.BaseWidget
	pad        *sketch.Pad
	raster     *canvas.Raster
	background color.Color
	exportOpts export.Options
	statusBar  *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(pad *sketch.Pad, background color.Color, exportScale float64) *BoardWidget {
	b := &BoardWidget{
		pad:        pad,
		background: background,
		exportOpts: export.Options{Scale: exportScale, Background: background},
		statusBar:  widget.NewLabel("Ready"),
	}
	b.raster = canvas.NewRaster(b.draw)
	w, h := pad.Size()
	b.raster.SetMinSize(fyne.NewSize(float32(w), float32(h)))
	pad.Subscribe(func(sketch.Event) {
		b.raster.Refresh()
	})
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Pad() *sketch.Pad { return b.pad }

func (b *BoardWidget) SetStatus(text string) {
	b.statusBar.SetText(text)
}

// draw renders a frame at the raster's pixel width. The raster stretches
// it over the widget.
func (b *BoardWidget) draw(w, _ int) image.Image {
	cw, ch := b.pad.Size()
	scale := 1.0
	if cw > 0 && w > 0 {
		scale = float64(w) / float64(cw)
	}
	bmp := paint.NewBitmap(cw, ch, scale)
	bmp.Background = b.background
	b.pad.Render(bmp)
	return bmp.Image()
}

// toCanvas maps a widget position to canvas coordinates.
func (b *BoardWidget) toCanvas(pos fyne.Position) state.Point {
	cw, ch := b.pad.Size()
	size := b.Size()
	x, y := float64(pos.X), float64(pos.Y)
	if size.Width > 0 && size.Height > 0 {
		x *= float64(cw) / float64(size.Width)
		y *= float64(ch) / float64(size.Height)
	}
	return state.Point{X: x, Y: y}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.pad.PointerDown(b.toCanvas(e.Position))
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.pad.PointerUp()
	}
}

// Dragged is delivered instead of MouseMoved while a button is held.
func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.pad.PointerMove(b.toCanvas(e.Position))
}

func (b *BoardWidget) DragEnd() {
	b.pad.PointerUp()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.pad.PointerMove(b.toCanvas(e.Position))
}

func (b *BoardWidget) MouseOut() {
	b.pad.PointerLeave()
}

// ExportToFile writes the sealed drawing to writer and closes it.
func (b *BoardWidget) ExportToFile(writer fyne.URIWriteCloser, format ExportFormat) {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("[UI] Error closing export writer: %v", err)
		}
	}()

	var err error
	switch format {
	case FormatPDF:
		err = export.PDF(writer, b.pad, b.exportOpts)
	default:
		err = export.PNG(writer, b.pad, b.exportOpts)
	}
	if err != nil {
		log.Printf("[UI] Export failed: %v", err)
		b.SetStatus("Export failed")
		return
	}
	b.SetStatus(fmt.Sprintf("Exported %d drawings to %s", len(b.pad.History().Sealed()), writer.URI().Name()))
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.raster)
}
