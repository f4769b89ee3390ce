package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"LocalSketchpad/internal/config"
	"LocalSketchpad/internal/sketch"
)

func RunApp(cfg config.Config, pad *sketch.Pad) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Sketchpad")

	board := NewBoardWidget(pad, cfg.BackgroundColor(), cfg.Export.Scale)
	toolbar := NewToolbar(board, cfg, myWindow)
	addShortcuts(myWindow.Canvas(), pad)

	content := container.NewBorder(toolbar.Object(), board.statusBar, nil, nil, container.NewCenter(board))
	myWindow.SetContent(content)
	myWindow.Resize(fyne.NewSize(float32(cfg.Canvas.Width)+400, float32(cfg.Canvas.Height)+160))
	myWindow.ShowAndRun()
}

func addShortcuts(c fyne.Canvas, pad *sketch.Pad) {
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		pad.Undo()
	})
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift}, func(fyne.Shortcut) {
		pad.Redo()
	})
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		pad.Redo()
	})
}
