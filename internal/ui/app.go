package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"LocalPaint/internal/config"
	"LocalPaint/internal/paint"
	"LocalPaint/internal/state"
	"LocalPaint/internal/surface"
)

const AppID = "io.localpaint.app"

func RunApp(cfg config.Config, settings state.Defaults, logger *slog.Logger) {
	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow("LocalPaint")

	face, err := surface.DefaultFace()
	if err != nil {
		logger.Warn("text placement limited to the screen", "err", err)
	}

	// Create the drawing surface and the board that drives it
	display := NewBoardWidget()
	dialogs := NewDialogs(myWindow, cfg.Export.Directory, logger)
	board := paint.NewBoard(state.New(settings), face, display, dialogs, logger)
	display.Attach(board)

	toolbar := NewToolbar(board)
	board.OnChange = toolbar.Sync
	toolbar.Sync()

	content := container.NewBorder(toolbar.Object(), nil, nil, nil, container.NewScroll(display))
	myWindow.SetContent(content)
	addShortcuts(myWindow, board)

	size := board.State().Size()
	myWindow.Resize(fyne.NewSize(float32(size.Width)+40, float32(size.Height)+140))
	logger.Info("window ready", "size", size.String())
	myWindow.ShowAndRun()
}

func addShortcuts(w fyne.Window, board *paint.Board) {
	save := &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}
	w.Canvas().AddShortcut(save, func(fyne.Shortcut) { board.Shortcut(paint.ShortcutExport) })

	pick := &desktop.CustomShortcut{KeyName: fyne.KeyK, Modifier: fyne.KeyModifierShortcutDefault}
	w.Canvas().AddShortcut(pick, func(fyne.Shortcut) { board.Shortcut(paint.ShortcutChooseColor) })
}
