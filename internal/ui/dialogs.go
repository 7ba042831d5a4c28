package ui

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/export"
	"LocalPaint/internal/paint"
	"LocalPaint/internal/state"
)

// Dialogs implements paint.Dialogs with fyne modal dialogs.
type Dialogs struct {
	win fyne.Window
	dir string
	log *slog.Logger
}

var _ paint.Dialogs = (*Dialogs)(nil)

// NewDialogs binds prompts to win. dir, if set, is where the save dialog
// opens.
func NewDialogs(win fyne.Window, dir string, logger *slog.Logger) *Dialogs {
	return &Dialogs{win: win, dir: dir, log: logger}
}

func (d *Dialogs) ChooseColor(title string, initial color.NRGBA, done func(color.NRGBA, bool)) {
	picker := dialog.NewColorPicker(title, "", func(c color.Color) {
		done(state.Opaque(c), true)
	}, d.win)
	picker.Advanced = true
	picker.SetColor(initial)
	picker.Show()
}

func (d *Dialogs) SaveLocation(done func(string, bool)) {
	fd := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			d.log.Error("save dialog", "err", err)
			dialog.ShowError(err, d.win)
			done("", false)
			return
		}
		if w == nil {
			done("", false)
			return
		}
		path := w.URI().Path()
		if err := w.Close(); err != nil {
			d.log.Warn("close save target", "path", path, "err", err)
		}
		d.dropPlaceholder(path)
		done(path, true)
	}, d.win)
	fd.SetFileName("drawing" + export.Extension)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{export.Extension}))
	if d.dir != "" {
		if loc, err := storage.ListerForURI(storage.NewFileURI(d.dir)); err == nil {
			fd.SetLocation(loc)
		} else {
			d.log.Warn("export directory unavailable", "dir", d.dir, "err", err)
		}
	}
	fd.Show()
}

// dropPlaceholder removes the empty file the save dialog creates when the
// export will be written under a different name.
func (d *Dialogs) dropPlaceholder(path string) {
	if export.NormalizePath(path) == path {
		return
	}
	if fi, err := os.Stat(path); err == nil && fi.Size() == 0 {
		if err := os.Remove(path); err != nil {
			d.log.Warn("remove placeholder", "path", path, "err", err)
		}
	}
}

func (d *Dialogs) AskInt(title string, min, max, initial int, done func(int, bool)) {
	entry := widget.NewEntry()
	entry.SetText(strconv.Itoa(initial))
	entry.Validator = func(s string) error {
		_, err := parseBounded(s, min, max)
		return err
	}
	items := []*widget.FormItem{
		widget.NewFormItem(fmt.Sprintf("%d to %d", min, max), entry),
	}
	dialog.NewForm(title, "OK", "Cancel", items, func(ok bool) {
		if !ok {
			done(0, false)
			return
		}
		n, err := parseBounded(entry.Text, min, max)
		if err != nil {
			done(0, false)
			return
		}
		done(n, true)
	}, d.win).Show()
}

func (d *Dialogs) AskText(title string, done func(string, bool)) {
	entry := widget.NewEntry()
	items := []*widget.FormItem{widget.NewFormItem("Text", entry)}
	dialog.NewForm(title, "OK", "Cancel", items, func(ok bool) {
		done(entry.Text, ok)
	}, d.win).Show()
}

func (d *Dialogs) Notify(title, message string) {
	dialog.ShowInformation(title, message, d.win)
}

func parseBounded(s string, min, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.New("not a whole number")
	}
	if n < min || n > max {
		return 0, fmt.Errorf("must be between %d and %d", min, max)
	}
	return n, nil
}
