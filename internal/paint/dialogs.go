package paint

import "image/color"

// Dialogs are the modal prompts the board relies on. Each callback receives
// ok=false, or is never invoked, when the user cancels.
type Dialogs interface {
	ChooseColor(title string, initial color.NRGBA, done func(c color.NRGBA, ok bool))
	SaveLocation(done func(path string, ok bool))
	AskInt(title string, min, max, initial int, done func(n int, ok bool))
	AskText(title string, done func(text string, ok bool))
	Notify(title, message string)
}

// Shortcut names a keyboard accelerator handled by the board.
type Shortcut int

const (
	ShortcutExport Shortcut = iota
	ShortcutChooseColor
)

func (s Shortcut) String() string {
	switch s {
	case ShortcutExport:
		return "export"
	case ShortcutChooseColor:
		return "choose-color"
	}
	return "unknown"
}
