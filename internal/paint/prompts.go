package paint

import (
	"image/color"

	"LocalPaint/internal/state"
)

// RequestText asks for a string and, if one is given, arms text placement
// for the next click.
func (b *Board) RequestText() {
	b.dialogs.AskText("Enter text", func(text string, ok bool) {
		if !ok || !b.state.BeginText(text) {
			return
		}
		b.endStroke()
		b.changed()
	})
}

func (b *Board) PromptColor() {
	b.dialogs.ChooseColor("Pen color", b.state.Pen().Previous, func(c color.NRGBA, ok bool) {
		if ok {
			b.SetColor(c)
		}
	})
}

func (b *Board) PromptBackground() {
	b.dialogs.ChooseColor("Background color", b.state.Background(), func(c color.NRGBA, ok bool) {
		if ok {
			b.SetBackground(c)
		}
	})
}

func (b *Board) PromptExport() {
	b.dialogs.SaveLocation(func(path string, ok bool) {
		if ok && path != "" {
			b.Export(path)
		}
	})
}

func (b *Board) PromptBrushWidth() {
	b.dialogs.AskInt("Brush width", state.MinBrushWidth, state.MaxBrushWidth, b.state.Pen().Width, func(n int, ok bool) {
		if ok {
			b.SetBrushWidth(n)
		}
	})
}

// PromptResize asks for width, then height. Cancelling either leaves the
// canvas untouched.
func (b *Board) PromptResize() {
	size := b.state.Size()
	b.dialogs.AskInt("Canvas width", state.MinCanvasWidth, state.MaxCanvasWidth, size.Width, func(w int, ok bool) {
		if !ok {
			return
		}
		b.dialogs.AskInt("Canvas height", state.MinCanvasHeight, state.MaxCanvasHeight, size.Height, func(h int, ok bool) {
			if ok {
				b.Resize(w, h)
			}
		})
	})
}
