package paint

import (
	"github.com/google/uuid"

	"LocalPaint/internal/state"
	"LocalPaint/internal/surface"
)

// Motion handles a pointer move with the primary button held. The first
// sample of a stroke only records the position; later samples draw a
// segment from the previous one. Coordinates are not clamped.
func (b *Board) Motion(p state.Point) {
	if !b.state.Mode().Drawing() {
		return
	}
	prev, ok := b.state.Advance(p)
	if !ok {
		b.strokeID = uuid.NewString()
		b.segments = 0
		return
	}
	pen := b.state.Pen()
	seg := surface.Segment{
		StrokeID: b.strokeID,
		From:     prev,
		To:       p,
		Color:    pen.Color,
		Width:    pen.Width,
		Cap:      pen.Cap,
	}
	if err := b.raster.DrawSegment(seg); err != nil {
		b.log.Warn("raster segment", "stroke", seg.StrokeID, "err", err)
	}
	if err := b.display.DrawSegment(seg); err != nil {
		b.log.Warn("display segment", "stroke", seg.StrokeID, "err", err)
	}
	b.segments++
}

// Release ends the current stroke.
func (b *Board) Release() {
	b.endStroke()
}

// Sample picks the raster color under p as the new pen color. It reports
// false when p is outside the canvas.
func (b *Board) Sample(p state.Point) bool {
	c, ok := b.raster.Sample(p)
	if !ok {
		return false
	}
	b.state.SetColor(c)
	b.log.Debug("color sampled", "at", p, "color", state.Hex(c))
	b.changed()
	return true
}

// Click commits pending text at p. Outside text placement it does nothing
// and reports false.
func (b *Board) Click(p state.Point) bool {
	txt, ok := b.state.TakeText()
	if !ok {
		return false
	}
	run := surface.TextRun{Text: txt, At: p, Color: b.state.Pen().Color}
	if err := b.raster.DrawText(run); err != nil {
		b.log.Warn("raster text", "err", err)
	}
	if err := b.display.DrawText(run); err != nil {
		b.log.Warn("display text", "err", err)
	}
	b.log.Debug("text placed", "at", p, "len", len(txt))
	b.changed()
	return true
}

// Shortcut dispatches a keyboard accelerator.
func (b *Board) Shortcut(s Shortcut) {
	switch s {
	case ShortcutExport:
		b.PromptExport()
	case ShortcutChooseColor:
		b.PromptColor()
	default:
		b.log.Warn("unknown shortcut", "shortcut", int(s))
	}
}

func (b *Board) endStroke() {
	if _, ok := b.state.Trail(); ok && b.strokeID != "" {
		b.log.Debug("stroke finished", "stroke", b.strokeID, "segments", b.segments)
	}
	b.state.ResetTrail()
	b.strokeID = ""
	b.segments = 0
}
