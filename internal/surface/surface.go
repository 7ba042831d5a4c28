// Package surface defines the drawing targets a painting session keeps in
// lockstep: the on-screen view and the off-screen raster that is exported
// and sampled.
package surface

import (
	"image/color"

	"LocalPaint/internal/state"
)

// Segment is one straight piece of a freehand stroke.
type Segment struct {
	StrokeID string
	From, To state.Point
	Color    color.NRGBA
	Width    int
	Cap      state.CapStyle
}

// TextRun is a string committed at a canvas position.
type TextRun struct {
	Text  string
	At    state.Point
	Color color.NRGBA
}

// Surface receives every draw call. Reset replaces all content with a blank
// canvas of the given size and background; Fill covers the current content
// with a solid color without changing the background.
type Surface interface {
	Reset(size state.Size, background color.NRGBA)
	Fill(c color.NRGBA)
	DrawSegment(seg Segment) error
	DrawText(run TextRun) error
}
