// Package paint routes pointer and keyboard events into tool state changes
// and draw calls, keeping the on-screen surface and the shadow raster in
// lockstep.
package paint

import (
	"image/color"
	"log/slog"

	"github.com/gogpu/gg/text"

	"LocalPaint/internal/export"
	"LocalPaint/internal/state"
	"LocalPaint/internal/surface"
)

// Board owns the application state and both drawing surfaces.
type Board struct {
	state   *state.AppState
	raster  *surface.Raster
	display surface.Surface
	dialogs Dialogs
	log     *slog.Logger

	strokeID string
	segments int

	// OnChange runs after any change to the pen, mode, or canvas settings.
	OnChange func()
}

// NewBoard allocates the shadow raster for st and resets display to match.
// face may be nil, in which case text placement only reaches the display.
func NewBoard(st *state.AppState, face text.Face, display surface.Surface, dialogs Dialogs, logger *slog.Logger) *Board {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Board{
		state:   st,
		raster:  surface.NewRaster(st.Size(), st.Background(), face),
		display: display,
		dialogs: dialogs,
		log:     logger,
	}
	b.display.Reset(st.Size(), st.Background())
	return b
}

func (b *Board) State() *state.AppState  { return b.state }
func (b *Board) Raster() *surface.Raster { return b.raster }

// Clear discards every stroke on both surfaces.
func (b *Board) Clear() {
	b.reset()
	b.log.Info("canvas cleared", "size", b.state.Size().String())
}

// Resize replaces the canvas with a blank one of the new dimensions. Values
// outside the allowed range are clamped.
func (b *Board) Resize(width, height int) state.Size {
	size := b.state.Resize(state.Size{Width: width, Height: height})
	b.reset()
	b.log.Info("canvas resized", "size", size.String())
	b.changed()
	return size
}

// SetBackground starts a blank canvas on the new background color.
func (b *Board) SetBackground(c color.Color) {
	b.state.SetBackground(c)
	b.reset()
	b.log.Info("background changed", "color", state.Hex(b.state.Background()))
	b.changed()
}

// Fill covers both surfaces with the pen color.
func (b *Board) Fill() {
	c := b.state.Pen().Color
	b.raster.Fill(c)
	b.display.Fill(c)
	b.log.Debug("canvas filled", "color", state.Hex(c))
}

// Export writes the shadow raster as PNG and reports the outcome. The
// returned path carries the appended extension, if any.
func (b *Board) Export(path string) (string, error) {
	written, err := export.WritePNG(path, b.raster)
	if err != nil {
		b.log.Error("export failed", "path", written, "err", err)
		b.dialogs.Notify("Save failed", err.Error())
		return written, err
	}
	b.log.Info("image saved", "path", written)
	b.dialogs.Notify("Saved", "Image saved to "+written)
	return written, nil
}

func (b *Board) EnterBrush() {
	b.state.EnterBrush()
	b.changed()
}

func (b *Board) EnterEraser() {
	b.state.EnterEraser()
	b.changed()
}

func (b *Board) SetColor(c color.Color) {
	b.state.SetColor(c)
	b.changed()
}

func (b *Board) SetBrushWidth(n int) int {
	n = b.state.SetBrushWidth(n)
	b.changed()
	return n
}

func (b *Board) SetCapStyle(name string) error {
	if err := b.state.SetCapStyle(name); err != nil {
		b.log.Warn("cap style rejected", "cap", name, "err", err)
		return err
	}
	b.changed()
	return nil
}

func (b *Board) reset() {
	size, bg := b.state.Size(), b.state.Background()
	b.raster.Reset(size, bg)
	b.display.Reset(size, bg)
	b.endStroke()
}

func (b *Board) changed() {
	if b.OnChange != nil {
		b.OnChange()
	}
}
