package surface

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"LocalPaint/internal/state"
)

// TextSize is the point size used for committed text.
const TextSize = 14

// DefaultFace loads the bundled Go Regular font at TextSize.
func DefaultFace() (text.Face, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load default font: %w", err)
	}
	return src.Face(TextSize), nil
}

// Raster is the authoritative off-screen pixel buffer.
type Raster struct {
	pixmap     *gg.Pixmap
	dc         *gg.Context
	face       text.Face
	size       state.Size
	background color.NRGBA
}

var _ Surface = (*Raster)(nil)

// NewRaster allocates a buffer filled with background. A nil face disables
// text rendering.
func NewRaster(size state.Size, background color.NRGBA, face text.Face) *Raster {
	r := &Raster{face: face}
	r.Reset(size, background)
	return r
}

func (r *Raster) Size() state.Size            { return r.size }
func (r *Raster) Background() color.NRGBA     { return r.background }
func (r *Raster) Contains(p state.Point) bool { return r.size.Contains(p) }
func (r *Raster) EncodePNG(w io.Writer) error { return r.dc.EncodePNG(w) }

// Reset discards the buffer and allocates a new one.
func (r *Raster) Reset(size state.Size, background color.NRGBA) {
	if r.dc != nil {
		_ = r.dc.Close()
	}
	r.size = size
	r.background = background
	r.pixmap = gg.NewPixmap(size.Width, size.Height)
	r.pixmap.Clear(opaque(background))
	r.dc = gg.NewContext(size.Width, size.Height, gg.WithPixmap(r.pixmap))
	if r.face != nil {
		r.dc.SetFont(r.face)
	}
}

// DrawSegment strokes seg with its width and cap.
func (r *Raster) DrawSegment(seg Segment) error {
	r.dc.SetColor(seg.Color)
	r.dc.SetLineWidth(float64(seg.Width))
	r.dc.SetLineCap(lineCap(seg.Cap))
	r.dc.DrawLine(float64(seg.From.X), float64(seg.From.Y), float64(seg.To.X), float64(seg.To.Y))
	if err := r.dc.Stroke(); err != nil {
		return fmt.Errorf("stroke %v-%v: %w", seg.From, seg.To, err)
	}
	return nil
}

// DrawText places run with its top-left corner at run.At.
func (r *Raster) DrawText(run TextRun) error {
	if r.face == nil {
		return fmt.Errorf("draw text %q: no font", run.Text)
	}
	r.dc.SetColor(run.Color)
	baseline := float64(run.At.Y) + r.face.Metrics().Ascent
	r.dc.DrawString(run.Text, float64(run.At.X), baseline)
	return nil
}

// LineHeight is the vertical extent of one line of committed text, or zero
// without a font.
func (r *Raster) LineHeight() int {
	if r.face == nil {
		return 0
	}
	m := r.face.Metrics()
	return int(math.Ceil(m.Ascent + m.Descent))
}

// Sample reads the pixel at p. It reports false outside the canvas.
func (r *Raster) Sample(p state.Point) (color.NRGBA, bool) {
	if !r.Contains(p) {
		return color.NRGBA{}, false
	}
	data := r.pixmap.Data()
	i := (p.Y*r.size.Width + p.X) * 4
	return color.NRGBA{R: data[i], G: data[i+1], B: data[i+2], A: 0xff}, true
}

// Fill paints every pixel with c.
func (r *Raster) Fill(c color.NRGBA) {
	r.pixmap.Clear(opaque(c))
}

// opaque converts c for Pixmap.Clear. Each channel sits in the middle of its
// byte so the truncating conversion back lands on the original value.
func opaque(c color.NRGBA) gg.RGBA {
	ch := func(v uint8) float64 { return (float64(v) + 0.5) / 255 }
	return gg.RGBA2(ch(c.R), ch(c.G), ch(c.B), 1)
}

func lineCap(c state.CapStyle) gg.LineCap {
	switch c {
	case state.CapFlat:
		return gg.LineCapButt
	case state.CapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapRound
	}
}
