package surface

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalPaint/internal/state"
)

var (
	white = state.White
	black = state.Black
	teal  = color.NRGBA{R: 0x12, G: 0x80, B: 0x80, A: 0xff}
)

func TestNewRasterFillsBackground(t *testing.T) {
	r := NewRaster(state.Size{Width: 120, Height: 100}, teal, nil)

	assert.Equal(t, state.Size{Width: 120, Height: 100}, r.Size())
	for _, p := range []state.Point{{X: 0, Y: 0}, {X: 119, Y: 99}, {X: 60, Y: 50}} {
		c, ok := r.Sample(p)
		require.True(t, ok)
		assert.Equal(t, teal, c, "pixel %v", p)
	}
}

func TestSampleOutsideCanvas(t *testing.T) {
	r := NewRaster(state.Size{Width: 100, Height: 100}, white, nil)

	for _, p := range []state.Point{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 100, Y: 0}, {X: 0, Y: 100}} {
		_, ok := r.Sample(p)
		assert.False(t, ok, "pixel %v", p)
	}
}

func TestFillThenSampleReturnsFillColor(t *testing.T) {
	r := NewRaster(state.Size{Width: 100, Height: 90}, white, nil)
	r.Fill(teal)

	for y := 0; y < 90; y += 17 {
		for x := 0; x < 100; x += 13 {
			c, ok := r.Sample(state.Point{X: x, Y: y})
			require.True(t, ok)
			require.Equal(t, teal, c)
		}
	}
	assert.Equal(t, white, r.Background())
}

func TestResetDiscardsContent(t *testing.T) {
	r := NewRaster(state.Size{Width: 100, Height: 100}, white, nil)
	r.Fill(teal)

	r.Reset(state.Size{Width: 200, Height: 150}, black)

	assert.Equal(t, state.Size{Width: 200, Height: 150}, r.Size())
	c, ok := r.Sample(state.Point{X: 150, Y: 120})
	require.True(t, ok)
	assert.Equal(t, black, c)
}

func TestDrawSegmentPaintsCenterOfLine(t *testing.T) {
	r := NewRaster(state.Size{Width: 100, Height: 100}, white, nil)

	err := r.DrawSegment(Segment{
		From:  state.Point{X: 10, Y: 20},
		To:    state.Point{X: 80, Y: 20},
		Color: teal,
		Width: 6,
		Cap:   state.CapFlat,
	})
	require.NoError(t, err)

	c, _ := r.Sample(state.Point{X: 40, Y: 19})
	assertNear(t, teal, c)

	c, _ = r.Sample(state.Point{X: 40, Y: 60})
	assert.Equal(t, white, c)
}

func TestDrawTextHangsBelowClickPoint(t *testing.T) {
	face, err := DefaultFace()
	require.NoError(t, err)
	r := NewRaster(state.Size{Width: 200, Height: 200}, white, face)
	at := state.Point{X: 50, Y: 50}

	require.NoError(t, r.DrawText(TextRun{Text: "Hi", At: at, Color: black}))

	lineHeight := r.LineHeight()
	require.Greater(t, lineHeight, 0)

	top, bottom, left := -1, -1, -1
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			if c, _ := r.Sample(state.Point{X: x, Y: y}); c != white {
				if top < 0 {
					top = y
				}
				bottom = y
				if left < 0 || x < left {
					left = x
				}
			}
		}
	}
	require.GreaterOrEqual(t, top, 0, "no text pixels")
	assert.GreaterOrEqual(t, top, at.Y)
	assert.Less(t, bottom, at.Y+lineHeight)
	assert.GreaterOrEqual(t, left, at.X)
}

func TestLineHeightWithoutFont(t *testing.T) {
	r := NewRaster(state.Size{Width: 100, Height: 100}, white, nil)

	assert.Zero(t, r.LineHeight())
}

func TestDrawTextWithoutFontFails(t *testing.T) {
	r := NewRaster(state.Size{Width: 100, Height: 100}, white, nil)

	assert.Error(t, r.DrawText(TextRun{Text: "Hi"}))
}

func TestEncodePNG(t *testing.T) {
	r := NewRaster(state.Size{Width: 130, Height: 95}, teal, nil)

	var buf bytes.Buffer
	require.NoError(t, r.EncodePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 130, img.Bounds().Dx())
	assert.Equal(t, 95, img.Bounds().Dy())
	assert.Equal(t, teal, color.NRGBAModel.Convert(img.At(5, 5)))
}

func TestFillKeepsExactChannels(t *testing.T) {
	r := NewRaster(state.Size{Width: 100, Height: 100}, white, nil)

	for v := 0; v < 256; v += 5 {
		c := color.NRGBA{R: uint8(v), G: uint8(255 - v), B: uint8(v / 2), A: 0xff}
		r.Fill(c)
		got, ok := r.Sample(state.Point{X: 7, Y: 7})
		require.True(t, ok)
		require.Equal(t, c, got)
	}
}

func TestLineCap(t *testing.T) {
	assert.Equal(t, lineCap(state.CapRound), lineCap(state.CapStyle(42)))
	assert.NotEqual(t, lineCap(state.CapFlat), lineCap(state.CapSquare))
}

func assertNear(t *testing.T, want, got color.NRGBA) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 2)
	assert.InDelta(t, want.G, got.G, 2)
	assert.InDelta(t, want.B, got.B, 2)
}
