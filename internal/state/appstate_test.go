package state

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.NRGBA{R: 0xff, A: 0xff}

func TestNewUsesDefaults(t *testing.T) {
	s := New(DefaultSettings())

	assert.Equal(t, Size{Width: 600, Height: 400}, s.Size())
	assert.Equal(t, White, s.Background())
	assert.Equal(t, Pen{Color: Black, Previous: Black, Width: 1, Cap: CapRound}, s.Pen())
	assert.Equal(t, ModeBrush, s.Mode().Kind())
	_, ok := s.Trail()
	assert.False(t, ok)
}

func TestNewClampsOutOfRangeSettings(t *testing.T) {
	s := New(Defaults{Size: Size{Width: 5, Height: 5000}, PenWidth: 40})

	assert.Equal(t, Size{Width: MinCanvasWidth, Height: MaxCanvasHeight}, s.Size())
	assert.Equal(t, MaxBrushWidth, s.Pen().Width)
}

func TestEraserThenBrushRestoresColor(t *testing.T) {
	s := New(DefaultSettings())
	s.SetColor(red)

	s.EnterEraser()
	assert.Equal(t, White, s.Pen().Color)
	assert.Equal(t, red, s.Pen().Previous)
	assert.Equal(t, ModeEraser, s.Mode().Kind())

	s.EnterBrush()
	assert.Equal(t, red, s.Pen().Color)
	assert.Equal(t, red, s.Pen().Previous)
	assert.Equal(t, ModeBrush, s.Mode().Kind())
}

func TestEnterEraserTwiceKeepsSavedColor(t *testing.T) {
	s := New(DefaultSettings())
	s.SetColor(red)

	s.EnterEraser()
	s.EnterEraser()
	s.EnterBrush()

	assert.Equal(t, red, s.Pen().Color)
}

func TestEnterBrushWhileBrushingIsNoop(t *testing.T) {
	s := New(DefaultSettings())
	s.SetColor(red)
	before := s.Pen()

	s.EnterBrush()

	assert.Equal(t, before, s.Pen())
}

func TestSetColorLeavesEraser(t *testing.T) {
	s := New(DefaultSettings())
	s.EnterEraser()

	s.SetColor(red)

	assert.Equal(t, ModeBrush, s.Mode().Kind())
	assert.Equal(t, red, s.Pen().Color)
	assert.Equal(t, red, s.Pen().Previous)
}

func TestSetColorDropsAlpha(t *testing.T) {
	s := New(DefaultSettings())
	s.SetColor(color.NRGBA{R: 10, G: 20, B: 30, A: 0x80})

	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 0xff}, s.Pen().Color)
}

func TestSetBrushWidthClamps(t *testing.T) {
	s := New(DefaultSettings())

	assert.Equal(t, 5, s.SetBrushWidth(5))
	assert.Equal(t, MinBrushWidth, s.SetBrushWidth(0))
	assert.Equal(t, MinBrushWidth, s.SetBrushWidth(-3))
	assert.Equal(t, MaxBrushWidth, s.SetBrushWidth(11))
	assert.Equal(t, MaxBrushWidth, s.Pen().Width)
}

func TestSetCapStyle(t *testing.T) {
	s := New(DefaultSettings())

	require.NoError(t, s.SetCapStyle("square"))
	assert.Equal(t, CapSquare, s.Pen().Cap)
	require.NoError(t, s.SetCapStyle(" Flat "))
	assert.Equal(t, CapFlat, s.Pen().Cap)

	err := s.SetCapStyle("triangle")
	require.ErrorIs(t, err, ErrUnknownCap)
	assert.Equal(t, CapFlat, s.Pen().Cap)
}

func TestSetBackgroundMovesEraserColor(t *testing.T) {
	s := New(DefaultSettings())
	s.EnterEraser()

	s.SetBackground(red)

	assert.Equal(t, red, s.Pen().Color)
	assert.Equal(t, Black, s.Pen().Previous)
}

func TestSetBackgroundKeepsBrushColor(t *testing.T) {
	s := New(DefaultSettings())

	s.SetBackground(red)

	assert.Equal(t, Black, s.Pen().Color)
	assert.Equal(t, red, s.Background())
}

func TestResizeClamps(t *testing.T) {
	s := New(DefaultSettings())

	assert.Equal(t, Size{Width: 800, Height: 600}, s.Resize(Size{Width: 800, Height: 600}))
	assert.Equal(t, Size{Width: MaxCanvasWidth, Height: MinCanvasHeight}, s.Resize(Size{Width: 9000, Height: 1}))
}

func TestTrail(t *testing.T) {
	s := New(DefaultSettings())

	_, ok := s.Advance(Point{X: 1, Y: 2})
	assert.False(t, ok)

	prev, ok := s.Advance(Point{X: 3, Y: 4})
	assert.True(t, ok)
	assert.Equal(t, Point{X: 1, Y: 2}, prev)

	s.ResetTrail()
	_, ok = s.Trail()
	assert.False(t, ok)

	_, ok = s.Advance(Point{X: 5, Y: 6})
	assert.False(t, ok)
}

func TestTextPlacement(t *testing.T) {
	s := New(DefaultSettings())

	assert.False(t, s.BeginText(""))
	assert.Equal(t, ModeBrush, s.Mode().Kind())

	require.True(t, s.BeginText("Hi"))
	assert.Equal(t, ModeText, s.Mode().Kind())
	assert.False(t, s.Mode().Drawing())

	text, ok := s.TakeText()
	require.True(t, ok)
	assert.Equal(t, "Hi", text)
	assert.Equal(t, ModeBrush, s.Mode().Kind())

	_, ok = s.TakeText()
	assert.False(t, ok)
}

func TestTextPlacementResumesEraser(t *testing.T) {
	s := New(DefaultSettings())
	s.EnterEraser()

	require.True(t, s.BeginText("x"))
	require.True(t, s.BeginText("y"))
	text, ok := s.TakeText()

	require.True(t, ok)
	assert.Equal(t, "y", text)
	assert.Equal(t, ModeEraser, s.Mode().Kind())
	assert.Equal(t, White, s.Pen().Color)

	s.EnterBrush()
	assert.Equal(t, Black, s.Pen().Color)
}

func TestSetColorDuringTextFromEraserResumesBrush(t *testing.T) {
	s := New(DefaultSettings())
	s.EnterEraser()
	require.True(t, s.BeginText("Hi"))

	s.SetColor(red)
	assert.Equal(t, ModeText, s.Mode().Kind())

	text, ok := s.TakeText()
	require.True(t, ok)
	assert.Equal(t, "Hi", text)
	assert.Equal(t, ModeBrush, s.Mode().Kind())
	assert.Equal(t, red, s.Pen().Color)

	s.EnterEraser()
	assert.Equal(t, ModeEraser, s.Mode().Kind())
	assert.Equal(t, s.Background(), s.Pen().Color)

	s.EnterBrush()
	assert.Equal(t, red, s.Pen().Color)
}

func TestSizeContains(t *testing.T) {
	size := Size{Width: 10, Height: 5}

	assert.True(t, size.Contains(Point{X: 0, Y: 0}))
	assert.True(t, size.Contains(Point{X: 9, Y: 4}))
	assert.False(t, size.Contains(Point{X: 10, Y: 4}))
	assert.False(t, size.Contains(Point{X: 3, Y: -1}))
}
