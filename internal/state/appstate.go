package state

import (
	"image/color"
)

// Pen is the stroke configuration applied to every new segment.
type Pen struct {
	Color    color.NRGBA
	Previous color.NRGBA
	Width    int
	Cap      CapStyle
}

// AppState is the single source of tool configuration and pointer tracking.
// It is owned by the event router and never accessed globally.
type AppState struct {
	pen        Pen
	background color.NRGBA
	size       Size
	mode       Mode

	trail    Point
	hasTrail bool
}

// Defaults describes the initial state of a new session.
type Defaults struct {
	Size       Size
	Background color.NRGBA
	PenColor   color.NRGBA
	PenWidth   int
	Cap        CapStyle
}

// DefaultSettings matches a fresh 600x400 white canvas with a thin black
// round pen.
func DefaultSettings() Defaults {
	return Defaults{
		Size:       Size{Width: DefaultCanvasWidth, Height: DefaultCanvasHeight},
		Background: White,
		PenColor:   Black,
		PenWidth:   MinBrushWidth,
		Cap:        CapRound,
	}
}

func New(d Defaults) *AppState {
	return &AppState{
		pen: Pen{
			Color:    Opaque(d.PenColor),
			Previous: Opaque(d.PenColor),
			Width:    clamp(d.PenWidth, MinBrushWidth, MaxBrushWidth),
			Cap:      d.Cap,
		},
		background: Opaque(d.Background),
		size:       d.Size.Clamp(),
		mode:       Brush(),
	}
}

func (s *AppState) Pen() Pen                { return s.pen }
func (s *AppState) Background() color.NRGBA { return s.background }
func (s *AppState) Size() Size              { return s.size }
func (s *AppState) Mode() Mode              { return s.mode }

// EnterEraser saves the pen color and paints with the background instead.
// Calling it again while erasing keeps the saved color.
func (s *AppState) EnterEraser() {
	switch s.mode.Kind() {
	case ModeEraser:
		return
	case ModeText:
		if s.mode.resume == ModeEraser {
			s.mode = Eraser()
			return
		}
	}
	s.pen.Previous = s.pen.Color
	s.pen.Color = s.background
	s.mode = Eraser()
}

// EnterBrush restores the color saved by EnterEraser.
func (s *AppState) EnterBrush() {
	s.pen.Color = s.pen.Previous
	s.mode = Brush()
}

// SetColor replaces both the pen and previous color. It leaves eraser mode
// since the pen no longer matches the background; pending text resumes the
// brush instead.
func (s *AppState) SetColor(c color.Color) {
	n := Opaque(c)
	s.pen.Color = n
	s.pen.Previous = n
	switch s.mode.Kind() {
	case ModeEraser:
		s.mode = Brush()
	case ModeText:
		text, _ := s.mode.Text()
		s.mode = TextPlacement(text, ModeBrush)
	}
}

// SetBrushWidth clamps n to the allowed width range and returns the result.
func (s *AppState) SetBrushWidth(n int) int {
	s.pen.Width = clamp(n, MinBrushWidth, MaxBrushWidth)
	return s.pen.Width
}

// SetCapStyle accepts a cap name and rejects anything unknown.
func (s *AppState) SetCapStyle(name string) error {
	c, err := ParseCapStyle(name)
	if err != nil {
		return err
	}
	s.pen.Cap = c
	return nil
}

// SetBackground replaces the background. An active eraser follows it.
func (s *AppState) SetBackground(c color.Color) {
	s.background = Opaque(c)
	if s.erasing() {
		s.pen.Color = s.background
	}
}

// Resize clamps and stores new canvas dimensions.
func (s *AppState) Resize(size Size) Size {
	s.size = size.Clamp()
	return s.size
}

// BeginText enters text placement when text is non-empty.
func (s *AppState) BeginText(text string) bool {
	if text == "" {
		return false
	}
	resume := s.mode.Kind()
	if resume == ModeText {
		resume = s.mode.resume
	}
	s.mode = TextPlacement(text, resume)
	return true
}

// TakeText leaves text placement and returns the pending string.
func (s *AppState) TakeText() (string, bool) {
	text, ok := s.mode.Text()
	if !ok {
		return "", false
	}
	if s.mode.resume == ModeEraser {
		s.mode = Eraser()
	} else {
		s.mode = Brush()
	}
	return text, true
}

// Advance moves the pointer trail to p and returns the previous position,
// if any.
func (s *AppState) Advance(p Point) (Point, bool) {
	prev, ok := s.trail, s.hasTrail
	s.trail, s.hasTrail = p, true
	return prev, ok
}

// Trail returns the last observed pointer position.
func (s *AppState) Trail() (Point, bool) { return s.trail, s.hasTrail }

// ResetTrail ends the current stroke.
func (s *AppState) ResetTrail() {
	s.trail, s.hasTrail = Point{}, false
}

func (s *AppState) erasing() bool {
	k := s.mode.Kind()
	return k == ModeEraser || (k == ModeText && s.mode.resume == ModeEraser)
}
