package ui

import (
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/paint"
	"LocalPaint/internal/state"
	"LocalPaint/internal/surface"
)

// BoardWidget is the on-screen drawing surface. It mirrors every draw call
// the board makes on the shadow raster and forwards pointer input back to
// the board.
type BoardWidget struct {
	widget.BaseWidget

	mu         sync.RWMutex
	size       state.Size
	background color.NRGBA
	objects    []fyne.CanvasObject

	board *paint.Board
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ surface.Surface = (*BoardWidget)(nil)

func NewBoardWidget() *BoardWidget {
	b := &BoardWidget{
		size:       state.Size{Width: state.DefaultCanvasWidth, Height: state.DefaultCanvasHeight},
		background: state.White,
	}
	b.ExtendBaseWidget(b)
	return b
}

// Attach connects pointer input to board.
func (b *BoardWidget) Attach(board *paint.Board) {
	b.board = board
}

func (b *BoardWidget) Reset(size state.Size, background color.NRGBA) {
	b.mu.Lock()
	b.size = size
	b.background = background
	b.objects = nil
	b.mu.Unlock()
	b.Refresh()
}

func (b *BoardWidget) Fill(c color.NRGBA) {
	rect := canvas.NewRectangle(c)
	b.mu.Lock()
	rect.Resize(fyne.NewSize(float32(b.size.Width), float32(b.size.Height)))
	b.objects = []fyne.CanvasObject{rect}
	b.mu.Unlock()
	b.Refresh()
}

func (b *BoardWidget) DrawSegment(seg surface.Segment) error {
	from, to := toPos(seg.From), toPos(seg.To)
	width := float32(seg.Width)

	line := canvas.NewLine(seg.Color)
	line.StrokeWidth = width
	line.Position1 = from
	line.Position2 = to

	objs := []fyne.CanvasObject{line}
	switch seg.Cap {
	case state.CapRound:
		objs = append(objs, roundCap(from, width, seg.Color), roundCap(to, width, seg.Color))
	case state.CapSquare:
		objs = append(objs, squareCap(from, width, seg.Color), squareCap(to, width, seg.Color))
	}

	b.mu.Lock()
	b.objects = append(b.objects, objs...)
	b.mu.Unlock()
	b.Refresh()
	return nil
}

func (b *BoardWidget) DrawText(run surface.TextRun) error {
	t := canvas.NewText(run.Text, run.Color)
	t.TextSize = surface.TextSize
	t.Move(toPos(run.At))
	t.Resize(t.MinSize())

	b.mu.Lock()
	b.objects = append(b.objects, t)
	b.mu.Unlock()
	b.Refresh()
	return nil
}

// ObjectCount reports how many canvas objects the drawing is made of.
func (b *BoardWidget) ObjectCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.objects)
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if b.board == nil {
		return
	}
	p := toPoint(e.Position)
	switch e.Button {
	case desktop.MouseButtonPrimary:
		b.board.Click(p)
	case desktop.MouseButtonSecondary, desktop.MouseButtonTertiary:
		b.board.Sample(p)
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if b.board != nil && e.Button == desktop.MouseButtonPrimary {
		b.board.Release()
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if b.board != nil {
		b.board.Motion(toPoint(e.Position))
	}
}

func (b *BoardWidget) DragEnd() {
	if b.board != nil {
		b.board.Release()
	}
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardWidgetRenderer{board: b, background: canvas.NewRectangle(b.background)}
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	r.board.mu.RLock()
	defer r.board.mu.RUnlock()

	objects := make([]fyne.CanvasObject, 0, len(r.board.objects)+1)
	objects = append(objects, r.background)
	return append(objects, r.board.objects...)
}

func (r *boardWidgetRenderer) Refresh() {
	r.board.mu.RLock()
	r.background.FillColor = r.board.background
	r.background.Resize(r.canvasSize())
	r.board.mu.RUnlock()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(fyne.Size) {
	r.board.mu.RLock()
	defer r.board.mu.RUnlock()
	r.background.Resize(r.canvasSize())
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	r.board.mu.RLock()
	defer r.board.mu.RUnlock()
	return r.canvasSize()
}

func (r *boardWidgetRenderer) Destroy() {}

func (r *boardWidgetRenderer) canvasSize() fyne.Size {
	return fyne.NewSize(float32(r.board.size.Width), float32(r.board.size.Height))
}

func roundCap(at fyne.Position, width float32, c color.Color) fyne.CanvasObject {
	dot := canvas.NewCircle(c)
	dot.Resize(fyne.NewSize(width, width))
	dot.Move(fyne.NewPos(at.X-width/2, at.Y-width/2))
	return dot
}

func squareCap(at fyne.Position, width float32, c color.Color) fyne.CanvasObject {
	sq := canvas.NewRectangle(c)
	sq.Resize(fyne.NewSize(width, width))
	sq.Move(fyne.NewPos(at.X-width/2, at.Y-width/2))
	return sq
}

func toPos(p state.Point) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: int(math.Round(float64(p.X))), Y: int(math.Round(float64(p.Y)))}
}
