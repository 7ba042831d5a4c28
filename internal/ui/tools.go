package ui

import (
	"fmt"
	"image/color"
	"slices"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/paint"
	"LocalPaint/internal/state"
)

// Palette is the row of quick-pick colors.
var Palette = []color.NRGBA{
	state.Black,
	{R: 255, A: 255},
	{G: 255, A: 255},
	{B: 255, A: 255},
	{R: 255, G: 255, A: 255},
}

// --- Color swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)

	rect *canvas.Rectangle
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) SetColor(c color.NRGBA) {
	s.Color = c
	if s.rect != nil {
		s.rect.FillColor = c
		s.rect.Refresh()
	}
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	s.rect = canvas.NewRectangle(s.Color)
	s.rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(s.rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar holds the tool controls and keeps them in sync with the board.
type Toolbar struct {
	board *paint.Board

	preview *colorSwatch
	presets *widget.Select
	slider  *widget.Slider
	caps    *widget.Select
	status  *widget.Label

	syncing bool
}

func NewToolbar(board *paint.Board) *Toolbar {
	t := &Toolbar{board: board}

	t.preview = newColorSwatch(board.State().Pen().Color, func(color.NRGBA) { board.PromptColor() })

	presets := make([]string, 0, len(state.BrushPresets))
	for _, n := range state.BrushPresets {
		presets = append(presets, strconv.Itoa(n))
	}
	t.presets = widget.NewSelect(presets, func(v string) {
		if n, err := strconv.Atoi(v); err == nil && !t.syncing {
			board.SetBrushWidth(n)
		}
	})

	t.slider = widget.NewSlider(state.MinBrushWidth, state.MaxBrushWidth)
	t.slider.Step = 1
	t.slider.OnChanged = func(v float64) {
		if !t.syncing {
			board.SetBrushWidth(int(v))
		}
	}

	t.caps = widget.NewSelect(state.CapStyles(), func(v string) {
		if !t.syncing {
			_ = board.SetCapStyle(v)
		}
	})

	t.status = widget.NewLabel("")
	return t
}

// Sync copies the board's pen and mode into the controls.
func (t *Toolbar) Sync() {
	t.syncing = true
	defer func() { t.syncing = false }()

	st := t.board.State()
	pen := st.Pen()
	t.preview.SetColor(pen.Color)
	t.slider.SetValue(float64(pen.Width))
	if slices.Contains(state.BrushPresets, pen.Width) {
		t.presets.SetSelected(strconv.Itoa(pen.Width))
	} else {
		t.presets.ClearSelected()
	}
	t.caps.SetSelected(pen.Cap.String())
	t.status.SetText(fmt.Sprintf("%s  %s  %dpx  %s", st.Mode(), state.Hex(pen.Color), pen.Width, st.Size()))
}

// Object builds the toolbar layout.
func (t *Toolbar) Object() fyne.CanvasObject {
	b := t.board
	tools := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), b.EnterBrush), // Brush
		widget.NewToolbarAction(theme.DeleteIcon(), b.EnterEraser),        // Eraser
		widget.NewToolbarAction(theme.ColorPaletteIcon(), b.PromptColor),  // Pen color
		widget.NewToolbarAction(theme.ContentAddIcon(), b.RequestText),    // Text
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentClearIcon(), b.Clear),        // Clear
		widget.NewToolbarAction(theme.DocumentSaveIcon(), b.PromptExport), // Save
	)

	palette := container.NewHBox()
	for _, c := range Palette {
		palette.Add(newColorSwatch(c, func(c color.NRGBA) { b.SetColor(c) }))
	}

	canvasTools := container.NewHBox(
		widget.NewButton("Fill", b.Fill),
		widget.NewButton("Background", b.PromptBackground),
		widget.NewButton("Resize", b.PromptResize),
	)

	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), t.slider)

	row := container.NewHBox(
		tools,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		t.preview,
		palette,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		t.presets,
		sliderBox,
		widget.NewButton("Width…", b.PromptBrushWidth),
		widget.NewLabel("Cap:"),
		t.caps,
		widget.NewSeparator(),
		canvasTools,
		layout.NewSpacer(),
	)
	return container.NewVBox(row, t.status)
}
