package state

import (
	"errors"
	"fmt"
	"strings"
)

// Canvas and pen bounds.
const (
	MinCanvasWidth  = 100
	MaxCanvasWidth  = 1800
	MinCanvasHeight = 90
	MaxCanvasHeight = 900

	MinBrushWidth = 1
	MaxBrushWidth = 10

	DefaultCanvasWidth  = 600
	DefaultCanvasHeight = 400
)

// BrushPresets are the quick-pick widths offered next to the width slider.
var BrushPresets = []int{1, 3, 5, 10}

// Point is an integer pixel position on the canvas.
type Point struct{ X, Y int }

// Size is the canvas dimension in pixels.
type Size struct{ Width, Height int }

// Contains reports whether p lies inside the canvas.
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// Clamp returns s with both dimensions pulled into the allowed range.
func (s Size) Clamp() Size {
	return Size{
		Width:  clamp(s.Width, MinCanvasWidth, MaxCanvasWidth),
		Height: clamp(s.Height, MinCanvasHeight, MaxCanvasHeight),
	}
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }

// CapStyle is the shape drawn at both ends of a stroke segment.
type CapStyle int

const (
	CapRound CapStyle = iota
	CapFlat
	CapSquare
)

// ErrUnknownCap is returned for cap names outside round, flat and square.
var ErrUnknownCap = errors.New("unknown cap style")

var capNames = []string{"round", "flat", "square"}

// CapStyles lists the accepted cap names in display order.
func CapStyles() []string {
	out := make([]string, len(capNames))
	copy(out, capNames)
	return out
}

func (c CapStyle) String() string {
	if int(c) < 0 || int(c) >= len(capNames) {
		return "unknown"
	}
	return capNames[c]
}

// ParseCapStyle maps a cap name to its CapStyle.
func ParseCapStyle(s string) (CapStyle, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range capNames {
		if n == name {
			return CapStyle(i), nil
		}
	}
	return CapRound, fmt.Errorf("%w: %q", ErrUnknownCap, s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
