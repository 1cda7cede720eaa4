// Package palette maps accuracy scores onto a red-to-green color ramp.
package palette

import (
	"fmt"
	"image/color"
	"math"
)

var (
	Red    = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	Orange = color.NRGBA{R: 255, G: 165, B: 0, A: 255}
	Yellow = color.NRGBA{R: 255, G: 255, B: 0, A: 255}
	Green  = color.NRGBA{R: 0, G: 255, B: 0, A: 255}

	// Neutral is used for ungraded output: rejected attempts, the center
	// marker and best-attempt replays.
	Neutral = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	// Guide outlines the ideal circle after an accepted attempt.
	Guide = color.NRGBA{R: 255, G: 255, B: 255, A: 96}

	// Background is the board color Neutral is drawn on.
	Background = color.NRGBA{R: 24, G: 24, B: 28, A: 255}
)

// Breakpoint anchors a color at an accuracy threshold.
type Breakpoint struct {
	Threshold float64
	Color     color.NRGBA
}

// Ramp is a piecewise-linear color ramp. Breakpoints must be sorted by
// strictly increasing Threshold.
type Ramp []Breakpoint

// Default is the accuracy ramp: red up to 60, then orange at 80, yellow at
// 90 and green at 100.
var Default = Ramp{
	{Threshold: 60, Color: Red},
	{Threshold: 80, Color: Orange},
	{Threshold: 90, Color: Yellow},
	{Threshold: 100, Color: Green},
}

// At returns the ramp color for v. Values at or below the first threshold
// get the first color, values above the last threshold the last color.
func (r Ramp) At(v float64) color.NRGBA {
	if len(r) == 0 {
		return Neutral
	}
	if v <= r[0].Threshold {
		return r[0].Color
	}
	for i := 1; i < len(r); i++ {
		lo, hi := r[i-1], r[i]
		if v <= hi.Threshold {
			ratio := (v - lo.Threshold) / (hi.Threshold - lo.Threshold)
			return Lerp(lo.Color, hi.Color, ratio)
		}
	}
	return r[len(r)-1].Color
}

// ColorFor maps an accuracy in [0, 100] onto the Default ramp.
func ColorFor(accuracy float64) color.NRGBA {
	return Default.At(accuracy)
}

// Lerp interpolates each channel and rounds half up. Alpha is kept opaque.
func Lerp(a, b color.NRGBA, ratio float64) color.NRGBA {
	return color.NRGBA{
		R: channel(a.R, b.R, ratio),
		G: channel(a.G, b.G, ratio),
		B: channel(a.B, b.B, ratio),
		A: 255,
	}
}

func channel(lo, hi uint8, ratio float64) uint8 {
	v := float64(lo)*(1-ratio) + float64(hi)*ratio
	return uint8(math.Floor(v + 0.5))
}

// CSS formats c as rgb(r, g, b).
func CSS(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("rgb(%d, %d, %d)", n.R, n.G, n.B)
}
