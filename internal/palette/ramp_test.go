package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorFor(t *testing.T) {
	tests := []struct {
		name     string
		accuracy float64
		want     color.NRGBA
	}{
		{"zero", 0, Red},
		{"first breakpoint", 60, Red},
		{"red to orange midpoint", 70, color.NRGBA{R: 255, G: 83, B: 0, A: 255}},
		{"orange breakpoint", 80, Orange},
		{"orange to yellow midpoint", 85, color.NRGBA{R: 255, G: 210, B: 0, A: 255}},
		{"yellow breakpoint", 90, Yellow},
		{"yellow to green quarter", 92.5, color.NRGBA{R: 191, G: 255, B: 0, A: 255}},
		{"last breakpoint", 100, Green},
		{"above range", 120, Green},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ColorFor(tt.accuracy))
		})
	}
}

func TestRamp_RoundsHalfUp(t *testing.T) {
	// 165 * 0.5 = 82.5 rounds to 83.
	assert.Equal(t, uint8(83), Lerp(Red, Orange, 0.5).G)
	// 255 * 0.5 = 127.5 rounds to 128.
	assert.Equal(t, uint8(128), Lerp(Yellow, Green, 0.5).R)
}

func TestRamp_Monotone(t *testing.T) {
	prev := ColorFor(60).G
	for a := 60.0; a <= 90; a += 0.5 {
		g := ColorFor(a).G
		assert.GreaterOrEqual(t, g, prev, "green channel at %.1f", a)
		prev = g
	}
}

func TestRamp_Custom(t *testing.T) {
	black := color.NRGBA{A: 255}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	r := Ramp{{Threshold: 0, Color: black}, {Threshold: 10, Color: white}}

	assert.Equal(t, color.NRGBA{R: 26, G: 26, B: 26, A: 255}, r.At(1))
	assert.Equal(t, Neutral, Ramp(nil).At(50))
}

func TestCSS(t *testing.T) {
	assert.Equal(t, "rgb(255, 83, 0)", CSS(ColorFor(70)))
	assert.Equal(t, "rgb(0, 255, 0)", CSS(Green))
}
