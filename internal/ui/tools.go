package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"PerfectCircle/internal/palette"
)

// rampSwatch is one legend entry: a dot in the breakpoint color with its
// threshold beside it.
type rampSwatch struct {
	widget.BaseWidget
	bp       palette.Breakpoint
	first    bool
	OnTapped func(palette.Breakpoint, string)
}

func newRampSwatch(bp palette.Breakpoint, first bool, tapped func(palette.Breakpoint, string)) *rampSwatch {
	s := &rampSwatch{bp: bp, first: first, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

// band describes the accuracy range this swatch starts.
func (s *rampSwatch) band() string {
	if s.first {
		return fmt.Sprintf("up to %g%%: %s", s.bp.Threshold, palette.CSS(s.bp.Color))
	}
	return fmt.Sprintf("%g%%: %s", s.bp.Threshold, palette.CSS(s.bp.Color))
}

func (s *rampSwatch) CreateRenderer() fyne.WidgetRenderer {
	dot := canvas.NewCircle(s.bp.Color)
	dot.StrokeColor = palette.Neutral
	dot.StrokeWidth = 1
	label := canvas.NewText(fmt.Sprintf("%g", s.bp.Threshold), palette.Neutral)
	label.TextSize = 12

	dotBox := container.NewGridWrap(fyne.NewSize(16, 16), dot)
	return widget.NewSimpleRenderer(container.NewHBox(dotBox, label))
}

func (s *rampSwatch) Tapped(*fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.bp, s.band())
	}
}

// legend lists the ramp breakpoints; tapping one shows its band in the
// status label.
func legend(ramp palette.Ramp, status func(string)) fyne.CanvasObject {
	items := make([]fyne.CanvasObject, len(ramp))
	for i, bp := range ramp {
		items[i] = newRampSwatch(bp, i == 0, func(_ palette.Breakpoint, band string) { status(band) })
	}
	return container.NewHBox(items...)
}

// newToolbar builds the top bar: replay, exports and the color legend.
func newToolbar(g *Game) fyne.CanvasObject {
	replay := widget.NewButtonWithIcon("See Best Attempt", theme.MediaReplayIcon(), g.ReplayBest)

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentIcon(), func() { g.saveBest(formatPDF) }),
		widget.NewToolbarAction(theme.FileImageIcon(), func() { g.saveBest(formatPNG) }),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { g.saveBest(formatJSON) }),
	)

	return container.NewHBox(
		replay,
		widget.NewSeparator(),
		widget.NewLabel("Export:"),
		tb,
		layout.NewSpacer(),
		legend(palette.Default, g.feedback.Status),
	)
}
