package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"PerfectCircle/internal/palette"
	"PerfectCircle/internal/state"
)

// feedbackBar shows the accuracy, best and status labels under the board.
type feedbackBar struct {
	window   fyne.Window
	accuracy *canvas.Text
	best     *widget.Label
	status   *widget.Label
}

var _ state.Feedback = (*feedbackBar)(nil)

func newFeedbackBar(w fyne.Window) *feedbackBar {
	acc := canvas.NewText(state.FormatAccuracy(0), palette.Neutral)
	acc.TextSize = 28
	acc.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	return &feedbackBar{
		window:   w,
		accuracy: acc,
		best:     widget.NewLabel(""),
		status:   widget.NewLabel("Draw a circle around the dot"),
	}
}

func (f *feedbackBar) Accuracy(text string, c color.Color) {
	f.accuracy.Text = text
	f.accuracy.Color = c
	f.accuracy.Refresh()
}

func (f *feedbackBar) Best(text string) {
	f.best.SetText(text)
}

func (f *feedbackBar) Notice(title, message string) {
	dialog.ShowInformation(title, message, f.window)
}

func (f *feedbackBar) Status(text string) {
	f.status.SetText(text)
}

func (f *feedbackBar) content() fyne.CanvasObject {
	bg := canvas.NewRectangle(palette.Background)
	row := container.NewHBox(
		f.accuracy,
		widget.NewSeparator(),
		f.best,
		layout.NewSpacer(),
		f.status,
	)
	return container.NewStack(bg, container.NewPadded(row))
}
